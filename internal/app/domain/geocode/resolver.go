package geocode

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/patrickmn/go-cache"
	"github.com/pkg/errors"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
	"go.uber.org/zap"
	"golang.org/x/time/rate"

	"github.com/FACorreiaa/go-tripplanner/internal/app/models"
	"github.com/FACorreiaa/go-tripplanner/internal/observability/metrics"
	"github.com/FACorreiaa/go-tripplanner/internal/pkg/config"
)

// Resolver resolves free-text addresses to coordinates. Resolve never fails
// upward: any lookup problem collapses to the zero-sentinel GeoPoint, so
// callers need no geocoding error handling of their own.
type Resolver interface {
	Resolve(ctx context.Context, query string) models.GeoPoint
}

// addressCleanupPattern strips characters that are never part of a postal
// address before the query is sent out.
var addressCleanupPattern = regexp.MustCompile(`[^\w\s,.-]`)

// NominatimResolver resolves addresses against the OpenStreetMap Nominatim
// search API. Results, including misses, are cached for the process lifetime
// so identical addresses never trigger a second external lookup. Lookups are
// rate limited to one per second per the Nominatim usage policy.
type NominatimResolver struct {
	baseURL     string
	userAgent   string
	httpClient  *http.Client
	limiter     *rate.Limiter
	cache       *cache.Cache
	maxAttempts int
	retryDelay  time.Duration
	logger      *zap.Logger
}

func NewNominatimResolver(cfg config.NominatimConfig, logger *zap.Logger) *NominatimResolver {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &NominatimResolver{
		baseURL:     strings.TrimSuffix(cfg.BaseURL, "/"),
		userAgent:   cfg.UserAgent,
		httpClient:  &http.Client{Timeout: 10 * time.Second},
		limiter:     rate.NewLimiter(rate.Every(time.Second), 1),
		cache:       cache.New(cache.NoExpiration, 0),
		maxAttempts: 3,
		retryDelay:  time.Second,
		logger:      logger,
	}
}

// Resolve looks up the query, trying the full cleaned address up to
// maxAttempts times, then once more with everything before the first comma.
// All failures degrade to the zero sentinel.
func (r *NominatimResolver) Resolve(ctx context.Context, query string) models.GeoPoint {
	ctx, span := otel.Tracer("GeocodeResolver").Start(ctx, "Resolve", trace.WithAttributes(
		attribute.String("geocode.query", query),
	))
	defer span.End()

	if cached, found := r.cache.Get(query); found {
		metrics.Get().GeocodeCacheHitsTotal.Add(ctx, 1)
		span.SetAttributes(attribute.Bool("geocode.cache_hit", true))
		return cached.(models.GeoPoint)
	}

	cleaned := strings.TrimSpace(addressCleanupPattern.ReplaceAllString(query, ""))
	if cleaned == "" {
		r.logger.Warn("Empty or invalid address provided for geocoding", zap.String("query", query))
		return models.GeoPoint{}
	}

	for attempt := 0; attempt < r.maxAttempts; attempt++ {
		if attempt > 0 {
			select {
			case <-time.After(r.retryDelay):
			case <-ctx.Done():
				return models.GeoPoint{}
			}
		}

		point, err := r.search(ctx, cleaned)
		if err != nil {
			r.logger.Warn("Geocoding attempt failed",
				zap.Int("attempt", attempt+1),
				zap.String("query", cleaned),
				zap.Error(err))
			continue
		}
		if point != nil {
			r.cache.Set(query, *point, cache.DefaultExpiration)
			return *point
		}
	}

	// Loosen the query to everything before the first comma and try once more.
	if general := strings.TrimSpace(strings.SplitN(cleaned, ",", 2)[0]); general != "" && general != cleaned {
		if point, err := r.search(ctx, general); err == nil && point != nil {
			r.cache.Set(query, *point, cache.DefaultExpiration)
			return *point
		}
	}

	r.logger.Warn("No geocoding results found", zap.String("query", query))
	// Cache the miss as well so a failing address is only ever looked up once.
	r.cache.Set(query, models.GeoPoint{}, cache.DefaultExpiration)
	return models.GeoPoint{}
}

type nominatimResult struct {
	Lat string `json:"lat"`
	Lon string `json:"lon"`
}

// search performs one rate-limited lookup. A nil point with nil error means
// the query produced no results.
func (r *NominatimResolver) search(ctx context.Context, query string) (*models.GeoPoint, error) {
	if err := r.limiter.Wait(ctx); err != nil {
		return nil, errors.Wrap(err, "rate limiter wait")
	}

	endpoint := fmt.Sprintf("%s/search?q=%s&format=json&limit=1", r.baseURL, url.QueryEscape(query))
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, errors.Wrap(err, "build nominatim request")
	}
	req.Header.Set("User-Agent", r.userAgent)

	metrics.Get().GeocodeLookupsTotal.Add(ctx, 1)

	resp, err := r.httpClient.Do(req)
	if err != nil {
		return nil, errors.Wrap(err, "nominatim request")
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, errors.Errorf("nominatim returned status %d", resp.StatusCode)
	}

	var results []nominatimResult
	if err := json.NewDecoder(resp.Body).Decode(&results); err != nil {
		return nil, errors.Wrap(err, "decode nominatim response")
	}
	if len(results) == 0 {
		return nil, nil
	}

	lat, err := strconv.ParseFloat(results[0].Lat, 64)
	if err != nil {
		return nil, errors.Wrap(err, "parse latitude")
	}
	lng, err := strconv.ParseFloat(results[0].Lon, 64)
	if err != nil {
		return nil, errors.Wrap(err, "parse longitude")
	}

	return &models.GeoPoint{Lat: lat, Lng: lng}, nil
}
