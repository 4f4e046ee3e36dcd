package planner

import (
	"context"
	"regexp"
	"strconv"
	"strings"
	"sync"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/FACorreiaa/go-tripplanner/internal/app/domain/geocode"
	"github.com/FACorreiaa/go-tripplanner/internal/app/models"
)

var (
	// "Day 3:" or "Day 3-" headings. The captured number is deliberately not
	// used for day numbering; output days are renumbered by position so the
	// sequence stays gap-free when the model mislabels a day.
	dayLabelPattern = regexp.MustCompile(`Day \d+[:\-]`)

	// A candidate activity span: a leading time token ("HH:MM" or
	// "HH:MM - HH:MM"), a name, an optional parenthesized address and an
	// optional trailing cost, all on one line.
	activitySpanPattern = regexp.MustCompile(`\d{1,2}:\d{2}(?:\s*-\s*\d{1,2}:\d{2})?[ \t]*[^(\n]+(?:\([^)]+\))?[^(\n]*`)

	timeTokenPattern     = regexp.MustCompile(`\d{1,2}:\d{2}(?:\s*-\s*\d{1,2}:\d{2})?`)
	costTokenPattern     = regexp.MustCompile(`₹\s*(\d+)`)
	parenthesizedPattern = regexp.MustCompile(`\(([^)]+)\)`)

	checkInPattern  = regexp.MustCompile(`(?i)check[- ]in:?\s*(\d{1,2}:\d{2})`)
	checkOutPattern = regexp.MustCompile(`(?i)check[- ]out:?\s*(\d{1,2}:\d{2})`)
)

var mealLabelPatterns = map[models.MealType]*regexp.Regexp{
	models.MealTypeBreakfast: regexp.MustCompile(`(?i)breakfast:([^₹\n]+)(?:₹\s*(\d+))?`),
	models.MealTypeLunch:     regexp.MustCompile(`(?i)lunch:([^₹\n]+)(?:₹\s*(\d+))?`),
	models.MealTypeDinner:    regexp.MustCompile(`(?i)dinner:([^₹\n]+)(?:₹\s*(\d+))?`),
}

// Per-person defaults applied when a meal label is missing from the text,
// matching the price bands the prompt asks the model to stay within.
var defaultMealCosts = map[models.MealType]int{
	models.MealTypeBreakfast: 400,
	models.MealTypeLunch:     600,
	models.MealTypeDinner:    800,
}

var mealDisplayNames = map[models.MealType]string{
	models.MealTypeBreakfast: "Breakfast",
	models.MealTypeLunch:     "Lunch",
	models.MealTypeDinner:    "Dinner",
}

const defaultRestaurantName = "Local Restaurant"

// Parser recovers a structured itinerary from the AI's prose response. It is
// a best-effort extractor: every extraction point degrades to a documented
// default instead of failing the parse.
type Parser struct {
	resolver           geocode.Resolver
	perPersonThreshold int
	logger             *zap.Logger
}

func NewParser(resolver geocode.Resolver, perPersonThreshold int, logger *zap.Logger) *Parser {
	if perPersonThreshold <= 0 {
		perPersonThreshold = 1000
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Parser{
		resolver:           resolver,
		perPersonThreshold: perPersonThreshold,
		logger:             logger,
	}
}

// cleanResponseText strips the markdown emphasis markers the model tends to
// sprinkle over the plain-text format it was asked for.
func cleanResponseText(text string) string {
	cleaned := strings.ReplaceAll(text, "*", "")
	return strings.ReplaceAll(cleaned, "_", "")
}

// Parse segments the cleaned response into days and extracts each day
// concurrently. Days are numbered 1..N by position. A response without any
// day label yields an empty day list.
func (p *Parser) Parse(ctx context.Context, text string, req models.TripRequest) []models.TravelDay {
	segments := splitDays(text)
	days := make([]models.TravelDay, len(segments))

	g, gctx := errgroup.WithContext(ctx)
	for i, segment := range segments {
		g.Go(func() error {
			days[i] = p.parseDay(gctx, i+1, segment, req)
			return nil
		})
	}
	_ = g.Wait() // day extraction never errors; geocoding misses degrade to the sentinel

	return days
}

// splitDays returns the text between consecutive day labels, label text
// discarded, empty segments dropped. Text before the first label (greetings,
// preamble) is not a day.
func splitDays(text string) []string {
	labels := dayLabelPattern.FindAllStringIndex(text, -1)
	if len(labels) == 0 {
		return nil
	}

	segments := make([]string, 0, len(labels))
	for i, label := range labels {
		end := len(text)
		if i+1 < len(labels) {
			end = labels[i+1][0]
		}
		segment := strings.TrimSpace(text[label[1]:end])
		if segment == "" {
			continue
		}
		segments = append(segments, segment)
	}
	return segments
}

func (p *Parser) parseDay(ctx context.Context, dayNumber int, segment string, req models.TripRequest) models.TravelDay {
	day := models.TravelDay{Day: dayNumber}

	var wg sync.WaitGroup
	wg.Add(2)
	go func() {
		defer wg.Done()
		day.Activities = p.extractActivities(ctx, segment, req)
	}()
	go func() {
		defer wg.Done()
		day.Meals = p.extractMeals(ctx, segment, req)
	}()
	wg.Wait()

	if m := checkInPattern.FindStringSubmatch(segment); m != nil {
		day.CheckIn = m[1]
	}
	if m := checkOutPattern.FindStringSubmatch(segment); m != nil {
		day.CheckOut = m[1]
	}

	return day
}

// extractActivities fans out one goroutine per candidate span so the
// geocoding lookups overlap, writing results by index to keep source-text
// order regardless of completion order.
func (p *Parser) extractActivities(ctx context.Context, segment string, req models.TripRequest) []models.Activity {
	spans := activitySpanPattern.FindAllString(segment, -1)
	activities := make([]models.Activity, len(spans))

	var wg sync.WaitGroup
	for i, span := range spans {
		wg.Add(1)
		go func() {
			defer wg.Done()
			activities[i] = p.extractActivity(ctx, span, req)
		}()
	}
	wg.Wait()

	return activities
}

func (p *Parser) extractActivity(ctx context.Context, span string, req models.TripRequest) models.Activity {
	timeToken := timeTokenPattern.FindString(span)
	remainder := strings.TrimSpace(strings.Replace(span, timeToken, "", 1))

	cost := 0
	if m := costTokenPattern.FindStringSubmatch(remainder); m != nil {
		if parsed, err := strconv.Atoi(m[1]); err == nil {
			cost = parsed
		}
	}
	// Figures at or below the threshold are read as per-person and scaled to
	// the group; larger figures are assumed to be totals already. Approximate
	// by construction; tune PER_PERSON_COST_THRESHOLD against real output.
	if cost <= p.perPersonThreshold {
		cost *= req.NumberOfTravelers
	}

	address := ""
	if m := parenthesizedPattern.FindStringSubmatch(remainder); m != nil {
		address = strings.TrimSpace(m[1])
	}

	location := models.GeoPoint{}
	if address != "" {
		location = p.resolver.Resolve(ctx, address+", "+req.Destination)
	}

	return models.Activity{
		Name:        strings.TrimSpace(costTokenPattern.ReplaceAllString(strings.SplitN(remainder, "(", 2)[0], "")),
		Description: strings.TrimSpace(costTokenPattern.ReplaceAllString(remainder, "")),
		Time:        timeToken,
		Cost:        cost,
		Location:    location,
		Address:     address,
	}
}

// extractMeals always yields breakfast, lunch and dinner in that order, one
// goroutine per type; a type whose label is absent falls back to defaults.
func (p *Parser) extractMeals(ctx context.Context, segment string, req models.TripRequest) []models.Meal {
	meals := make([]models.Meal, len(models.MealTypes))

	var wg sync.WaitGroup
	for i, mealType := range models.MealTypes {
		wg.Add(1)
		go func() {
			defer wg.Done()
			meals[i] = p.extractMeal(ctx, mealType, segment, req)
		}()
	}
	wg.Wait()

	return meals
}

func (p *Parser) extractMeal(ctx context.Context, mealType models.MealType, segment string, req models.TripRequest) models.Meal {
	restaurantInfo := defaultRestaurantName
	cost := defaultMealCosts[mealType]

	// First label match per type wins; duplicate labels are ignored.
	if m := mealLabelPatterns[mealType].FindStringSubmatch(segment); m != nil {
		restaurantInfo = strings.TrimSpace(m[1])
		if m[2] != "" {
			if parsed, err := strconv.Atoi(m[2]); err == nil {
				cost = parsed
			}
		}
	}

	address := ""
	if m := parenthesizedPattern.FindStringSubmatch(restaurantInfo); m != nil {
		address = strings.TrimSpace(m[1])
	}

	location := models.GeoPoint{}
	if address != "" {
		location = p.resolver.Resolve(ctx, address+", "+req.Destination)
	}

	return models.Meal{
		Type:       mealType,
		Name:       mealDisplayNames[mealType],
		Restaurant: strings.TrimSpace(removeFirstParenthesized(restaurantInfo)),
		Cuisine:    classifyCuisine(restaurantInfo),
		// Meal figures are always per-person, per the prompt's price bands.
		Cost:     cost * req.NumberOfTravelers,
		Location: location,
		Address:  address,
	}
}

func removeFirstParenthesized(s string) string {
	if loc := parenthesizedPattern.FindStringIndex(s); loc != nil {
		return s[:loc[0]] + s[loc[1]:]
	}
	return s
}
