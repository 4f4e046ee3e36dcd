package metrics

import (
	"log"
	"sync"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/metric"
)

// AppMetrics holds the application's metric instruments.
// Make fields public so they can be accessed from other packages.
type AppMetrics struct {
	PlansGeneratedTotal    metric.Int64Counter
	PlanGenerationDuration metric.Float64Histogram
	BudgetRejectionsTotal  metric.Int64Counter
	AIRequestDuration      metric.Float64Histogram
	GeocodeLookupsTotal    metric.Int64Counter
	GeocodeCacheHitsTotal  metric.Int64Counter
}

var (
	// Global instance of AppMetrics (initialized once)
	appMetrics *AppMetrics
	once       sync.Once
)

// InitAppMetrics initializes the global metrics instruments ONLY ONCE.
// It gets the Meter from the globally configured MeterProvider.
func InitAppMetrics() {
	once.Do(func() {
		meter := otel.GetMeterProvider().Meter("go-tripplanner")
		var err error
		m := &AppMetrics{}

		m.PlansGeneratedTotal, err = meter.Int64Counter(
			"travel_plans_generated_total",
			metric.WithDescription("Total number of travel plans generated successfully"),
			metric.WithUnit("{plan}"),
		)
		if err != nil {
			log.Fatalf("Metrics: Failed to create travel_plans_generated_total: %v", err)
		}

		m.PlanGenerationDuration, err = meter.Float64Histogram(
			"travel_plan_generation_duration_seconds",
			metric.WithDescription("End-to-end duration of plan generation in seconds"),
			metric.WithUnit("s"),
		)
		if err != nil {
			log.Fatalf("Metrics: Failed to create travel_plan_generation_duration_seconds: %v", err)
		}

		m.BudgetRejectionsTotal, err = meter.Int64Counter(
			"travel_plan_budget_rejections_total",
			metric.WithDescription("Total number of plans rejected for exceeding the requested budget"),
			metric.WithUnit("{plan}"),
		)
		if err != nil {
			log.Fatalf("Metrics: Failed to create travel_plan_budget_rejections_total: %v", err)
		}

		m.AIRequestDuration, err = meter.Float64Histogram(
			"ai_request_duration_seconds",
			metric.WithDescription("Duration of generative AI requests in seconds"),
			metric.WithUnit("s"),
		)
		if err != nil {
			log.Fatalf("Metrics: Failed to create ai_request_duration_seconds: %v", err)
		}

		m.GeocodeLookupsTotal, err = meter.Int64Counter(
			"geocode_lookups_total",
			metric.WithDescription("Total number of external geocoding lookups issued"),
			metric.WithUnit("{lookup}"),
		)
		if err != nil {
			log.Fatalf("Metrics: Failed to create geocode_lookups_total: %v", err)
		}

		m.GeocodeCacheHitsTotal, err = meter.Int64Counter(
			"geocode_cache_hits_total",
			metric.WithDescription("Total number of geocoding lookups served from the cache"),
			metric.WithUnit("{lookup}"),
		)
		if err != nil {
			log.Fatalf("Metrics: Failed to create geocode_cache_hits_total: %v", err)
		}

		appMetrics = m // Assign to global variable
	})
}

// Get returns the globally initialized AppMetrics instance, initializing it
// against the current global MeterProvider on first use.
func Get() *AppMetrics {
	InitAppMetrics()
	return appMetrics
}
