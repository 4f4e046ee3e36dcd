package planner

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
	"go.uber.org/zap"

	"github.com/FACorreiaa/go-tripplanner/internal/app/models"
	"github.com/FACorreiaa/go-tripplanner/internal/observability/metrics"
)

// Service is the generation entry point: prompt the AI, parse its response
// into a structured plan and enforce the budget post-condition. It either
// returns a fully valid TravelPlan or an error, never a partial plan.
type Service interface {
	GenerateTravelPlan(ctx context.Context, req models.TripRequest) (*models.TravelPlan, error)
}

type ServiceImpl struct {
	generator Generator
	parser    *Parser
	logger    *zap.Logger
}

func NewServiceImpl(generator Generator, parser *Parser, logger *zap.Logger) *ServiceImpl {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &ServiceImpl{
		generator: generator,
		parser:    parser,
		logger:    logger,
	}
}

func (s *ServiceImpl) GenerateTravelPlan(ctx context.Context, req models.TripRequest) (*models.TravelPlan, error) {
	ctx, span := otel.Tracer("PlannerService").Start(ctx, "GenerateTravelPlan", trace.WithAttributes(
		attribute.String("trip.destination", req.Destination),
		attribute.Int("trip.budget", req.Budget),
		attribute.Int("trip.requested_days", req.NumberOfDays),
		attribute.Int("trip.travelers", req.NumberOfTravelers),
	))
	defer span.End()

	start := time.Now()
	prompt := buildItineraryPrompt(req)

	aiStart := time.Now()
	text, err := s.generator.Generate(ctx, prompt)
	metrics.Get().AIRequestDuration.Record(ctx, time.Since(aiStart).Seconds())
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "AI request failed")
		return nil, errors.Wrap(err, "AI error")
	}
	if strings.TrimSpace(text) == "" {
		span.SetStatus(codes.Error, "empty AI response")
		return nil, models.ErrEmptyAIResponse
	}

	days := s.parser.Parse(ctx, cleanResponseText(text), req)
	span.SetAttributes(attribute.Int("plan.days_parsed", len(days)))

	plan := &models.TravelPlan{
		ID:                uuid.New(),
		Destination:       req.Destination,
		Budget:            req.Budget,
		Interests:         req.Interests,
		NumberOfTravelers: req.NumberOfTravelers,
		Transportation:    req.Transportation,
		NumberOfDays:      req.NumberOfDays,
		Accommodation:     req.Accommodation,
		Description:       req.Description,
		Days:              days,
		CreatedAt:         time.Now(),
	}

	if total := plan.TotalCost(); total > req.Budget {
		metrics.Get().BudgetRejectionsTotal.Add(ctx, 1)
		span.SetStatus(codes.Error, "budget exceeded")
		s.logger.Warn("Discarding plan over budget",
			zap.Int("total_cost", total),
			zap.Int("budget", req.Budget))
		return nil, &models.BudgetExceededError{TotalCost: total, Budget: req.Budget}
	}

	metrics.Get().PlansGeneratedTotal.Add(ctx, 1)
	metrics.Get().PlanGenerationDuration.Record(ctx, time.Since(start).Seconds())
	span.SetStatus(codes.Ok, "Travel plan generated")
	s.logger.Info("Travel plan generated",
		zap.String("plan_id", plan.ID.String()),
		zap.Int("days", len(days)),
		zap.Int("total_cost", plan.TotalCost()))

	return plan, nil
}
