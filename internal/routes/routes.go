package routes

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/pkg/errors"
	"go.uber.org/zap"

	"github.com/FACorreiaa/go-tripplanner/internal/app/domain/geocode"
	"github.com/FACorreiaa/go-tripplanner/internal/app/domain/mapfocus"
	"github.com/FACorreiaa/go-tripplanner/internal/app/domain/planner"
	"github.com/FACorreiaa/go-tripplanner/internal/app/domain/plans"
	"github.com/FACorreiaa/go-tripplanner/internal/pkg/config"
)

type AppHandlers struct {
	Itinerary *planner.ItineraryHandlers
	Plans     *plans.PlansHandlers
	MapFocus  *mapfocus.FocusHandlers
}

func Setup(r *gin.Engine, cfg *config.Config, log *zap.Logger) error {
	handlers, err := setupDependencies(cfg, log)
	if err != nil {
		return errors.Wrap(err, "setup dependencies")
	}
	setupRouter(r, handlers)
	return nil
}

func setupDependencies(cfg *config.Config, log *zap.Logger) (*AppHandlers, error) {
	generator, err := newGenerator(cfg, log)
	if err != nil {
		return nil, err
	}

	resolver := geocode.NewNominatimResolver(cfg.Nominatim, log)
	itineraryParser := planner.NewParser(resolver, cfg.Planner.PerPersonCostThreshold, log)
	plannerService := planner.NewServiceImpl(generator, itineraryParser, log)

	store := plans.NewStore()
	focusBus := mapfocus.NewBus()

	return &AppHandlers{
		Itinerary: planner.NewItineraryHandlers(plannerService, store, log),
		Plans:     plans.NewPlansHandlers(store, log),
		MapFocus:  mapfocus.NewFocusHandlers(focusBus, log),
	}, nil
}

func newGenerator(cfg *config.Config, log *zap.Logger) (planner.Generator, error) {
	switch cfg.AIProvider {
	case "openai":
		log.Info("Using OpenAI generator", zap.String("model", cfg.OpenAI.Model))
		return planner.NewOpenAIGenerator(cfg.OpenAI.APIKey, cfg.OpenAI.Model), nil
	default:
		log.Info("Using Gemini generator", zap.String("model", cfg.Gemini.Model))
		generator, err := planner.NewGeminiGenerator(context.Background(), cfg.Gemini.APIKey)
		if err != nil {
			return nil, errors.Wrap(err, "create gemini generator")
		}
		return generator, nil
	}
}

func setupRouter(r *gin.Engine, h *AppHandlers) {
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	api := r.Group("/api/v1")
	{
		api.POST("/itineraries", h.Itinerary.HandleGenerateItinerary)
		api.GET("/itineraries/current", h.Itinerary.HandleCurrentItinerary)

		api.POST("/plans", h.Plans.HandleSavePlan)
		api.GET("/plans", h.Plans.HandleListPlans)
		api.DELETE("/plans/:id", h.Plans.HandleRemovePlan)

		api.POST("/map/focus", h.MapFocus.HandleFocusLocation)
		api.GET("/map/focus/stream", h.MapFocus.HandleFocusStream)
	}
}
