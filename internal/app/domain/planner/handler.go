package planner

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/FACorreiaa/go-tripplanner/internal/app/domain/plans"
	"github.com/FACorreiaa/go-tripplanner/internal/app/models"
)

// ItineraryHandlers exposes plan generation over HTTP.
type ItineraryHandlers struct {
	service Service
	store   *plans.Store
	logger  *zap.Logger
}

func NewItineraryHandlers(service Service, store *plans.Store, logger *zap.Logger) *ItineraryHandlers {
	return &ItineraryHandlers{service: service, store: store, logger: logger}
}

// planResponse carries the plan plus the banner data the UI renders its own
// cosmetic over-budget warning from; the hard budget check already ran.
func planResponse(plan *models.TravelPlan) gin.H {
	total := plan.TotalCost()
	return gin.H{
		"plan":             plan,
		"totalCost":        total,
		"displayTotalCost": models.FormatINR(total),
		"withinBudget":     total <= plan.Budget,
	}
}

// HandleGenerateItinerary runs the full generation pipeline and stores the
// result as the current plan. Nothing is stored on failure.
func (h *ItineraryHandlers) HandleGenerateItinerary(c *gin.Context) {
	var req models.TripRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	plan, err := h.service.GenerateTravelPlan(c.Request.Context(), req)
	if err != nil {
		var budgetErr *models.BudgetExceededError
		switch {
		case errors.As(err, &budgetErr):
			c.JSON(http.StatusUnprocessableEntity, gin.H{
				"error":            budgetErr.Error(),
				"totalCost":        budgetErr.TotalCost,
				"budget":           budgetErr.Budget,
				"displayTotalCost": models.FormatINR(budgetErr.TotalCost),
				"displayBudget":    models.FormatINR(budgetErr.Budget),
			})
		case errors.Is(err, models.ErrEmptyAIResponse):
			c.JSON(http.StatusBadGateway, gin.H{"error": err.Error()})
		default:
			h.logger.Error("Plan generation failed", zap.Error(err))
			c.JSON(http.StatusBadGateway, gin.H{"error": err.Error()})
		}
		return
	}

	h.store.SetCurrent(plan)
	c.JSON(http.StatusOK, planResponse(plan))
}

// HandleCurrentItinerary returns the last generated plan.
func (h *ItineraryHandlers) HandleCurrentItinerary(c *gin.Context) {
	plan, ok := h.store.Current()
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": models.ErrNoCurrentPlan.Error()})
		return
	}
	c.JSON(http.StatusOK, planResponse(plan))
}
