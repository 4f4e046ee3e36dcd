package plans

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/FACorreiaa/go-tripplanner/internal/app/models"
)

// PlansHandlers exposes the saved-plan list over HTTP.
type PlansHandlers struct {
	store  *Store
	logger *zap.Logger
}

func NewPlansHandlers(store *Store, logger *zap.Logger) *PlansHandlers {
	return &PlansHandlers{store: store, logger: logger}
}

// HandleSavePlan appends the current plan to the saved list.
func (h *PlansHandlers) HandleSavePlan(c *gin.Context) {
	plan, ok := h.store.Current()
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": models.ErrNoCurrentPlan.Error()})
		return
	}

	h.store.Save(*plan)
	h.logger.Info("Plan saved", zap.String("plan_id", plan.ID.String()))
	c.JSON(http.StatusCreated, gin.H{"plan": plan})
}

// HandleListPlans returns every saved plan.
func (h *PlansHandlers) HandleListPlans(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"plans": h.store.Saved()})
}

// HandleRemovePlan deletes one saved plan by id.
func (h *PlansHandlers) HandleRemovePlan(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid plan id"})
		return
	}

	if !h.store.Remove(id) {
		c.JSON(http.StatusNotFound, gin.H{"error": models.ErrPlanNotFound.Error()})
		return
	}

	h.logger.Info("Plan removed", zap.String("plan_id", id.String()))
	c.Status(http.StatusNoContent)
}
