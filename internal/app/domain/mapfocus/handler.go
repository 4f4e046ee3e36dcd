package mapfocus

import (
	"io"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/FACorreiaa/go-tripplanner/internal/app/models"
)

// FocusHandlers bridges the focus bus to HTTP: the plan display posts a
// point, the map listens on an SSE stream.
type FocusHandlers struct {
	bus    *Bus
	logger *zap.Logger
}

func NewFocusHandlers(bus *Bus, logger *zap.Logger) *FocusHandlers {
	return &FocusHandlers{bus: bus, logger: logger}
}

// HandleFocusLocation publishes a location-focus signal. The zero sentinel
// means "no resolved location" and is never a focusable point.
func (h *FocusHandlers) HandleFocusLocation(c *gin.Context) {
	var point models.GeoPoint
	if err := c.ShouldBindJSON(&point); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if point.IsZero() {
		c.JSON(http.StatusBadRequest, gin.H{"error": "location is unresolved"})
		return
	}

	h.bus.Publish(point)
	c.Status(http.StatusAccepted)
}

// HandleFocusStream streams focus events to the map component over SSE until
// the client disconnects.
func (h *FocusHandlers) HandleFocusStream(c *gin.Context) {
	c.Writer.Header().Set("Content-Type", "text/event-stream")
	c.Writer.Header().Set("Cache-Control", "no-cache")
	c.Writer.Header().Set("Connection", "keep-alive")

	ch, cancel := h.bus.Subscribe()
	defer cancel()

	c.Stream(func(w io.Writer) bool {
		select {
		case point, ok := <-ch:
			if !ok {
				return false
			}
			c.SSEvent("focus", point)
			return true
		case <-c.Request.Context().Done():
			return false
		}
	})
}
