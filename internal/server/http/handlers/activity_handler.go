package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

const (
	tmplActivity = "activity/list"
	navActivity  = "activity"
)

// ActivityHandler shows the audit trail and reports health.
type ActivityHandler struct {
	facade ActivityFacade
	*Responder
}

// NewActivityHandler constructs ActivityHandler.
func NewActivityHandler(facade ActivityFacade, r *Responder) *ActivityHandler {
	return &ActivityHandler{facade: facade, Responder: r}
}

// List handles GET /activity.
func (h *ActivityHandler) List(c *gin.Context) {
	entries, err := h.facade.Activity(c.Request.Context())
	if err != nil {
		_ = c.Error(err)
		h.Render(c, http.StatusServiceUnavailable, tmplError, "Activity unavailable", navActivity, errorView{
			Status:  http.StatusServiceUnavailable,
			Message: "The activity log could not be read.",
		})
		return
	}
	h.Render(c, http.StatusOK, tmplActivity, "Activity", navActivity, entries)
}

// Health handles GET /healthz.
func (h *ActivityHandler) Health(c *gin.Context) {
	if err := h.facade.Health(c.Request.Context()); err != nil {
		_ = c.Error(err)
		c.JSON(http.StatusServiceUnavailable, gin.H{"status": "unavailable"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

// NotFound renders the 404 page for unknown routes.
func (h *ActivityHandler) NotFound(c *gin.Context) {
	h.Render(c, http.StatusNotFound, tmplError, "Not found", "", errorView{
		Status:  http.StatusNotFound,
		Message: "The page you are looking for does not exist.",
	})
}
