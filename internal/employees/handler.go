package employees

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"feasibility-backend/internal/shared/server/respond"
)

// Handler exposes the read-only employee snapshot.
type Handler struct {
	Repo Repo
}

// NewHandler constructs a Handler.
func NewHandler(repo Repo) *Handler {
	return &Handler{Repo: repo}
}

// RegisterRoutes attaches employee routes to the router group.
func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("/employees", h.listEmployees)
}

func (h *Handler) listEmployees(c *gin.Context) {
	pool, err := h.Repo.ListActive(c.Request.Context())
	if err != nil {
		respond.Error(c, http.StatusInternalServerError, "internal_error", "failed to list employees", nil)
		return
	}

	items := make([]gin.H, 0, len(pool))
	for _, e := range pool {
		items = append(items, gin.H{
			"id":                     e.ID,
			"name":                   e.Name,
			"title":                  e.Title,
			"seniorityLevel":         e.Seniority.String(),
			"hourlyRate":             e.HourlyRate,
			"availabilityPercentage": e.Availability,
			"skills":                 e.Skills,
		})
	}
	respond.OK(c, gin.H{"employees": items, "count": len(items)})
}
