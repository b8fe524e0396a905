package api

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"shelter-cost/models"
	"shelter-cost/services"
	"shelter-cost/utils"
)

// Handler serves estimator queries. The estimator is read-only, so one
// Handler is shared by every request.
type Handler struct {
	est    *services.Estimator
	logger *utils.Logger
}

func NewHandler(est *services.Estimator, logger *utils.Logger) *Handler {
	return &Handler{est: est, logger: logger}
}

// GET /health
func (h *Handler) Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok", "states": len(h.est.States())})
}

// GET /occupancy
func (h *Handler) Occupancy(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"people_per_room": h.est.Params().PeoplePerRoom,
		"rows":            toOccupancy(h.est.Occupancy()),
	})
}

// GET /reserved-rooms
func (h *Handler) ReservedRooms(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"rows": toReservedRooms(h.est.ReservedRooms())})
}

// GET /employee-cost
func (h *Handler) EmployeeCost(c *gin.Context) {
	rows, sum := h.est.EmployeeCosts()
	c.JSON(http.StatusOK, gin.H{"rows": toEmployeeCosts(rows), "national_total": sum})
}

// GET /guest-fee
func (h *Handler) GuestFee(c *gin.Context) {
	rows, sum := h.est.GuestFees()
	c.JSON(http.StatusOK, gin.H{
		"nightly_fee":    h.est.Params().NightlyFee(),
		"rows":           toGuestFees(rows),
		"national_total": sum,
	})
}

// GET /total-cost
func (h *Handler) TotalCost(c *gin.Context) {
	rows, sums := h.est.TotalCosts()
	c.JSON(http.StatusOK, gin.H{"rows": toTotalCosts(rows), "national_total": toCostSums(sums)})
}

// GET /durational-cost
func (h *Handler) DurationalCost(c *gin.Context) {
	rows, sums := h.est.DurationalCosts()
	c.JSON(http.StatusOK, gin.H{
		"durations":      models.Durations,
		"rows":           toDurationalCosts(rows),
		"national_total": durationSums(sums),
	})
}

// GET /states/:state/daily-cost
func (h *Handler) DailyCostForState(c *gin.Context) {
	row, err := h.est.DailyCostForState(c.Param("state"))
	if errors.Is(err, models.ErrStateNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		return
	}
	if err != nil {
		h.logger.Error("[api] daily cost for %q: %v", c.Param("state"), err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
		return
	}
	c.JSON(http.StatusOK, toEmployeeCost(row))
}
