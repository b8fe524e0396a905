package api

import (
	"time"

	"github.com/gin-gonic/gin"

	"shelter-cost/services"
	"shelter-cost/utils"
)

func NewRouter(est *services.Estimator, logger *utils.Logger) *gin.Engine {
	h := NewHandler(est, logger)

	r := gin.New()
	r.Use(gin.Recovery(), requestLogger(logger))

	r.GET("/health", h.Health)
	r.GET("/occupancy", h.Occupancy)
	r.GET("/reserved-rooms", h.ReservedRooms)
	r.GET("/employee-cost", h.EmployeeCost)
	r.GET("/guest-fee", h.GuestFee)
	r.GET("/total-cost", h.TotalCost)
	r.GET("/durational-cost", h.DurationalCost)
	r.GET("/states/:state/daily-cost", h.DailyCostForState)

	return r
}

func requestLogger(logger *utils.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		logger.Debug("[api] %s %s -> %d (%s)",
			c.Request.Method, c.Request.URL.Path, c.Writer.Status(), time.Since(start).Round(time.Microsecond))
	}
}
