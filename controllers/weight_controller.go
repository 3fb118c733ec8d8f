package controllers

import (
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/pdemaers/skb-voedingsdagboek/middlewares"
	"github.com/pdemaers/skb-voedingsdagboek/services"
)

// WeightController serves the weight registration form.
type WeightController struct {
	svc *services.WeightService
	log *zap.Logger
}

func NewWeightController(svc *services.WeightService, log *zap.Logger) *WeightController {
	return &WeightController{svc: svc, log: log}
}

type submitWeightRequest struct {
	PlayerID     string  `json:"player_id" binding:"required"`
	Date         string  `json:"date" binding:"required"` // YYYY-MM-DD
	DayType      string  `json:"day_type" binding:"required"`
	WeightBefore float64 `json:"weight_before" binding:"required"`
	WeightAfter  float64 `json:"weight_after" binding:"required"`
}

// SubmitWeight persists one before/after measurement.
func (ctl *WeightController) SubmitWeight(c *gin.Context) {
	var body submitWeightRequest
	if err := c.ShouldBindJSON(&body); err != nil {
		bindError(c, err)
		return
	}
	date, err := time.Parse(dateLayout, body.Date)
	if err != nil {
		c.JSON(422, gin.H{"error": "date must be in YYYY-MM-DD format"})
		return
	}

	entry, err := ctl.svc.SubmitWeight(c.Request.Context(),
		c.GetString(middlewares.SessionKey), body.PlayerID, date, body.DayType,
		body.WeightBefore, body.WeightAfter)
	if err != nil {
		serviceError(c, err)
		return
	}
	c.JSON(201, entry)
}
