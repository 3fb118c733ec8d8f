package controllers

import (
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/pdemaers/skb-voedingsdagboek/services"
)

// RosterController exposes the player selection list.
type RosterController struct {
	svc *services.RosterService
	log *zap.Logger
}

func NewRosterController(svc *services.RosterService, log *zap.Logger) *RosterController {
	return &RosterController{svc: svc, log: log}
}

// PlayerIDs returns the roster's player ids. ?refresh=1 bypasses the cache.
// An empty list means "no data available": the shell disables submission.
func (ctl *RosterController) PlayerIDs(c *gin.Context) {
	ids, err := ctl.svc.PlayerIDs(c.Request.Context(), c.Query("refresh") == "1")
	if err != nil {
		serviceError(c, err)
		return
	}
	c.JSON(200, gin.H{"player_ids": ids})
}
