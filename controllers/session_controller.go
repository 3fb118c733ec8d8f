package controllers

import (
	"github.com/gin-gonic/gin"

	"github.com/pdemaers/skb-voedingsdagboek/middlewares"
	"github.com/pdemaers/skb-voedingsdagboek/services"
)

// SessionController lets the shell inspect its session so it can pre-select
// the last submitted player and re-render the pending table after a reload.
type SessionController struct {
	sessions *services.SessionService
}

func NewSessionController(sessions *services.SessionService) *SessionController {
	return &SessionController{sessions: sessions}
}

// Show returns the remembered player id and the pending item count.
func (ctl *SessionController) Show(c *gin.Context) {
	id := c.GetString(middlewares.SessionKey)
	c.JSON(200, gin.H{
		"session_id":    id,
		"player_id":     ctl.sessions.RememberedPlayer(id),
		"pending_items": len(ctl.sessions.PendingItems(id)),
	})
}
