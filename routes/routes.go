package routes

import (
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/pdemaers/skb-voedingsdagboek/controllers"
	"github.com/pdemaers/skb-voedingsdagboek/middlewares"
	"github.com/pdemaers/skb-voedingsdagboek/services"
)

// SetupRouter wires the controllers onto the API surface.
func SetupRouter(
	log *zap.Logger,
	sessions *services.SessionService,
	roster *services.RosterService,
	diary *services.DiaryService,
	weights *services.WeightService,
) *gin.Engine {
	r := gin.Default()

	r.GET("/healthz", func(c *gin.Context) {
		c.String(200, "OK")
	})

	rosterCtl := controllers.NewRosterController(roster, log)
	diaryCtl := controllers.NewDiaryController(diary, log)
	weightCtl := controllers.NewWeightController(weights, log)
	sessionCtl := controllers.NewSessionController(sessions)

	api := r.Group("/api/v1")
	{
		api.GET("/roster", rosterCtl.PlayerIDs)
		api.GET("/info", controllers.Info)
	}

	// Session-scoped form state
	form := api.Group("")
	form.Use(middlewares.SessionMiddleware(sessions))
	{
		form.GET("/session", sessionCtl.Show)
		form.GET("/diary/items", diaryCtl.ListItems)
		form.POST("/diary/items", diaryCtl.AddItem)
		form.POST("/diary/meals", diaryCtl.SubmitMeal)
		form.POST("/weights", weightCtl.SubmitWeight)
	}

	return r
}
