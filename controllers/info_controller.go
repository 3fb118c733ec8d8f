package controllers

import "github.com/gin-gonic/gin"

// Diary guidelines, shown by the shell on its information tab.
var infoGuidelines = []string{
	"Describe what you eat and drink",
	"Include brand names when applicable",
	"Specify quantities in precise measurements",
	"For restaurant meals, note the establishment",
	"Fill out the diary individually without assistance from other players",
	"Contact your trainer if you need help",
}

// Info returns the static diary guidance.
func Info(c *gin.Context) {
	c.JSON(200, gin.H{
		"title":      "Extra Information",
		"intro":      "Please provide as accurate as possible information about everything you eat and drink during the day.",
		"guidelines": infoGuidelines,
	})
}
