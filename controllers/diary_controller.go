package controllers

import (
	"errors"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"github.com/pdemaers/skb-voedingsdagboek/apperror"
	"github.com/pdemaers/skb-voedingsdagboek/middlewares"
	"github.com/pdemaers/skb-voedingsdagboek/services"
)

const dateLayout = "2006-01-02"

// DiaryController serves the food diary form: the pending list and the meal
// submission.
type DiaryController struct {
	svc *services.DiaryService
	log *zap.Logger
}

func NewDiaryController(svc *services.DiaryService, log *zap.Logger) *DiaryController {
	return &DiaryController{svc: svc, log: log}
}

type addItemRequest struct {
	Time        string  `json:"time" binding:"required"`
	FoodProduct string  `json:"food_product" binding:"required"`
	AmountValue float64 `json:"amount_value" binding:"required"`
	AmountUnit  string  `json:"amount_unit" binding:"required"`
}

type submitMealRequest struct {
	PlayerID string `json:"player_id" binding:"required"`
	Date     string `json:"date" binding:"required"` // YYYY-MM-DD
	DayType  string `json:"day_type" binding:"required"`
	MealType string `json:"meal_type" binding:"required"`
}

// ListItems returns the session's pending food elements.
func (ctl *DiaryController) ListItems(c *gin.Context) {
	c.JSON(200, gin.H{"items": ctl.svc.Items(c.GetString(middlewares.SessionKey))})
}

// AddItem validates one food element and appends it to the pending list.
func (ctl *DiaryController) AddItem(c *gin.Context) {
	var body addItemRequest
	if err := c.ShouldBindJSON(&body); err != nil {
		bindError(c, err)
		return
	}

	item, err := ctl.svc.AddItem(c.GetString(middlewares.SessionKey), services.FoodItemRequest{
		Time:        body.Time,
		FoodProduct: body.FoodProduct,
		AmountValue: body.AmountValue,
		AmountUnit:  body.AmountUnit,
	})
	if err != nil {
		serviceError(c, err)
		return
	}
	c.JSON(201, item)
}

// SubmitMeal persists the pending list as one meal entry.
func (ctl *DiaryController) SubmitMeal(c *gin.Context) {
	var body submitMealRequest
	if err := c.ShouldBindJSON(&body); err != nil {
		bindError(c, err)
		return
	}
	date, err := time.Parse(dateLayout, body.Date)
	if err != nil {
		c.JSON(422, gin.H{"error": "date must be in YYYY-MM-DD format"})
		return
	}

	entry, err := ctl.svc.SubmitMeal(c.Request.Context(),
		c.GetString(middlewares.SessionKey), body.PlayerID, date, body.DayType, body.MealType)
	if err != nil {
		serviceError(c, err)
		return
	}
	c.JSON(201, entry)
}

// bindError distinguishes field validation failures from malformed JSON.
func bindError(c *gin.Context, err error) {
	var validationErr validator.ValidationErrors
	if errors.As(err, &validationErr) {
		c.JSON(400, gin.H{"errors": apperror.CustomValidationError(err)})
		return
	}
	c.JSON(400, gin.H{"error": "invalid request payload"})
}

// serviceError maps the error taxonomy onto response codes.
func serviceError(c *gin.Context, err error) {
	msg := apperror.Message(err)
	switch apperror.KindOf(err) {
	case apperror.KindValidation:
		c.JSON(422, gin.H{"error": msg})
	case apperror.KindDataUnavailable:
		c.JSON(503, gin.H{"error": msg})
	case apperror.KindPersistence:
		c.JSON(502, gin.H{"error": msg})
	default:
		c.JSON(500, gin.H{"error": msg})
	}
}
