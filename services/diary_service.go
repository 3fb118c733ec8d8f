package services

import (
	"context"
	"strings"
	"time"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.uber.org/zap"

	"github.com/pdemaers/skb-voedingsdagboek/apperror"
	"github.com/pdemaers/skb-voedingsdagboek/models"
	"github.com/pdemaers/skb-voedingsdagboek/utils"
)

// EntryInserter is the slice of a Mongo collection the submission flows need.
// *mongo.Collection satisfies it.
type EntryInserter interface {
	InsertOne(ctx context.Context, document interface{}, opts ...*options.InsertOneOptions) (*mongo.InsertOneResult, error)
}

// FoodItemRequest is a candidate food element before validation.
type FoodItemRequest struct {
	Time        string  `json:"time"`
	FoodProduct string  `json:"food_product"`
	AmountValue float64 `json:"amount_value"`
	AmountUnit  string  `json:"amount_unit"`
}

// DiaryService owns the pending-list and meal-submission flows.
type DiaryService struct {
	sessions *SessionService
	meals    EntryInserter
	log      *zap.Logger
	now      func() time.Time
}

func NewDiaryService(sessions *SessionService, meals EntryInserter, log *zap.Logger) *DiaryService {
	return &DiaryService{sessions: sessions, meals: meals, log: log, now: time.Now}
}

// AddItem validates a candidate food element and appends it to the session's
// pending list. On rejection the pending list is untouched.
func (s *DiaryService) AddItem(sessionID string, req FoodItemRequest) (models.FoodItem, error) {
	product := strings.TrimSpace(req.FoodProduct)
	if product == "" {
		return models.FoodItem{}, apperror.Validation("food element cannot be empty")
	}
	if req.AmountValue <= 0 {
		return models.FoodItem{}, apperror.Validation("amount has to be larger than 0")
	}
	if !models.ValidChoice(req.AmountUnit, models.AmountUnits) {
		return models.FoodItem{}, apperror.Validation("unknown amount unit: " + req.AmountUnit)
	}
	parsed, err := time.Parse("15:04", strings.TrimSpace(req.Time))
	if err != nil {
		return models.FoodItem{}, apperror.Validation("time must be in HH:MM format")
	}

	item := models.FoodItem{
		Time:        parsed.Format("15:04"),
		FoodProduct: product,
		AmountValue: req.AmountValue,
		AmountUnit:  req.AmountUnit,
	}
	s.sessions.AppendItem(sessionID, item)
	return item, nil
}

// Items returns the session's pending food elements.
func (s *DiaryService) Items(sessionID string) []models.FoodItem {
	return s.sessions.PendingItems(sessionID)
}

// SubmitMeal builds a MealEntry from the session's pending list and persists
// it as a single insert. On success the pending list is cleared and the player
// id is remembered; on failure the pending list is left untouched so the user
// can simply resubmit. The player id is not checked against the roster, the
// roster only feeds the selection list.
func (s *DiaryService) SubmitMeal(ctx context.Context, sessionID, playerID string, date time.Time, dayType, mealType string) (*models.MealEntry, error) {
	pending := s.sessions.PendingItems(sessionID)
	if len(pending) == 0 {
		return nil, apperror.Validation("at least one food element required")
	}
	if strings.TrimSpace(playerID) == "" {
		return nil, apperror.Validation("player id is required")
	}
	if !models.ValidChoice(dayType, models.FoodDayTypes) {
		return nil, apperror.Validation("unknown day type: " + dayType)
	}
	if !models.ValidChoice(mealType, models.MealTypes) {
		return nil, apperror.Validation("unknown meal type: " + mealType)
	}
	if utils.InFuture(date, s.now()) {
		return nil, apperror.Validation("meal date cannot be in the future")
	}

	entry := &models.MealEntry{
		PlayerID:     playerID,
		MealDate:     utils.EncodeDate(date),
		DayType:      dayType,
		MealType:     mealType,
		MealElements: pending,
	}

	if _, err := s.meals.InsertOne(ctx, entry); err != nil {
		s.log.Error("meal insert failed", zap.String("player_id", playerID), zap.Error(err))
		return nil, apperror.Persistence("failed to save your meal", err)
	}

	s.sessions.FinishMeal(sessionID, playerID)
	s.log.Info("meal entry saved",
		zap.String("player_id", playerID),
		zap.Int("meal_date", entry.MealDate),
		zap.Int("elements", len(entry.MealElements)))
	return entry, nil
}
