package services

import (
	"context"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/pdemaers/skb-voedingsdagboek/apperror"
	"github.com/pdemaers/skb-voedingsdagboek/models"
	"github.com/pdemaers/skb-voedingsdagboek/utils"
)

// WeightService owns the weight-registration flow.
type WeightService struct {
	sessions *SessionService
	weights  EntryInserter
	log      *zap.Logger
	now      func() time.Time
}

func NewWeightService(sessions *SessionService, weights EntryInserter, log *zap.Logger) *WeightService {
	return &WeightService{sessions: sessions, weights: weights, log: log, now: time.Now}
}

// SubmitWeight validates and persists one before/after measurement as a single
// flat record. There is no partial state to roll back on failure.
func (s *WeightService) SubmitWeight(ctx context.Context, sessionID, playerID string, date time.Time, dayType string, weightBefore, weightAfter float64) (*models.WeightEntry, error) {
	if weightBefore <= 0 || weightAfter <= 0 {
		return nil, apperror.Validation("weight values must be positive numbers")
	}
	if strings.TrimSpace(playerID) == "" {
		return nil, apperror.Validation("player id is required")
	}
	if !models.ValidChoice(dayType, models.WeightDayTypes) {
		return nil, apperror.Validation("unknown day type: " + dayType)
	}
	if utils.InFuture(date, s.now()) {
		return nil, apperror.Validation("registration date cannot be in the future")
	}

	entry := &models.WeightEntry{
		PlayerID:         playerID,
		RegistrationDate: utils.EncodeDate(date),
		DayType:          dayType,
		WeightBefore:     weightBefore,
		WeightAfter:      weightAfter,
	}

	if _, err := s.weights.InsertOne(ctx, entry); err != nil {
		s.log.Error("weight insert failed", zap.String("player_id", playerID), zap.Error(err))
		return nil, apperror.Persistence("failed to save your weight registration", err)
	}

	s.sessions.RememberPlayer(sessionID, playerID)
	s.log.Info("weight registration saved",
		zap.String("player_id", playerID),
		zap.Int("registration_date", entry.RegistrationDate))
	return entry, nil
}
