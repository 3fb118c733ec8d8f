package services

import (
	"context"
	"strings"
	"sync"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.uber.org/zap"

	"github.com/pdemaers/skb-voedingsdagboek/apperror"
	"github.com/pdemaers/skb-voedingsdagboek/models"
)

// RosterFinder is the slice of a Mongo collection the roster service needs.
// *mongo.Collection satisfies it.
type RosterFinder interface {
	Find(ctx context.Context, filter interface{}, opts ...*options.FindOptions) (*mongo.Cursor, error)
}

// RosterService reads the player ids out of the roster collection and caches
// them so every form render does not hit the store again.
type RosterService struct {
	coll RosterFinder
	ttl  time.Duration
	log  *zap.Logger

	mu        sync.Mutex
	cached    []string
	fetchedAt time.Time
	now       func() time.Time
}

func NewRosterService(coll RosterFinder, ttl time.Duration, log *zap.Logger) *RosterService {
	return &RosterService{coll: coll, ttl: ttl, log: log, now: time.Now}
}

// PlayerIDs returns the roster's player ids in document order. A fresh cache
// is served as-is; refresh forces a re-fetch. An empty roster yields an empty
// slice so the caller can disable submission instead of failing.
func (s *RosterService) PlayerIDs(ctx context.Context, refresh bool) ([]string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !refresh && s.cached != nil && s.now().Sub(s.fetchedAt) < s.ttl {
		return append([]string(nil), s.cached...), nil
	}

	cur, err := s.coll.Find(ctx, bson.D{})
	if err != nil {
		return nil, apperror.DataUnavailable("failed to fetch player ids", err)
	}

	var entries []models.RosterEntry
	if err := cur.All(ctx, &entries); err != nil {
		return nil, apperror.DataUnavailable("failed to read roster documents", err)
	}

	ids := make([]string, 0, len(entries))
	for _, e := range entries {
		if strings.TrimSpace(e.PlayerID) != "" {
			ids = append(ids, e.PlayerID)
		}
	}
	if len(entries) > 0 && len(ids) == 0 {
		// Documents exist but none carry a player_id field.
		return nil, apperror.DataUnavailable("roster documents have no player_id field", nil)
	}

	s.cached = ids
	s.fetchedAt = s.now()
	s.log.Info("roster refreshed", zap.Int("players", len(ids)))
	return append([]string(nil), ids...), nil
}
