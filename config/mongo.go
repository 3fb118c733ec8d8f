package config

import (
	"context"
	"fmt"
	"net/url"
	"time"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/pdemaers/skb-voedingsdagboek/apperror"
)

// Collection names in the diary database. The roster collection is owned by
// the club's admin tooling; this app only reads it.
const (
	RosterCollection = "roster"
	MealCollection   = "meal_diary_entries"
	WeightCollection = "weight_registration"
)

const serverSelectionTimeout = 5 * time.Second

// Store wraps the Mongo client and hands out collection handles.
type Store struct {
	client *mongo.Client
	db     *mongo.Database
}

// ConnectMongo opens the client and pings once so an unreachable cluster
// surfaces at startup instead of on the first form submission. No retry; the
// caller decides whether to abort.
func ConnectMongo(ctx context.Context, cfg *Config) (*Store, error) {
	uri := fmt.Sprintf("mongodb+srv://%s:%s@%s/",
		url.QueryEscape(cfg.MongoUsername),
		url.QueryEscape(cfg.MongoPassword),
		cfg.MongoClusterURL,
	)

	ctx, cancel := context.WithTimeout(ctx, serverSelectionTimeout)
	defer cancel()

	client, err := mongo.Connect(ctx, options.Client().
		ApplyURI(uri).
		SetServerSelectionTimeout(serverSelectionTimeout))
	if err != nil {
		return nil, apperror.DataUnavailable("unable to open database connection", err)
	}

	if err := client.Ping(ctx, nil); err != nil {
		_ = client.Disconnect(context.Background())
		return nil, apperror.DataUnavailable("unable to reach the database server", err)
	}

	return &Store{client: client, db: client.Database(cfg.DatabaseName)}, nil
}

// Collection returns a handle scoped to one named collection.
func (s *Store) Collection(name string) *mongo.Collection {
	return s.db.Collection(name)
}

// Disconnect closes the underlying client.
func (s *Store) Disconnect(ctx context.Context) error {
	return s.client.Disconnect(ctx)
}
