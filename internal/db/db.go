package db

import (
	"context"
	"errors"
	"time"

	"github.com/rs/zerolog/log"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"

	"github.com/merakistudio/interior-api/internal/config"
)

// ErrUnavailable is returned by repositories when the store never came up.
var ErrUnavailable = errors.New("datastore unavailable")

// Store wraps the Mongo client. A failed connection at startup is not
// fatal: the server keeps running so that media endpoints stay usable,
// and data-backed endpoints fail per request instead.
type Store struct {
	client *mongo.Client
	name   string
}

func Connect(cfg *config.Config) *Store {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(cfg.MongoURI))
	if err != nil {
		log.Warn().Err(err).Msg("mongodb connection failed, running in degraded mode")
		return &Store{name: cfg.MongoDB}
	}

	if err := client.Ping(ctx, readpref.Primary()); err != nil {
		log.Warn().Err(err).Msg("mongodb unreachable, running in degraded mode")
	} else {
		log.Info().Str("db", cfg.MongoDB).Msg("mongodb connected")
	}

	return &Store{client: client, name: cfg.MongoDB}
}

// Collection returns the named collection, or nil when the store never
// connected. Repositories translate nil into ErrUnavailable.
func (s *Store) Collection(name string) *mongo.Collection {
	if s.client == nil {
		return nil
	}
	return s.client.Database(s.name).Collection(name)
}

func (s *Store) Ping(ctx context.Context) error {
	if s.client == nil {
		return ErrUnavailable
	}
	return s.client.Ping(ctx, readpref.Primary())
}
