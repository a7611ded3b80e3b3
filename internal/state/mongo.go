// Copyright 2024 Deutsche Telekom IT GmbH
//
// SPDX-License-Identifier: Apache-2.0

package state

import (
	"context"
	"errors"
	"fmt"

	"github.com/rs/zerolog"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"website-monitor/internal/config"
)

type document struct {
	Id    string `bson:"_id"`
	State State  `bson:"state"`
}

// MongoStore keeps the state as a single document per application.
type MongoStore struct {
	client *mongo.Client
	config config.Mongo
	key    string
}

func NewMongoStore(ctx context.Context, cfg config.Mongo, appName string, logger zerolog.Logger) (*MongoStore, error) {
	logger.Debug().Msg("Connecting to mongoDB")

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(cfg.Url))
	if err != nil {
		logger.Error().Err(err).Msg("Could not connect to mongoDB")
		return nil, err
	}

	if err := pingMongoNode(ctx, client, logger); err != nil {
		_ = client.Disconnect(ctx)
		return nil, err
	}

	return &MongoStore{
		client: client,
		config: cfg,
		key:    appName,
	}, nil
}

func pingMongoNode(ctx context.Context, client *mongo.Client, logger zerolog.Logger) error {
	logger.Debug().Msg("Sending ping to mongoDB")

	if err := client.Ping(ctx, nil); err != nil {
		logger.Error().Err(err).Msg("Could not reach primary mongoDB node")
		return err
	}

	logger.Info().Msg("Connection to mongoDB established")
	return nil
}

func (s *MongoStore) collection() *mongo.Collection {
	return s.client.Database(s.config.Database).Collection(s.config.Collection)
}

func (s *MongoStore) Load(ctx context.Context) (*State, error) {
	var doc document

	err := s.collection().FindOne(ctx, bson.M{"_id": s.key}).Decode(&doc)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("could not load state %s: %w", s.key, err)
	}

	return &doc.State, nil
}

func (s *MongoStore) Save(ctx context.Context, st *State) error {
	opts := options.Replace().SetUpsert(true)

	_, err := s.collection().ReplaceOne(ctx, bson.M{"_id": s.key}, document{Id: s.key, State: *st}, opts)
	if err != nil {
		return fmt.Errorf("could not save state %s: %w", s.key, err)
	}

	return nil
}

func (s *MongoStore) Close(ctx context.Context) error {
	return s.client.Disconnect(ctx)
}
