// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/MKhiriev/go-pass-vault/internal/logger"
	"github.com/MKhiriev/go-pass-vault/internal/utils"
	"github.com/MKhiriev/go-pass-vault/models"
)

const mongoPingTimeout = 5 * time.Second

// MongoRecordStore keeps one document per record. The document _id is the
// UUIDv7 record id; ownerId is indexed because every query filters on it.
type MongoRecordStore struct {
	client *mongo.Client
	coll   *mongo.Collection
	ids    utils.IDGenerator
	now    func() time.Time
	logger *logger.Logger
}

// NewMongoRecordStore connects to uri, verifies the connection and ensures
// the owner index on dbName.collName.
func NewMongoRecordStore(ctx context.Context, uri, dbName, collName string, log *logger.Logger) (*MongoRecordStore, error) {
	if uri == "" {
		return nil, errors.New("mongo uri is empty")
	}

	cli, err := mongo.Connect(ctx, options.Client().ApplyURI(uri))
	if err != nil {
		log.Err(err).Str("func", "NewMongoRecordStore").Msg("error connecting to mongo")
		return nil, fmt.Errorf("error connecting to mongo: %w", err)
	}

	pctx, cancel := context.WithTimeout(ctx, mongoPingTimeout)
	defer cancel()
	if err := cli.Ping(pctx, nil); err != nil {
		log.Err(err).Str("func", "NewMongoRecordStore").Msg("error pinging mongo")
		_ = cli.Disconnect(ctx)
		return nil, fmt.Errorf("error pinging mongo: %w", err)
	}

	coll := cli.Database(dbName).Collection(collName)
	_, err = coll.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys: bson.D{{Key: "ownerId", Value: 1}, {Key: "createdAt", Value: 1}},
	})
	if err != nil {
		log.Err(err).Str("func", "NewMongoRecordStore").Msg("error creating owner index")
		_ = cli.Disconnect(ctx)
		return nil, fmt.Errorf("error creating owner index: %w", err)
	}
	log.Info().Str("func", "NewMongoRecordStore").Str("collection", collName).Msg("connected to mongo successfully")

	return newMongoRecordStore(cli, coll, log), nil
}

func newMongoRecordStore(cli *mongo.Client, coll *mongo.Collection, log *logger.Logger) *MongoRecordStore {
	return &MongoRecordStore{
		client: cli,
		coll:   coll,
		ids:    utils.NewUUIDGenerator(),
		// BSON dates carry millisecond precision
		now:    func() time.Time { return time.Now().UTC().Truncate(time.Millisecond) },
		logger: log,
	}
}

func (m *MongoRecordStore) List(ctx context.Context, ownerID string) ([]models.VaultRecord, error) {
	log := logger.FromContext(ctx)

	cur, err := m.coll.Find(ctx,
		bson.M{"ownerId": ownerID},
		options.Find().SetSort(bson.D{{Key: "createdAt", Value: 1}, {Key: "_id", Value: 1}}),
	)
	if err != nil {
		log.Err(err).Str("func", "MongoRecordStore.List").Msg("failed to query vault records")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer cur.Close(ctx)

	records := make([]models.VaultRecord, 0, 16)
	if err := cur.All(ctx, &records); err != nil {
		log.Err(err).Str("func", "MongoRecordStore.List").Msg("failed to decode vault records")
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return records, nil
}

func (m *MongoRecordStore) Create(ctx context.Context, ownerID string, in models.RecordInput) (models.VaultRecord, error) {
	in, err := normalizeInput(ownerID, in)
	if err != nil {
		return models.VaultRecord{}, err
	}

	now := m.now()
	record := models.VaultRecord{
		ID:            m.ids.Generate(),
		OwnerID:       ownerID,
		Title:         in.Title,
		IV:            in.IV,
		EncryptedData: in.EncryptedData,
		CreatedAt:     now,
		UpdatedAt:     now,
	}

	if _, err := m.coll.InsertOne(ctx, record); err != nil {
		logger.FromContext(ctx).Err(err).
			Str("func", "MongoRecordStore.Create").
			Str("record_id", record.ID).
			Msg("failed to insert vault record")
		return models.VaultRecord{}, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return record, nil
}

func (m *MongoRecordStore) Update(ctx context.Context, id, ownerID string, in models.RecordInput) (models.VaultRecord, error) {
	if err := checkScope(id, ownerID); err != nil {
		return models.VaultRecord{}, err
	}
	in, err := normalizeInput(ownerID, in)
	if err != nil {
		return models.VaultRecord{}, err
	}

	var record models.VaultRecord
	err = m.coll.FindOneAndUpdate(ctx,
		bson.M{"_id": id, "ownerId": ownerID},
		bson.M{"$set": bson.M{
			"title":         in.Title,
			"iv":            in.IV,
			"encryptedData": in.EncryptedData,
			"updatedAt":     m.now(),
		}},
		options.FindOneAndUpdate().SetReturnDocument(options.After),
	).Decode(&record)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return models.VaultRecord{}, ErrRecordNotFound
	}
	if err != nil {
		logger.FromContext(ctx).Err(err).
			Str("func", "MongoRecordStore.Update").
			Str("record_id", id).
			Msg("failed to update vault record")
		return models.VaultRecord{}, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return record, nil
}

func (m *MongoRecordStore) Delete(ctx context.Context, id, ownerID string) error {
	if err := checkScope(id, ownerID); err != nil {
		return err
	}

	res, err := m.coll.DeleteOne(ctx, bson.M{"_id": id, "ownerId": ownerID})
	if err != nil {
		logger.FromContext(ctx).Err(err).
			Str("func", "MongoRecordStore.Delete").
			Str("record_id", id).
			Msg("failed to delete vault record")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}
	if res.DeletedCount == 0 {
		return ErrRecordNotFound
	}

	return nil
}

// Close disconnects the client.
func (m *MongoRecordStore) Close(ctx context.Context) error {
	return m.client.Disconnect(ctx)
}
