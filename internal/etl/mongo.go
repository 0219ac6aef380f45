package etl

import (
	"context"
	"fmt"
	"time"

	"github.com/BartekS5/sde2csv/pkg/logger"
	"github.com/BartekS5/sde2csv/pkg/models"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// MongoSource reads SDE sources from the collections of one MongoDB
// database, one collection per source name.
type MongoSource struct {
	DB      *mongo.Database
	Timeout time.Duration
}

func NewMongoSource(client *mongo.Client, database string) *MongoSource {
	return &MongoSource{
		DB:      client.Database(database),
		Timeout: 10 * time.Minute,
	}
}

func (m *MongoSource) Each(name string, fn func(models.Record) error) error {
	ctx, cancel := context.WithTimeout(context.Background(), m.Timeout)
	defer cancel()

	names, err := m.DB.ListCollectionNames(ctx, bson.D{{Key: "name", Value: name}})
	if err != nil {
		return fmt.Errorf("list collections in %s: %w", m.DB.Name(), err)
	}
	if len(names) == 0 {
		logger.Warnf("%s.%s not found, skipping", m.DB.Name(), name)
		return nil
	}

	// Sort by legacy key so repeated runs see the same order
	findOpts := options.Find().SetSort(bson.D{{Key: models.KeyField, Value: 1}})
	cursor, err := m.DB.Collection(name).Find(ctx, bson.D{}, findOpts)
	if err != nil {
		return fmt.Errorf("query %s.%s: %w", m.DB.Name(), name, err)
	}
	defer cursor.Close(ctx)

	for cursor.Next(ctx) {
		rec, err := recordFromBSON(cursor.Current)
		if err != nil {
			return fmt.Errorf("decode %s.%s document: %w", m.DB.Name(), name, err)
		}
		if err := fn(rec); err != nil {
			return err
		}
	}
	return cursor.Err()
}

// recordFromBSON converts a document through relaxed Extended JSON so that
// records carry the same value types as ones read from JSONL files.
func recordFromBSON(raw bson.Raw) (models.Record, error) {
	data, err := bson.MarshalExtJSON(raw, false, false)
	if err != nil {
		return nil, err
	}
	return decodeRecord(data)
}
