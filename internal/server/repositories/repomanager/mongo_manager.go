// Package repomanager provides a concrete RepositoryManager for MongoDB,
// owning the client connection and vending collection-bound repositories.
package repomanager

import (
	"context"
	"fmt"

	"github.com/dmitrijs2005/assignhub/internal/server/repositories/assignments"
	"github.com/dmitrijs2005/assignhub/internal/server/repositories/submissions"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// connect is a seam for testing mongo.Connect.
var connect = func(ctx context.Context, opts ...*options.ClientOptions) (*mongo.Client, error) {
	return mongo.Connect(ctx, opts...)
}

// MongoRepositoryManager vends MongoDB-backed repositories sharing one client.
type MongoRepositoryManager struct {
	client      *mongo.Client
	db          *mongo.Database
	assignments *assignments.MongoRepository
	submissions *submissions.MongoRepository
}

// NewMongoRepositoryManager connects to uri using Stable API v1 and verifies
// the deployment with a ping against the admin database.
func NewMongoRepositoryManager(ctx context.Context, uri, dbName string) (*MongoRepositoryManager, error) {
	serverAPI := options.ServerAPI(options.ServerAPIVersion1).SetStrict(true).SetDeprecationErrors(true)
	opts := options.Client().ApplyURI(uri).SetServerAPIOptions(serverAPI)

	client, err := connect(ctx, opts)
	if err != nil {
		return nil, fmt.Errorf("mongo connect error: %w", err)
	}

	m := newManager(client, dbName)
	if err := m.Ping(ctx); err != nil {
		_ = client.Disconnect(ctx)
		return nil, err
	}
	return m, nil
}

func newManager(client *mongo.Client, dbName string) *MongoRepositoryManager {
	db := client.Database(dbName)
	return &MongoRepositoryManager{
		client:      client,
		db:          db,
		assignments: assignments.NewMongoRepository(db.Collection(assignments.CollectionName)),
		submissions: submissions.NewMongoRepository(db.Collection(submissions.CollectionName)),
	}
}

// Ping runs {ping: 1} on the admin database.
func (m *MongoRepositoryManager) Ping(ctx context.Context) error {
	if err := m.client.Database("admin").RunCommand(ctx, bson.D{{Key: "ping", Value: 1}}).Err(); err != nil {
		return fmt.Errorf("mongo ping error: %w", err)
	}
	return nil
}

// EnsureIndexes creates the indexes backing the listing queries. Existing
// indexes with the same keys are left untouched.
func (m *MongoRepositoryManager) EnsureIndexes(ctx context.Context) error {
	for coll, idx := range indexModels() {
		if _, err := m.db.Collection(coll).Indexes().CreateMany(ctx, idx); err != nil {
			return fmt.Errorf("create indexes on %s: %w", coll, err)
		}
	}
	return nil
}

func indexModels() map[string][]mongo.IndexModel {
	return map[string][]mongo.IndexModel{
		assignments.CollectionName: {
			{Keys: bson.D{{Key: "createdAt", Value: -1}}},
			{Keys: bson.D{{Key: "difficulty", Value: 1}, {Key: "createdAt", Value: -1}}},
		},
		submissions.CollectionName: {
			{Keys: bson.D{{Key: "status", Value: 1}}},
			{Keys: bson.D{{Key: "email", Value: 1}}},
		},
	}
}

func (m *MongoRepositoryManager) Close(ctx context.Context) error {
	return m.client.Disconnect(ctx)
}

func (m *MongoRepositoryManager) Assignments() assignments.Repository {
	return m.assignments
}

func (m *MongoRepositoryManager) Submissions() submissions.Repository {
	return m.submissions
}
