package registry

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"

	"github.com/TinyChain-Inc/tc-ir/id"
	"github.com/TinyChain-Inc/tc-ir/library"
)

// schemaDocument is the MongoDB document representation of a library.Schema.
type schemaDocument struct {
	Id           string   `bson:"_id"`
	Version      string   `bson:"version"`
	Dependencies []string `bson:"dependencies,omitempty"`
}

// MongoStore is a Store backed by a MongoDB collection, for durable
// persistence of registered schemas across node restarts. Like MemoryStore
// and RedisStore, it implements no consensus, liveness pinging, or leader
// election of its own.
type MongoStore struct {
	collection *mongo.Collection
}

var _ Store = (*MongoStore)(nil)

// NewMongoStore wraps an existing, connected MongoDB collection.
func NewMongoStore(collection *mongo.Collection) *MongoStore {
	return &MongoStore{collection: collection}
}

func toSchemaDocument(schema library.Schema) schemaDocument {
	deps := schema.Dependencies()
	depStrs := make([]string, len(deps))
	for i, d := range deps {
		depStrs[i] = d.String()
	}
	return schemaDocument{
		Id:           schema.Id().String(),
		Version:      schema.Version(),
		Dependencies: depStrs,
	}
}

func (d schemaDocument) toSchema() (library.Schema, error) {
	libID, err := id.ParseLink(d.Id)
	if err != nil {
		return library.Schema{}, err
	}
	deps := make([]id.Link, len(d.Dependencies))
	for i, raw := range d.Dependencies {
		link, err := id.ParseLink(raw)
		if err != nil {
			return library.Schema{}, err
		}
		deps[i] = link
	}
	return library.NewSchema(libID, d.Version, deps), nil
}

// Put stores or replaces the document for schema.Id().
func (s *MongoStore) Put(ctx context.Context, schema library.Schema) error {
	doc := toSchemaDocument(schema)
	opts := options.Replace().SetUpsert(true)
	if _, err := s.collection.ReplaceOne(ctx, bson.M{"_id": doc.Id}, doc, opts); err != nil {
		return fmt.Errorf("mongodb put library schema %q: %w", doc.Id, err)
	}
	return nil
}

// Get retrieves the schema registered at libID.
func (s *MongoStore) Get(ctx context.Context, libID id.Link) (library.Schema, bool, error) {
	var doc schemaDocument
	err := s.collection.FindOne(ctx, bson.M{"_id": libID.String()}).Decode(&doc)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return library.Schema{}, false, nil
	}
	if err != nil {
		return library.Schema{}, false, fmt.Errorf("mongodb get library schema %q: %w", libID, err)
	}
	schema, err := doc.toSchema()
	if err != nil {
		return library.Schema{}, false, err
	}
	return schema, true, nil
}

// List returns every schema currently stored.
func (s *MongoStore) List(ctx context.Context) ([]library.Schema, error) {
	cursor, err := s.collection.Find(ctx, bson.M{})
	if err != nil {
		return nil, fmt.Errorf("mongodb list library schemas: %w", err)
	}
	defer func() { _ = cursor.Close(ctx) }()

	var docs []schemaDocument
	if err := cursor.All(ctx, &docs); err != nil {
		return nil, fmt.Errorf("mongodb list library schemas decode: %w", err)
	}
	out := make([]library.Schema, 0, len(docs))
	for _, doc := range docs {
		schema, err := doc.toSchema()
		if err != nil {
			return nil, err
		}
		out = append(out, schema)
	}
	return out, nil
}

// Delete removes the schema registered at libID.
func (s *MongoStore) Delete(ctx context.Context, libID id.Link) error {
	result, err := s.collection.DeleteOne(ctx, bson.M{"_id": libID.String()})
	if err != nil {
		return fmt.Errorf("mongodb delete library schema %q: %w", libID, err)
	}
	if result.DeletedCount == 0 {
		return ErrNotFound
	}
	return nil
}
