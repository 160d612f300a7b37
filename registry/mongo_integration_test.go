package registry_test

import (
	"context"
	"os"
	"testing"

	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"

	"github.com/TinyChain-Inc/tc-ir/id"
	"github.com/TinyChain-Inc/tc-ir/library"
	"github.com/TinyChain-Inc/tc-ir/registry"
)

// TestMongoStorePutGetListDelete exercises MongoStore against a real
// MongoDB instance. It's skipped unless TC_IR_MONGO_URI names a reachable
// server, mirroring the Redis integration test's skip-when-unavailable
// approach.
func TestMongoStorePutGetListDelete(t *testing.T) {
	uri := os.Getenv("TC_IR_MONGO_URI")
	if uri == "" {
		t.Skip("TC_IR_MONGO_URI not set, skipping MongoDB integration test")
	}

	ctx := context.Background()
	client, err := mongo.Connect(options.Client().ApplyURI(uri))
	if err != nil {
		t.Skipf("mongodb at %s unreachable: %s", uri, err)
	}
	defer func() { _ = client.Disconnect(ctx) }()
	if err := client.Ping(ctx, nil); err != nil {
		t.Skipf("mongodb at %s unreachable: %s", uri, err)
	}

	collection := client.Database("tc_ir_test").Collection("library_schemas")
	store := registry.NewMongoStore(collection)

	link, err := id.ParseLink("/lib/acme/mongo-it")
	require.NoError(t, err)
	t.Cleanup(func() { _ = store.Delete(ctx, link) })

	schema := library.NewSchema(link, "0.1.0", nil)
	require.NoError(t, store.Put(ctx, schema))

	got, ok, err := store.Get(ctx, link)
	require.NoError(t, err)
	require.True(t, ok)
	require.Equal(t, schema.Id(), got.Id())
	require.Equal(t, schema.Version(), got.Version())

	all, err := store.List(ctx)
	require.NoError(t, err)
	require.NotEmpty(t, all)

	require.NoError(t, store.Delete(ctx, link))
	_, ok, err = store.Get(ctx, link)
	require.NoError(t, err)
	require.False(t, ok)

	err = store.Delete(ctx, link)
	require.ErrorIs(t, err, registry.ErrNotFound)
}
