package journal_test

import (
	"context"
	"os"
	"testing"

	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/arshkumarsingh/rorex"
	"github.com/arshkumarsingh/rorex/journal"
)

// Requires a running MongoDB; set ROREX_MONGO_URI to enable.
func TestMongoJournal_RecordAndEntries(t *testing.T) {
	t.Parallel()

	uri := os.Getenv("ROREX_MONGO_URI")

	if uri == "" {
		t.Skip("ROREX_MONGO_URI is not set")
	}

	asserts := require.New(t)
	ctx := context.Background()

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(uri))
	asserts.Nil(err)

	database := client.Database("rorex_journal_test")
	defer database.Drop(ctx)

	j := journal.NewMongoJournalWithCollection(ctx, database.Collection("rates"))
	asserts.Equal("mongodb", j.ProviderName())
	asserts.Nil(j.Migrate())

	pair := rorex.Pair{Base: "EUR", Target: "USD"}

	entry, err := j.Record(rorex.Entry{
		Pair:     pair,
		Provider: rorex.ExchangeRateAPIProvider,
		Rate:     1.08,
	})

	asserts.Nil(err)
	asserts.NotNil(entry.ID)
	asserts.False(entry.FetchedAt.IsZero())

	entries, err := j.Entries(pair, 1, 10)

	asserts.Nil(err)
	asserts.Len(entries, 1)
	asserts.Equal(1.08, entries[0].Rate)
	asserts.Equal(rorex.ExchangeRateAPIProvider, entries[0].Provider)
	asserts.Equal(pair, entries[0].Pair)
}
