package journal

import (
	"context"
	"time"

	"github.com/shopspring/decimal"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/arshkumarsingh/rorex"
)

type mongoJournal struct {
	ctx        context.Context
	collection *mongo.Collection
}

func NewMongoJournal(config MongoDBConfig) (rorex.Journal, error) {
	ctx := config.Ctx

	if ctx == nil {
		ctx = context.Background()
	}

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(config.ConnectionString))

	if err != nil {
		return nil, err
	}

	j := mongoJournal{
		ctx:        ctx,
		collection: client.Database(config.Database).Collection(config.Collection),
	}

	if config.Migrate {
		if err := j.Migrate(); err != nil {
			return nil, err
		}
	}

	return j, nil
}

// NewMongoJournalWithCollection wires an existing collection; tests use it
// against a scratch database.
func NewMongoJournalWithCollection(ctx context.Context, collection *mongo.Collection) rorex.Journal {
	return mongoJournal{
		ctx:        ctx,
		collection: collection,
	}
}

func (m mongoJournal) ProviderName() string {
	return string(MongoDB)
}

func (m mongoJournal) Migrate() error {
	_, err := m.collection.Indexes().CreateOne(m.ctx, mongo.IndexModel{
		Keys: bson.D{{Key: "currency", Value: 1}, {Key: "fetchedAt", Value: -1}},
	})

	return err
}

func (m mongoJournal) Drop() error {
	return m.collection.Drop(m.ctx)
}

func (m mongoJournal) Record(entry rorex.Entry) (rorex.EntryWithID, error) {
	if entry.FetchedAt.IsZero() {
		entry.FetchedAt = time.Now()
	}

	result, err := m.collection.InsertOne(m.ctx, bson.M{
		"currency":  entry.Pair.String(),
		"provider":  string(entry.Provider),
		"rate":      decimal.NewFromFloat(entry.Rate).String(),
		"fetchedAt": entry.FetchedAt,
	})

	if err != nil {
		return rorex.EntryWithID{}, err
	}

	return rorex.EntryWithID{
		Entry: entry,
		ID:    result.InsertedID,
	}, nil
}

func (m mongoJournal) Entries(pair rorex.Pair, page, perPage int64) ([]rorex.EntryWithID, error) {
	skip := (page - 1) * perPage
	sort := bson.D{{Key: "fetchedAt", Value: -1}}

	cursor, err := m.collection.Find(m.ctx, bson.M{"currency": pair.String()}, &options.FindOptions{
		Limit: &perPage,
		Skip:  &skip,
		Sort:  sort,
	})

	if err != nil {
		return nil, err
	}

	defer cursor.Close(m.ctx)

	entries := make([]rorex.EntryWithID, 0, perPage)

	for cursor.Next(m.ctx) {
		current := cursor.Current

		rate, err := decimal.NewFromString(current.Lookup("rate").StringValue())

		if err != nil {
			return nil, err
		}

		rateFloat, _ := rate.Float64()

		entries = append(entries, rorex.EntryWithID{
			Entry: rorex.Entry{
				Pair:      pair,
				Provider:  rorex.Provider(current.Lookup("provider").StringValue()),
				Rate:      rateFloat,
				FetchedAt: current.Lookup("fetchedAt").Time(),
			},
			ID: current.Lookup("_id").ObjectID(),
		})
	}

	return entries, cursor.Err()
}
