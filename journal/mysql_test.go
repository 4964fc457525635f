package journal_test

import (
	"context"
	"errors"
	"fmt"
	"math/rand"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/bxcodec/faker/v3"
	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/arshkumarsingh/rorex"
	"github.com/arshkumarsingh/rorex/journal"
)

const mysqlTableName = "rate_journal_test"

type IDGeneratorMock struct {
	mock.Mock
}

func (i *IDGeneratorMock) Generate() string {
	args := i.Called()

	return args.String(0)
}

func insertQuery() string {
	return regexp.QuoteMeta(fmt.Sprintf("INSERT INTO %s(id, currency, provider, rate, fetched_at) VALUES(?,?,?,?,?);", mysqlTableName))
}

func selectQuery() string {
	return regexp.QuoteMeta(fmt.Sprintf("SELECT id, provider, rate, fetched_at FROM %s WHERE currency = ? ORDER BY fetched_at DESC LIMIT ? OFFSET ?;", mysqlTableName))
}

func TestMySQLJournal_Record(t *testing.T) {
	t.Parallel()
	asserts := require.New(t)

	db, dbMock, err := sqlmock.New()
	asserts.Nil(err)

	defer db.Close()

	idGen := &IDGeneratorMock{}
	id := uuid.New().String()
	idGen.On("Generate").Return(id)

	fetchedAt := time.Date(2024, 5, 14, 10, 30, 0, 0, time.UTC)

	dbMock.ExpectBegin()
	prepared := dbMock.ExpectPrepare(insertQuery())
	prepared.ExpectExec().
		WithArgs(id, "USDEUR", "ExchangeRateAPI", "0.92", fetchedAt.Format(journal.MySQLTimeFormat)).
		WillReturnResult(sqlmock.NewResult(0, 1))
	dbMock.ExpectCommit()

	j, err := journal.NewMySQLJournalWithDB(journal.MySQLConfig{
		TableName:   mysqlTableName,
		IDGenerator: idGen,
	}, db)
	asserts.Nil(err)

	entry, err := j.Record(rorex.Entry{
		Pair:      rorex.Pair{Base: "USD", Target: "EUR"},
		Provider:  rorex.ExchangeRateAPIProvider,
		Rate:      0.92,
		FetchedAt: fetchedAt,
	})

	asserts.Nil(err)
	asserts.Equal(id, entry.ID)
	asserts.Equal(0.92, entry.Rate)
	asserts.Nil(dbMock.ExpectationsWereMet())
	idGen.AssertExpectations(t)
}

func TestMySQLJournal_RecordRollsBackOnError(t *testing.T) {
	t.Parallel()
	asserts := require.New(t)

	db, dbMock, err := sqlmock.New()
	asserts.Nil(err)

	defer db.Close()

	dbMock.ExpectBegin()
	prepared := dbMock.ExpectPrepare(insertQuery())
	prepared.ExpectExec().WillReturnError(errors.New("connection lost"))
	dbMock.ExpectRollback()

	j, err := journal.NewMySQLJournalWithDB(journal.MySQLConfig{TableName: mysqlTableName}, db)
	asserts.Nil(err)

	_, err = j.Record(rorex.Entry{
		Pair:     rorex.Pair{Base: "USD", Target: "EUR"},
		Provider: rorex.ExchangeRateAPIProvider,
		Rate:     0.92,
	})

	asserts.NotNil(err)
	asserts.Nil(dbMock.ExpectationsWereMet())
}

func TestMySQLJournal_Entries(t *testing.T) {
	t.Parallel()
	asserts := require.New(t)

	db, dbMock, err := sqlmock.New()
	asserts.Nil(err)

	defer db.Close()

	rows := sqlmock.NewRows([]string{"id", "provider", "rate", "fetched_at"})
	rates := make([]float64, 0, 10)

	for i := 0; i < 10; i++ {
		rate := float64(int(rand.Float64()*1_000_000)) / 1_000_000
		rates = append(rates, rate)
		rows.AddRow(faker.UUIDHyphenated(), "ExchangeRateAPI", fmt.Sprintf("%g", rate), time.Now().Add(-time.Duration(i)*time.Minute))
	}

	prepared := dbMock.ExpectPrepare(selectQuery())
	prepared.ExpectQuery().
		WithArgs("USDEUR", int64(10), int64(0)).
		WillReturnRows(rows)

	j, err := journal.NewMySQLJournalWithDB(journal.MySQLConfig{TableName: mysqlTableName}, db)
	asserts.Nil(err)

	entries, err := j.Entries(rorex.Pair{Base: "USD", Target: "EUR"}, 1, 10)

	asserts.Nil(err)
	asserts.Len(entries, 10)

	for i, entry := range entries {
		asserts.Equal(rates[i], entry.Rate)
		asserts.Equal(rorex.ExchangeRateAPIProvider, entry.Provider)
		asserts.Equal(rorex.Pair{Base: "USD", Target: "EUR"}, entry.Pair)
		asserts.NotEmpty(entry.ID)
	}

	asserts.Nil(dbMock.ExpectationsWereMet())
}

func TestMySQLJournal_MigrateAndDrop(t *testing.T) {
	t.Parallel()
	asserts := require.New(t)

	db, dbMock, err := sqlmock.New()
	asserts.Nil(err)

	defer db.Close()

	dbMock.ExpectExec("CREATE TABLE IF NOT EXISTS " + mysqlTableName).
		WillReturnResult(sqlmock.NewResult(0, 0))
	dbMock.ExpectExec("DROP TABLE IF EXISTS " + mysqlTableName).
		WillReturnResult(sqlmock.NewResult(0, 0))

	j, err := journal.NewMySQLJournalWithDB(journal.MySQLConfig{
		BaseConfig: journal.BaseConfig{
			Ctx:     context.Background(),
			Migrate: true,
		},
		TableName: mysqlTableName,
	}, db)

	asserts.Nil(err)
	asserts.Equal("mysql", j.ProviderName())
	asserts.Nil(j.Drop())
	asserts.Nil(dbMock.ExpectationsWereMet())
}
