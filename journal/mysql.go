package journal

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/arshkumarsingh/rorex"
)

// MySQLTimeFormat is the DATETIME literal layout the driver expects.
const MySQLTimeFormat = "2006-01-02 15:04:05"

type mysqlJournal struct {
	ctx       context.Context
	db        *sql.DB
	tableName string
	idGen     IDGenerator
}

func NewMySQLJournal(config MySQLConfig) (rorex.Journal, error) {
	db, err := sql.Open("mysql", config.ConnectionString)

	if err != nil {
		return nil, err
	}

	return NewMySQLJournalWithDB(config, db)
}

// NewMySQLJournalWithDB wires an existing connection pool; tests use it to
// inject a sqlmock database.
func NewMySQLJournalWithDB(config MySQLConfig, db *sql.DB) (rorex.Journal, error) {
	ctx := config.Ctx

	if ctx == nil {
		ctx = context.Background()
	}

	idGen := config.IDGenerator

	if idGen == nil {
		idGen = uuidGenerator{}
	}

	j := mysqlJournal{
		ctx:       ctx,
		db:        db,
		tableName: config.TableName,
		idGen:     idGen,
	}

	if config.Migrate {
		if err := j.Migrate(); err != nil {
			return nil, err
		}
	}

	return j, nil
}

func (m mysqlJournal) ProviderName() string {
	return string(MySQL)
}

func (m mysqlJournal) Migrate() error {
	_, err := m.db.ExecContext(m.ctx, fmt.Sprintf(
		`CREATE TABLE IF NOT EXISTS %s(
	id VARCHAR(36) NOT NULL PRIMARY KEY,
	currency VARCHAR(6) NOT NULL,
	provider VARCHAR(30) NOT NULL,
	rate DECIMAL(18,6) NOT NULL,
	fetched_at DATETIME NOT NULL
);`, m.tableName))

	return err
}

func (m mysqlJournal) Drop() error {
	_, err := m.db.ExecContext(m.ctx, fmt.Sprintf("DROP TABLE IF EXISTS %s;", m.tableName))

	return err
}

func (m mysqlJournal) Record(entry rorex.Entry) (rorex.EntryWithID, error) {
	if entry.FetchedAt.IsZero() {
		entry.FetchedAt = time.Now()
	}

	id := m.idGen.Generate()
	// rate goes through decimal so the stored value round-trips exactly
	rate := decimal.NewFromFloat(entry.Rate)

	tx, err := m.db.Begin()

	if err != nil {
		return rorex.EntryWithID{}, err
	}

	stmt, err := tx.PrepareContext(m.ctx, fmt.Sprintf("INSERT INTO %s(id, currency, provider, rate, fetched_at) VALUES(?,?,?,?,?);", m.tableName))

	if err != nil {
		_ = tx.Rollback()
		return rorex.EntryWithID{}, err
	}

	_, err = stmt.ExecContext(m.ctx, id, entry.Pair.String(), string(entry.Provider), rate.String(), entry.FetchedAt.Format(MySQLTimeFormat))

	if err != nil {
		_ = tx.Rollback()
		return rorex.EntryWithID{}, err
	}

	if err := stmt.Close(); err != nil {
		_ = tx.Rollback()
		return rorex.EntryWithID{}, err
	}

	if err := tx.Commit(); err != nil {
		_ = tx.Rollback()
		return rorex.EntryWithID{}, err
	}

	return rorex.EntryWithID{
		Entry: entry,
		ID:    id,
	}, nil
}

func (m mysqlJournal) Entries(pair rorex.Pair, page, perPage int64) ([]rorex.EntryWithID, error) {
	stmt, err := m.db.PrepareContext(m.ctx, fmt.Sprintf("SELECT id, provider, rate, fetched_at FROM %s WHERE currency = ? ORDER BY fetched_at DESC LIMIT ? OFFSET ?;", m.tableName))

	if err != nil {
		return nil, err
	}

	defer stmt.Close()

	rows, err := stmt.QueryContext(m.ctx, pair.String(), perPage, (page-1)*perPage)

	if err != nil {
		return nil, err
	}

	defer rows.Close()

	entries := make([]rorex.EntryWithID, 0, perPage)

	for rows.Next() {
		var (
			id        string
			provider  string
			rate      string
			fetchedAt time.Time
		)

		if err := rows.Scan(&id, &provider, &rate, &fetchedAt); err != nil {
			return nil, err
		}

		value, err := decimal.NewFromString(rate)

		if err != nil {
			return nil, err
		}

		rateFloat, _ := value.Float64()

		entries = append(entries, rorex.EntryWithID{
			Entry: rorex.Entry{
				Pair:      pair,
				Provider:  rorex.Provider(provider),
				Rate:      rateFloat,
				FetchedAt: fetchedAt,
			},
			ID: id,
		})
	}

	return entries, rows.Err()
}
