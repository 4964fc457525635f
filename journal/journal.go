// Package journal persists successful fetches. Backends share the
// rorex.Journal interface and are picked by a string-keyed factory, so the
// CLI can wire any combination from configuration.
package journal

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/arshkumarsingh/rorex"
)

type (
	Provider string

	BaseConfig struct {
		Ctx     context.Context
		Migrate bool
	}

	MySQLConfig struct {
		BaseConfig
		ConnectionString string
		TableName        string
		IDGenerator      IDGenerator
	}

	MongoDBConfig struct {
		BaseConfig
		ConnectionString string
		Database         string
		Collection       string
	}

	// IDGenerator produces row identifiers for backends without
	// server-side id generation.
	IDGenerator interface {
		Generate() string
	}

	uuidGenerator struct{}
)

const (
	MySQL   Provider = "mysql"
	MongoDB Provider = "mongodb"
)

var ErrJournalNotFound = errors.New("journal is not found")

func (uuidGenerator) Generate() string {
	return uuid.New().String()
}

func ConvertToProvidersFromStringSlice(strings []string) ([]Provider, error) {
	providers := make([]Provider, 0, len(strings))

	for _, str := range strings {
		provider, err := ConvertToProviderFromString(str)
		if err != nil {
			return nil, err
		}

		providers = append(providers, provider)
	}

	return providers, nil
}

func ConvertToProviderFromString(str string) (Provider, error) {
	switch strings.ToLower(str) {
	case "mysql":
		return MySQL, nil
	case "mongodb":
		return MongoDB, nil
	}

	return "", fmt.Errorf("value %s is not valid Provider", str)
}

func New(provider Provider, config interface{}) (rorex.Journal, error) {
	switch provider {
	case MySQL:
		return NewMySQLJournal(config.(MySQLConfig))
	case MongoDB:
		return NewMongoJournal(config.(MongoDBConfig))
	}

	return nil, ErrJournalNotFound
}
