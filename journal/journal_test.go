package journal_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/arshkumarsingh/rorex/journal"
)

func TestConvertToProviderFromString(t *testing.T) {
	t.Parallel()
	asserts := require.New(t)

	provider, err := journal.ConvertToProviderFromString("MySQL")
	asserts.Nil(err)
	asserts.Equal(journal.MySQL, provider)

	provider, err = journal.ConvertToProviderFromString("mongodb")
	asserts.Nil(err)
	asserts.Equal(journal.MongoDB, provider)

	_, err = journal.ConvertToProviderFromString("redis")
	asserts.NotNil(err)
}

func TestConvertToProvidersFromStringSlice(t *testing.T) {
	t.Parallel()
	asserts := require.New(t)

	providers, err := journal.ConvertToProvidersFromStringSlice([]string{"mysql", "mongodb"})
	asserts.Nil(err)
	asserts.Equal([]journal.Provider{journal.MySQL, journal.MongoDB}, providers)

	providers, err = journal.ConvertToProvidersFromStringSlice([]string{"mysql", "redis"})
	asserts.Nil(providers)
	asserts.NotNil(err)
}

func TestNewUnknownProvider(t *testing.T) {
	t.Parallel()
	asserts := require.New(t)

	j, err := journal.New(journal.Provider("redis"), nil)
	asserts.Nil(j)
	asserts.True(errors.Is(err, journal.ErrJournalNotFound))
}
