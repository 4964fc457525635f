package rorex_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/arshkumarsingh/rorex"
)

func TestConvertToProvidersFromStringSlice(t *testing.T) {
	assert := require.New(t)

	values := []struct {
		value    []string
		expected interface{}
		err      error
	}{
		{[]string{"exchangerateapi", "dummy"}, []rorex.Provider{rorex.ExchangeRateAPIProvider, rorex.DummyProvider}, nil},
		{[]string{"not-valid-value"}, []rorex.Provider([]rorex.Provider(nil)), errors.New("value not-valid-value is not valid Provider")},
	}
	for _, value := range values {
		providers, err := rorex.ConvertToProvidersFromStringSlice(value.value)
		assert.Equal(providers, value.expected)
		assert.Equal(value.err, err)
	}
}

func TestConvertToProviderFromString(t *testing.T) {
	assert := require.New(t)
	values := []struct {
		value    string
		expected interface{}
		err      error
	}{
		{"exchangerateapi", rorex.ExchangeRateAPIProvider, nil},
		{"dummy", rorex.DummyProvider, nil},
		{"", rorex.Provider(""), errors.New("value  is not valid Provider")},
		{"not-valid-value", rorex.Provider(""), errors.New("value not-valid-value is not valid Provider")},
	}

	for _, value := range values {
		provider, err := rorex.ConvertToProviderFromString(value.value)
		assert.Equal(provider, value.expected)
		assert.Equal(value.err, err)
	}
}

func TestPairString(t *testing.T) {
	assert := require.New(t)

	assert.Equal("USDEUR", rorex.Pair{Base: "USD", Target: "EUR"}.String())
	assert.Equal("EURRSD", rorex.Pair{Base: "EUR", Target: "RSD"}.String())
}

func TestSupportedCurrency(t *testing.T) {
	assert := require.New(t)

	assert.True(rorex.SupportedCurrency("USD"))
	assert.True(rorex.SupportedCurrency("ZWL"))
	assert.False(rorex.SupportedCurrency("XXX"))
	assert.False(rorex.SupportedCurrency("usd"))
}
