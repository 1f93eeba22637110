package valueobject

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewAddress(t *testing.T) {
	t.Run("creates a valid address", func(t *testing.T) {
		addr, err := NewAddress("123 Main St", "Springfield", "IL", "62701", "USA")
		require.NoError(t, err)
		assert.Equal(t, "123 Main St", addr.Street())
		assert.Equal(t, "Springfield, IL 62701", addr.CityLine())
		assert.Equal(t, "123 Main St, Springfield, IL 62701, USA", addr.String())
	})

	t.Run("trims surrounding whitespace", func(t *testing.T) {
		addr, err := NewAddress(" 123 Main St ", " Springfield ", "IL", "62701", "USA")
		require.NoError(t, err)
		assert.Equal(t, "123 Main St", addr.Street())
		assert.Equal(t, "Springfield", addr.City())
	})

	t.Run("rejects missing fields", func(t *testing.T) {
		tests := []struct {
			name                                  string
			street, city, state, zipCode, country string
		}{
			{"empty street", "", "Springfield", "IL", "62701", "USA"},
			{"empty city", "123 Main St", "", "IL", "62701", "USA"},
			{"empty state", "123 Main St", "Springfield", "", "62701", "USA"},
			{"empty zip", "123 Main St", "Springfield", "IL", "", "USA"},
			{"empty country", "123 Main St", "Springfield", "IL", "62701", ""},
			{"whitespace only", "   ", "Springfield", "IL", "62701", "USA"},
		}
		for _, tt := range tests {
			t.Run(tt.name, func(t *testing.T) {
				_, err := NewAddress(tt.street, tt.city, tt.state, tt.zipCode, tt.country)
				assert.Error(t, err)
			})
		}
	})
}

func TestAddressEquals(t *testing.T) {
	a, err := NewAddress("123 Main St", "Springfield", "IL", "62701", "USA")
	require.NoError(t, err)
	b, err := NewAddress("123 Main St", "Springfield", "IL", "62701", "USA")
	require.NoError(t, err)
	c, err := NewAddress("456 Oak Ave", "Springfield", "IL", "62701", "USA")
	require.NoError(t, err)

	assert.True(t, a.Equals(b))
	assert.False(t, a.Equals(c))
}

func TestAddressMarshalJSON(t *testing.T) {
	addr, err := NewAddress("123 Main St", "Springfield", "IL", "62701", "USA")
	require.NoError(t, err)

	data, err := json.Marshal(addr)
	require.NoError(t, err)
	assert.JSONEq(t, `{
		"street": "123 Main St",
		"city": "Springfield",
		"state": "IL",
		"zipCode": "62701",
		"country": "USA"
	}`, string(data))
}
