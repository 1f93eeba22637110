package invoicing

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validClient(t *testing.T, userID uuid.UUID) *Client {
	t.Helper()
	client, err := NewClient(userID, "Acme Corp", "billing@acme.test",
		"123 Main St", "Springfield", "IL", "62701", "USA", "+1-555-0100")
	require.NoError(t, err)
	return client
}

func TestNewClient(t *testing.T) {
	userID := uuid.New()

	t.Run("creates client with valid inputs", func(t *testing.T) {
		client := validClient(t, userID)

		assert.Equal(t, userID, client.UserID)
		assert.Equal(t, "Acme Corp", client.Name)
		assert.Equal(t, "billing@acme.test", client.Email)
		assert.Equal(t, "123 Main St", client.Street)
		assert.Equal(t, "Springfield", client.City)
		assert.Equal(t, "IL", client.State)
		assert.Equal(t, "62701", client.ZipCode)
		assert.Equal(t, "USA", client.Country)
		assert.Equal(t, "+1-555-0100", client.Phone)
		assert.NotEqual(t, uuid.Nil, client.ID)
		assert.Equal(t, 1, client.GetVersion())
	})

	t.Run("normalizes email to lower case", func(t *testing.T) {
		client, err := NewClient(userID, "Acme Corp", "Billing@Acme.Test",
			"123 Main St", "Springfield", "IL", "62701", "USA", "+1-555-0100")
		require.NoError(t, err)
		assert.Equal(t, "billing@acme.test", client.Email)
	})

	t.Run("fails with empty name", func(t *testing.T) {
		_, err := NewClient(userID, "  ", "billing@acme.test",
			"123 Main St", "Springfield", "IL", "62701", "USA", "+1-555-0100")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "Name cannot be empty")
	})

	t.Run("fails with malformed email", func(t *testing.T) {
		_, err := NewClient(userID, "Acme Corp", "not-an-email",
			"123 Main St", "Springfield", "IL", "62701", "USA", "+1-555-0100")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "Email is not well-formed")
	})

	t.Run("fails with empty address field", func(t *testing.T) {
		_, err := NewClient(userID, "Acme Corp", "billing@acme.test",
			"123 Main St", "", "IL", "62701", "USA", "+1-555-0100")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "city cannot be empty")
	})

	t.Run("fails with empty phone", func(t *testing.T) {
		_, err := NewClient(userID, "Acme Corp", "billing@acme.test",
			"123 Main St", "Springfield", "IL", "62701", "USA", "")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "Phone cannot be empty")
	})
}

func TestClientAddress(t *testing.T) {
	client := validClient(t, uuid.New())

	addr := client.Address()
	assert.Equal(t, "123 Main St", addr.Street())
	assert.Equal(t, "Springfield, IL 62701", addr.CityLine())
	assert.Equal(t, "USA", addr.Country())
}

func TestClientUpdate(t *testing.T) {
	t.Run("updates only supplied fields", func(t *testing.T) {
		client := validClient(t, uuid.New())

		name := "Acme Industries"
		city := "Chicago"
		err := client.Update(ClientUpdate{Name: &name, City: &city})
		require.NoError(t, err)

		assert.Equal(t, "Acme Industries", client.Name)
		assert.Equal(t, "Chicago", client.City)
		assert.Equal(t, "billing@acme.test", client.Email)
		assert.Equal(t, "123 Main St", client.Street)
		assert.Equal(t, 2, client.GetVersion())
	})

	t.Run("rejects empty name", func(t *testing.T) {
		client := validClient(t, uuid.New())

		empty := ""
		err := client.Update(ClientUpdate{Name: &empty})
		require.Error(t, err)
		assert.Equal(t, "Acme Corp", client.Name)
	})

	t.Run("rejects malformed email", func(t *testing.T) {
		client := validClient(t, uuid.New())

		bad := "not valid"
		err := client.Update(ClientUpdate{Email: &bad})
		require.Error(t, err)
		assert.Equal(t, "billing@acme.test", client.Email)
	})

	t.Run("rejects clearing an address field", func(t *testing.T) {
		client := validClient(t, uuid.New())

		empty := "  "
		err := client.Update(ClientUpdate{Street: &empty})
		require.Error(t, err)
		assert.Equal(t, "123 Main St", client.Street)
	})

	t.Run("empty update reports no fields", func(t *testing.T) {
		assert.True(t, ClientUpdate{}.Empty())
		name := "x"
		assert.False(t, ClientUpdate{Name: &name}.Empty())
	})
}
