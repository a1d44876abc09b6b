package customer

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewCustomer(t *testing.T) {
	phone := "+1-555-0100"
	c, err := NewCustomer("Jane Doe", "jane@example.com", &phone)
	require.NoError(t, err)

	assert.NotEqual(t, uuid.Nil, c.ID)
	assert.Equal(t, "Jane Doe", c.Name)
	assert.Equal(t, "jane@example.com", c.Email)
	require.NotNil(t, c.Phone)
	assert.Equal(t, phone, *c.Phone)
	assert.False(t, c.CreatedAt.IsZero())
}

func TestNewCustomer_Validation(t *testing.T) {
	_, err := NewCustomer("", "jane@example.com", nil)
	assert.Error(t, err)

	_, err = NewCustomer("Jane Doe", "", nil)
	assert.Error(t, err)

	_, err = NewCustomer("Jane Doe", "not-an-email", nil)
	assert.Error(t, err)
}
