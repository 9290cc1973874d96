package pagination

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestEncodeDecodeOrderCursor(t *testing.T) {
	createdAt := time.Date(2024, 5, 15, 14, 30, 45, 123456000, time.UTC)
	orderID := "7b0f6c4e-1a2b-4c3d-9e8f-0123456789ab"

	token := EncodeOrderCursor(createdAt, orderID)
	assert.NotEmpty(t, token, "Token should not be empty")
	assert.NotContains(t, token, "+", "Token should be safe in a query string")

	decodedAt, decodedID, err := DecodeOrderCursor(token)
	assert.NoError(t, err)
	assert.True(t, createdAt.Equal(decodedAt), "Created at should match after decode")
	assert.Equal(t, orderID, decodedID)

	// Non-UTC input is normalised
	tbilisi := time.FixedZone("GET", 4*60*60)
	local := time.Date(2024, 5, 15, 18, 30, 45, 0, tbilisi)
	decodedAt, _, err = DecodeOrderCursor(EncodeOrderCursor(local, orderID))
	assert.NoError(t, err)
	assert.True(t, local.Equal(decodedAt))
}

func TestDecodeOrderCursorError(t *testing.T) {
	_, _, err := DecodeOrderCursor("this is not base64!")
	assert.Error(t, err, "Should return an error for invalid base64")
	assert.Contains(t, err.Error(), "base64 decode")

	_, _, err = DecodeOrderCursor(EncodeMultiFieldToken("2024-05-15T14:30:45Z"))
	assert.Error(t, err, "Should return an error for a missing order id")
	assert.Contains(t, err.Error(), "split")

	_, _, err = DecodeOrderCursor(EncodeMultiFieldToken("yesterday", "order-1"))
	assert.Error(t, err, "Should return an error for an invalid timestamp")
	assert.Contains(t, err.Error(), "created_at parse")
}

func TestMultiFieldToken(t *testing.T) {
	fields := []string{"a", "b", "c"}
	token := EncodeMultiFieldToken(fields...)

	decoded, err := DecodeMultiFieldToken(token)
	assert.NoError(t, err)
	assert.Equal(t, fields, decoded)
}
