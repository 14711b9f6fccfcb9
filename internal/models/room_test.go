package models

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// A PATCH body may carry is_active (older clients did), but the update
// request has no carrier for it: deactivation only happens through DELETE.
func TestUpdateRoomRequestDropsActiveFlag(t *testing.T) {
	body := `{"notes":"repainted","is_active":false}`

	var req UpdateRoomRequest
	require.NoError(t, json.Unmarshal([]byte(body), &req))

	require.NotNil(t, req.Notes)
	assert.Equal(t, "repainted", *req.Notes)

	raw, err := json.Marshal(req)
	require.NoError(t, err)
	assert.NotContains(t, string(raw), "is_active")
}
