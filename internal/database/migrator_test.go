package database

import (
	"os"
	"path/filepath"
	"regexp"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// The force seeder hard-deletes a property's rooms. Both ticket tables
// reference rooms, so their foreign keys must detach on delete or the wipe is
// blocked by any room that ever had a ticket.
func TestTicketRoomReferencesDetachOnDelete(t *testing.T) {
	content, err := os.ReadFile(filepath.Join("..", "..", "migrations", "003_create_ticket_tables.sql"))
	require.NoError(t, err)

	re := regexp.MustCompile(`room_id INT REFERENCES rooms\(id\) ON DELETE SET NULL`)
	matches := re.FindAll(content, -1)

	assert.Len(t, matches, 2, "both ticket tables must declare ON DELETE SET NULL on room_id")
}
