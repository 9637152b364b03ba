package psql

import (
	"strings"
	"testing"

	"studybuddy/studybuddy/sources/psql/models"
)

// The default room insert depends on this index being unique and scoped
// to exactly the default room name.
func TestDefaultRoomIndexDDL(t *testing.T) {
	if !strings.Contains(defaultRoomIndexDDL, "UNIQUE INDEX") {
		t.Fatal("default room index must be unique")
	}
	if !strings.Contains(defaultRoomIndexDDL, "ON study_rooms (name)") {
		t.Fatal("default room index must cover study_rooms.name")
	}
	if !strings.Contains(defaultRoomIndexDDL, "WHERE name = '"+models.DefaultRoomName+"'") {
		t.Fatal("default room index must be scoped to the default room only")
	}
	if !strings.Contains(defaultRoomIndexDDL, "IF NOT EXISTS") {
		t.Fatal("index creation must be idempotent across restarts")
	}
}
