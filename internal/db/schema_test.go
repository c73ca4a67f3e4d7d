package db

import (
	"strings"
	"testing"
)

func TestSchemaEmbedded(t *testing.T) {
	if !strings.Contains(schema, "CREATE TABLE IF NOT EXISTS scripts") {
		t.Fatal("embedded schema does not create the scripts table")
	}
	for _, col := range []string{"topic", "tone", "channel_id", "secondary_tones", "prompt", "script", "created_at"} {
		if !strings.Contains(schema, col) {
			t.Errorf("schema missing column %q", col)
		}
	}
}
