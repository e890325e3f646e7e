package content

import (
	"os"
	"path/filepath"
	"testing"
)

// restoreSeed puts the built-in tables back after a pack-loading test.
func restoreSeed(t *testing.T) {
	t.Helper()
	t.Cleanup(func() {
		tbl = buildTables(seedWorlds(), seedLevels())
	})
}

func writePack(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "pack.json")
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatalf("write pack: %v", err)
	}
	return path
}

const goodPack = `{
  "worlds": [
    {"id": "p1", "name": "Pack World", "order": 1, "theme": "storms", "starsToUnlock": 0}
  ],
  "levels": [
    {"id": "p1-l1", "worldId": "p1", "name": "Storm Quiz", "order": 1, "kind": "quiz", "difficulty": 1, "starsRequired": 0, "maxScore": 4}
  ]
}`

func TestLoadPack(t *testing.T) {
	restoreSeed(t)

	if err := LoadPack(writePack(t, goodPack)); err != nil {
		t.Fatalf("LoadPack: %v", err)
	}

	worlds := AllWorlds()
	if len(worlds) != 1 || worlds[0].ID != "p1" {
		t.Fatalf("worlds after pack load = %+v, want single p1", worlds)
	}
	l, err := LevelByID("p1-l1")
	if err != nil {
		t.Fatalf("LevelByID(p1-l1): %v", err)
	}
	if l.Kind != KindQuiz || l.MaxScore != 4 {
		t.Errorf("p1-l1 = %+v, want quiz with MaxScore 4", l)
	}
}

func TestLoadPackRejectsBadJSON(t *testing.T) {
	restoreSeed(t)

	err := LoadPack(writePack(t, `{"worlds": [`))
	if err == nil {
		t.Fatal("expected error for truncated JSON")
	}
	// Active tables must be untouched.
	if _, err := LevelByID("w1-l1"); err != nil {
		t.Errorf("seed tables lost after failed load: %v", err)
	}
}

func TestLoadPackRejectsSchemaViolations(t *testing.T) {
	restoreSeed(t)

	tests := []struct {
		name string
		body string
	}{
		{
			name: "missing levels",
			body: `{"worlds": [{"id": "x", "name": "X", "order": 1, "starsToUnlock": 0}]}`,
		},
		{
			name: "bad kind",
			body: `{
			  "worlds": [{"id": "x", "name": "X", "order": 1, "starsToUnlock": 0}],
			  "levels": [{"id": "x-1", "worldId": "x", "name": "L", "order": 1, "kind": "karaoke"}]
			}`,
		},
		{
			name: "negative threshold",
			body: `{
			  "worlds": [{"id": "x", "name": "X", "order": 1, "starsToUnlock": -1}],
			  "levels": [{"id": "x-1", "worldId": "x", "name": "L", "order": 1, "kind": "quiz"}]
			}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if err := LoadPack(writePack(t, tt.body)); err == nil {
				t.Error("expected schema validation error, got nil")
			}
		})
	}
}

func TestLoadPackRejectsStructuralProblems(t *testing.T) {
	restoreSeed(t)

	// Passes the JSON schema but fails structural validation (dangling world).
	body := `{
	  "worlds": [{"id": "x", "name": "X", "order": 1, "starsToUnlock": 0}],
	  "levels": [{"id": "y-1", "worldId": "y", "name": "L", "order": 1, "kind": "quiz", "maxScore": 5}]
	}`
	if err := LoadPack(writePack(t, body)); err == nil {
		t.Fatal("expected structural validation error, got nil")
	}
}

func TestLoadPackMissingFile(t *testing.T) {
	if err := LoadPack(filepath.Join(t.TempDir(), "nope.json")); err == nil {
		t.Fatal("expected error for missing file")
	}
}
