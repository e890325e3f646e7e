package content

import (
	"encoding/json"
	"fmt"
	"os"
	"sync"

	"github.com/santhosh-tekuri/jsonschema/v6"
)

// packWorld and packLevel mirror World and Level with JSON tags for pack files.
type packWorld struct {
	ID            string `json:"id"`
	Name          string `json:"name"`
	Order         int    `json:"order"`
	Theme         string `json:"theme"`
	StarsToUnlock int    `json:"starsToUnlock"`
}

type packLevel struct {
	ID            string `json:"id"`
	WorldID       string `json:"worldId"`
	Name          string `json:"name"`
	Order         int    `json:"order"`
	Kind          string `json:"kind"`
	Difficulty    int    `json:"difficulty"`
	StarsRequired int    `json:"starsRequired"`
	MaxScore      int    `json:"maxScore"`
}

type packFile struct {
	Worlds []packWorld `json:"worlds"`
	Levels []packLevel `json:"levels"`
}

var (
	compileOnce    sync.Once
	compiledSchema *jsonschema.Schema
	compileErr     error
)

// compiledPackSchema compiles the pack schema once and caches it.
func compiledPackSchema() (*jsonschema.Schema, error) {
	compileOnce.Do(func() {
		c := jsonschema.NewCompiler()
		if err := c.AddResource("schema://content-pack.json", packSchema); err != nil {
			compileErr = fmt.Errorf("add resource: %w", err)
			return
		}
		compiledSchema, compileErr = c.Compile("schema://content-pack.json")
	})
	return compiledSchema, compileErr
}

// LoadPack replaces the built-in tables with a content pack read from path.
// The file is checked against the pack schema, then against the same
// structural validation applied to the seed. On any error the active
// tables are left unchanged.
func LoadPack(path string) error {
	raw, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read content pack: %w", err)
	}

	var parsed any
	if err := json.Unmarshal(raw, &parsed); err != nil {
		return fmt.Errorf("content pack is not valid JSON: %w", err)
	}

	schema, err := compiledPackSchema()
	if err != nil {
		return fmt.Errorf("compile pack schema: %w", err)
	}
	if err := schema.Validate(parsed); err != nil {
		return fmt.Errorf("content pack schema validation failed: %w", err)
	}

	var pf packFile
	if err := json.Unmarshal(raw, &pf); err != nil {
		return fmt.Errorf("decode content pack: %w", err)
	}

	worlds := make([]World, 0, len(pf.Worlds))
	for _, w := range pf.Worlds {
		worlds = append(worlds, World{
			ID:            w.ID,
			Name:          w.Name,
			Order:         w.Order,
			Theme:         w.Theme,
			StarsToUnlock: w.StarsToUnlock,
		})
	}

	levels := make([]Level, 0, len(pf.Levels))
	for _, l := range pf.Levels {
		difficulty := l.Difficulty
		if difficulty == 0 {
			difficulty = 1
		}
		levels = append(levels, Level{
			ID:            l.ID,
			WorldID:       l.WorldID,
			Name:          l.Name,
			Order:         l.Order,
			Kind:          Kind(l.Kind),
			Difficulty:    difficulty,
			StarsRequired: l.StarsRequired,
			MaxScore:      l.MaxScore,
		})
	}

	if err := validateTables(worlds, levels); err != nil {
		return err
	}

	tbl = buildTables(worlds, levels)
	return nil
}
