package main

import (
	"encoding/json"
	"fmt"
	"math/rand"
	"os"

	"github.com/velric/jd-mission-engine/internal/catalog"
	"github.com/velric/jd-mission-engine/internal/config"
	"github.com/velric/jd-mission-engine/internal/missions"
	"github.com/velric/jd-mission-engine/internal/types"
)

// loadEngineConfig resolves the effective configuration: file (if given),
// then environment overrides, then validation. Flag-level overrides are
// applied by each command after this.
func loadEngineConfig(path string) (*config.Config, error) {
	cfg := config.Default()
	if path != "" {
		loaded, err := config.LoadConfig(path)
		if err != nil {
			return nil, fmt.Errorf("failed to load config: %w", err)
		}
		cfg = loaded
	}

	cfg.ApplyEnv()

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// loadData builds the catalog and template set, honoring file overrides
// from the configuration.
func loadData(cfg *config.Config) (*catalog.Catalog, *catalog.TemplateSet, error) {
	var (
		cat *catalog.Catalog
		err error
	)
	if cfg.Catalog != "" {
		cat, err = catalog.LoadFromFile(cfg.Catalog)
	} else {
		cat, err = catalog.Load()
	}
	if err != nil {
		return nil, nil, err
	}

	var templates *catalog.TemplateSet
	if cfg.Templates != "" {
		templates, err = catalog.LoadTemplatesFromFile(cfg.Templates)
	} else {
		templates, err = catalog.LoadTemplates()
	}
	if err != nil {
		return nil, nil, err
	}

	return cat, templates, nil
}

// loadRatings reads a {"skillId": 0-100} JSON file into a UserSkillMap,
// clamping values on the way in.
func loadRatings(path string) (types.UserSkillMap, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read ratings file %s: %w", path, err)
	}

	var raw map[string]int
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("failed to parse ratings JSON: %w", err)
	}

	ratings := types.NewUserSkillMap()
	for id, v := range raw {
		ratings.Set(id, v)
	}
	return ratings, nil
}

// pickerForSeed returns a deterministic picker for non-zero seeds so runs
// are reproducible, and real randomness otherwise.
func pickerForSeed(seed int64) missions.Picker {
	if seed == 0 {
		return nil
	}
	r := rand.New(rand.NewSource(seed))
	return r.Intn
}
