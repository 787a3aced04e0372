// Package schemas embeds the JSON Schema files the engine validates its
// configuration data against.
package schemas

import _ "embed"

// SkillCatalog is the JSON Schema for skill catalog data files.
//
//go:embed skill_catalog.schema.json
var SkillCatalog []byte

// MissionTemplates is the JSON Schema for mission template data files.
//
//go:embed mission_templates.schema.json
var MissionTemplates []byte
