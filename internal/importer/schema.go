package importer

import (
	_ "embed"
	"fmt"
	"os"
)

//go:embed seed.yaml
var seedYAML []byte

// KnowledgeBaseFile is the top-level YAML structure for a knowledge-base
// import.
type KnowledgeBaseFile struct {
	Archetypes []ArchetypeImport `yaml:"archetypes"`
	Features   []FeatureImport   `yaml:"features"`
}

// ArchetypeImport defines one project archetype in the import file.
type ArchetypeImport struct {
	ID        string            `yaml:"id"`
	Name      string            `yaml:"name"`
	Category  string            `yaml:"category"`
	Keywords  []string          `yaml:"keywords"`
	Baselines BaselineSetImport `yaml:"baseline_estimates"`
}

// BaselineSetImport holds the reference estimates per staffing tier.
type BaselineSetImport struct {
	MidTier BaselineImport `yaml:"mid_tier"`
	Senior  BaselineImport `yaml:"senior"`
}

type BaselineImport struct {
	CostMin  int `yaml:"cost_min"`
	CostMax  int `yaml:"cost_max"`
	WeeksMin int `yaml:"weeks_min"`
	WeeksMax int `yaml:"weeks_max"`
	TeamSize int `yaml:"team_size"`
}

// FeatureImport maps a selectable feature ID to its display label.
type FeatureImport struct {
	ID    string `yaml:"id"`
	Label string `yaml:"label"`
}

// LoadKnowledgeBase reads and parses a knowledge-base YAML file.
func LoadKnowledgeBase(path string) (*KnowledgeBaseFile, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return ParseKnowledgeBase(data)
}

// ParseKnowledgeBase decodes knowledge-base YAML. Unknown fields are rejected.
func ParseKnowledgeBase(data []byte) (*KnowledgeBaseFile, error) {
	var file KnowledgeBaseFile
	if err := decodeStrict(data, &file); err != nil {
		return nil, fmt.Errorf("parsing knowledge base: %w", err)
	}
	return &file, nil
}

// Seed returns the built-in knowledge base.
func Seed() (*KnowledgeBaseFile, error) {
	return ParseKnowledgeBase(seedYAML)
}
