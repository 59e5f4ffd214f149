package plan

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"infa2sql/internal/endpoint"
)

// PlanFileVersion is the plan file format written by ExportYAML.
const PlanFileVersion = "1"

// PlanFile is the YAML shape written by ExportYAML. Users may edit it and
// feed it back to the generator instead of the original workflow.
type PlanFile struct {
	Version  string         `yaml:"version"`
	Document string         `yaml:"document,omitempty"`
	Mappings []ExportedPlan `yaml:"mappings"`
}

// ExportedPlan is one mapping plan as exported to YAML.
type ExportedPlan struct {
	Name string `yaml:"name"`
	Kind string `yaml:"kind"`
	// Supported is informational; it is recomputed when the file is read.
	Supported bool                `yaml:"supported"`
	Sources   []endpoint.Endpoint `yaml:"sources"`
	Targets   []endpoint.Endpoint `yaml:"targets"`
}

// Export converts plans into their exported form, keeping their order.
func Export(documentPath string, plans []MappingPlan) *PlanFile {
	pf := &PlanFile{
		Version:  PlanFileVersion,
		Document: documentPath,
		Mappings: make([]ExportedPlan, 0, len(plans)),
	}

	for _, p := range plans {
		pf.Mappings = append(pf.Mappings, ExportedPlan{
			Name:      p.Name,
			Kind:      p.Kind.String(),
			Supported: p.IsSupported(),
			Sources:   p.Sources,
			Targets:   p.Targets,
		})
	}

	return pf
}

// ExportYAML renders plans as YAML so they can be reviewed before generating SQL.
func ExportYAML(documentPath string, plans []MappingPlan) ([]byte, error) {
	return yaml.Marshal(Export(documentPath, plans))
}

// LoadFile loads and parses a plan file from the given path.
func LoadFile(path string) (*PlanFile, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read plan file %s: %w", path, err)
	}

	return Parse(data)
}

// Parse parses YAML data into a PlanFile.
func Parse(data []byte) (*PlanFile, error) {
	var pf PlanFile

	err := yaml.Unmarshal(data, &pf)
	if err != nil {
		return nil, fmt.Errorf("failed to parse plan YAML: %w", err)
	}

	applyDefaults(&pf)

	return &pf, nil
}

// applyDefaults fills in default values for optional fields.
func applyDefaults(pf *PlanFile) {
	if pf.Version == "" {
		pf.Version = PlanFileVersion
	}

	for i := range pf.Mappings {
		if pf.Mappings[i].Kind == "" {
			pf.Mappings[i].Kind = "JSON"
		}
	}
}

// WriteFile writes plans as a plan file at path.
func WriteFile(path, documentPath string, plans []MappingPlan) error {
	data, err := ExportYAML(documentPath, plans)
	if err != nil {
		return fmt.Errorf("failed to marshal plans: %w", err)
	}

	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("failed to write plan file %s: %w", path, err)
	}

	return nil
}
