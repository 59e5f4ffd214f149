package plan

import (
	"infa2sql/internal/document"
	"infa2sql/internal/endpoint"
)

// UnknownMapping names mappings that declare no usable name.
const UnknownMapping = "UNKNOWN_MAPPING"

// MappingPlan is the canonical form of one mapping: its name and its
// ordered source and target endpoints. Sources and Targets are never nil;
// an empty side marks the mapping as unsupported.
type MappingPlan struct {
	// Name of the mapping, UnknownMapping when absent.
	Name string
	// Kind records which document format the plan came from. XML plans
	// with a single source and target use the legacy pairing rules.
	Kind document.Kind
	// Sources in declaration order.
	Sources []endpoint.Endpoint
	// Targets in declaration order.
	Targets []endpoint.Endpoint
}

// IsSupported reports whether the plan has at least one source and one target.
func (p MappingPlan) IsSupported() bool {
	return len(p.Sources) > 0 && len(p.Targets) > 0
}

// IsLegacyPair reports whether the plan follows the single source/target
// pairing rules of PowerCenter XML exports.
func (p MappingPlan) IsLegacyPair() bool {
	return p.Kind == document.KindXML && len(p.Sources) == 1 && len(p.Targets) == 1
}
