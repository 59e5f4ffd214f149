package plan

import (
	"strings"

	"infa2sql/internal/common"
	"infa2sql/internal/document"
	"infa2sql/internal/endpoint"
)

// Build returns one plan per mapping declared in doc, in document order.
func Build(doc *document.Document) []MappingPlan {
	if doc == nil {
		return []MappingPlan{}
	}

	switch doc.Kind {
	case document.KindJSON:
		return buildJSON(doc.JSON)
	case document.KindXML:
		return buildXML(doc.XML)
	default:
		return []MappingPlan{}
	}
}

// Count returns the number of mappings declared in doc.
func Count(doc *document.Document) int {
	if doc == nil {
		return 0
	}

	switch doc.Kind {
	case document.KindJSON:
		return len(jsonMappingEntries(doc.JSON))
	case document.KindXML:
		if doc.XML == nil {
			return 0
		}

		return len(doc.XML.FindAll("MAPPING"))
	default:
		return 0
	}
}

// --- PowerCenter XML ---

func buildXML(root *document.Element) []MappingPlan {
	plans := []MappingPlan{}
	if root == nil {
		return plans
	}

	for _, m := range root.FindAll("MAPPING") {
		name, _ := m.Attr("NAME")

		var sources, targets []*document.Element

		for _, t := range m.Descendants("TRANSFORMATION") {
			typ, _ := t.Attr("TYPE")
			typ = strings.ToLower(strings.TrimSpace(typ))

			switch {
			case strings.HasPrefix(typ, "source"):
				sources = append(sources, t)
			case strings.HasPrefix(typ, "target"):
				targets = append(targets, t)
			}
		}

		plans = append(plans, MappingPlan{
			Name:    nameOr(name),
			Kind:    document.KindXML,
			Sources: soleEndpoint(sources, endpoint.DefaultSourceName),
			Targets: soleEndpoint(targets, endpoint.DefaultTargetName),
		})
	}

	return plans
}

// soleEndpoint returns the endpoint of the only candidate transformation.
// Zero or several candidates are ambiguous and leave that side empty.
func soleEndpoint(candidates []*document.Element, defaultName string) []endpoint.Endpoint {
	t, ok := common.First(candidates)
	if !ok || !common.IsSingle(candidates) {
		return []endpoint.Endpoint{}
	}

	name, _ := t.Attr("NAME")
	if strings.TrimSpace(name) == "" {
		name = defaultName
	}

	var fields []string

	for _, f := range t.ChildrenNamed("FIELD") {
		if fieldName, ok := f.Attr("NAME"); ok {
			fields = append(fields, fieldName)
		}
	}

	return []endpoint.Endpoint{endpoint.New(name, fields...)}
}

// --- IDMC JSON ---

func buildJSON(v any) []MappingPlan {
	entries := jsonMappingEntries(v)
	plans := make([]MappingPlan, 0, len(entries))

	for _, m := range entries {
		name, _ := m["name"].(string)

		plans = append(plans, MappingPlan{
			Name:    nameOr(name),
			Kind:    document.KindJSON,
			Sources: jsonEndpoints(m, "sources", "source", endpoint.DefaultSourceName),
			Targets: jsonEndpoints(m, "targets", "target", endpoint.DefaultTargetName),
		})
	}

	return plans
}

// jsonMappingEntries returns the entries of the top-level "mappings" list
// followed by the "objects" entries typed as mappings. A top-level array is
// itself the mappings list. Only objects count.
func jsonMappingEntries(v any) []map[string]any {
	switch root := v.(type) {
	case []any:
		return objectEntries(root, nil)
	case map[string]any:
		var out []map[string]any

		if list, ok := root["mappings"].([]any); ok {
			out = append(out, objectEntries(list, nil)...)
		}

		if list, ok := root["objects"].([]any); ok {
			out = append(out, objectEntries(list, isMappingObject)...)
		}

		return out
	default:
		return nil
	}
}

func objectEntries(list []any, keep func(map[string]any) bool) []map[string]any {
	var out []map[string]any

	for _, item := range list {
		obj, ok := item.(map[string]any)
		if !ok || (keep != nil && !keep(obj)) {
			continue
		}

		out = append(out, obj)
	}

	return out
}

func isMappingObject(obj map[string]any) bool {
	typ, ok := obj["type"].(string)
	return ok && strings.EqualFold(strings.TrimSpace(typ), "mapping")
}

// jsonEndpoints prefers the plural key and falls back to the singular one.
// Both may hold a list, which is kept in full.
func jsonEndpoints(m map[string]any, plural, singular, defaultName string) []endpoint.Endpoint {
	if eps := endpoint.Normalize(m[plural], defaultName); len(eps) > 0 {
		return eps
	}

	return endpoint.Normalize(m[singular], defaultName)
}

func nameOr(name string) string {
	if name = strings.TrimSpace(name); name != "" {
		return name
	}

	return UnknownMapping
}
