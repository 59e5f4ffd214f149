package endpoint

import (
	"encoding/json"
	"maps"
	"slices"
	"strconv"
	"strings"

	"github.com/jmespath/go-jmespath"

	"infa2sql/internal/common"
)

// FieldKeys lists the JMESPath expressions probed for fields, highest priority first.
var FieldKeys = []string{"fields", "columns", "ports", "children", "items", "schema.fields"}

var fieldExprs = compileFieldKeys(FieldKeys)

func compileFieldKeys(keys []string) []*jmespath.JMESPath {
	exprs := make([]*jmespath.JMESPath, len(keys))
	for i, k := range keys {
		exprs[i] = jmespath.MustCompile(k)
	}

	return exprs
}

// Normalize converts a raw endpoint description into canonical endpoints.
//
// raw may be nil, a string (a bare name), a JSON object, or a list mixing
// those; lists are flattened in order. defaultName replaces absent or blank
// names. The result is never nil.
func Normalize(raw any, defaultName string) []Endpoint {
	out := []Endpoint{}

	switch v := raw.(type) {
	case nil:
	case string:
		out = append(out, New(nameOr(v, defaultName)))
	case map[string]any:
		out = append(out, fromObject(v, defaultName))
	case []any:
		for _, item := range v {
			out = append(out, Normalize(item, defaultName)...)
		}
	default:
		if s, ok := scalarString(v); ok {
			out = append(out, New(nameOr(s, defaultName)))
		}
	}

	return out
}

// First normalizes raw and returns the first endpoint, if any.
func First(raw any, defaultName string) (Endpoint, bool) {
	return common.First(Normalize(raw, defaultName))
}

func fromObject(obj map[string]any, defaultName string) Endpoint {
	name, _ := scalarString(obj["name"])

	return New(nameOr(name, defaultName), Fields(obj)...)
}

// Fields extracts the field names declared on obj, following FieldKeys.
func Fields(obj map[string]any) []string {
	for _, expr := range fieldExprs {
		found, err := expr.Search(obj)
		if err != nil || found == nil {
			continue
		}

		var fields []string

		collectFields(found, &fields)

		if len(fields) == 0 {
			fields = columnKeys(found)
		}

		if len(fields) > 0 {
			return New("", fields...).Fields
		}
	}

	return nil
}

// columnKeys reads a field list written as an object keyed by column name,
// e.g. {"id": "int", "name": "string"}. Keys come back sorted since JSON
// objects carry no order.
func columnKeys(v any) []string {
	obj, ok := v.(map[string]any)
	if !ok {
		return nil
	}

	return slices.Sorted(maps.Keys(obj))
}

// collectFields appends every leaf field name found under v.
func collectFields(v any, out *[]string) {
	switch t := v.(type) {
	case []any:
		for _, item := range t {
			collectFields(item, out)
		}
	case map[string]any:
		if name, ok := scalarString(t["name"]); ok {
			*out = append(*out, name)
			return
		}

		*out = append(*out, Fields(t)...)
	default:
		if s, ok := scalarString(t); ok {
			*out = append(*out, s)
		}
	}
}

// scalarString coerces a JSON scalar to a trimmed string. Falsy values
// (nil, "", false, 0) and blank strings report false.
func scalarString(v any) (string, bool) {
	var s string

	switch t := v.(type) {
	case string:
		s = t
	case float64:
		if t == 0 {
			return "", false
		}

		s = strconv.FormatFloat(t, 'f', -1, 64)
	case json.Number:
		if f, err := t.Float64(); err == nil && f == 0 {
			return "", false
		}

		s = t.String()
	case bool:
		if !t {
			return "", false
		}

		s = strconv.FormatBool(t)
	default:
		return "", false
	}

	s = strings.TrimSpace(s)

	return s, s != ""
}

func nameOr(name, defaultName string) string {
	if name = strings.TrimSpace(name); name != "" {
		return name
	}

	return defaultName
}
