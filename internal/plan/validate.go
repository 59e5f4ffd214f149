package plan

import (
	"fmt"
	"strings"

	"infa2sql/internal/common"
	"infa2sql/internal/diagnostic"
	"infa2sql/internal/document"
	"infa2sql/internal/endpoint"
)

// Validate checks a plan file before it is turned back into plans.
// This is a structural validation step only; fields are not checked
// against any database.
func Validate(pf *PlanFile) *diagnostic.Diagnostics {
	res := &diagnostic.Diagnostics{}
	if pf == nil {
		res.AddError("plan_file_is_nil", "plan file is nil", "", "")
		return res
	}

	if pf.Version != PlanFileVersion {
		res.AddError(diagnostic.CodeUnsupportedVersion,
			fmt.Sprintf("unsupported plan file version %q (want %q)", pf.Version, PlanFileVersion), "", "")
	}

	for i := range pf.Mappings {
		ep := &pf.Mappings[i]

		name := ep.Name
		if strings.TrimSpace(name) == "" {
			name = fmt.Sprintf("#%d", i+1)
			res.AddError(diagnostic.CodeMissingMappingName, "mapping must have a name", name, "")
		}

		if _, ok := document.ParseKind(ep.Kind); !ok {
			res.AddError(diagnostic.CodeInvalidKind,
				fmt.Sprintf("invalid kind %q (want XML or JSON)", ep.Kind), name, "")
		}

		validateEndpoints(res, name, "source", ep.Sources)
		validateEndpoints(res, name, "target", ep.Targets)
	}

	return res
}

func validateEndpoints(res *diagnostic.Diagnostics, mapping, role string, eps []endpoint.Endpoint) {
	for _, ep := range eps {
		if strings.TrimSpace(ep.Name) == "" {
			res.AddError(diagnostic.CodeMissingEndpointName,
				fmt.Sprintf("%s endpoint must have a name", role), mapping, "")

			continue
		}

		seen := common.NewFoldSet()
		for _, f := range ep.Fields {
			if !seen.Add(f) {
				res.AddWarning(diagnostic.CodeDuplicateField,
					fmt.Sprintf("%s %s lists %q more than once; keeping the first", role, ep.Name, f), mapping, f)
			}
		}
	}
}

// Plans rebuilds canonical mapping plans from a validated plan file.
// Endpoints are re-normalized, so blank and duplicate fields are dropped.
func (pf *PlanFile) Plans() []MappingPlan {
	plans := make([]MappingPlan, 0, len(pf.Mappings))

	for _, ep := range pf.Mappings {
		kind, ok := document.ParseKind(ep.Kind)
		if !ok {
			kind = document.KindJSON
		}

		plans = append(plans, MappingPlan{
			Name:    nameOr(ep.Name),
			Kind:    kind,
			Sources: canonical(ep.Sources),
			Targets: canonical(ep.Targets),
		})
	}

	return plans
}

func canonical(eps []endpoint.Endpoint) []endpoint.Endpoint {
	out := make([]endpoint.Endpoint, 0, len(eps))
	for _, ep := range eps {
		out = append(out, endpoint.New(ep.Name, ep.Fields...))
	}

	return out
}
