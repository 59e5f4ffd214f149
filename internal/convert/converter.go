package convert

import (
	"context"
	"errors"
	"fmt"
	"runtime"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"infa2sql/internal/diagnostic"
	"infa2sql/internal/document"
	"infa2sql/internal/gen"
	"infa2sql/internal/plan"
)

// ErrDocumentEmpty is returned in strict mode for readable documents that
// declare no mapping.
var ErrDocumentEmpty = errors.New("document declares no mappings")

// Converter turns workflow documents into SQL.
type Converter struct {
	logger      *zap.Logger
	strict      bool
	generator   *gen.Generator
	concurrency int
}

// New creates a Converter. Without options it logs nothing, tolerates
// unreadable JSON and uses the default generator configuration.
func New(opts ...Option) *Converter {
	c := &Converter{
		logger:    zap.NewNop(),
		generator: gen.NewGenerator(gen.DefaultGeneratorConfig()),
	}

	for _, opt := range opts {
		opt(c)
	}

	return c
}

// Load reads the document at path. In lenient mode an unreadable JSON
// document is logged and reported as (nil, nil); malformed XML is always an
// error.
func (c *Converter) Load(path string) (*document.Document, error) {
	doc, err := document.Load(path)
	if err == nil {
		return doc, nil
	}

	var perr *document.ParseError
	if !c.strict && errors.As(err, &perr) && perr.Kind == document.KindJSON {
		c.logger.Warn("unreadable JSON workflow treated as empty",
			zap.String("path", path), zap.Error(perr.Err))

		return nil, nil
	}

	return nil, err
}

// CountMappings returns the number of mappings declared in the document.
func (c *Converter) CountMappings(path string) (int, error) {
	doc, err := c.Load(path)
	if err != nil {
		return 0, err
	}

	n := plan.Count(doc)
	if n == 0 && c.strict {
		return 0, fmt.Errorf("%s: %w", path, ErrDocumentEmpty)
	}

	return n, nil
}

// Plans returns the canonical mapping plans of the document, in document order.
func (c *Converter) Plans(path string) ([]plan.MappingPlan, error) {
	doc, err := c.Load(path)
	if err != nil {
		return nil, err
	}

	plans := plan.Build(doc)
	if len(plans) == 0 && c.strict {
		return nil, fmt.Errorf("%s: %w", path, ErrDocumentEmpty)
	}

	c.logger.Debug("mapping plans built", zap.String("path", path), zap.Int("mappings", len(plans)))

	return plans, nil
}

// Convert loads the document at path and renders every mapping.
func (c *Converter) Convert(ctx context.Context, path string) (*Result, error) {
	plans, err := c.Plans(path)
	if err != nil {
		return nil, err
	}

	return c.ConvertPlans(ctx, plans)
}

// ConvertPlanFile renders the mappings of a reviewed plan file, as written
// by plan.WriteFile. Validation errors abort the conversion; validation
// warnings are returned with the result.
func (c *Converter) ConvertPlanFile(ctx context.Context, path string) (*Result, error) {
	pf, err := plan.LoadFile(path)
	if err != nil {
		return nil, err
	}

	checks := plan.Validate(pf)
	if err := checks.Error(); err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	plans := pf.Plans()
	if len(plans) == 0 && c.strict {
		return nil, fmt.Errorf("%s: %w", path, ErrDocumentEmpty)
	}

	res, err := c.ConvertPlans(ctx, plans)
	if err != nil {
		return nil, err
	}

	res.Diagnostics.Warnings = append(checks.Warnings, res.Diagnostics.Warnings...)

	return res, nil
}

// ConvertPlans renders plans in parallel. Result.Mappings keeps the order
// of plans.
func (c *Converter) ConvertPlans(ctx context.Context, plans []plan.MappingPlan) (*Result, error) {
	mappings := make([]gen.MappingSQL, len(plans))
	diags := make([]diagnostic.Diagnostics, len(plans))

	limit := c.concurrency
	if limit < 1 {
		limit = runtime.GOMAXPROCS(0)
	}

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(limit)

	for i := range plans {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}

			out, d, err := c.generator.Generate(plans[i])
			if err != nil {
				return err
			}

			mappings[i] = out
			diags[i] = d

			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("converting mappings: %w", err)
	}

	res := &Result{Mappings: mappings}
	for _, d := range diags {
		res.Diagnostics.Merge(d)
	}

	c.logger.Debug("mappings converted",
		zap.Int("mappings", len(mappings)),
		zap.Int("warnings", len(res.Diagnostics.Warnings)))

	return res, nil
}

// CountMappings returns the number of mappings in the document at path,
// 0 for unreadable JSON.
func CountMappings(path string) (int, error) {
	return New().CountMappings(path)
}

// ConvertMappingsToSQL converts the document at path and returns each
// mapping's SQL keyed by mapping name.
func ConvertMappingsToSQL(path string) (map[string]string, error) {
	res, err := New().Convert(context.Background(), path)
	if err != nil {
		return nil, err
	}

	return res.SQLByName(), nil
}
