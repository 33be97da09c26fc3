package compiler

import (
	"context"

	"golang.org/x/sync/errgroup"

	"model-generator/internal/diagnostic"
	"model-generator/internal/gen"
	"model-generator/internal/plan"
	"model-generator/internal/schema"
)

// Unit is one schema document to compile.
type Unit struct {
	// ID identifies the unit in results, usually its path.
	ID string
	// Text is the raw document.
	Text string
}

// Result is the outcome of compiling one unit. Either Skip is set and Files is
// empty, or Files holds the entity file followed by the DTO file.
type Result struct {
	UnitID      string
	Model       *plan.Model
	Files       []gen.GeneratedFile
	Skip        *schema.Skip
	Diagnostics diagnostic.Diagnostics
}

// Skipped reports whether the unit produced no output.
func (r *Result) Skipped() bool {
	return r.Skip != nil
}

// Compiler compiles units with one generator configuration. It is safe for
// concurrent use.
type Compiler struct {
	generator *gen.Generator
}

// New creates a Compiler.
func New(config gen.Config) *Compiler {
	return &Compiler{generator: gen.NewGenerator(config)}
}

// Generator returns the generator used for rendering.
func (c *Compiler) Generator() *gen.Generator {
	return c.generator
}

// Compile compiles a single unit. The same unit always yields the same files.
func (c *Compiler) Compile(u Unit) Result {
	result := Result{UnitID: u.ID}

	doc, skip := schema.Parse([]byte(u.Text))
	if skip != nil {
		result.Skip = skip

		return result
	}

	m := c.generator.Prune(plan.Resolve(doc))
	result.Model = m
	result.Diagnostics = m.Diagnostics

	files, err := c.generator.Generate(m)
	if err != nil {
		result.Skip = &schema.Skip{Reason: schema.SkipEmit, Detail: err.Error()}

		return result
	}

	result.Files = files

	return result
}

// CompileAll compiles units on at most workers goroutines and returns their
// results in unit order. A cancelled context stops scheduling: units that
// never started are absent from the results.
func (c *Compiler) CompileAll(ctx context.Context, units []Unit, workers int) []Result {
	if workers < 1 {
		workers = 1
	}

	slots := make([]*Result, len(units))

	eg, ctx := errgroup.WithContext(ctx)
	eg.SetLimit(workers)

	for i, u := range units {
		if ctx.Err() != nil {
			break
		}

		eg.Go(func() error {
			if ctx.Err() != nil {
				return nil
			}

			r := c.Compile(u)
			slots[i] = &r

			return nil
		})
	}

	// Tasks never return errors.
	_ = eg.Wait()

	results := make([]Result, 0, len(units))

	for _, r := range slots {
		if r != nil {
			results = append(results, *r)
		}
	}

	return results
}

// Summary counts the outcome of a batch.
type Summary struct {
	Units    int
	Compiled int
	Skipped  int
	Files    int
	Warnings int
	Infos    int
}

// Summarize counts results.
func Summarize(results []Result) Summary {
	var s Summary

	for i := range results {
		r := &results[i]
		s.Units++

		if r.Skipped() {
			s.Skipped++
		} else {
			s.Compiled++
		}

		s.Files += len(r.Files)
		s.Warnings += len(r.Diagnostics.Warnings)
		s.Infos += len(r.Diagnostics.Infos)
	}

	return s
}
