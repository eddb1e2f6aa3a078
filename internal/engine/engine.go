// Package engine wires the discovery, parsing, graph-construction and
// query stages into the single batch pipeline spec.md §6's CLI drives.
package engine

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/viant/reachgraph/internal/ast"
	"github.com/viant/reachgraph/internal/callgraph"
	"github.com/viant/reachgraph/internal/cfg"
	"github.com/viant/reachgraph/internal/config"
	"github.com/viant/reachgraph/internal/discover"
	"github.com/viant/reachgraph/internal/edge"
	"github.com/viant/reachgraph/internal/javasitter"
	"github.com/viant/reachgraph/internal/query"
	"github.com/viant/reachgraph/internal/reach"
)

// Engine runs one analysis pass: discover source files, parse them,
// build the CFG/CG edge relation, close it, and answer the configured
// flows.
type Engine struct {
	logger    *slog.Logger
	extension string
}

// Option configures an Engine.
type Option func(*Engine)

// WithLogger overrides the default slog.Default() logger.
func WithLogger(l *slog.Logger) Option {
	return func(e *Engine) { e.logger = l }
}

// WithExtension overrides the ".java" default file extension Walk filters on.
func WithExtension(ext string) Option {
	return func(e *Engine) { e.extension = ext }
}

// New returns an Engine with a default slog logger and the ".java" filter.
func New(opts ...Option) *Engine {
	e := &Engine{logger: slog.Default(), extension: ".java"}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Run executes the full pipeline for cfg and returns the hits its flows
// produce.
func (e *Engine) Run(ctx context.Context, conf *config.Config) ([]query.Hit, error) {
	walker := discover.NewWalker(e.extension)
	files, err := walker.Walk(ctx, conf.ProjectPath)
	if err != nil {
		return nil, fmt.Errorf("engine: walk %s: %w", conf.ProjectPath, err)
	}
	files, err = discover.Dedupe(files)
	if err != nil {
		return nil, fmt.Errorf("engine: dedupe: %w", err)
	}
	e.logger.Info("discovered source files", "count", len(files), "project", conf.ProjectPath)

	sources := make([]javasitter.Source, len(files))
	for i, f := range files {
		sources[i] = javasitter.Source{Path: f.URL, Content: f.Content}
	}

	builder := javasitter.NewBuilder()
	set := builder.BuildAll(ctx, sources, func(path string, err error) {
		e.logger.Warn("skipping file: parse failed", "path", path, "error", err)
	})

	store := e.buildEdges(set)
	closure := reach.Build(store)

	driver := query.NewDriver(set, closure)
	predicates := conf.Predicates()
	flows := conf.QueryFlows()

	hits, err := driver.Run(predicates, flows)
	if err != nil {
		return nil, err
	}
	for _, f := range flows {
		count := 0
		for _, h := range hits {
			if h.From == f.From && h.To == f.To {
				count++
			}
		}
		if count == 0 {
			e.logger.Warn("flow produced no hits", "from", f.From, "to", f.To)
		}
	}
	return hits, nil
}

// buildEdges runs the CFG builder over every MethodDeclaration in the set
// and the CG builder over the whole set, merging every resulting store.
func (e *Engine) buildEdges(set *ast.ProgramSet) *edge.Store {
	stores := []*edge.Store{callgraph.Build(set)}
	for _, p := range set.Programs {
		if p.Root == nil {
			continue
		}
		var walk func(n *ast.ASTNode)
		walk = func(n *ast.ASTNode) {
			if n.Kind == ast.MethodDeclaration {
				stores = append(stores, cfg.Build(n))
			}
			for _, c := range n.Children {
				walk(c)
			}
		}
		walk(p.Root)
	}
	return edge.Merge(stores...)
}
