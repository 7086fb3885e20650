package routetable

import (
	"context"
	"io"
	"log/slog"
	"runtime"

	"golang.org/x/sync/errgroup"

	"github.com/dunglas/go-routepattern"
)

// CompiledRoute is a route together with the result of parsing its URL.
type CompiledRoute struct {
	Route       Route
	Pattern     routepattern.PatternList
	Diagnostics []routepattern.Diagnostic
}

// OK reports whether the pattern was parsed without diagnostics.
func (r CompiledRoute) OK() bool {
	return len(r.Diagnostics) == 0
}

// CompileRoute parses the URL of a single route.
func CompileRoute(route Route) CompiledRoute {
	p := routepattern.NewParser(routepattern.NewScanner(route.URL))
	pattern := p.Parse()

	return CompiledRoute{Route: route, Pattern: pattern, Diagnostics: p.Diagnostics()}
}

type Compiler struct {
	logger      *slog.Logger
	concurrency int
}

func NewCompiler(opts ...Option) *Compiler {
	c := &Compiler{
		logger:      slog.New(slog.NewTextHandler(io.Discard, nil)),
		concurrency: runtime.GOMAXPROCS(0),
	}
	for _, opt := range opts {
		opt(c)
	}

	return c
}

// Compile parses every route of the table. The result is in table order.
//
// Diagnostics do not make Compile fail; the only error returned is the
// context's, when it is canceled before all routes are compiled.
func (c *Compiler) Compile(ctx context.Context, t *Table) ([]CompiledRoute, error) {
	compiled := make([]CompiledRoute, len(t.Routes))

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(c.concurrency)

	for i, route := range t.Routes {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}

			compiled[i] = CompileRoute(route)
			c.report(ctx, t, compiled[i])

			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	return compiled, nil
}

func (c *Compiler) report(ctx context.Context, t *Table, r CompiledRoute) {
	if r.OK() {
		c.logger.LogAttrs(ctx, slog.LevelDebug, "route compiled",
			slog.String("route", r.Route.Name),
			slog.String("path", t.Display(r.Route)),
			slog.Int("items", len(r.Pattern)),
		)

		return
	}

	// Columns count from the start of the route URL, without the base path.
	for _, d := range r.Diagnostics {
		c.logger.LogAttrs(ctx, slog.LevelWarn, d.Message(),
			slog.String("route", r.Route.Name),
			slog.String("url", r.Route.URL),
			slog.Int("column", d.Column),
		)
	}
}
