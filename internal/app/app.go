// Package app implements the application layer for panid.
package app

import (
	"context"
	"fmt"
	"io"
	"os"

	"go.panid.dev/panid/internal/core/domain"
	"go.panid.dev/panid/internal/core/ports"
	"go.panid.dev/panid/internal/engine/convert"
	"go.trai.ch/zerr"
	"golang.org/x/sync/errgroup"
)

// App represents the main application logic.
type App struct {
	codec  ports.TableCodec
	engine *convert.Engine
	source ports.MappingSource
	store  ports.MappingStore
	log    ports.Logger
}

// New creates a new App instance.
func New(
	codec ports.TableCodec,
	engine *convert.Engine,
	source ports.MappingSource,
	store ports.MappingStore,
	log ports.Logger,
) *App {
	return &App{
		codec:  codec,
		engine: engine,
		source: source,
		store:  store,
		log:    log,
	}
}

// ConvertOptions holds the inputs of a conversion run.
type ConvertOptions struct {
	// InputPath is the input CSV file; empty means stdin.
	InputPath string
	// OutputPath is the output CSV file; empty means stdout.
	OutputPath string
	// Conversions are the raw conversion strings, applied in the order
	// given.
	Conversions []string
}

// Convert runs the conversion pipeline: parse every directive, read the
// input table, apply the directives in order, and write the result. All
// parse errors surface before any table or network IO happens.
func (a *App) Convert(ctx context.Context, opts ConvertOptions) error {
	directives, err := domain.ParseDirectives(opts.Conversions)
	if err != nil {
		return err
	}

	input, closeInput, err := openInput(opts.InputPath)
	if err != nil {
		return err
	}
	defer closeInput()

	table, err := a.codec.Read(input)
	if err != nil {
		return err
	}
	a.log.Info(fmt.Sprintf("read %d rows", table.Len()))

	if err := a.prefetch(ctx, directives); err != nil {
		return err
	}

	result, err := a.engine.Apply(ctx, table, directives)
	if err != nil {
		return err
	}
	result = result.Dedup()
	a.log.Info(fmt.Sprintf("writing %d rows", result.Len()))

	return a.writeResult(opts.OutputPath, result)
}

// prefetch resolves every distinct mapping table the directives need
// before the row pipeline starts. Distinct pairs fetch concurrently; the
// cache manager serializes refreshes of the same pair.
func (a *App) prefetch(ctx context.Context, directives []domain.Directive) error {
	g, ctx := errgroup.WithContext(ctx)

	seen := make(map[string]struct{}, len(directives))
	for _, d := range directives {
		key := domain.PairKey(d.SourceType, d.DestType)
		if _, ok := seen[key]; ok {
			continue
		}
		seen[key] = struct{}{}

		g.Go(func() error {
			if _, err := a.source.Resolve(ctx, d.SourceType, d.DestType); err != nil {
				return zerr.Wrap(err, domain.ErrUnresolvedMapping.Error())
			}
			return nil
		})
	}

	return g.Wait()
}

func (a *App) writeResult(path string, t domain.Table) error {
	if path == "" {
		return a.codec.Write(os.Stdout, t)
	}

	f, err := os.Create(path) //nolint:gosec // path is provided by user
	if err != nil {
		return zerr.Wrap(err, domain.ErrTableWriteFailed.Error())
	}

	if err := a.codec.Write(f, t); err != nil {
		_ = f.Close()
		return err
	}
	if err := f.Close(); err != nil {
		return zerr.Wrap(err, domain.ErrTableWriteFailed.Error())
	}
	return nil
}

// Clean purges every cached mapping table.
func (a *App) Clean(_ context.Context) error {
	if err := a.store.Purge(); err != nil {
		return err
	}
	a.log.Info("mapping cache purged")
	return nil
}

func openInput(path string) (io.Reader, func(), error) {
	if path == "" {
		return os.Stdin, func() {}, nil
	}
	f, err := os.Open(path) //nolint:gosec // path is provided by user
	if err != nil {
		return nil, nil, zerr.Wrap(err, domain.ErrTableReadFailed.Error())
	}
	return f, func() { _ = f.Close() }, nil
}
