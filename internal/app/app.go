package app

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/vk/cataloggo/internal/catalog"
	"github.com/vk/cataloggo/internal/ctxlog"
	"github.com/vk/cataloggo/internal/manifest"
)

// App encapsulates the application's dependencies, configuration, and
// lifecycle: a store populated by modules, plus the manifests that describe
// what the store is expected to contain.
type App struct {
	outW   io.Writer
	logger *slog.Logger
	store  *catalog.Store
	model  *manifest.Model
}

// New constructs a fully initialized App: it builds an isolated logger,
// registers the given modules (the compiled-in core set when none are
// provided) into a fresh store, and loads the manifests. Listings go to
// outW, logs to logW. Validation is deferred to Run.
func New(outW, logW io.Writer, cfg *Config, modules ...catalog.Module) (*App, error) {
	logger := newLogger(cfg.LogLevel, cfg.LogFormat, logW)
	ctx := ctxlog.WithLogger(context.Background(), logger)
	logger.Debug("Logger configured successfully.")

	store := catalog.New()
	if len(modules) == 0 {
		modules = coreModules
	}
	for _, mod := range modules {
		mod.Register(store)
	}
	logger.Debug("All registration modules wired.", "count", len(modules))

	model, err := manifest.Load(ctx, cfg.ManifestPath)
	if err != nil {
		return nil, fmt.Errorf("failed to load manifests: %w", err)
	}

	return &App{
		outW:   outW,
		logger: logger,
		store:  store,
		model:  model,
	}, nil
}

// Store returns the application's catalog store. This is primarily for
// testing.
func (a *App) Store() *catalog.Store {
	return a.store
}

// Run validates the store against the manifests and writes a listing of
// every declared namespace with its registered entries.
func (a *App) Run(ctx context.Context) error {
	ctx = ctxlog.WithLogger(ctx, a.logger)

	if err := manifest.Validate(ctx, a.model, a.store); err != nil {
		return err
	}

	for _, namespace := range a.model.Namespaces() {
		fmt.Fprintf(a.outW, "%s\n", strings.Join(namespace, "."))
		for _, entry := range a.store.Create(namespace...).GetAll() {
			line := "  " + entry.Name
			if desc := a.describe(namespace, entry.Name); desc != "" {
				line += "  " + desc
			}
			fmt.Fprintln(a.outW, line)
		}
	}

	a.logger.Info("Catalog listing complete.", "namespaces", len(a.model.Namespaces()))
	return nil
}

// describe finds the manifest description for an entry, if one was declared.
func (a *App) describe(namespace []string, name string) string {
	for _, d := range a.model.In(namespace) {
		if d.Name == name {
			return d.Description
		}
	}
	return ""
}
