package pagetree

import (
	"net/http"

	"github.com/goliatone/go-pagetree/internal/di"
	"github.com/goliatone/go-pagetree/internal/markdown"
	internalpages "github.com/goliatone/go-pagetree/internal/pages"
	internalrender "github.com/goliatone/go-pagetree/internal/render"
	"github.com/goliatone/go-pagetree/internal/urls"
	"github.com/goliatone/go-pagetree/pages"
)

// PageService exports the page service contract.
type PageService = pages.Service

// PublicEngine exports the public render engine.
type PublicEngine = internalrender.PublicEngine

// AdminEngine exports the admin render engine.
type AdminEngine = internalrender.AdminEngine

// URLBuilder exports the link builder used by the render engines.
type URLBuilder = urls.Builder

// MemoryPageRepository exports the in-memory store for embedding and tests.
type MemoryPageRepository = internalpages.MemoryPageRepository

// Importer exports the markdown importer.
type Importer = markdown.Importer

// Option re-exports the container option type so hosts can inject overrides.
type Option = di.Option

// WithDB wires the bun database handle used by the default repository.
var WithDB = di.WithDB

// WithPageRepository overrides the page repository entirely.
var WithPageRepository = di.WithPageRepository

// WithCache wires the repository read-through cache.
var WithCache = di.WithCache

// WithLoggerProvider overrides the logger provider resolved from config.
var WithLoggerProvider = di.WithLoggerProvider

// Module is the top level page tree runtime façade.
type Module struct {
	container *di.Container
}

// New constructs a module using the provided configuration and optional
// dependency overrides.
func New(cfg Config, opts ...Option) (*Module, error) {
	container, err := di.NewContainer(cfg, opts...)
	if err != nil {
		return nil, err
	}
	return &Module{container: container}, nil
}

// Container exposes the underlying container for advanced integrations.
func (m *Module) Container() *di.Container {
	return m.container
}

// Pages returns the configured page service.
func (m *Module) Pages() PageService {
	return m.container.PageService()
}

// Renderer returns the public render engine.
func (m *Module) Renderer() *PublicEngine {
	return m.container.PublicEngine()
}

// AdminRenderer returns the admin render engine.
func (m *Module) AdminRenderer() *AdminEngine {
	return m.container.AdminEngine()
}

// URLs returns the link builder.
func (m *Module) URLs() *URLBuilder {
	return m.container.URLBuilder()
}

// Importer returns a markdown importer bound to the configured content dir.
func (m *Module) Importer() *Importer {
	return m.container.Importer()
}

// RegisterRoutes attaches the public and admin endpoints to the mux.
func (m *Module) RegisterRoutes(mux *http.ServeMux) error {
	return m.container.RegisterRoutes(mux)
}
