package di

import (
	"errors"
	"net/http"
	"strings"

	"github.com/goliatone/go-repository-cache/cache"
	"github.com/uptrace/bun"

	pagescmd "github.com/goliatone/go-pagetree/internal/commands/pages"
	internalhttp "github.com/goliatone/go-pagetree/internal/http"
	"github.com/goliatone/go-pagetree/internal/logging"
	"github.com/goliatone/go-pagetree/internal/logging/gologger"
	"github.com/goliatone/go-pagetree/internal/markdown"
	internalpages "github.com/goliatone/go-pagetree/internal/pages"
	internalrender "github.com/goliatone/go-pagetree/internal/render"
	"github.com/goliatone/go-pagetree/internal/runtimeconfig"
	"github.com/goliatone/go-pagetree/internal/urls"
	"github.com/goliatone/go-pagetree/pages"
	"github.com/goliatone/go-pagetree/pkg/interfaces"
)

// Container wires the module services from configuration plus optional
// overrides. Construction is eager: every collaborator is built once and
// shared for the lifetime of the container.
type Container struct {
	cfg runtimeconfig.Config

	db             *bun.DB
	repo           internalpages.PageRepository
	cacheService   cache.CacheService
	keySerializer  cache.KeySerializer
	loggerProvider interfaces.LoggerProvider

	pageService  pages.Service
	urlBuilder   *urls.Builder
	publicEngine *internalrender.PublicEngine
	adminEngine  *internalrender.AdminEngine

	saver   *pagescmd.SavePageHandler
	updater *pagescmd.UpdatePageHandler
	deleter *pagescmd.DeletePageHandler

	publicAPI *internalhttp.PublicAPI
	adminAPI  *internalhttp.AdminAPI
}

// Option mutates the container before services are wired.
type Option func(*Container) error

// WithDB wires the bun database handle used by the default repository.
func WithDB(db *bun.DB) Option {
	return func(c *Container) error {
		c.db = db
		return nil
	}
}

// WithPageRepository overrides the page repository entirely.
func WithPageRepository(repo internalpages.PageRepository) Option {
	return func(c *Container) error {
		c.repo = repo
		return nil
	}
}

// WithCache wires the repository read-through cache.
func WithCache(service cache.CacheService, serializer cache.KeySerializer) Option {
	return func(c *Container) error {
		c.cacheService = service
		c.keySerializer = serializer
		return nil
	}
}

// WithLoggerProvider overrides the logger provider resolved from config.
func WithLoggerProvider(provider interfaces.LoggerProvider) Option {
	return func(c *Container) error {
		c.loggerProvider = provider
		return nil
	}
}

// NewContainer validates the configuration and wires every service.
func NewContainer(cfg runtimeconfig.Config, opts ...Option) (*Container, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	c := &Container{cfg: cfg}
	for _, opt := range opts {
		if opt == nil {
			continue
		}
		if err := opt(c); err != nil {
			return nil, err
		}
	}

	if err := c.wireLogging(); err != nil {
		return nil, err
	}
	if err := c.wireRepository(); err != nil {
		return nil, err
	}
	c.wireServices()

	return c, nil
}

func (c *Container) wireLogging() error {
	if c.loggerProvider != nil || !c.cfg.Features.Logger {
		return nil
	}

	provider, err := gologger.NewProvider(gologger.Config{
		Level:     c.cfg.Logging.Level,
		Format:    loggingFormat(c.cfg.Logging),
		AddSource: c.cfg.Logging.AddSource,
		Focus:     c.cfg.Logging.Focus,
	})
	if err != nil {
		return err
	}
	c.loggerProvider = provider
	return nil
}

// loggingFormat maps the console provider onto go-logger's console type so
// both configured providers share one adapter.
func loggingFormat(cfg runtimeconfig.LoggingConfig) string {
	if strings.EqualFold(strings.TrimSpace(cfg.Provider), "console") {
		if strings.TrimSpace(cfg.Format) == "" {
			return "console"
		}
	}
	return cfg.Format
}

func (c *Container) wireRepository() error {
	if c.repo != nil {
		return nil
	}

	switch strings.ToLower(strings.TrimSpace(c.cfg.Storage.Provider)) {
	case "memory":
		c.repo = internalpages.NewMemoryPageRepository()
		return nil
	default:
		if c.db == nil {
			return errors.New("pagetree: bun storage requires a database handle; use WithDB or the memory provider")
		}
		if c.cfg.Cache.Enabled && c.cacheService != nil {
			c.repo = internalpages.NewBunPageRepositoryWithCache(c.db, c.cacheService, c.keySerializer)
			return nil
		}
		c.repo = internalpages.NewBunPageRepository(c.db)
		return nil
	}
}

func (c *Container) wireServices() {
	c.pageService = internalpages.NewService(c.repo,
		internalpages.WithLogger(logging.PagesLogger(c.loggerProvider)),
	)

	c.urlBuilder = urls.NewBuilderWithAdminPath(c.cfg.Admin.BasePath)

	renderLogger := logging.RenderLogger(c.loggerProvider)
	c.publicEngine = internalrender.NewPublicEngine(c.pageService, c.urlBuilder,
		internalrender.WithPublicLogger(renderLogger),
	)
	c.adminEngine = internalrender.NewAdminEngine(c.pageService, c.urlBuilder,
		internalrender.WithAdminLogger(renderLogger),
	)

	pagesLogger := logging.PagesLogger(c.loggerProvider)
	c.saver = pagescmd.NewSavePageHandler(c.pageService, pagesLogger)
	c.updater = pagescmd.NewUpdatePageHandler(c.pageService, pagesLogger)
	c.deleter = pagescmd.NewDeletePageHandler(c.pageService, pagesLogger)

	httpLogger := logging.HTTPLogger(c.loggerProvider)
	c.publicAPI = internalhttp.NewPublicAPI(c.pageService, c.publicEngine, c.urlBuilder,
		internalhttp.WithPublicLogger(httpLogger),
	)
	c.adminAPI = internalhttp.NewAdminAPI(
		c.pageService,
		c.adminEngine,
		c.urlBuilder,
		c.saver,
		c.updater,
		c.deleter,
		internalhttp.WithAdminBasePath(c.cfg.Admin.BasePath),
		internalhttp.WithAdminLogger(httpLogger),
	)
}

// PageService returns the wired page service.
func (c *Container) PageService() pages.Service {
	return c.pageService
}

// URLBuilder returns the wired link builder.
func (c *Container) URLBuilder() *urls.Builder {
	return c.urlBuilder
}

// PublicEngine returns the wired public render engine.
func (c *Container) PublicEngine() *internalrender.PublicEngine {
	return c.publicEngine
}

// AdminEngine returns the wired admin render engine.
func (c *Container) AdminEngine() *internalrender.AdminEngine {
	return c.adminEngine
}

// SaveHandler returns the wired save command handler.
func (c *Container) SaveHandler() *pagescmd.SavePageHandler {
	return c.saver
}

// UpdateHandler returns the wired update command handler.
func (c *Container) UpdateHandler() *pagescmd.UpdatePageHandler {
	return c.updater
}

// DeleteHandler returns the wired delete command handler.
func (c *Container) DeleteHandler() *pagescmd.DeletePageHandler {
	return c.deleter
}

// Importer builds a markdown importer rooted at the configured content dir.
func (c *Container) Importer() *markdown.Importer {
	return markdown.NewImporter(c.pageService, c.cfg.Markdown.ContentDir,
		markdown.WithPattern(c.cfg.Markdown.Pattern),
		markdown.WithRecursive(c.cfg.Markdown.Recursive),
		markdown.WithImporterLogger(logging.MarkdownLogger(c.loggerProvider)),
	)
}

// RegisterRoutes attaches the public and admin endpoints to the mux. Admin
// routes register first so they win pattern precedence over the public
// catch-all page route.
func (c *Container) RegisterRoutes(mux *http.ServeMux) error {
	if err := c.adminAPI.Register(mux); err != nil {
		return err
	}
	return c.publicAPI.Register(mux)
}
