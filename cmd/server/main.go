package main

import (
	"context"
	"database/sql"
	"errors"
	"flag"
	"fmt"
	"io/fs"
	"log"
	"net/http"
	"os"
	"os/signal"
	"sort"
	"syscall"
	"time"

	_ "github.com/mattn/go-sqlite3"
	"github.com/uptrace/bun"
	"github.com/uptrace/bun/dialect/pgdialect"
	"github.com/uptrace/bun/dialect/sqlitedialect"
	"github.com/uptrace/bun/driver/pgdriver"

	pagetree "github.com/goliatone/go-pagetree"
	"github.com/goliatone/go-pagetree/pages"
)

func main() {
	addr := flag.String("addr", ":8080", "listen address")
	dsn := flag.String("dsn", "file:pagetree.db?cache=shared&_fk=1", "database dsn")
	driver := flag.String("driver", "sqlite3", "database driver (sqlite3|postgres)")
	storage := flag.String("storage", "bun", "storage provider (bun|memory)")
	adminPath := flag.String("admin-path", "/admin/pages", "admin base path")
	logLevel := flag.String("log-level", "info", "log level")
	flag.Parse()

	if err := run(*addr, *dsn, *driver, *storage, *adminPath, *logLevel); err != nil {
		log.Fatalf("pagetree server: %v", err)
	}
}

func run(addr, dsn, driver, storage, adminPath, logLevel string) error {
	cfg := pagetree.DefaultConfig()
	cfg.Storage.Provider = storage
	cfg.Storage.DSN = dsn
	cfg.Admin.BasePath = adminPath
	cfg.Features.Logger = true
	cfg.Logging.Provider = "gologger"
	cfg.Logging.Level = logLevel
	cfg.Logging.Format = "console"

	opts := []pagetree.Option{}

	var db *bun.DB
	if storage != "memory" {
		var err error
		db, err = openDB(driver, dsn)
		if err != nil {
			return err
		}
		defer db.Close()

		if err := applyMigrations(context.Background(), db); err != nil {
			return err
		}
		opts = append(opts, pagetree.WithDB(db))
	}

	module, err := pagetree.New(cfg, opts...)
	if err != nil {
		return err
	}

	if err := ensureRootPage(context.Background(), module.Pages()); err != nil {
		return err
	}

	mux := http.NewServeMux()
	if err := module.RegisterRoutes(mux); err != nil {
		return err
	}

	server := &http.Server{
		Addr:              addr,
		Handler:           mux,
		ReadHeaderTimeout: 5 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		log.Printf("listening on %s", addr)
		errCh <- server.ListenAndServe()
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-errCh:
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
	case <-stop:
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := server.Shutdown(ctx); err != nil {
			return fmt.Errorf("shutdown: %w", err)
		}
	}
	return nil
}

func openDB(driver, dsn string) (*bun.DB, error) {
	switch driver {
	case "postgres":
		sqldb := sql.OpenDB(pgdriver.NewConnector(pgdriver.WithDSN(dsn)))
		return bun.NewDB(sqldb, pgdialect.New()), nil
	case "sqlite3":
		sqldb, err := sql.Open("sqlite3", dsn)
		if err != nil {
			return nil, fmt.Errorf("open database: %w", err)
		}
		return bun.NewDB(sqldb, sqlitedialect.New()), nil
	default:
		return nil, fmt.Errorf("unsupported database driver %q", driver)
	}
}

func applyMigrations(ctx context.Context, db *bun.DB) error {
	migrations := pagetree.GetMigrationsFS()

	paths := []string{}
	err := fs.WalkDir(migrations, ".", func(path string, entry fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if !entry.IsDir() {
			paths = append(paths, path)
		}
		return nil
	})
	if err != nil {
		return fmt.Errorf("walk migrations: %w", err)
	}
	sort.Strings(paths)

	for _, path := range paths {
		script, err := fs.ReadFile(migrations, path)
		if err != nil {
			return fmt.Errorf("read migration %s: %w", path, err)
		}
		if _, err := db.ExecContext(ctx, string(script)); err != nil {
			return fmt.Errorf("apply migration %s: %w", path, err)
		}
	}
	return nil
}

// ensureRootPage seeds the distinguished root page on first boot.
func ensureRootPage(ctx context.Context, service pagetree.PageService) error {
	_, err := service.GetByCode(ctx, pages.RootCode)
	if err == nil {
		return nil
	}
	if !pages.IsNotFound(err) {
		return err
	}

	_, err = service.Save(ctx, pages.SavePageInput{
		Code:      pages.RootCode,
		CaptionUA: "Головна",
		CaptionEN: "Home",
	})
	if err != nil && !errors.Is(err, pages.ErrCodeExists) {
		return err
	}
	return nil
}
