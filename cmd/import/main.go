package main

import (
	"context"
	"database/sql"
	"flag"
	"fmt"
	"log"

	_ "github.com/mattn/go-sqlite3"
	"github.com/uptrace/bun"
	"github.com/uptrace/bun/dialect/sqlitedialect"

	pagetree "github.com/goliatone/go-pagetree"
)

func main() {
	dsn := flag.String("dsn", "file:pagetree.db?cache=shared&_fk=1", "sqlite dsn")
	dir := flag.String("dir", "content", "markdown content directory")
	pattern := flag.String("pattern", "*.md", "filename glob")
	flag.Parse()

	if err := run(*dsn, *dir, *pattern); err != nil {
		log.Fatalf("pagetree import: %v", err)
	}
}

func run(dsn, dir, pattern string) error {
	sqldb, err := sql.Open("sqlite3", dsn)
	if err != nil {
		return fmt.Errorf("open database: %w", err)
	}
	defer sqldb.Close()

	db := bun.NewDB(sqldb, sqlitedialect.New())

	cfg := pagetree.DefaultConfig()
	cfg.Features.Markdown = true
	cfg.Markdown.Enabled = true
	cfg.Markdown.ContentDir = dir
	cfg.Markdown.Pattern = pattern

	module, err := pagetree.New(cfg, pagetree.WithDB(db))
	if err != nil {
		return err
	}

	stats, err := module.Importer().Import(context.Background())
	if err != nil {
		return err
	}

	log.Printf("imported %d files: %d created, %d updated", stats.Files, stats.Created, stats.Updated)
	return nil
}
