package markdown

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"

	slug "github.com/goliatone/go-slug"

	"github.com/goliatone/go-pagetree/internal/domain"
	"github.com/goliatone/go-pagetree/internal/logging"
	"github.com/goliatone/go-pagetree/pages"
	"github.com/goliatone/go-pagetree/pkg/interfaces"
)

// Importer walks a content directory and loads page markdown files into the
// page store. Each file carries the page envelope in frontmatter and one
// language's body; files sharing a code merge into a single page record.
type Importer struct {
	service   pages.Service
	parser    *GoldmarkParser
	logger    interfaces.Logger
	dir       string
	pattern   string
	recursive bool
}

// ImporterOption mutates the importer configuration.
type ImporterOption func(*Importer)

// WithImporterLogger injects the importer logger.
func WithImporterLogger(logger interfaces.Logger) ImporterOption {
	return func(i *Importer) {
		if logger != nil {
			i.logger = logger
		}
	}
}

// WithPattern overrides the filename glob (defaults to "*.md").
func WithPattern(pattern string) ImporterOption {
	return func(i *Importer) {
		if strings.TrimSpace(pattern) != "" {
			i.pattern = pattern
		}
	}
}

// WithRecursive toggles directory recursion (defaults to true).
func WithRecursive(recursive bool) ImporterOption {
	return func(i *Importer) {
		i.recursive = recursive
	}
}

// NewImporter constructs an importer rooted at dir.
func NewImporter(service pages.Service, dir string, opts ...ImporterOption) *Importer {
	importer := &Importer{
		service:   service,
		parser:    NewGoldmarkParser(),
		logger:    logging.NoOp(),
		dir:       dir,
		pattern:   "*.md",
		recursive: true,
	}
	for _, opt := range opts {
		opt(importer)
	}
	return importer
}

// ImportStats summarizes a completed import run.
type ImportStats struct {
	Files   int
	Created int
	Updated int
}

// Import loads every matching file under the content directory. Pages are
// imported parents-first so hierarchy references resolve regardless of file
// order; existing codes are updated in place.
func (i *Importer) Import(ctx context.Context) (ImportStats, error) {
	stats := ImportStats{}

	paths, err := i.collectPaths()
	if err != nil {
		return stats, err
	}

	drafts := map[string]*pages.SavePageInput{}
	order := []string{}

	for _, path := range paths {
		if err := ctx.Err(); err != nil {
			return stats, err
		}

		meta, body, err := i.loadFile(path)
		if err != nil {
			return stats, fmt.Errorf("import %s: %w", path, err)
		}
		stats.Files++

		code, err := slug.Normalize(meta.Code)
		if err != nil {
			return stats, fmt.Errorf("import %s: normalize code %q: %w", path, meta.Code, err)
		}

		draft, ok := drafts[code]
		if !ok {
			draft = &pages.SavePageInput{Code: code}
			drafts[code] = draft
			order = append(order, code)
		}
		mergeDraft(draft, meta, body)
	}

	// Parents before children so save never sees a dangling parent code.
	sort.SliceStable(order, func(a, b int) bool {
		return depth(drafts, order[a]) < depth(drafts, order[b])
	})

	for _, code := range order {
		created, err := i.saveOrUpdate(ctx, *drafts[code])
		if err != nil {
			return stats, fmt.Errorf("import page %q: %w", code, err)
		}
		if created {
			stats.Created++
		} else {
			stats.Updated++
		}
	}

	i.logger.Info("markdown.import.complete",
		"files", stats.Files,
		"created", stats.Created,
		"updated", stats.Updated,
	)
	return stats, nil
}

func (i *Importer) collectPaths() ([]string, error) {
	root := strings.TrimSpace(i.dir)
	if root == "" {
		return nil, errors.New("markdown: content directory is required")
	}

	var paths []string
	err := fs.WalkDir(os.DirFS(root), ".", func(path string, entry fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if entry.IsDir() {
			if !i.recursive && path != "." {
				return fs.SkipDir
			}
			return nil
		}
		matched, err := filepath.Match(i.pattern, entry.Name())
		if err != nil {
			return err
		}
		if matched {
			paths = append(paths, filepath.Join(root, path))
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("markdown walk %s: %w", root, err)
	}

	sort.Strings(paths)
	return paths, nil
}

func (i *Importer) loadFile(path string) (PageFrontMatter, []byte, error) {
	source, err := os.ReadFile(path)
	if err != nil {
		return PageFrontMatter{}, nil, err
	}

	meta, body, err := ParseFrontMatter(source)
	if err != nil {
		return PageFrontMatter{}, nil, err
	}

	rendered, err := i.parser.Parse(body)
	if err != nil {
		return PageFrontMatter{}, nil, err
	}
	return meta, rendered, nil
}

func mergeDraft(draft *pages.SavePageInput, meta PageFrontMatter, body []byte) {
	content := strings.TrimSpace(string(body))
	if domain.NormalizeLanguage(meta.Lang) == domain.LanguageEN {
		draft.ContentEN = content
	} else {
		draft.ContentUA = content
	}

	mergeString(&draft.CaptionUA, meta.CaptionUA)
	mergeString(&draft.CaptionEN, meta.CaptionEN)
	mergeString(&draft.IntroUA, meta.IntroUA)
	mergeString(&draft.IntroEN, meta.IntroEN)
	mergeString(&draft.ImageURL, meta.ImageURL)
	mergeString(&draft.ParentCode, meta.ParentCode)
	mergeString(&draft.AliasOf, meta.AliasOf)

	if meta.OrderNum != nil {
		draft.OrderNum = meta.OrderNum
	}
	if meta.OrderType != "" {
		orderType := domain.OrderType(meta.OrderType)
		draft.OrderType = &orderType
	}
	if meta.ContainerType != "" {
		containerType := domain.ContainerType(meta.ContainerType)
		draft.ContainerType = &containerType
	}
}

func mergeString(target *string, value string) {
	value = strings.TrimSpace(value)
	if value != "" {
		*target = value
	}
}

func (i *Importer) saveOrUpdate(ctx context.Context, input pages.SavePageInput) (created bool, err error) {
	if _, err := i.service.Save(ctx, input); err == nil {
		return true, nil
	} else if !errors.Is(err, pages.ErrCodeExists) {
		return false, err
	}

	_, err = i.service.Update(ctx, input)
	return false, err
}

// depth counts parent hops within the drafted set; references to pages
// already in the store contribute nothing.
func depth(drafts map[string]*pages.SavePageInput, code string) int {
	count := 0
	for {
		draft, ok := drafts[code]
		if !ok || draft.ParentCode == "" {
			return count
		}
		if _, ok := drafts[draft.ParentCode]; !ok {
			return count
		}
		code = draft.ParentCode
		count++
		if count > len(drafts) {
			return count
		}
	}
}
