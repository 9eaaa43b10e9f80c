package pages

import (
	"context"
	"sync"

	"github.com/goliatone/go-pagetree/pages"
)

// MemoryPageRepository is an in-memory page store for scaffolding/tests.
type MemoryPageRepository struct {
	mu      sync.RWMutex
	records map[string]*pages.Page
}

// NewMemoryPageRepository constructs the repository.
func NewMemoryPageRepository() *MemoryPageRepository {
	return &MemoryPageRepository{
		records: make(map[string]*pages.Page),
	}
}

// GetByCode retrieves a page by its code.
func (m *MemoryPageRepository) GetByCode(_ context.Context, code string) (*pages.Page, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	record, ok := m.records[code]
	if !ok {
		return nil, &pages.PageNotFoundError{Code: code}
	}
	return clonePage(record), nil
}

// ListChildren returns every page whose parent_code matches, unordered.
func (m *MemoryPageRepository) ListChildren(_ context.Context, parentCode string) ([]*pages.Page, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	out := make([]*pages.Page, 0)
	for _, record := range m.records {
		if record.ParentCode != nil && *record.ParentCode == parentCode {
			out = append(out, clonePage(record))
		}
	}
	return out, nil
}

// List returns every stored page.
func (m *MemoryPageRepository) List(_ context.Context) ([]*pages.Page, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	out := make([]*pages.Page, 0, len(m.records))
	for _, record := range m.records {
		out = append(out, clonePage(record))
	}
	return out, nil
}

// Create inserts the supplied page.
func (m *MemoryPageRepository) Create(_ context.Context, record *pages.Page) (*pages.Page, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, exists := m.records[record.Code]; exists {
		return nil, pages.ErrCodeExists
	}
	m.records[record.Code] = clonePage(record)
	return clonePage(record), nil
}

// Update replaces the stored record carrying the same ID.
func (m *MemoryPageRepository) Update(_ context.Context, record *pages.Page) (*pages.Page, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for code, existing := range m.records {
		if existing.ID == record.ID {
			delete(m.records, code)
			m.records[record.Code] = clonePage(record)
			return clonePage(record), nil
		}
	}
	return nil, &pages.PageNotFoundError{Code: record.Code}
}

// Delete removes the page by code.
func (m *MemoryPageRepository) Delete(_ context.Context, code string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.records[code]; !ok {
		return &pages.PageNotFoundError{Code: code}
	}
	delete(m.records, code)
	return nil
}

func clonePage(record *pages.Page) *pages.Page {
	if record == nil {
		return nil
	}
	copied := *record
	if record.ParentCode != nil {
		parent := *record.ParentCode
		copied.ParentCode = &parent
	}
	if record.AliasOf != nil {
		alias := *record.AliasOf
		copied.AliasOf = &alias
	}
	if record.OrderNum != nil {
		num := *record.OrderNum
		copied.OrderNum = &num
	}
	if record.OrderType != nil {
		orderType := *record.OrderType
		copied.OrderType = &orderType
	}
	if record.ContainerType != nil {
		containerType := *record.ContainerType
		copied.ContainerType = &containerType
	}
	return &copied
}
