package graph

import (
	"context"
	"fmt"
	"sort"
	"sync"
)

// Compile-time assertion: *MemStore satisfies Store.
var _ Store = (*MemStore)(nil)

// MemStore implements Store using Go maps. Thread-safe via sync.RWMutex.
type MemStore struct {
	mu        sync.RWMutex
	authors   map[string]AuthorNode
	books     map[string]BookNode
	contracts []ContractEdge
	ids       map[string]bool
}

// NewMemStore returns an initialized MemStore ready for use.
func NewMemStore() *MemStore {
	return &MemStore{
		authors: make(map[string]AuthorNode),
		books:   make(map[string]BookNode),
		ids:     make(map[string]bool),
	}
}

// InitSchema is a no-op for the in-memory store.
func (m *MemStore) InitSchema(_ context.Context) error {
	return nil
}

// AddAuthor stores an author node keyed by name.
func (m *MemStore) AddAuthor(_ context.Context, node AuthorNode) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.authors[node.Name] = node
	return nil
}

// AddBook stores a book node keyed by title.
func (m *MemStore) AddBook(_ context.Context, node BookNode) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.books[node.Title] = node
	return nil
}

// AddContract appends a contract edge. Both endpoints must already exist.
func (m *MemStore) AddContract(_ context.Context, edge ContractEdge) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.authors[edge.Author]; !ok {
		return fmt.Errorf("%w: author %q", ErrUnknownNode, edge.Author)
	}
	if _, ok := m.books[edge.Book]; !ok {
		return fmt.Errorf("%w: book %q", ErrUnknownNode, edge.Book)
	}
	if m.ids[edge.ID] {
		return fmt.Errorf("%w: %s", ErrDuplicateContract, edge.ID)
	}
	m.ids[edge.ID] = true
	m.contracts = append(m.contracts, edge)
	return nil
}

// ContractsByDate returns the contracts whose date equals date.
func (m *MemStore) ContractsByDate(_ context.Context, date string) ([]ContractEdge, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	out := make([]ContractEdge, 0)
	for _, e := range m.bySeq() {
		if e.Date == date {
			out = append(out, e)
		}
	}
	return out, nil
}

// BooksByAuthor returns one title per contract signed under name.
func (m *MemStore) BooksByAuthor(_ context.Context, name string) ([]string, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	var out []string
	for _, e := range m.bySeq() {
		if e.Author == name {
			out = append(out, e.Book)
		}
	}
	return out, nil
}

// AuthorsByBook returns one author name per contract for title.
func (m *MemStore) AuthorsByBook(_ context.Context, title string) ([]string, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	var out []string
	for _, e := range m.bySeq() {
		if e.Book == title {
			out = append(out, e.Author)
		}
	}
	return out, nil
}

// TotalRoyalties sums royalties over every contract signed under name.
func (m *MemStore) TotalRoyalties(_ context.Context, name string) (int, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	total := 0
	for _, e := range m.contracts {
		if e.Author == name {
			total += e.Royalties
		}
	}
	return total, nil
}

// GetAllContracts returns a copy of all contract edges ordered by Seq.
func (m *MemStore) GetAllContracts(_ context.Context) ([]ContractEdge, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.bySeq(), nil
}

// Stats returns counts of all node and edge types in the graph.
func (m *MemStore) Stats(_ context.Context) (*GraphStats, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return &GraphStats{
		AuthorCount:   len(m.authors),
		BookCount:     len(m.books),
		ContractCount: len(m.contracts),
	}, nil
}

// Close is a no-op for the in-memory store.
func (m *MemStore) Close() error {
	return nil
}

// bySeq returns a copy of the contracts sorted by Seq. Caller holds m.mu.
func (m *MemStore) bySeq() []ContractEdge {
	out := make([]ContractEdge, len(m.contracts))
	copy(out, m.contracts)
	sort.SliceStable(out, func(i, j int) bool { return out[i].Seq < out[j].Seq })
	return out
}
