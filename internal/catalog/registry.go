package catalog

import (
	"sort"
	"sync"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// Registry records every contract constructed through it and is the factory
// for the authors and books those contracts join. A Registry is safe for
// concurrent use.
type Registry struct {
	mu        sync.RWMutex
	contracts []*Contract
	nextSeq   int
	newID     func() uuid.UUID
	logger    *zap.Logger
}

// Option configures a Registry.
type Option func(*Registry)

// WithLogger sets the logger used for registration events.
func WithLogger(l *zap.Logger) Option {
	return func(r *Registry) {
		if l != nil {
			r.logger = l
		}
	}
}

// WithIDGenerator overrides the contract ID source. Defaults to uuid.New.
func WithIDGenerator(fn func() uuid.UUID) Option {
	return func(r *Registry) {
		if fn != nil {
			r.newID = fn
		}
	}
}

// NewRegistry returns an empty registry.
func NewRegistry(opts ...Option) *Registry {
	r := &Registry{
		newID:  uuid.New,
		logger: zap.NewNop(),
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// NewAuthor returns an author bound to r.
func (r *Registry) NewAuthor(name string) *Author {
	return &Author{name: name, registry: r}
}

// NewBook returns a book bound to r.
func (r *Registry) NewBook(title string) *Book {
	return &Book{title: title, registry: r}
}

// NewContract validates its arguments, then links the new contract into the
// author, the book and the registry, in that order. Either all three links
// are made or none are.
func (r *Registry) NewContract(author *Author, book *Book, date string, royalties int) (*Contract, error) {
	if err := r.validate(author, book); err != nil {
		r.logger.Warn("contract rejected",
			zap.String("field", err.Field),
			zap.String("reason", err.Reason))
		return nil, err
	}

	r.mu.Lock()
	r.nextSeq++
	c := &Contract{
		id:        r.newID(),
		seq:       r.nextSeq,
		author:    author,
		book:      book,
		date:      date,
		royalties: royalties,
	}
	author.contracts = append(author.contracts, c)
	book.contracts = append(book.contracts, c)
	r.contracts = append(r.contracts, c)
	r.mu.Unlock()

	r.logger.Debug("contract registered",
		zap.Stringer("id", c.id),
		zap.Int("seq", c.seq),
		zap.String("author", author.name),
		zap.String("book", book.title),
		zap.String("date", date),
		zap.Int("royalties", royalties))
	return c, nil
}

// validate stands in for runtime type checks: an author or book that is nil
// or belongs to another registry is not a valid participant here.
func (r *Registry) validate(author *Author, book *Book) *ValidationError {
	switch {
	case author == nil:
		return &ValidationError{Field: "author", Reason: "is nil"}
	case author.registry != r:
		return &ValidationError{Field: "author", Reason: "is not registered with this registry"}
	case book == nil:
		return &ValidationError{Field: "book", Reason: "is nil"}
	case book.registry != r:
		return &ValidationError{Field: "book", Reason: "is not registered with this registry"}
	}
	return nil
}

// ContractsByDate returns the contracts signed on date, in registration
// order. It never returns nil.
func (r *Registry) ContractsByDate(date string) []*Contract {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]*Contract, 0)
	for _, c := range r.contracts {
		if c.date == date {
			out = append(out, c)
		}
	}
	sortByDate(out)
	return out
}

// SortedByDate returns every contract ordered by date. Contracts that share
// a date keep their registration order.
func (r *Registry) SortedByDate() []*Contract {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := cloneContracts(r.contracts)
	sortByDate(out)
	return out
}

// Contracts returns all contracts in registration order.
func (r *Registry) Contracts() []*Contract {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return cloneContracts(r.contracts)
}

// Len returns the number of registered contracts.
func (r *Registry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.contracts)
}

// Reset forgets every registered contract. Authors and books keep the
// contracts they already hold.
func (r *Registry) Reset() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.contracts = nil
	r.nextSeq = 0
}

// rlock read-locks r and returns the matching unlock. A nil registry (a
// zero-value Author or Book) has nothing to guard.
func (r *Registry) rlock() func() {
	if r == nil {
		return func() {}
	}
	r.mu.RLock()
	return r.mu.RUnlock
}

func sortByDate(cs []*Contract) {
	sort.SliceStable(cs, func(i, j int) bool {
		return cs[i].date < cs[j].date
	})
}
