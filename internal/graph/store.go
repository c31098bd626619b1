package graph

import (
	"context"
	"errors"
	"io"
)

// Store is the interface for the contract graph backend.
// Implementations: KuzuStore (KuzuDB), MemStore (maps, also used in tests).
// Authors and books are keyed by name and title, so equal authors share a node.
type Store interface {
	io.Closer

	// Schema setup, called once before any data is inserted.
	InitSchema(ctx context.Context) error

	// Write operations. AddAuthor and AddBook are idempotent.
	AddAuthor(ctx context.Context, node AuthorNode) error
	AddBook(ctx context.Context, node BookNode) error
	AddContract(ctx context.Context, edge ContractEdge) error

	// Read operations. Contract-derived results are ordered by Seq.
	ContractsByDate(ctx context.Context, date string) ([]ContractEdge, error)
	BooksByAuthor(ctx context.Context, name string) ([]string, error)
	AuthorsByBook(ctx context.Context, title string) ([]string, error)
	TotalRoyalties(ctx context.Context, name string) (int, error)
	GetAllContracts(ctx context.Context) ([]ContractEdge, error)

	// Stats.
	Stats(ctx context.Context) (*GraphStats, error)
}

var (
	// ErrUnknownNode is returned when a contract references an author or
	// book that has not been added.
	ErrUnknownNode = errors.New("graph: unknown node")

	// ErrDuplicateContract is returned when a contract ID is added twice.
	ErrDuplicateContract = errors.New("graph: duplicate contract")
)
