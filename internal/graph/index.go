package graph

import (
	"context"
	"fmt"

	"github.com/dusk-indust/royalties/internal/catalog"
)

// IndexRegistry writes every contract in reg, with its author and book, into
// store. The schema is initialized first.
func IndexRegistry(ctx context.Context, store Store, reg *catalog.Registry) error {
	if err := store.InitSchema(ctx); err != nil {
		return fmt.Errorf("init schema: %w", err)
	}
	for _, c := range reg.Contracts() {
		if err := ctx.Err(); err != nil {
			return err
		}
		if err := store.AddAuthor(ctx, AuthorNode{Name: c.Author().Name()}); err != nil {
			return fmt.Errorf("add author %q: %w", c.Author().Name(), err)
		}
		if err := store.AddBook(ctx, BookNode{Title: c.Book().Title()}); err != nil {
			return fmt.Errorf("add book %q: %w", c.Book().Title(), err)
		}
		if err := store.AddContract(ctx, EdgeFromContract(c)); err != nil {
			return fmt.Errorf("add contract %s: %w", c.ID(), err)
		}
	}
	return nil
}

// EdgeFromContract converts a catalog contract to its graph edge.
func EdgeFromContract(c *catalog.Contract) ContractEdge {
	return ContractEdge{
		ID:        c.ID().String(),
		Seq:       c.Seq(),
		Author:    c.Author().Name(),
		Book:      c.Book().Title(),
		Date:      c.Date(),
		Royalties: c.Royalties(),
	}
}
