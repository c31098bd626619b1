package graph

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// storeFactory returns a fresh store with an initialized schema.
type storeFactory func(t *testing.T) Store

// seedStore loads the reference scenario into s.
func seedStore(t *testing.T, s Store) {
	t.Helper()
	ctx := context.Background()
	for _, name := range []string{"Name 1", "Name 2"} {
		require.NoError(t, s.AddAuthor(ctx, AuthorNode{Name: name}))
	}
	for _, title := range []string{"Title 1", "Title 2", "Title 3", "Title 4"} {
		require.NoError(t, s.AddBook(ctx, BookNode{Title: title}))
	}
	edges := []ContractEdge{
		{ID: "c1", Seq: 1, Author: "Name 1", Book: "Title 1", Date: "02/01/2001", Royalties: 10},
		{ID: "c2", Seq: 2, Author: "Name 1", Book: "Title 2", Date: "01/01/2001", Royalties: 20},
		{ID: "c3", Seq: 3, Author: "Name 1", Book: "Title 3", Date: "03/01/2001", Royalties: 30},
		{ID: "c4", Seq: 4, Author: "Name 2", Book: "Title 4", Date: "01/01/2001", Royalties: 40},
	}
	for _, e := range edges {
		require.NoError(t, s.AddContract(ctx, e))
	}
}

func contractIDs(edges []ContractEdge) []string {
	ids := make([]string, 0, len(edges))
	for _, e := range edges {
		ids = append(ids, e.ID)
	}
	return ids
}

// runStoreSuite exercises the Store contract against one implementation.
func runStoreSuite(t *testing.T, newStore storeFactory) {
	t.Run("ContractsByDate", func(t *testing.T) {
		s := newStore(t)
		seedStore(t, s)
		ctx := context.Background()

		got, err := s.ContractsByDate(ctx, "01/01/2001")
		require.NoError(t, err)
		require.Len(t, got, 2)
		assert.Equal(t, []string{"c2", "c4"}, contractIDs(got))
		assert.Equal(t, ContractEdge{
			ID: "c4", Seq: 4, Author: "Name 2", Book: "Title 4", Date: "01/01/2001", Royalties: 40,
		}, got[1])

		none, err := s.ContractsByDate(ctx, "09/09/1999")
		require.NoError(t, err)
		assert.Empty(t, none)
	})

	t.Run("BooksAndAuthors", func(t *testing.T) {
		s := newStore(t)
		seedStore(t, s)
		ctx := context.Background()
		require.NoError(t, s.AddContract(ctx, ContractEdge{
			ID: "c5", Seq: 5, Author: "Name 2", Book: "Title 1", Date: "04/01/2001", Royalties: 5,
		}))

		books, err := s.BooksByAuthor(ctx, "Name 1")
		require.NoError(t, err)
		assert.Equal(t, []string{"Title 1", "Title 2", "Title 3"}, books)

		authors, err := s.AuthorsByBook(ctx, "Title 1")
		require.NoError(t, err)
		assert.Equal(t, []string{"Name 1", "Name 2"}, authors)

		books, err = s.BooksByAuthor(ctx, "Nobody")
		require.NoError(t, err)
		assert.Empty(t, books)
	})

	t.Run("TotalRoyalties", func(t *testing.T) {
		s := newStore(t)
		seedStore(t, s)
		ctx := context.Background()

		total, err := s.TotalRoyalties(ctx, "Name 1")
		require.NoError(t, err)
		assert.Equal(t, 60, total)

		total, err = s.TotalRoyalties(ctx, "Nobody")
		require.NoError(t, err)
		assert.Zero(t, total)
	})

	t.Run("AddAuthorIsIdempotent", func(t *testing.T) {
		s := newStore(t)
		ctx := context.Background()
		require.NoError(t, s.AddAuthor(ctx, AuthorNode{Name: "X"}))
		require.NoError(t, s.AddAuthor(ctx, AuthorNode{Name: "X"}))
		require.NoError(t, s.AddBook(ctx, BookNode{Title: "T"}))
		require.NoError(t, s.AddBook(ctx, BookNode{Title: "T"}))

		stats, err := s.Stats(ctx)
		require.NoError(t, err)
		assert.Equal(t, 1, stats.AuthorCount)
		assert.Equal(t, 1, stats.BookCount)
		assert.Zero(t, stats.ContractCount)
	})

	t.Run("AddContractRejects", func(t *testing.T) {
		s := newStore(t)
		seedStore(t, s)
		ctx := context.Background()

		err := s.AddContract(ctx, ContractEdge{ID: "x", Seq: 9, Author: "Ghost", Book: "Title 1"})
		assert.ErrorIs(t, err, ErrUnknownNode)

		err = s.AddContract(ctx, ContractEdge{ID: "y", Seq: 9, Author: "Name 1", Book: "Ghost"})
		assert.ErrorIs(t, err, ErrUnknownNode)

		err = s.AddContract(ctx, ContractEdge{ID: "c1", Seq: 9, Author: "Name 1", Book: "Title 1"})
		assert.ErrorIs(t, err, ErrDuplicateContract)

		stats, err := s.Stats(ctx)
		require.NoError(t, err)
		assert.Equal(t, &GraphStats{AuthorCount: 2, BookCount: 4, ContractCount: 4}, stats)
	})

	t.Run("GetAllContracts", func(t *testing.T) {
		s := newStore(t)
		seedStore(t, s)

		all, err := s.GetAllContracts(context.Background())
		require.NoError(t, err)
		assert.Equal(t, []string{"c1", "c2", "c3", "c4"}, contractIDs(all))
	})
}
