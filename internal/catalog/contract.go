package catalog

import (
	"fmt"

	"github.com/google/uuid"
)

// Contract joins one Author to one Book. Its fields are fixed at construction.
type Contract struct {
	id        uuid.UUID
	seq       int
	author    *Author
	book      *Book
	date      string
	royalties int
}

// ID returns the identifier assigned at registration.
func (c *Contract) ID() uuid.UUID { return c.id }

// Seq returns the 1-based registration position within the registry.
func (c *Contract) Seq() int { return c.seq }

func (c *Contract) Author() *Author { return c.author }

func (c *Contract) Book() *Book { return c.book }

// Date returns the signing date. It is an opaque, lexicographically ordered
// token; no calendar semantics apply.
func (c *Contract) Date() string { return c.date }

// Royalties returns the royalty percentage. It is not bounds-checked.
func (c *Contract) Royalties() int { return c.royalties }

// Equal compares author, book, date and royalties. ID and Seq are ignored.
func (c *Contract) Equal(other *Contract) bool {
	if c == nil || other == nil {
		return c == other
	}
	return c.author.Equal(other.author) &&
		c.book.Equal(other.book) &&
		c.date == other.date &&
		c.royalties == other.royalties
}

func (c *Contract) String() string {
	return fmt.Sprintf("Contract with %s for %s on %s with %d%% royalties",
		c.author.name, c.book.title, c.date, c.royalties)
}

func cloneContracts(in []*Contract) []*Contract {
	out := make([]*Contract, len(in))
	copy(out, in)
	return out
}
