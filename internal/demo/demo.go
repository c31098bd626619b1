// Package demo builds the reference roster used by the CLI and tests: two
// authors, four books and four contracts, two of them signed on 01/01/2001.
package demo

import (
	"fmt"

	"github.com/dusk-indust/royalties/internal/catalog"
)

// Roster holds the handles created by Seed.
type Roster struct {
	Authors   []*catalog.Author
	Books     []*catalog.Book
	Contracts []*catalog.Contract
}

// SharedDate is the signing date shared by the second and fourth contracts.
const SharedDate = "01/01/2001"

type term struct {
	author    int
	book      int
	date      string
	royalties int
}

var terms = []term{
	{0, 0, "02/01/2001", 10},
	{0, 1, SharedDate, 20},
	{0, 2, "03/01/2001", 30},
	{1, 3, SharedDate, 40},
}

// Seed registers the reference roster with reg.
func Seed(reg *catalog.Registry) (*Roster, error) {
	r := &Roster{}
	for i := 1; i <= 2; i++ {
		r.Authors = append(r.Authors, reg.NewAuthor(fmt.Sprintf("Name %d", i)))
	}
	for i := 1; i <= 4; i++ {
		r.Books = append(r.Books, reg.NewBook(fmt.Sprintf("Title %d", i)))
	}
	for _, t := range terms {
		c, err := r.Authors[t.author].SignContract(r.Books[t.book], t.date, t.royalties)
		if err != nil {
			return nil, fmt.Errorf("seed contract %d: %w", len(r.Contracts)+1, err)
		}
		r.Contracts = append(r.Contracts, c)
	}
	return r, nil
}
