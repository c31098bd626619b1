package status

import (
	"github.com/dusk-indust/royalties/internal/catalog"
)

// AuthorStatement summarizes one author's contracts.
type AuthorStatement struct {
	Name           string
	Contracts      int
	TotalRoyalties int
	Books          []string // one title per contract, signing order
}

// Statement returns one AuthorStatement per distinct author in reg, in the
// order each author first signed. Authors are distinct by instance, so two
// authors sharing a name get separate rows.
func Statement(reg *catalog.Registry) []AuthorStatement {
	var (
		seen    = make(map[*catalog.Author]bool)
		results []AuthorStatement
	)
	for _, c := range reg.Contracts() {
		a := c.Author()
		if seen[a] {
			continue
		}
		seen[a] = true

		books := a.Books()
		titles := make([]string, 0, len(books))
		for _, b := range books {
			titles = append(titles, b.Title())
		}
		results = append(results, AuthorStatement{
			Name:           a.Name(),
			Contracts:      len(books),
			TotalRoyalties: a.TotalRoyalties(),
			Books:          titles,
		})
	}
	return results
}
