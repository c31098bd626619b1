package catalog

// Book appears in contracts signed by authors.
type Book struct {
	title     string
	registry  *Registry
	contracts []*Contract
}

// Title returns the book's title.
func (b *Book) Title() string { return b.title }

// Contracts returns the book's contracts in signing order.
func (b *Book) Contracts() []*Contract {
	defer b.registry.rlock()()
	return cloneContracts(b.contracts)
}

// Authors returns the author of each contract in signing order, repeats
// included.
func (b *Book) Authors() []*Author {
	defer b.registry.rlock()()
	authors := make([]*Author, 0, len(b.contracts))
	for _, c := range b.contracts {
		authors = append(authors, c.author)
	}
	return authors
}

// Equal reports whether b and other have the same title.
func (b *Book) Equal(other *Book) bool {
	if b == nil || other == nil {
		return b == other
	}
	return b.title == other.title
}
