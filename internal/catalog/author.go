package catalog

// Author signs contracts for books. Two authors with the same name compare
// equal through Equal, but each instance owns its own contracts.
type Author struct {
	name      string
	registry  *Registry
	contracts []*Contract
}

// Name returns the author's name.
func (a *Author) Name() string { return a.name }

// Contracts returns the author's contracts in signing order.
func (a *Author) Contracts() []*Contract {
	defer a.registry.rlock()()
	return cloneContracts(a.contracts)
}

// Books returns the book of each contract in signing order. A book signed
// under two contracts appears twice.
func (a *Author) Books() []*Book {
	defer a.registry.rlock()()
	books := make([]*Book, 0, len(a.contracts))
	for _, c := range a.contracts {
		books = append(books, c.book)
	}
	return books
}

// SignContract creates a contract between a and book.
func (a *Author) SignContract(book *Book, date string, royalties int) (*Contract, error) {
	if a == nil || a.registry == nil {
		return nil, &ValidationError{Field: "author", Reason: "is not registered"}
	}
	return a.registry.NewContract(a, book, date, royalties)
}

// TotalRoyalties sums the royalty percentages over all of a's contracts.
func (a *Author) TotalRoyalties() int {
	defer a.registry.rlock()()
	total := 0
	for _, c := range a.contracts {
		total += c.royalties
	}
	return total
}

// Equal reports whether a and other have the same name.
func (a *Author) Equal(other *Author) bool {
	if a == nil || other == nil {
		return a == other
	}
	return a.name == other.name
}
