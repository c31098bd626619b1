// Package catalog models authors, books, and the contracts that join them.
//
// Contracts are the only link between an author and a book. Constructing a
// contract through a Registry is the only way an author's or a book's
// contract list grows, and the registry keeps the registration order that
// date queries preserve.
package catalog
