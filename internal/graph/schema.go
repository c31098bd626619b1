package graph

// AuthorNode is an author vertex, keyed by name.
type AuthorNode struct {
	Name string `json:"name"`
}

// BookNode is a book vertex, keyed by title.
type BookNode struct {
	Title string `json:"title"`
}

// ContractEdge is a SIGNED relationship from an author to a book.
type ContractEdge struct {
	ID        string `json:"id"`
	Seq       int    `json:"seq"`
	Author    string `json:"author"`
	Book      string `json:"book"`
	Date      string `json:"date"`
	Royalties int    `json:"royalties"`
}

// GraphStats summarizes a contract graph.
type GraphStats struct {
	AuthorCount   int `json:"authorCount"`
	BookCount     int `json:"bookCount"`
	ContractCount int `json:"contractCount"`
}
