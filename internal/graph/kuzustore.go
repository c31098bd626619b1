//go:build cgo

package graph

import (
	"context"
	"fmt"

	kuzu "github.com/kuzudb/go-kuzu"
)

// KuzuStore implements the Store interface using KuzuDB as the graph backend.
// It requires CGO because the go-kuzu driver wraps KuzuDB's C library.
type KuzuStore struct {
	db   *kuzu.Database
	conn *kuzu.Connection
}

// Compile-time check that KuzuStore satisfies Store.
var _ Store = (*KuzuStore)(nil)

// NewKuzuStore creates a KuzuStore backed by an in-memory KuzuDB instance.
func NewKuzuStore() (*KuzuStore, error) {
	cfg := kuzu.DefaultSystemConfig()
	db, err := kuzu.OpenDatabase(":memory:", cfg)
	if err != nil {
		return nil, fmt.Errorf("kuzu: open database: %w", err)
	}
	conn, err := kuzu.OpenConnection(db)
	if err != nil {
		db.Close()
		return nil, fmt.Errorf("kuzu: open connection: %w", err)
	}
	return &KuzuStore{db: db, conn: conn}, nil
}

// Close releases the KuzuDB connection and database.
func (s *KuzuStore) Close() error {
	if s.conn != nil {
		s.conn.Close()
	}
	if s.db != nil {
		s.db.Close()
	}
	return nil
}

// ---------- Schema setup ----------

// ddlStatements defines the Cypher DDL executed by InitSchema.
// Order matters: node tables must precede relationship tables.
var ddlStatements = []string{
	`CREATE NODE TABLE IF NOT EXISTS Author(
		name STRING,
		PRIMARY KEY(name)
	)`,
	`CREATE NODE TABLE IF NOT EXISTS Book(
		title STRING,
		PRIMARY KEY(title)
	)`,
	`CREATE REL TABLE IF NOT EXISTS SIGNED(
		FROM Author TO Book,
		contract_id STRING,
		seq INT64,
		signed_on STRING,
		royalties INT64
	)`,
}

// InitSchema creates all node and relationship tables if they do not exist.
func (s *KuzuStore) InitSchema(_ context.Context) error {
	for _, stmt := range ddlStatements {
		res, err := s.conn.Query(stmt)
		if err != nil {
			return fmt.Errorf("kuzu: init schema: %w", err)
		}
		res.Close()
	}
	return nil
}

// ---------- Write operations ----------

// AddAuthor merges an Author node.
func (s *KuzuStore) AddAuthor(_ context.Context, node AuthorNode) error {
	return s.exec(
		"MERGE (a:Author {name: $name})",
		map[string]any{"name": node.Name},
	)
}

// AddBook merges a Book node.
func (s *KuzuStore) AddBook(_ context.Context, node BookNode) error {
	return s.exec(
		"MERGE (b:Book {title: $title})",
		map[string]any{"title": node.Title},
	)
}

// AddContract inserts a SIGNED edge between an existing author and book.
func (s *KuzuStore) AddContract(_ context.Context, edge ContractEdge) error {
	ok, err := s.exists("MATCH (a:Author {name: $key}) RETURN count(a)", edge.Author)
	if err != nil {
		return err
	}
	if !ok {
		return fmt.Errorf("%w: author %q", ErrUnknownNode, edge.Author)
	}
	ok, err = s.exists("MATCH (b:Book {title: $key}) RETURN count(b)", edge.Book)
	if err != nil {
		return err
	}
	if !ok {
		return fmt.Errorf("%w: book %q", ErrUnknownNode, edge.Book)
	}
	ok, err = s.exists("MATCH ()-[c:SIGNED]->() WHERE c.contract_id = $key RETURN count(c)", edge.ID)
	if err != nil {
		return err
	}
	if ok {
		return fmt.Errorf("%w: %s", ErrDuplicateContract, edge.ID)
	}

	return s.exec(
		`MATCH (a:Author {name: $author}), (b:Book {title: $book})
		 CREATE (a)-[:SIGNED {
			contract_id: $id,
			seq: $seq,
			signed_on: $date,
			royalties: $royalties
		 }]->(b)`,
		map[string]any{
			"author":    edge.Author,
			"book":      edge.Book,
			"id":        edge.ID,
			"seq":       int64(edge.Seq),
			"date":      edge.Date,
			"royalties": int64(edge.Royalties),
		},
	)
}

// ---------- Read operations ----------

// contractColumns is the RETURN clause shared by contract queries.
// Column order matches rowToContract.
const contractColumns = `RETURN c.contract_id, c.seq, a.name, b.title, c.signed_on, c.royalties
	ORDER BY c.seq`

// ContractsByDate returns SIGNED edges whose signed_on equals date.
func (s *KuzuStore) ContractsByDate(_ context.Context, date string) ([]ContractEdge, error) {
	rows, err := s.query(
		`MATCH (a:Author)-[c:SIGNED]->(b:Book) WHERE c.signed_on = $date `+contractColumns,
		map[string]any{"date": date},
	)
	if err != nil {
		return nil, err
	}
	out := make([]ContractEdge, 0, len(rows))
	for _, r := range rows {
		out = append(out, rowToContract(r))
	}
	return out, nil
}

// BooksByAuthor returns one title per SIGNED edge leaving the author.
func (s *KuzuStore) BooksByAuthor(_ context.Context, name string) ([]string, error) {
	rows, err := s.query(
		`MATCH (a:Author {name: $name})-[c:SIGNED]->(b:Book)
		 RETURN b.title ORDER BY c.seq`,
		map[string]any{"name": name},
	)
	if err != nil {
		return nil, err
	}
	return firstColumn(rows), nil
}

// AuthorsByBook returns one name per SIGNED edge entering the book.
func (s *KuzuStore) AuthorsByBook(_ context.Context, title string) ([]string, error) {
	rows, err := s.query(
		`MATCH (a:Author)-[c:SIGNED]->(b:Book {title: $title})
		 RETURN a.name ORDER BY c.seq`,
		map[string]any{"title": title},
	)
	if err != nil {
		return nil, err
	}
	return firstColumn(rows), nil
}

// TotalRoyalties sums royalties across the author's SIGNED edges.
func (s *KuzuStore) TotalRoyalties(_ context.Context, name string) (int, error) {
	rows, err := s.query(
		`MATCH (a:Author {name: $name})-[c:SIGNED]->(:Book)
		 RETURN sum(c.royalties)`,
		map[string]any{"name": name},
	)
	if err != nil {
		return 0, err
	}
	if len(rows) == 0 || len(rows[0]) == 0 {
		return 0, nil
	}
	return toInt(rows[0][0]), nil
}

// GetAllContracts returns every SIGNED edge ordered by seq.
func (s *KuzuStore) GetAllContracts(_ context.Context) ([]ContractEdge, error) {
	rows, err := s.query("MATCH (a:Author)-[c:SIGNED]->(b:Book) "+contractColumns, nil)
	if err != nil {
		return nil, err
	}
	out := make([]ContractEdge, 0, len(rows))
	for _, r := range rows {
		out = append(out, rowToContract(r))
	}
	return out, nil
}

// Stats returns counts of all node and edge tables.
func (s *KuzuStore) Stats(_ context.Context) (*GraphStats, error) {
	authors, err := s.count("MATCH (n:Author) RETURN count(n)")
	if err != nil {
		return nil, err
	}
	books, err := s.count("MATCH (n:Book) RETURN count(n)")
	if err != nil {
		return nil, err
	}
	contracts, err := s.count("MATCH ()-[r:SIGNED]->() RETURN count(r)")
	if err != nil {
		return nil, err
	}
	return &GraphStats{
		AuthorCount:   authors,
		BookCount:     books,
		ContractCount: contracts,
	}, nil
}

// ---------- Internal helpers ----------

// exec runs a parameterized Cypher statement that produces no result rows.
func (s *KuzuStore) exec(cypher string, params map[string]any) error {
	stmt, err := s.conn.Prepare(cypher)
	if err != nil {
		return fmt.Errorf("kuzu: prepare: %w", err)
	}
	defer stmt.Close()

	res, err := s.conn.Execute(stmt, params)
	if err != nil {
		return fmt.Errorf("kuzu: execute: %w", err)
	}
	res.Close()
	return nil
}

// query runs a parameterized Cypher statement and collects all result rows.
// Each row is a []any slice with values in column order.
func (s *KuzuStore) query(cypher string, params map[string]any) ([][]any, error) {
	var res *kuzu.QueryResult
	var err error

	if len(params) == 0 {
		res, err = s.conn.Query(cypher)
	} else {
		var stmt *kuzu.PreparedStatement
		stmt, err = s.conn.Prepare(cypher)
		if err != nil {
			return nil, fmt.Errorf("kuzu: prepare: %w", err)
		}
		defer stmt.Close()
		res, err = s.conn.Execute(stmt, params)
	}
	if err != nil {
		return nil, fmt.Errorf("kuzu: query: %w", err)
	}
	defer res.Close()

	var rows [][]any
	for res.HasNext() {
		tuple, err := res.Next()
		if err != nil {
			return nil, fmt.Errorf("kuzu: next: %w", err)
		}
		vals, err := tuple.GetAsSlice()
		if err != nil {
			return nil, fmt.Errorf("kuzu: row values: %w", err)
		}
		rows = append(rows, vals)
	}
	return rows, nil
}

// count runs a single-value count query.
func (s *KuzuStore) count(cypher string) (int, error) {
	rows, err := s.query(cypher, nil)
	if err != nil {
		return 0, err
	}
	if len(rows) == 0 || len(rows[0]) == 0 {
		return 0, nil
	}
	return toInt(rows[0][0]), nil
}

// exists reports whether a count query bound to $key returns a positive count.
func (s *KuzuStore) exists(cypher, key string) (bool, error) {
	rows, err := s.query(cypher, map[string]any{"key": key})
	if err != nil {
		return false, err
	}
	return len(rows) > 0 && len(rows[0]) > 0 && toInt(rows[0][0]) > 0, nil
}

// rowToContract converts a 6-column result row into a ContractEdge.
// Column order: contract_id, seq, author name, book title, signed_on, royalties.
func rowToContract(r []any) ContractEdge {
	return ContractEdge{
		ID:        toString(r[0]),
		Seq:       toInt(r[1]),
		Author:    toString(r[2]),
		Book:      toString(r[3]),
		Date:      toString(r[4]),
		Royalties: toInt(r[5]),
	}
}

func firstColumn(rows [][]any) []string {
	out := make([]string, 0, len(rows))
	for _, r := range rows {
		out = append(out, toString(r[0]))
	}
	return out
}

// ---------- Type coercion helpers ----------
// KuzuDB returns typed Go values (int64, float64, bool, string).

func toString(v any) string {
	if s, ok := v.(string); ok {
		return s
	}
	return fmt.Sprintf("%v", v)
}

func toInt(v any) int {
	switch n := v.(type) {
	case int64:
		return int(n)
	case int:
		return n
	case int32:
		return int(n)
	case float64:
		return int(n)
	default:
		return 0
	}
}
