package export

import (
	"context"
	"fmt"
	"strings"

	"github.com/dusk-indust/royalties/internal/graph"
)

// GenerateMermaid produces a Mermaid graph LR diagram from a graph store.
// Authors and books become nodes; each contract becomes a labelled arrow.
func GenerateMermaid(ctx context.Context, store graph.Store) (string, error) {
	contracts, err := store.GetAllContracts(ctx)
	if err != nil {
		return "", fmt.Errorf("get contracts: %w", err)
	}

	// Mermaid IDs must be alphanumeric, so names map to A0.., titles to B0...
	authorIDs := make(map[string]string)
	bookIDs := make(map[string]string)
	var sb strings.Builder
	sb.WriteString("graph LR\n")

	for _, c := range contracts {
		if _, ok := authorIDs[c.Author]; !ok {
			id := fmt.Sprintf("A%d", len(authorIDs))
			authorIDs[c.Author] = id
			sb.WriteString(fmt.Sprintf("  %s([\"%s\"])\n", id, escapeLabel(c.Author)))
		}
		if _, ok := bookIDs[c.Book]; !ok {
			id := fmt.Sprintf("B%d", len(bookIDs))
			bookIDs[c.Book] = id
			sb.WriteString(fmt.Sprintf("  %s[\"%s\"]\n", id, escapeLabel(c.Book)))
		}
	}

	for _, c := range contracts {
		sb.WriteString(fmt.Sprintf("  %s -->|\"%s, %d%%\"| %s\n",
			authorIDs[c.Author], escapeLabel(c.Date), c.Royalties, bookIDs[c.Book]))
	}

	return sb.String(), nil
}

// escapeLabel replaces double quotes, which terminate Mermaid labels.
func escapeLabel(s string) string {
	return strings.ReplaceAll(s, `"`, "#quot;")
}
