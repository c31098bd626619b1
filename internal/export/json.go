package export

import (
	"time"

	"github.com/dusk-indust/royalties/internal/catalog"
)

// RegistryExport is the top-level JSON export structure.
type RegistryExport struct {
	ExportedAt string           `json:"exportedAt"`
	Contracts  []ContractExport `json:"contracts"`
}

// ContractExport describes one registered contract.
type ContractExport struct {
	ID        string `json:"id"`
	Seq       int    `json:"seq"`
	Author    string `json:"author"`
	Book      string `json:"book"`
	Date      string `json:"date"`
	Royalties int    `json:"royalties"`
}

// Snapshot builds a RegistryExport from reg in registration order.
func Snapshot(reg *catalog.Registry) *RegistryExport {
	return snapshotAt(reg, time.Now())
}

func snapshotAt(reg *catalog.Registry, now time.Time) *RegistryExport {
	export := &RegistryExport{
		ExportedAt: now.UTC().Format(time.RFC3339),
		Contracts:  []ContractExport{},
	}
	for _, c := range reg.Contracts() {
		export.Contracts = append(export.Contracts, ContractExport{
			ID:        c.ID().String(),
			Seq:       c.Seq(),
			Author:    c.Author().Name(),
			Book:      c.Book().Title(),
			Date:      c.Date(),
			Royalties: c.Royalties(),
		})
	}
	return export
}
