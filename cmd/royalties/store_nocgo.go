//go:build !cgo

package main

import (
	"fmt"

	"github.com/dusk-indust/royalties/internal/config"
	"github.com/dusk-indust/royalties/internal/graph"
)

func openStore(kind string) (graph.Store, error) {
	switch kind {
	case config.StoreKuzu:
		return nil, fmt.Errorf("store %q requires a cgo build", kind)
	case config.StoreMemory, "":
		return graph.NewMemStore(), nil
	default:
		return nil, fmt.Errorf("unknown store %q", kind)
	}
}
