package main

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"go.uber.org/zap"

	"github.com/dusk-indust/royalties/internal/catalog"
	"github.com/dusk-indust/royalties/internal/export"
	"github.com/dusk-indust/royalties/internal/graph"
	"github.com/dusk-indust/royalties/internal/status"
)

func (a *app) runDemo() error {
	a.printContracts(a.registry.SortedByDate())
	return nil
}

func (a *app) runByDate(date string) error {
	contracts := a.registry.ContractsByDate(date)
	if len(contracts) == 0 {
		fmt.Fprintf(a.out, "No contracts signed on %s.\n", date)
		return nil
	}
	a.printContracts(contracts)
	return nil
}

func (a *app) printContracts(contracts []*catalog.Contract) {
	for _, c := range contracts {
		fmt.Fprintln(a.out, c.String())
	}
}

func (a *app) runStatement() error {
	for _, s := range status.Statement(a.registry) {
		fmt.Fprintf(a.out, "%-12s contracts=%d royalties=%d%%  [%s]\n",
			s.Name, s.Contracts, s.TotalRoyalties, strings.Join(s.Books, ", "))
	}
	return nil
}

func (a *app) runExport() error {
	out, err := json.MarshalIndent(export.Snapshot(a.registry), "", "  ")
	if err != nil {
		return fmt.Errorf("marshal JSON: %w", err)
	}
	_, err = a.out.Write(append(out, '\n'))
	return err
}

func (a *app) runDiagram() error {
	store, err := openStore(a.store)
	if err != nil {
		return fmt.Errorf("open graph: %w", err)
	}
	defer store.Close()

	ctx := context.Background()
	if err := graph.IndexRegistry(ctx, store, a.registry); err != nil {
		return fmt.Errorf("index registry: %w", err)
	}
	if stats, err := store.Stats(ctx); err == nil {
		a.logger.Debug("graph indexed",
			zap.String("store", a.store),
			zap.Int("authors", stats.AuthorCount),
			zap.Int("books", stats.BookCount),
			zap.Int("contracts", stats.ContractCount))
	}

	mermaid, err := export.GenerateMermaid(ctx, store)
	if err != nil {
		return err
	}
	fmt.Fprint(a.out, mermaid)
	return nil
}
