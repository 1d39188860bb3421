package cmd

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"text/tabwriter"

	"github.com/frahmantamala/finance-tracker/internal/category"
	"github.com/frahmantamala/finance-tracker/internal/client"
	"github.com/frahmantamala/finance-tracker/internal/store"
)

// openStore connects the record store to the configured API. When load is
// set the store is filled before it is returned.
func openStore(ctx context.Context, load bool) (*store.Store, *client.Client, error) {
	cfg, logger, err := setup()
	if err != nil {
		return nil, nil, err
	}

	api, err := client.NewClient(client.Config{
		BaseURL: cfg.Client.BaseURL,
		Timeout: cfg.Client.Timeout,
	}, logger)
	if err != nil {
		return nil, nil, err
	}

	s := store.New(api, logger, store.WithCategories(category.DefaultCatalog()))
	s.Subscribe(logChanges(logger))

	if load {
		if err := s.Load(ctx); err != nil {
			return nil, nil, fmt.Errorf("failed to load records from %s: %w", cfg.Client.BaseURL, err)
		}
	}
	return s, api, nil
}

func logChanges(logger *slog.Logger) store.Listener {
	return func(_ context.Context, e *store.ChangedEvent) error {
		logger.Debug("store changed",
			"actions", e.Actions,
			"transactions", len(e.State.Transactions),
			"budgets", len(e.State.Budgets),
			"loading", e.State.Loading)
		return nil
	}
}

func newTable(w io.Writer) *tabwriter.Writer {
	return tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
}
