package app

import (
	"context"
	"os"

	"github.com/go-faster/errors"
	"go.uber.org/zap"

	"github.com/Berliner09/bestbuy2/internal/cli"
)

// Run builds the store from configuration and drives the interactive menu
// until the user quits or the context is cancelled. It is the single wiring
// point for the application.
func Run(ctx context.Context, lg *zap.Logger, cfg *Config) error {
	st, err := BuildStore(cfg.Catalog)
	if err != nil {
		return errors.Wrap(err, "build catalog")
	}
	lg.Info("Store initialized",
		zap.Int("active_products", len(st.ActiveProducts())),
		zap.Int("total_quantity", st.TotalQuantity()),
	)

	menu := cli.NewMenu(st, os.Stdin, os.Stdout, lg)
	if err := menu.Run(ctx); err != nil {
		return errors.Wrap(err, "menu")
	}
	return nil
}
