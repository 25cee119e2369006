package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/galactic-greens/storefront/internal/cli"
	"github.com/galactic-greens/storefront/internal/config"
	"github.com/galactic-greens/storefront/internal/models"
	"github.com/galactic-greens/storefront/internal/notify"
	"github.com/galactic-greens/storefront/internal/order"
	"github.com/galactic-greens/storefront/internal/repository"
	"github.com/galactic-greens/storefront/internal/storefront"
	"github.com/galactic-greens/storefront/pkg/logger"
	"github.com/spf13/cobra"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	cfg, err := config.LoadClient()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load configuration: %v\n", err)
		os.Exit(1)
	}

	var (
		endpoint string
		timeout  time.Duration
		logLevel string
	)

	root := &cobra.Command{
		Use:          "storefront",
		Short:        "Browse the catalog, fill a cart and send an order",
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()

			// logs go to stderr so they do not interleave with the prompt
			log := logger.NewWithWriter(os.Stderr, logLevel)

			catalog, err := loadCatalog(ctx)
			if err != nil {
				return err
			}

			submitter := order.NewSubmitter(
				notify.NewClient(endpoint, timeout),
				order.WithLogger(log),
			)
			session := storefront.NewSession(catalog, submitter)

			log.Debug("storefront ready", "endpoint", endpoint, "timeout", timeout, "products", len(catalog))
			return cli.NewShell(session, cmd.InOrStdin(), cmd.OutOrStdout()).Run(ctx)
		},
	}

	root.PersistentFlags().StringVar(&endpoint, "endpoint", cfg.Endpoint, "order notification endpoint (ORDER_ENDPOINT)")
	root.PersistentFlags().DurationVar(&timeout, "timeout", cfg.Timeout, "notification request timeout (NOTIFY_TIMEOUT)")
	root.PersistentFlags().StringVar(&logLevel, "log-level", cfg.LogLevel, "log level: debug, info, warn, error")

	root.AddCommand(&cobra.Command{
		Use:   "catalog",
		Short: "Print the product catalog",
		RunE: func(cmd *cobra.Command, args []string) error {
			catalog, err := loadCatalog(cmd.Context())
			if err != nil {
				return err
			}
			for _, p := range catalog {
				fmt.Fprintf(cmd.OutOrStdout(), "%d\t%s\t%s\n", p.ID, p.Name, models.PriceLabel(p))
			}
			return nil
		},
	})

	return root
}

func loadCatalog(ctx context.Context) ([]models.Product, error) {
	products, err := repository.NewInMemoryProductRepository().GetAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load catalog: %w", err)
	}
	return products, nil
}
