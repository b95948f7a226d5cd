package cmd

import (
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/seashell-books/storefront/internal/api"
	"github.com/seashell-books/storefront/internal/config"
	"github.com/seashell-books/storefront/internal/logger"
)

type rootFlags struct {
	apiURL  string
	debug   bool
	timeout time.Duration
}

func NewRootCmd() *cobra.Command {
	flags := &rootFlags{}

	cmd := &cobra.Command{
		Use:   "storefront",
		Short: "Terminal storefront for the Seashell online bookstore",
		Long: `Storefront is a client for the Seashell bookstore API.

Browse the catalog with one-shot commands, or start an interactive
shopping session with 'storefront shop' to fill a cart, log in and
place orders.`,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			// Load .env if present (ignore errors)
			_ = godotenv.Load()
		},
	}

	cmd.PersistentFlags().StringVar(&flags.apiURL, "api", "", "base URL of the bookstore API")
	cmd.PersistentFlags().BoolVar(&flags.debug, "debug", false, "enable debug logging")
	cmd.PersistentFlags().DurationVar(&flags.timeout, "timeout", 0, "per-request timeout")

	cmd.AddCommand(newShopCmd(flags))
	cmd.AddCommand(newBooksCmd(flags))
	cmd.AddCommand(newBestsellersCmd(flags))
	cmd.AddCommand(newArrivalsCmd(flags))

	return cmd
}

// newClient builds the API gateway for stateless catalog commands; the
// token lookup always comes up empty since no session exists.
func (f *rootFlags) newClient() (*api.Client, error) {
	cfg, err := config.Read(f.apiURL, f.debug, f.timeout)
	if err != nil {
		return nil, err
	}
	logger.Get(cfg.Debug)
	return api.New(cfg, nil), nil
}

func (f *rootFlags) config() (*config.Config, error) {
	return config.Read(f.apiURL, f.debug, f.timeout)
}
