package cmd

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/seashell-books/storefront/internal/api"
	"github.com/seashell-books/storefront/internal/auth"
	"github.com/seashell-books/storefront/internal/logger"
	"github.com/seashell-books/storefront/internal/storefront"
)

func newShopCmd(flags *rootFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "shop",
		Short: "Start an interactive shopping session",
		Long: `Starts the interactive storefront. The cart and login state live in
memory for the duration of the session and are gone when it ends.`,
		Example: `  # Shop against the default local API
  storefront shop

  # Shop against a deployed store
  storefront shop --api https://books.example.com`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := flags.config()
			if err != nil {
				return err
			}
			log := logger.Get(cfg.Debug)

			// The auth store feeds the gateway its token lookup; the
			// gateway feeds the auth store its login call. Wire the
			// lookup through a late-bound closure to break the cycle.
			var authStore *auth.Store
			client := api.New(cfg, func() string {
				if authStore == nil {
					return ""
				}
				return authStore.Token()
			})
			authStore = auth.New(client)

			log.Debug().Str("api", cfg.BaseURL).Msg("session starting")
			session := storefront.NewSession(client, authStore, os.Stdin, os.Stdout)
			return session.Run(cmd.Context())
		},
	}
}
