package cmd

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"
)

func newBooksCmd(flags *rootFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "books [id]",
		Short: "List all books, or show one by id",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := flags.newClient()
			if err != nil {
				return err
			}
			if len(args) == 1 {
				id, err := strconv.Atoi(args[0])
				if err != nil {
					return fmt.Errorf("not a numeric book id: %q", args[0])
				}
				book, err := client.Book(cmd.Context(), id)
				if err != nil {
					return err
				}
				fmt.Printf("%s — €%s — %d in stock\n", book.Title, book.Price.StringFixed(2), book.StockQuantity)
				if book.Desc != "" {
					fmt.Println(book.Desc)
				}
				return nil
			}
			books, err := client.Books(cmd.Context())
			if err != nil {
				return err
			}
			for _, book := range books {
				fmt.Printf("[%d] %s — €%s\n", book.ID, book.Title, book.Price.StringFixed(2))
			}
			return nil
		},
	}
}

func newBestsellersCmd(flags *rootFlags) *cobra.Command {
	var year, month int
	cmd := &cobra.Command{
		Use:   "bestsellers",
		Short: "Show the monthly bestseller list",
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := flags.newClient()
			if err != nil {
				return err
			}
			sellers, err := client.Bestsellers(cmd.Context(), year, month)
			if err != nil {
				return err
			}
			for i, entry := range sellers {
				fmt.Printf("%2d. %s — %d sold\n", i+1, entry.Book.Title, entry.UnitsSold)
			}
			return nil
		},
	}
	cmd.Flags().IntVar(&year, "year", 0, "calendar year (default: current)")
	cmd.Flags().IntVar(&month, "month", 0, "calendar month 1-12 (default: current)")
	return cmd
}

func newArrivalsCmd(flags *rootFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "arrivals",
		Short: "Show the newest books in the store",
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := flags.newClient()
			if err != nil {
				return err
			}
			books, err := client.NewArrivals(cmd.Context())
			if err != nil {
				return err
			}
			for _, book := range books {
				fmt.Printf("[%d] %s — €%s\n", book.ID, book.Title, book.Price.StringFixed(2))
			}
			return nil
		},
	}
}
