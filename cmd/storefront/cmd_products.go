package main

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	catalogdomain "github.com/dwikikusuma/storefront/internal/catalog/domain"
)

func newProductsCmd(e *env) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "products",
		Short: "List the product catalog",
		RunE: func(cmd *cobra.Command, args []string) error {
			e.svc.Load(cmd.Context(), e.token())
			printProducts(cmd, e.svc.Products())
			return nil
		},
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "search <text>",
		Short: "Search products by name or category",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			e.svc.Search(cmd.Context(), args[0])
			products := e.svc.Products()
			if len(products) == 0 {
				cmd.Println("No products found")
				return nil
			}
			printProducts(cmd, products)
			return nil
		},
	})

	return cmd
}

func printProducts(cmd *cobra.Command, products []catalogdomain.Product) {
	w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tNAME\tCATEGORY\tCOST\tRATING")
	for _, p := range products {
		fmt.Fprintf(w, "%s\t%s\t%s\t$%g\t%d/5\n", p.ID, p.Name, p.Category, p.Cost, p.Rating)
	}
	_ = w.Flush()
}
