package main

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/dwikikusuma/storefront/internal/storefront/app"
)

func newCartCmd(e *env) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "cart",
		Short: "Show the cart with its total",
		RunE: func(cmd *cobra.Command, args []string) error {
			e.svc.Load(cmd.Context(), e.token())
			printCart(cmd, e.svc.Items(), e.svc.CartTotal())
			return nil
		},
	}

	var qty int
	add := &cobra.Command{
		Use:   "add <productId>",
		Short: "Add a product from the catalog to the cart",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			e.svc.Load(ctx, e.token())
			// The catalog "add" path refuses products already in the cart.
			if err := e.svc.AddOrUpdate(ctx, e.token(), args[0], qty, true); err != nil {
				return err
			}
			printCart(cmd, e.svc.Items(), e.svc.CartTotal())
			return nil
		},
	}
	add.Flags().IntVar(&qty, "qty", 1, "quantity to set")

	inc := &cobra.Command{
		Use:   "inc <productId>",
		Short: "Raise an existing cart line's quantity by one",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			e.svc.Load(ctx, e.token())
			if err := e.svc.Increment(ctx, e.token(), args[0]); err != nil {
				return err
			}
			printCart(cmd, e.svc.Items(), e.svc.CartTotal())
			return nil
		},
	}

	dec := &cobra.Command{
		Use:   "dec <productId>",
		Short: "Lower an existing cart line's quantity by one",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			e.svc.Load(ctx, e.token())
			if err := e.svc.Decrement(ctx, e.token(), args[0]); err != nil {
				return err
			}
			printCart(cmd, e.svc.Items(), e.svc.CartTotal())
			return nil
		},
	}

	cmd.AddCommand(add, inc, dec)
	return cmd
}

func printCart(cmd *cobra.Command, items []app.Item, total float64) {
	if len(items) == 0 {
		cmd.Println("Cart is empty. Add more items to the cart to checkout.")
		return
	}

	w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tNAME\tCOST\tQTY")
	for _, it := range items {
		fmt.Fprintf(w, "%s\t%s\t$%g\t%d\n", it.ProductID, it.Name, it.Cost, it.Qty)
	}
	fmt.Fprintf(w, "\tOrder total\t$%g\t\n", total)
	_ = w.Flush()
}
