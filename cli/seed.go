package cli

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/yeremiapane/order-api/database"
)

func NewSeedCommand(opts *RootOptions) *cobra.Command {
	var file string

	cmd := &cobra.Command{
		Use:   "seed",
		Short: "Load customers, items and orders from a JSON or YAML order file",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			orders, err := database.LoadSeedFile(file)
			if err != nil {
				return err
			}

			db, err := openAndMigrate(opts.Config())
			if err != nil {
				return err
			}
			defer closeDB(db)

			summary, err := database.Seed(cmd.Context(), db, orders)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "seeded %d customers, %d items, %d orders, %d order_list rows\n",
				summary.Customers, summary.Items, summary.Orders, summary.Links)
			return nil
		},
	}

	cmd.Flags().StringVarP(&file, "file", "f", "example_orders.json", "seed file (.json, .yaml, .yml)")
	return cmd
}
