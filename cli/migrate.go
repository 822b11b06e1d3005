package cli

import (
	"github.com/spf13/cobra"
)

func NewMigrateCommand(opts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "migrate",
		Short: "Create or update the database schema and exit",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			db, err := openAndMigrate(opts.Config())
			if err != nil {
				return err
			}
			closeDB(db)
			return nil
		},
	}
}
