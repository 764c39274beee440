package commands

import (
	"fmt"

	"github.com/spf13/cobra"
)

func exportCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "export",
		Short: "Print the private key in wallet import format",
		RunE: func(cmd *cobra.Command, args []string) error {
			_, rec, err := loadKey()
			if err != nil {
				return err
			}
			fmt.Println(rec.WIF)
			return nil
		},
	}
}
