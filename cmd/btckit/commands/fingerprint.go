package commands

import (
	"fmt"

	"github.com/spf13/cobra"
)

func fingerprintCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "fingerprint",
		Short: "Print the public key fingerprint",
		RunE: func(cmd *cobra.Command, args []string) error {
			key, _, err := loadKey()
			if err != nil {
				return err
			}
			fmt.Printf("Fingerprint: %s\n", key.PublicKey().Fingerprint())
			return nil
		},
	}
}
