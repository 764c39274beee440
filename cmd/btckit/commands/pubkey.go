package commands

import (
	"encoding/hex"
	"fmt"

	"github.com/spf13/cobra"
)

func pubkeyCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "pubkey",
		Short: "Print the SEC-encoded public key",
		RunE: func(cmd *cobra.Command, args []string) error {
			key, rec, err := loadKey()
			if err != nil {
				return err
			}
			fmt.Println(hex.EncodeToString(key.PublicKey().SEC(rec.Compressed)))
			return nil
		},
	}
}
