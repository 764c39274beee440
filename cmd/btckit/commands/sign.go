package commands

import (
	"encoding/hex"
	"fmt"

	"github.com/spf13/cobra"
)

func signCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "sign <message>",
		Short: "Sign hash256 of a message with the stored key",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			key, _, err := loadKey()
			if err != nil {
				return err
			}
			sig, err := key.SignMessage([]byte(args[0]))
			if err != nil {
				return err
			}
			fmt.Println(hex.EncodeToString(sig.DER()))
			return nil
		},
	}
}
