package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"btckit/internal/keystore"
)

func addressCmd() *cobra.Command {
	var (
		testnet      bool
		uncompressed bool
	)
	cmd := &cobra.Command{
		Use:   "address",
		Short: "Print the P2PKH address of the stored key",
		RunE: func(cmd *cobra.Command, args []string) error {
			key, rec, err := loadKey()
			if err != nil {
				return err
			}
			compressed, net := resolveForm(cmd, rec, uncompressed, testnet)
			fmt.Println(key.PublicKey().Address(compressed, net))
			return nil
		},
	}
	cmd.Flags().BoolVar(&testnet, "testnet", false, "render the testnet address (default: the stored key's network)")
	cmd.Flags().BoolVar(&uncompressed, "uncompressed", false, "serialize the public key uncompressed (default: the stored key's form)")
	return cmd
}

// resolveForm picks the serialization flags for a command: the stored
// record's values unless the caller set the flag explicitly.
func resolveForm(cmd *cobra.Command, rec keystore.Record, uncompressed, testnet bool) (compressed, net bool) {
	compressed = rec.Compressed
	if cmd.Flags().Changed("uncompressed") {
		compressed = !uncompressed
	}
	net = rec.Testnet
	if cmd.Flags().Changed("testnet") {
		net = testnet
	}
	return compressed, net
}
