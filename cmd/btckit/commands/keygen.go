package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"btckit/internal/keystore"
	"btckit/internal/secp256k1"
)

func keygenCmd() *cobra.Command {
	var (
		testnet      bool
		uncompressed bool
		force        bool
	)
	cmd := &cobra.Command{
		Use:   "keygen",
		Short: "Generate a private key and store it encrypted",
		RunE: func(cmd *cobra.Command, args []string) error {
			if passphrase == "" {
				return fmt.Errorf("passphrase required (-p)")
			}
			if store.Exists() && !force {
				return fmt.Errorf("a key already exists in %s (use --force to replace it)", home)
			}

			key, err := secp256k1.GenerateKey()
			if err != nil {
				return err
			}
			compressed := !uncompressed
			rec := keystore.Record{
				WIF:        key.WIF(compressed, testnet),
				Compressed: compressed,
				Testnet:    testnet,
			}
			if err := store.Save(passphrase, rec); err != nil {
				return err
			}

			pub := key.PublicKey()
			fmt.Printf("Key created.\nAddress:     %s\nFingerprint: %s\n",
				pub.Address(compressed, testnet), pub.Fingerprint())
			return nil
		},
	}
	cmd.Flags().BoolVar(&testnet, "testnet", false, "generate a testnet key")
	cmd.Flags().BoolVar(&uncompressed, "uncompressed", false, "serialize the public key uncompressed")
	cmd.Flags().BoolVar(&force, "force", false, "replace an existing key")
	return cmd
}
