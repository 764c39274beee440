package commands

import (
	"encoding/hex"
	"fmt"

	"github.com/spf13/cobra"

	"btckit/internal/secp256k1"
)

func verifyCmd() *cobra.Command {
	var (
		sigHex string
		pubHex string
	)
	cmd := &cobra.Command{
		Use:   "verify <message>",
		Short: "Verify a DER signature over a message against a SEC public key",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			sec, err := hex.DecodeString(pubHex)
			if err != nil {
				return fmt.Errorf("decode --pub: %w", err)
			}
			pub, err := secp256k1.ParseSEC(sec)
			if err != nil {
				return err
			}
			der, err := hex.DecodeString(sigHex)
			if err != nil {
				return fmt.Errorf("decode --sig: %w", err)
			}
			sig, err := secp256k1.ParseDER(der)
			if err != nil {
				return err
			}

			if !pub.Verify(secp256k1.MessageHash([]byte(args[0])), sig) {
				return fmt.Errorf("signature is NOT valid")
			}
			fmt.Println("Signature is valid.")
			return nil
		},
	}
	cmd.Flags().StringVar(&sigHex, "sig", "", "DER signature, hex encoded")
	cmd.Flags().StringVar(&pubHex, "pub", "", "SEC public key, hex encoded")
	_ = cmd.MarkFlagRequired("sig")
	_ = cmd.MarkFlagRequired("pub")
	return cmd
}
