package commands

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"btckit/internal/keystore"
	"btckit/internal/secp256k1"
)

var (
	home       string
	passphrase string
	store      *keystore.FileStore
)

func Execute() error {
	root := &cobra.Command{
		Use:   "btckit",
		Short: "secp256k1 key, address and signature CLI",
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if home == "" {
				dir, err := os.UserHomeDir()
				if err != nil {
					return err
				}
				home = filepath.Join(dir, ".btckit")
			}
			if err := os.MkdirAll(home, 0o700); err != nil {
				return err
			}
			store = keystore.NewFileStore(home)
			return nil
		},
	}

	root.PersistentFlags().StringVar(&home, "home", "", "config dir (default ~/.btckit)")
	root.PersistentFlags().StringVarP(&passphrase, "passphrase", "p", "", "passphrase protecting the stored key")

	root.AddCommand(
		keygenCmd(), addressCmd(), pubkeyCmd(), fingerprintCmd(),
		exportCmd(), signCmd(), verifyCmd(),
	)
	return root.Execute()
}

// loadKey decrypts the stored record and rebuilds the private key from its
// WIF.
func loadKey() (*secp256k1.PrivateKey, keystore.Record, error) {
	if passphrase == "" {
		return nil, keystore.Record{}, fmt.Errorf("passphrase required (-p)")
	}
	rec, err := store.Load(passphrase)
	if err != nil {
		return nil, keystore.Record{}, err
	}
	key, _, _, err := secp256k1.FromWIF(rec.WIF)
	if err != nil {
		return nil, keystore.Record{}, err
	}
	return key, rec, nil
}
