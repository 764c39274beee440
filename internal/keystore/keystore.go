package keystore

import (
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"sync"
	"time"

	"btckit/internal/util/memzero"
)

const keyFilename = "key.json.enc"

// Returned by Load when no key has been stored yet.
var ErrNoKey = errors.New("keystore: no key stored (run keygen first)")

// Record is the decrypted content of the key file.
type Record struct {
	WIF        string `json:"wif"`
	Compressed bool   `json:"compressed"`
	Testnet    bool   `json:"testnet"`
	CreatedAt  int64  `json:"created_at"`
}

// FileStore persists a single encrypted key record under a directory.
type FileStore struct {
	dir string
	mu  sync.Mutex
}

// NewFileStore returns a FileStore rooted at dir.
func NewFileStore(dir string) *FileStore {
	return &FileStore{dir: dir}
}

// Exists reports whether a key file is present.
func (s *FileStore) Exists() bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	_, err := os.Stat(filepath.Join(s.dir, keyFilename))
	return err == nil
}

// Save encrypts and writes the record, overwriting any previous key.
func (s *FileStore) Save(passphrase string, rec Record) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if rec.CreatedAt == 0 {
		rec.CreatedAt = time.Now().Unix()
	}
	raw, err := json.Marshal(rec)
	if err != nil {
		return err
	}
	defer memzero.Zero(raw)

	N, r, p := scryptParamsDefault()
	ct, err := encrypt(passphrase, raw, N, r, p)
	if err != nil {
		return err
	}
	return writeFileAtomic(filepath.Join(s.dir, keyFilename), ct, 0o600)
}

// Load reads and decrypts the record.
func (s *FileStore) Load(passphrase string) (Record, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	b, err := os.ReadFile(filepath.Join(s.dir, keyFilename))
	if errors.Is(err, os.ErrNotExist) {
		return Record{}, ErrNoKey
	}
	if err != nil {
		return Record{}, err
	}
	pt, err := decrypt(passphrase, b)
	if err != nil {
		return Record{}, err
	}
	defer memzero.Zero(pt)

	var rec Record
	if err := json.Unmarshal(pt, &rec); err != nil {
		return Record{}, err
	}
	return rec, nil
}

// writeFileAtomic writes via a temp file then rename.
func writeFileAtomic(path string, data []byte, mode os.FileMode) error {
	tmp := path + ".tmp"
	if err := os.WriteFile(tmp, data, mode); err != nil {
		return err
	}
	return os.Rename(tmp, path)
}
