// Package store persists the ledger as a single encrypted file.
//
// The on-disk layout is a plain magic header and format version byte,
// followed by the age ciphertext of the zstd-compressed msgpack
// encoding of the ledger. Writes go through a temp file and rename so
// a crash never leaves a half-written ledger behind.
package store

import (
	"bytes"
	"io"
	"os"
	"path/filepath"

	"filippo.io/age"
	"github.com/klauspost/compress/zstd"
	"github.com/vmihailenco/msgpack/v5"

	apperrors "github.com/odvcencio/kakeibo/pkg/errors"
	"github.com/odvcencio/kakeibo/pkg/ledger"
	"github.com/odvcencio/kakeibo/pkg/logging"
)

var fileMagic = []byte("KAKEBO")

const formatVersion byte = 1

// defaultWorkFactor matches the age tool's scrypt default.
const defaultWorkFactor = 18

// Store reads and writes the encrypted ledger file.
type Store struct {
	path       string
	log        *logging.Logger
	workFactor int
}

// New returns a store for the ledger file at path.
func New(path string, log *logging.Logger) *Store {
	if log == nil {
		log = logging.Discard()
	}
	return &Store{path: path, log: log, workFactor: defaultWorkFactor}
}

// Path returns the ledger file location.
func (s *Store) Path() string {
	return s.path
}

// Exists reports whether a ledger file is present.
func (s *Store) Exists() bool {
	_, err := os.Stat(s.path)
	return err == nil
}

// SetWorkFactor adjusts the scrypt work factor (log2 N) used when
// encrypting.
func (s *Store) SetWorkFactor(logN int) {
	s.workFactor = logN
}

// Load reads and decrypts the ledger. A missing file is a first run
// and yields an empty ledger.
func (s *Store) Load(passphrase string) (*ledger.Ledger, error) {
	f, err := os.Open(s.path)
	if os.IsNotExist(err) {
		return ledger.New(), nil
	}
	if err != nil {
		return nil, apperrors.Wrap(err, apperrors.ErrCodeStoreRead, "open ledger file").
			WithContext("path", s.path)
	}
	defer f.Close()

	header := make([]byte, len(fileMagic)+1)
	if _, err := io.ReadFull(f, header); err != nil {
		return nil, apperrors.Wrap(err, apperrors.ErrCodeStoreCorrupt, "read ledger header").
			WithContext("path", s.path)
	}
	if !bytes.Equal(header[:len(fileMagic)], fileMagic) {
		return nil, apperrors.New(apperrors.ErrCodeStoreCorrupt, "not a kakeibo ledger file").
			WithContext("path", s.path)
	}
	if version := header[len(fileMagic)]; version != formatVersion {
		return nil, apperrors.New(apperrors.ErrCodeStoreCorrupt, "unsupported ledger format version").
			WithContext("version", int(version))
	}

	identity, err := age.NewScryptIdentity(passphrase)
	if err != nil {
		return nil, apperrors.Wrap(err, apperrors.ErrCodeStoreDecrypt, "derive identity from passphrase")
	}
	plain, err := age.Decrypt(f, identity)
	if err != nil {
		return nil, apperrors.Wrap(err, apperrors.ErrCodeStoreDecrypt, "decrypt ledger").
			WithContext("path", s.path)
	}

	zr, err := zstd.NewReader(plain)
	if err != nil {
		return nil, apperrors.Wrap(err, apperrors.ErrCodeStoreCorrupt, "open compressed payload")
	}
	defer zr.Close()

	data, err := io.ReadAll(zr)
	if err != nil {
		return nil, apperrors.Wrap(err, apperrors.ErrCodeStoreCorrupt, "decompress ledger").
			WithContext("path", s.path)
	}

	var l ledger.Ledger
	if err := msgpack.Unmarshal(data, &l); err != nil {
		return nil, apperrors.Wrap(err, apperrors.ErrCodeStoreCorrupt, "decode ledger").
			WithContext("path", s.path)
	}

	s.log.LedgerLoaded(s.path, l.Records())
	return &l, nil
}

// Save encrypts and writes the ledger, replacing the previous file
// atomically.
func (s *Store) Save(l *ledger.Ledger, passphrase string) error {
	if passphrase == "" {
		return apperrors.New(apperrors.ErrCodeInvalidInput, "passphrase must not be empty")
	}

	data, err := msgpack.Marshal(l)
	if err != nil {
		return apperrors.Wrap(err, apperrors.ErrCodeStoreWrite, "encode ledger")
	}

	recipient, err := age.NewScryptRecipient(passphrase)
	if err != nil {
		return apperrors.Wrap(err, apperrors.ErrCodeStoreWrite, "derive recipient from passphrase")
	}
	recipient.SetWorkFactor(s.workFactor)

	if err := os.MkdirAll(filepath.Dir(s.path), 0o755); err != nil {
		return apperrors.Wrap(err, apperrors.ErrCodeStoreWrite, "create data directory").
			WithContext("path", s.path)
	}

	tmpPath := s.path + ".tmp"
	f, err := os.OpenFile(tmpPath, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0o600)
	if err != nil {
		return apperrors.Wrap(err, apperrors.ErrCodeStoreWrite, "create temp ledger file").
			WithContext("path", tmpPath)
	}

	err = writePayload(f, header(), recipient, data)
	if cerr := f.Close(); err == nil {
		err = cerr
	}
	if err != nil {
		_ = os.Remove(tmpPath)
		return apperrors.Wrap(err, apperrors.ErrCodeStoreWrite, "write ledger").
			WithContext("path", s.path)
	}

	if err := os.Rename(tmpPath, s.path); err != nil {
		_ = os.Remove(tmpPath)
		return apperrors.Wrap(err, apperrors.ErrCodeStoreWrite, "replace ledger file").
			WithContext("path", s.path)
	}

	s.log.LedgerSaved(s.path, l.Records())
	return nil
}

func header() []byte {
	return append(append([]byte{}, fileMagic...), formatVersion)
}

func writePayload(w io.Writer, header []byte, recipient age.Recipient, data []byte) error {
	if _, err := w.Write(header); err != nil {
		return err
	}
	encw, err := age.Encrypt(w, recipient)
	if err != nil {
		return err
	}
	zw, err := zstd.NewWriter(encw)
	if err != nil {
		return err
	}
	if _, err := zw.Write(data); err != nil {
		return err
	}
	if err := zw.Close(); err != nil {
		return err
	}
	return encw.Close()
}
