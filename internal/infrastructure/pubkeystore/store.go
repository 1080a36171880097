package pubkeystore

import (
	"context"
	"errors"
	"fmt"

	"github.com/dgraph-io/badger/v3"
	"github.com/timshannon/badgerhold/v4"

	"github.com/AspireOrg/aspire-cli/internal/core/ports"
)

type pubkeyEntry struct {
	Address string `badgerhold:"key"`
	Pubkey  string
}

// Store is an on-disk cache of resolved public keys. Pubkeys never change for
// an address, so entries are kept forever.
type Store struct {
	db *badgerhold.Store
}

// NewStore opens (or creates if not exists) the badger store on disk.
func NewStore(dbDir string) (*Store, error) {
	opts := badger.DefaultOptions(dbDir)
	opts.Logger = nil

	db, err := badgerhold.Open(badgerhold.Options{
		Encoder:          badgerhold.DefaultEncode,
		Decoder:          badgerhold.DefaultDecode,
		SequenceBandwith: 100,
		Options:          opts,
	})
	if err != nil {
		return nil, fmt.Errorf("opening pubkey cache: %w", err)
	}
	return &Store{db: db}, nil
}

// Wrap decorates a lookup with the cache: hits are served locally, misses go
// through the wrapped lookup and are stored on success.
func (s *Store) Wrap(lookup ports.PubkeyLookup) ports.PubkeyLookup {
	return func(ctx context.Context, address string) (string, error) {
		entry := pubkeyEntry{}
		err := s.db.Get(address, &entry)
		if err == nil {
			return entry.Pubkey, nil
		}
		if !errors.Is(err, badgerhold.ErrNotFound) {
			return "", err
		}

		pubkey, err := lookup(ctx, address)
		if err != nil {
			return "", err
		}
		if pubkey != "" {
			if err := s.db.Upsert(address, pubkeyEntry{
				Address: address, Pubkey: pubkey,
			}); err != nil {
				return "", err
			}
		}
		return pubkey, nil
	}
}

func (s *Store) Close() error {
	return s.db.Close()
}
