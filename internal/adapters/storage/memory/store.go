package memory

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"

	"github.com/bnema/account-keeper/internal/domain"
	"github.com/bnema/account-keeper/internal/ports"
)

// Store keeps values in a map and counts calls, which makes it the storage of
// choice for tests and --storage memory runs.
type Store struct {
	mu     sync.RWMutex
	values map[string]string
	reads  int
	writes int
	putErr error
}

var _ ports.KeyValueStore = (*Store)(nil)

var errEmptyKey = errors.New("storage key is empty")

func NewStore() *Store {
	return &Store{values: map[string]string{}}
}

// NewStoreWith seeds the store without counting the seed as writes.
func NewStoreWith(values map[string]string) *Store {
	store := NewStore()
	for key, value := range values {
		store.values[key] = value
	}

	return store
}

// FailPuts makes every following Put return err. A nil err clears it.
func (s *Store) FailPuts(err error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.putErr = err
}

func (s *Store) Get(ctx context.Context, key string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	if strings.TrimSpace(key) == "" {
		return "", errEmptyKey
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.reads++
	value, ok := s.values[key]
	if !ok {
		return "", fmt.Errorf("memory key %q: %w", key, domain.ErrKeyNotFound)
	}

	return value, nil
}

func (s *Store) Put(ctx context.Context, key string, value string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if strings.TrimSpace(key) == "" {
		return errEmptyKey
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.writes++
	if s.putErr != nil {
		return s.putErr
	}
	s.values[key] = value

	return nil
}

func (s *Store) Delete(ctx context.Context, key string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if strings.TrimSpace(key) == "" {
		return errEmptyKey
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	delete(s.values, key)

	return nil
}

func (s *Store) Reads() int {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.reads
}

// Writes counts Put calls, including failed ones.
func (s *Store) Writes() int {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.writes
}

// Value returns the raw stored value without counting a read.
func (s *Store) Value(key string) (string, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	value, ok := s.values[key]
	return value, ok
}
