package application

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"slices"
	"strings"

	"github.com/bnema/account-keeper/internal/domain"
	"github.com/bnema/account-keeper/internal/logging"
	"github.com/bnema/account-keeper/internal/ports"
	"github.com/charmbracelet/log"
)

const DefaultStorageKey = "accounts"

var errNilKeyValueStore = errors.New("key-value store is nil")

// AccountStore owns the account list and writes the whole list back to the
// key-value store after every mutation. It is not safe for concurrent use.
type AccountStore struct {
	kv       ports.KeyValueStore
	ids      ports.IDGenerator
	logger   *log.Logger
	key      string
	accounts []domain.Account
}

type StoreOption func(*AccountStore)

func WithLogger(logger *log.Logger) StoreOption {
	return func(s *AccountStore) {
		if logger != nil {
			s.logger = logger
		}
	}
}

func WithIDGenerator(ids ports.IDGenerator) StoreOption {
	return func(s *AccountStore) {
		if ids != nil {
			s.ids = ids
		}
	}
}

func WithStorageKey(key string) StoreOption {
	return func(s *AccountStore) {
		if strings.TrimSpace(key) != "" {
			s.key = key
		}
	}
}

// NewAccountStore builds a store and loads the persisted list. A value that
// cannot be decoded is logged and replaced by an empty list; only a failing
// storage read is returned.
func NewAccountStore(ctx context.Context, kv ports.KeyValueStore, opts ...StoreOption) (*AccountStore, error) {
	if kv == nil {
		return nil, errNilKeyValueStore
	}

	store := &AccountStore{
		kv:       kv,
		ids:      timeOrderedIDs{},
		logger:   logging.Discard(),
		key:      DefaultStorageKey,
		accounts: []domain.Account{},
	}
	for _, opt := range opts {
		opt(store)
	}

	if err := store.load(ctx); err != nil {
		return nil, err
	}

	return store, nil
}

type loadResult struct {
	accounts []domain.Account
	err      error
}

func (s *AccountStore) load(ctx context.Context) error {
	raw, err := s.kv.Get(ctx, s.key)
	if err != nil {
		if errors.Is(err, domain.ErrKeyNotFound) {
			return nil
		}
		return fmt.Errorf("read accounts from storage: %w", err)
	}
	if raw == "" {
		return nil
	}

	result := decodeAccounts(raw)
	if result.err != nil {
		s.logger.Error("load accounts from storage", "key", s.key, "err", result.err)
		s.accounts = []domain.Account{}
		return nil
	}

	s.accounts = result.accounts
	s.logger.Debug("loaded accounts from storage", "key", s.key, "count", len(s.accounts))

	return nil
}

func decodeAccounts(raw string) loadResult {
	var accounts []domain.Account
	if err := json.Unmarshal([]byte(raw), &accounts); err != nil {
		return loadResult{err: fmt.Errorf("decode accounts: %w", err)}
	}
	if accounts == nil {
		accounts = []domain.Account{}
	}

	return loadResult{accounts: accounts}
}

func (s *AccountStore) save(ctx context.Context) error {
	data, err := json.Marshal(s.accounts)
	if err != nil {
		return fmt.Errorf("encode accounts: %w", err)
	}

	if err := s.kv.Put(ctx, s.key, string(data)); err != nil {
		return fmt.Errorf("save accounts to storage: %w", err)
	}

	return nil
}

// Accounts returns a copy of the list in insertion order.
func (s *AccountStore) Accounts() []domain.Account {
	accounts := make([]domain.Account, 0, len(s.accounts))
	for _, account := range s.accounts {
		accounts = append(accounts, account.Clone())
	}

	return accounts
}

func (s *AccountStore) Len() int {
	return len(s.accounts)
}

func (s *AccountStore) ParseTags(raw string) []domain.Tag {
	return domain.ParseTags(raw)
}

func (s *AccountStore) TagsToString(tags []domain.Tag) string {
	return domain.TagsToString(tags)
}

func (s *AccountStore) ValidateAccount(account domain.Account) domain.ValidationErrors {
	return domain.ValidateAccount(account)
}

// AddAccount appends an account with default fields and persists the list.
// Callers fill it in through UpdateAccount.
func (s *AccountStore) AddAccount(ctx context.Context) (domain.Account, error) {
	id, err := s.ids.NewID()
	if err != nil {
		return domain.Account{}, fmt.Errorf("generate account id: %w", err)
	}

	account := domain.NewAccount(id)
	s.accounts = append(s.accounts, account)

	if err := s.save(ctx); err != nil {
		return domain.Account{}, err
	}

	return account.Clone(), nil
}

// UpdateAccount merges updates onto the account with the given id. An
// unknown id is ignored and nothing is written.
func (s *AccountStore) UpdateAccount(ctx context.Context, id domain.AccountID, updates domain.AccountUpdate) error {
	index := s.indexOf(id)
	if index == -1 {
		return nil
	}

	s.accounts[index] = s.accounts[index].Apply(updates)

	return s.save(ctx)
}

// DeleteAccount removes the account with the given id. An unknown id is
// ignored and nothing is written.
func (s *AccountStore) DeleteAccount(ctx context.Context, id domain.AccountID) error {
	index := s.indexOf(id)
	if index == -1 {
		return nil
	}

	s.accounts = slices.Delete(s.accounts, index, index+1)

	return s.save(ctx)
}

func (s *AccountStore) GetAccountByID(id domain.AccountID) (domain.Account, bool) {
	index := s.indexOf(id)
	if index == -1 {
		return domain.Account{}, false
	}

	return s.accounts[index].Clone(), true
}

func (s *AccountStore) indexOf(id domain.AccountID) int {
	return slices.IndexFunc(s.accounts, func(account domain.Account) bool {
		return account.ID == id
	})
}
