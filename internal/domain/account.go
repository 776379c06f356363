package domain

import "slices"

type AccountID string

type Account struct {
	ID   AccountID   `json:"id"`
	Type AccountType `json:"type"`
	// Login is required for every account type.
	Login string `json:"login"`
	// Password is nil for LDAP accounts; Local accounts keep it in clear text.
	Password *string `json:"password"`
	Tags     []Tag   `json:"tags"`
}

// NewAccount returns an account with the defaults used when one is created
// without input: Local type, empty login and password, no tags.
func NewAccount(id AccountID) Account {
	return Account{
		ID:       id,
		Type:     AccountTypeLocal,
		Login:    "",
		Password: StringPtr(""),
		Tags:     []Tag{},
	}
}

// Clone returns a copy that shares no memory with a.
func (a Account) Clone() Account {
	clone := a
	if a.Password != nil {
		clone.Password = StringPtr(*a.Password)
	}
	if a.Tags != nil {
		clone.Tags = slices.Clone(a.Tags)
	}

	return clone
}

func (a Account) HasPassword() bool {
	return a.Password != nil
}

func StringPtr(value string) *string {
	return &value
}
