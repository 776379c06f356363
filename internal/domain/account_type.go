package domain

import (
	"fmt"
	"strings"
)

type AccountType string

const (
	AccountTypeLocal AccountType = "Local"
	AccountTypeLDAP  AccountType = "LDAP"
)

func (t AccountType) Valid() bool {
	switch t {
	case AccountTypeLocal, AccountTypeLDAP:
		return true
	default:
		return false
	}
}

// ParseAccountType accepts the two type labels case-insensitively.
func ParseAccountType(raw string) (AccountType, error) {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "local":
		return AccountTypeLocal, nil
	case "ldap":
		return AccountTypeLDAP, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrInvalidAccountType, raw)
	}
}
