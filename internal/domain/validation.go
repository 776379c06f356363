package domain

import (
	"fmt"
	"slices"
	"strings"
	"unicode/utf8"
)

const (
	MaxLoginLength    = 100
	MaxPasswordLength = 100

	FieldLogin    = "login"
	FieldPassword = "password"
)

const (
	msgLoginRequired    = "Login is required"
	msgLoginTooLong     = "Login must not exceed 100 characters"
	msgPasswordRequired = "Password is required"
	msgPasswordTooLong  = "Password must not exceed 100 characters"
)

// ValidationErrors maps a field name to a message. Fields without a key
// passed validation.
type ValidationErrors map[string]string

func (e ValidationErrors) HasErrors() bool {
	return len(e) > 0
}

// Fields returns the failing field names in a stable order.
func (e ValidationErrors) Fields() []string {
	fields := make([]string, 0, len(e))
	for field := range e {
		fields = append(fields, field)
	}
	slices.Sort(fields)

	return fields
}

func (e ValidationErrors) Error() string {
	parts := make([]string, 0, len(e))
	for _, field := range e.Fields() {
		parts = append(parts, fmt.Sprintf("%s: %s", field, e[field]))
	}

	return "invalid account: " + strings.Join(parts, "; ")
}

// ValidateAccount checks login for every account and password for Local
// accounts only. It never fails; the result lists what is wrong.
func ValidateAccount(account Account) ValidationErrors {
	errs := ValidationErrors{}

	if strings.TrimSpace(account.Login) == "" {
		errs[FieldLogin] = msgLoginRequired
	} else if utf8.RuneCountInString(account.Login) > MaxLoginLength {
		errs[FieldLogin] = msgLoginTooLong
	}

	if account.Type == AccountTypeLocal {
		if account.Password == nil || strings.TrimSpace(*account.Password) == "" {
			errs[FieldPassword] = msgPasswordRequired
		} else if utf8.RuneCountInString(*account.Password) > MaxPasswordLength {
			errs[FieldPassword] = msgPasswordTooLong
		}
	}

	return errs
}
