package toml

import (
	"fmt"
	"io"

	"github.com/bnema/account-keeper/internal/domain"
	toml "github.com/pelletier/go-toml/v2"
)

// Encode writes accounts as a versioned TOML document with one
// [[accounts]] table per account, in list order.
func Encode(w io.Writer, accounts []domain.Account) error {
	file := fileSchema{
		Version:  currentSchemaVersion,
		Accounts: make([]accountSchema, 0, len(accounts)),
	}
	for _, account := range accounts {
		file.Accounts = append(file.Accounts, toSchema(account))
	}

	enc := toml.NewEncoder(w)
	enc.SetIndentTables(true)
	if err := enc.Encode(file); err != nil {
		return fmt.Errorf("encode accounts toml: %w", err)
	}

	return nil
}

func toSchema(account domain.Account) accountSchema {
	tags := make([]string, 0, len(account.Tags))
	for _, tag := range account.Tags {
		tags = append(tags, tag.Text)
	}

	var password *string
	if account.Password != nil {
		password = domain.StringPtr(*account.Password)
	}

	return accountSchema{
		ID:       string(account.ID),
		Type:     string(account.Type),
		Login:    account.Login,
		Password: password,
		Tags:     tags,
	}
}
