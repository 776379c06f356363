package ports

import "github.com/bnema/account-keeper/internal/domain"

type IDGenerator interface {
	NewID() (domain.AccountID, error)
}
