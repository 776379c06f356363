package application

import (
	"fmt"

	"github.com/bnema/account-keeper/internal/domain"
	"github.com/bnema/account-keeper/internal/ports"
	"github.com/google/uuid"
)

// timeOrderedIDs issues UUIDv7 values: ordered by creation time and unique
// even for accounts created within the same millisecond.
type timeOrderedIDs struct{}

var _ ports.IDGenerator = timeOrderedIDs{}

func (timeOrderedIDs) NewID() (domain.AccountID, error) {
	id, err := uuid.NewV7()
	if err != nil {
		return "", fmt.Errorf("new uuid v7: %w", err)
	}

	return domain.AccountID(id.String()), nil
}
