package repository

import (
	"context"

	"github.com/plateup/orderflow/internal/domain/model"
)

// AccountRepository describes persistence operations for accounts.
type AccountRepository interface {
	Create(ctx context.Context, account *model.Account) (*model.Account, error)
	GetByLogin(ctx context.Context, login string) (*model.Account, error)
	GetByID(ctx context.Context, id int64) (*model.Account, error)
}
