package usecase

import (
	"context"
	"errors"
	"strings"

	domainErrors "github.com/plateup/orderflow/internal/domain/errors"
	"github.com/plateup/orderflow/internal/domain/model"
	"github.com/plateup/orderflow/internal/domain/repository"
	pkgAuth "github.com/plateup/orderflow/internal/pkg/auth"
)

// AuthUseCase handles account lifecycle and session token management.
type AuthUseCase struct {
	accounts repository.AccountRepository
	hasher   pkgAuth.PasswordHasher
	tokens   pkgAuth.Strategy
}

// NewAuthUseCase constructs AuthUseCase.
func NewAuthUseCase(accounts repository.AccountRepository, hasher pkgAuth.PasswordHasher, strategy pkgAuth.Strategy) *AuthUseCase {
	return &AuthUseCase{accounts: accounts, hasher: hasher, tokens: strategy}
}

// Register creates a new account and returns a session token. Staff accounts
// carry their sub-role and the restaurant reference they are attached to.
func (u *AuthUseCase) Register(ctx context.Context, login, password string, role model.Role, staffRole model.StaffRole, restaurantRef *int64) (*model.Account, string, error) {
	login = strings.TrimSpace(login)
	if login == "" || password == "" {
		return nil, "", domainErrors.ErrInvalidCredentials
	}

	switch role {
	case model.RoleCustomer, model.RoleRestaurantOwner, model.RoleStaff:
	default:
		return nil, "", domainErrors.ErrInvalidCredentials
	}

	hash, err := u.hasher.Hash(password)
	if err != nil {
		return nil, "", err
	}

	account := &model.Account{
		Login:         login,
		PasswordHash:  hash,
		Role:          role,
		StaffRole:     staffRole,
		RestaurantRef: restaurantRef,
	}

	created, err := u.accounts.Create(ctx, account)
	if err != nil {
		if errors.Is(err, domainErrors.ErrAlreadyExists) {
			return nil, "", domainErrors.ErrAlreadyExists
		}
		return nil, "", err
	}

	token, err := u.tokens.IssueToken(created.ID)
	if err != nil {
		return nil, "", err
	}

	return created, token, nil
}

// Authenticate validates credentials and returns a session token.
func (u *AuthUseCase) Authenticate(ctx context.Context, login, password string) (*model.Account, string, error) {
	login = strings.TrimSpace(login)
	if login == "" || password == "" {
		return nil, "", domainErrors.ErrInvalidCredentials
	}

	account, err := u.accounts.GetByLogin(ctx, login)
	if err != nil {
		if errors.Is(err, domainErrors.ErrNotFound) {
			return nil, "", domainErrors.ErrInvalidCredentials
		}
		return nil, "", err
	}

	if err := u.hasher.Compare(account.PasswordHash, password); err != nil {
		return nil, "", domainErrors.ErrInvalidCredentials
	}

	token, err := u.tokens.IssueToken(account.ID)
	if err != nil {
		return nil, "", err
	}

	return account, token, nil
}

// ParseToken extracts the account ID from the provided token.
func (u *AuthUseCase) ParseToken(token string) (int64, error) {
	if token == "" {
		return 0, pkgAuth.ErrInvalidToken
	}
	return u.tokens.ParseToken(token)
}

// GetByID fetches an account by identifier.
func (u *AuthUseCase) GetByID(ctx context.Context, id int64) (*model.Account, error) {
	return u.accounts.GetByID(ctx, id)
}
