package test

import (
	"context"
	"strconv"

	domainErrors "github.com/plateup/orderflow/internal/domain/errors"
	"github.com/plateup/orderflow/internal/domain/model"
	pkgAuth "github.com/plateup/orderflow/internal/pkg/auth"
)

// HasherStub implements auth.PasswordHasher with overridable behavior.
type HasherStub struct {
	HashFn    func(password string) (string, error)
	CompareFn func(hash, password string) error
}

// Hash delegates to HashFn or returns password prefixed with "hash:".
func (s *HasherStub) Hash(password string) (string, error) {
	if s.HashFn != nil {
		return s.HashFn(password)
	}
	return "hash:" + password, nil
}

// Compare delegates to CompareFn or matches the default Hash scheme.
func (s *HasherStub) Compare(hash, password string) error {
	if s.CompareFn != nil {
		return s.CompareFn(hash, password)
	}
	if hash != "hash:"+password {
		return domainErrors.ErrInvalidCredentials
	}
	return nil
}

// StrategyStub implements auth.Strategy encoding the account id in the token.
type StrategyStub struct {
	IssueTokenFn func(accountID int64) (string, error)
	ParseTokenFn func(token string) (int64, error)
}

// IssueToken delegates to IssueTokenFn or encodes id decimal.
func (s *StrategyStub) IssueToken(accountID int64) (string, error) {
	if s.IssueTokenFn != nil {
		return s.IssueTokenFn(accountID)
	}
	return strconv.FormatInt(accountID, 10), nil
}

// ParseToken delegates to ParseTokenFn or decodes the decimal id.
func (s *StrategyStub) ParseToken(token string) (int64, error) {
	if s.ParseTokenFn != nil {
		return s.ParseTokenFn(token)
	}
	return strconv.ParseInt(token, 10, 64)
}

// Name returns a fixed strategy name.
func (s *StrategyStub) Name() string { return "stub" }

// ActorResolverStub implements middleware.ActorResolver over a fixed set of
// accounts keyed by token.
type ActorResolverStub struct {
	Accounts map[string]*model.Account

	ParseTokenFn func(token string) (int64, error)
	ActorFn      func(ctx context.Context, id int64) (*model.Account, error)
}

// ParseToken resolves a token to the id of the account registered under it.
func (s *ActorResolverStub) ParseToken(token string) (int64, error) {
	if s.ParseTokenFn != nil {
		return s.ParseTokenFn(token)
	}
	if account, ok := s.Accounts[token]; ok {
		return account.ID, nil
	}
	return 0, pkgAuth.ErrInvalidToken
}

// Actor returns the account with the given id.
func (s *ActorResolverStub) Actor(ctx context.Context, id int64) (*model.Account, error) {
	if s.ActorFn != nil {
		return s.ActorFn(ctx, id)
	}
	for _, account := range s.Accounts {
		if account.ID == id {
			return account, nil
		}
	}
	return nil, domainErrors.ErrNotFound
}
