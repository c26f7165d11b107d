package service

import (
	"context"
	"errors"
	"time"

	"github.com/beka-birhanu/vinom-robot/identity"
	"github.com/beka-birhanu/vinom-robot/service/i"
	"github.com/google/uuid"
)

const tokenLifetime = 24 * time.Hour

// ErrInvalidCredentials hides whether the username or the password was wrong.
var ErrInvalidCredentials = errors.New("invalid username or password")

// Auth registers operators and issues their tokens.
type Auth struct {
	operatorRepo i.OperatorRepo
	tokenizer    i.Tokenizer
}

// NewAuthService creates the auth service.
func NewAuthService(r i.OperatorRepo, t i.Tokenizer) (*Auth, error) {
	if r == nil || t == nil {
		return nil, errors.New("auth service requires a repository and a tokenizer")
	}
	return &Auth{operatorRepo: r, tokenizer: t}, nil
}

// Register validates and stores a new operator.
func (a *Auth) Register(ctx context.Context, username, password string) error {
	operatorConfig := identity.OperatorConfig{
		ID:            uuid.New(),
		Username:      username,
		PlainPassword: password,
	}

	operator, err := identity.NewOperator(operatorConfig)
	if err != nil {
		return err
	}

	return a.operatorRepo.Save(ctx, operator)
}

// SignIn checks the credentials and returns the operator with a fresh token.
func (a *Auth) SignIn(ctx context.Context, username, password string) (*identity.Operator, string, error) {
	operator, err := a.operatorRepo.ByUsername(ctx, username)
	if err != nil {
		return nil, "", ErrInvalidCredentials
	}

	if !operator.VerifyPassword(password) {
		return nil, "", ErrInvalidCredentials
	}

	token, err := a.tokenizer.Generate(map[string]interface{}{
		"operatorID": operator.ID.String(),
		"username":   operator.Username,
	}, tokenLifetime)
	if err != nil {
		return nil, "", err
	}

	return operator, token, nil
}
