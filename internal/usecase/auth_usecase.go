package usecase

import (
	"context"
	"strings"
	"time"

	"github.com/PhatNguyen203/DevConnecting/internal/domain"
	"github.com/PhatNguyen203/DevConnecting/pkg/apperror"
	"github.com/PhatNguyen203/DevConnecting/pkg/gravatar"
	"github.com/PhatNguyen203/DevConnecting/pkg/hash"
	"github.com/PhatNguyen203/DevConnecting/pkg/token"

	"github.com/google/uuid"
)

type authUsecase struct {
	accounts domain.AccountRepository
	tokens   *token.Service
}

func NewAuthUsecase(accounts domain.AccountRepository, tokens *token.Service) domain.AuthUsecase {
	return &authUsecase{
		accounts: accounts,
		tokens:   tokens,
	}
}

// Register creates an account and returns a credential bound to it, so the
// caller is logged in right away.
func (u *authUsecase) Register(ctx context.Context, name, email, password string) (string, error) {
	email = strings.ToLower(strings.TrimSpace(email))

	existing, err := u.accounts.GetByEmail(ctx, email)
	if err != nil {
		return "", apperror.Internal(err)
	}
	if existing != nil {
		return "", apperror.Conflict("an account with this email already exists")
	}

	hashed, err := hash.Password(password)
	if err != nil {
		return "", apperror.Internal(err)
	}

	account := &domain.Account{
		ID:        uuid.NewString(),
		Name:      name,
		Email:     email,
		Password:  hashed,
		AvatarURL: gravatar.URL(email),
		CreatedAt: time.Now().UTC(),
	}
	// The unique index on email backs the check above under concurrent
	// registrations; the repository maps that violation to a conflict.
	if err := u.accounts.Create(ctx, account); err != nil {
		return "", err
	}

	credential, err := u.tokens.Issue(account.ID)
	if err != nil {
		return "", apperror.Internal(err)
	}
	return credential, nil
}

// Login reports one unified "invalid credentials" failure for both unknown
// email and wrong password, so callers cannot probe which emails exist.
func (u *authUsecase) Login(ctx context.Context, email, password string) (string, error) {
	email = strings.ToLower(strings.TrimSpace(email))

	account, err := u.accounts.GetByEmail(ctx, email)
	if err != nil {
		return "", apperror.Internal(err)
	}
	if account == nil {
		return "", apperror.BadRequest("invalid credentials")
	}
	if !hash.Matches(account.Password, password) {
		return "", apperror.BadRequest("invalid credentials")
	}

	credential, err := u.tokens.Issue(account.ID)
	if err != nil {
		return "", apperror.Internal(err)
	}
	return credential, nil
}

func (u *authUsecase) CurrentAccount(ctx context.Context, id string) (*domain.Account, error) {
	account, err := u.accounts.GetByID(ctx, id)
	if err != nil {
		return nil, apperror.Internal(err)
	}
	if account == nil {
		return nil, apperror.NotFound("account not found")
	}
	return account, nil
}
