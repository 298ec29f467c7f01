package auth

import (
	"context"
	"errors"
	"net/http"
	"strings"
	"time"

	autherrors "go-employees/internal/auth/errors"
	"go-employees/internal/shared/apperror"
	"go-employees/internal/shared/contextutil"
	"go-employees/internal/token"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

//go:generate mockgen -source=auth_service.go -destination=mock/auth_service_mock.go -package=mock
type Service interface {
	Signup(ctx context.Context, req SignupRequest) (AccountResponse, error)
	Login(ctx context.Context, usernameOrEmail, password string) (AuthPayload, error)
}

type service struct {
	repo   Repository
	tokens *token.Manager
	logger *zap.Logger
}

func NewService(repo Repository, tokens *token.Manager, logger ...*zap.Logger) Service {
	l := zap.L().Named("auth.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("auth.service")
	}
	return &service{repo: repo, tokens: tokens, logger: l}
}

// log prefers the request-scoped logger attached by the middleware, so
// service lines carry the request and account ids.
func (s *service) log(ctx context.Context) *zap.Logger {
	return contextutil.GetLogger(ctx, s.logger)
}

func (s *service) Signup(ctx context.Context, req SignupRequest) (AccountResponse, error) {
	if errs := ValidateSignup(req.Username, req.Email, req.Password); len(errs) > 0 {
		return AccountResponse{}, apperror.New(
			apperror.CodeInvalidInput,
			strings.Join(errs, ", "),
			http.StatusBadRequest,
		)
	}

	email := strings.ToLower(req.Email)

	// Pre-check; the unique indexes remain the backstop for races.
	_, err := s.repo.FindByUsernameOrEmail(ctx, req.Username, email)
	if err == nil {
		return AccountResponse{}, autherrors.ErrAccountAlreadyExists
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		s.log(ctx).Error("signup uniqueness check failed", zap.Error(err))
		return AccountResponse{}, apperror.Wrap(err, apperror.CodeInternalError, "An unexpected error occurred", http.StatusInternalServerError)
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return AccountResponse{}, apperror.Wrap(err, apperror.CodeInternalError, "An unexpected error occurred", http.StatusInternalServerError)
	}

	acc := &Account{
		ID:       uuid.New(),
		Username: req.Username,
		Email:    email,
		Password: string(hashed),
	}

	if err := s.repo.Create(ctx, acc); err != nil {
		s.log(ctx).Error("signup persist failed", zap.String("username", req.Username), zap.Error(err))
		return AccountResponse{}, mapRepositoryError(err)
	}

	s.log(ctx).Info("account created",
		zap.String("account_id", acc.ID.String()),
		zap.String("username", acc.Username),
	)

	return mapToResponse(acc), nil
}

func (s *service) Login(ctx context.Context, usernameOrEmail, password string) (AuthPayload, error) {
	acc, err := s.repo.FindByUsernameOrEmail(ctx, usernameOrEmail, strings.ToLower(usernameOrEmail))
	if err != nil {
		return AuthPayload{}, autherrors.ErrInvalidCredentials
	}

	if !acc.ComparePassword(password) {
		return AuthPayload{}, autherrors.ErrInvalidCredentials
	}

	signed, err := s.tokens.Issue(acc.ID.String(), acc.Username, acc.Email)
	if err != nil {
		s.log(ctx).Error("token issue failed", zap.String("account_id", acc.ID.String()), zap.Error(err))
		return AuthPayload{}, apperror.Wrap(err, apperror.CodeInternalError, "An unexpected error occurred", http.StatusInternalServerError)
	}

	s.log(ctx).Info("login success", zap.String("account_id", acc.ID.String()))

	return AuthPayload{Token: signed, User: mapToResponse(acc)}, nil
}

// mapRepositoryError translates a unique-index violation into the conflict
// error, so a race the pre-check missed surfaces the same way.
func mapRepositoryError(err error) error {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == "23505" {
		return autherrors.ErrAccountAlreadyExists
	}
	if strings.Contains(strings.ToLower(err.Error()), "duplicate key value") {
		return autherrors.ErrAccountAlreadyExists
	}
	return err
}

func mapToResponse(acc *Account) AccountResponse {
	return AccountResponse{
		ID:        acc.ID.String(),
		Username:  acc.Username,
		Email:     acc.Email,
		CreatedAt: acc.CreatedAt.UTC().Format(time.RFC3339),
		UpdatedAt: acc.UpdatedAt.UTC().Format(time.RFC3339),
	}
}
