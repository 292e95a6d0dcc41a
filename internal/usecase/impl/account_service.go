// Package impl contains the implementation of the application's business logic.
package impl

import (
	"context"
	"log/slog"

	deliverycontext "recipebox/internal/delivery/context"
	"recipebox/internal/domain/entity"
	domainerrors "recipebox/internal/domain/errors"
	"recipebox/internal/domain/repository"
	"recipebox/internal/domain/service"
	"recipebox/internal/usecase"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// accountService implements the AccountUsecase interface.
type accountService struct {
	txManager repository.TransactionManager
	hasher    service.PasswordHasher
	logger    *slog.Logger
}

// AccountServiceParams holds dependencies for accountService, injected by Fx.
type AccountServiceParams struct {
	fx.In

	TxManager repository.TransactionManager
	Hasher    service.PasswordHasher
	Logger    *slog.Logger
}

// NewAccountService is the constructor for accountService.
func NewAccountService(params AccountServiceParams) usecase.AccountUsecase {
	return &accountService{
		txManager: params.TxManager,
		hasher:    params.Hasher,
		logger:    params.Logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *accountService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

func (srv *accountService) Signup(ctx context.Context, input usecase.SignupInput) (*entity.User, error) {
	if input.Username == "" || input.Password == "" {
		return nil, domainerrors.ErrCredentialsRequired
	}

	user := &entity.User{
		Username: input.Username,
		Bio:      input.Bio,
		ImageURL: input.ImageURL,
	}
	// Hashing happens before the transaction so bcrypt never holds a connection.
	if err := user.SetPassword(srv.hasher, input.Password); err != nil {
		return nil, err
	}

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		return repoFactory.UserRepo().Create(ctx, user)
	})
	if err != nil {
		if errors.Is(err, domainerrors.ErrUsernameTaken) {
			srv.log(ctx).Info("Signup rejected, username taken", slog.String("username", input.Username))

			return nil, err
		}

		srv.log(ctx).Error("Failed to create user", slog.String("username", input.Username), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to execute signup transaction")
	}

	srv.log(ctx).Info("User signed up", slog.Uint64("userID", uint64(user.ID)))

	return user, nil
}

func (srv *accountService) Login(ctx context.Context, input usecase.LoginInput) (*entity.User, error) {
	var user *entity.User
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		found, err := repoFactory.UserRepo().FindByUsername(ctx, input.Username)
		if err != nil {
			return err
		}
		user = found

		return nil
	})
	if errors.Is(err, repository.ErrUserNotFound) {
		srv.log(ctx).Debug("Login failed, unknown username")

		return nil, domainerrors.ErrInvalidCredentials
	}
	if err != nil {
		return nil, errors.Wrap(err, "failed to look up user")
	}

	if !user.Authenticate(srv.hasher, input.Password) {
		srv.log(ctx).Debug("Login failed, wrong password", slog.Uint64("userID", uint64(user.ID)))

		return nil, domainerrors.ErrInvalidCredentials
	}

	srv.log(ctx).Info("User logged in", slog.Uint64("userID", uint64(user.ID)))

	return user, nil
}

func (srv *accountService) CurrentUser(ctx context.Context, userID uint) (*entity.User, error) {
	var user *entity.User
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		found, err := repoFactory.UserRepo().FindByID(ctx, userID)
		if err != nil {
			return err
		}
		user = found

		return nil
	})
	if errors.Is(err, repository.ErrUserNotFound) {
		return nil, domainerrors.ErrNotAuthorized.WrapMessage("session user no longer exists")
	}
	if err != nil {
		return nil, errors.Wrap(err, "failed to load current user")
	}

	return user, nil
}
