package impl

import (
	"context"
	"log/slog"
	"time"

	"recipebox/config"
	deliverycontext "recipebox/internal/delivery/context"
	"recipebox/internal/domain/entity"
	"recipebox/internal/domain/repository"
	"recipebox/internal/domain/service"
	"recipebox/internal/usecase"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// sessionService implements the SessionUsecase interface.
type sessionService struct {
	txManager    repository.TransactionManager
	tokenService service.TokenService
	ttl          time.Duration
	now          func() time.Time
	logger       *slog.Logger
}

// SessionServiceParams holds dependencies for sessionService, injected by Fx.
type SessionServiceParams struct {
	fx.In

	TxManager    repository.TransactionManager
	TokenService service.TokenService
	Config       *config.Config
	Logger       *slog.Logger
}

// NewSessionService is the constructor for sessionService.
func NewSessionService(params SessionServiceParams) usecase.SessionUsecase {
	ttl := 7 * 24 * time.Hour
	if params.Config != nil && params.Config.Session != nil && params.Config.Session.TTL > 0 {
		ttl = params.Config.Session.TTL
	}

	return &sessionService{
		txManager:    params.TxManager,
		tokenService: params.TokenService,
		ttl:          ttl,
		now:          func() time.Time { return time.Now().UTC() },
		logger:       params.Logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *sessionService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

func (srv *sessionService) TTL() time.Duration {
	return srv.ttl
}

func (srv *sessionService) Load(ctx context.Context, token string) (*entity.Session, error) {
	if token == "" {
		return nil, nil
	}

	var session *entity.Session
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		found, err := repoFactory.SessionRepo().FindByTokenHash(ctx, srv.tokenService.Digest(token))
		if err != nil {
			return err
		}
		session = found

		return nil
	})
	if errors.Is(err, repository.ErrSessionNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, errors.Wrap(err, "failed to load session")
	}
	if session.Expired(srv.now()) {
		return nil, nil
	}

	return session, nil
}

// Establish always issues a fresh token; the request's previous session is deleted
// in the same transaction and its token never carries the new identity.
func (srv *sessionService) Establish(ctx context.Context, current *entity.Session, userID uint) (*usecase.EstablishOutput, error) {
	token, digest, err := srv.tokenService.GenerateToken()
	if err != nil {
		return nil, errors.Wrap(err, "failed to generate session token")
	}

	session := &entity.Session{
		TokenHash: digest,
		UserID:    &userID,
		ExpiresAt: srv.now().Add(srv.ttl),
	}
	err = srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		sessionRepo := repoFactory.SessionRepo()
		if current != nil {
			if err := sessionRepo.Delete(ctx, current.ID); err != nil && !errors.Is(err, repository.ErrSessionNotFound) {
				return err
			}
		}

		return sessionRepo.Create(ctx, session)
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to establish session")
	}

	srv.log(ctx).Debug("Issued new session", slog.Uint64("sessionID", uint64(session.ID)))

	return &usecase.EstablishOutput{Session: session, Token: token}, nil
}

func (srv *sessionService) Clear(ctx context.Context, session *entity.Session) error {
	if session == nil {
		return nil
	}

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		return repoFactory.SessionRepo().Delete(ctx, session.ID)
	})
	if err != nil && !errors.Is(err, repository.ErrSessionNotFound) {
		return errors.Wrap(err, "failed to clear session")
	}

	session.UserID = nil

	return nil
}

func (srv *sessionService) CleanupExpired(ctx context.Context) (int64, error) {
	var removed int64
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		n, err := repoFactory.SessionRepo().DeleteExpired(ctx, srv.now())
		if err != nil {
			return err
		}
		removed = n

		return nil
	})
	if err != nil {
		return 0, errors.Wrap(err, "failed to clean up expired sessions")
	}

	srv.log(ctx).Info("Expired sessions cleaned up", slog.Int64("removed", removed))

	return removed, nil
}
