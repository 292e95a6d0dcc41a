package gormrepo

import (
	"context"
	"time"

	"recipebox/internal/domain/entity"
	domainerrors "recipebox/internal/domain/errors"
	"recipebox/internal/domain/repository"
	"recipebox/internal/infra/persistence/model"

	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// sessionRepository implements repository.SessionRepository using GORM.
type sessionRepository struct {
	db  *gorm.DB
	now func() time.Time
}

// NewSessionRepository is the constructor for sessionRepository.
func NewSessionRepository(db *gorm.DB) repository.SessionRepository {
	return &sessionRepository{db: db, now: func() time.Time { return time.Now().UTC() }}
}

// FindByTokenHash ignores rows that are already expired.
func (repo *sessionRepository) FindByTokenHash(ctx context.Context, tokenHash string) (*entity.Session, error) {
	var sessionM model.SessionModel
	err := repo.db.WithContext(ctx).
		Where("token_hash = ? AND expires_at > ?", tokenHash, repo.now()).
		Take(&sessionM).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrSessionNotFound
		}

		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to find session")
	}

	return toSessionDomain(&sessionM), nil
}

func (repo *sessionRepository) Create(ctx context.Context, session *entity.Session) error {
	sessionM := fromSessionDomain(session)

	if err := repo.db.WithContext(ctx).Create(sessionM).Error; err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to create session")
	}

	session.ID = sessionM.ID
	session.CreatedAt = sessionM.CreatedAt
	session.UpdatedAt = sessionM.UpdatedAt

	return nil
}

func (repo *sessionRepository) Delete(ctx context.Context, sessionID uint) error {
	result := repo.db.WithContext(ctx).Delete(&model.SessionModel{}, sessionID)
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to delete session")
	}
	if result.RowsAffected == 0 {
		return repository.ErrSessionNotFound
	}

	return nil
}

func (repo *sessionRepository) DeleteExpired(ctx context.Context, now time.Time) (int64, error) {
	result := repo.db.WithContext(ctx).
		Where("expires_at <= ?", now.UTC()).
		Delete(&model.SessionModel{})
	if result.Error != nil {
		return 0, domainerrors.NewDatabaseExecuteError(result.Error, "failed to delete expired sessions")
	}

	return result.RowsAffected, nil
}

func toSessionDomain(data *model.SessionModel) *entity.Session {
	return &entity.Session{
		ID:        data.ID,
		TokenHash: data.TokenHash,
		UserID:    data.UserID,
		ExpiresAt: data.ExpiresAt,
		CreatedAt: data.CreatedAt,
		UpdatedAt: data.UpdatedAt,
	}
}

func fromSessionDomain(data *entity.Session) *model.SessionModel {
	return &model.SessionModel{
		ID:        data.ID,
		TokenHash: data.TokenHash,
		UserID:    data.UserID,
		ExpiresAt: data.ExpiresAt.UTC(),
	}
}
