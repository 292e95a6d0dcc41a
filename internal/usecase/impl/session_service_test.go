package impl

import (
	"context"
	"testing"
	"time"

	"recipebox/config"
	"recipebox/internal/domain/entity"
	"recipebox/internal/domain/repository"
	mockRepo "recipebox/internal/mocks/repository"
	mockSvc "recipebox/internal/mocks/service"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

var fixedNow = time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)

func newTestSessionService(t *testing.T) (*sessionService, *mockRepo.MockTransactionManager, *mockSvc.MockTokenService) {
	txManager := mockRepo.NewMockTransactionManager(t)
	tokens := mockSvc.NewMockTokenService(t)

	srv := NewSessionService(SessionServiceParams{
		TxManager:    txManager,
		TokenService: tokens,
		Config:       &config.Config{Session: &config.SessionConfig{TTL: time.Hour}},
		Logger:       newDiscardLogger(),
	}).(*sessionService)
	srv.now = func() time.Time { return fixedNow }

	return srv, txManager, tokens
}

func TestSessionService_Load(t *testing.T) {
	t.Run("empty token skips storage", func(t *testing.T) {
		srv, _, _ := newTestSessionService(t)

		session, err := srv.Load(context.Background(), "")
		require.NoError(t, err)
		assert.Nil(t, session)
	})

	t.Run("known token", func(t *testing.T) {
		srv, txManager, tokens := newTestSessionService(t)
		ctx := context.Background()
		stored := &entity.Session{ID: 4, TokenHash: "digest", UserID: ptr(uint(9)), ExpiresAt: fixedNow.Add(time.Minute)}

		tokens.EXPECT().Digest("raw").Return("digest")
		expectTx(t, txManager, func(factory *mockRepo.MockRepositoryFactory) {
			sessions := mockRepo.NewMockSessionRepository(t)
			factory.EXPECT().SessionRepo().Return(sessions)
			sessions.EXPECT().FindByTokenHash(ctx, "digest").Return(stored, nil)
		})

		session, err := srv.Load(ctx, "raw")
		require.NoError(t, err)
		assert.Same(t, stored, session)
	})

	t.Run("session past its expiry", func(t *testing.T) {
		srv, txManager, tokens := newTestSessionService(t)
		ctx := context.Background()

		tokens.EXPECT().Digest("raw").Return("digest")
		expectTx(t, txManager, func(factory *mockRepo.MockRepositoryFactory) {
			sessions := mockRepo.NewMockSessionRepository(t)
			factory.EXPECT().SessionRepo().Return(sessions)
			sessions.EXPECT().FindByTokenHash(ctx, "digest").Return(&entity.Session{ID: 4, ExpiresAt: fixedNow}, nil)
		})

		session, err := srv.Load(ctx, "raw")
		require.NoError(t, err)
		assert.Nil(t, session)
	})

	t.Run("unknown token", func(t *testing.T) {
		srv, txManager, tokens := newTestSessionService(t)
		ctx := context.Background()

		tokens.EXPECT().Digest("raw").Return("digest")
		expectTx(t, txManager, func(factory *mockRepo.MockRepositoryFactory) {
			sessions := mockRepo.NewMockSessionRepository(t)
			factory.EXPECT().SessionRepo().Return(sessions)
			sessions.EXPECT().FindByTokenHash(ctx, "digest").Return(nil, repository.ErrSessionNotFound)
		})

		session, err := srv.Load(ctx, "raw")
		require.NoError(t, err)
		assert.Nil(t, session)
	})
}

func TestSessionService_Establish_NewSession(t *testing.T) {
	srv, txManager, tokens := newTestSessionService(t)
	ctx := context.Background()

	tokens.EXPECT().GenerateToken().Return("raw", "digest", nil)
	expectTx(t, txManager, func(factory *mockRepo.MockRepositoryFactory) {
		sessions := mockRepo.NewMockSessionRepository(t)
		factory.EXPECT().SessionRepo().Return(sessions)
		sessions.EXPECT().
			Create(ctx, mock.MatchedBy(func(s *entity.Session) bool {
				return s.TokenHash == "digest" && *s.UserID == 9 && s.ExpiresAt.Equal(fixedNow.Add(time.Hour))
			})).
			Return(nil)
	})

	out, err := srv.Establish(ctx, nil, 9)

	require.NoError(t, err)
	assert.Equal(t, "raw", out.Token)
	assert.True(t, out.Session.IsAuthenticated())
}

func TestSessionService_Establish_ReplacesCurrentSession(t *testing.T) {
	srv, txManager, tokens := newTestSessionService(t)
	ctx := context.Background()
	current := &entity.Session{ID: 4, TokenHash: "planted"}

	tokens.EXPECT().GenerateToken().Return("raw", "digest", nil)
	expectTx(t, txManager, func(factory *mockRepo.MockRepositoryFactory) {
		sessions := mockRepo.NewMockSessionRepository(t)
		factory.EXPECT().SessionRepo().Return(sessions)
		sessions.EXPECT().Delete(ctx, uint(4)).Return(nil).Once()
		sessions.EXPECT().
			Create(ctx, mock.MatchedBy(func(s *entity.Session) bool { return s.TokenHash == "digest" })).
			Return(nil).
			Once()
	})

	out, err := srv.Establish(ctx, current, 9)

	require.NoError(t, err)
	assert.Equal(t, "raw", out.Token)
	assert.NotSame(t, current, out.Session)
	assert.Nil(t, current.UserID)
	require.NotNil(t, out.Session.UserID)
	assert.Equal(t, uint(9), *out.Session.UserID)
}

func TestSessionService_Establish_CurrentAlreadyPurged(t *testing.T) {
	srv, txManager, tokens := newTestSessionService(t)
	ctx := context.Background()

	tokens.EXPECT().GenerateToken().Return("raw", "digest", nil)
	expectTx(t, txManager, func(factory *mockRepo.MockRepositoryFactory) {
		sessions := mockRepo.NewMockSessionRepository(t)
		factory.EXPECT().SessionRepo().Return(sessions)
		sessions.EXPECT().Delete(ctx, uint(4)).Return(repository.ErrSessionNotFound)
		sessions.EXPECT().Create(ctx, mock.Anything).Return(nil)
	})

	out, err := srv.Establish(ctx, &entity.Session{ID: 4}, 9)

	require.NoError(t, err)
	assert.Equal(t, "raw", out.Token)
}

func TestSessionService_Establish_DeleteFailureAborts(t *testing.T) {
	srv, txManager, tokens := newTestSessionService(t)
	ctx := context.Background()

	tokens.EXPECT().GenerateToken().Return("raw", "digest", nil)
	expectTx(t, txManager, func(factory *mockRepo.MockRepositoryFactory) {
		sessions := mockRepo.NewMockSessionRepository(t)
		factory.EXPECT().SessionRepo().Return(sessions)
		sessions.EXPECT().Delete(ctx, uint(4)).Return(errors.New("db down"))
	})

	_, err := srv.Establish(ctx, &entity.Session{ID: 4}, 9)
	assert.Error(t, err)
}

func TestSessionService_Establish_TokenFailure(t *testing.T) {
	srv, _, tokens := newTestSessionService(t)

	tokens.EXPECT().GenerateToken().Return("", "", errors.New("entropy exhausted"))

	_, err := srv.Establish(context.Background(), nil, 9)
	assert.Error(t, err)
}

func TestSessionService_Clear(t *testing.T) {
	t.Run("deletes the session", func(t *testing.T) {
		srv, txManager, _ := newTestSessionService(t)
		ctx := context.Background()
		session := &entity.Session{ID: 4, UserID: ptr(uint(9))}

		expectTx(t, txManager, func(factory *mockRepo.MockRepositoryFactory) {
			sessions := mockRepo.NewMockSessionRepository(t)
			factory.EXPECT().SessionRepo().Return(sessions)
			sessions.EXPECT().Delete(ctx, uint(4)).Return(nil)
		})

		require.NoError(t, srv.Clear(ctx, session))
		assert.False(t, session.IsAuthenticated())
	})

	t.Run("already gone", func(t *testing.T) {
		srv, txManager, _ := newTestSessionService(t)
		ctx := context.Background()

		expectTx(t, txManager, func(factory *mockRepo.MockRepositoryFactory) {
			sessions := mockRepo.NewMockSessionRepository(t)
			factory.EXPECT().SessionRepo().Return(sessions)
			sessions.EXPECT().Delete(ctx, uint(4)).Return(repository.ErrSessionNotFound)
		})

		assert.NoError(t, srv.Clear(ctx, &entity.Session{ID: 4, UserID: ptr(uint(9))}))
	})

	t.Run("no session is a no-op", func(t *testing.T) {
		srv, _, _ := newTestSessionService(t)

		assert.NoError(t, srv.Clear(context.Background(), nil))
	})
}

func TestSessionService_CleanupExpired(t *testing.T) {
	srv, txManager, _ := newTestSessionService(t)
	ctx := context.Background()

	expectTx(t, txManager, func(factory *mockRepo.MockRepositoryFactory) {
		sessions := mockRepo.NewMockSessionRepository(t)
		factory.EXPECT().SessionRepo().Return(sessions)
		sessions.EXPECT().DeleteExpired(ctx, fixedNow).Return(int64(3), nil)
	})

	removed, err := srv.CleanupExpired(ctx)

	require.NoError(t, err)
	assert.Equal(t, int64(3), removed)
}

func TestSessionService_DefaultTTL(t *testing.T) {
	srv := NewSessionService(SessionServiceParams{Logger: newDiscardLogger()})

	assert.Equal(t, 7*24*time.Hour, srv.TTL())
}
