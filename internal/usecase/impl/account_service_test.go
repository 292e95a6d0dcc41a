package impl

import (
	"context"
	"testing"

	"recipebox/internal/domain/entity"
	domainerrors "recipebox/internal/domain/errors"
	"recipebox/internal/domain/repository"
	mockRepo "recipebox/internal/mocks/repository"
	mockSvc "recipebox/internal/mocks/service"
	"recipebox/internal/usecase"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type accountFixture struct {
	txManager *mockRepo.MockTransactionManager
	hasher    *mockSvc.MockPasswordHasher
	service   usecase.AccountUsecase
}

func newAccountFixture(t *testing.T) *accountFixture {
	txManager := mockRepo.NewMockTransactionManager(t)
	hasher := mockSvc.NewMockPasswordHasher(t)

	return &accountFixture{
		txManager: txManager,
		hasher:    hasher,
		service: NewAccountService(AccountServiceParams{
			TxManager: txManager,
			Hasher:    hasher,
			Logger:    newDiscardLogger(),
		}),
	}
}

func TestAccountService_Signup_Success(t *testing.T) {
	f := newAccountFixture(t)
	ctx := context.Background()
	bio := "Home cook"

	f.hasher.EXPECT().Hash("hunter2").Return([]byte("hashed"), nil)
	expectTx(t, f.txManager, func(factory *mockRepo.MockRepositoryFactory) {
		userRepo := mockRepo.NewMockUserRepository(t)
		factory.EXPECT().UserRepo().Return(userRepo)
		userRepo.EXPECT().
			Create(ctx, mock.MatchedBy(func(u *entity.User) bool {
				return u.Username == "ash" && string(u.PasswordSecret()) == "hashed" && u.Bio == &bio
			})).
			Run(func(_ context.Context, u *entity.User) { u.ID = 7 }).
			Return(nil)
	})

	user, err := f.service.Signup(ctx, usecase.SignupInput{Username: "ash", Password: "hunter2", Bio: &bio})

	require.NoError(t, err)
	assert.Equal(t, uint(7), user.ID)
	assert.Nil(t, user.ImageURL)
}

func TestAccountService_Signup_MissingCredentials(t *testing.T) {
	f := newAccountFixture(t)

	for _, input := range []usecase.SignupInput{
		{Username: "", Password: "pw"},
		{Username: "ash", Password: ""},
	} {
		_, err := f.service.Signup(context.Background(), input)
		assert.ErrorIs(t, err, domainerrors.ErrCredentialsRequired)
	}
}

func TestAccountService_Signup_UsernameStoredVerbatim(t *testing.T) {
	f := newAccountFixture(t)
	ctx := context.Background()

	f.hasher.EXPECT().Hash("pw").Return([]byte("hashed"), nil)
	expectTx(t, f.txManager, func(factory *mockRepo.MockRepositoryFactory) {
		userRepo := mockRepo.NewMockUserRepository(t)
		factory.EXPECT().UserRepo().Return(userRepo)
		userRepo.EXPECT().
			Create(ctx, mock.MatchedBy(func(u *entity.User) bool { return u.Username == "   " })).
			Return(nil)
	})

	user, err := f.service.Signup(ctx, usecase.SignupInput{Username: "   ", Password: "pw"})

	require.NoError(t, err)
	assert.Equal(t, "   ", user.Username)
}

func TestAccountService_Signup_UsernameTaken(t *testing.T) {
	f := newAccountFixture(t)
	ctx := context.Background()

	f.hasher.EXPECT().Hash("pw").Return([]byte("hashed"), nil)
	expectTx(t, f.txManager, func(factory *mockRepo.MockRepositoryFactory) {
		userRepo := mockRepo.NewMockUserRepository(t)
		factory.EXPECT().UserRepo().Return(userRepo)
		userRepo.EXPECT().Create(ctx, mock.Anything).
			Return(domainerrors.ErrUsernameTaken.WrapMessage("username already exists"))
	})

	user, err := f.service.Signup(ctx, usecase.SignupInput{Username: "ash", Password: "pw"})

	assert.Nil(t, user)
	assert.ErrorIs(t, err, domainerrors.ErrUsernameTaken)
}

func TestAccountService_Signup_UnusablePassword(t *testing.T) {
	f := newAccountFixture(t)

	f.hasher.EXPECT().Hash(mock.Anything).Return(nil, domainerrors.ErrPasswordUnusable)

	_, err := f.service.Signup(context.Background(), usecase.SignupInput{Username: "ash", Password: "pw"})

	var appErr domainerrors.AppError
	require.True(t, errors.As(err, &appErr))
	assert.Equal(t, domainerrors.ErrPasswordUnusable.HTTPCode(), appErr.HTTPCode())
}

func TestAccountService_Login(t *testing.T) {
	stored := &entity.User{ID: 3, Username: "ash"}
	stored.RestorePasswordSecret([]byte("hashed"))

	tests := []struct {
		name    string
		findErr error
		match   bool
		wantErr error
	}{
		{name: "success", match: true},
		{name: "wrong password", match: false, wantErr: domainerrors.ErrInvalidCredentials},
		{name: "unknown user", findErr: repository.ErrUserNotFound, wantErr: domainerrors.ErrInvalidCredentials},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newAccountFixture(t)
			ctx := context.Background()

			expectTx(t, f.txManager, func(factory *mockRepo.MockRepositoryFactory) {
				userRepo := mockRepo.NewMockUserRepository(t)
				factory.EXPECT().UserRepo().Return(userRepo)
				if tt.findErr != nil {
					userRepo.EXPECT().FindByUsername(ctx, "ash").Return(nil, tt.findErr)
				} else {
					userRepo.EXPECT().FindByUsername(ctx, "ash").Return(stored, nil)
				}
			})
			if tt.findErr == nil {
				f.hasher.EXPECT().Check([]byte("hashed"), "pw").Return(tt.match)
			}

			user, err := f.service.Login(ctx, usecase.LoginInput{Username: "ash", Password: "pw"})

			if tt.wantErr != nil {
				assert.Nil(t, user)
				assert.ErrorIs(t, err, tt.wantErr)

				return
			}
			require.NoError(t, err)
			assert.Equal(t, stored.ID, user.ID)
		})
	}
}

func TestAccountService_Login_NoStoredSecret(t *testing.T) {
	f := newAccountFixture(t)
	ctx := context.Background()

	expectTx(t, f.txManager, func(factory *mockRepo.MockRepositoryFactory) {
		userRepo := mockRepo.NewMockUserRepository(t)
		factory.EXPECT().UserRepo().Return(userRepo)
		userRepo.EXPECT().FindByUsername(ctx, "ash").Return(&entity.User{ID: 1, Username: "ash"}, nil)
	})

	_, err := f.service.Login(ctx, usecase.LoginInput{Username: "ash", Password: "anything"})

	assert.ErrorIs(t, err, domainerrors.ErrInvalidCredentials)
}

func TestAccountService_CurrentUser(t *testing.T) {
	t.Run("found", func(t *testing.T) {
		f := newAccountFixture(t)
		ctx := context.Background()
		expectTx(t, f.txManager, func(factory *mockRepo.MockRepositoryFactory) {
			userRepo := mockRepo.NewMockUserRepository(t)
			factory.EXPECT().UserRepo().Return(userRepo)
			userRepo.EXPECT().FindByID(ctx, uint(5)).Return(&entity.User{ID: 5, Username: "ash"}, nil)
		})

		user, err := f.service.CurrentUser(ctx, 5)
		require.NoError(t, err)
		assert.Equal(t, "ash", user.Username)
	})

	t.Run("vanished user is not authorized", func(t *testing.T) {
		f := newAccountFixture(t)
		ctx := context.Background()
		expectTx(t, f.txManager, func(factory *mockRepo.MockRepositoryFactory) {
			userRepo := mockRepo.NewMockUserRepository(t)
			factory.EXPECT().UserRepo().Return(userRepo)
			userRepo.EXPECT().FindByID(ctx, uint(5)).Return(nil, repository.ErrUserNotFound)
		})

		_, err := f.service.CurrentUser(ctx, 5)
		assert.ErrorIs(t, err, domainerrors.ErrNotAuthorized)
	})
}
