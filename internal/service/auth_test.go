package service_test

import (
	"context"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"

	"library-manager/internal/errs"
	"library-manager/internal/model"
	repo_mocks "library-manager/internal/repository/mocks"
	"library-manager/internal/service"
	"library-manager/locales"
	"library-manager/pkg/auth"
	"library-manager/pkg/i18n"
)

func newTestAuthService(t *testing.T, repo *repo_mocks.MockRepository) *service.Service {
	t.Helper()
	tr, err := i18n.NewTranslator(locales.FS, "en")
	require.NoError(t, err)
	tokens := auth.NewTokenManager(auth.Config{
		AccessSecret:    "access-secret",
		RefreshSecret:   "refresh-secret",
		AccessLifetime:  time.Minute,
		RefreshLifetime: time.Hour,
	})
	log := zap.NewExample().Named("test")
	return service.NewService(repo, tokens, tr, nil, t.TempDir(), log)
}

func TestService_SignUp(t *testing.T) {
	t.Parallel()
	req := model.SignUpRequest{
		FirstName: "Jan",
		LastName:  "Kowalski",
		Email:     "jan@example.com",
		Password:  "secret123",
	}

	c := gomock.NewController(t)
	defer c.Finish()
	repo := repo_mocks.NewMockRepository(c)
	repo.EXPECT().
		CreateAdmin(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, admin model.Admin) error {
			require.Equal(t, req.Email, admin.Email)
			require.NoError(t, bcrypt.CompareHashAndPassword([]byte(admin.PasswordHash), []byte(req.Password)))
			return nil
		})
	svc := newTestAuthService(t, repo)

	msg, err := svc.SignUp(context.Background(), req)
	require.NoError(t, err)
	require.Equal(t, "Account created", msg.Message)
}

func TestService_SignUp_EmailTaken(t *testing.T) {
	t.Parallel()
	c := gomock.NewController(t)
	defer c.Finish()
	repo := repo_mocks.NewMockRepository(c)
	repo.EXPECT().CreateAdmin(gomock.Any(), gomock.Any()).Return(errs.ErrAlreadyExists)
	svc := newTestAuthService(t, repo)

	_, err := svc.SignUp(context.Background(), model.SignUpRequest{
		FirstName: "Jan",
		LastName:  "Kowalski",
		Email:     "jan@example.com",
		Password:  "secret123",
	})
	require.ErrorIs(t, err, errs.ErrAlreadyExists)
	require.Equal(t, "admin.emailExists", errs.MessageKey(err))
}

func TestService_SignIn(t *testing.T) {
	t.Parallel()
	hash, err := bcrypt.GenerateFromPassword([]byte("secret123"), bcrypt.DefaultCost)
	require.NoError(t, err)
	admin := model.Admin{
		ID:           testAdminID,
		FirstName:    "Jan",
		LastName:     "Kowalski",
		Email:        "jan@example.com",
		PasswordHash: string(hash),
	}

	var tests = []struct {
		name     string
		password string
		repoErr  error
		wantErr  error
	}{
		{
			name:     "ok",
			password: "secret123",
		},
		{
			name:     "err. wrong password",
			password: "wrong",
			wantErr:  errs.ErrUnauthorized,
		},
		{
			name:     "err. unknown email",
			password: "secret123",
			repoErr:  errs.ErrNotFound,
			wantErr:  errs.ErrNotFound,
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			c := gomock.NewController(t)
			defer c.Finish()
			repo := repo_mocks.NewMockRepository(c)
			if tt.repoErr != nil {
				repo.EXPECT().GetAdminByEmail(gomock.Any(), admin.Email).Return(model.Admin{}, tt.repoErr)
			} else {
				repo.EXPECT().GetAdminByEmail(gomock.Any(), admin.Email).Return(admin, nil)
			}
			svc := newTestAuthService(t, repo)

			resp, err := svc.SignIn(context.Background(), model.SignInRequest{
				Email:    admin.Email,
				Password: tt.password,
			})
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			require.Equal(t, "Welcome Jan", resp.Message)
			require.NotEmpty(t, resp.AccessToken)
			require.NotEmpty(t, resp.RefreshToken)
		})
	}
}

func TestService_RefreshToken(t *testing.T) {
	t.Parallel()
	c := gomock.NewController(t)
	defer c.Finish()
	repo := repo_mocks.NewMockRepository(c)
	svc := newTestAuthService(t, repo)

	tokens := auth.NewTokenManager(auth.Config{
		AccessSecret:    "access-secret",
		RefreshSecret:   "refresh-secret",
		AccessLifetime:  time.Minute,
		RefreshLifetime: time.Hour,
	})
	refresh, err := tokens.NewRefreshToken(testAdminID, "Jan", "Kowalski")
	require.NoError(t, err)

	resp, err := svc.RefreshToken(context.Background(), model.RefreshTokenRequest{RefreshToken: refresh})
	require.NoError(t, err)
	require.NotEmpty(t, resp.AccessToken)

	// an access token must not pass as a refresh token
	access, err := tokens.NewAccessToken(testAdminID, "Jan", "Kowalski")
	require.NoError(t, err)
	_, err = svc.RefreshToken(context.Background(), model.RefreshTokenRequest{RefreshToken: access})
	require.ErrorIs(t, err, errs.ErrUnauthorized)
}

func TestService_UpdateAdminPassword_ConfirmMismatch(t *testing.T) {
	t.Parallel()
	c := gomock.NewController(t)
	defer c.Finish()
	repo := repo_mocks.NewMockRepository(c)
	svc := newTestAuthService(t, repo)

	_, err := svc.UpdateAdminPassword(authCtx(), model.UpdatePasswordRequest{
		Password:        "secret123",
		ConfirmPassword: "secret124",
	})
	require.ErrorIs(t, err, errs.ErrBadRequest)
	require.Equal(t, "validation.confirmPassword.invalidConfirmPassword", errs.MessageKey(err))
}
