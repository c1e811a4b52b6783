package service

import (
	"context"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"golang.org/x/crypto/bcrypt"

	"library-manager/internal/errs"
	"library-manager/internal/model"
	"library-manager/pkg/auth"
)

const bcryptCost = 10

func (s *Service) SignUp(ctx context.Context, req model.SignUpRequest) (model.Message, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcryptCost)
	if err != nil {
		return model.Message{}, errors.Wrap(err, "hash password")
	}
	admin := model.Admin{
		ID:           uuid.New().String(),
		FirstName:    req.FirstName,
		LastName:     req.LastName,
		Email:        req.Email,
		PasswordHash: string(hash),
	}
	if err := s.repo.CreateAdmin(ctx, admin); err != nil {
		if errors.Is(err, errs.ErrAlreadyExists) {
			return model.Message{}, errs.WithKey(errs.ErrAlreadyExists, "admin.emailExists")
		}
		return model.Message{}, err
	}
	return model.Message{Message: s.tr.Resolve("admin.adminCreated")}, nil
}

func (s *Service) SignIn(ctx context.Context, req model.SignInRequest) (model.SignInResponse, error) {
	admin, err := s.repo.GetAdminByEmail(ctx, req.Email)
	if err != nil {
		if errors.Is(err, errs.ErrNotFound) {
			return model.SignInResponse{}, errs.WithKey(errs.ErrNotFound, "admin.emailNotFound")
		}
		return model.SignInResponse{}, err
	}
	if err := bcrypt.CompareHashAndPassword([]byte(admin.PasswordHash), []byte(req.Password)); err != nil {
		return model.SignInResponse{}, errs.WithKey(errs.ErrUnauthorized, "admin.invalidCredentials")
	}

	accessToken, err := s.tokens.NewAccessToken(admin.ID, admin.FirstName, admin.LastName)
	if err != nil {
		return model.SignInResponse{}, errors.Wrap(err, "access token")
	}
	refreshToken, err := s.tokens.NewRefreshToken(admin.ID, admin.FirstName, admin.LastName)
	if err != nil {
		return model.SignInResponse{}, errors.Wrap(err, "refresh token")
	}

	return model.SignInResponse{
		Message:      s.tr.Resolve("admin.welcome") + " " + admin.FirstName,
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
	}, nil
}

// RefreshToken exchanges a valid refresh token for a fresh access
// token. Any verification failure is terminal for the session.
func (s *Service) RefreshToken(_ context.Context, req model.RefreshTokenRequest) (model.RefreshTokenResponse, error) {
	claims, err := s.tokens.ParseRefreshToken(req.RefreshToken)
	if err != nil {
		return model.RefreshTokenResponse{}, errs.WithKey(errs.ErrUnauthorized, "auth.sessionExpired")
	}
	accessToken, err := s.tokens.NewAccessToken(claims.UserID, claims.FirstName, claims.LastName)
	if err != nil {
		return model.RefreshTokenResponse{}, errors.Wrap(err, "access token")
	}
	return model.RefreshTokenResponse{AccessToken: accessToken}, nil
}

func (s *Service) GetAdminData(ctx context.Context) (model.Admin, error) {
	claims, err := auth.FromContext(ctx)
	if err != nil {
		return model.Admin{}, errs.WithKey(errs.ErrUnauthorized, "auth.unauthorized")
	}
	admin, err := s.repo.GetAdmin(ctx, claims.UserID)
	if err != nil {
		if errors.Is(err, errs.ErrNotFound) {
			return model.Admin{}, errs.WithKey(errs.ErrUnauthorized, "auth.unauthorized")
		}
		return model.Admin{}, err
	}
	return admin, nil
}

func (s *Service) UpdateAdminInfo(ctx context.Context, req model.UpdateAdminRequest) (model.Message, error) {
	claims, err := auth.FromContext(ctx)
	if err != nil {
		return model.Message{}, errs.WithKey(errs.ErrUnauthorized, "auth.unauthorized")
	}
	if err := s.repo.UpdateAdmin(ctx, claims.UserID, req); err != nil {
		switch {
		case errors.Is(err, errs.ErrNotFound):
			return model.Message{}, errs.WithKey(errs.ErrUnauthorized, "auth.unauthorized")
		case errors.Is(err, errs.ErrAlreadyExists):
			return model.Message{}, errs.WithKey(errs.ErrAlreadyExists, "admin.emailExists")
		}
		return model.Message{}, err
	}
	return model.Message{Message: s.tr.Resolve("admin.infoUpdated")}, nil
}

func (s *Service) UpdateAdminPassword(ctx context.Context, req model.UpdatePasswordRequest) (model.Message, error) {
	claims, err := auth.FromContext(ctx)
	if err != nil {
		return model.Message{}, errs.WithKey(errs.ErrUnauthorized, "auth.unauthorized")
	}
	if req.Password != req.ConfirmPassword {
		return model.Message{}, errs.WithKey(errs.ErrBadRequest, "validation.confirmPassword.invalidConfirmPassword")
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcryptCost)
	if err != nil {
		return model.Message{}, errors.Wrap(err, "hash password")
	}
	if err := s.repo.UpdateAdminPassword(ctx, claims.UserID, string(hash)); err != nil {
		if errors.Is(err, errs.ErrNotFound) {
			return model.Message{}, errs.WithKey(errs.ErrUnauthorized, "auth.unauthorized")
		}
		return model.Message{}, err
	}
	return model.Message{Message: s.tr.Resolve("admin.passwordUpdated")}, nil
}

func (s *Service) DeleteAdmin(ctx context.Context) (model.Message, error) {
	claims, err := auth.FromContext(ctx)
	if err != nil {
		return model.Message{}, errs.WithKey(errs.ErrUnauthorized, "auth.unauthorized")
	}
	if err := s.repo.DeleteAdmin(ctx, claims.UserID); err != nil {
		if errors.Is(err, errs.ErrNotFound) {
			return model.Message{}, errs.WithKey(errs.ErrNotFound, "admin.adminNotFound")
		}
		return model.Message{}, err
	}
	return model.Message{Message: s.tr.Resolve("admin.adminDeleted")}, nil
}
