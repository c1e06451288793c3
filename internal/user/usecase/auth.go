package usecase

import (
	"context"
	"errors"
	"strings"

	"collab-srv/internal/model"
	"collab-srv/internal/user"
	"collab-srv/internal/user/repository"
	"collab-srv/pkg/jwt"
	"collab-srv/pkg/locale"

	"golang.org/x/crypto/bcrypt"
)

// Register - Create a local account and issue a token
func (uc *implUseCase) Register(ctx context.Context, input user.RegisterInput) (user.AuthOutput, error) {
	email := strings.ToLower(strings.TrimSpace(input.Email))
	if email == "" {
		return user.AuthOutput{}, user.ErrEmailRequired
	}
	if len(input.Password) < user.MinPasswordLength {
		return user.AuthOutput{}, user.ErrPasswordTooShort
	}

	if _, err := uc.repo.GetUserByEmail(ctx, email); err == nil {
		return user.AuthOutput{}, user.ErrEmailTaken
	} else if !errors.Is(err, repository.ErrNotFound) {
		uc.l.Errorf(ctx, "user.usecase.Register: GetUserByEmail failed: %v", err)
		return user.AuthOutput{}, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(input.Password), user.BcryptCost)
	if err != nil {
		uc.l.Errorf(ctx, "user.usecase.Register: bcrypt failed: %v", err)
		return user.AuthOutput{}, err
	}

	lang := locale.ParseLang(input.Language)
	userType := model.UserTypeInfluencer
	if input.UserType == model.UserTypeBusiness {
		userType = model.UserTypeBusiness
	}

	u, err := uc.repo.CreateUser(ctx, repository.CreateUserOptions{
		Email:              email,
		PasswordHash:       string(hash),
		LanguagePreference: lang,
		UserType:           userType,
	})
	if err != nil {
		if errors.Is(err, repository.ErrDuplicate) {
			return user.AuthOutput{}, user.ErrEmailTaken
		}
		uc.l.Errorf(ctx, "user.usecase.Register: CreateUser failed: %v", err)
		return user.AuthOutput{}, err
	}

	return uc.newAuthOutput(ctx, u)
}

// Login - Verify credentials and issue a token
func (uc *implUseCase) Login(ctx context.Context, input user.LoginInput) (user.AuthOutput, error) {
	email := strings.ToLower(strings.TrimSpace(input.Email))
	if email == "" || input.Password == "" {
		return user.AuthOutput{}, user.ErrInvalidCredentials
	}

	u, err := uc.repo.GetUserByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return user.AuthOutput{}, user.ErrInvalidCredentials
		}
		uc.l.Errorf(ctx, "user.usecase.Login: GetUserByEmail failed: %v", err)
		return user.AuthOutput{}, err
	}

	if u.PasswordHash == "" {
		return user.AuthOutput{}, user.ErrInvalidCredentials
	}
	if err := bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(input.Password)); err != nil {
		return user.AuthOutput{}, user.ErrInvalidCredentials
	}

	// Portal check: a business account cannot enter through the influencer
	// portal and vice versa.
	if input.UserType != "" && input.UserType != u.UserType {
		return user.AuthOutput{}, user.ErrWrongPortal
	}

	return uc.newAuthOutput(ctx, u)
}

func (uc *implUseCase) newAuthOutput(ctx context.Context, u model.User) (user.AuthOutput, error) {
	token, err := uc.jwt.Issue(jwt.Payload{
		UserID:   u.ID,
		Username: u.Username,
		Email:    u.Email,
		UserType: u.UserType,
	})
	if err != nil {
		uc.l.Errorf(ctx, "user.usecase.newAuthOutput: token issue failed: %v", err)
		return user.AuthOutput{}, err
	}

	return user.AuthOutput{User: newUserOutput(u), Token: token}, nil
}
