package usecase

import (
	"context"
	"errors"
	"strings"

	"collab-srv/internal/model"
	"collab-srv/internal/user"
	"collab-srv/internal/user/repository"
	"collab-srv/pkg/locale"
)

// GetMe - The authenticated user's own record
func (uc *implUseCase) GetMe(ctx context.Context, sc model.Scope) (user.UserOutput, error) {
	u, err := uc.repo.GetUserByID(ctx, sc.UserID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return user.UserOutput{}, user.ErrNotFound
		}
		uc.l.Errorf(ctx, "user.usecase.GetMe: GetUserByID failed: %v", err)
		return user.UserOutput{}, err
	}
	return newUserOutput(u), nil
}

// GetProfileByUsername - Public subset for the inquiry form page
func (uc *implUseCase) GetProfileByUsername(ctx context.Context, username string) (user.ProfileOutput, error) {
	u, err := uc.repo.GetUserByUsername(ctx, strings.ToLower(strings.TrimSpace(username)))
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return user.ProfileOutput{}, user.ErrNotFound
		}
		uc.l.Errorf(ctx, "user.usecase.GetProfileByUsername: GetUserByUsername failed: %v", err)
		return user.ProfileOutput{}, err
	}

	return user.ProfileOutput{
		ID:                 u.ID,
		Username:           u.Username,
		FirstName:          u.FirstName,
		LastName:           u.LastName,
		ProfileImageURL:    u.ProfileImageURL,
		LanguagePreference: u.LanguagePreference,
	}, nil
}

// GetByID - Internal lookup for other domains
func (uc *implUseCase) GetByID(ctx context.Context, id string) (model.User, error) {
	u, err := uc.repo.GetUserByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return model.User{}, user.ErrNotFound
		}
		return model.User{}, err
	}
	return u, nil
}

// UpdateLanguage - Persist the UI/agent language preference
func (uc *implUseCase) UpdateLanguage(ctx context.Context, sc model.Scope, language string) (user.UserOutput, error) {
	lang := strings.ToLower(strings.TrimSpace(language))
	if !locale.IsValidLang(lang) {
		return user.UserOutput{}, user.ErrUnsupportedLanguage
	}

	u, err := uc.repo.UpdateLanguage(ctx, sc.UserID, lang)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return user.UserOutput{}, user.ErrNotFound
		}
		uc.l.Errorf(ctx, "user.usecase.UpdateLanguage: UpdateLanguage failed: %v", err)
		return user.UserOutput{}, err
	}
	return newUserOutput(u), nil
}

// UpdateUsername - Claim or change the public username
func (uc *implUseCase) UpdateUsername(ctx context.Context, sc model.Scope, username string) (user.UserOutput, error) {
	username = strings.ToLower(strings.TrimSpace(username))
	if !user.ValidUsername(username) {
		return user.UserOutput{}, user.ErrInvalidUsername
	}

	// Unchanged username is a no-op, no storage write.
	current, err := uc.repo.GetUserByID(ctx, sc.UserID)
	if err == nil && current.Username == username {
		return newUserOutput(current), nil
	}

	existing, err := uc.repo.GetUserByUsername(ctx, username)
	if err == nil && existing.ID != sc.UserID {
		return user.UserOutput{}, user.ErrUsernameTaken
	} else if err != nil && !errors.Is(err, repository.ErrNotFound) {
		uc.l.Errorf(ctx, "user.usecase.UpdateUsername: GetUserByUsername failed: %v", err)
		return user.UserOutput{}, err
	}

	u, err := uc.repo.UpdateUsername(ctx, sc.UserID, username)
	if err != nil {
		switch {
		case errors.Is(err, repository.ErrNotFound):
			return user.UserOutput{}, user.ErrNotFound
		case errors.Is(err, repository.ErrDuplicate):
			return user.UserOutput{}, user.ErrUsernameTaken
		}
		uc.l.Errorf(ctx, "user.usecase.UpdateUsername: UpdateUsername failed: %v", err)
		return user.UserOutput{}, err
	}
	return newUserOutput(u), nil
}

func newUserOutput(u model.User) user.UserOutput {
	return user.UserOutput{
		ID:                 u.ID,
		Email:              u.Email,
		Username:           u.Username,
		FirstName:          u.FirstName,
		LastName:           u.LastName,
		ProfileImageURL:    u.ProfileImageURL,
		LanguagePreference: u.LanguagePreference,
		UserType:           u.UserType,
		CreatedAt:          u.CreatedAt,
		UpdatedAt:          u.UpdatedAt,
	}
}
