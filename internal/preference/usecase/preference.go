package usecase

import (
	"context"
	"errors"

	"collab-srv/internal/model"
	"collab-srv/internal/preference"
	"collab-srv/internal/preference/repository"
)

// Get - Read the influencer's own policy
func (uc *implUseCase) Get(ctx context.Context, sc model.Scope) (preference.PreferenceOutput, error) {
	pref, err := uc.repo.GetPreferenceByUserID(ctx, sc.UserID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return preference.PreferenceOutput{}, preference.ErrNotFound
		}
		uc.l.Errorf(ctx, "preference.usecase.Get: GetPreferenceByUserID failed: %v", err)
		return preference.PreferenceOutput{}, err
	}

	return newOutput(pref), nil
}

// Upsert - Save the influencer's policy, one row per user
func (uc *implUseCase) Upsert(ctx context.Context, sc model.Scope, input preference.UpsertInput) (preference.PreferenceOutput, error) {
	if err := validateUpsertInput(input); err != nil {
		return preference.PreferenceOutput{}, err
	}

	pref, err := uc.repo.UpsertPreference(ctx, repository.UpsertPreferenceOptions{
		UserID:               sc.UserID,
		ContentPreferences:   input.ContentPreferences,
		MonetaryBaseline:     input.MonetaryBaseline,
		ContentLength:        input.ContentLength,
		AdditionalGuidelines: input.AdditionalGuidelines,
	})
	if err != nil {
		uc.l.Errorf(ctx, "preference.usecase.Upsert: UpsertPreference failed: %v", err)
		return preference.PreferenceOutput{}, err
	}

	return newOutput(pref), nil
}

// Resolve - Saved policy, or the fixed default without touching storage
func (uc *implUseCase) Resolve(ctx context.Context, influencerID string) (model.Preference, error) {
	pref, err := uc.repo.GetPreferenceByUserID(ctx, influencerID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return preference.Default(influencerID), nil
		}
		uc.l.Errorf(ctx, "preference.usecase.Resolve: GetPreferenceByUserID failed: %v", err)
		return model.Preference{}, err
	}

	return pref, nil
}

func validateUpsertInput(input preference.UpsertInput) error {
	if input.ContentPreferences == "" {
		return preference.ErrContentPreferencesRequired
	}
	if input.MonetaryBaseline <= 0 {
		return preference.ErrInvalidBaseline
	}
	if input.ContentLength == "" {
		return preference.ErrContentLengthRequired
	}
	if len(input.ContentPreferences) > preference.MaxContentPreferencesLength ||
		len(input.AdditionalGuidelines) > preference.MaxAdditionalGuidelinesLength ||
		len(input.ContentLength) > preference.MaxContentLengthLength {
		return preference.ErrFieldTooLong
	}
	return nil
}

func newOutput(pref model.Preference) preference.PreferenceOutput {
	return preference.PreferenceOutput{
		ID:                   pref.ID,
		UserID:               pref.UserID,
		ContentPreferences:   pref.ContentPreferences,
		MonetaryBaseline:     pref.MonetaryBaseline,
		ContentLength:        pref.ContentLength,
		AdditionalGuidelines: pref.AdditionalGuidelines,
		CreatedAt:            pref.CreatedAt,
		UpdatedAt:            pref.UpdatedAt,
	}
}
