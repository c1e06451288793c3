package usecase

import (
	"context"
	"errors"
	"testing"

	"collab-srv/internal/model"
	"collab-srv/internal/preference"
	"collab-srv/internal/preference/repository"
	"collab-srv/pkg/log"
)

type fakeRepo struct {
	prefs       map[string]model.Preference
	getErr      error
	upsertCalls int
}

func newFakeRepo() *fakeRepo {
	return &fakeRepo{prefs: map[string]model.Preference{}}
}

func (f *fakeRepo) GetPreferenceByUserID(_ context.Context, userID string) (model.Preference, error) {
	if f.getErr != nil {
		return model.Preference{}, f.getErr
	}
	pref, ok := f.prefs[userID]
	if !ok {
		return model.Preference{}, repository.ErrNotFound
	}
	return pref, nil
}

func (f *fakeRepo) UpsertPreference(_ context.Context, opt repository.UpsertPreferenceOptions) (model.Preference, error) {
	f.upsertCalls++
	pref := model.Preference{
		ID:                   "pref-1",
		UserID:               opt.UserID,
		ContentPreferences:   opt.ContentPreferences,
		MonetaryBaseline:     opt.MonetaryBaseline,
		ContentLength:        opt.ContentLength,
		AdditionalGuidelines: opt.AdditionalGuidelines,
	}
	f.prefs[opt.UserID] = pref
	return pref, nil
}

func TestResolve(t *testing.T) {
	t.Run("saved policy wins", func(t *testing.T) {
		repo := newFakeRepo()
		repo.prefs["inf-1"] = model.Preference{UserID: "inf-1", ContentPreferences: "Tech", MonetaryBaseline: 900, ContentLength: "60s"}
		uc := New(repo, log.NewNop())

		pref, err := uc.Resolve(context.Background(), "inf-1")
		if err != nil {
			t.Fatalf("Resolve returned error: %v", err)
		}
		if pref.MonetaryBaseline != 900 {
			t.Errorf("baseline = %d, want 900", pref.MonetaryBaseline)
		}
	})

	t.Run("missing policy yields the default without a write", func(t *testing.T) {
		repo := newFakeRepo()
		uc := New(repo, log.NewNop())

		pref, err := uc.Resolve(context.Background(), "inf-2")
		if err != nil {
			t.Fatalf("Resolve returned error: %v", err)
		}
		if pref.ContentPreferences != preference.DefaultContentPreferences {
			t.Errorf("content preferences = %q", pref.ContentPreferences)
		}
		if pref.MonetaryBaseline != preference.DefaultMonetaryBaseline {
			t.Errorf("baseline = %d, want %d", pref.MonetaryBaseline, preference.DefaultMonetaryBaseline)
		}
		if pref.ContentLength != preference.DefaultContentLength {
			t.Errorf("content length = %q", pref.ContentLength)
		}
		if pref.UserID != "inf-2" {
			t.Errorf("user id = %q", pref.UserID)
		}
		if repo.upsertCalls != 0 {
			t.Error("the default path must never write to storage")
		}
	})

	t.Run("storage failure propagates", func(t *testing.T) {
		repo := newFakeRepo()
		repo.getErr = errors.New("connection refused")
		uc := New(repo, log.NewNop())

		if _, err := uc.Resolve(context.Background(), "inf-1"); err == nil {
			t.Error("expected the storage error to propagate")
		}
	})
}

func TestUpsert(t *testing.T) {
	sc := model.Scope{UserID: "inf-1"}

	t.Run("valid input persists", func(t *testing.T) {
		repo := newFakeRepo()
		uc := New(repo, log.NewNop())

		out, err := uc.Upsert(context.Background(), sc, preference.UpsertInput{
			ContentPreferences: "Tech reviews",
			MonetaryBaseline:   750,
			ContentLength:      "60-90s",
		})
		if err != nil {
			t.Fatalf("Upsert returned error: %v", err)
		}
		if out.UserID != "inf-1" || out.MonetaryBaseline != 750 {
			t.Errorf("unexpected output: %+v", out)
		}
		if repo.upsertCalls != 1 {
			t.Errorf("upsert calls = %d, want 1", repo.upsertCalls)
		}
	})

	t.Run("validation", func(t *testing.T) {
		repo := newFakeRepo()
		uc := New(repo, log.NewNop())

		cases := []struct {
			name  string
			input preference.UpsertInput
			want  error
		}{
			{"missing content preferences", preference.UpsertInput{MonetaryBaseline: 100, ContentLength: "60s"}, preference.ErrContentPreferencesRequired},
			{"zero baseline", preference.UpsertInput{ContentPreferences: "Tech", ContentLength: "60s"}, preference.ErrInvalidBaseline},
			{"negative baseline", preference.UpsertInput{ContentPreferences: "Tech", MonetaryBaseline: -5, ContentLength: "60s"}, preference.ErrInvalidBaseline},
			{"missing content length", preference.UpsertInput{ContentPreferences: "Tech", MonetaryBaseline: 100}, preference.ErrContentLengthRequired},
		}
		for _, tc := range cases {
			t.Run(tc.name, func(t *testing.T) {
				if _, err := uc.Upsert(context.Background(), sc, tc.input); !errors.Is(err, tc.want) {
					t.Errorf("err = %v, want %v", err, tc.want)
				}
			})
		}
		if repo.upsertCalls != 0 {
			t.Error("invalid input must not reach storage")
		}
	})
}

func TestGet(t *testing.T) {
	t.Run("not found maps to domain error", func(t *testing.T) {
		uc := New(newFakeRepo(), log.NewNop())

		_, err := uc.Get(context.Background(), model.Scope{UserID: "inf-9"})
		if !errors.Is(err, preference.ErrNotFound) {
			t.Errorf("err = %v, want ErrNotFound", err)
		}
	})
}
