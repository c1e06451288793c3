package usecase

import (
	"context"
	"errors"
	"testing"

	"collab-srv/internal/model"
	"collab-srv/internal/user"
	"collab-srv/pkg/log"
)

func TestUpdateUsername(t *testing.T) {
	sc := model.Scope{UserID: "u1"}

	newRepo := func() *fakeRepo {
		repo := newFakeRepo()
		repo.add(model.User{ID: "u1", Email: "ada@example.com", Username: "ada"})
		repo.add(model.User{ID: "u2", Email: "bob@example.com", Username: "bob"})
		return repo
	}

	t.Run("claims a free username", func(t *testing.T) {
		repo := newRepo()
		uc := New(repo, testJWT(t), log.NewNop())

		out, err := uc.UpdateUsername(context.Background(), sc, " Ada-Chen ")
		if err != nil {
			t.Fatalf("UpdateUsername returned error: %v", err)
		}
		if out.Username != "ada-chen" {
			t.Errorf("username = %q, want lowercased trimmed", out.Username)
		}
	})

	t.Run("unchanged username is a no-op", func(t *testing.T) {
		repo := newRepo()
		uc := New(repo, testJWT(t), log.NewNop())

		out, err := uc.UpdateUsername(context.Background(), sc, "ada")
		if err != nil {
			t.Fatalf("UpdateUsername returned error: %v", err)
		}
		if out.Username != "ada" {
			t.Errorf("username = %q", out.Username)
		}
		if repo.updateUsernameCalls != 0 {
			t.Error("unchanged username must not write to storage")
		}
	})

	t.Run("taken username conflicts", func(t *testing.T) {
		repo := newRepo()
		uc := New(repo, testJWT(t), log.NewNop())

		_, err := uc.UpdateUsername(context.Background(), sc, "bob")
		if !errors.Is(err, user.ErrUsernameTaken) {
			t.Errorf("err = %v, want ErrUsernameTaken", err)
		}
	})

	t.Run("format rules", func(t *testing.T) {
		repo := newRepo()
		uc := New(repo, testJWT(t), log.NewNop())

		for _, bad := range []string{"ab", "has space", "Ada!", "a-very-long-username-way-past-thirty-chars"} {
			if _, err := uc.UpdateUsername(context.Background(), sc, bad); !errors.Is(err, user.ErrInvalidUsername) {
				t.Errorf("UpdateUsername(%q) err = %v, want ErrInvalidUsername", bad, err)
			}
		}
	})
}

func TestUpdateLanguage(t *testing.T) {
	sc := model.Scope{UserID: "u1"}

	repo := newFakeRepo()
	repo.add(model.User{ID: "u1", Email: "ada@example.com", LanguagePreference: "en"})
	uc := New(repo, testJWT(t), log.NewNop())

	t.Run("switches to chinese", func(t *testing.T) {
		out, err := uc.UpdateLanguage(context.Background(), sc, "ZH")
		if err != nil {
			t.Fatalf("UpdateLanguage returned error: %v", err)
		}
		if out.LanguagePreference != "zh" {
			t.Errorf("language = %q, want zh", out.LanguagePreference)
		}
	})

	t.Run("rejects unsupported codes strictly", func(t *testing.T) {
		for _, bad := range []string{"fr", "zh-CN", "english", ""} {
			if _, err := uc.UpdateLanguage(context.Background(), sc, bad); !errors.Is(err, user.ErrUnsupportedLanguage) {
				t.Errorf("UpdateLanguage(%q) err = %v, want ErrUnsupportedLanguage", bad, err)
			}
		}
	})
}

func TestGetProfileByUsername(t *testing.T) {
	repo := newFakeRepo()
	repo.add(model.User{
		ID:           "u1",
		Email:        "ada@example.com",
		Username:     "ada",
		FirstName:    "Ada",
		PasswordHash: "secret-hash",
	})
	uc := New(repo, testJWT(t), log.NewNop())

	t.Run("public subset only", func(t *testing.T) {
		profile, err := uc.GetProfileByUsername(context.Background(), " ADA ")
		if err != nil {
			t.Fatalf("GetProfileByUsername returned error: %v", err)
		}
		if profile.Username != "ada" || profile.FirstName != "Ada" {
			t.Errorf("unexpected profile: %+v", profile)
		}
	})

	t.Run("unknown username", func(t *testing.T) {
		if _, err := uc.GetProfileByUsername(context.Background(), "ghost"); !errors.Is(err, user.ErrNotFound) {
			t.Errorf("err = %v, want ErrNotFound", err)
		}
	})
}
