package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"collab-srv/internal/model"
	"collab-srv/internal/user"
	"collab-srv/internal/user/repository"
	"collab-srv/pkg/jwt"
	"collab-srv/pkg/locale"
	"collab-srv/pkg/log"

	"golang.org/x/crypto/bcrypt"
)

type fakeRepo struct {
	byID       map[string]model.User
	byEmail    map[string]model.User
	byUsername map[string]model.User

	createCalls         int
	updateUsernameCalls int
	updateUsernameErr   error
}

func newFakeRepo() *fakeRepo {
	return &fakeRepo{
		byID:       map[string]model.User{},
		byEmail:    map[string]model.User{},
		byUsername: map[string]model.User{},
	}
}

func (f *fakeRepo) add(u model.User) {
	f.byID[u.ID] = u
	if u.Email != "" {
		f.byEmail[u.Email] = u
	}
	if u.Username != "" {
		f.byUsername[u.Username] = u
	}
}

func (f *fakeRepo) CreateUser(_ context.Context, opt repository.CreateUserOptions) (model.User, error) {
	f.createCalls++
	if _, ok := f.byEmail[opt.Email]; ok {
		return model.User{}, repository.ErrDuplicate
	}
	u := model.User{
		ID:                 "user-new",
		Email:              opt.Email,
		PasswordHash:       opt.PasswordHash,
		LanguagePreference: opt.LanguagePreference,
		UserType:           opt.UserType,
	}
	f.add(u)
	return u, nil
}

func (f *fakeRepo) GetUserByID(_ context.Context, id string) (model.User, error) {
	u, ok := f.byID[id]
	if !ok {
		return model.User{}, repository.ErrNotFound
	}
	return u, nil
}

func (f *fakeRepo) GetUserByEmail(_ context.Context, email string) (model.User, error) {
	u, ok := f.byEmail[email]
	if !ok {
		return model.User{}, repository.ErrNotFound
	}
	return u, nil
}

func (f *fakeRepo) GetUserByUsername(_ context.Context, username string) (model.User, error) {
	u, ok := f.byUsername[username]
	if !ok {
		return model.User{}, repository.ErrNotFound
	}
	return u, nil
}

func (f *fakeRepo) UpdateLanguage(_ context.Context, userID, language string) (model.User, error) {
	u, ok := f.byID[userID]
	if !ok {
		return model.User{}, repository.ErrNotFound
	}
	u.LanguagePreference = language
	f.byID[userID] = u
	return u, nil
}

func (f *fakeRepo) UpdateUsername(_ context.Context, userID, username string) (model.User, error) {
	f.updateUsernameCalls++
	if f.updateUsernameErr != nil {
		return model.User{}, f.updateUsernameErr
	}
	u, ok := f.byID[userID]
	if !ok {
		return model.User{}, repository.ErrNotFound
	}
	u.Username = username
	f.add(u)
	return u, nil
}

func testJWT(t *testing.T) *jwt.Manager {
	t.Helper()
	mgr, err := jwt.New(jwt.Config{
		SecretKey: "0123456789abcdef0123456789abcdef",
		Issuer:    "collab-srv",
		Audience:  []string{"collab-web"},
		TTL:       time.Hour,
	})
	if err != nil {
		t.Fatalf("jwt.New: %v", err)
	}
	return mgr
}

func TestRegister(t *testing.T) {
	t.Run("creates an influencer account and issues a token", func(t *testing.T) {
		repo := newFakeRepo()
		uc := New(repo, testJWT(t), log.NewNop())

		out, err := uc.Register(context.Background(), user.RegisterInput{
			Email:    "  Ada@Example.COM ",
			Password: "hunter2hunter2",
			Language: "zh-CN",
		})
		if err != nil {
			t.Fatalf("Register returned error: %v", err)
		}

		if out.User.Email != "ada@example.com" {
			t.Errorf("email = %q, want normalized lowercase", out.User.Email)
		}
		if out.User.UserType != model.UserTypeInfluencer {
			t.Errorf("user type = %q, want influencer default", out.User.UserType)
		}
		if out.User.LanguagePreference != locale.ZH {
			t.Errorf("language = %q, want %q", out.User.LanguagePreference, locale.ZH)
		}
		if out.Token == "" {
			t.Error("expected a signed token")
		}

		stored := repo.byEmail["ada@example.com"]
		if err := bcrypt.CompareHashAndPassword([]byte(stored.PasswordHash), []byte("hunter2hunter2")); err != nil {
			t.Error("stored hash does not match the password")
		}
	})

	t.Run("existing email conflicts", func(t *testing.T) {
		repo := newFakeRepo()
		repo.add(model.User{ID: "u1", Email: "taken@example.com"})
		uc := New(repo, testJWT(t), log.NewNop())

		_, err := uc.Register(context.Background(), user.RegisterInput{
			Email:    "taken@example.com",
			Password: "hunter2hunter2",
		})
		if !errors.Is(err, user.ErrEmailTaken) {
			t.Errorf("err = %v, want ErrEmailTaken", err)
		}
		if repo.createCalls != 0 {
			t.Error("conflicting registration must not reach CreateUser")
		}
	})

	t.Run("short password", func(t *testing.T) {
		uc := New(newFakeRepo(), testJWT(t), log.NewNop())

		_, err := uc.Register(context.Background(), user.RegisterInput{
			Email:    "ada@example.com",
			Password: "short",
		})
		if !errors.Is(err, user.ErrPasswordTooShort) {
			t.Errorf("err = %v, want ErrPasswordTooShort", err)
		}
	})

	t.Run("missing email", func(t *testing.T) {
		uc := New(newFakeRepo(), testJWT(t), log.NewNop())

		_, err := uc.Register(context.Background(), user.RegisterInput{Password: "hunter2hunter2"})
		if !errors.Is(err, user.ErrEmailRequired) {
			t.Errorf("err = %v, want ErrEmailRequired", err)
		}
	})
}

func TestLogin(t *testing.T) {
	hash, err := bcrypt.GenerateFromPassword([]byte("hunter2hunter2"), bcrypt.MinCost)
	if err != nil {
		t.Fatalf("bcrypt: %v", err)
	}

	newRepoWithUser := func() *fakeRepo {
		repo := newFakeRepo()
		repo.add(model.User{
			ID:           "u1",
			Email:        "ada@example.com",
			PasswordHash: string(hash),
			UserType:     model.UserTypeInfluencer,
		})
		return repo
	}

	t.Run("valid credentials issue a token", func(t *testing.T) {
		uc := New(newRepoWithUser(), testJWT(t), log.NewNop())

		out, err := uc.Login(context.Background(), user.LoginInput{
			Email:    "Ada@Example.com",
			Password: "hunter2hunter2",
		})
		if err != nil {
			t.Fatalf("Login returned error: %v", err)
		}
		if out.User.ID != "u1" || out.Token == "" {
			t.Errorf("unexpected output: %+v", out)
		}
	})

	t.Run("wrong password", func(t *testing.T) {
		uc := New(newRepoWithUser(), testJWT(t), log.NewNop())

		_, err := uc.Login(context.Background(), user.LoginInput{
			Email:    "ada@example.com",
			Password: "not-the-password",
		})
		if !errors.Is(err, user.ErrInvalidCredentials) {
			t.Errorf("err = %v, want ErrInvalidCredentials", err)
		}
	})

	t.Run("unknown email reads as invalid credentials", func(t *testing.T) {
		uc := New(newRepoWithUser(), testJWT(t), log.NewNop())

		_, err := uc.Login(context.Background(), user.LoginInput{
			Email:    "nobody@example.com",
			Password: "hunter2hunter2",
		})
		if !errors.Is(err, user.ErrInvalidCredentials) {
			t.Errorf("err = %v, want ErrInvalidCredentials", err)
		}
	})

	t.Run("business portal rejects influencer accounts", func(t *testing.T) {
		uc := New(newRepoWithUser(), testJWT(t), log.NewNop())

		_, err := uc.Login(context.Background(), user.LoginInput{
			Email:    "ada@example.com",
			Password: "hunter2hunter2",
			UserType: model.UserTypeBusiness,
		})
		if !errors.Is(err, user.ErrWrongPortal) {
			t.Errorf("err = %v, want ErrWrongPortal", err)
		}
	})
}
