package http

import (
	"time"

	"collab-srv/internal/user"
)

type registerReq struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
	UserType string `json:"userType"`
	Language string `json:"language"`
}

func (req registerReq) toInput() user.RegisterInput {
	return user.RegisterInput{
		Email:    req.Email,
		Password: req.Password,
		UserType: req.UserType,
		Language: req.Language,
	}
}

type loginReq struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
	UserType string `json:"userType"`
}

func (req loginReq) toInput() user.LoginInput {
	return user.LoginInput{
		Email:    req.Email,
		Password: req.Password,
		UserType: req.UserType,
	}
}

type updateLanguageReq struct {
	Language string `json:"language" binding:"required"`
}

type updateUsernameReq struct {
	Username string `json:"username" binding:"required"`
}

type userResp struct {
	ID                 string `json:"id"`
	Email              string `json:"email,omitempty"`
	Username           string `json:"username,omitempty"`
	FirstName          string `json:"firstName,omitempty"`
	LastName           string `json:"lastName,omitempty"`
	ProfileImageURL    string `json:"profileImageUrl,omitempty"`
	LanguagePreference string `json:"languagePreference"`
	UserType           string `json:"userType"`
	CreatedAt          string `json:"createdAt,omitempty"`
	UpdatedAt          string `json:"updatedAt,omitempty"`
}

func (h *handler) newUserResp(o user.UserOutput) userResp {
	resp := userResp{
		ID:                 o.ID,
		Email:              o.Email,
		Username:           o.Username,
		FirstName:          o.FirstName,
		LastName:           o.LastName,
		ProfileImageURL:    o.ProfileImageURL,
		LanguagePreference: o.LanguagePreference,
		UserType:           o.UserType,
	}
	if !o.CreatedAt.IsZero() {
		resp.CreatedAt = o.CreatedAt.Format(time.RFC3339)
	}
	if !o.UpdatedAt.IsZero() {
		resp.UpdatedAt = o.UpdatedAt.Format(time.RFC3339)
	}
	return resp
}

type profileResp struct {
	ID                 string `json:"id"`
	Username           string `json:"username"`
	FirstName          string `json:"firstName,omitempty"`
	LastName           string `json:"lastName,omitempty"`
	ProfileImageURL    string `json:"profileImageUrl,omitempty"`
	LanguagePreference string `json:"languagePreference"`
}

func (h *handler) newProfileResp(o user.ProfileOutput) profileResp {
	return profileResp{
		ID:                 o.ID,
		Username:           o.Username,
		FirstName:          o.FirstName,
		LastName:           o.LastName,
		ProfileImageURL:    o.ProfileImageURL,
		LanguagePreference: o.LanguagePreference,
	}
}
