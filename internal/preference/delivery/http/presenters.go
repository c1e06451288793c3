package http

import (
	"time"

	"collab-srv/internal/preference"
)

type upsertPreferenceReq struct {
	ContentPreferences   string `json:"personalContentPreferences" binding:"required"`
	MonetaryBaseline     int    `json:"monetaryBaseline" binding:"required"`
	ContentLength        string `json:"contentLength" binding:"required"`
	AdditionalGuidelines string `json:"additionalGuidelines"`
}

func (req upsertPreferenceReq) toInput() preference.UpsertInput {
	return preference.UpsertInput{
		ContentPreferences:   req.ContentPreferences,
		MonetaryBaseline:     req.MonetaryBaseline,
		ContentLength:        req.ContentLength,
		AdditionalGuidelines: req.AdditionalGuidelines,
	}
}

type preferenceResp struct {
	ID                   string `json:"id"`
	UserID               string `json:"userId"`
	ContentPreferences   string `json:"personalContentPreferences"`
	MonetaryBaseline     int    `json:"monetaryBaseline"`
	ContentLength        string `json:"contentLength"`
	AdditionalGuidelines string `json:"additionalGuidelines,omitempty"`
	CreatedAt            string `json:"createdAt"`
	UpdatedAt            string `json:"updatedAt"`
}

func (h *handler) newPreferenceResp(o preference.PreferenceOutput) preferenceResp {
	return preferenceResp{
		ID:                   o.ID,
		UserID:               o.UserID,
		ContentPreferences:   o.ContentPreferences,
		MonetaryBaseline:     o.MonetaryBaseline,
		ContentLength:        o.ContentLength,
		AdditionalGuidelines: o.AdditionalGuidelines,
		CreatedAt:            o.CreatedAt.Format(time.RFC3339),
		UpdatedAt:            o.UpdatedAt.Format(time.RFC3339),
	}
}
