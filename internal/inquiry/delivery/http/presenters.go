package http

import (
	"time"

	"collab-srv/internal/inquiry"
)

type submitInquiryReq struct {
	InfluencerID  string `json:"influencerId" binding:"required"`
	BusinessEmail string `json:"businessEmail" binding:"required"`
	Message       string `json:"message" binding:"required"`
	Price         *int   `json:"price"`
	CompanyInfo   string `json:"companyInfo"`
	AttachmentURL string `json:"attachmentUrl"`
}

func (req submitInquiryReq) toInput() inquiry.SubmitInput {
	return inquiry.SubmitInput{
		InfluencerID:  req.InfluencerID,
		BusinessEmail: req.BusinessEmail,
		Message:       req.Message,
		Price:         req.Price,
		CompanyInfo:   req.CompanyInfo,
		AttachmentURL: req.AttachmentURL,
	}
}

type postMessageReq struct {
	Content string `json:"content" binding:"required"`
}

type setStatusReq struct {
	Status string `json:"status" binding:"required"`
	Note   string `json:"note"`
}

type inquiryResp struct {
	ID               string `json:"id"`
	InfluencerID     string `json:"influencerId"`
	BusinessEmail    string `json:"businessEmail"`
	Message          string `json:"message"`
	Price            *int   `json:"price"`
	CompanyInfo      string `json:"companyInfo,omitempty"`
	AttachmentURL    string `json:"attachmentUrl,omitempty"`
	Status           string `json:"status"`
	ChatActive       bool   `json:"chatActive"`
	AIResponse       string `json:"aiResponse,omitempty"`
	AIRecommendation string `json:"aiRecommendation,omitempty"`
	CreatedAt        string `json:"createdAt"`
	UpdatedAt        string `json:"updatedAt"`
}

func (h *handler) newInquiryResp(o inquiry.InquiryOutput) inquiryResp {
	return inquiryResp{
		ID:               o.ID,
		InfluencerID:     o.InfluencerID,
		BusinessEmail:    o.BusinessEmail,
		Message:          o.Message,
		Price:            o.Price,
		CompanyInfo:      o.CompanyInfo,
		AttachmentURL:    o.AttachmentURL,
		Status:           o.Status,
		ChatActive:       o.ChatActive,
		AIResponse:       o.AIResponse,
		AIRecommendation: o.AIRecommendation,
		CreatedAt:        o.CreatedAt.Format(time.RFC3339),
		UpdatedAt:        o.UpdatedAt.Format(time.RFC3339),
	}
}

func (h *handler) newInquiryListResp(outputs []inquiry.InquiryOutput) []inquiryResp {
	resp := make([]inquiryResp, 0, len(outputs))
	for _, o := range outputs {
		resp = append(resp, h.newInquiryResp(o))
	}
	return resp
}

type messageResp struct {
	ID        string `json:"id"`
	InquiryID string `json:"inquiryId"`
	Role      string `json:"role"`
	Content   string `json:"content"`
	CreatedAt string `json:"createdAt"`
}

func (h *handler) newMessageResp(o inquiry.MessageOutput) messageResp {
	return messageResp{
		ID:        o.ID,
		InquiryID: o.InquiryID,
		Role:      o.Role,
		Content:   o.Content,
		CreatedAt: o.CreatedAt.Format(time.RFC3339),
	}
}

func (h *handler) newMessageListResp(outputs []inquiry.MessageOutput) []messageResp {
	resp := make([]messageResp, 0, len(outputs))
	for _, o := range outputs {
		resp = append(resp, h.newMessageResp(o))
	}
	return resp
}

type postMessageResp struct {
	UserMessage messageResp `json:"userMessage"`
	AIMessage   messageResp `json:"aiMessage"`
}

func (h *handler) newPostMessageResp(o inquiry.PostMessageOutput) postMessageResp {
	return postMessageResp{
		UserMessage: h.newMessageResp(o.UserMessage),
		AIMessage:   h.newMessageResp(o.AIMessage),
	}
}

type attachmentResp struct {
	ObjectName string `json:"objectName"`
	URL        string `json:"url"`
	Size       int64  `json:"size"`
}

func (h *handler) newAttachmentResp(o inquiry.AttachmentOutput) attachmentResp {
	return attachmentResp{
		ObjectName: o.ObjectName,
		URL:        o.URL,
		Size:       o.Size,
	}
}
