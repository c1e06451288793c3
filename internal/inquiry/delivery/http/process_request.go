package http

import (
	"mime/multipart"

	"collab-srv/internal/inquiry"
	"collab-srv/internal/model"
	"collab-srv/pkg/scope"

	"github.com/gin-gonic/gin"
)

func (h *handler) processSubmitInquiryRequest(c *gin.Context) (submitInquiryReq, error) {
	var req submitInquiryReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return req, errInvalidBody
	}
	return req, nil
}

func (h *handler) processPostMessageRequest(c *gin.Context) (inquiry.PostMessageInput, error) {
	var req postMessageReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return inquiry.PostMessageInput{}, errInvalidBody
	}
	return inquiry.PostMessageInput{
		InquiryID: c.Param("id"),
		Content:   req.Content,
	}, nil
}

func (h *handler) processSetStatusRequest(c *gin.Context) (inquiry.SetStatusInput, model.Scope, error) {
	var req setStatusReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return inquiry.SetStatusInput{}, model.Scope{}, errInvalidBody
	}

	sc := scope.GetScopeFromContext(c.Request.Context())
	return inquiry.SetStatusInput{
		InquiryID: c.Param("id"),
		Status:    req.Status,
		Note:      req.Note,
	}, sc, nil
}

func (h *handler) processUploadAttachmentRequest(c *gin.Context) (inquiry.UploadAttachmentInput, multipart.File, error) {
	fileHeader, err := c.FormFile("file")
	if err != nil {
		return inquiry.UploadAttachmentInput{}, nil, errAttachmentRequired
	}

	file, err := fileHeader.Open()
	if err != nil {
		return inquiry.UploadAttachmentInput{}, nil, errAttachmentRequired
	}

	return inquiry.UploadAttachmentInput{
		FileName:    fileHeader.Filename,
		ContentType: fileHeader.Header.Get("Content-Type"),
		Size:        fileHeader.Size,
		Reader:      file,
	}, file, nil
}
