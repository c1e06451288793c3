package http

import (
	"collab-srv/pkg/response"
	"collab-srv/pkg/scope"

	"github.com/gin-gonic/gin"
)

// @Summary Submit a business inquiry
// @Description Create an inquiry for an influencer and open the negotiation chat
// @Tags Inquiry
// @Accept json
// @Produce json
// @Param body body submitInquiryReq true "Inquiry"
// @Success 200 {object} inquiryResp
// @Failure 400 {object} response.Resp
// @Failure 404 {object} response.Resp
// @Failure 500 {object} response.Resp
// @Router /api/inquiries [post]
func (h *handler) SubmitInquiry(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processSubmitInquiryRequest(c)
	if err != nil {
		h.l.Errorf(ctx, "inquiry.delivery.http.SubmitInquiry: processSubmitInquiryRequest failed: %v", err)
		response.Error(c, err, h.discord)
		return
	}

	o, err := h.uc.Submit(ctx, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "inquiry.delivery.http.SubmitInquiry: usecase Submit failed: %v", err)
		response.Error(c, h.mapError(err), h.discord)
		return
	}

	response.OK(c, h.newInquiryResp(o))
}

// @Summary Get an inquiry
// @Description Inquiry detail for the negotiation chat page
// @Tags Inquiry
// @Produce json
// @Param id path string true "Inquiry ID"
// @Success 200 {object} inquiryResp
// @Failure 404 {object} response.Resp
// @Failure 500 {object} response.Resp
// @Router /api/inquiries/{id} [get]
func (h *handler) GetInquiry(c *gin.Context) {
	ctx := c.Request.Context()

	o, err := h.uc.Get(ctx, c.Param("id"))
	if err != nil {
		h.l.Errorf(ctx, "inquiry.delivery.http.GetInquiry: usecase Get failed: %v", err)
		response.Error(c, h.mapError(err), h.discord)
		return
	}

	response.OK(c, h.newInquiryResp(o))
}

// @Summary List own inquiries
// @Description The authenticated influencer's inbox, newest first
// @Tags Inquiry
// @Produce json
// @Success 200 {array} inquiryResp
// @Failure 401 {object} response.Resp
// @Failure 500 {object} response.Resp
// @Router /api/inquiries [get]
func (h *handler) ListInquiries(c *gin.Context) {
	ctx := c.Request.Context()

	sc := scope.GetScopeFromContext(ctx)

	outputs, err := h.uc.List(ctx, sc)
	if err != nil {
		h.l.Errorf(ctx, "inquiry.delivery.http.ListInquiries: usecase List failed: %v", err)
		response.Error(c, h.mapError(err), h.discord)
		return
	}

	response.OK(c, h.newInquiryListResp(outputs))
}

// @Summary List chat messages
// @Description Full ordered transcript of the inquiry's negotiation chat
// @Tags Inquiry
// @Produce json
// @Param id path string true "Inquiry ID"
// @Success 200 {array} messageResp
// @Failure 404 {object} response.Resp
// @Failure 500 {object} response.Resp
// @Router /api/inquiries/{id}/messages [get]
func (h *handler) ListMessages(c *gin.Context) {
	ctx := c.Request.Context()

	outputs, err := h.uc.ListMessages(ctx, c.Param("id"))
	if err != nil {
		h.l.Errorf(ctx, "inquiry.delivery.http.ListMessages: usecase ListMessages failed: %v", err)
		response.Error(c, h.mapError(err), h.discord)
		return
	}

	response.OK(c, h.newMessageListResp(outputs))
}

// @Summary Post a chat message
// @Description Append a business message and return it with the agent's reply
// @Tags Inquiry
// @Accept json
// @Produce json
// @Param id path string true "Inquiry ID"
// @Param body body postMessageReq true "Message"
// @Success 200 {object} postMessageResp
// @Failure 400 {object} response.Resp
// @Failure 404 {object} response.Resp
// @Failure 500 {object} response.Resp
// @Router /api/inquiries/{id}/messages [post]
func (h *handler) PostMessage(c *gin.Context) {
	ctx := c.Request.Context()

	input, err := h.processPostMessageRequest(c)
	if err != nil {
		h.l.Errorf(ctx, "inquiry.delivery.http.PostMessage: processPostMessageRequest failed: %v", err)
		response.Error(c, err, h.discord)
		return
	}

	o, err := h.uc.PostMessage(ctx, input)
	if err != nil {
		h.l.Errorf(ctx, "inquiry.delivery.http.PostMessage: usecase PostMessage failed: %v", err)
		response.Error(c, h.mapError(err), h.discord)
		return
	}

	response.OK(c, h.newPostMessageResp(o))
}

// @Summary Close the chat
// @Description Close the negotiation chat and record the agent's recommendation
// @Tags Inquiry
// @Produce json
// @Param id path string true "Inquiry ID"
// @Success 200 {object} inquiryResp
// @Failure 400 {object} response.Resp
// @Failure 404 {object} response.Resp
// @Failure 500 {object} response.Resp
// @Router /api/inquiries/{id}/close [post]
func (h *handler) CloseChat(c *gin.Context) {
	ctx := c.Request.Context()

	o, err := h.uc.Close(ctx, c.Param("id"))
	if err != nil {
		h.l.Errorf(ctx, "inquiry.delivery.http.CloseChat: usecase Close failed: %v", err)
		response.Error(c, h.mapError(err), h.discord)
		return
	}

	response.OK(c, h.newInquiryResp(o))
}

// @Summary Set inquiry status
// @Description Record the influencer's decision and notify the business
// @Tags Inquiry
// @Accept json
// @Produce json
// @Param id path string true "Inquiry ID"
// @Param body body setStatusReq true "Decision"
// @Success 200 {object} inquiryResp
// @Failure 400 {object} response.Resp
// @Failure 403 {object} response.Resp
// @Failure 404 {object} response.Resp
// @Failure 500 {object} response.Resp
// @Router /api/inquiries/{id}/status [patch]
func (h *handler) SetStatus(c *gin.Context) {
	ctx := c.Request.Context()

	input, sc, err := h.processSetStatusRequest(c)
	if err != nil {
		h.l.Errorf(ctx, "inquiry.delivery.http.SetStatus: processSetStatusRequest failed: %v", err)
		response.Error(c, err, h.discord)
		return
	}

	o, err := h.uc.SetStatus(ctx, sc, input)
	if err != nil {
		h.l.Errorf(ctx, "inquiry.delivery.http.SetStatus: usecase SetStatus failed: %v", err)
		response.Error(c, h.mapError(err), h.discord)
		return
	}

	response.OK(c, h.newInquiryResp(o))
}

// @Summary Delete an inquiry
// @Description Delete an inquiry and its chat history
// @Tags Inquiry
// @Produce json
// @Param id path string true "Inquiry ID"
// @Success 200 {object} response.Resp
// @Failure 403 {object} response.Resp
// @Failure 404 {object} response.Resp
// @Failure 500 {object} response.Resp
// @Router /api/inquiries/{id} [delete]
func (h *handler) DeleteInquiry(c *gin.Context) {
	ctx := c.Request.Context()

	sc := scope.GetScopeFromContext(ctx)

	if err := h.uc.Delete(ctx, sc, c.Param("id")); err != nil {
		h.l.Errorf(ctx, "inquiry.delivery.http.DeleteInquiry: usecase Delete failed: %v", err)
		response.Error(c, h.mapError(err), h.discord)
		return
	}

	response.OK(c, nil)
}

// @Summary Upload an inquiry attachment
// @Description Store an attachment and return its link for the inquiry form
// @Tags Inquiry
// @Accept multipart/form-data
// @Produce json
// @Param file formData file true "Attachment"
// @Success 200 {object} attachmentResp
// @Failure 400 {object} response.Resp
// @Failure 500 {object} response.Resp
// @Router /api/attachments [post]
func (h *handler) UploadAttachment(c *gin.Context) {
	ctx := c.Request.Context()

	input, file, err := h.processUploadAttachmentRequest(c)
	if err != nil {
		h.l.Errorf(ctx, "inquiry.delivery.http.UploadAttachment: processUploadAttachmentRequest failed: %v", err)
		response.Error(c, err, h.discord)
		return
	}
	defer file.Close()

	o, err := h.uc.UploadAttachment(ctx, input)
	if err != nil {
		h.l.Errorf(ctx, "inquiry.delivery.http.UploadAttachment: usecase UploadAttachment failed: %v", err)
		response.Error(c, h.mapError(err), h.discord)
		return
	}

	response.OK(c, h.newAttachmentResp(o))
}
