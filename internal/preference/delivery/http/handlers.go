package http

import (
	"collab-srv/pkg/response"
	"collab-srv/pkg/scope"

	"github.com/gin-gonic/gin"
)

// @Summary Get own negotiation policy
// @Description Return the authenticated influencer's saved policy
// @Tags Preference
// @Produce json
// @Success 200 {object} preferenceResp
// @Failure 404 {object} response.Resp
// @Failure 500 {object} response.Resp
// @Router /api/preferences [get]
func (h *handler) GetPreference(c *gin.Context) {
	ctx := c.Request.Context()

	sc := scope.GetScopeFromContext(ctx)

	o, err := h.uc.Get(ctx, sc)
	if err != nil {
		h.l.Errorf(ctx, "preference.delivery.http.GetPreference: usecase Get failed: %v", err)
		response.Error(c, h.mapError(err), h.discord)
		return
	}

	response.OK(c, h.newPreferenceResp(o))
}

// @Summary Save negotiation policy
// @Description Create or replace the authenticated influencer's policy
// @Tags Preference
// @Accept json
// @Produce json
// @Param body body upsertPreferenceReq true "Policy"
// @Success 200 {object} preferenceResp
// @Failure 400 {object} response.Resp
// @Failure 500 {object} response.Resp
// @Router /api/preferences [post]
func (h *handler) UpsertPreference(c *gin.Context) {
	ctx := c.Request.Context()

	req, sc, err := h.processUpsertPreferenceRequest(c)
	if err != nil {
		h.l.Errorf(ctx, "preference.delivery.http.UpsertPreference: processUpsertPreferenceRequest failed: %v", err)
		response.Error(c, err, h.discord)
		return
	}

	o, err := h.uc.Upsert(ctx, sc, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "preference.delivery.http.UpsertPreference: usecase Upsert failed: %v", err)
		response.Error(c, h.mapError(err), h.discord)
		return
	}

	response.OK(c, h.newPreferenceResp(o))
}
