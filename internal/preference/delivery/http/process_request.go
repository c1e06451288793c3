package http

import (
	"collab-srv/internal/model"
	"collab-srv/pkg/scope"

	"github.com/gin-gonic/gin"
)

func (h *handler) processUpsertPreferenceRequest(c *gin.Context) (upsertPreferenceReq, model.Scope, error) {
	var req upsertPreferenceReq

	if err := c.ShouldBindJSON(&req); err != nil {
		return req, model.Scope{}, errInvalidBody
	}

	sc := scope.GetScopeFromContext(c.Request.Context())
	return req, sc, nil
}
