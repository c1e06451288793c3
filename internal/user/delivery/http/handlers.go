package http

import (
	"net/http"

	"collab-srv/pkg/response"
	"collab-srv/pkg/scope"

	"github.com/gin-gonic/gin"
)

// @Summary Register
// @Description Create a local account and set the auth cookie
// @Tags Auth
// @Accept json
// @Produce json
// @Param body body registerReq true "Credentials"
// @Success 200 {object} userResp
// @Failure 400 {object} response.Resp
// @Failure 500 {object} response.Resp
// @Router /api/auth/register [post]
func (h *handler) Register(c *gin.Context) {
	ctx := c.Request.Context()

	var req registerReq
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, errInvalidBody, h.discord)
		return
	}

	o, err := h.uc.Register(ctx, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "user.delivery.http.Register: usecase Register failed: %v", err)
		response.Error(c, h.mapError(err), h.discord)
		return
	}

	h.setAuthCookie(c, o.Token)
	response.OK(c, h.newUserResp(o.User))
}

// @Summary Login
// @Description Verify credentials and set the auth cookie
// @Tags Auth
// @Accept json
// @Produce json
// @Param body body loginReq true "Credentials"
// @Success 200 {object} userResp
// @Failure 401 {object} response.Resp
// @Failure 403 {object} response.Resp
// @Router /api/auth/login [post]
func (h *handler) Login(c *gin.Context) {
	ctx := c.Request.Context()

	var req loginReq
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, errInvalidBody, h.discord)
		return
	}

	o, err := h.uc.Login(ctx, req.toInput())
	if err != nil {
		h.l.Warnf(ctx, "user.delivery.http.Login: usecase Login failed: %v", err)
		response.Error(c, h.mapError(err), h.discord)
		return
	}

	h.setAuthCookie(c, o.Token)
	response.OK(c, h.newUserResp(o.User))
}

// @Summary Logout
// @Description Clear the auth cookie
// @Tags Auth
// @Produce json
// @Success 200 {object} response.Resp
// @Router /api/auth/logout [post]
func (h *handler) Logout(c *gin.Context) {
	h.clearAuthCookie(c)
	response.OK(c, gin.H{"message": "Logged out"})
}

// @Summary Current user
// @Description Return the authenticated user's record
// @Tags Auth
// @Produce json
// @Success 200 {object} userResp
// @Failure 401 {object} response.Resp
// @Router /api/auth/user [get]
func (h *handler) GetMe(c *gin.Context) {
	ctx := c.Request.Context()

	sc := scope.GetScopeFromContext(ctx)

	o, err := h.uc.GetMe(ctx, sc)
	if err != nil {
		h.l.Errorf(ctx, "user.delivery.http.GetMe: usecase GetMe failed: %v", err)
		response.Error(c, h.mapError(err), h.discord)
		return
	}

	response.OK(c, h.newUserResp(o))
}

// @Summary Update language preference
// @Tags Auth
// @Accept json
// @Produce json
// @Param body body updateLanguageReq true "Language"
// @Success 200 {object} userResp
// @Failure 400 {object} response.Resp
// @Router /api/auth/language [patch]
func (h *handler) UpdateLanguage(c *gin.Context) {
	ctx := c.Request.Context()

	var req updateLanguageReq
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, errLanguageRequired, h.discord)
		return
	}

	sc := scope.GetScopeFromContext(ctx)

	o, err := h.uc.UpdateLanguage(ctx, sc, req.Language)
	if err != nil {
		h.l.Errorf(ctx, "user.delivery.http.UpdateLanguage: usecase UpdateLanguage failed: %v", err)
		response.Error(c, h.mapError(err), h.discord)
		return
	}

	response.OK(c, h.newUserResp(o))
}

// @Summary Update username
// @Tags Auth
// @Accept json
// @Produce json
// @Param body body updateUsernameReq true "Username"
// @Success 200 {object} userResp
// @Failure 400 {object} response.Resp
// @Failure 409 {object} response.Resp
// @Router /api/auth/username [patch]
func (h *handler) UpdateUsername(c *gin.Context) {
	ctx := c.Request.Context()

	var req updateUsernameReq
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, errUsernameRequired, h.discord)
		return
	}

	sc := scope.GetScopeFromContext(ctx)

	o, err := h.uc.UpdateUsername(ctx, sc, req.Username)
	if err != nil {
		h.l.Errorf(ctx, "user.delivery.http.UpdateUsername: usecase UpdateUsername failed: %v", err)
		response.Error(c, h.mapError(err), h.discord)
		return
	}

	response.OK(c, h.newUserResp(o))
}

// @Summary Public influencer profile
// @Description Public subset used to render the inquiry form
// @Tags Users
// @Produce json
// @Param username path string true "Username"
// @Success 200 {object} profileResp
// @Failure 404 {object} response.Resp
// @Router /api/users/{username} [get]
func (h *handler) GetProfile(c *gin.Context) {
	ctx := c.Request.Context()

	o, err := h.uc.GetProfileByUsername(ctx, c.Param("username"))
	if err != nil {
		h.l.Warnf(ctx, "user.delivery.http.GetProfile: usecase GetProfileByUsername failed: %v", err)
		response.Error(c, h.mapError(err), h.discord)
		return
	}

	response.OK(c, h.newProfileResp(o))
}

func (h *handler) setAuthCookie(c *gin.Context, token string) {
	c.SetSameSite(parseSameSite(h.cookie.SameSite))
	c.SetCookie(h.cookie.Name, token, h.cookie.MaxAge, "/", h.cookie.Domain, h.cookie.Secure, true)
}

func (h *handler) clearAuthCookie(c *gin.Context) {
	c.SetSameSite(parseSameSite(h.cookie.SameSite))
	c.SetCookie(h.cookie.Name, "", -1, "/", h.cookie.Domain, h.cookie.Secure, true)
}

func parseSameSite(s string) http.SameSite {
	switch s {
	case "Strict":
		return http.SameSiteStrictMode
	case "None":
		return http.SameSiteNoneMode
	default:
		return http.SameSiteLaxMode
	}
}
