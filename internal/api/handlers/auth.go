package handlers

import (
	"net/http"

	"professionals-api/internal/services"
	"professionals-api/internal/transport/dto"

	"github.com/gin-gonic/gin"
)

// SessionCookie describes the cookie carrying the session token.
type SessionCookie struct {
	Name   string
	Secure bool
}

// AuthHandler holds dependencies for authentication endpoints.
type AuthHandler struct {
	Binder
	service services.AuthService
	cookie  SessionCookie
}

func NewAuthHandler(service services.AuthService, binder Binder, cookie SessionCookie) *AuthHandler {
	return &AuthHandler{Binder: binder, service: service, cookie: cookie}
}

func (h *AuthHandler) setSession(c *gin.Context, resp *dto.AuthResponse) {
	if h.cookie.Name == "" {
		return
	}
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(h.cookie.Name, resp.Token, int(resp.ExpiresIn), "/", "", h.cookie.Secure, true)
}

func (h *AuthHandler) clearSession(c *gin.Context) {
	if h.cookie.Name == "" {
		return
	}
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(h.cookie.Name, "", -1, "/", "", h.cookie.Secure, true)
}

// Register godoc
// @Summary      Register a new account
// @Description  Creates a student or company account and returns a session token.
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        user body      dto.RegisterRequest true  "Account details"
// @Success      201 {object}  dto.AuthResponse
// @Failure      400 {object}  map[string]string "Malformed body"
// @Failure      409 {object}  map[string]string "Email already registered"
// @Failure      422 {object}  map[string]any "Validation failed"
// @Router       /auth/register [post]
func (h *AuthHandler) Register(c *gin.Context) {
	var req dto.RegisterRequest
	if !h.bindJSON(c, &req) {
		return
	}
	resp, err := h.service.Register(c.Request.Context(), &req)
	if err != nil {
		respondError(c, err, "register")
		return
	}
	h.setSession(c, resp)
	c.JSON(http.StatusCreated, resp)
}

// Login godoc
// @Summary      Log in
// @Description  Authenticates with email and password. The token is also set as a session cookie.
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        credentials body dto.LoginRequest true "Credentials"
// @Success      200 {object}  dto.AuthResponse
// @Failure      401 {object}  map[string]string "Invalid credentials"
// @Failure      403 {object}  map[string]string "Account banned"
// @Router       /auth/login [post]
func (h *AuthHandler) Login(c *gin.Context) {
	var req dto.LoginRequest
	if !h.bindJSON(c, &req) {
		return
	}
	resp, err := h.service.Login(c.Request.Context(), &req)
	if err != nil {
		respondError(c, err, "log in")
		return
	}
	h.setSession(c, resp)
	c.JSON(http.StatusOK, resp)
}

// Logout godoc
// @Summary      Log out
// @Description  Revokes the current token and clears the session cookie.
// @Tags         auth
// @Success      204 "Logged out"
// @Failure      401 {object}  map[string]string "Unauthorized"
// @Router       /auth/logout [post]
// @Security     BearerAuth
func (h *AuthHandler) Logout(c *gin.Context) {
	p, ok := principal(c)
	if !ok {
		return
	}
	if err := h.service.Logout(c.Request.Context(), p.TokenID, p.ExpiresAt); err != nil {
		respondError(c, err, "log out")
		return
	}
	h.clearSession(c)
	c.Status(http.StatusNoContent)
}

// SocialRedirect godoc
// @Summary      Start social login
// @Tags         auth
// @Param        provider path string true "google or linkedin"
// @Success      302 "Redirect to the provider"
// @Failure      404 {object}  map[string]string "Unknown provider"
// @Router       /auth/social/{provider} [get]
func (h *AuthHandler) SocialRedirect(c *gin.Context) {
	target, err := h.service.SocialRedirect(c.Request.Context(), c.Param("provider"))
	if err != nil {
		respondError(c, err, "start social login")
		return
	}
	c.Redirect(http.StatusFound, target)
}

// SocialCallback godoc
// @Summary      Finish social login
// @Tags         auth
// @Produce      json
// @Param        provider path string true "google or linkedin"
// @Param        code query string true "Authorization code"
// @Param        state query string true "State issued by the redirect"
// @Success      200 {object}  dto.AuthResponse
// @Failure      401 {object}  map[string]string "Unknown state or rejected code"
// @Router       /auth/social/{provider}/callback [get]
func (h *AuthHandler) SocialCallback(c *gin.Context) {
	var req dto.SocialCallbackRequest
	if !h.bindQuery(c, &req) {
		return
	}
	req.Provider = c.Param("provider")
	resp, err := h.service.SocialCallback(c.Request.Context(), &req)
	if err != nil {
		respondError(c, err, "complete social login")
		return
	}
	h.setSession(c, resp)
	c.JSON(http.StatusOK, resp)
}

// ForgotPassword godoc
// @Summary      Request a password reset link
// @Description  Always answers 200 so account existence is not disclosed.
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body body dto.ForgotPasswordRequest true "Email"
// @Success      200 {object}  dto.MessageResponse
// @Router       /auth/forgot-password [post]
func (h *AuthHandler) ForgotPassword(c *gin.Context) {
	var req dto.ForgotPasswordRequest
	if !h.bindJSON(c, &req) {
		return
	}
	if err := h.service.ForgotPassword(c.Request.Context(), &req); err != nil {
		respondError(c, err, "send reset link")
		return
	}
	c.JSON(http.StatusOK, dto.MessageResponse{Message: "If the account exists, a reset link has been sent."})
}

// ResetPassword godoc
// @Summary      Reset a password with an emailed token
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body body dto.ResetPasswordRequest true "Token and new password"
// @Success      200 {object}  dto.MessageResponse
// @Failure      422 {object}  map[string]any "Invalid token"
// @Router       /auth/reset-password [post]
func (h *AuthHandler) ResetPassword(c *gin.Context) {
	var req dto.ResetPasswordRequest
	if !h.bindJSON(c, &req) {
		return
	}
	if err := h.service.ResetPassword(c.Request.Context(), &req); err != nil {
		respondError(c, err, "reset password")
		return
	}
	c.JSON(http.StatusOK, dto.MessageResponse{Message: "Password has been reset."})
}

// VerifyEmail godoc
// @Summary      Verify the caller's email address
// @Tags         auth
// @Produce      json
// @Param        id path int true "User ID"
// @Param        hash path string true "Email hash"
// @Param        expires query string true "Expiry timestamp"
// @Param        signature query string true "Link signature"
// @Success      200 {object}  models.User
// @Failure      403 {object}  map[string]string "Invalid link"
// @Router       /auth/email/verify/{id}/{hash} [get]
// @Security     BearerAuth
func (h *AuthHandler) VerifyEmail(c *gin.Context) {
	caller, ok := userID(c)
	if !ok {
		return
	}
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	var req dto.VerifyEmailRequest
	if !h.bindQuery(c, &req) {
		return
	}
	req.UserID, req.ID, req.Hash, req.Path = caller, id, c.Param("hash"), c.Request.URL.Path
	user, err := h.service.VerifyEmail(c.Request.Context(), &req)
	if err != nil {
		respondError(c, err, "verify email")
		return
	}
	c.JSON(http.StatusOK, user)
}

// ResendVerification godoc
// @Summary      Resend the verification email
// @Tags         auth
// @Success      202 {object}  dto.MessageResponse
// @Failure      409 {object}  map[string]string "Already verified"
// @Router       /auth/email/resend [post]
// @Security     BearerAuth
func (h *AuthHandler) ResendVerification(c *gin.Context) {
	caller, ok := userID(c)
	if !ok {
		return
	}
	if err := h.service.ResendVerification(c.Request.Context(), caller); err != nil {
		respondError(c, err, "resend verification email")
		return
	}
	c.JSON(http.StatusAccepted, dto.MessageResponse{Message: "Verification link sent."})
}
