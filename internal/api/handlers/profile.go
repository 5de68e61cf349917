package handlers

import (
	"net/http"

	"professionals-api/internal/services"
	"professionals-api/internal/transport/dto"

	"github.com/gin-gonic/gin"
)

// ProfileHandler serves the caller's own account under /me.
type ProfileHandler struct {
	Binder
	service   services.ProfileService
	analytics services.AnalyticsService
}

func NewProfileHandler(service services.ProfileService, analytics services.AnalyticsService, binder Binder) *ProfileHandler {
	return &ProfileHandler{Binder: binder, service: service, analytics: analytics}
}

// GetMe godoc
// @Summary      Get the caller's account
// @Tags         me
// @Produce      json
// @Success      200 {object}  models.User
// @Router       /me [get]
// @Security     BearerAuth
func (h *ProfileHandler) GetMe(c *gin.Context) {
	id, ok := userID(c)
	if !ok {
		return
	}
	user, err := h.service.Get(c.Request.Context(), id)
	if err != nil {
		respondError(c, err, "retrieve account")
		return
	}
	c.JSON(http.StatusOK, user)
}

// UpdateMe godoc
// @Summary      Update the caller's account
// @Tags         me
// @Accept       json
// @Produce      json
// @Param        body body dto.UpdateMeRequest true "Account fields"
// @Success      200 {object}  models.User
// @Failure      409 {object}  map[string]string "Email taken"
// @Router       /me [put]
// @Security     BearerAuth
func (h *ProfileHandler) UpdateMe(c *gin.Context) {
	id, ok := userID(c)
	if !ok {
		return
	}
	var req dto.UpdateMeRequest
	if !h.bindJSON(c, &req) {
		return
	}
	req.UserID = id
	user, err := h.service.Update(c.Request.Context(), &req)
	if err != nil {
		respondError(c, err, "update account")
		return
	}
	c.JSON(http.StatusOK, user)
}

// UploadAvatar godoc
// @Summary      Upload an avatar
// @Tags         me
// @Accept       multipart/form-data
// @Produce      json
// @Param        avatar formData file true "Image"
// @Success      200 {object}  models.User
// @Failure      422 {object}  map[string]any "Not an image or too large"
// @Router       /me/avatar [post]
// @Security     BearerAuth
func (h *ProfileHandler) UploadAvatar(c *gin.Context) {
	id, ok := userID(c)
	if !ok {
		return
	}
	data, ok := h.upload(c, "avatar")
	if !ok {
		return
	}
	user, err := h.service.UploadAvatar(c.Request.Context(), id, data)
	if err != nil {
		respondError(c, err, "upload avatar")
		return
	}
	c.JSON(http.StatusOK, user)
}

// ChangePassword godoc
// @Summary      Change the caller's password
// @Tags         me
// @Accept       json
// @Param        body body dto.ChangePasswordRequest true "Passwords"
// @Success      204 "Changed"
// @Failure      422 {object}  map[string]any "Wrong current password"
// @Router       /me/password [put]
// @Security     BearerAuth
func (h *ProfileHandler) ChangePassword(c *gin.Context) {
	id, ok := userID(c)
	if !ok {
		return
	}
	var req dto.ChangePasswordRequest
	if !h.bindJSON(c, &req) {
		return
	}
	req.UserID = id
	if err := h.service.ChangePassword(c.Request.Context(), &req); err != nil {
		respondError(c, err, "change password")
		return
	}
	c.Status(http.StatusNoContent)
}

// DeleteMe godoc
// @Summary      Delete the caller's account
// @Tags         me
// @Accept       json
// @Param        body body dto.DeleteAccountRequest true "Password confirmation"
// @Success      204 "Deleted"
// @Router       /me [delete]
// @Security     BearerAuth
func (h *ProfileHandler) DeleteMe(c *gin.Context) {
	id, ok := userID(c)
	if !ok {
		return
	}
	var req dto.DeleteAccountRequest
	if c.Request.ContentLength != 0 && !h.bindJSON(c, &req) {
		return
	}
	req.UserID = id
	if err := h.service.Delete(c.Request.Context(), &req); err != nil {
		respondError(c, err, "delete account")
		return
	}
	c.Status(http.StatusNoContent)
}

// GetStudentProfile godoc
// @Summary      Get the caller's student profile
// @Tags         me
// @Produce      json
// @Success      200 {object}  models.StudentProfile
// @Failure      403 {object}  map[string]string "Not a student"
// @Router       /me/student [get]
// @Security     BearerAuth
func (h *ProfileHandler) GetStudentProfile(c *gin.Context) {
	id, ok := userID(c)
	if !ok {
		return
	}
	profile, err := h.service.GetStudentProfile(c.Request.Context(), id)
	if err != nil {
		respondError(c, err, "retrieve student profile")
		return
	}
	c.JSON(http.StatusOK, profile)
}

// UpdateStudentProfile godoc
// @Summary      Update the caller's student profile
// @Tags         me
// @Accept       json
// @Produce      json
// @Param        body body dto.UpdateStudentProfileRequest true "Profile"
// @Success      200 {object}  models.StudentProfile
// @Router       /me/student [put]
// @Security     BearerAuth
func (h *ProfileHandler) UpdateStudentProfile(c *gin.Context) {
	id, ok := userID(c)
	if !ok {
		return
	}
	var req dto.UpdateStudentProfileRequest
	if !h.bindJSON(c, &req) {
		return
	}
	req.UserID = id
	profile, err := h.service.UpdateStudentProfile(c.Request.Context(), &req)
	if err != nil {
		respondError(c, err, "update student profile")
		return
	}
	c.JSON(http.StatusOK, profile)
}

// UploadCV godoc
// @Summary      Upload a CV
// @Description  PDF only, bounded in size and page count.
// @Tags         me
// @Accept       multipart/form-data
// @Produce      json
// @Param        cv formData file true "PDF"
// @Success      200 {object}  models.StudentProfile
// @Failure      422 {object}  map[string]any "Not a PDF, too large or too many pages"
// @Router       /me/student/cv [post]
// @Security     BearerAuth
func (h *ProfileHandler) UploadCV(c *gin.Context) {
	id, ok := userID(c)
	if !ok {
		return
	}
	data, ok := h.upload(c, "cv")
	if !ok {
		return
	}
	profile, err := h.service.UploadCV(c.Request.Context(), id, data)
	if err != nil {
		respondError(c, err, "upload CV")
		return
	}
	c.JSON(http.StatusOK, profile)
}

// Dashboard godoc
// @Summary      Role specific dashboard of the caller
// @Tags         me
// @Produce      json
// @Success      200 {object}  dto.MeDashboardResponse
// @Router       /me/dashboard [get]
// @Security     BearerAuth
func (h *ProfileHandler) Dashboard(c *gin.Context) {
	p, ok := principal(c)
	if !ok {
		return
	}
	resp, err := h.analytics.MeDashboard(c.Request.Context(), p.UserID, p.Role)
	if err != nil {
		respondError(c, err, "build dashboard")
		return
	}
	c.JSON(http.StatusOK, resp)
}
