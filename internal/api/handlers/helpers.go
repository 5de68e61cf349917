package handlers

import (
	"errors"
	"io"
	"net/http"
	"reflect"
	"strconv"
	"strings"

	"professionals-api/internal/api/middleware"
	"professionals-api/internal/models"
	"professionals-api/internal/pagination"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
)

// NewValidator returns a validator reporting fields by their json or form name.
func NewValidator() *validator.Validate {
	v := validator.New()
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		for _, tag := range []string{"json", "form"} {
			name := strings.SplitN(f.Tag.Get(tag), ",", 2)[0]
			if name != "" && name != "-" {
				return name
			}
		}
		return f.Name
	})
	return v
}

// Binder decodes and validates requests. Every handler embeds one.
type Binder struct {
	validator *validator.Validate
	paging    pagination.Config
	maxUpload int64
}

func NewBinder(validate *validator.Validate, paging pagination.Config, maxUpload int64) Binder {
	return Binder{validator: validate, paging: paging, maxUpload: maxUpload}
}

func (b Binder) validate(c *gin.Context, req any) bool {
	if err := b.validator.Struct(req); err != nil {
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": "Validation failed", "details": FormatValidationErrors(err)})
		return false
	}
	return true
}

// bindJSON answers 400 for malformed bodies and 422 for invalid ones.
func (b Binder) bindJSON(c *gin.Context, req any) bool {
	if err := c.ShouldBindJSON(req); err != nil {
		var verr validator.ValidationErrors
		if errors.As(err, &verr) {
			c.JSON(http.StatusUnprocessableEntity, gin.H{"error": "Validation failed", "details": FormatValidationErrors(err)})
			return false
		}
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body: " + err.Error()})
		return false
	}
	return b.validate(c, req)
}

func (b Binder) bindQuery(c *gin.Context, req any) bool {
	if err := c.ShouldBindQuery(req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid query parameters: " + err.Error()})
		return false
	}
	return b.validate(c, req)
}

func (b Binder) page(c *gin.Context) pagination.PageRequest {
	return pagination.FromQuery(c.Request.URL.Query(), b.paging)
}

func (b Binder) period(c *gin.Context) (models.Period, bool) {
	var q struct {
		Period string `form:"period" validate:"omitempty,oneof=7days 30days year"`
	}
	if !b.bindQuery(c, &q) {
		return "", false
	}
	p, _ := models.ParsePeriod(q.Period)
	return p, true
}

// upload reads the multipart file field. The service enforces the size limit;
// reading stops one byte past it so oversize files are still detected.
func (b Binder) upload(c *gin.Context, field string) ([]byte, bool) {
	fh, err := c.FormFile(field)
	if err != nil {
		c.JSON(http.StatusUnprocessableEntity, gin.H{
			"error":   "Validation failed",
			"details": map[string]string{field: "Field '" + field + "' must be an uploaded file"},
		})
		return nil, false
	}
	f, err := fh.Open()
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Could not read uploaded file"})
		return nil, false
	}
	defer f.Close()

	var r io.Reader = f
	if b.maxUpload > 0 {
		r = io.LimitReader(f, b.maxUpload+1)
	}
	data, err := io.ReadAll(r)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Could not read uploaded file"})
		return nil, false
	}
	return data, true
}

// optionalUpload is upload for a file the client may omit.
func (b Binder) optionalUpload(c *gin.Context, field string) ([]byte, bool, bool) {
	if _, err := c.FormFile(field); err != nil {
		return nil, false, true
	}
	data, ok := b.upload(c, field)
	return data, true, ok
}

// parseID reads a positive numeric path parameter.
func parseID(c *gin.Context, param string) (int64, bool) {
	id, err := strconv.ParseInt(c.Param(param), 10, 64)
	if err != nil || id <= 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid " + param + " format"})
		return 0, false
	}
	return id, true
}

// principal returns the authenticated caller or answers 401.
func principal(c *gin.Context) (*middleware.Principal, bool) {
	p, ok := middleware.GetPrincipal(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return nil, false
	}
	return p, true
}

func userID(c *gin.Context) (int64, bool) {
	p, ok := principal(c)
	if !ok {
		return 0, false
	}
	return p.UserID, true
}
