package handlers

import (
	"net/http"

	"professionals-api/internal/models"
	"professionals-api/internal/services"

	"github.com/gin-gonic/gin"
)

const (
	companyCtx   = "company"   // public company resolved from :slug
	companyIDCtx = "companyID" // caller's own company
)

// CompanyBySlug resolves the :slug path parameter for public company routes.
func CompanyBySlug(companies services.CompanyService) gin.HandlerFunc {
	return func(c *gin.Context) {
		company, err := companies.GetBySlug(c.Request.Context(), c.Param("slug"))
		if err != nil {
			abortError(c, err, "retrieve company")
			return
		}
		c.Set(companyCtx, company)
		c.Next()
	}
}

// OwnCompany resolves the caller's company for /my-company sub-resources and
// answers 404 when the caller has not registered one.
func OwnCompany(companies services.CompanyService) gin.HandlerFunc {
	return func(c *gin.Context) {
		p, ok := principal(c)
		if !ok {
			c.Abort()
			return
		}
		company, err := companies.Mine(c.Request.Context(), p.UserID)
		if err != nil {
			abortError(c, err, "retrieve company")
			return
		}
		c.Set(companyIDCtx, company.ID)
		c.Next()
	}
}

func slugCompany(c *gin.Context) (*models.CompanyListing, bool) {
	v, ok := c.Get(companyCtx)
	company, _ := v.(*models.CompanyListing)
	if !ok || company == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Company not found"})
		return nil, false
	}
	return company, true
}

func ownCompanyID(c *gin.Context) (int64, bool) {
	id := c.GetInt64(companyIDCtx)
	if id == 0 {
		c.JSON(http.StatusNotFound, gin.H{"error": "No company registered"})
		return 0, false
	}
	return id, true
}

// companyAndID resolves the caller's company and the :id parameter.
func companyAndID(c *gin.Context) (int64, int64, bool) {
	companyID, ok := ownCompanyID(c)
	if !ok {
		return 0, 0, false
	}
	id, ok := parseID(c, "id")
	return companyID, id, ok
}
