package handlers

import (
	"net/http"

	"professionals-api/internal/services"
	"professionals-api/internal/transport/dto"

	"github.com/gin-gonic/gin"
)

// CompanyContentHandler manages the caller's media, publications, org chart
// and HR contacts. Routes run behind OwnCompany.
type CompanyContentHandler struct {
	Binder
	service services.CompanyContentService
}

func NewCompanyContentHandler(service services.CompanyContentService, binder Binder) *CompanyContentHandler {
	return &CompanyContentHandler{Binder: binder, service: service}
}

// --- Media ---

// ListMedia godoc
// @Summary  List the company media
// @Tags     my-company
// @Success  200 {array} models.CompanyMedia
// @Router   /my-company/media [get]
// @Security BearerAuth
func (h *CompanyContentHandler) ListMedia(c *gin.Context) {
	companyID, ok := ownCompanyID(c)
	if !ok {
		return
	}
	items, err := h.service.ListMedia(c.Request.Context(), companyID)
	if err != nil {
		respondError(c, err, "list media")
		return
	}
	c.JSON(http.StatusOK, items)
}

// AddMedia godoc
// @Summary  Add an image, video or 3D tour
// @Tags     my-company
// @Param    body body dto.MediaRequest true "Media"
// @Success  201 {object} models.CompanyMedia
// @Router   /my-company/media [post]
// @Security BearerAuth
func (h *CompanyContentHandler) AddMedia(c *gin.Context) {
	companyID, ok := ownCompanyID(c)
	if !ok {
		return
	}
	var req dto.MediaRequest
	if !h.bindJSON(c, &req) {
		return
	}
	item, err := h.service.AddMedia(c.Request.Context(), companyID, &req)
	if err != nil {
		respondError(c, err, "add media")
		return
	}
	c.JSON(http.StatusCreated, item)
}

// UpdateMedia godoc
// @Summary  Update a media item
// @Tags     my-company
// @Param    id path int true "Media ID"
// @Param    body body dto.MediaRequest true "Media"
// @Success  200 {object} models.CompanyMedia
// @Router   /my-company/media/{id} [put]
// @Security BearerAuth
func (h *CompanyContentHandler) UpdateMedia(c *gin.Context) {
	companyID, id, ok := companyAndID(c)
	if !ok {
		return
	}
	var req dto.MediaRequest
	if !h.bindJSON(c, &req) {
		return
	}
	item, err := h.service.UpdateMedia(c.Request.Context(), companyID, id, &req)
	if err != nil {
		respondError(c, err, "update media")
		return
	}
	c.JSON(http.StatusOK, item)
}

// DeleteMedia godoc
// @Summary  Delete a media item
// @Tags     my-company
// @Param    id path int true "Media ID"
// @Success  204 "Deleted"
// @Router   /my-company/media/{id} [delete]
// @Security BearerAuth
func (h *CompanyContentHandler) DeleteMedia(c *gin.Context) {
	companyID, id, ok := companyAndID(c)
	if !ok {
		return
	}
	if err := h.service.DeleteMedia(c.Request.Context(), companyID, id); err != nil {
		respondError(c, err, "delete media")
		return
	}
	c.Status(http.StatusNoContent)
}

// ReorderMedia godoc
// @Summary      Reorder the media gallery
// @Description  ids must list every media item of the company exactly once.
// @Tags         my-company
// @Param        body body dto.ReorderMediaRequest true "Ordered ids"
// @Success      200 {array} models.CompanyMedia
// @Failure      422 {object} map[string]any "Ids do not match the gallery"
// @Router       /my-company/media/reorder [post]
// @Security     BearerAuth
func (h *CompanyContentHandler) ReorderMedia(c *gin.Context) {
	companyID, ok := ownCompanyID(c)
	if !ok {
		return
	}
	var req dto.ReorderMediaRequest
	if !h.bindJSON(c, &req) {
		return
	}
	items, err := h.service.ReorderMedia(c.Request.Context(), companyID, req.IDs)
	if err != nil {
		respondError(c, err, "reorder media")
		return
	}
	c.JSON(http.StatusOK, items)
}

// --- Publications ---

// ListPublications godoc
// @Summary  List all company publications, drafts included
// @Tags     my-company
// @Param    page query int false "Page"
// @Success  200 {object} pagination.PageResult[models.Publication]
// @Router   /my-company/publications [get]
// @Security BearerAuth
func (h *CompanyContentHandler) ListPublications(c *gin.Context) {
	companyID, ok := ownCompanyID(c)
	if !ok {
		return
	}
	result, err := h.service.ListPublications(c.Request.Context(), companyID, false, h.page(c))
	if err != nil {
		respondError(c, err, "list publications")
		return
	}
	c.JSON(http.StatusOK, result)
}

// CreatePublication godoc
// @Summary  Create a draft publication
// @Tags     my-company
// @Param    body body dto.PublicationRequest true "Publication"
// @Success  201 {object} models.Publication
// @Router   /my-company/publications [post]
// @Security BearerAuth
func (h *CompanyContentHandler) CreatePublication(c *gin.Context) {
	companyID, ok := ownCompanyID(c)
	if !ok {
		return
	}
	var req dto.PublicationRequest
	if !h.bindJSON(c, &req) {
		return
	}
	pub, err := h.service.CreatePublication(c.Request.Context(), companyID, &req)
	if err != nil {
		respondError(c, err, "create publication")
		return
	}
	c.JSON(http.StatusCreated, pub)
}

// GetPublication godoc
// @Summary  Get a publication
// @Tags     my-company
// @Param    id path int true "Publication ID"
// @Success  200 {object} models.Publication
// @Router   /my-company/publications/{id} [get]
// @Security BearerAuth
func (h *CompanyContentHandler) GetPublication(c *gin.Context) {
	companyID, id, ok := companyAndID(c)
	if !ok {
		return
	}
	pub, err := h.service.GetPublication(c.Request.Context(), companyID, id, false)
	if err != nil {
		respondError(c, err, "retrieve publication")
		return
	}
	c.JSON(http.StatusOK, pub)
}

// UpdatePublication godoc
// @Summary  Update a publication
// @Tags     my-company
// @Param    id path int true "Publication ID"
// @Param    body body dto.PublicationRequest true "Publication"
// @Success  200 {object} models.Publication
// @Router   /my-company/publications/{id} [put]
// @Security BearerAuth
func (h *CompanyContentHandler) UpdatePublication(c *gin.Context) {
	companyID, id, ok := companyAndID(c)
	if !ok {
		return
	}
	var req dto.PublicationRequest
	if !h.bindJSON(c, &req) {
		return
	}
	pub, err := h.service.UpdatePublication(c.Request.Context(), companyID, id, &req)
	if err != nil {
		respondError(c, err, "update publication")
		return
	}
	c.JSON(http.StatusOK, pub)
}

// DeletePublication godoc
// @Summary  Delete a publication
// @Tags     my-company
// @Param    id path int true "Publication ID"
// @Success  204 "Deleted"
// @Router   /my-company/publications/{id} [delete]
// @Security BearerAuth
func (h *CompanyContentHandler) DeletePublication(c *gin.Context) {
	companyID, id, ok := companyAndID(c)
	if !ok {
		return
	}
	if err := h.service.DeletePublication(c.Request.Context(), companyID, id); err != nil {
		respondError(c, err, "delete publication")
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *CompanyContentHandler) setPublished(c *gin.Context, published bool) {
	companyID, id, ok := companyAndID(c)
	if !ok {
		return
	}
	pub, err := h.service.SetPublicationPublished(c.Request.Context(), companyID, id, published)
	if err != nil {
		respondError(c, err, "change publication state")
		return
	}
	c.JSON(http.StatusOK, pub)
}

// PublishPublication godoc
// @Summary  Publish a publication
// @Tags     my-company
// @Param    id path int true "Publication ID"
// @Success  200 {object} models.Publication
// @Router   /my-company/publications/{id}/publish [post]
// @Security BearerAuth
func (h *CompanyContentHandler) PublishPublication(c *gin.Context) {
	h.setPublished(c, true)
}

// UnpublishPublication godoc
// @Summary  Unpublish a publication
// @Tags     my-company
// @Param    id path int true "Publication ID"
// @Success  200 {object} models.Publication
// @Router   /my-company/publications/{id}/unpublish [post]
// @Security BearerAuth
func (h *CompanyContentHandler) UnpublishPublication(c *gin.Context) {
	h.setPublished(c, false)
}

// --- Org chart ---

// OrgTree godoc
// @Summary  Get the organisation chart
// @Tags     my-company
// @Success  200 {array} models.OrgNode
// @Router   /my-company/org [get]
// @Security BearerAuth
func (h *CompanyContentHandler) OrgTree(c *gin.Context) {
	companyID, ok := ownCompanyID(c)
	if !ok {
		return
	}
	tree, err := h.service.OrgTree(c.Request.Context(), companyID)
	if err != nil {
		respondError(c, err, "load org chart")
		return
	}
	c.JSON(http.StatusOK, tree)
}

// CreateOrgNode godoc
// @Summary  Add an org chart node
// @Tags     my-company
// @Param    body body dto.OrgNodeRequest true "Node"
// @Success  201 {object} models.OrgNode
// @Router   /my-company/org [post]
// @Security BearerAuth
func (h *CompanyContentHandler) CreateOrgNode(c *gin.Context) {
	companyID, ok := ownCompanyID(c)
	if !ok {
		return
	}
	var req dto.OrgNodeRequest
	if !h.bindJSON(c, &req) {
		return
	}
	node, err := h.service.CreateOrgNode(c.Request.Context(), companyID, &req)
	if err != nil {
		respondError(c, err, "create org node")
		return
	}
	c.JSON(http.StatusCreated, node)
}

// UpdateOrgNode godoc
// @Summary  Update an org chart node
// @Tags     my-company
// @Param    id path int true "Node ID"
// @Param    body body dto.OrgNodeRequest true "Node"
// @Success  200 {object} models.OrgNode
// @Failure  422 {object} map[string]any "Unknown parent or cycle"
// @Router   /my-company/org/{id} [put]
// @Security BearerAuth
func (h *CompanyContentHandler) UpdateOrgNode(c *gin.Context) {
	companyID, id, ok := companyAndID(c)
	if !ok {
		return
	}
	var req dto.OrgNodeRequest
	if !h.bindJSON(c, &req) {
		return
	}
	node, err := h.service.UpdateOrgNode(c.Request.Context(), companyID, id, &req)
	if err != nil {
		respondError(c, err, "update org node")
		return
	}
	c.JSON(http.StatusOK, node)
}

// DeleteOrgNode godoc
// @Summary  Delete an org chart node
// @Description Children move up to the deleted node's parent.
// @Tags     my-company
// @Param    id path int true "Node ID"
// @Success  204 "Deleted"
// @Router   /my-company/org/{id} [delete]
// @Security BearerAuth
func (h *CompanyContentHandler) DeleteOrgNode(c *gin.Context) {
	companyID, id, ok := companyAndID(c)
	if !ok {
		return
	}
	if err := h.service.DeleteOrgNode(c.Request.Context(), companyID, id); err != nil {
		respondError(c, err, "delete org node")
		return
	}
	c.Status(http.StatusNoContent)
}

// ReorderOrg godoc
// @Summary  Move org chart nodes
// @Tags     my-company
// @Param    body body dto.ReorderOrgRequest true "New parents and positions"
// @Success  200 {array} models.OrgNode
// @Failure  422 {object} map[string]any "Unknown node or cycle"
// @Router   /my-company/org/reorder [post]
// @Security BearerAuth
func (h *CompanyContentHandler) ReorderOrg(c *gin.Context) {
	companyID, ok := ownCompanyID(c)
	if !ok {
		return
	}
	var req dto.ReorderOrgRequest
	if !h.bindJSON(c, &req) {
		return
	}
	tree, err := h.service.ReorderOrg(c.Request.Context(), companyID, &req)
	if err != nil {
		respondError(c, err, "reorder org chart")
		return
	}
	c.JSON(http.StatusOK, tree)
}

// --- HR contacts ---

// ListHRContacts godoc
// @Summary  List HR contacts
// @Tags     my-company
// @Success  200 {array} models.HRContact
// @Router   /my-company/hr-contacts [get]
// @Security BearerAuth
func (h *CompanyContentHandler) ListHRContacts(c *gin.Context) {
	companyID, ok := ownCompanyID(c)
	if !ok {
		return
	}
	contacts, err := h.service.ListHRContacts(c.Request.Context(), companyID)
	if err != nil {
		respondError(c, err, "list HR contacts")
		return
	}
	c.JSON(http.StatusOK, contacts)
}

// CreateHRContact godoc
// @Summary  Add an HR contact
// @Description The first contact of a company becomes primary.
// @Tags     my-company
// @Param    body body dto.HRContactRequest true "Contact"
// @Success  201 {object} models.HRContact
// @Router   /my-company/hr-contacts [post]
// @Security BearerAuth
func (h *CompanyContentHandler) CreateHRContact(c *gin.Context) {
	companyID, ok := ownCompanyID(c)
	if !ok {
		return
	}
	var req dto.HRContactRequest
	if !h.bindJSON(c, &req) {
		return
	}
	contact, err := h.service.CreateHRContact(c.Request.Context(), companyID, &req)
	if err != nil {
		respondError(c, err, "create HR contact")
		return
	}
	c.JSON(http.StatusCreated, contact)
}

// GetHRContact godoc
// @Summary  Get an HR contact
// @Tags     my-company
// @Param    id path int true "Contact ID"
// @Success  200 {object} models.HRContact
// @Router   /my-company/hr-contacts/{id} [get]
// @Security BearerAuth
func (h *CompanyContentHandler) GetHRContact(c *gin.Context) {
	companyID, id, ok := companyAndID(c)
	if !ok {
		return
	}
	contact, err := h.service.GetHRContact(c.Request.Context(), companyID, id)
	if err != nil {
		respondError(c, err, "retrieve HR contact")
		return
	}
	c.JSON(http.StatusOK, contact)
}

// UpdateHRContact godoc
// @Summary  Update an HR contact
// @Tags     my-company
// @Param    id path int true "Contact ID"
// @Param    body body dto.HRContactRequest true "Contact"
// @Success  200 {object} models.HRContact
// @Router   /my-company/hr-contacts/{id} [put]
// @Security BearerAuth
func (h *CompanyContentHandler) UpdateHRContact(c *gin.Context) {
	companyID, id, ok := companyAndID(c)
	if !ok {
		return
	}
	var req dto.HRContactRequest
	if !h.bindJSON(c, &req) {
		return
	}
	contact, err := h.service.UpdateHRContact(c.Request.Context(), companyID, id, &req)
	if err != nil {
		respondError(c, err, "update HR contact")
		return
	}
	c.JSON(http.StatusOK, contact)
}

// DeleteHRContact godoc
// @Summary  Delete an HR contact
// @Tags     my-company
// @Param    id path int true "Contact ID"
// @Success  204 "Deleted"
// @Router   /my-company/hr-contacts/{id} [delete]
// @Security BearerAuth
func (h *CompanyContentHandler) DeleteHRContact(c *gin.Context) {
	companyID, id, ok := companyAndID(c)
	if !ok {
		return
	}
	if err := h.service.DeleteHRContact(c.Request.Context(), companyID, id); err != nil {
		respondError(c, err, "delete HR contact")
		return
	}
	c.Status(http.StatusNoContent)
}

// SetPrimaryHRContact godoc
// @Summary  Make a contact the primary one
// @Tags     my-company
// @Param    id path int true "Contact ID"
// @Success  200 {array} models.HRContact
// @Router   /my-company/hr-contacts/{id}/primary [post]
// @Security BearerAuth
func (h *CompanyContentHandler) SetPrimaryHRContact(c *gin.Context) {
	companyID, id, ok := companyAndID(c)
	if !ok {
		return
	}
	contacts, err := h.service.SetPrimaryHRContact(c.Request.Context(), companyID, id)
	if err != nil {
		respondError(c, err, "set primary HR contact")
		return
	}
	c.JSON(http.StatusOK, contacts)
}
