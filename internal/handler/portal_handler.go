package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"helpcenter/internal/domain"
	"helpcenter/internal/service"
)

// PortalHandler handles portal and category HTTP requests.
type PortalHandler struct {
	portalService service.PortalServiceInterface
}

// NewPortalHandler creates a new PortalHandler.
func NewPortalHandler(portalService service.PortalServiceInterface) *PortalHandler {
	return &PortalHandler{portalService: portalService}
}

// CreatePortalRequest represents the portal create payload.
type CreatePortalRequest struct {
	Name         string  `json:"name"`
	Slug         string  `json:"slug"`
	CustomDomain *string `json:"custom_domain"`
	Color        *string `json:"color"`
	HomepageLink *string `json:"homepage_link"`
	PageTitle    *string `json:"page_title"`
	HeaderText   *string `json:"header_text"`
}

// CreateCategoryRequest represents the category create payload.
type CreateCategoryRequest struct {
	Name        string  `json:"name"`
	Slug        string  `json:"slug"`
	Locale      string  `json:"locale"`
	Description *string `json:"description"`
}

// ListPortals handles GET /api/v1/accounts/:account_id/portals
func (h *PortalHandler) ListPortals(c *gin.Context) {
	portals, err := h.portalService.ListPortals(c.Request.Context(), c.Param("account_id"))
	if err != nil {
		respondError(c, err, "account not found")
		return
	}
	if portals == nil {
		portals = []domain.Portal{}
	}
	c.JSON(http.StatusOK, gin.H{"payload": portals})
}

// CreatePortal handles POST /api/v1/accounts/:account_id/portals
func (h *PortalHandler) CreatePortal(c *gin.Context) {
	var req CreatePortalRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}
	if req.Name == "" {
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": gin.H{"name": []string{"name_required"}}})
		return
	}

	portal := &domain.Portal{
		AccountID:    c.Param("account_id"),
		Name:         req.Name,
		Slug:         req.Slug,
		CustomDomain: req.CustomDomain,
		Color:        req.Color,
		HomepageLink: req.HomepageLink,
		PageTitle:    req.PageTitle,
		HeaderText:   req.HeaderText,
	}
	if err := h.portalService.CreatePortal(c.Request.Context(), portal); err != nil {
		respondError(c, err, "account not found")
		return
	}

	c.JSON(http.StatusCreated, gin.H{"payload": portal})
}

// resolvePortal looks up the portal addressed by the route.
func (h *PortalHandler) resolvePortal(c *gin.Context) *domain.Portal {
	portal, err := h.portalService.GetPortal(c.Request.Context(), c.Param("account_id"), c.Param("portal_slug"))
	if err != nil {
		respondError(c, err, "portal not found")
		return nil
	}
	return portal
}

// ListCategories handles GET /api/v1/accounts/:account_id/portals/:portal_slug/categories
func (h *PortalHandler) ListCategories(c *gin.Context) {
	portal := h.resolvePortal(c)
	if portal == nil {
		return
	}

	categories, err := h.portalService.ListCategories(c.Request.Context(), portal.ID)
	if err != nil {
		respondError(c, err, "portal not found")
		return
	}
	if categories == nil {
		categories = []domain.Category{}
	}
	c.JSON(http.StatusOK, gin.H{"payload": categories})
}

// CreateCategory handles POST /api/v1/accounts/:account_id/portals/:portal_slug/categories
func (h *PortalHandler) CreateCategory(c *gin.Context) {
	portal := h.resolvePortal(c)
	if portal == nil {
		return
	}

	var req CreateCategoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	category := &domain.Category{
		PortalID:    portal.ID,
		Name:        req.Name,
		Slug:        req.Slug,
		Locale:      req.Locale,
		Description: req.Description,
	}
	if err := h.portalService.CreateCategory(c.Request.Context(), category); err != nil {
		respondError(c, err, "portal not found")
		return
	}

	c.JSON(http.StatusCreated, gin.H{"payload": category})
}

// DeleteCategory handles DELETE /api/v1/accounts/:account_id/portals/:portal_slug/categories/:id
func (h *PortalHandler) DeleteCategory(c *gin.Context) {
	portal := h.resolvePortal(c)
	if portal == nil {
		return
	}

	id := c.Param("id")
	if _, err := uuid.Parse(id); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "id must be a valid UUID"})
		return
	}

	if err := h.portalService.DeleteCategory(c.Request.Context(), portal.ID, id); err != nil {
		respondError(c, err, "category not found")
		return
	}

	c.Status(http.StatusOK)
}
