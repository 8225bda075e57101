package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"helpcenter/internal/domain"
	"helpcenter/internal/service"
)

// ArticleHandler handles article-related HTTP requests for a portal.
type ArticleHandler struct {
	articleService service.ArticleServiceInterface
	portalService  service.PortalServiceInterface
}

// NewArticleHandler creates a new ArticleHandler.
func NewArticleHandler(articleService service.ArticleServiceInterface, portalService service.PortalServiceInterface) *ArticleHandler {
	return &ArticleHandler{
		articleService: articleService,
		portalService:  portalService,
	}
}

// CreateArticleRequest represents the create payload. A supplied status is
// ignored: new articles always start as drafts.
type CreateArticleRequest struct {
	Title               string             `json:"title"`
	Slug                string             `json:"slug"`
	Content             string             `json:"content"`
	Description         *string            `json:"description"`
	Locale              string             `json:"locale"`
	Status              string             `json:"status"`
	CategoryID          *string            `json:"category_id"`
	AuthorID            string             `json:"author_id"`
	AssociatedArticleID *string            `json:"associated_article_id"`
	Meta                domain.ArticleMeta `json:"meta"`
}

// ReorderRequest maps category ids to the ordered article ids that should
// occupy positions 1..N in that category.
type ReorderRequest struct {
	Positions map[string][]string `json:"positions"`
}

// resolvePortal looks up the portal addressed by the route. A miss responds
// 404 and returns nil.
func (h *ArticleHandler) resolvePortal(c *gin.Context) *domain.Portal {
	accountID := c.Param("account_id")
	slug := c.Param("portal_slug")

	portal, err := h.portalService.GetPortal(c.Request.Context(), accountID, slug)
	if err != nil {
		respondError(c, err, "portal not found")
		return nil
	}
	return portal
}

// Index handles GET /api/v1/accounts/:account_id/portals/:portal_slug/articles
func (h *ArticleHandler) Index(c *gin.Context) {
	portal := h.resolvePortal(c)
	if portal == nil {
		return
	}

	filter := domain.ArticleFilter{
		Query:        c.Query("query"),
		CategorySlug: c.Query("category_slug"),
		Status:       c.Query("status"),
		AuthorID:     c.Query("author_id"),
		Locale:       c.Query("locale"),
	}
	page := parsePage(c.Query("page"))

	result, err := h.articleService.List(c.Request.Context(), portal.ID, filter, page)
	if err != nil {
		respondError(c, err, "portal not found")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"payload": toArticleResponses(result.Articles),
		"meta":    result.Meta,
	})
}

// Show handles GET /api/v1/accounts/:account_id/portals/:portal_slug/articles/:id
func (h *ArticleHandler) Show(c *gin.Context) {
	portal := h.resolvePortal(c)
	if portal == nil {
		return
	}

	id := c.Param("id")
	if _, err := uuid.Parse(id); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "id must be a valid UUID"})
		return
	}

	article, err := h.articleService.Get(c.Request.Context(), portal.ID, id)
	if err != nil {
		respondError(c, err, "article not found")
		return
	}

	c.JSON(http.StatusOK, gin.H{"payload": toArticleResponse(article)})
}

// Create handles POST /api/v1/accounts/:account_id/portals/:portal_slug/articles
func (h *ArticleHandler) Create(c *gin.Context) {
	portal := h.resolvePortal(c)
	if portal == nil {
		return
	}

	var req CreateArticleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	article := &domain.Article{
		PortalID:            portal.ID,
		CategoryID:          req.CategoryID,
		AuthorID:            req.AuthorID,
		AssociatedArticleID: req.AssociatedArticleID,
		Title:               req.Title,
		Slug:                req.Slug,
		Content:             req.Content,
		Description:         req.Description,
		Locale:              req.Locale,
		Status:              req.Status,
		Meta:                req.Meta,
	}

	if err := h.articleService.Create(c.Request.Context(), article); err != nil {
		respondError(c, err, "article not found")
		return
	}

	c.JSON(http.StatusCreated, gin.H{"payload": toArticleResponse(article)})
}

// Update handles PATCH /api/v1/accounts/:account_id/portals/:portal_slug/articles/:id
func (h *ArticleHandler) Update(c *gin.Context) {
	portal := h.resolvePortal(c)
	if portal == nil {
		return
	}

	id := c.Param("id")
	if _, err := uuid.Parse(id); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "id must be a valid UUID"})
		return
	}

	var patch domain.ArticlePatch
	if err := c.ShouldBindJSON(&patch); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	article, err := h.articleService.Update(c.Request.Context(), portal.ID, id, patch)
	if err != nil {
		respondError(c, err, "article not found")
		return
	}

	c.JSON(http.StatusOK, gin.H{"payload": toArticleResponse(article)})
}

// Destroy handles DELETE /api/v1/accounts/:account_id/portals/:portal_slug/articles/:id
func (h *ArticleHandler) Destroy(c *gin.Context) {
	portal := h.resolvePortal(c)
	if portal == nil {
		return
	}

	id := c.Param("id")
	if _, err := uuid.Parse(id); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "id must be a valid UUID"})
		return
	}

	if err := h.articleService.Delete(c.Request.Context(), portal.ID, id); err != nil {
		respondError(c, err, "article not found")
		return
	}

	c.Status(http.StatusOK)
}

// Reorder handles POST /api/v1/accounts/:account_id/portals/:portal_slug/articles/reorder
func (h *ArticleHandler) Reorder(c *gin.Context) {
	portal := h.resolvePortal(c)
	if portal == nil {
		return
	}

	var req ReorderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}
	if len(req.Positions) == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "positions mapping is required"})
		return
	}

	if err := h.articleService.Reorder(c.Request.Context(), portal.ID, req.Positions); err != nil {
		respondError(c, err, "article not found")
		return
	}

	c.Status(http.StatusOK)
}
