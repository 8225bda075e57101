package handler

import (
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	validation "github.com/go-ozzo/ozzo-validation/v4"

	"helpcenter/internal/domain"
	"helpcenter/internal/logger"
	"helpcenter/internal/middleware"
	"helpcenter/internal/validator"
)

// ArticleResponse represents an article in the API response.
type ArticleResponse struct {
	ID                  string             `json:"id"`
	PortalID            string             `json:"portal_id"`
	CategoryID          *string            `json:"category_id,omitempty"`
	AuthorID            string             `json:"author_id"`
	AssociatedArticleID *string            `json:"associated_article_id,omitempty"`
	Title               string             `json:"title"`
	Slug                string             `json:"slug"`
	Content             string             `json:"content"`
	Description         *string            `json:"description,omitempty"`
	Locale              string             `json:"locale"`
	Status              string             `json:"status"`
	Position            int                `json:"position"`
	Meta                domain.ArticleMeta `json:"meta"`
	Views               int                `json:"views"`
	CreatedAt           string             `json:"created_at"`
	UpdatedAt           string             `json:"updated_at"`
}

// toArticleResponse converts a domain.Article to an ArticleResponse.
func toArticleResponse(a *domain.Article) ArticleResponse {
	return ArticleResponse{
		ID:                  a.ID,
		PortalID:            a.PortalID,
		CategoryID:          a.CategoryID,
		AuthorID:            a.AuthorID,
		AssociatedArticleID: a.AssociatedArticleID,
		Title:               a.Title,
		Slug:                a.Slug,
		Content:             a.Content,
		Description:         a.Description,
		Locale:              a.Locale,
		Status:              a.Status,
		Position:            a.Position,
		Meta:                a.Meta,
		Views:               a.Views,
		CreatedAt:           a.CreatedAt.Format(TimeFormat),
		UpdatedAt:           a.UpdatedAt.Format(TimeFormat),
	}
}

func toArticleResponses(articles []domain.Article) []ArticleResponse {
	responses := make([]ArticleResponse, 0, len(articles))
	for i := range articles {
		responses = append(responses, toArticleResponse(&articles[i]))
	}
	return responses
}

// respondError maps a service error to the wire contract: validation
// failures become a 422 with the field -> messages map, scope misses a 404,
// anything else a logged 500.
func respondError(c *gin.Context, err error, notFoundMessage string) {
	var ve validation.Errors
	if errors.As(err, &ve) {
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": validator.FieldErrors(ve)})
		return
	}
	if errors.Is(err, domain.ErrNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": notFoundMessage})
		return
	}

	logger.Error("Request failed",
		slog.String("request_id", middleware.GetRequestID(c)),
		slog.String("path", c.FullPath()),
		slog.String("error", err.Error()))
	c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
}

// parsePage parses a 1-based page parameter. Absent or malformed values
// degrade to page 1 instead of failing the request.
func parsePage(raw string) int {
	page, err := strconv.Atoi(raw)
	if err != nil || page < 1 {
		return 1
	}
	return page
}
