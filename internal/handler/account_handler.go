package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"helpcenter/internal/dashboard"
	"helpcenter/internal/domain"
	"helpcenter/internal/service"
)

// AccountHandler handles the operator admin surface over accounts, driven
// by the declarative dashboard schema.
type AccountHandler struct {
	accountService service.AccountServiceInterface
}

// NewAccountHandler creates a new AccountHandler.
func NewAccountHandler(accountService service.AccountServiceInterface) *AccountHandler {
	return &AccountHandler{accountService: accountService}
}

// AccountResponse represents an account in the admin API response.
type AccountResponse struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	DisplayName string `json:"display_name"`
	Locale      string `json:"locale"`
	Status      string `json:"status"`
	CreatedAt   string `json:"created_at"`
	UpdatedAt   string `json:"updated_at"`
}

// CreateAccountRequest represents the account create payload.
type CreateAccountRequest struct {
	Name   string `json:"name"`
	Locale string `json:"locale"`
	Status string `json:"status"`
}

func toAccountResponse(a *domain.Account) AccountResponse {
	return AccountResponse{
		ID:          a.ID,
		Name:        a.Name,
		DisplayName: a.DisplayName(),
		Locale:      a.Locale,
		Status:      a.Status,
		CreatedAt:   a.CreatedAt.Format(TimeFormat),
		UpdatedAt:   a.UpdatedAt.Format(TimeFormat),
	}
}

// List handles GET /api/v1/admin/accounts
func (h *AccountHandler) List(c *gin.Context) {
	page := parsePage(c.Query("page"))

	accounts, meta, err := h.accountService.List(c.Request.Context(), c.Query("query"), page)
	if err != nil {
		respondError(c, err, "account not found")
		return
	}

	responses := make([]AccountResponse, 0, len(accounts))
	for i := range accounts {
		responses = append(responses, toAccountResponse(&accounts[i]))
	}

	c.JSON(http.StatusOK, gin.H{
		"payload": responses,
		"meta":    meta,
	})
}

// Show handles GET /api/v1/admin/accounts/:id
func (h *AccountHandler) Show(c *gin.Context) {
	account, err := h.accountService.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err, "account not found")
		return
	}

	c.JSON(http.StatusOK, gin.H{"id": account.ID, "name": account.Name})
}

// Create handles POST /api/v1/admin/accounts
func (h *AccountHandler) Create(c *gin.Context) {
	var req CreateAccountRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	account := &domain.Account{
		Name:   req.Name,
		Locale: req.Locale,
		Status: req.Status,
	}
	if err := h.accountService.Create(c.Request.Context(), account); err != nil {
		respondError(c, err, "account not found")
		return
	}

	c.JSON(http.StatusCreated, toAccountResponse(account))
}

// Update handles PATCH /api/v1/admin/accounts/:id
func (h *AccountHandler) Update(c *gin.Context) {
	var patch domain.AccountPatch
	if err := c.ShouldBindJSON(&patch); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	account, err := h.accountService.Update(c.Request.Context(), c.Param("id"), patch)
	if err != nil {
		respondError(c, err, "account not found")
		return
	}

	c.JSON(http.StatusOK, toAccountResponse(account))
}

// Schema handles GET /api/v1/admin/accounts/schema
func (h *AccountHandler) Schema(c *gin.Context) {
	c.JSON(http.StatusOK, dashboard.AccountSchema)
}
