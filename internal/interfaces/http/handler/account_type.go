package handler

import (
	"github.com/gin-gonic/gin"

	partnerapp "github.com/adagency/backoffice/internal/application/partner"
)

// AccountTypeHandler handles account type API endpoints
type AccountTypeHandler struct {
	BaseHandler
	accountTypes *partnerapp.AccountTypeService
}

// NewAccountTypeHandler creates a new AccountTypeHandler
func NewAccountTypeHandler(accountTypes *partnerapp.AccountTypeService) *AccountTypeHandler {
	return &AccountTypeHandler{accountTypes: accountTypes}
}

// Create creates a new account type
func (h *AccountTypeHandler) Create(c *gin.Context) {
	var req partnerapp.CreateAccountTypeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	resp, err := h.accountTypes.CreateAccountType(c.Request.Context(), req)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Created(c, resp)
}

// Get returns one account type
func (h *AccountTypeHandler) Get(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		h.BadRequest(c, "Invalid account type ID")
		return
	}

	resp, err := h.accountTypes.GetAccountType(c.Request.Context(), id)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, resp)
}

// List returns account types
func (h *AccountTypeHandler) List(c *gin.Context) {
	filter, err := bindListFilter(c)
	if err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	page, err := h.accountTypes.ListAccountTypes(c.Request.Context(), filter)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.SuccessWithMeta(c, page.Items, page.Total, page.Page, page.PageSize)
}

// Update patches an account type
func (h *AccountTypeHandler) Update(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		h.BadRequest(c, "Invalid account type ID")
		return
	}

	var req partnerapp.UpdateAccountTypeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	resp, err := h.accountTypes.UpdateAccountType(c.Request.Context(), id, req)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, resp)
}

// Delete removes an account type
func (h *AccountTypeHandler) Delete(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		h.BadRequest(c, "Invalid account type ID")
		return
	}

	if err := h.accountTypes.DeleteAccountType(c.Request.Context(), id); err != nil {
		h.HandleError(c, err)
		return
	}

	h.NoContent(c)
}
