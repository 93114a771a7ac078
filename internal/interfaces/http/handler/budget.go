package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	partnerapp "github.com/adagency/backoffice/internal/application/partner"
	"github.com/adagency/backoffice/internal/domain/ledger"
	"github.com/adagency/backoffice/internal/domain/partner"
)

// BudgetHandler handles budget API endpoints
type BudgetHandler struct {
	BaseHandler
	budgets *partnerapp.BudgetService
}

// NewBudgetHandler creates a new BudgetHandler
func NewBudgetHandler(budgets *partnerapp.BudgetService) *BudgetHandler {
	return &BudgetHandler{budgets: budgets}
}

// listBudgetsQuery holds budget list query parameters
type listBudgetsQuery struct {
	Page          int    `form:"page" binding:"omitempty,min=1"`
	PageSize      int    `form:"page_size" binding:"omitempty,min=1,max=100"`
	OrderBy       string `form:"order_by"`
	OrderDir      string `form:"order_dir" binding:"omitempty,oneof=asc desc"`
	SupplierID    string `form:"supplier_id" binding:"omitempty,uuid"`
	AccountTypeID string `form:"account_type_id" binding:"omitempty,uuid"`
	ProductType   string `form:"product_type" binding:"omitempty,product_type"`
	Status        string `form:"status" binding:"omitempty,oneof=active inactive"`
}

// Create creates a new budget
func (h *BudgetHandler) Create(c *gin.Context) {
	var req partnerapp.CreateBudgetRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	resp, err := h.budgets.CreateBudget(c.Request.Context(), req)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Created(c, resp)
}

// Get returns one budget
func (h *BudgetHandler) Get(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		h.BadRequest(c, "Invalid budget ID")
		return
	}

	resp, err := h.budgets.GetBudget(c.Request.Context(), id)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, resp)
}

// List returns budgets matching the query filters
func (h *BudgetHandler) List(c *gin.Context) {
	var query listBudgetsQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	filter := partner.BudgetFilter{
		ProductType: ledger.ProductType(query.ProductType),
		Status:      partner.BudgetStatus(query.Status),
	}
	filter.Page = query.Page
	filter.PageSize = query.PageSize
	filter.OrderBy = query.OrderBy
	filter.OrderDir = query.OrderDir
	filter.Normalize()

	if query.SupplierID != "" {
		id := uuid.MustParse(query.SupplierID)
		filter.SupplierID = &id
	}
	if query.AccountTypeID != "" {
		id := uuid.MustParse(query.AccountTypeID)
		filter.AccountTypeID = &id
	}

	page, err := h.budgets.ListBudgets(c.Request.Context(), filter)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.SuccessWithMeta(c, page.Items, page.Total, page.Page, page.PageSize)
}

// Update patches a budget
func (h *BudgetHandler) Update(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		h.BadRequest(c, "Invalid budget ID")
		return
	}

	var req partnerapp.UpdateBudgetRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	resp, err := h.budgets.UpdateBudget(c.Request.Context(), id, req)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, resp)
}

// Delete removes a budget
func (h *BudgetHandler) Delete(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		h.BadRequest(c, "Invalid budget ID")
		return
	}

	if err := h.budgets.DeleteBudget(c.Request.Context(), id); err != nil {
		h.HandleError(c, err)
		return
	}

	h.NoContent(c)
}
