package handler

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	ledgerapp "github.com/adagency/backoffice/internal/application/ledger"
	"github.com/adagency/backoffice/internal/domain/ledger"
)

// BillHandler handles bill API endpoints
type BillHandler struct {
	BaseHandler
	bills *ledgerapp.BillService
}

// NewBillHandler creates a new BillHandler
func NewBillHandler(bills *ledgerapp.BillService) *BillHandler {
	return &BillHandler{bills: bills}
}

// listBillsQuery holds bill list query parameters
type listBillsQuery struct {
	Page       int    `form:"page" binding:"omitempty,min=1"`
	PageSize   int    `form:"page_size" binding:"omitempty,min=1,max=100"`
	OrderBy    string `form:"order_by"`
	OrderDir   string `form:"order_dir" binding:"omitempty,oneof=asc desc"`
	CustomerID string `form:"customer_id" binding:"omitempty,uuid"`
	Status     string `form:"status" binding:"omitempty,oneof=debt deposit completed"`
	FromDate   string `form:"from_date" binding:"omitempty,datetime=2006-01-02"`
	ToDate     string `form:"to_date" binding:"omitempty,datetime=2006-01-02"`
}

// Get returns one bill
func (h *BillHandler) Get(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		h.BadRequest(c, "Invalid bill ID")
		return
	}

	resp, err := h.bills.GetBill(c.Request.Context(), id)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, resp)
}

// List returns bills matching the query filters
func (h *BillHandler) List(c *gin.Context) {
	var query listBillsQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	filter := ledger.BillFilter{}
	filter.Page = query.Page
	filter.PageSize = query.PageSize
	filter.OrderBy = query.OrderBy
	filter.OrderDir = query.OrderDir
	filter.Normalize()

	if query.CustomerID != "" {
		id := uuid.MustParse(query.CustomerID)
		filter.CustomerID = &id
	}
	if query.Status != "" {
		status := ledger.BillStatus(query.Status)
		filter.Status = &status
	}
	if query.FromDate != "" {
		from, _ := time.Parse("2006-01-02", query.FromDate)
		filter.FromDate = &from
	}
	if query.ToDate != "" {
		to, _ := time.Parse("2006-01-02", query.ToDate)
		filter.ToDate = &to
	}

	page, err := h.bills.ListBills(c.Request.Context(), filter)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.SuccessWithMeta(c, page.Items, page.Total, page.Page, page.PageSize)
}

// Update patches the manually editable bill fields
func (h *BillHandler) Update(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		h.BadRequest(c, "Invalid bill ID")
		return
	}

	var req ledgerapp.UpdateBillRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	resp, err := h.bills.UpdateBill(c.Request.Context(), id, req)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, resp)
}

// Delete removes a bill and all of its payments
func (h *BillHandler) Delete(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		h.BadRequest(c, "Invalid bill ID")
		return
	}

	if err := h.bills.DeleteBill(c.Request.Context(), id); err != nil {
		h.HandleError(c, err)
		return
	}

	h.NoContent(c)
}
