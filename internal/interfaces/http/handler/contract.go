package handler

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	ledgerapp "github.com/adagency/backoffice/internal/application/ledger"
	"github.com/adagency/backoffice/internal/domain/ledger"
)

// ContractHandler handles contract API endpoints
type ContractHandler struct {
	BaseHandler
	contracts *ledgerapp.ContractService
}

// NewContractHandler creates a new ContractHandler
func NewContractHandler(contracts *ledgerapp.ContractService) *ContractHandler {
	return &ContractHandler{contracts: contracts}
}

// listContractsQuery holds contract list query parameters
type listContractsQuery struct {
	Page          int    `form:"page" binding:"omitempty,min=1"`
	PageSize      int    `form:"page_size" binding:"omitempty,min=1,max=100"`
	OrderBy       string `form:"order_by"`
	OrderDir      string `form:"order_dir" binding:"omitempty,oneof=asc desc"`
	CustomerID    string `form:"customer_id" binding:"omitempty,uuid"`
	SupplierID    string `form:"supplier_id" binding:"omitempty,uuid"`
	AccountTypeID string `form:"account_type_id" binding:"omitempty,uuid"`
	ProductType   string `form:"product_type" binding:"omitempty,product_type"`
	FromDate      string `form:"from_date" binding:"omitempty,datetime=2006-01-02"`
	ToDate        string `form:"to_date" binding:"omitempty,datetime=2006-01-02"`
}

// Create signs a new contract
func (h *ContractHandler) Create(c *gin.Context) {
	var req ledgerapp.CreateContractRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	resp, err := h.contracts.CreateContract(c.Request.Context(), req)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Created(c, resp)
}

// Get returns one contract with its bill state
func (h *ContractHandler) Get(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		h.BadRequest(c, "Invalid contract ID")
		return
	}

	resp, err := h.contracts.GetContract(c.Request.Context(), id)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, resp)
}

// List returns contracts matching the query filters
func (h *ContractHandler) List(c *gin.Context) {
	var query listContractsQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	filter := ledger.ContractFilter{}
	filter.Page = query.Page
	filter.PageSize = query.PageSize
	filter.OrderBy = query.OrderBy
	filter.OrderDir = query.OrderDir
	filter.Normalize()

	if query.CustomerID != "" {
		id := uuid.MustParse(query.CustomerID)
		filter.CustomerID = &id
	}
	if query.SupplierID != "" {
		id := uuid.MustParse(query.SupplierID)
		filter.SupplierID = &id
	}
	if query.AccountTypeID != "" {
		id := uuid.MustParse(query.AccountTypeID)
		filter.AccountTypeID = &id
	}
	if query.ProductType != "" {
		pt := ledger.ProductType(query.ProductType)
		filter.ProductType = &pt
	}
	if query.FromDate != "" {
		from, _ := time.Parse("2006-01-02", query.FromDate)
		filter.FromDate = &from
	}
	if query.ToDate != "" {
		to, _ := time.Parse("2006-01-02", query.ToDate)
		filter.ToDate = &to
	}

	page, err := h.contracts.ListContracts(c.Request.Context(), filter)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.SuccessWithMeta(c, page.Items, page.Total, page.Page, page.PageSize)
}

// Update patches a contract, moving its value between bills when the
// grouping fields change
func (h *ContractHandler) Update(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		h.BadRequest(c, "Invalid contract ID")
		return
	}

	var req ledgerapp.UpdateContractRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	resp, err := h.contracts.UpdateContract(c.Request.Context(), id, req)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, resp)
}

// Delete terminates a contract and withdraws its value from its bill
func (h *ContractHandler) Delete(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		h.BadRequest(c, "Invalid contract ID")
		return
	}

	if err := h.contracts.DeleteContract(c.Request.Context(), id); err != nil {
		h.HandleError(c, err)
		return
	}

	h.NoContent(c)
}
