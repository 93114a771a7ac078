package handler

import (
	"github.com/gin-gonic/gin"

	ledgerapp "github.com/adagency/backoffice/internal/application/ledger"
)

// PaymentHandler handles payment API endpoints
type PaymentHandler struct {
	BaseHandler
	payments *ledgerapp.PaymentService
}

// NewPaymentHandler creates a new PaymentHandler
func NewPaymentHandler(payments *ledgerapp.PaymentService) *PaymentHandler {
	return &PaymentHandler{payments: payments}
}

// Create records a payment against a bill and recomputes the bill
func (h *PaymentHandler) Create(c *gin.Context) {
	var req ledgerapp.CreatePaymentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	resp, err := h.payments.CreatePayment(c.Request.Context(), req)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Created(c, resp)
}

// Update patches a payment and recomputes its bill
func (h *PaymentHandler) Update(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		h.BadRequest(c, "Invalid payment ID")
		return
	}

	var req ledgerapp.UpdatePaymentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	resp, err := h.payments.UpdatePayment(c.Request.Context(), id, req)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, resp)
}

// Delete removes a payment and recomputes its bill
func (h *PaymentHandler) Delete(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		h.BadRequest(c, "Invalid payment ID")
		return
	}

	if err := h.payments.DeletePayment(c.Request.Context(), id); err != nil {
		h.HandleError(c, err)
		return
	}

	h.NoContent(c)
}

// ListForBill returns a bill's payments newest first with the bill totals
func (h *PaymentHandler) ListForBill(c *gin.Context) {
	billID, ok := parseID(c)
	if !ok {
		h.BadRequest(c, "Invalid bill ID")
		return
	}

	payments, totals, err := h.payments.ListPaymentsForBill(c.Request.Context(), billID)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, gin.H{
		"payments": payments,
		"bill":     totals,
	})
}
