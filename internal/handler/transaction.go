package handler

import (
	"net/http"

	"minecoin/internal/middleware"
	"minecoin/internal/model"
	"minecoin/internal/service"

	"github.com/gin-gonic/gin"
)

// TransactionHandler handles buy orders.
type TransactionHandler struct {
	txs *service.TransactionService
}

func NewTransactionHandler(txs *service.TransactionService) *TransactionHandler {
	return &TransactionHandler{txs: txs}
}

// Buy creates a pending order for the authenticated member at the current
// site coin price. Any price field in the request body is ignored.
// @Router /transactions/buy [post]
func (h *TransactionHandler) Buy(c *gin.Context) {
	var req model.BuyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, model.NewErrorResponse(err.Error(), ""))
		return
	}

	user := middleware.CurrentUser(c)
	tx, err := h.txs.Create(c.Request.Context(), user.ID, req.Amount)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, model.NewSuccessResponse("Buy request submitted", tx))
}

// ListMine returns the authenticated member's non-deleted orders, newest first.
// @Router /transactions/mine [get]
func (h *TransactionHandler) ListMine(c *gin.Context) {
	user := middleware.CurrentUser(c)
	txs, err := h.txs.ListForUser(c.Request.Context(), user.ID)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, model.NewSuccessResponse("", txs))
}

// ListAll returns every order including soft-deleted ones. Admin only.
// @Router /transactions [get]
func (h *TransactionHandler) ListAll(c *gin.Context) {
	txs, err := h.txs.ListAll(c.Request.Context())
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, model.NewSuccessResponse("", txs))
}

// UpdateStatus approves or rejects an order. Admin only.
// @Router /transactions/:id/status [patch]
func (h *TransactionHandler) UpdateStatus(c *gin.Context) {
	var req model.TxStatusUpdate
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, model.NewErrorResponse(err.Error(), ""))
		return
	}

	if err := h.txs.UpdateStatus(c.Request.Context(), c.Param("id"), req.Status); err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, model.NewSuccessResponse("Order status updated", nil))
}

// SoftDelete flags an order as deleted. Admin only.
// @Router /transactions/:id [delete]
func (h *TransactionHandler) SoftDelete(c *gin.Context) {
	if err := h.txs.SoftDelete(c.Request.Context(), c.Param("id")); err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, model.NewSuccessResponse("Order deleted", nil))
}

// Restore clears an order's deleted flag. Master only; the service enforces
// the role again regardless of route gating.
// @Router /transactions/:id/restore [post]
func (h *TransactionHandler) Restore(c *gin.Context) {
	user := middleware.CurrentUser(c)
	if err := h.txs.Restore(c.Request.Context(), user.Role, c.Param("id")); err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, model.NewSuccessResponse("Order restored", nil))
}

// ApprovedTotal returns the sum of approved, non-deleted coin amounts for
// the authenticated member.
// @Router /transactions/approved-total [get]
func (h *TransactionHandler) ApprovedTotal(c *gin.Context) {
	user := middleware.CurrentUser(c)
	total, err := h.txs.ApprovedCoinTotal(c.Request.Context(), user.ID)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, model.NewSuccessResponse("", gin.H{"total": total}))
}
