package handlers

import (
	"fmt"
	"net/http"
	"net/url"

	"github.com/gin-gonic/gin"

	"github.com/nedcgroup/backoffice/internal/domain/model"
	"github.com/nedcgroup/backoffice/internal/server/http/dto"
	"github.com/nedcgroup/backoffice/internal/server/http/middleware"
	"github.com/nedcgroup/backoffice/internal/server/http/views"
)

const (
	tmplOrders = "orders/list"
	tmplOrder  = "orders/show"
	navOrders  = "orders"
)

// OrderHandler manages the per-operator order pages.
type OrderHandler struct {
	facade OrderFacade
	*Responder
}

// NewOrderHandler constructs OrderHandler.
func NewOrderHandler(facade OrderFacade, r *Responder) *OrderHandler {
	return &OrderHandler{facade: facade, Responder: r}
}

func ordersPath(operator string) string {
	return "/orders/" + url.PathEscape(operator)
}

func orderPath(operator, id string) string {
	return ordersPath(operator) + "/" + url.PathEscape(id)
}

// List handles GET /orders/:operator.
func (h *OrderHandler) List(c *gin.Context) {
	listing, err := h.facade.Orders(c.Request.Context(), middleware.CurrentIdentity(c), c.Param("operator"), c.Query("companyId"), listQuery(c))
	if err != nil {
		h.Fail(c, err)
		return
	}
	h.Render(c, http.StatusOK, tmplOrders, listing.Operator.Title()+" orders", navOrders, listing)
}

// Show handles GET /orders/:operator/:id.
func (h *OrderHandler) Show(c *gin.Context) {
	order, err := h.facade.Order(c.Request.Context(), middleware.CurrentIdentity(c), c.Param("operator"), c.Param("id"))
	if err != nil {
		h.Fail(c, err)
		return
	}
	h.Render(c, http.StatusOK, tmplOrder, "Order "+order.VoucherNumber, navOrders, order)
}

// ConfirmDelete handles GET /orders/:operator/:id/delete.
func (h *OrderHandler) ConfirmDelete(c *gin.Context) {
	operator, id := c.Param("operator"), c.Param("id")
	op, err := model.ParseOperator(operator)
	if err != nil {
		h.Fail(c, err)
		return
	}
	back := redirectTarget(c, ordersPath(operator))
	h.Confirm(c, "Delete order",
		fmt.Sprintf("Delete %s order %s? The voucher will be released.", op.Title(), id),
		views.Link(orderPath(operator, id)+"/delete", "redirectTo", back),
		back,
	)
}

// Delete handles POST /orders/:operator/:id/delete.
func (h *OrderHandler) Delete(c *gin.Context) {
	operator, id := c.Param("operator"), c.Param("id")
	back := redirectTarget(c, ordersPath(operator))

	var form dto.ConfirmForm
	if err := bind(c, &form); err != nil || !form.Confirmed() {
		h.Reject(c, "Deletion was not confirmed.", back)
		return
	}
	if err := h.facade.DeleteOrder(c.Request.Context(), middleware.CurrentIdentity(c), operator, id); err != nil {
		h.ActionFailed(c, err, back)
		return
	}
	h.Succeed(c, "Order was deleted.", back)
}

// GenerateInvoice handles POST /orders/:operator/invoice.
func (h *OrderHandler) GenerateInvoice(c *gin.Context) {
	operator := c.Param("operator")
	var form dto.PeriodForm
	err := bind(c, &form)
	back := redirectTarget(c, views.Link(ordersPath(operator), "companyId", form.CompanyID))
	if err != nil {
		h.ActionFailed(c, err, back)
		return
	}
	period, err := form.Period()
	if err != nil {
		h.ActionFailed(c, err, back)
		return
	}
	invoice, err := h.facade.GenerateOperatorInvoice(c.Request.Context(), middleware.CurrentIdentity(c), operator, form.CompanyID, period)
	if err != nil {
		h.ActionFailed(c, err, back)
		return
	}
	if invoice.Status == model.InvoiceStatusFailed {
		h.Reject(c, "The backend could not generate the invoice.", back)
		return
	}
	h.Succeed(c, fmt.Sprintf("Invoice for %s to %s was generated.", views.Date(period.From), views.Date(period.To)), back)
}
