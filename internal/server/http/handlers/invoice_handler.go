package handlers

import (
	"fmt"
	"net/http"
	"net/url"

	"github.com/gin-gonic/gin"

	"github.com/nedcgroup/backoffice/internal/domain/model"
	"github.com/nedcgroup/backoffice/internal/server/http/dto"
	"github.com/nedcgroup/backoffice/internal/server/http/middleware"
)

const (
	tmplInvoices = "invoices/list"
	tmplInvoice  = "invoices/show"
	navInvoices  = "invoices"
)

// InvoiceHandler manages the invoices pages.
type InvoiceHandler struct {
	facade InvoiceFacade
	*Responder
}

// NewInvoiceHandler constructs InvoiceHandler.
func NewInvoiceHandler(facade InvoiceFacade, r *Responder) *InvoiceHandler {
	return &InvoiceHandler{facade: facade, Responder: r}
}

// List handles GET /invoices.
func (h *InvoiceHandler) List(c *gin.Context) {
	listing, err := h.facade.Invoices(c.Request.Context(), middleware.CurrentIdentity(c), listQuery(c))
	if err != nil {
		h.Fail(c, err)
		return
	}
	h.Render(c, http.StatusOK, tmplInvoices, "Invoices", navInvoices, listing)
}

// Show handles GET /invoices/:id.
func (h *InvoiceHandler) Show(c *gin.Context) {
	invoice, err := h.facade.Invoice(c.Request.Context(), middleware.CurrentIdentity(c), c.Param("id"))
	if err != nil {
		h.Fail(c, err)
		return
	}
	h.Render(c, http.StatusOK, tmplInvoice, "Invoice "+invoice.ID, navInvoices, invoice)
}

// Generate handles POST /invoices.
func (h *InvoiceHandler) Generate(c *gin.Context) {
	back := redirectTarget(c, "/invoices")
	var form dto.PeriodForm
	if err := bind(c, &form); err != nil {
		h.ActionFailed(c, err, back)
		return
	}
	period, err := form.Period()
	if err != nil {
		h.ActionFailed(c, err, back)
		return
	}
	invoice, err := h.facade.GenerateInvoice(c.Request.Context(), middleware.CurrentIdentity(c), form.CompanyID, period)
	if err != nil {
		h.ActionFailed(c, err, back)
		return
	}
	if invoice.Status == model.InvoiceStatusFailed {
		h.Reject(c, "The backend could not generate the invoice.", back)
		return
	}
	if invoice.ID != "" {
		back = "/invoices/" + url.PathEscape(invoice.ID)
	}
	h.Succeed(c, fmt.Sprintf("Invoice for %s was generated.", invoiceCompany(invoice, form.CompanyID)), back)
}

func invoiceCompany(invoice *model.Invoice, fallback string) string {
	if invoice.CompanyName != "" {
		return invoice.CompanyName
	}
	return fallback
}
