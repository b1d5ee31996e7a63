package handlers

import (
	"net/http"
	"net/url"

	"github.com/gin-gonic/gin"

	"github.com/nedcgroup/backoffice/internal/domain/model"
	"github.com/nedcgroup/backoffice/internal/server/http/dto"
	"github.com/nedcgroup/backoffice/internal/server/http/middleware"
)

const (
	tmplPayments    = "payments/list"
	tmplPaymentForm = "payments/form"
)

type paymentsView struct {
	CompanyID string
	Payments  []model.PaymentHistory
}

type paymentFormView struct {
	CompanyID string
	ID        string
	Form      dto.PaymentForm
}

// PaymentHandler manages a company's payment history.
type PaymentHandler struct {
	facade PaymentFacade
	*Responder
}

// NewPaymentHandler constructs PaymentHandler.
func NewPaymentHandler(facade PaymentFacade, r *Responder) *PaymentHandler {
	return &PaymentHandler{facade: facade, Responder: r}
}

func paymentPath(companyID, id string) string {
	return companyPath(companyID) + "/payments/" + url.PathEscape(id)
}

// List handles GET /companies/:id/payments.
func (h *PaymentHandler) List(c *gin.Context) {
	companyID := c.Param("id")
	payments, err := h.facade.Payments(c.Request.Context(), middleware.CurrentIdentity(c), companyID)
	if err != nil {
		h.Fail(c, err)
		return
	}
	h.Render(c, http.StatusOK, tmplPayments, "Payments", navCompanies, paymentsView{CompanyID: companyID, Payments: payments})
}

// Create handles POST /companies/:id/payments.
func (h *PaymentHandler) Create(c *gin.Context) {
	companyID := c.Param("id")
	back := redirectTarget(c, companyPath(companyID))

	var form dto.PaymentForm
	if err := bind(c, &form); err != nil {
		h.ActionFailed(c, err, back)
		return
	}
	payment, err := form.Model("", companyID)
	if err != nil {
		h.ActionFailed(c, err, back)
		return
	}
	if _, err := h.facade.CreatePayment(c.Request.Context(), middleware.CurrentIdentity(c), payment); err != nil {
		h.ActionFailed(c, err, back)
		return
	}
	h.Succeed(c, "Payment of "+payment.Amount.StringFixed(2)+" was registered.", back)
}

// Edit handles GET /companies/:id/payments/:paymentID/edit.
func (h *PaymentHandler) Edit(c *gin.Context) {
	companyID, paymentID := c.Param("id"), c.Param("paymentID")
	payment, err := h.facade.Payment(c.Request.Context(), middleware.CurrentIdentity(c), companyID, paymentID)
	if err != nil {
		h.Fail(c, err)
		return
	}
	h.Render(c, http.StatusOK, tmplPaymentForm, "Edit payment", navCompanies, paymentFormView{
		CompanyID: companyID,
		ID:        paymentID,
		Form:      dto.PaymentFormFrom(*payment),
	})
}

// Update handles POST /companies/:id/payments/:paymentID.
func (h *PaymentHandler) Update(c *gin.Context) {
	companyID, paymentID := c.Param("id"), c.Param("paymentID")
	view := paymentFormView{CompanyID: companyID, ID: paymentID}

	err := bind(c, &view.Form)
	if err == nil {
		var payment model.PaymentHistory
		payment, err = view.Form.Model(paymentID, companyID)
		if err == nil {
			if _, err = h.facade.UpdatePayment(c.Request.Context(), middleware.CurrentIdentity(c), payment); err == nil {
				h.Succeed(c, "Payment was saved.", companyPath(companyID))
				return
			}
		}
	}
	if status := formStatus(err); status == http.StatusUnprocessableEntity {
		_ = c.Error(err)
		h.RenderWithError(c, status, tmplPaymentForm, "Edit payment", navCompanies, view, err)
		return
	}
	h.ActionFailed(c, err, paymentPath(companyID, paymentID)+"/edit")
}

// ConfirmDelete handles GET /companies/:id/payments/:paymentID/delete.
func (h *PaymentHandler) ConfirmDelete(c *gin.Context) {
	companyID, paymentID := c.Param("id"), c.Param("paymentID")
	h.Confirm(c, "Delete payment",
		"Delete this payment? The company balance will be recalculated by the backend.",
		paymentPath(companyID, paymentID)+"/delete",
		companyPath(companyID),
	)
}

// Delete handles POST /companies/:id/payments/:paymentID/delete.
func (h *PaymentHandler) Delete(c *gin.Context) {
	companyID, paymentID := c.Param("id"), c.Param("paymentID")
	back := companyPath(companyID)

	var form dto.ConfirmForm
	if err := bind(c, &form); err != nil || !form.Confirmed() {
		h.Reject(c, "Deletion was not confirmed.", back)
		return
	}
	if err := h.facade.DeletePayment(c.Request.Context(), middleware.CurrentIdentity(c), paymentID); err != nil {
		h.ActionFailed(c, err, back)
		return
	}
	h.Succeed(c, "Payment was deleted.", back)
}
