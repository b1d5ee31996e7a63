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
	tmplCompanies   = "companies/list"
	tmplCompany     = "companies/show"
	tmplCompanyForm = "companies/form"
	navCompanies    = "companies"
)

type companyFormView struct {
	ID     string
	Form   dto.CompanyForm
	Action string
}

// IsNew reports whether the form creates a company.
func (v companyFormView) IsNew() bool { return v.ID == "" }

// CompanyHandler manages the companies pages.
type CompanyHandler struct {
	facade CompanyFacade
	*Responder
}

// NewCompanyHandler constructs CompanyHandler.
func NewCompanyHandler(facade CompanyFacade, r *Responder) *CompanyHandler {
	return &CompanyHandler{facade: facade, Responder: r}
}

func companyPath(id string) string {
	return "/companies/" + url.PathEscape(id)
}

// List handles GET /companies.
func (h *CompanyHandler) List(c *gin.Context) {
	id := middleware.CurrentIdentity(c)
	listing, err := h.facade.Companies(c.Request.Context(), id, listQuery(c))
	if err != nil {
		h.Fail(c, err)
		return
	}
	h.Render(c, http.StatusOK, tmplCompanies, "Companies", navCompanies, listing)
}

// Show handles GET /companies/:id.
func (h *CompanyHandler) Show(c *gin.Context) {
	id := middleware.CurrentIdentity(c)
	detail, err := h.facade.Company(c.Request.Context(), id, c.Param("id"), c.Query("operator"), listQuery(c))
	if err != nil {
		h.Fail(c, err)
		return
	}
	h.Render(c, http.StatusOK, tmplCompany, detail.Company.Name, navCompanies, detail)
}

// New handles GET /companies/new.
func (h *CompanyHandler) New(c *gin.Context) {
	h.Render(c, http.StatusOK, tmplCompanyForm, "New company", navCompanies, companyFormView{
		Form:   dto.CompanyForm{Active: true},
		Action: "/companies",
	})
}

// Create handles POST /companies.
func (h *CompanyHandler) Create(c *gin.Context) {
	view := companyFormView{Action: "/companies"}
	if err := bind(c, &view.Form); err != nil {
		h.RenderWithError(c, formStatus(err), tmplCompanyForm, "New company", navCompanies, view, err)
		return
	}
	company, err := view.Form.Model("")
	if err == nil {
		var created *model.Company
		created, err = h.facade.CreateCompany(c.Request.Context(), middleware.CurrentIdentity(c), company)
		if err == nil {
			h.Succeed(c, fmt.Sprintf("Company %s was created.", created.Name), companyPath(created.ID))
			return
		}
	}
	h.formFailed(c, err, "New company", view)
}

// Edit handles GET /companies/:id/edit.
func (h *CompanyHandler) Edit(c *gin.Context) {
	companyID := c.Param("id")
	detail, err := h.facade.Company(c.Request.Context(), middleware.CurrentIdentity(c), companyID, "", listQuery(c))
	if err != nil {
		h.Fail(c, err)
		return
	}
	h.Render(c, http.StatusOK, tmplCompanyForm, "Edit "+detail.Company.Name, navCompanies, companyFormView{
		ID:     companyID,
		Form:   dto.CompanyFormFrom(detail.Company),
		Action: companyPath(companyID),
	})
}

// Update handles POST /companies/:id.
func (h *CompanyHandler) Update(c *gin.Context) {
	companyID := c.Param("id")
	view := companyFormView{ID: companyID, Action: companyPath(companyID)}
	if err := bind(c, &view.Form); err != nil {
		h.RenderWithError(c, formStatus(err), tmplCompanyForm, "Edit company", navCompanies, view, err)
		return
	}
	company, err := view.Form.Model(companyID)
	if err == nil {
		var updated *model.Company
		updated, err = h.facade.UpdateCompany(c.Request.Context(), middleware.CurrentIdentity(c), company)
		if err == nil {
			h.Succeed(c, fmt.Sprintf("Company %s was saved.", updated.Name), companyPath(companyID))
			return
		}
	}
	h.formFailed(c, err, "Edit company", view)
}

func (h *CompanyHandler) formFailed(c *gin.Context, err error, title string, view companyFormView) {
	back := "/companies/new"
	if !view.IsNew() {
		back = companyPath(view.ID) + "/edit"
	}
	if status := formStatus(err); status == http.StatusUnprocessableEntity {
		_ = c.Error(err)
		h.RenderWithError(c, status, tmplCompanyForm, title, navCompanies, view, err)
		return
	}
	h.ActionFailed(c, err, back)
}

// ToggleStatus handles POST /companies/:id/status. The toast reports the
// status the backend answered with, not the requested one.
func (h *CompanyHandler) ToggleStatus(c *gin.Context) {
	companyID := c.Param("id")
	back := redirectTarget(c, companyPath(companyID))

	var form dto.StatusForm
	if err := bind(c, &form); err != nil {
		h.ActionFailed(c, err, back)
		return
	}
	updated, err := h.facade.SetCompanyStatus(c.Request.Context(), middleware.CurrentIdentity(c), companyID, form.Active)
	if err != nil {
		h.ActionFailed(c, err, back)
		return
	}
	state := "inactive"
	if updated.Active {
		state = "active"
	}
	name := updated.Name
	if name == "" {
		name = companyID
	}
	h.Succeed(c, fmt.Sprintf("Company %s is now %s.", name, state), back)
}

// ResetPassword handles POST /companies/:id/reset-password.
func (h *CompanyHandler) ResetPassword(c *gin.Context) {
	companyID := c.Param("id")
	back := redirectTarget(c, companyPath(companyID))
	if err := h.facade.ResetCompanyPassword(c.Request.Context(), middleware.CurrentIdentity(c), companyID); err != nil {
		h.ActionFailed(c, err, back)
		return
	}
	h.Succeed(c, "A new store password was issued.", back)
}

// ResetPin handles POST /companies/:id/reset-pin.
func (h *CompanyHandler) ResetPin(c *gin.Context) {
	companyID := c.Param("id")
	back := redirectTarget(c, companyPath(companyID))
	if err := h.facade.ResetCompanyPin(c.Request.Context(), middleware.CurrentIdentity(c), companyID); err != nil {
		h.ActionFailed(c, err, back)
		return
	}
	h.Succeed(c, "A new store PIN was issued.", back)
}

// ConfirmDelete handles GET /companies/:id/delete.
func (h *CompanyHandler) ConfirmDelete(c *gin.Context) {
	companyID := c.Param("id")
	name := c.Query("name")
	if name == "" {
		name = companyID
	}
	h.Confirm(c, "Delete company",
		fmt.Sprintf("Delete company %s? Its orders, invoices and payments will no longer be reachable.", name),
		companyPath(companyID)+"/delete",
		companyPath(companyID),
	)
}

// Delete handles POST /companies/:id/delete.
func (h *CompanyHandler) Delete(c *gin.Context) {
	companyID := c.Param("id")
	var form dto.ConfirmForm
	if err := bind(c, &form); err != nil || !form.Confirmed() {
		h.Reject(c, "Deletion was not confirmed.", companyPath(companyID))
		return
	}
	if err := h.facade.DeleteCompany(c.Request.Context(), middleware.CurrentIdentity(c), companyID); err != nil {
		h.ActionFailed(c, err, companyPath(companyID))
		return
	}
	h.Succeed(c, "Company was deleted.", "/companies")
}
