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
	tmplAdmins    = "admins/list"
	tmplAdminForm = "admins/form"
	navAdmins     = "admins"
)

type adminFormView struct {
	ID     string
	Form   dto.AdminForm
	Action string
	Roles  []model.AdminRole
}

// IsNew reports whether the form creates an account.
func (v adminFormView) IsNew() bool { return v.ID == "" }

var adminRoles = []model.AdminRole{model.AdminRoleAdmin, model.AdminRoleSuper}

// AdminHandler manages back-office accounts.
type AdminHandler struct {
	facade AdminFacade
	*Responder
}

// NewAdminHandler constructs AdminHandler.
func NewAdminHandler(facade AdminFacade, r *Responder) *AdminHandler {
	return &AdminHandler{facade: facade, Responder: r}
}

func adminPath(id string) string {
	return "/admins/" + url.PathEscape(id)
}

// List handles GET /admins.
func (h *AdminHandler) List(c *gin.Context) {
	listing, err := h.facade.Admins(c.Request.Context(), middleware.CurrentIdentity(c), listQuery(c))
	if err != nil {
		h.Fail(c, err)
		return
	}
	h.Render(c, http.StatusOK, tmplAdmins, "Admins", navAdmins, listing)
}

// New handles GET /admins/new.
func (h *AdminHandler) New(c *gin.Context) {
	h.Render(c, http.StatusOK, tmplAdminForm, "New admin", navAdmins, adminFormView{
		Form:   dto.AdminForm{Role: string(model.AdminRoleAdmin)},
		Action: "/admins",
		Roles:  adminRoles,
	})
}

// Create handles POST /admins.
func (h *AdminHandler) Create(c *gin.Context) {
	view := adminFormView{Action: "/admins", Roles: adminRoles}
	err := bind(c, &view.Form)
	if err == nil {
		var created *model.Admin
		created, err = h.facade.CreateAdmin(c.Request.Context(), middleware.CurrentIdentity(c), view.Form.Model(""))
		if err == nil {
			h.Succeed(c, fmt.Sprintf("Admin %s was created.", created.Email), "/admins")
			return
		}
	}
	h.formFailed(c, err, "New admin", view)
}

// Edit handles GET /admins/:id/edit.
func (h *AdminHandler) Edit(c *gin.Context) {
	adminID := c.Param("id")
	admin, err := h.facade.Admin(c.Request.Context(), middleware.CurrentIdentity(c), adminID)
	if err != nil {
		h.Fail(c, err)
		return
	}
	h.Render(c, http.StatusOK, tmplAdminForm, "Edit "+admin.Name, navAdmins, adminFormView{
		ID:     adminID,
		Form:   dto.AdminFormFrom(*admin),
		Action: adminPath(adminID),
		Roles:  adminRoles,
	})
}

// Update handles POST /admins/:id.
func (h *AdminHandler) Update(c *gin.Context) {
	adminID := c.Param("id")
	view := adminFormView{ID: adminID, Action: adminPath(adminID), Roles: adminRoles}
	err := bind(c, &view.Form)
	if err == nil {
		var updated *model.Admin
		updated, err = h.facade.UpdateAdmin(c.Request.Context(), middleware.CurrentIdentity(c), view.Form.Model(adminID))
		if err == nil {
			h.Succeed(c, fmt.Sprintf("Admin %s was saved.", updated.Email), "/admins")
			return
		}
	}
	h.formFailed(c, err, "Edit admin", view)
}

func (h *AdminHandler) formFailed(c *gin.Context, err error, title string, view adminFormView) {
	// Never echo a password back into the page.
	view.Form.Password = ""
	back := "/admins/new"
	if !view.IsNew() {
		back = adminPath(view.ID) + "/edit"
	}
	if status := formStatus(err); status == http.StatusUnprocessableEntity {
		_ = c.Error(err)
		h.RenderWithError(c, status, tmplAdminForm, title, navAdmins, view, err)
		return
	}
	h.ActionFailed(c, err, back)
}

// ConfirmDelete handles GET /admins/:id/delete.
func (h *AdminHandler) ConfirmDelete(c *gin.Context) {
	adminID := c.Param("id")
	name := c.Query("name")
	if name == "" {
		name = adminID
	}
	h.Confirm(c, "Delete admin",
		fmt.Sprintf("Delete admin %s? They will no longer be able to sign in.", name),
		adminPath(adminID)+"/delete",
		"/admins",
	)
}

// Delete handles POST /admins/:id/delete.
func (h *AdminHandler) Delete(c *gin.Context) {
	adminID := c.Param("id")
	var form dto.ConfirmForm
	if err := bind(c, &form); err != nil || !form.Confirmed() {
		h.Reject(c, "Deletion was not confirmed.", "/admins")
		return
	}
	if err := h.facade.DeleteAdmin(c.Request.Context(), middleware.CurrentIdentity(c), adminID); err != nil {
		h.ActionFailed(c, err, "/admins")
		return
	}
	h.Succeed(c, "Admin was deleted.", "/admins")
}
