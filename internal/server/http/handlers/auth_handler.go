package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	domainErrors "github.com/nedcgroup/backoffice/internal/domain/errors"
	"github.com/nedcgroup/backoffice/internal/pkg/session"
	"github.com/nedcgroup/backoffice/internal/server/http/dto"
	"github.com/nedcgroup/backoffice/internal/server/http/middleware"
)

const (
	tmplLogin = "login"
	// HomePath is where a signed-in admin lands by default.
	HomePath = "/companies"
)

type loginView struct {
	Email      string
	RedirectTo string
}

// AuthHandler processes sign-in and sign-out.
type AuthHandler struct {
	facade   AuthFacade
	sessions *session.Manager
	*Responder
}

// NewAuthHandler creates AuthHandler instance.
func NewAuthHandler(facade AuthFacade, sessions *session.Manager, r *Responder) *AuthHandler {
	return &AuthHandler{facade: facade, sessions: sessions, Responder: r}
}

// LoginPage handles GET /login.
func (h *AuthHandler) LoginPage(c *gin.Context) {
	target := middleware.SafeRedirect(c.Query("redirectTo"), "")
	if _, err := h.sessions.Identity(c.Request); err == nil {
		c.Redirect(http.StatusSeeOther, middleware.SafeRedirect(target, HomePath))
		return
	}
	h.Render(c, http.StatusOK, tmplLogin, "Sign in", "", loginView{RedirectTo: target})
}

// Login handles POST /login.
func (h *AuthHandler) Login(c *gin.Context) {
	var form dto.LoginForm
	if err := bind(c, &form); err != nil {
		h.RenderWithError(c, formStatus(err), tmplLogin, "Sign in", "", h.view(form), err)
		return
	}

	token, err := h.facade.Login(c.Request.Context(), form.Email, form.Password)
	if err != nil {
		_ = c.Error(err)
		if errors.Is(err, domainErrors.ErrUnauthorized) {
			err = errWrongCredentials
		}
		h.RenderWithError(c, formStatus(err), tmplLogin, "Sign in", "", h.view(form), err)
		return
	}

	h.sessions.Start(c.Writer, session.Identity{Admin: form.Email, Token: token})
	h.Succeed(c, "Signed in as "+form.Email+".", middleware.SafeRedirect(form.RedirectTo, HomePath))
}

// Logout handles POST /logout.
func (h *AuthHandler) Logout(c *gin.Context) {
	if id, err := h.sessions.Identity(c.Request); err == nil {
		h.facade.Logout(c.Request.Context(), id)
	}
	h.sessions.End(c.Writer)
	c.Redirect(http.StatusSeeOther, middleware.LoginPath)
}

func (h *AuthHandler) view(form dto.LoginForm) loginView {
	return loginView{Email: form.Email, RedirectTo: middleware.SafeRedirect(form.RedirectTo, "")}
}
