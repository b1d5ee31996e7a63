package handlers

import (
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strconv"
	"strings"
	"unicode"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"

	"github.com/nedcgroup/backoffice/internal/adapter/backend"
	domainErrors "github.com/nedcgroup/backoffice/internal/domain/errors"
	"github.com/nedcgroup/backoffice/internal/pkg/session"
	"github.com/nedcgroup/backoffice/internal/server/http/middleware"
	"github.com/nedcgroup/backoffice/internal/server/http/views"
	"github.com/nedcgroup/backoffice/internal/usecase"
)

const (
	tmplError   = "error"
	tmplConfirm = "confirm"
)

// errorView is rendered by the error boundary.
type errorView struct {
	Status  int
	Message string
}

// confirmView asks before a destructive action.
type confirmView struct {
	Message string
	Action  string
	Cancel  string
}

// Responder renders pages and turns failures into error pages or toasts.
type Responder struct {
	sessions *session.Manager
	logger   *slog.Logger
}

// NewResponder creates Responder instance.
func NewResponder(sessions *session.Manager, logger *slog.Logger) *Responder {
	return &Responder{sessions: sessions, logger: logger}
}

// Render executes the named template inside the page layout and shows any queued toast.
func (r *Responder) Render(c *gin.Context, status int, name, title, nav string, data any) {
	r.render(c, status, name, views.Page{
		Title: title,
		Nav:   nav,
		Flash: r.sessions.PopFlash(c.Writer, c.Request),
		Data:  data,
	})
}

// RenderWithError renders the page with an error toast for err instead of the queued one.
func (r *Responder) RenderWithError(c *gin.Context, status int, name, title, nav string, data any, err error) {
	r.render(c, status, name, views.Page{
		Title: title,
		Nav:   nav,
		Flash: &session.Flash{Kind: session.FlashError, Message: userMessage(err)},
		Data:  data,
	})
}

// formStatus picks the status of a re-rendered form after err.
func formStatus(err error) int {
	var verrs validator.ValidationErrors
	switch {
	case errors.As(err, &verrs),
		errors.Is(err, domainErrors.ErrInvalidInput),
		errors.Is(err, domainErrors.ErrInvalidDateRange):
		return http.StatusUnprocessableEntity
	case errors.Is(err, domainErrors.ErrUnauthorized), errors.Is(err, errWrongCredentials):
		return http.StatusUnauthorized
	case errors.Is(err, domainErrors.ErrNotFound):
		return http.StatusNotFound
	default:
		return http.StatusBadGateway
	}
}

// bind reads a posted form; failures are always invalid input.
func bind(c *gin.Context, form any) error {
	err := c.ShouldBind(form)
	if err == nil {
		return nil
	}
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) {
		return err
	}
	return fmt.Errorf("%w: the form could not be read", domainErrors.ErrInvalidInput)
}

func (r *Responder) render(c *gin.Context, status int, name string, page views.Page) {
	page.Admin = middleware.CurrentIdentity(c).Admin
	page.Path = c.Request.URL.RequestURI()
	c.HTML(status, name, page)
}

// Fail is the error boundary of page loaders.
func (r *Responder) Fail(c *gin.Context, err error) {
	_ = c.Error(err)
	switch {
	case errors.Is(err, domainErrors.ErrUnauthorized):
		r.sessions.End(c.Writer)
		c.Redirect(http.StatusSeeOther, middleware.LoginRedirect(c.Request.URL.RequestURI()))
	case errors.Is(err, domainErrors.ErrNotFound), errors.Is(err, domainErrors.ErrInvalidOperator):
		r.Render(c, http.StatusNotFound, tmplError, "Not found", "", errorView{
			Status:  http.StatusNotFound,
			Message: "The page you are looking for does not exist.",
		})
	case errors.Is(err, domainErrors.ErrInvalidInput), errors.Is(err, domainErrors.ErrInvalidDateRange):
		r.Render(c, http.StatusBadRequest, tmplError, "Bad request", "", errorView{
			Status:  http.StatusBadRequest,
			Message: userMessage(err),
		})
	default:
		r.Render(c, http.StatusBadGateway, tmplError, "Backend unavailable", "", errorView{
			Status:  http.StatusBadGateway,
			Message: "The backend could not be reached. Please try again.",
		})
	}
}

// Succeed queues a success toast and redirects.
func (r *Responder) Succeed(c *gin.Context, message, location string) {
	r.sessions.SetFlash(c.Writer, session.Flash{Kind: session.FlashSuccess, Message: message})
	c.Redirect(http.StatusSeeOther, location)
}

// Reject queues an error toast and redirects.
func (r *Responder) Reject(c *gin.Context, message, location string) {
	r.sessions.SetFlash(c.Writer, session.Flash{Kind: session.FlashError, Message: message})
	c.Redirect(http.StatusSeeOther, location)
}

// ActionFailed handles a failed mutation: an expired session goes to the login
// page, anything else returns to back with an error toast.
func (r *Responder) ActionFailed(c *gin.Context, err error, back string) {
	_ = c.Error(err)
	if errors.Is(err, domainErrors.ErrUnauthorized) {
		r.sessions.End(c.Writer)
		c.Redirect(http.StatusSeeOther, middleware.LoginRedirect(back))
		return
	}
	r.Reject(c, userMessage(err), back)
}

// Confirm renders the confirmation page of a destructive action.
func (r *Responder) Confirm(c *gin.Context, title, message, action, cancel string) {
	r.Render(c, http.StatusOK, tmplConfirm, title, "", confirmView{Message: message, Action: action, Cancel: cancel})
}

// redirectTarget reads the redirectTo field of an action and falls back to fallback.
func redirectTarget(c *gin.Context, fallback string) string {
	target := c.PostForm("redirectTo")
	if target == "" {
		target = c.Query("redirectTo")
	}
	return middleware.SafeRedirect(target, fallback)
}

// listQuery reads search, status and page of a list view.
func listQuery(c *gin.Context) usecase.ListQuery {
	page, err := strconv.Atoi(c.Query("page"))
	if err != nil {
		page = 1
	}
	return usecase.ListQuery{
		Search: c.Query("search"),
		Status: c.Query("status"),
		Page:   page,
	}
}

// errWrongCredentials is shown when the backend rejects a sign-in.
var errWrongCredentials = errors.New("wrong e-mail or password")

func userMessage(err error) string {
	if errors.Is(err, errWrongCredentials) {
		return "Wrong e-mail or password."
	}
	var apiErr *backend.APIError
	var verrs validator.ValidationErrors
	switch {
	case errors.As(err, &verrs):
		return validationMessage(verrs)
	case errors.As(err, &apiErr) && apiErr.Message != "" && apiErr.Status < http.StatusInternalServerError:
		return apiErr.Message
	case errors.Is(err, domainErrors.ErrInvalidDateRange):
		return "Choose a period whose start is not after its end."
	case errors.Is(err, domainErrors.ErrInvalidInput):
		msg := strings.TrimPrefix(err.Error(), domainErrors.ErrInvalidInput.Error()+": ")
		return capitalize(msg) + "."
	case errors.Is(err, domainErrors.ErrNotFound):
		return "The item no longer exists."
	case errors.Is(err, domainErrors.ErrUnauthorized):
		return "Your session has expired. Please sign in again."
	default:
		return "The backend request failed. Please try again."
	}
}

func validationMessage(verrs validator.ValidationErrors) string {
	parts := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		field := humanize(fe.Field())
		switch fe.Tag() {
		case "required":
			parts = append(parts, fmt.Sprintf("%s is required", field))
		case "email":
			parts = append(parts, fmt.Sprintf("%s must be a valid e-mail address", field))
		default:
			parts = append(parts, fmt.Sprintf("%s is invalid", field))
		}
	}
	return capitalize(strings.Join(parts, ", ")) + "."
}

// humanize turns a Go field name like ManagerEmail or CompanyID into
// "manager email" or "company id".
func humanize(field string) string {
	var b strings.Builder
	prevUpper := true
	for _, r := range field {
		upper := unicode.IsUpper(r)
		if upper && !prevUpper {
			b.WriteByte(' ')
		}
		prevUpper = upper
		b.WriteRune(unicode.ToLower(r))
	}
	return b.String()
}

func capitalize(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}
