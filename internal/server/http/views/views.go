// Package views holds the HTML templates of the back-office.
package views

import (
	"embed"
	"fmt"
	"html/template"
	"net/url"
	"time"

	"github.com/shopspring/decimal"

	"github.com/nedcgroup/backoffice/internal/domain/model"
	"github.com/nedcgroup/backoffice/internal/pkg/session"
)

//go:embed templates/*.html
var files embed.FS

// Page is the data every template receives.
type Page struct {
	Title string
	// Nav marks the active navigation entry.
	Nav   string
	Admin string
	Flash *session.Flash
	// Path is the current request URI, used to return after actions.
	Path string
	Data any
}

// Parse parses every embedded template.
func Parse() (*template.Template, error) {
	tmpl, err := template.New("views").Funcs(Funcs()).ParseFS(files, "templates/*.html")
	if err != nil {
		return nil, fmt.Errorf("parse templates: %w", err)
	}
	return tmpl, nil
}

// MustParse is Parse for package initialisation and tests.
func MustParse() *template.Template {
	tmpl, err := Parse()
	if err != nil {
		panic(err)
	}
	return tmpl
}

// Funcs are the helpers available inside templates.
func Funcs() template.FuncMap {
	return template.FuncMap{
		"money":     Money,
		"date":      Date,
		"datetime":  DateTime,
		"link":      Link,
		"pager":     NewPager,
		"operators": func() []model.Operator { return model.Operators },
	}
}

// Money renders an amount with two decimals.
func Money(d decimal.Decimal) string {
	return d.StringFixed(2)
}

// Date renders a calendar date; the zero time renders empty.
func Date(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.Format(time.DateOnly)
}

// DateTime renders a timestamp to the minute.
func DateTime(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.Format("2006-01-02 15:04")
}

// Link builds path with query parameters given as key, value pairs.
// Empty strings and non-positive page numbers are left out.
func Link(path string, kv ...any) string {
	values := url.Values{}
	for i := 0; i+1 < len(kv); i += 2 {
		key := fmt.Sprint(kv[i])
		switch v := kv[i+1].(type) {
		case int:
			if v > 0 {
				values.Set(key, fmt.Sprint(v))
			}
		case string:
			if v != "" {
				values.Set(key, v)
			}
		case fmt.Stringer:
			if s := v.String(); s != "" {
				values.Set(key, s)
			}
		default:
			if s := fmt.Sprint(v); s != "" {
				values.Set(key, s)
			}
		}
	}
	if len(values) == 0 {
		return path
	}
	return path + "?" + values.Encode()
}

// Pager renders page links that keep the current search and filter.
type Pager struct {
	Path       string
	Params     []any
	Number     int
	TotalPages int
}

// NewPager builds a Pager; params are key, value pairs as for Link.
func NewPager(path string, number, totalPages int, params ...any) Pager {
	return Pager{Path: path, Params: params, Number: number, TotalPages: totalPages}
}

// URL links to page n.
func (p Pager) URL(n int) string {
	return Link(p.Path, append(append([]any{}, p.Params...), "page", n)...)
}

// HasPrev reports whether a previous page exists.
func (p Pager) HasPrev() bool { return p.Number > 1 }

// HasNext reports whether a next page exists.
func (p Pager) HasNext() bool { return p.Number < p.TotalPages }

// PrevURL links to the previous page.
func (p Pager) PrevURL() string { return p.URL(p.Number - 1) }

// NextURL links to the next page.
func (p Pager) NextURL() string { return p.URL(p.Number + 1) }
