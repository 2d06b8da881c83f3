package dashboard

import (
	"embed"
	"fmt"
	"html/template"
	"io"
	"net/url"
)

//go:embed templates/*.html
var templateFS embed.FS

var pageTemplate = template.Must(template.New("dashboard.html").Funcs(template.FuncMap{
	"claimedSelected": func(f Filters, v string) bool { return string(f.Claimed) == v },
}).ParseFS(templateFS, "templates/dashboard.html"))

type pageView struct {
	*Document
	ClaimsURL func(tileID string, kind ClaimKind) string
	CloseURL  string
}

// FilterQuery encodes f with the control names used by the page form.
func FilterQuery(f Filters) url.Values {
	q := url.Values{}
	if f.User != "" {
		q.Set(UserSearchControl, f.User)
	}
	if f.University != "" {
		q.Set(UniversitySearchControl, f.University)
	}
	if f.Module != "" {
		q.Set(ModuleSearchControl, f.Module)
	}
	if f.Claimed != "" && f.Claimed != ClaimAny {
		q.Set(ClaimedFilterControl, string(f.Claimed))
	}
	return q
}

// Render writes doc as the dashboard page. Claim buttons and the modal close
// link keep the current filter values in their query strings.
func Render(w io.Writer, doc *Document) error {
	base := FilterQuery(doc.Filters)
	view := pageView{
		Document: doc,
		ClaimsURL: func(tileID string, kind ClaimKind) string {
			q := url.Values{}
			for k, v := range base {
				q[k] = v
			}
			q.Set("tile", tileID)
			q.Set("claims", string(kind))
			return "?" + q.Encode()
		},
		CloseURL: "?" + base.Encode(),
	}
	if err := pageTemplate.Execute(w, view); err != nil {
		return fmt.Errorf("rendering dashboard %s: %w", doc.ID, err)
	}
	return nil
}
