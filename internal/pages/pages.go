// Package pages renders the login and post-login pages and carries their static assets.
package pages

import (
	"embed"
	"io/fs"

	"github.com/rohanthewiz/element"
)

const doctype = "<!DOCTYPE html>\n"

// AssetPrefix is the URL path the assets are mounted under.
const AssetPrefix = "/static/"

//go:embed assets
var embedded embed.FS

// Assets returns the embedded css/js tree rooted at assets/.
func Assets() fs.FS {
	sub, err := fs.Sub(embedded, "assets")
	if err != nil {
		panic(err) // the directory is embedded at build time
	}
	return sub
}

// LoginPage renders the page served at "/".
func LoginPage() string {
	b := element.NewBuilder()

	b.Html("lang", "en").R(
		head(b, "Agent Login"),
		b.Body("class", "gate").R(
			b.Main("class", "card").R(
				b.H1().T("Agent Login"),
				b.P("class", "hint").T("Enter your team ID and codeword."),
				b.Form("id", "login-form", "autocomplete", "off").R(
					b.Div("class", "form-group").R(
						b.Label("for", "teamId").T("Team ID"),
						b.Input("type", "text", "id", "teamId", "name", "teamId", "required", "required"),
					),
					b.Div("class", "form-group").R(
						b.Label("for", "codeword").T("Codeword"),
						b.Input("type", "password", "id", "codeword", "name", "codeword", "required", "required"),
					),
					b.Button("type", "submit", "id", "login-btn", "class", "btn-primary").T("Enter"),
				),
				b.P("id", "message", "class", "message", "role", "alert").R(),
			),
			b.Script("src", AssetPrefix+"js/login.js").R(),
		),
	)

	return doctype + b.String()
}

// IndexPage renders the page served at "/index" after a successful login.
// There is no server-side session; the page trusts the client-side redirect.
func IndexPage() string {
	b := element.NewBuilder()

	b.Html("lang", "en").R(
		head(b, "Mission Briefing"),
		b.Body("class", "gate").R(
			b.Main("class", "card").R(
				b.H1().T("Access Granted"),
				b.P().R(
					b.Span().T("Welcome, agent "),
					b.Span("id", "agent-name", "class", "agent").T("unknown"),
				),
				b.P("class", "hint").T("Your briefing will appear here."),
				b.Button("type", "button", "id", "logout-btn", "class", "btn-secondary").T("Log out"),
			),
			b.Script("src", AssetPrefix+"js/index.js").R(),
		),
	)

	return doctype + b.String()
}

func head(b *element.Builder, title string) any {
	return b.Head().R(
		b.Meta("charset", "UTF-8"),
		b.Meta("name", "viewport", "content", "width=device-width, initial-scale=1.0"),
		b.Title().T(title),
		b.Link("rel", "stylesheet", "href", AssetPrefix+"css/gate.css"),
	)
}
