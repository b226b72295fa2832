package account

import (
	"net/url"

	"github.com/a-h/templ"

	"github.com/dmitrymomot/signaturecraft/internal/ui"
	"github.com/dmitrymomot/signaturecraft/pkg/markup"
)

// DefaultPasswordViews returns the built-in login and registration views.
func DefaultPasswordViews() *PasswordViews {
	return &PasswordViews{
		LoginPage: func(p LoginParams) templ.Component {
			return ui.Page("Sign in", ui.Heading("Sign in"), loginForm(p), loginFooter(p))
		},
		LoginForm: func(p LoginParams) templ.Component {
			return markup.Component(loginForm(p))
		},
		RegisterPage: func(p RegisterParams) templ.Component {
			return ui.Page("Create account", ui.Heading("Create your account"), registerForm(p),
				markup.El("p", markup.Text("Already registered? "), ui.Link("Sign in", withNext("/account/login", p.Next))))
		},
		RegisterForm: func(p RegisterParams) templ.Component {
			return markup.Component(registerForm(p))
		},
	}
}

func loginForm(p LoginParams) *markup.Element {
	return markup.El("form",
		ui.Alert(p.Error),
		hiddenNext(p.Next),
		ui.Input("Email", "email", "email", p.Email, nil),
		ui.Input("Password", "password", "password", "", nil),
		ui.Button("Sign in"),
	).Attr("id", "login-form").Attr("method", "post").Attr("action", "/account/login")
}

func loginFooter(p LoginParams) *markup.Element {
	footer := markup.El("p", markup.Text("No account yet? "), ui.Link("Create one", withNext("/account/register", p.Next)))
	if p.GoogleLogin != "" {
		footer.Append(markup.Text(" or "), ui.Link("continue with Google", p.GoogleLogin))
	}
	return footer
}

func registerForm(p RegisterParams) *markup.Element {
	return markup.El("form",
		ui.Alert(p.Error),
		hiddenNext(p.Next),
		ui.Input("Name", "name", "text", p.Name, p.Fields),
		ui.Input("Email", "email", "email", p.Email, p.Fields),
		ui.Input("Password", "password", "password", "", p.Fields),
		ui.Button("Create account"),
	).Attr("id", "register-form").Attr("method", "post").Attr("action", "/account/register")
}

func hiddenNext(next string) markup.Node {
	return markup.If(next != "", markup.El("input").
		Attr("type", "hidden").
		Attr("name", "next").
		Attr("value", next))
}

func withNext(path, next string) string {
	if next == "" {
		return path
	}
	return path + "?next=" + url.QueryEscape(next)
}
