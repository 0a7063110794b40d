package ui

import (
	"net/http"

	"userdesk/auth"

	"github.com/maxence-charriere/go-app/v9/pkg/app"
)

// Page state lives in unexported fields so a parent re-render does not
// overwrite it.
type LoginPage struct {
	app.Compo
	username string
	password string
	err      string
	loading  bool
}

func (p *LoginPage) login(ctx app.Context, e app.Event) {
	e.PreventDefault()
	p.loading = true
	p.err = ""
	p.Update()

	creds := auth.Credentials{
		Username: p.username,
		Password: p.password,
	}

	go func() {
		var resp auth.LoginResponse
		err := api.do(http.MethodPost, "/api/auth/login", creds, &resp)
		ctx.Dispatch(func(ctx app.Context) {
			p.loading = false
			if err != nil {
				p.err = errorText(err, "Connection failed")
				p.Update()
				return
			}
			ctx.Navigate("/users")
		})
	}()
}

func (p *LoginPage) Render() app.UI {
	return app.Div().Class("auth-container").Body(
		app.Div().Class("auth-card").Body(
			app.Div().Class("auth-header").Body(
				app.Div().Class("auth-icon").Body(
					app.Span().Class("material-symbols-rounded").Text("shield"),
				),
				app.H1().Class("auth-title").Text("Welcome Back"),
				app.Span().Class("auth-subtitle").Text("Sign in to your account"),
			),

			app.Form().Class("auth-form").OnSubmit(p.login).Body(
				field("Username", "text", p.username, p.ValueTo(&p.username), true),
				field("Password", "password", p.password, p.ValueTo(&p.password), false),
				formError(p.err),
				submitButton("Sign In", p.loading),
			),

			app.Div().Class("auth-footer").Body(
				app.Text("Don't have an account? "),
				app.A().Class("link-primary").Href("/register").Text("Create account"),
			),
		),
	)
}

type RegisterPage struct {
	app.Compo
	username string
	fullName string
	email    string
	password string
	confirm  string
	err      string
	loading  bool
}

func (p *RegisterPage) register(ctx app.Context, e app.Event) {
	e.PreventDefault()
	if msg := validateRegistration(p.password, p.confirm); msg != "" {
		p.err = msg
		p.Update()
		return
	}
	p.loading = true
	p.err = ""
	p.Update()

	req := auth.UserRequest{
		Username: p.username,
		FullName: p.fullName,
		Email:    p.email,
		Password: p.password,
	}

	go func() {
		err := api.do(http.MethodPost, "/api/auth/register", req, nil)
		ctx.Dispatch(func(ctx app.Context) {
			p.loading = false
			if err != nil {
				p.err = errorText(err, "Connection failed")
				p.Update()
				return
			}
			ctx.Navigate("/login")
		})
	}()
}

func validateRegistration(password, confirm string) string {
	if password != confirm {
		return "Passwords do not match"
	}
	return ""
}

func (p *RegisterPage) Render() app.UI {
	return app.Div().Class("auth-container").Body(
		app.Div().Class("auth-card").Body(
			app.Div().Class("auth-header").Body(
				app.Div().Class("auth-icon").Body(
					app.Span().Class("material-symbols-rounded").Text("person_add"),
				),
				app.H1().Class("auth-title").Text("Create Account"),
				app.Span().Class("auth-subtitle").Text("Register a new user"),
			),

			app.Form().Class("auth-form").OnSubmit(p.register).Body(
				field("Username", "text", p.username, p.ValueTo(&p.username), true),
				field("Full name", "text", p.fullName, p.ValueTo(&p.fullName), false),
				field("Email", "email", p.email, p.ValueTo(&p.email), false),
				field("Password", "password", p.password, p.ValueTo(&p.password), false),
				field("Confirm Password", "password", p.confirm, p.ValueTo(&p.confirm), false),
				formError(p.err),
				submitButton("Sign Up", p.loading),
			),

			app.Div().Class("auth-footer").Body(
				app.Text("Already have an account? "),
				app.A().Class("link-primary").Href("/login").Text("Sign In"),
			),
		),
	)
}

func field(label, typ, value string, onInput app.EventHandler, focus bool) app.UI {
	return app.Div().Class("md3-field").Body(
		app.Label().Text(label),
		app.Input().Type(typ).Required(true).Value(value).OnInput(onInput).AutoFocus(focus),
	)
}

func formError(msg string) app.UI {
	return app.If(msg != "",
		app.Div().Class("auth-error").Body(
			app.Span().Class("material-symbols-rounded").Text("error"),
			app.Text(msg),
		),
	)
}

func submitButton(label string, loading bool) app.UI {
	return app.Button().Type("submit").Class("btn-m3-primary").Disabled(loading).Body(
		app.If(loading,
			app.Div().Class("loader-spinner"),
		).Else(
			app.Text(label),
			app.Span().Class("material-symbols-rounded").Text("arrow_forward"),
		),
	)
}
