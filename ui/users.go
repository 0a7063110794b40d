package ui

import (
	"net/http"
	"strconv"

	"userdesk/auth"

	"github.com/maxence-charriere/go-app/v9/pkg/app"
)

type ListUsers struct {
	app.Compo
	users        []auth.UserResponse
	loading      bool
	unauthorized bool
	err          string
}

func (p *ListUsers) OnMount(ctx app.Context) {
	p.load(ctx)
}

func (p *ListUsers) load(ctx app.Context) {
	p.loading = true
	p.err = ""
	p.Update()

	go func() {
		var users []auth.UserResponse
		err := api.do(http.MethodGet, "/api/users", nil, &users)
		ctx.Dispatch(func(ctx app.Context) {
			p.loading = false
			p.unauthorized = isUnauthorized(err)
			if err != nil {
				p.err = errorText(err, "Failed to fetch users")
			} else {
				p.users = users
			}
			p.Update()
		})
	}()
}

func (p *ListUsers) remove(ctx app.Context, id int) {
	go func() {
		err := api.do(http.MethodDelete, "/api/users/"+strconv.Itoa(id), nil, nil)
		ctx.Dispatch(func(ctx app.Context) {
			if err != nil {
				p.unauthorized = isUnauthorized(err)
				p.err = errorText(err, "Failed to delete user")
				p.Update()
				return
			}
			p.users = withoutUser(p.users, id)
			p.Update()
		})
	}()
}

func (p *ListUsers) logout(ctx app.Context, e app.Event) {
	e.PreventDefault()
	go func() {
		api.do(http.MethodPost, "/api/auth/logout", nil, nil)
		ctx.Dispatch(func(ctx app.Context) {
			ctx.Navigate("/login")
		})
	}()
}

func withoutUser(users []auth.UserResponse, id int) []auth.UserResponse {
	out := make([]auth.UserResponse, 0, len(users))
	for _, u := range users {
		if u.ID != id {
			out = append(out, u)
		}
	}
	return out
}

func (p *ListUsers) Render() app.UI {
	return app.Div().Class("page users").Body(
		app.Div().Class("top-bar").Body(
			app.Div().Body(
				app.H1().Class("page-title").Text("Users"),
				app.Span().Class("page-subtitle").Text("Registered accounts"),
			),
			app.If(!p.unauthorized,
				app.Button().Class("btn-icon").Title("Sign Out").OnClick(p.logout).Body(
					app.Span().Class("material-symbols-rounded").Text("logout"),
				),
			),
		),
		app.If(p.loading,
			&Loader{Label: "Loading users..."},
		).ElseIf(p.unauthorized,
			app.Div().Class("auth-footer").Body(
				app.Text("Please sign in to see the user list. "),
				app.A().Class("link-primary").Href("/login").Text("Sign In"),
			),
		).ElseIf(p.err != "",
			app.Div().Class("auth-error").Text(p.err),
		).Else(
			p.table(),
		),
	)
}

func (p *ListUsers) table() app.UI {
	return app.Div().Class("repo-panel").Body(
		app.Table().Body(
			app.THead().Body(
				app.Tr().Body(
					app.Th().Style("width", "80px").Text("ID"),
					app.Th().Text("Username"),
					app.Th().Text("Email"),
					app.Th().Style("width", "60px"),
				),
			),
			app.TBody().Body(
				app.Range(p.users).Slice(func(i int) app.UI {
					u := p.users[i]
					return app.Tr().Class("table-row").Body(
						app.Td().Text(strconv.Itoa(u.ID)),
						app.Td().Text(u.Username),
						app.Td().Text(u.Email),
						app.Td().Body(
							app.Button().Class("btn-icon").Title("Delete").
								OnClick(func(ctx app.Context, e app.Event) {
									p.remove(ctx, u.ID)
								}).
								Body(app.Span().Class("material-symbols-rounded").Text("delete")),
						),
					)
				}),
				app.If(len(p.users) == 0,
					app.Tr().Body(
						app.Td().ColSpan(4).Style("opacity", "0.5").Text("No users registered"),
					),
				),
			),
		),
	)
}
