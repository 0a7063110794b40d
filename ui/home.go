package ui

import (
	"net/http"
	"strconv"

	"userdesk/checker"

	"github.com/maxence-charriere/go-app/v9/pkg/app"
)

type Home struct {
	app.Compo
	status  checker.SystemStatus
	loading bool
	err     string
}

func (h *Home) OnMount(ctx app.Context) {
	h.loading = true
	h.Update()

	go func() {
		var status checker.SystemStatus
		err := api.do(http.MethodGet, "/api/status", nil, &status)
		ctx.Dispatch(func(ctx app.Context) {
			h.loading = false
			h.err = errorText(err, "Failed to load status")
			h.status = status
			h.Update()
		})
	}()
}

func (h *Home) Render() app.UI {
	return app.Div().Class("page home").Body(
		app.Div().Class("top-bar").Body(
			app.H1().Class("page-title").Text("Home"),
			app.Span().Class("page-subtitle").Text("Register, sign in and manage users"),
		),
		app.If(h.loading,
			&Loader{Label: "Loading status..."},
		).ElseIf(h.err != "",
			app.Div().Class("auth-error").Text(h.err),
		).Else(
			app.Div().Class("stats-grid").Body(
				&StatCard{
					Title:    "Registered users",
					Value:    strconv.Itoa(h.status.UserCount),
					Icon:     "group",
					SubValue: "accounts",
					IsGood:   h.status.UserCount > 0,
				},
				&StatCard{
					Title: "Uptime",
					Value: h.status.UptimeString,
					Icon:  "dns",
				},
				&StatCard{
					Title: "Version",
					Value: h.status.Version,
					Icon:  "deployed_code",
				},
			),
		),
	)
}
