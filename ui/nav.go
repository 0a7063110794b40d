package ui

import (
	"github.com/maxence-charriere/go-app/v9/pkg/app"
)

type NavBar struct {
	app.Compo
	Links  []Link
	Active string
}

func (n *NavBar) Render() app.UI {
	return app.Nav().Class("nav-bar").Body(
		app.Div().Class("brand").Text("Userdesk"),
		app.Div().Class("nav-links").Body(
			app.Range(n.Links).Slice(func(i int) app.UI {
				l := n.Links[i]
				return app.A().
					Class(linkClass(l.Path, n.Active)).
					Href(l.Path).
					Text(l.Label)
			}),
		),
	)
}

func linkClass(path, active string) string {
	if path == active {
		return "nav-link active"
	}
	return "nav-link"
}
