package ui

import (
	"github.com/maxence-charriere/go-app/v9/pkg/app"
)

type StatCard struct {
	app.Compo
	Title    string
	Value    string
	SubValue string
	Icon     string
	IsGood   bool
}

func (c *StatCard) Render() app.UI {
	return app.Div().Class("stat-card").Body(
		app.Div().Class("stat-card-icon").Body(
			app.Span().Class("material-symbols-rounded").Text(c.Icon),
		),
		app.Div().Class("stat-label").Text(c.Title),
		app.Div().Class("stat-value").Text(c.Value),
		app.If(c.SubValue != "",
			app.Div().Class(statSubClass(c.IsGood)).Text(c.SubValue),
		),
	)
}

func statSubClass(good bool) string {
	if good {
		return "stat-sub good"
	}
	return "stat-sub"
}
