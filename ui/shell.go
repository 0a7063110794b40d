package ui

import (
	"github.com/maxence-charriere/go-app/v9/pkg/app"
)

// Shell is the application root: the navigation bar plus a content region
// holding the page matched by Path.
type Shell struct {
	app.Compo
	Path string
}

func (s *Shell) OnPreRender(ctx app.Context) {
	s.navigate(ctx.Page().URL().Path)
}

func (s *Shell) OnMount(ctx app.Context) {
	app.Window().Get("document").Get("body").Get("classList").Call("add", "dark-theme")
	s.navigate(ctx.Page().URL().Path)
}

func (s *Shell) OnNav(ctx app.Context) {
	s.navigate(ctx.Page().URL().Path)
	s.Update()
}

func (s *Shell) navigate(path string) {
	s.Path = path
}

// content is empty for unknown paths.
func (s *Shell) content() []app.UI {
	r, ok := Match(s.Path)
	if !ok {
		return nil
	}
	return []app.UI{r.Page()}
}

func (s *Shell) Render() app.UI {
	return app.Div().Class("app-layout").Body(
		&NavBar{
			Links:  Links(),
			Active: s.Path,
		},
		app.Main().Class("main-content").DataSet("path", s.Path).Body(
			s.content()...,
		),
	)
}
