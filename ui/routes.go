package ui

import "github.com/maxence-charriere/go-app/v9/pkg/app"

// Route binds a literal path to the page rendered for it.
type Route struct {
	Path  string
	Label string
	Page  func() app.Composer
}

type Link struct {
	Path  string
	Label string
}

// routes is ordered: the navigation bar renders it as is.
var routes = []Route{
	{Path: "/", Label: "Home", Page: func() app.Composer { return &Home{} }},
	{Path: "/register", Label: "Register", Page: func() app.Composer { return &RegisterPage{} }},
	{Path: "/login", Label: "Login", Page: func() app.Composer { return &LoginPage{} }},
	{Path: "/users", Label: "Users", Page: func() app.Composer { return &ListUsers{} }},
}

// Match looks the path up by exact string comparison. There is no prefix
// matching and no fallback route.
func Match(path string) (Route, bool) {
	for _, r := range routes {
		if r.Path == path {
			return r, true
		}
	}
	return Route{}, false
}

func Links() []Link {
	links := make([]Link, len(routes))
	for i, r := range routes {
		links[i] = Link{Path: r.Path, Label: r.Label}
	}
	return links
}

// RegisterRoutes hands every path to the Shell, which does its own lookup.
// Both the browser binary and the server (for prerendering) call it.
func RegisterRoutes() {
	app.RouteWithRegexp("^/.*", &Shell{})
}
