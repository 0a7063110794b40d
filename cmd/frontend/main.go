package main

import (
	"userdesk/ui"

	"github.com/maxence-charriere/go-app/v9/pkg/app"
)

func main() {
	ui.RegisterRoutes()
	app.RunWhenOnBrowser()
}
