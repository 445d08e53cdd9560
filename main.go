package main

import (
	"github.com/taskforge/taskforge/app"
	_ "github.com/taskforge/taskforge/docs"
)

// @title TaskForge API
// @version 1.0
// @description Multi-user task tracker: registration, login and per-user task CRUD.
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	// setup and run app
	err := app.SetupAndRunApp()
	if err != nil {
		panic(err)
	}
}
