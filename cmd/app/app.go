package main

import "github.com/garisonmike/alx-backend-graphql-crm/internal/app"

func main() {
	app.Run()
}
