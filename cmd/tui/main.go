package main

import "github.com/adanyl0v/go-tasklist/internal/app"

func main() {
	app.InitDefaultLogger()
	app.MustReadEnv()
	app.MustInitTerminalLogger()

	app.MustRunTUI()
}
