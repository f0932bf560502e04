package main

import "github.com/adanyl0v/go-tasklist/internal/app"

func main() {
	app.InitDefaultLogger()
	app.MustReadEnv()
	app.MustInitApplicationLogger()

	app.MustStartSessions()
	defer app.StopSessions()

	app.MustListenAndServeHTTP()
}
