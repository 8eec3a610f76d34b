package main

import (
	"flag"

	"github.com/garisonmike/alx-backend-graphql-crm/internal/app"
)

func main() {
	jobName := flag.String("job", "", "run a single job by name (heartbeat, restock, report, reminders) and exit")
	flag.Parse()

	app.RunJobs(*jobName)
}
