package main

import (
	"swimrankings-backend/cmd/swimrank-cli/cmd"
)

func main() {
	cmd.Execute()
}
