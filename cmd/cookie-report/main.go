package main

import (
	"cookie-analytics/internal/cli"
)

func main() {
	cli.Execute()
}
