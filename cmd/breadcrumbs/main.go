// Command breadcrumbs computes navigation breadcrumb trails from route
// tables, stores named tables, and serves trails over HTTP.
package main

import (
	"os"

	"github.com/mesh-intelligence/breadcrumbs/internal/cli"
)

func main() {
	os.Exit(cli.Execute(os.Args[1:], os.Stdout, os.Stderr))
}
