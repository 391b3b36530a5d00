package main

import (
	"github.com/selebrow/dbquota/pkg/app"
)

const appName = "dbquota"

var (
	GitSha = "unknown"
	GitRef = "unknown"
)

func main() {
	app.Run(GitRef, GitSha, appName)
}
