package html

import (
	"embed"
	"fmt"
	"io/fs"
	"os"

	"github.com/selebrow/dbquota/pkg/config"
)

const (
	StaticFSRoot  = "static/"
	templatesGlob = "templates/*.tmpl"
)

//go:embed static
var staticEmbedFS embed.FS

//go:embed templates
var templatesEmbedFS embed.FS

var (
	// devMode serves UI files from ./html instead of the binary, templates are re-parsed on every render
	devMode = lookupDevMode()
	devFS   = os.DirFS("html")
)

func lookupDevMode() bool {
	_, ok := os.LookupEnv(fmt.Sprintf("_%s_DEV_MODE", config.ConfigPrefix))
	return ok
}

func StaticFS() fs.FS {
	return uiFS(staticEmbedFS)
}

func TemplatesFS() fs.FS {
	return uiFS(templatesEmbedFS)
}

func uiFS(embedded embed.FS) fs.FS {
	if devMode {
		return devFS
	}
	return embedded
}
