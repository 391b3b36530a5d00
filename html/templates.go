package html

import (
	"html/template"
	"io"
	"io/fs"
	"sync"

	"github.com/Masterminds/sprig/v3"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"k8s.io/apimachinery/pkg/api/resource"
)

// TemplateRenderer renders UI pages. On top of sprig, templates can use
//
//	bytes  byte count as a quantity, e.g. 20Mi
//	usage  share of the quota used by size, in percent
type TemplateRenderer struct {
	templates *template.Template
	fSys      fs.FS
	m         sync.Mutex
}

func NewTemplateRenderer(fSys fs.FS) (*TemplateRenderer, error) {
	templates, err := parseTemplates(fSys)
	if err != nil {
		return nil, err
	}
	return &TemplateRenderer{
		templates: templates,
		fSys:      fSys,
	}, nil
}

func (t *TemplateRenderer) Render(w io.Writer, name string, data interface{}, _ echo.Context) error {
	templates, err := t.current()
	if err != nil {
		return err
	}
	return templates.ExecuteTemplate(w, name, data)
}

func (t *TemplateRenderer) current() (*template.Template, error) {
	t.m.Lock()
	defer t.m.Unlock()
	if !devMode {
		return t.templates, nil
	}

	templates, err := parseTemplates(t.fSys)
	if err != nil {
		return nil, errors.Wrap(err, "failed to reload templates in dev mode")
	}
	t.templates = templates
	return templates, nil
}

func parseTemplates(fSys fs.FS) (*template.Template, error) {
	tmpl, err := template.New("html").
		Funcs(funcMap()).
		ParseFS(fSys, templatesGlob)
	return tmpl, errors.Wrap(err, "failed to parse templates")
}

func funcMap() template.FuncMap {
	fm := sprig.HtmlFuncMap()
	fm["bytes"] = FormatBytes
	fm["usage"] = Usage
	return fm
}

// FormatBytes uses binary suffixes for multiples of 1024 and decimal ones otherwise (1000 is 1k).
func FormatBytes(size int64) string {
	return resource.NewQuantity(size, resource.BinarySI).String()
}

// Usage returns size as a percentage of limit, rounded down. Over quota sizes go above 100.
func Usage(size, limit int64) int64 {
	if limit <= 0 {
		return 0
	}
	return size * 100 / limit
}
