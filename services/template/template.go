package template

import (
	"embed"
	ht "html/template"

	"github.com/gin-contrib/multitemplate"
	"github.com/pkg/errors"
)

//go:embed "templates"
var templateFS embed.FS

const (
	Home     = "home"
	Movies   = "movies"
	About    = "about"
	NotFound = "not_found"
)

var views = []string{Home, Movies, About, NotFound}

// NewRenderer parses every view together with the shared layout. Views are
// static, so rendering them with nil data yields the same page every time.
func NewRenderer() (multitemplate.Renderer, error) {
	re := multitemplate.NewRenderer()
	for _, name := range views {
		tpl, err := ht.ParseFS(templateFS, "templates/layout.html", "templates/"+name+".html")
		if err != nil {
			return nil, errors.Wrapf(err, "failed to parse %v view", name)
		}
		re.Add(name, tpl)
	}
	return re, nil
}
