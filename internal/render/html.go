package render

import (
	"bytes"
	"html/template"
	"os"
	"path/filepath"
	"strings"

	"cv-generator/internal/model"
)

// Renderer turns an aggregate into the printable HTML document. The template
// is parsed once; rendering itself is a pure function of the aggregate.
type Renderer struct {
	tplDir string
	tpl    *template.Template
}

func NewRenderer(tplDir string) (*Renderer, error) {
	funcs := template.FuncMap{"join": strings.Join}
	tpl, err := template.New("cv.html").Funcs(funcs).ParseFiles(filepath.Join(tplDir, "cv.html"))
	if err != nil {
		return nil, err
	}
	return &Renderer{tplDir: tplDir, tpl: tpl}, nil
}

// RenderHTML executes the document template over the normalized view and
// inlines the local stylesheet so the saved HTML carries its styling.
func (r *Renderer) RenderHTML(cv *model.CVData) (string, error) {
	var buf bytes.Buffer
	if err := r.tpl.Execute(&buf, BuildView(cv)); err != nil {
		return "", err
	}
	html := buf.String()

	// a missing stylesheet is tolerated: the document ships unstyled
	css, err := os.ReadFile(filepath.Join(r.tplDir, "style.css"))
	if err == nil && len(css) > 0 {
		cssBlock := "<style>" + string(css) + "</style>"
		if strings.Contains(strings.ToLower(html), "<head>") {
			html = strings.Replace(html, "<head>", "<head>"+cssBlock, 1)
		} else {
			html = cssBlock + html
		}
	}
	return html, nil
}
