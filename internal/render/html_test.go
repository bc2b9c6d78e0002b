package render

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"cv-generator/internal/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const tplDir = "../../templates"

func populated() *model.CVData {
	cv := model.NewCVData()
	cv.PersonalInfo.FullName = "Ana Ruiz"
	cv.PersonalInfo.ProfessionalTitle = "Ingeniera de Software"
	cv.PersonalInfo.Email = "ana@example.com"
	cv.ProfessionalProfile.Summary = "Ingeniera con experiencia en backend."
	cv.WorkExperience = []model.WorkExperience{{
		ID:           "w1",
		Position:     "Backend Developer",
		Company:      "Acme",
		StartDate:    "2020-01",
		EndDate:      "",
		Achievements: []string{"Migré el monolito", ""},
	}}
	cv.TechnicalSkills = []model.TechnicalSkill{
		{ID: "s1", Name: "SQL", Level: model.LevelAvanzado, Category: "Bases de Datos"},
		{ID: "s2", Name: "Python", Level: model.LevelExperto},
	}
	return cv
}

func TestRenderHTMLNeverFailsOnDefaults(t *testing.T) {
	r, err := NewRenderer(tplDir)
	require.NoError(t, err)

	html, err := r.RenderHTML(model.NewCVData())
	require.NoError(t, err)

	// mandatory header with placeholders, all optional sections omitted
	assert.Contains(t, html, PlaceholderName)
	assert.Contains(t, html, PlaceholderTitle)
	assert.NotContains(t, html, "EXPERIENCIA LABORAL")
	assert.NotContains(t, html, "PERFIL PROFESIONAL")
	assert.NotContains(t, html, "PROYECTOS DESTACADOS")
}

func TestRenderHTMLPopulated(t *testing.T) {
	r, err := NewRenderer(tplDir)
	require.NoError(t, err)

	html, err := r.RenderHTML(populated())
	require.NoError(t, err)

	assert.Contains(t, html, "Ana Ruiz")
	assert.Contains(t, html, "EXPERIENCIA LABORAL")
	assert.Contains(t, html, "Enero 2020 - Actual")
	assert.Contains(t, html, "Bases de Datos:")
	assert.Contains(t, html, "SQL (Avanzado)")
	assert.Contains(t, html, "General:")
	assert.Contains(t, html, "Migré el monolito")
	// stylesheet gets inlined into head
	assert.Contains(t, html, "<style>")
	assert.Contains(t, html, "@media print")
}

func TestRenderHTMLMissingStylesheetFailsSoft(t *testing.T) {
	dir := t.TempDir()
	tpl := `<html><head></head><body><h1>{{.Name}}</h1></body></html>`
	require.NoError(t, os.WriteFile(filepath.Join(dir, "cv.html"), []byte(tpl), 0o644))

	// no style.css next to the template, and none is picked up elsewhere
	r, err := NewRenderer(dir)
	require.NoError(t, err)

	html, err := r.RenderHTML(model.NewCVData())
	require.NoError(t, err)
	assert.NotContains(t, html, "<style>")
	assert.Contains(t, html, PlaceholderName)
}

func TestRenderHTMLIdempotent(t *testing.T) {
	r, err := NewRenderer(tplDir)
	require.NoError(t, err)

	cv := populated()
	first, err := r.RenderHTML(cv)
	require.NoError(t, err)
	second, err := r.RenderHTML(cv)
	require.NoError(t, err)

	assert.Equal(t, first, second)
}

func TestRenderHTMLRoleSectionAbsentWithoutTag(t *testing.T) {
	r, err := NewRenderer(tplDir)
	require.NoError(t, err)

	cv := populated()
	cv.TechnicalFields = model.NewTechnicalFields()
	cv.TechnicalFields.Projects = []model.Project{{ID: "p1", Name: "Plataforma API"}}

	html, err := r.RenderHTML(cv)
	require.NoError(t, err)
	assert.NotContains(t, html, "PROYECTOS DESTACADOS")

	cv.SelectedRoles = []string{model.RoleTechnical}
	html, err = r.RenderHTML(cv)
	require.NoError(t, err)
	assert.Contains(t, html, "PROYECTOS DESTACADOS")
	assert.Contains(t, html, "Plataforma API")
}

func TestRenderHTMLEscapesUserInput(t *testing.T) {
	r, err := NewRenderer(tplDir)
	require.NoError(t, err)

	cv := model.NewCVData()
	cv.PersonalInfo.FullName = `<script>alert("x")</script>`

	html, err := r.RenderHTML(cv)
	require.NoError(t, err)
	assert.False(t, strings.Contains(html, "<script>alert"))
}
