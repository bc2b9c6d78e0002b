package progress

import (
	"testing"

	"cv-generator/internal/model"

	"github.com/stretchr/testify/assert"
)

func TestEstimateEmptyAggregate(t *testing.T) {
	p := Estimate(model.NewCVData())
	assert.Equal(t, 0, p.Percent)
	for _, name := range SectionNames {
		assert.False(t, p.Sections[name], name)
	}
}

func TestEstimateSectionGates(t *testing.T) {
	cases := []struct {
		name    string
		mutate  func(*model.CVData)
		section string
	}{
		{
			name: "personal_needs_name_and_email",
			mutate: func(cv *model.CVData) {
				cv.PersonalInfo.FullName = "Ana Ruiz"
				cv.PersonalInfo.Email = "ana@example.com"
			},
			section: SectionPersonal,
		},
		{
			name:    "profile_needs_summary",
			mutate:  func(cv *model.CVData) { cv.ProfessionalProfile.Summary = "Ingeniera con 10 años" },
			section: SectionProfile,
		},
		{
			name:    "experience_needs_entry",
			mutate:  func(cv *model.CVData) { cv.WorkExperience = []model.WorkExperience{{ID: "1"}} },
			section: SectionExperience,
		},
		{
			name:    "education_needs_entry",
			mutate:  func(cv *model.CVData) { cv.Education = []model.Education{{ID: "1"}} },
			section: SectionEducation,
		},
		{
			name:    "skills_accepts_technical",
			mutate:  func(cv *model.CVData) { cv.TechnicalSkills = []model.TechnicalSkill{{ID: "1"}} },
			section: SectionSkills,
		},
		{
			name:    "skills_accepts_languages",
			mutate:  func(cv *model.CVData) { cv.Languages = []model.Language{{ID: "1"}} },
			section: SectionSkills,
		},
		{
			name:    "specialization_needs_role",
			mutate:  func(cv *model.CVData) { cv.SelectedRoles = []string{model.RoleSales} },
			section: SectionSpecialization,
		},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			cv := model.NewCVData()
			tc.mutate(cv)
			p := Estimate(cv)
			assert.True(t, p.Sections[tc.section])
			assert.Equal(t, 17, p.Percent) // round(100/6)
		})
	}
}

func TestEstimatePersonalIncompleteWithoutEmail(t *testing.T) {
	cv := model.NewCVData()
	cv.PersonalInfo.FullName = "Ana Ruiz"
	assert.False(t, Estimate(cv).Sections[SectionPersonal])
}

func TestEstimateFullAggregate(t *testing.T) {
	cv := model.NewCVData()
	cv.PersonalInfo.FullName = "Ana Ruiz"
	cv.PersonalInfo.Email = "ana@example.com"
	cv.ProfessionalProfile.Summary = "resumen"
	cv.WorkExperience = []model.WorkExperience{{ID: "1"}}
	cv.Education = []model.Education{{ID: "1"}}
	cv.Languages = []model.Language{{ID: "1"}}
	cv.SelectedRoles = []string{model.RoleTechnical}

	p := Estimate(cv)
	assert.Equal(t, 100, p.Percent)
	for _, name := range SectionNames {
		assert.True(t, p.Sections[name], name)
	}
}

func TestEstimateMonotonicOnAdd(t *testing.T) {
	cv := model.NewCVData()
	before := Estimate(cv).Percent

	cv.WorkExperience = append(cv.WorkExperience, model.WorkExperience{ID: "1"})
	after := Estimate(cv).Percent

	assert.GreaterOrEqual(t, after, before)
}

func TestEstimateFlagDropsOnRemoval(t *testing.T) {
	cv := model.NewCVData()
	cv.Education = []model.Education{{ID: "1"}}
	assert.True(t, Estimate(cv).Sections[SectionEducation])

	cv.Education = []model.Education{}
	assert.False(t, Estimate(cv).Sections[SectionEducation])
}
