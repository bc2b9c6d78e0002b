package progress

import (
	"math"

	"cv-generator/internal/model"
)

// Section names tracked by the estimator, matching the six editor tabs.
const (
	SectionPersonal       = "personal"
	SectionProfile        = "profile"
	SectionExperience     = "experience"
	SectionEducation      = "education"
	SectionSkills         = "skills"
	SectionSpecialization = "specialization"
)

// SectionNames lists the tracked sections in tab order.
var SectionNames = []string{
	SectionPersonal,
	SectionProfile,
	SectionExperience,
	SectionEducation,
	SectionSkills,
	SectionSpecialization,
}

type Progress struct {
	Percent  int             `json:"percent"`
	Sections map[string]bool `json:"sections"`
}

// Estimate derives completion state from the aggregate. It is recomputed
// from scratch on every call and keeps no state of its own.
func Estimate(cv *model.CVData) Progress {
	sections := map[string]bool{
		SectionPersonal:       cv.PersonalInfo.FullName != "" && cv.PersonalInfo.Email != "",
		SectionProfile:        cv.ProfessionalProfile.Summary != "",
		SectionExperience:     len(cv.WorkExperience) > 0,
		SectionEducation:      len(cv.Education) > 0,
		SectionSkills:         len(cv.TechnicalSkills) > 0 || len(cv.Languages) > 0,
		SectionSpecialization: len(cv.SelectedRoles) > 0,
	}

	done := 0
	for _, complete := range sections {
		if complete {
			done++
		}
	}

	return Progress{
		Percent:  int(math.Round(100 * float64(done) / float64(len(SectionNames)))),
		Sections: sections,
	}
}
