package model

import (
	"bytes"
	"encoding/json"
	"strconv"
	"strings"

	"github.com/google/uuid"
)

// NewID returns an opaque identifier for a list item. UUIDs avoid the
// collisions that timestamp ids hit under rapid successive adds.
func NewID() string {
	return uuid.NewString()
}

// Normalize repairs an aggregate after decoding client input: nil collections
// become empty slices and list items missing an id get a fresh one. The
// renderer and the submission schema both rely on lists never being null.
func Normalize(cv *CVData) {
	if cv.ProfessionalProfile.Specializations == nil {
		cv.ProfessionalProfile.Specializations = []string{}
	}
	if cv.ProfessionalProfile.Industries == nil {
		cv.ProfessionalProfile.Industries = []string{}
	}
	if cv.WorkExperience == nil {
		cv.WorkExperience = []WorkExperience{}
	}
	for i := range cv.WorkExperience {
		if cv.WorkExperience[i].Achievements == nil {
			cv.WorkExperience[i].Achievements = []string{}
		}
	}
	if cv.Education == nil {
		cv.Education = []Education{}
	}
	if cv.Certifications == nil {
		cv.Certifications = []Certification{}
	}
	if cv.TechnicalSkills == nil {
		cv.TechnicalSkills = []TechnicalSkill{}
	}
	if cv.Languages == nil {
		cv.Languages = []Language{}
	}
	if cv.SoftSkills == nil {
		cv.SoftSkills = []string{}
	}
	if cv.References == nil {
		cv.References = []Reference{}
	}
	if cv.SelectedRoles == nil {
		cv.SelectedRoles = []string{}
	}
	if cv.TechnicalFields != nil {
		for i := range cv.TechnicalFields.Projects {
			if cv.TechnicalFields.Projects[i].Technologies == nil {
				cv.TechnicalFields.Projects[i].Technologies = []string{}
			}
		}
	}
	EnsureItemIDs(cv)
}

// EnsureItemIDs assigns fresh ids to list items that arrived without one.
// Items that already carry an id keep it.
func EnsureItemIDs(cv *CVData) {
	for i := range cv.WorkExperience {
		if cv.WorkExperience[i].ID == "" {
			cv.WorkExperience[i].ID = NewID()
		}
	}
	for i := range cv.Education {
		if cv.Education[i].ID == "" {
			cv.Education[i].ID = NewID()
		}
	}
	for i := range cv.Certifications {
		if cv.Certifications[i].ID == "" {
			cv.Certifications[i].ID = NewID()
		}
	}
	for i := range cv.TechnicalSkills {
		if cv.TechnicalSkills[i].ID == "" {
			cv.TechnicalSkills[i].ID = NewID()
		}
	}
	for i := range cv.Languages {
		if cv.Languages[i].ID == "" {
			cv.Languages[i].ID = NewID()
		}
	}
	for i := range cv.References {
		if cv.References[i].ID == "" {
			cv.References[i].ID = NewID()
		}
	}
	if cv.TechnicalFields != nil {
		for i := range cv.TechnicalFields.Projects {
			if cv.TechnicalFields.Projects[i].ID == "" {
				cv.TechnicalFields.Projects[i].ID = NewID()
			}
		}
	}
	if cv.CommunicationFields != nil {
		for i := range cv.CommunicationFields.Portfolio {
			if cv.CommunicationFields.Portfolio[i].ID == "" {
				cv.CommunicationFields.Portfolio[i].ID = NewID()
			}
		}
	}
}

// FlexCount is a non-negative count that tolerates sloppy JSON input.
// Numbers, numeric strings, null and empty strings all decode; anything
// unparsable falls back to 0 so downstream "> 0" checks stay safe.
type FlexCount int

func (c *FlexCount) UnmarshalJSON(b []byte) error {
	b = bytes.TrimSpace(b)
	if len(b) == 0 || string(b) == "null" {
		*c = 0
		return nil
	}
	if b[0] == '"' {
		var s string
		if err := json.Unmarshal(b, &s); err != nil {
			*c = 0
			return nil
		}
		n, err := strconv.Atoi(strings.TrimSpace(s))
		if err != nil || n < 0 {
			*c = 0
			return nil
		}
		*c = FlexCount(n)
		return nil
	}
	var f float64
	if err := json.Unmarshal(b, &f); err != nil || f < 0 {
		*c = 0
		return nil
	}
	*c = FlexCount(int(f))
	return nil
}

func (c FlexCount) MarshalJSON() ([]byte, error) {
	return []byte(strconv.Itoa(int(c))), nil
}

// Int returns the plain integer value.
func (c FlexCount) Int() int { return int(c) }
