package session

import (
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"cv-generator/internal/model"

	"github.com/google/uuid"
)

// Presentation modes. A session starts in editing mode; the preview
// transition is gated on the full name being set.
const (
	ModeEditing    = "editing"
	ModePreviewing = "previewing"
)

var (
	ErrPreviewGated   = errors.New("preview requires personalInfo.fullName")
	ErrNotPreviewing  = errors.New("session is not in preview mode")
	ErrUnknownSection = errors.New("unknown section key")
	ErrUnknownRole    = errors.New("unknown role tag")
	ErrRoleSelected   = errors.New("role already selected")
	ErrRoleNotFound   = errors.New("role not selected")
)

// Session owns one CV aggregate for its lifetime. All mutation goes through
// its methods; slices are replaced wholesale, never deep-merged.
type Session struct {
	ID            uuid.UUID     `json:"id"`
	CV            *model.CVData `json:"cv"`
	Mode          string        `json:"mode"`
	ActiveSection string        `json:"activeSection"`
	CreatedAt     time.Time     `json:"createdAt"`
	UpdatedAt     time.Time     `json:"updatedAt"`
}

func New() *Session {
	now := time.Now()
	return &Session{
		ID:            uuid.New(),
		CV:            model.NewCVData(),
		Mode:          ModeEditing,
		ActiveSection: "personal",
		CreatedAt:     now,
		UpdatedAt:     now,
	}
}

// ReplaceSection decodes raw into the typed slice named by key and replaces
// that slice of the aggregate wholesale. Items arriving without an id get a
// fresh one.
func (s *Session) ReplaceSection(key string, raw json.RawMessage) error {
	cv := s.CV
	var err error
	switch key {
	case "personalInfo":
		var v model.PersonalInfo
		if err = json.Unmarshal(raw, &v); err == nil {
			cv.PersonalInfo = v
		}
	case "professionalProfile":
		v := model.ProfessionalProfile{Specializations: []string{}, Industries: []string{}}
		if err = json.Unmarshal(raw, &v); err == nil {
			if v.Specializations == nil {
				v.Specializations = []string{}
			}
			if v.Industries == nil {
				v.Industries = []string{}
			}
			cv.ProfessionalProfile = v
		}
	case "workExperience":
		v := []model.WorkExperience{}
		if err = json.Unmarshal(raw, &v); err == nil {
			cv.WorkExperience = v
		}
	case "education":
		v := []model.Education{}
		if err = json.Unmarshal(raw, &v); err == nil {
			cv.Education = v
		}
	case "certifications":
		v := []model.Certification{}
		if err = json.Unmarshal(raw, &v); err == nil {
			cv.Certifications = v
		}
	case "technicalSkills":
		v := []model.TechnicalSkill{}
		if err = json.Unmarshal(raw, &v); err == nil {
			cv.TechnicalSkills = v
		}
	case "languages":
		v := []model.Language{}
		if err = json.Unmarshal(raw, &v); err == nil {
			cv.Languages = v
		}
	case "softSkills":
		v := []string{}
		if err = json.Unmarshal(raw, &v); err == nil {
			cv.SoftSkills = v
		}
	case "references":
		v := []model.Reference{}
		if err = json.Unmarshal(raw, &v); err == nil {
			cv.References = v
		}
	default:
		return fmt.Errorf("%w: %s", ErrUnknownSection, key)
	}
	if err != nil {
		return fmt.Errorf("decode %s: %w", key, err)
	}
	model.Normalize(cv)
	s.touch()
	return nil
}

// ToggleRole adds or removes a role tag. Duplicate insertion is rejected.
// Deselecting a role keeps its sub-record so re-selection restores the data;
// the renderer guards on the tag, so deselected data never shows.
func (s *Session) ToggleRole(tag string, selected bool) error {
	if !model.KnownRole(tag) {
		return fmt.Errorf("%w: %s", ErrUnknownRole, tag)
	}
	if selected {
		if s.CV.HasRole(tag) {
			return ErrRoleSelected
		}
		s.CV.SelectedRoles = append(s.CV.SelectedRoles, tag)
		s.touch()
		return nil
	}
	if !s.CV.HasRole(tag) {
		return ErrRoleNotFound
	}
	kept := s.CV.SelectedRoles[:0]
	for _, r := range s.CV.SelectedRoles {
		if r != tag {
			kept = append(kept, r)
		}
	}
	s.CV.SelectedRoles = kept
	s.touch()
	return nil
}

// ReplaceRoleFields replaces a role's sub-record wholesale. The payload is
// decoded onto the variant's default constructor, so fields the caller omits
// keep their zero values and the sub-record is created lazily on first edit.
func (s *Session) ReplaceRoleFields(tag string, raw json.RawMessage) error {
	cv := s.CV
	var err error
	switch tag {
	case model.RoleTechnical:
		v := model.NewTechnicalFields()
		if err = json.Unmarshal(raw, v); err == nil {
			cv.TechnicalFields = v
		}
	case model.RoleCommunications:
		v := model.NewCommunicationFields()
		if err = json.Unmarshal(raw, v); err == nil {
			cv.CommunicationFields = v
		}
	case model.RoleSales:
		v := model.NewSalesFields()
		if err = json.Unmarshal(raw, v); err == nil {
			cv.SalesFields = v
		}
	case model.RoleManagement:
		v := model.NewManagementFields()
		if err = json.Unmarshal(raw, v); err == nil {
			cv.ManagementFields = v
		}
	case model.RoleHealth:
		v := model.NewHealthFields()
		if err = json.Unmarshal(raw, v); err == nil {
			cv.HealthFields = v
		}
	default:
		return fmt.Errorf("%w: %s", ErrUnknownRole, tag)
	}
	if err != nil {
		return fmt.Errorf("decode %s fields: %w", tag, err)
	}
	model.Normalize(cv)
	s.touch()
	return nil
}

// SetActiveSection switches the active editor tab. Switching tabs never
// touches the aggregate.
func (s *Session) SetActiveSection(name string) {
	s.ActiveSection = name
	s.touch()
}

// EnterPreview transitions editing -> previewing. Blocked (not an error
// state change) while the full name is empty.
func (s *Session) EnterPreview() error {
	if s.CV.PersonalInfo.FullName == "" {
		return ErrPreviewGated
	}
	s.Mode = ModePreviewing
	s.touch()
	return nil
}

// ExitPreview transitions back to editing. Always permitted.
func (s *Session) ExitPreview() {
	s.Mode = ModeEditing
	s.touch()
}

// Clone returns a deep copy of the whole session. The aggregate goes through
// Snapshot, so the copy shares no slices or sub-records with the original.
func (s *Session) Clone() (*Session, error) {
	cv, err := s.Snapshot()
	if err != nil {
		return nil, err
	}
	out := *s
	out.CV = cv
	return &out, nil
}

// Snapshot returns a deep copy of the aggregate for rendering or submission,
// so callers never hold a reference into live session state.
func (s *Session) Snapshot() (*model.CVData, error) {
	raw, err := json.Marshal(s.CV)
	if err != nil {
		return nil, err
	}
	out := model.NewCVData()
	if err := json.Unmarshal(raw, out); err != nil {
		return nil, err
	}
	return out, nil
}

func (s *Session) touch() {
	s.UpdatedAt = time.Now()
}
