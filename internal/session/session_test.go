package session

import (
	"encoding/json"
	"sync"
	"testing"
	"time"

	"cv-generator/internal/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewSessionDefaults(t *testing.T) {
	s := New()
	assert.Equal(t, ModeEditing, s.Mode)
	assert.Equal(t, "personal", s.ActiveSection)
	assert.NotNil(t, s.CV)
	assert.Empty(t, s.CV.PersonalInfo.FullName)
}

func TestReplaceSectionPersonalInfo(t *testing.T) {
	s := New()
	raw := json.RawMessage(`{"fullName":"Ana Ruiz","email":"ana@example.com","phone":"600123456"}`)

	require.NoError(t, s.ReplaceSection("personalInfo", raw))
	assert.Equal(t, "Ana Ruiz", s.CV.PersonalInfo.FullName)
	assert.Equal(t, "600123456", s.CV.PersonalInfo.Phone)
}

func TestReplaceSectionIsWholesale(t *testing.T) {
	s := New()
	require.NoError(t, s.ReplaceSection("personalInfo", json.RawMessage(`{"fullName":"Ana","phone":"600123456"}`)))
	// a second update that omits phone clears it: replace, not merge
	require.NoError(t, s.ReplaceSection("personalInfo", json.RawMessage(`{"fullName":"Ana Ruiz"}`)))
	assert.Empty(t, s.CV.PersonalInfo.Phone)
}

func TestReplaceSectionAssignsIDs(t *testing.T) {
	s := New()
	raw := json.RawMessage(`[{"position":"Dev","company":"Acme"},{"id":"keep","position":"Lead"}]`)

	require.NoError(t, s.ReplaceSection("workExperience", raw))
	require.Len(t, s.CV.WorkExperience, 2)
	assert.NotEmpty(t, s.CV.WorkExperience[0].ID)
	assert.Equal(t, "keep", s.CV.WorkExperience[1].ID)
}

func TestReplaceSectionNumericFallback(t *testing.T) {
	s := New()
	raw := json.RawMessage(`{"summary":"resumen","yearsExperience":"muchos"}`)

	require.NoError(t, s.ReplaceSection("professionalProfile", raw))
	assert.Equal(t, 0, s.CV.ProfessionalProfile.YearsExperience.Int())

	raw = json.RawMessage(`{"summary":"resumen","yearsExperience":"8"}`)
	require.NoError(t, s.ReplaceSection("professionalProfile", raw))
	assert.Equal(t, 8, s.CV.ProfessionalProfile.YearsExperience.Int())
	assert.NotNil(t, s.CV.ProfessionalProfile.Specializations)
}

func TestReplaceSectionUnknownKey(t *testing.T) {
	s := New()
	err := s.ReplaceSection("salary", json.RawMessage(`{}`))
	assert.ErrorIs(t, err, ErrUnknownSection)
}

func TestReplaceSectionBadPayload(t *testing.T) {
	s := New()
	err := s.ReplaceSection("education", json.RawMessage(`{"not":"a list"}`))
	assert.Error(t, err)
	assert.Empty(t, s.CV.Education)
}

func TestToggleRole(t *testing.T) {
	s := New()

	require.NoError(t, s.ToggleRole(model.RoleTechnical, true))
	assert.Equal(t, []string{"technical"}, s.CV.SelectedRoles)

	// duplicate insertion rejected
	assert.ErrorIs(t, s.ToggleRole(model.RoleTechnical, true), ErrRoleSelected)
	assert.Len(t, s.CV.SelectedRoles, 1)

	require.NoError(t, s.ToggleRole(model.RoleSales, true))
	require.NoError(t, s.ToggleRole(model.RoleTechnical, false))
	assert.Equal(t, []string{"sales"}, s.CV.SelectedRoles)

	assert.ErrorIs(t, s.ToggleRole(model.RoleTechnical, false), ErrRoleNotFound)
	assert.ErrorIs(t, s.ToggleRole("wizard", true), ErrUnknownRole)
}

func TestDeselectionPreservesSubRecord(t *testing.T) {
	s := New()
	require.NoError(t, s.ToggleRole(model.RoleTechnical, true))
	require.NoError(t, s.ReplaceRoleFields(model.RoleTechnical, json.RawMessage(`{"projects":[{"name":"API"}]}`)))

	require.NoError(t, s.ToggleRole(model.RoleTechnical, false))
	require.NotNil(t, s.CV.TechnicalFields)
	assert.Len(t, s.CV.TechnicalFields.Projects, 1)
}

func TestReplaceRoleFieldsLazyDefaults(t *testing.T) {
	s := New()
	assert.Nil(t, s.CV.TechnicalFields)

	// partial payload: omitted sibling lists default to empty, not nil
	require.NoError(t, s.ReplaceRoleFields(model.RoleTechnical, json.RawMessage(`{"projects":[{"name":"API"}]}`)))
	require.NotNil(t, s.CV.TechnicalFields)
	assert.NotNil(t, s.CV.TechnicalFields.Methodologies)
	assert.NotEmpty(t, s.CV.TechnicalFields.Projects[0].ID)

	require.NoError(t, s.ReplaceRoleFields(model.RoleManagement, json.RawMessage(`{"teamSize":"15"}`)))
	assert.Equal(t, 15, s.CV.ManagementFields.TeamSize.Int())
	assert.NotNil(t, s.CV.ManagementFields.KPIs)

	assert.ErrorIs(t, s.ReplaceRoleFields("wizard", json.RawMessage(`{}`)), ErrUnknownRole)
}

func TestPreviewGating(t *testing.T) {
	s := New()

	// empty full name blocks the transition and mode stays put
	assert.ErrorIs(t, s.EnterPreview(), ErrPreviewGated)
	assert.Equal(t, ModeEditing, s.Mode)

	require.NoError(t, s.ReplaceSection("personalInfo", json.RawMessage(`{"fullName":"Ana Ruiz"}`)))
	require.NoError(t, s.EnterPreview())
	assert.Equal(t, ModePreviewing, s.Mode)

	s.ExitPreview()
	assert.Equal(t, ModeEditing, s.Mode)

	// clearing the name blocks preview again
	require.NoError(t, s.ReplaceSection("personalInfo", json.RawMessage(`{"fullName":""}`)))
	assert.ErrorIs(t, s.EnterPreview(), ErrPreviewGated)
	assert.Equal(t, ModeEditing, s.Mode)
}

func TestSnapshotIsIndependentCopy(t *testing.T) {
	s := New()
	require.NoError(t, s.ReplaceSection("workExperience", json.RawMessage(`[{"position":"Dev"}]`)))

	snap, err := s.Snapshot()
	require.NoError(t, err)

	snap.WorkExperience[0].Position = "changed"
	assert.Equal(t, "Dev", s.CV.WorkExperience[0].Position)
}

func TestSnapshotRoundTripPreservesContent(t *testing.T) {
	s := New()
	require.NoError(t, s.ReplaceSection("personalInfo", json.RawMessage(`{"fullName":"Ana Ruiz","email":"ana@example.com"}`)))
	require.NoError(t, s.ReplaceSection("technicalSkills", json.RawMessage(`[{"name":"SQL","level":"Avanzado","category":"Bases de Datos"}]`)))
	require.NoError(t, s.ToggleRole(model.RoleHealth, true))
	require.NoError(t, s.ReplaceRoleFields(model.RoleHealth, json.RawMessage(`{"patientsAttended":120,"medicalSpecialties":["Cardiología"]}`)))

	snap, err := s.Snapshot()
	require.NoError(t, err)

	assert.Equal(t, s.CV.PersonalInfo, snap.PersonalInfo)
	assert.Equal(t, s.CV.TechnicalSkills, snap.TechnicalSkills)
	assert.Equal(t, s.CV.SelectedRoles, snap.SelectedRoles)
	require.NotNil(t, snap.HealthFields)
	assert.Equal(t, 120, snap.HealthFields.PatientsAttended.Int())
}

func TestStateChangesBumpUpdatedAt(t *testing.T) {
	s := New()
	past := time.Now().Add(-time.Hour)

	s.UpdatedAt = past
	s.SetActiveSection("education")
	assert.True(t, s.UpdatedAt.After(past))

	require.NoError(t, s.ReplaceSection("personalInfo", json.RawMessage(`{"fullName":"Ana"}`)))
	s.UpdatedAt = past
	require.NoError(t, s.EnterPreview())
	assert.True(t, s.UpdatedAt.After(past))

	s.UpdatedAt = past
	s.ExitPreview()
	assert.True(t, s.UpdatedAt.After(past))
}

func TestStoreLifecycle(t *testing.T) {
	st := NewStore()
	s, err := st.Create()
	require.NoError(t, err)

	got, err := st.Get(s.ID)
	require.NoError(t, err)
	assert.Equal(t, s.ID, got.ID)

	upd, err := st.Update(s.ID, func(s *Session) error {
		return s.ReplaceSection("personalInfo", json.RawMessage(`{"fullName":"Ana"}`))
	})
	require.NoError(t, err)
	assert.Equal(t, "Ana", upd.CV.PersonalInfo.FullName)

	st.Delete(s.ID)
	_, err = st.Get(s.ID)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestStoreHandsOutCopies(t *testing.T) {
	st := NewStore()
	s, err := st.Create()
	require.NoError(t, err)

	// mutating a copy never reaches the stored session
	got, err := st.Get(s.ID)
	require.NoError(t, err)
	got.CV.PersonalInfo.FullName = "Intruso"

	again, err := st.Get(s.ID)
	require.NoError(t, err)
	assert.Empty(t, again.CV.PersonalInfo.FullName)

	upd, err := st.Update(s.ID, func(s *Session) error {
		return s.ReplaceSection("workExperience", json.RawMessage(`[{"position":"Dev"}]`))
	})
	require.NoError(t, err)
	upd.CV.WorkExperience[0].Position = "changed"

	again, err = st.Get(s.ID)
	require.NoError(t, err)
	assert.Equal(t, "Dev", again.CV.WorkExperience[0].Position)
}

func TestStoreConcurrentReadersAndWriters(t *testing.T) {
	st := NewStore()
	s, err := st.Create()
	require.NoError(t, err)

	raw := json.RawMessage(`[{"company":"Acme","position":"Dev","achievements":["logró algo"]}]`)
	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(2)
		go func() {
			defer wg.Done()
			_, err := st.Update(s.ID, func(s *Session) error {
				return s.ReplaceSection("workExperience", raw)
			})
			assert.NoError(t, err)
		}()
		go func() {
			defer wg.Done()
			got, err := st.Get(s.ID)
			if assert.NoError(t, err) {
				_, err = json.Marshal(got.CV)
				assert.NoError(t, err)
			}
		}()
	}
	wg.Wait()
}
