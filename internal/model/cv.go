package model

// Go models that match the cv.schema.json used for validation and rendering.
// The aggregate is a single nested record per session; `id` fields on list
// items are opaque tokens unique within their list.

type PersonalInfo struct {
	FullName          string `json:"fullName"`
	ProfessionalTitle string `json:"professionalTitle"`
	Phone             string `json:"phone"`
	Email             string `json:"email"`
	City              string `json:"city"`
	Document          string `json:"document"`
	LinkedIn          string `json:"linkedin"`
	OtherNetworks     string `json:"otherNetworks"`
}

type ProfessionalProfile struct {
	Summary          string    `json:"summary"`
	YearsExperience  FlexCount `json:"yearsExperience"`
	Specializations  []string  `json:"specializations"`
	Industries       []string  `json:"industries"`
	ValueProposition string    `json:"valueProposition"`
}

type WorkExperience struct {
	ID                  string   `json:"id"`
	Position            string   `json:"position"`
	Company             string   `json:"company"`
	StartDate           string   `json:"startDate"`
	EndDate             string   `json:"endDate"`
	City                string   `json:"city"`
	Achievements        []string `json:"achievements"`
	QuantifiableResults string   `json:"quantifiableResults"`
}

type Education struct {
	ID             string    `json:"id"`
	Degree         string    `json:"degree"`
	Institution    string    `json:"institution"`
	GraduationYear FlexCount `json:"graduationYear"`
	City           string    `json:"city"`
}

type Certification struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Institution string    `json:"institution"`
	Year        FlexCount `json:"year"`
	Level       string    `json:"level"`
}

type TechnicalSkill struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Level    string `json:"level"`
	Category string `json:"category"`
}

type Language struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Level string `json:"level"`
}

type Reference struct {
	ID       string `json:"id"`
	FullName string `json:"fullName"`
	Position string `json:"position"`
	Company  string `json:"company"`
	Phone    string `json:"phone"`
}

// Proficiency levels used by certifications, technical skills and languages.
const (
	LevelBasico     = "Básico"
	LevelIntermedio = "Intermedio"
	LevelAvanzado   = "Avanzado"
	LevelExperto    = "Experto"
	LevelNativo     = "Nativo"
)

// SuggestedSkillCategories are the category values offered by skill editors.
// The category field itself stays free text.
var SuggestedSkillCategories = []string{
	"Software/Programas",
	"Sistemas/Plataformas",
	"Lenguajes de Programación",
	"Frameworks",
	"Bases de Datos",
	"Herramientas",
}

type CVData struct {
	PersonalInfo        PersonalInfo        `json:"personalInfo"`
	ProfessionalProfile ProfessionalProfile `json:"professionalProfile"`
	WorkExperience      []WorkExperience    `json:"workExperience"`
	Education           []Education         `json:"education"`
	Certifications      []Certification     `json:"certifications"`
	TechnicalSkills     []TechnicalSkill    `json:"technicalSkills"`
	Languages           []Language          `json:"languages"`
	SoftSkills          []string            `json:"softSkills"`
	References          []Reference         `json:"references"`
	SelectedRoles       []string            `json:"selectedRoles"`

	// Role-specific sub-records, nil until first edited after role selection.
	TechnicalFields     *TechnicalFields     `json:"technicalFields,omitempty"`
	CommunicationFields *CommunicationFields `json:"communicationFields,omitempty"`
	SalesFields         *SalesFields         `json:"salesFields,omitempty"`
	ManagementFields    *ManagementFields    `json:"managementFields,omitempty"`
	HealthFields        *HealthFields        `json:"healthFields,omitempty"`
}

// NewCVData returns the default aggregate: scalar fields empty, every
// collection an empty non-nil slice so the renderer never sees null lists.
func NewCVData() *CVData {
	return &CVData{
		ProfessionalProfile: ProfessionalProfile{
			Specializations: []string{},
			Industries:      []string{},
		},
		WorkExperience:  []WorkExperience{},
		Education:       []Education{},
		Certifications:  []Certification{},
		TechnicalSkills: []TechnicalSkill{},
		Languages:       []Language{},
		SoftSkills:      []string{},
		References:      []Reference{},
		SelectedRoles:   []string{},
	}
}

// HasRole reports whether the role tag is currently selected.
func (cv *CVData) HasRole(tag string) bool {
	for _, r := range cv.SelectedRoles {
		if r == tag {
			return true
		}
	}
	return false
}
