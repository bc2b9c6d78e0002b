package model

// Role tags selecting which specialized sub-records apply to a CV.
const (
	RoleTechnical      = "technical"
	RoleCommunications = "communications"
	RoleSales          = "sales"
	RoleManagement     = "management"
	RoleHealth         = "health"
)

// RoleTags lists the fixed role enumeration in display order.
var RoleTags = []string{RoleTechnical, RoleCommunications, RoleSales, RoleManagement, RoleHealth}

// KnownRole reports whether tag is part of the fixed role enumeration.
func KnownRole(tag string) bool {
	for _, r := range RoleTags {
		if r == tag {
			return true
		}
	}
	return false
}

type Project struct {
	ID           string   `json:"id"`
	Name         string   `json:"name"`
	Description  string   `json:"description"`
	Technologies []string `json:"technologies"`
	Link         string   `json:"link,omitempty"`
}

type PortfolioItem struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Link        string `json:"link,omitempty"`
}

type TechnicalFields struct {
	Projects      []Project `json:"projects"`
	Methodologies []string  `json:"methodologies"`
}

type CommunicationFields struct {
	Portfolio []PortfolioItem `json:"portfolio"`
	Media     []string        `json:"media"`
	Campaigns []string        `json:"campaigns"`
}

type SalesFields struct {
	SalesFigures      string   `json:"salesFigures"`
	Territory         string   `json:"territory"`
	Products          []string `json:"products"`
	SalesAchievements []string `json:"salesAchievements"`
}

type ManagementFields struct {
	TeamSize               FlexCount `json:"teamSize"`
	BudgetManaged          string    `json:"budgetManaged"`
	KPIs                   []string  `json:"kpis"`
	ManagementAchievements []string  `json:"managementAchievements"`
}

type HealthFields struct {
	MedicalSpecialties         []string  `json:"medicalSpecialties"`
	ProfessionalCertifications []string  `json:"professionalCertifications"`
	PatientsAttended           FlexCount `json:"patientsAttended"`
	HospitalSystems            []string  `json:"hospitalSystems"`
	ClinicalIndicators         []string  `json:"clinicalIndicators"`
	Publications               []string  `json:"publications"`
}

// Default constructors for the role sub-records. Each variant defaults in one
// place so partially-initialized sub-records never surface missing fields.

func NewTechnicalFields() *TechnicalFields {
	return &TechnicalFields{Projects: []Project{}, Methodologies: []string{}}
}

func NewCommunicationFields() *CommunicationFields {
	return &CommunicationFields{Portfolio: []PortfolioItem{}, Media: []string{}, Campaigns: []string{}}
}

func NewSalesFields() *SalesFields {
	return &SalesFields{Products: []string{}, SalesAchievements: []string{}}
}

func NewManagementFields() *ManagementFields {
	return &ManagementFields{KPIs: []string{}, ManagementAchievements: []string{}}
}

func NewHealthFields() *HealthFields {
	return &HealthFields{
		MedicalSpecialties:         []string{},
		ProfessionalCertifications: []string{},
		HospitalSystems:            []string{},
		ClinicalIndicators:         []string{},
		Publications:               []string{},
	}
}
