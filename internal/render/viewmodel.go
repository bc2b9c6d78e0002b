package render

import (
	"cv-generator/internal/model"
)

// Placeholder header text used when the personal fields are still empty. The
// header block is the one section that never disappears.
const (
	PlaceholderName  = "Nombre Completo"
	PlaceholderTitle = "Título Profesional"
)

// View is the fully-defaulted document model handed to the template. Building
// it is where every presence check and fallback happens, so the template
// itself only loops and prints.
type View struct {
	Name     string
	Title    string
	Contact  []ContactToken
	Document string

	Profile    *ProfileView
	Experience []ExperienceView
	Education  []model.Education

	SkillGroups []SkillGroup
	Languages   []model.Language
	SoftSkills  []string

	Certifications []model.Certification

	Projects      []model.Project
	Methodologies []string

	Portfolio []model.PortfolioItem
	Media     []string
	Campaigns []string

	Sales      *SalesView
	Management *ManagementView
	Health     *HealthView

	References []model.Reference
}

type ContactToken struct {
	Icon string
	Text string
}

type ProfileView struct {
	Summary          string
	YearsExperience  int
	Specializations  []string
	Industries       []string
	ValueProposition string
}

type ExperienceView struct {
	Position            string
	Company             string
	Period              string
	City                string
	Achievements        []string
	QuantifiableResults string
}

type SalesView struct {
	SalesFigures string
	Territory    string
	Products     []string
	Achievements []string
}

type ManagementView struct {
	TeamSize      int
	BudgetManaged string
	KPIs          []string
	Achievements  []string
}

type HealthView struct {
	Specialties        []string
	Certifications     []string
	PatientsAttended   int
	HospitalSystems    []string
	ClinicalIndicators []string
	Publications       []string
}

// BuildView normalizes the aggregate into a View. It is total over any valid
// aggregate: missing sub-records or empty lists simply produce absent
// sections, never an error.
func BuildView(cv *model.CVData) View {
	v := View{
		Name:     cv.PersonalInfo.FullName,
		Title:    cv.PersonalInfo.ProfessionalTitle,
		Document: cv.PersonalInfo.Document,
	}
	if v.Name == "" {
		v.Name = PlaceholderName
	}
	if v.Title == "" {
		v.Title = PlaceholderTitle
	}

	// Contact tokens keep a fixed order: phone, email, city, network.
	if cv.PersonalInfo.Phone != "" {
		v.Contact = append(v.Contact, ContactToken{Icon: "📞", Text: cv.PersonalInfo.Phone})
	}
	if cv.PersonalInfo.Email != "" {
		v.Contact = append(v.Contact, ContactToken{Icon: "✉️", Text: cv.PersonalInfo.Email})
	}
	if cv.PersonalInfo.City != "" {
		v.Contact = append(v.Contact, ContactToken{Icon: "📍", Text: cv.PersonalInfo.City})
	}
	if cv.PersonalInfo.LinkedIn != "" {
		v.Contact = append(v.Contact, ContactToken{Icon: "💼", Text: cv.PersonalInfo.LinkedIn})
	}

	if cv.ProfessionalProfile.Summary != "" {
		v.Profile = &ProfileView{
			Summary:          cv.ProfessionalProfile.Summary,
			YearsExperience:  cv.ProfessionalProfile.YearsExperience.Int(),
			Specializations:  nonBlank(cv.ProfessionalProfile.Specializations),
			Industries:       nonBlank(cv.ProfessionalProfile.Industries),
			ValueProposition: cv.ProfessionalProfile.ValueProposition,
		}
	}

	for _, exp := range cv.WorkExperience {
		v.Experience = append(v.Experience, ExperienceView{
			Position:            exp.Position,
			Company:             exp.Company,
			Period:              FormatPeriod(exp.StartDate, exp.EndDate),
			City:                exp.City,
			Achievements:        nonBlank(exp.Achievements),
			QuantifiableResults: exp.QuantifiableResults,
		})
	}

	v.Education = cv.Education
	v.SkillGroups = GroupSkills(cv.TechnicalSkills)
	v.Languages = cv.Languages
	v.SoftSkills = nonBlank(cv.SoftSkills)
	v.Certifications = cv.Certifications
	v.References = cv.References

	if cv.HasRole(model.RoleTechnical) && cv.TechnicalFields != nil {
		v.Projects = cv.TechnicalFields.Projects
		v.Methodologies = nonBlank(cv.TechnicalFields.Methodologies)
	}
	if cv.HasRole(model.RoleCommunications) && cv.CommunicationFields != nil {
		v.Portfolio = cv.CommunicationFields.Portfolio
		v.Media = nonBlank(cv.CommunicationFields.Media)
		v.Campaigns = nonBlank(cv.CommunicationFields.Campaigns)
	}
	if cv.HasRole(model.RoleSales) && cv.SalesFields != nil {
		sv := &SalesView{
			SalesFigures: cv.SalesFields.SalesFigures,
			Territory:    cv.SalesFields.Territory,
			Products:     nonBlank(cv.SalesFields.Products),
			Achievements: nonBlank(cv.SalesFields.SalesAchievements),
		}
		if sv.SalesFigures != "" || sv.Territory != "" || len(sv.Products) > 0 || len(sv.Achievements) > 0 {
			v.Sales = sv
		}
	}
	if cv.HasRole(model.RoleManagement) && cv.ManagementFields != nil {
		mv := &ManagementView{
			TeamSize:      cv.ManagementFields.TeamSize.Int(),
			BudgetManaged: cv.ManagementFields.BudgetManaged,
			KPIs:          nonBlank(cv.ManagementFields.KPIs),
			Achievements:  nonBlank(cv.ManagementFields.ManagementAchievements),
		}
		if mv.TeamSize > 0 || mv.BudgetManaged != "" || len(mv.KPIs) > 0 || len(mv.Achievements) > 0 {
			v.Management = mv
		}
	}
	if cv.HasRole(model.RoleHealth) && cv.HealthFields != nil {
		hv := &HealthView{
			Specialties:        nonBlank(cv.HealthFields.MedicalSpecialties),
			Certifications:     nonBlank(cv.HealthFields.ProfessionalCertifications),
			PatientsAttended:   cv.HealthFields.PatientsAttended.Int(),
			HospitalSystems:    nonBlank(cv.HealthFields.HospitalSystems),
			ClinicalIndicators: nonBlank(cv.HealthFields.ClinicalIndicators),
			Publications:       nonBlank(cv.HealthFields.Publications),
		}
		if len(hv.Specialties) > 0 || len(hv.Certifications) > 0 || hv.PatientsAttended > 0 ||
			len(hv.HospitalSystems) > 0 || len(hv.ClinicalIndicators) > 0 || len(hv.Publications) > 0 {
			v.Health = hv
		}
	}

	return v
}
