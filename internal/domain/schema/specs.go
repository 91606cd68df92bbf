package schema

import "github.com/okian/fieldmap/internal/domain/selection"

// Spec carries the permanent attributes of a canonical field.
type Spec struct {
	// Path locates the field's value in resume data. Repeated sections use
	// an indexed marker, e.g. "education[].degree"; the engine fills the
	// index in once an entry is selected.
	Path string
	// Weight dampens fuzzy-match confidence. Structurally distinctive
	// fields weigh high; free-text fields prone to false positives weigh low.
	Weight float64
	// Section is the repeated section the field indexes into, if any.
	Section Section
	// DefaultStrategy overrides the engine's selection strategy for this
	// field when set.
	DefaultStrategy selection.Strategy
}

// Sensitivity tiers.
const (
	weightDistinctive = 1.0  // structurally distinctive: email, phone, urls
	weightStandard    = 0.9  // names, dates, institutions, scalar facts
	weightFreeText    = 0.75 // free-text fields prone to false positives
)

// fieldSpecs is the built-in attribute table for all 35 canonical fields.
var fieldSpecs = map[Field]Spec{
	FieldFirstName:    {Path: "name.first", Weight: weightStandard},
	FieldLastName:     {Path: "name.last", Weight: weightStandard},
	FieldFullName:     {Path: "name", Weight: weightStandard},
	FieldEmail:        {Path: "email", Weight: weightDistinctive},
	FieldPhone:        {Path: "phone", Weight: weightDistinctive},
	FieldPhoneNumber:  {Path: "phone", Weight: weightDistinctive},
	FieldAddress:      {Path: "address", Weight: weightStandard},
	FieldCity:         {Path: "city", Weight: weightStandard},
	FieldState:        {Path: "state", Weight: weightStandard},
	FieldZipCode:      {Path: "zip_code", Weight: weightDistinctive},
	FieldCountry:      {Path: "country", Weight: weightStandard},
	FieldLinkedInURL:  {Path: "linkedin_url", Weight: weightDistinctive},
	FieldGitHubURL:    {Path: "github_url", Weight: weightDistinctive},
	FieldPortfolioURL: {Path: "portfolio_url", Weight: weightDistinctive},
	FieldWebsite:      {Path: "website", Weight: weightDistinctive},

	FieldEducationDegree: {
		Path: "education[].degree", Weight: weightStandard,
		Section: SectionEducation, DefaultStrategy: selection.HighestDegree,
	},
	FieldEducationInstitution: {
		Path: "education[].institution", Weight: weightStandard,
		Section: SectionEducation,
	},
	FieldEducationStartDate: {
		Path: "education[].start_year", Weight: weightStandard,
		Section: SectionEducation,
	},
	FieldEducationEndDate: {
		Path: "education[].end_year", Weight: weightStandard,
		Section: SectionEducation,
	},
	FieldEducationMajor: {
		Path: "education[].major", Weight: weightFreeText,
		Section: SectionEducation,
	},
	FieldEducationGPA: {
		Path: "education[].gpa", Weight: weightDistinctive,
		Section: SectionEducation,
	},

	FieldExperienceTitle: {
		Path: "experience[].title", Weight: weightStandard,
		Section: SectionExperience,
	},
	FieldExperienceCompany: {
		Path: "experience[].company", Weight: weightStandard,
		Section: SectionExperience,
	},
	FieldExperienceStartDate: {
		Path: "experience[].start_year", Weight: weightStandard,
		Section: SectionExperience,
	},
	FieldExperienceEndDate: {
		Path: "experience[].end_year", Weight: weightStandard,
		Section: SectionExperience,
	},
	FieldExperienceDescription: {
		Path: "experience[].description", Weight: weightFreeText,
		Section: SectionExperience,
	},
	FieldExperienceCurrent: {
		Path: "experience[].current", Weight: weightStandard,
		Section: SectionExperience,
	},

	FieldSkills: {Path: "skills", Weight: weightFreeText},

	FieldProjectName: {
		Path: "projects[].name", Weight: weightStandard,
		Section: SectionProject,
	},
	FieldProjectDescription: {
		Path: "projects[].description", Weight: weightFreeText,
		Section: SectionProject,
	},

	FieldResumeFile:        {Path: "resume_file", Weight: weightStandard},
	FieldCoverLetter:       {Path: "cover_letter", Weight: weightStandard},
	FieldAvailability:      {Path: "availability", Weight: weightStandard},
	FieldSalaryExpectation: {Path: "salary_expectation", Weight: weightStandard},
	FieldWorkAuthorization: {Path: "work_authorization", Weight: weightStandard},
}

// degreeMarker maps degree-string substrings to a level on the fixed
// ranking scale: doctorate(4) > master(3) > bachelor(2) > associate(1),
// everything else 0.
type degreeMarker struct {
	marker string
	level  int
}

var degreeMarkers = []degreeMarker{
	{"phd", 4}, {"ph.d", 4}, {"doctor", 4}, {"d.phil", 4},
	{"master", 3}, {"m.s", 3}, {"m.a", 3}, {"mba", 3}, {"m.tech", 3},
	{"bachelor", 2}, {"b.s", 2}, {"b.a", 2}, {"b.tech", 2}, {"b.e", 2},
	{"associate", 1}, {"diploma", 1},
}
