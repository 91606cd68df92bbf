// Package schema holds the versioned canonical field registry: the closed
// vocabulary of semantic resume fields, their schema paths, sensitivity
// weights, known name variants, and the degree-level ranking table. A
// Registry is built once at startup and is read-only afterwards, so it is
// safe for unsynchronized concurrent readers.
package schema

// Field identifies one member of the canonical vocabulary. The set is
// append-only across MINOR versions; removal or rename is a MAJOR event.
type Field string

// Canonical fields at schema version 1.0.0 (35 identifiers).
const (
	// Personal information
	FieldFirstName    Field = "first_name"
	FieldLastName     Field = "last_name"
	FieldFullName     Field = "full_name"
	FieldEmail        Field = "email"
	FieldPhone        Field = "phone"
	FieldPhoneNumber  Field = "phone_number"
	FieldAddress      Field = "address"
	FieldCity         Field = "city"
	FieldState        Field = "state"
	FieldZipCode      Field = "zip_code"
	FieldCountry      Field = "country"
	FieldLinkedInURL  Field = "linkedin_url"
	FieldGitHubURL    Field = "github_url"
	FieldPortfolioURL Field = "portfolio_url"
	FieldWebsite      Field = "website"

	// Education
	FieldEducationDegree      Field = "education.degree"
	FieldEducationInstitution Field = "education.institution"
	FieldEducationStartDate   Field = "education.start_date"
	FieldEducationEndDate     Field = "education.end_date"
	FieldEducationMajor       Field = "education.major"
	FieldEducationGPA         Field = "education.gpa"

	// Experience
	FieldExperienceTitle       Field = "experience.title"
	FieldExperienceCompany     Field = "experience.company"
	FieldExperienceStartDate   Field = "experience.start_date"
	FieldExperienceEndDate     Field = "experience.end_date"
	FieldExperienceDescription Field = "experience.description"
	FieldExperienceCurrent     Field = "experience.current"

	// Skills
	FieldSkills Field = "skills"

	// Projects
	FieldProjectName        Field = "project.name"
	FieldProjectDescription Field = "project.description"

	// Other
	FieldResumeFile        Field = "resume_file"
	FieldCoverLetter       Field = "cover_letter"
	FieldAvailability      Field = "availability"
	FieldSalaryExpectation Field = "salary_expectation"
	FieldWorkAuthorization Field = "work_authorization"
)

// Section names the repeated resume section a field indexes into, if any.
type Section string

const (
	SectionNone       Section = ""
	SectionEducation  Section = "education"
	SectionExperience Section = "experience"
	SectionProject    Section = "project"
)

// String returns the canonical identifier.
func (f Field) String() string { return string(f) }
