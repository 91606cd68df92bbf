package schema

// fieldVariants is the built-in variant table: known, already-normalized
// spellings of form field labels per canonical field. Every string must be a
// fixpoint of the normalizer; the registry constructor enforces that and the
// one-field-per-variant invariant. Insertion order within a field is
// irrelevant.
var fieldVariants = map[Field][]string{
	FieldFirstName: {
		"first name", "firstname", "fname", "given name", "forename",
	},
	FieldLastName: {
		"last name", "lastname", "lname", "surname", "family name",
	},
	FieldFullName: {
		"full name", "fullname", "name", "applicant name", "candidate name",
	},
	FieldEmail: {
		"email", "email address", "e mail", "e mail address", "email id",
		"contact email",
	},
	FieldPhone: {
		"phone", "telephone", "mobile", "cell phone", "cell", "contact number",
	},
	FieldPhoneNumber: {
		"phone number", "telephone number", "mobile number",
	},
	FieldAddress: {
		"address", "street address", "street", "address line 1", "address line1",
	},
	FieldCity: {
		"city",
	},
	FieldState: {
		"state", "state province", "province",
	},
	FieldZipCode: {
		"zip", "zip code", "postal code", "postcode", "zip postal code",
	},
	FieldCountry: {
		"country",
	},
	FieldLinkedInURL: {
		"linkedin", "linkedin profile", "linkedin url", "linkedin com",
	},
	FieldGitHubURL: {
		"github", "github profile", "github url", "github com",
	},
	FieldPortfolioURL: {
		"portfolio", "portfolio url", "portfolio website", "personal website",
	},
	FieldWebsite: {
		"website", "personal site", "homepage",
	},

	FieldEducationDegree: {
		"degree", "education degree", "highest degree", "degree earned",
		"qualification",
	},
	FieldEducationInstitution: {
		"school", "university", "college", "institution",
		"educational institution", "school name", "university name",
		"college name",
	},
	FieldEducationStartDate: {
		"education start", "education start date", "school start date",
		"enrollment date",
	},
	FieldEducationEndDate: {
		"education end", "education end date", "graduation date",
		"graduation year", "degree date", "completion date",
	},
	FieldEducationMajor: {
		"major", "field of study", "area of study", "concentration",
		"specialization",
	},
	FieldEducationGPA: {
		"gpa", "grade point average", "cgpa",
	},

	FieldExperienceTitle: {
		"job title", "position", "title", "role", "position title", "job role",
	},
	FieldExperienceCompany: {
		"company", "employer", "organization", "company name", "employer name",
		"organization name",
	},
	FieldExperienceStartDate: {
		"employment start", "employment start date", "start date",
		"job start date", "work start date", "date started",
	},
	FieldExperienceEndDate: {
		"employment end", "employment end date", "end date", "job end date",
		"work end date", "date ended", "to date",
	},
	FieldExperienceDescription: {
		"job description", "work description", "responsibilities", "duties",
		"role description",
	},
	FieldExperienceCurrent: {
		"current position", "current job", "currently employed",
		"still working", "present",
	},

	FieldSkills: {
		"skills", "technical skills", "competencies", "expertise",
		"proficiencies", "technologies", "tools", "programming languages",
	},

	FieldProjectName: {
		"project name", "project title",
	},
	FieldProjectDescription: {
		"project description", "project details",
	},

	FieldResumeFile: {
		"resume", "resume file", "cv", "cv file", "upload resume",
		"attach resume",
	},
	FieldCoverLetter: {
		"cover letter", "cover letter file", "upload cover letter",
	},
	FieldAvailability: {
		"availability", "available", "when can you start", "earliest start date",
	},
	FieldSalaryExpectation: {
		"salary", "salary expectation", "expected salary", "desired salary",
		"compensation",
	},
	FieldWorkAuthorization: {
		"work authorization", "authorized to work", "work permit",
		"visa status", "legal right to work",
	},
}
