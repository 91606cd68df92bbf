// Package model contains domain models passed between layers.
package model

// EducationEntry is one entry of the resume's education section.
// Years are strings as produced by the upstream resume normalizer; an
// empty EndYear marks ongoing education.
type EducationEntry struct {
	Degree      string `json:"degree"`
	Institution string `json:"institution"`
	Major       string `json:"major,omitempty"`
	GPA         string `json:"gpa,omitempty"`
	StartYear   string `json:"start_year,omitempty"`
	EndYear     string `json:"end_year,omitempty"`
	Current     bool   `json:"current,omitempty"`
}

// ExperienceEntry is one entry of the resume's experience section.
// An empty EndYear or Current=true marks a position still held.
type ExperienceEntry struct {
	Title       string `json:"title"`
	Company     string `json:"company"`
	Description string `json:"description,omitempty"`
	StartYear   string `json:"start_year,omitempty"`
	EndYear     string `json:"end_year,omitempty"`
	Current     bool   `json:"current,omitempty"`
}

// ProjectEntry is one entry of the resume's projects section.
type ProjectEntry struct {
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
}

// Resume is the value source consumed by the mapping engine. It is an
// already-structured, already-normalized view of resume data; the engine
// reads it and never writes it.
type Resume struct {
	Name              string `json:"name"`
	Email             string `json:"email"`
	Phone             string `json:"phone"`
	Address           string `json:"address,omitempty"`
	City              string `json:"city,omitempty"`
	State             string `json:"state,omitempty"`
	ZipCode           string `json:"zip_code,omitempty"`
	Country           string `json:"country,omitempty"`
	LinkedInURL       string `json:"linkedin_url,omitempty"`
	GitHubURL         string `json:"github_url,omitempty"`
	PortfolioURL      string `json:"portfolio_url,omitempty"`
	Website           string `json:"website,omitempty"`
	ResumeFile        string `json:"resume_file,omitempty"`
	CoverLetter       string `json:"cover_letter,omitempty"`
	Availability      string `json:"availability,omitempty"`
	SalaryExpectation string `json:"salary_expectation,omitempty"`
	WorkAuthorization string `json:"work_authorization,omitempty"`

	Skills     []string          `json:"skills,omitempty"`
	Education  []EducationEntry  `json:"education,omitempty"`
	Experience []ExperienceEntry `json:"experience,omitempty"`
	Projects   []ProjectEntry    `json:"projects,omitempty"`
}

// Ended reports whether the entry has a concluded end year.
func (e EducationEntry) Ended() bool { return !e.Current && e.EndYear != "" }

// Ended reports whether the position has concluded.
func (e ExperienceEntry) Ended() bool { return !e.Current && e.EndYear != "" }
