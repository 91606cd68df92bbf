package engine

import (
	"fmt"
	"strings"

	"github.com/okian/fieldmap/internal/domain/model"
	"github.com/okian/fieldmap/internal/domain/schema"
	"github.com/okian/fieldmap/internal/domain/selection"
)

// resolved carries the outcome of value resolution for one matched field.
type resolved struct {
	path     string
	value    any
	index    *int
	strategy string
}

// resolve locates the matched field's value in the resume source. A nil
// return with nil error means the field addresses a repeated section with
// no suitable entry.
func (e *Engine) resolve(field schema.Field, spec schema.Spec, source *model.Resume, index *int) (*resolved, error) {
	if spec.Section == schema.SectionNone {
		return e.resolveScalar(field, spec, source), nil
	}

	strategy := e.strategy
	if spec.DefaultStrategy != "" {
		strategy = spec.DefaultStrategy
	}

	switch spec.Section {
	case schema.SectionEducation:
		return e.resolveEducation(field, spec, source, strategy, index)
	case schema.SectionExperience:
		return e.resolveExperience(field, spec, source, strategy, index)
	case schema.SectionProject:
		return e.resolveProject(field, spec, source, strategy, index)
	default:
		return nil, fmt.Errorf("%w: %s", schema.ErrUnknownField, field)
	}
}

func (e *Engine) resolveScalar(field schema.Field, spec schema.Spec, source *model.Resume) *resolved {
	r := &resolved{path: spec.Path}
	switch field {
	case schema.FieldFullName:
		r.value = optional(source.Name)
	case schema.FieldFirstName:
		r.value = optional(firstName(source.Name))
	case schema.FieldLastName:
		r.value = optional(lastName(source.Name))
	case schema.FieldEmail:
		r.value = optional(source.Email)
	case schema.FieldPhone, schema.FieldPhoneNumber:
		r.value = optional(source.Phone)
	case schema.FieldAddress:
		r.value = optional(source.Address)
	case schema.FieldCity:
		r.value = optional(source.City)
	case schema.FieldState:
		r.value = optional(source.State)
	case schema.FieldZipCode:
		r.value = optional(source.ZipCode)
	case schema.FieldCountry:
		r.value = optional(source.Country)
	case schema.FieldLinkedInURL:
		r.value = optional(source.LinkedInURL)
	case schema.FieldGitHubURL:
		r.value = optional(source.GitHubURL)
	case schema.FieldPortfolioURL:
		r.value = optional(source.PortfolioURL)
	case schema.FieldWebsite:
		r.value = optional(source.Website)
	case schema.FieldSkills:
		skills := source.Skills
		if skills == nil {
			skills = []string{}
		}
		r.value = skills
	case schema.FieldResumeFile:
		r.value = optional(source.ResumeFile)
	case schema.FieldCoverLetter:
		r.value = optional(source.CoverLetter)
	case schema.FieldAvailability:
		r.value = optional(source.Availability)
	case schema.FieldSalaryExpectation:
		r.value = optional(source.SalaryExpectation)
	case schema.FieldWorkAuthorization:
		r.value = optional(source.WorkAuthorization)
	}
	return r
}

func (e *Engine) resolveEducation(field schema.Field, spec schema.Spec, source *model.Resume, strategy selection.Strategy, index *int) (*resolved, error) {
	idx, entry, err := e.resolver.Education(source.Education, strategy, index)
	if err != nil {
		return nil, err
	}
	if entry == nil {
		return nil, nil
	}

	var value any
	switch field {
	case schema.FieldEducationDegree:
		value = optional(entry.Degree)
	case schema.FieldEducationInstitution:
		value = optional(entry.Institution)
	case schema.FieldEducationStartDate:
		value = optional(entry.StartYear)
	case schema.FieldEducationEndDate:
		value = optional(entry.EndYear)
	case schema.FieldEducationMajor:
		value = optional(major(entry))
	case schema.FieldEducationGPA:
		value = optional(entry.GPA)
	}
	if value == nil {
		// The selected entry carries no value for this field; per the
		// no-guess rule the whole mapping yields no result.
		return nil, nil
	}
	return sectionResolved(spec, idx, strategy, value), nil
}

func (e *Engine) resolveExperience(field schema.Field, spec schema.Spec, source *model.Resume, strategy selection.Strategy, index *int) (*resolved, error) {
	idx, entry, err := e.resolver.Experience(source.Experience, strategy, index)
	if err != nil {
		return nil, err
	}
	if entry == nil {
		return nil, nil
	}

	var value any
	switch field {
	case schema.FieldExperienceTitle:
		value = optional(entry.Title)
	case schema.FieldExperienceCompany:
		value = optional(entry.Company)
	case schema.FieldExperienceStartDate:
		value = optional(entry.StartYear)
	case schema.FieldExperienceEndDate:
		value = optional(entry.EndYear)
	case schema.FieldExperienceDescription:
		value = optional(entry.Description)
	case schema.FieldExperienceCurrent:
		value = !entry.Ended()
	}
	if value == nil {
		return nil, nil
	}
	return sectionResolved(spec, idx, strategy, value), nil
}

func (e *Engine) resolveProject(field schema.Field, spec schema.Spec, source *model.Resume, strategy selection.Strategy, index *int) (*resolved, error) {
	idx, entry, err := e.resolver.Projects(source.Projects, strategy, index)
	if err != nil {
		return nil, err
	}
	if entry == nil {
		return nil, nil
	}

	var value any
	switch field {
	case schema.FieldProjectName:
		value = optional(entry.Name)
	case schema.FieldProjectDescription:
		value = optional(entry.Description)
	}
	if value == nil {
		return nil, nil
	}
	return sectionResolved(spec, idx, strategy, value), nil
}

func sectionResolved(spec schema.Spec, idx int, strategy selection.Strategy, value any) *resolved {
	i := idx
	return &resolved{
		path:     strings.Replace(spec.Path, "[]", fmt.Sprintf("[%d]", idx), 1),
		value:    value,
		index:    &i,
		strategy: string(strategy),
	}
}

// optional maps the empty string to an absent value.
func optional(s string) any {
	if s == "" {
		return nil
	}
	return s
}

// firstName is the first whitespace-separated token of a full name.
func firstName(full string) string {
	parts := strings.Fields(full)
	if len(parts) == 0 {
		return ""
	}
	return parts[0]
}

// lastName is everything after the first token of a full name, so
// multi-word last names stay intact. Single-token names have no last name.
func lastName(full string) string {
	parts := strings.Fields(full)
	if len(parts) < 2 {
		return ""
	}
	return strings.Join(parts[1:], " ")
}

// major prefers the entry's own major and otherwise derives it from a
// degree string written as "<degree> in <major>".
func major(entry *model.EducationEntry) string {
	if entry.Major != "" {
		return entry.Major
	}
	if _, after, found := strings.Cut(entry.Degree, " in "); found {
		return after
	}
	return ""
}
