package model

import "fmt"

// ResumeFromMap builds a Resume from a decoded JSON document, validating the
// structural shape of each section. Sections with the wrong shape (e.g. a
// string where a list of entries is expected) fail with ErrMalformedSource;
// missing sections are fine and simply stay empty.
func ResumeFromMap(doc map[string]any) (*Resume, error) {
	if doc == nil {
		return nil, fmt.Errorf("%w: nil document", ErrMalformedSource)
	}

	r := &Resume{}

	scalars := map[string]*string{
		"name":               &r.Name,
		"email":              &r.Email,
		"phone":              &r.Phone,
		"address":            &r.Address,
		"city":               &r.City,
		"state":              &r.State,
		"zip_code":           &r.ZipCode,
		"country":            &r.Country,
		"linkedin_url":       &r.LinkedInURL,
		"github_url":         &r.GitHubURL,
		"portfolio_url":      &r.PortfolioURL,
		"website":            &r.Website,
		"resume_file":        &r.ResumeFile,
		"cover_letter":       &r.CoverLetter,
		"availability":       &r.Availability,
		"salary_expectation": &r.SalaryExpectation,
		"work_authorization": &r.WorkAuthorization,
	}
	for key, dst := range scalars {
		raw, ok := doc[key]
		if !ok || raw == nil {
			continue
		}
		s, ok := raw.(string)
		if !ok {
			return nil, fmt.Errorf("%w: %q must be a string", ErrMalformedSource, key)
		}
		*dst = s
	}

	if raw, ok := doc["skills"]; ok && raw != nil {
		list, ok := raw.([]any)
		if !ok {
			return nil, fmt.Errorf("%w: \"skills\" must be a list", ErrMalformedSource)
		}
		for i, item := range list {
			s, ok := item.(string)
			if !ok {
				return nil, fmt.Errorf("%w: skills[%d] must be a string", ErrMalformedSource, i)
			}
			r.Skills = append(r.Skills, s)
		}
	}

	eduEntries, err := sectionEntries(doc, "education")
	if err != nil {
		return nil, err
	}
	for _, e := range eduEntries {
		r.Education = append(r.Education, EducationEntry{
			Degree:      stringField(e, "degree"),
			Institution: stringField(e, "institution"),
			Major:       stringField(e, "major"),
			GPA:         stringField(e, "gpa"),
			StartYear:   stringField(e, "start_year"),
			EndYear:     stringField(e, "end_year"),
			Current:     boolField(e, "current"),
		})
	}

	expEntries, err := sectionEntries(doc, "experience")
	if err != nil {
		return nil, err
	}
	for _, e := range expEntries {
		r.Experience = append(r.Experience, ExperienceEntry{
			Title:       stringField(e, "title"),
			Company:     stringField(e, "company"),
			Description: stringField(e, "description"),
			StartYear:   stringField(e, "start_year"),
			EndYear:     stringField(e, "end_year"),
			Current:     boolField(e, "current"),
		})
	}

	projEntries, err := sectionEntries(doc, "projects")
	if err != nil {
		return nil, err
	}
	for _, e := range projEntries {
		r.Projects = append(r.Projects, ProjectEntry{
			Name:        stringField(e, "name"),
			Description: stringField(e, "description"),
		})
	}

	return r, nil
}

// sectionEntries extracts a repeated-entry section, enforcing its shape.
func sectionEntries(doc map[string]any, key string) ([]map[string]any, error) {
	raw, ok := doc[key]
	if !ok || raw == nil {
		return nil, nil
	}
	list, ok := raw.([]any)
	if !ok {
		return nil, fmt.Errorf("%w: %q must be a list of entries", ErrMalformedSource, key)
	}
	entries := make([]map[string]any, 0, len(list))
	for i, item := range list {
		entry, ok := item.(map[string]any)
		if !ok {
			return nil, fmt.Errorf("%w: %s[%d] must be an object", ErrMalformedSource, key, i)
		}
		entries = append(entries, entry)
	}
	return entries, nil
}

func stringField(entry map[string]any, key string) string {
	// Years may arrive as JSON numbers; render them back as strings.
	switch v := entry[key].(type) {
	case string:
		return v
	case float64:
		if v == float64(int64(v)) {
			return fmt.Sprintf("%d", int64(v))
		}
		return fmt.Sprintf("%v", v)
	default:
		return ""
	}
}

func boolField(entry map[string]any, key string) bool {
	b, _ := entry[key].(bool)
	return b
}
