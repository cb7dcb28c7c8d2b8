package reports

import (
	_ "embed"
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"
)

// DepartmentOther is the catch-all slug for reports no department claims.
const DepartmentOther = "other"

//go:embed departments.yaml
var departmentsYAML []byte

type department struct {
	Slug     string   `yaml:"slug"`
	Name     string   `yaml:"name"`
	Keywords []string `yaml:"keywords"`
}

// DepartmentMap maps issue descriptions and display names onto canonical
// department slugs. The backend runs a trained classifier for the same job;
// this keyword table is only the offline hint shown before submission.
type DepartmentMap struct {
	departments []department
}

// LoadDepartmentMap parses the embedded department table.
func LoadDepartmentMap() (*DepartmentMap, error) {
	var doc struct {
		Departments []department `yaml:"departments"`
	}
	if err := yaml.Unmarshal(departmentsYAML, &doc); err != nil {
		return nil, fmt.Errorf("failed to parse department table: %w", err)
	}
	return &DepartmentMap{departments: doc.Departments}, nil
}

// Suggest scans a description for department keywords and returns the slug
// of the first department with a hit, or DepartmentOther.
func (m *DepartmentMap) Suggest(description string) string {
	text := strings.ToLower(description)
	for _, dept := range m.departments {
		for _, kw := range dept.Keywords {
			if strings.Contains(text, kw) {
				return dept.Slug
			}
		}
	}
	return DepartmentOther
}

// Canonical maps a department display name or slug onto its canonical slug.
// Unknown names map to DepartmentOther.
func (m *DepartmentMap) Canonical(name string) string {
	trimmed := strings.TrimSpace(name)
	for _, dept := range m.departments {
		if strings.EqualFold(trimmed, dept.Slug) || strings.EqualFold(trimmed, dept.Name) {
			return dept.Slug
		}
	}
	return DepartmentOther
}

// Name returns the display name for a slug, or the slug itself if unknown.
func (m *DepartmentMap) Name(slug string) string {
	for _, dept := range m.departments {
		if dept.Slug == slug {
			return dept.Name
		}
	}
	return slug
}
