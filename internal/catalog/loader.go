package catalog

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strings"

	"hirebridge/pkg/models"
)

// Recognized catalog columns. Company name and role are required; the
// rest default to empty values when a column is missing.
const (
	colCompanyName = "company_name"
	colRole        = "role"
	colSkills      = "required_skills"
	colEmail       = "company_email"
	colDescription = "description"
	colLocation    = "location"
	colSalaryRange = "salary_range"
)

// loadJobs reads the CSV source into a fully materialized posting slice.
// IDs are assigned sequentially from 1 in file order.
func loadJobs(source, skillsDelimiter string) ([]models.JobPosting, error) {
	file, err := os.Open(source)
	if err != nil {
		return nil, fmt.Errorf("cannot open catalog source: %w", err)
	}
	defer file.Close()

	reader := csv.NewReader(file)
	reader.FieldsPerRecord = -1 // tolerate short rows, missing cells default to empty

	header, err := reader.Read()
	if err != nil {
		return nil, fmt.Errorf("cannot read catalog header: %w", err)
	}

	columns := make(map[string]int, len(header))
	for i, name := range header {
		columns[strings.ToLower(strings.TrimSpace(name))] = i
	}

	if _, ok := columns[colCompanyName]; !ok {
		return nil, fmt.Errorf("catalog source has no %s column", colCompanyName)
	}
	if _, ok := columns[colRole]; !ok {
		return nil, fmt.Errorf("catalog source has no %s column", colRole)
	}

	var jobs []models.JobPosting
	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("malformed catalog row %d: %w", len(jobs)+2, err)
		}

		cell := func(name string) string {
			idx, ok := columns[name]
			if !ok || idx >= len(record) {
				return ""
			}
			return strings.TrimSpace(record[idx])
		}

		jobs = append(jobs, models.JobPosting{
			ID:             len(jobs) + 1,
			CompanyName:    cell(colCompanyName),
			Role:           cell(colRole),
			RequiredSkills: splitSkills(cell(colSkills), skillsDelimiter),
			CompanyEmail:   cell(colEmail),
			Description:    cell(colDescription),
			Location:       cell(colLocation),
			SalaryRange:    cell(colSalaryRange),
		})
	}

	return jobs, nil
}

// splitSkills parses the delimited skill field: trim whitespace, drop
// empty tokens, preserve the original casing for display
func splitSkills(field, delimiter string) []string {
	if field == "" {
		return nil
	}
	if delimiter == "" {
		delimiter = ";"
	}

	var skills []string
	for _, token := range strings.Split(field, delimiter) {
		if token = strings.TrimSpace(token); token != "" {
			skills = append(skills, token)
		}
	}
	return skills
}
