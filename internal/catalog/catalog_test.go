package catalog

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"hirebridge/internal/config"
	"hirebridge/pkg/utils"
)

func newTestCatalog(t *testing.T) *Catalog {
	t.Helper()
	cfg, err := config.LoadConfig("")
	require.NoError(t, err)
	return New(cfg)
}

func writeCSV(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "jobs.csv")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoad_RoundTrip(t *testing.T) {
	cat := newTestCatalog(t)

	source := writeCSV(t, `company_name,role,required_skills,company_email,description,location,salary_range
Acme,Backend Engineer,Go;SQL;Docker,jobs@acme.example,Build services,Remote,100k-140k
Initech,Data Engineer,Python;Spark,jobs@initech.example,Pipelines,NYC,120k-150k
`)

	count, err := cat.Load(source)
	require.NoError(t, err)
	assert.Equal(t, 2, count)
	assert.Equal(t, 2, cat.Count())
	assert.True(t, cat.Loaded())

	jobs := cat.All()
	require.Len(t, jobs, 2)

	assert.Equal(t, 1, jobs[0].ID)
	assert.Equal(t, "Acme", jobs[0].CompanyName)
	assert.Equal(t, "Backend Engineer", jobs[0].Role)
	assert.Equal(t, []string{"Go", "SQL", "Docker"}, jobs[0].RequiredSkills)
	assert.Equal(t, "jobs@acme.example", jobs[0].CompanyEmail)
	assert.Equal(t, "Remote", jobs[0].Location)

	assert.Equal(t, 2, jobs[1].ID)
	assert.Equal(t, "Initech", jobs[1].CompanyName)
}

func TestLoad_SkillsParsing(t *testing.T) {
	cat := newTestCatalog(t)

	// Whitespace trimmed, empty tokens dropped, casing preserved
	source := writeCSV(t, `company_name,role,required_skills
Acme,Engineer,"  Go ; SQL ;; nodeJS ; "
`)

	_, err := cat.Load(source)
	require.NoError(t, err)

	jobs := cat.All()
	require.Len(t, jobs, 1)
	assert.Equal(t, []string{"Go", "SQL", "nodeJS"}, jobs[0].RequiredSkills)
}

func TestLoad_MissingOptionalColumns(t *testing.T) {
	cat := newTestCatalog(t)

	source := writeCSV(t, `company_name,role
Acme,Engineer
`)

	count, err := cat.Load(source)
	require.NoError(t, err)
	assert.Equal(t, 1, count)

	jobs := cat.All()
	assert.Empty(t, jobs[0].RequiredSkills)
	assert.Empty(t, jobs[0].CompanyEmail)
}

func TestLoad_MissingRequiredColumn(t *testing.T) {
	cat := newTestCatalog(t)

	source := writeCSV(t, "company_name,required_skills\nAcme,Go\n")

	_, err := cat.Load(source)
	require.Error(t, err)

	var ce *utils.CustomError
	require.ErrorAs(t, err, &ce)
	assert.Equal(t, utils.KindCatalogLoad, ce.Kind)
}

func TestLoad_FailureKeepsPreviousGeneration(t *testing.T) {
	cat := newTestCatalog(t)

	good := writeCSV(t, "company_name,role,required_skills\nAcme,Engineer,Go\n")
	count, err := cat.Load(good)
	require.NoError(t, err)
	assert.Equal(t, 1, count)

	_, err = cat.Load(filepath.Join(t.TempDir(), "does-not-exist.csv"))
	require.Error(t, err)

	// Previous generation still serves
	assert.Equal(t, 1, cat.Count())
	jobs := cat.All()
	require.Len(t, jobs, 1)
	assert.Equal(t, "Acme", jobs[0].CompanyName)
}

func TestLoad_ReloadReplacesWholesale(t *testing.T) {
	cat := newTestCatalog(t)

	first := writeCSV(t, "company_name,role\nOld Co,Old Role\n")
	_, err := cat.Load(first)
	require.NoError(t, err)

	second := writeCSV(t, "company_name,role\nNew Co,New Role\nOther Co,Other Role\n")
	count, err := cat.Load(second)
	require.NoError(t, err)
	assert.Equal(t, 2, count)

	jobs := cat.All()
	require.Len(t, jobs, 2)
	assert.Equal(t, "New Co", jobs[0].CompanyName)
}

func TestByID(t *testing.T) {
	cat := newTestCatalog(t)

	source := writeCSV(t, "company_name,role\nAcme,Engineer\nInitech,Analyst\n")
	_, err := cat.Load(source)
	require.NoError(t, err)

	job, ok := cat.ByID(2)
	require.True(t, ok)
	assert.Equal(t, "Initech", job.CompanyName)

	_, ok = cat.ByID(99)
	assert.False(t, ok)
}

func TestUnloadedCatalog(t *testing.T) {
	cat := newTestCatalog(t)

	assert.False(t, cat.Loaded())
	assert.Equal(t, 0, cat.Count())
	assert.Nil(t, cat.All())

	_, ok := cat.ByID(1)
	assert.False(t, ok)
}
