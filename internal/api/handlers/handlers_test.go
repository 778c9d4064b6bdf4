package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"hirebridge/internal/catalog"
	"hirebridge/internal/config"
	"hirebridge/internal/dispatch"
	"hirebridge/internal/interview/session"
	"hirebridge/internal/matcher"
	"hirebridge/internal/profile"
	"hirebridge/pkg/models"
)

func testConfig(t *testing.T) *config.Config {
	t.Helper()
	cfg, err := config.LoadConfig("")
	require.NoError(t, err)
	return cfg
}

func jsonRequest(t *testing.T, method, target string, body interface{}) (echo.Context, *httptest.ResponseRecorder) {
	t.Helper()

	var reader *strings.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		require.NoError(t, err)
		reader = strings.NewReader(string(payload))
	} else {
		reader = strings.NewReader("")
	}

	req := httptest.NewRequest(method, target, reader)
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	return echo.New().NewContext(req, rec), rec
}

func decodeBody(t *testing.T, rec *httptest.ResponseRecorder, out interface{}) {
	t.Helper()
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), out))
}

func loadedCatalog(t *testing.T, cfg *config.Config, rows string) *catalog.Catalog {
	t.Helper()
	path := filepath.Join(t.TempDir(), "jobs.csv")
	content := "company_name,role,required_skills,company_email\n" + rows
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	cat := catalog.New(cfg)
	_, err := cat.Load(path)
	require.NoError(t, err)
	return cat
}

func TestAnalyzeProfileHandler(t *testing.T) {
	h := AnalyzeProfileHandler(profile.NewExtractor())

	c, rec := jsonRequest(t, http.MethodPost, "/api/v1/profile/analyze", models.AnalyzeProfileRequest{
		Profile: models.CandidateProfile{
			Skills: &models.SkillSet{Technical: []string{"Python", "Django"}},
			Experience: []models.ExperienceEntry{
				{Title: "Backend Engineer"},
				{Title: "Platform Lead"},
			},
		},
	})

	require.NoError(t, h(c))
	assert.Equal(t, http.StatusOK, rec.Code)

	var resp models.AnalyzeProfileResponse
	decodeBody(t, rec, &resp)
	assert.True(t, resp.Success)
	require.NotNil(t, resp.Profile)
	assert.Equal(t, models.TierMid, resp.Profile.ExperienceTier)
	assert.Contains(t, resp.Profile.Skills.Technical, "Python")
}

func TestAnalyzeProfileHandler_EmptyProfile(t *testing.T) {
	h := AnalyzeProfileHandler(profile.NewExtractor())

	c, rec := jsonRequest(t, http.MethodPost, "/api/v1/profile/analyze", models.AnalyzeProfileRequest{})

	require.NoError(t, h(c))
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	var resp models.ErrorResponse
	decodeBody(t, rec, &resp)
	assert.Equal(t, "validation_failed", resp.Error)
}

func TestMatchJobsHandler_Verified(t *testing.T) {
	cfg := testConfig(t)
	cat := loadedCatalog(t, cfg, "Initech,Django Developer,Python;Django,jobs@initech.example\n")
	h := MatchJobsHandler(matcher.New(cfg, cat))

	c, rec := jsonRequest(t, http.MethodPost, "/api/v1/jobs/match", models.MatchJobsRequest{
		CandidateSkills: []string{"Python", "Django", "PostgreSQL"},
		Verification: &models.VerificationResult{
			AverageScore: 85,
			IsVerified:   true,
			PassedCount:  5,
			Threshold:    models.PassThreshold,
		},
	})

	require.NoError(t, h(c))
	assert.Equal(t, http.StatusOK, rec.Code)

	var resp models.MatchJobsResponse
	decodeBody(t, rec, &resp)
	require.NotNil(t, resp.Result)
	require.Len(t, resp.Result.MatchedJobs, 1)
	assert.InDelta(t, 100.0, resp.Result.MatchedJobs[0].MatchScore, 0.001)
}

func TestMatchJobsHandler_UnverifiedGate(t *testing.T) {
	cfg := testConfig(t)
	cat := loadedCatalog(t, cfg, "Initech,Django Developer,Python;Django,jobs@initech.example\n")
	h := MatchJobsHandler(matcher.New(cfg, cat))

	c, rec := jsonRequest(t, http.MethodPost, "/api/v1/jobs/match", models.MatchJobsRequest{
		CandidateSkills: []string{"Python"},
		Verification: &models.VerificationResult{
			AverageScore: 50,
			IsVerified:   false,
			PassedCount:  1,
			Threshold:    models.PassThreshold,
		},
	})

	require.NoError(t, h(c))
	assert.Equal(t, http.StatusOK, rec.Code)

	var resp models.MatchJobsResponse
	decodeBody(t, rec, &resp)
	require.NotNil(t, resp.Result)
	assert.Empty(t, resp.Result.MatchedJobs)
	assert.Equal(t, matcher.ReasonVerificationFailed, resp.Result.Reason)
}

func TestMatchJobsHandler_ForgedVerifiedFlag(t *testing.T) {
	cfg := testConfig(t)
	cat := loadedCatalog(t, cfg, "Initech,Django Developer,Python;Django,jobs@initech.example\n")
	h := MatchJobsHandler(matcher.New(cfg, cat))

	c, rec := jsonRequest(t, http.MethodPost, "/api/v1/jobs/match", models.MatchJobsRequest{
		CandidateSkills: []string{"Python", "Django"},
		Verification: &models.VerificationResult{
			AverageScore: 50,
			IsVerified:   true,
			PassedCount:  5,
			Threshold:    models.PassThreshold,
		},
	})

	require.NoError(t, h(c))
	assert.Equal(t, http.StatusOK, rec.Code)

	var resp models.MatchJobsResponse
	decodeBody(t, rec, &resp)
	require.NotNil(t, resp.Result)
	assert.Empty(t, resp.Result.MatchedJobs)
	assert.Equal(t, matcher.ReasonVerificationFailed, resp.Result.Reason)
}

func TestMatchJobsHandler_MissingVerificationRejected(t *testing.T) {
	cfg := testConfig(t)
	cat := loadedCatalog(t, cfg, "Initech,Django Developer,Python,jobs@initech.example\n")
	h := MatchJobsHandler(matcher.New(cfg, cat))

	c, rec := jsonRequest(t, http.MethodPost, "/api/v1/jobs/match", map[string]interface{}{
		"candidate_skills": []string{"Python"},
	})

	require.NoError(t, h(c))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestMatchJobsHandler_EmptyCatalog(t *testing.T) {
	cfg := testConfig(t)
	h := MatchJobsHandler(matcher.New(cfg, catalog.New(cfg)))

	c, rec := jsonRequest(t, http.MethodPost, "/api/v1/jobs/match", models.MatchJobsRequest{
		CandidateSkills: []string{"Python"},
		Verification: &models.VerificationResult{
			AverageScore: 85,
			IsVerified:   true,
			PassedCount:  5,
			Threshold:    models.PassThreshold,
		},
	})

	require.NoError(t, h(c))
	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)

	var resp models.ErrorResponse
	decodeBody(t, rec, &resp)
	assert.Equal(t, "catalog_empty", resp.Error)
}

func TestLoadCatalogHandler(t *testing.T) {
	cfg := testConfig(t)
	cat := catalog.New(cfg)
	h := LoadCatalogHandler(cfg, cat)

	path := filepath.Join(t.TempDir(), "jobs.csv")
	content := "company_name,role,required_skills\nAcme,Engineer,Go\nInitech,Analyst,SQL\n"
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	c, rec := jsonRequest(t, http.MethodPost, "/api/v1/jobs/load", models.LoadCatalogRequest{Source: path})

	require.NoError(t, h(c))
	assert.Equal(t, http.StatusOK, rec.Code)

	var resp models.LoadCatalogResponse
	decodeBody(t, rec, &resp)
	assert.True(t, resp.Success)
	assert.Equal(t, 2, resp.Count)
	assert.Equal(t, 2, cat.Count())
}

func TestLoadCatalogHandler_NoSource(t *testing.T) {
	cfg := testConfig(t)
	h := LoadCatalogHandler(cfg, catalog.New(cfg))

	c, rec := jsonRequest(t, http.MethodPost, "/api/v1/jobs/load", models.LoadCatalogRequest{})

	require.NoError(t, h(c))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestGetVerificationHandler(t *testing.T) {
	store := session.NewMemoryStore(time.Minute)
	defer store.Close()

	result := &models.VerificationResult{
		AverageScore: 75,
		IsVerified:   true,
		PassedCount:  4,
		Threshold:    models.PassThreshold,
	}
	require.NoError(t, store.PutVerification(context.Background(), "session_abc", result))

	h := GetVerificationHandler(store)

	c, rec := jsonRequest(t, http.MethodGet, "/api/v1/interview/verification/session_abc", nil)
	c.SetParamNames("session_id")
	c.SetParamValues("session_abc")

	require.NoError(t, h(c))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"average_score":75`)
}

func TestGetVerificationHandler_Expired(t *testing.T) {
	store := session.NewMemoryStore(time.Minute)
	defer store.Close()

	h := GetVerificationHandler(store)

	c, rec := jsonRequest(t, http.MethodGet, "/api/v1/interview/verification/gone", nil)
	c.SetParamNames("session_id")
	c.SetParamValues("gone")

	require.NoError(t, h(c))
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

type recordingMailer struct {
	sent []dispatch.Message
}

func (r *recordingMailer) Send(_ context.Context, msg dispatch.Message) error {
	r.sent = append(r.sent, msg)
	return nil
}

func TestDispatchApplicationsHandler(t *testing.T) {
	cfg := testConfig(t)
	cfg.Dispatch.FromAddress = "apply@hirebridge.example"
	mailer := &recordingMailer{}
	h := DispatchApplicationsHandler(dispatch.NewUnthrottled(cfg, mailer))

	c, rec := jsonRequest(t, http.MethodPost, "/api/v1/applications/dispatch", models.DispatchApplicationsRequest{
		Candidate: models.CandidateInfo{Name: "Jordan Reyes", Email: "jordan@example.com"},
		MatchedJobs: []models.MatchedJob{
			{
				Job:           models.JobPosting{ID: 1, CompanyName: "Acme", Role: "Engineer", CompanyEmail: "jobs@acme.example"},
				MatchScore:    100,
				MatchedSkills: []string{"Go"},
			},
		},
	})

	require.NoError(t, h(c))
	assert.Equal(t, http.StatusOK, rec.Code)

	var resp models.DispatchApplicationsResponse
	decodeBody(t, rec, &resp)
	assert.True(t, resp.Success)
	require.Len(t, resp.Records, 1)
	assert.Equal(t, models.DispatchStatusSent, resp.Records[0].Status)
	assert.Equal(t, models.DispatchSummary{TotalSent: 1, TotalFailed: 0}, resp.Summary)
	require.Len(t, mailer.sent, 1)
	assert.Equal(t, "jobs@acme.example", mailer.sent[0].To)
}

func TestDispatchApplicationsHandler_EmptyBatchRejected(t *testing.T) {
	cfg := testConfig(t)
	h := DispatchApplicationsHandler(dispatch.NewUnthrottled(cfg, &recordingMailer{}))

	c, rec := jsonRequest(t, http.MethodPost, "/api/v1/applications/dispatch", models.DispatchApplicationsRequest{
		Candidate: models.CandidateInfo{Name: "Jordan Reyes", Email: "jordan@example.com"},
	})

	require.NoError(t, h(c))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}
