package catalog

import (
	"sync/atomic"

	"hirebridge/internal/config"
	"hirebridge/internal/logging"
	"hirebridge/pkg/models"
	"hirebridge/pkg/utils"
)

// Catalog holds the process-wide set of job postings. Reloads build the
// new generation completely off to the side and publish it with a single
// pointer swap, so a match running concurrently with a reload observes
// the catalog entirely-before or entirely-after, never half-updated.
type Catalog struct {
	config   *config.Config
	logger   logging.Logger
	snapshot atomic.Pointer[snapshot]
}

type snapshot struct {
	jobs []models.JobPosting
	byID map[int]*models.JobPosting
}

// New creates an empty catalog
func New(cfg *config.Config) *Catalog {
	return &Catalog{
		config: cfg,
		logger: logging.GetGlobalLogger(),
	}
}

// Load reads the catalog source and replaces the published generation
// wholesale. On any read or parse failure the previous generation stays
// in place untouched.
func (c *Catalog) Load(source string) (int, error) {
	jobs, err := loadJobs(source, c.config.Catalog.SkillsDelimiter)
	if err != nil {
		c.logger.Error("Catalog load failed, keeping previous generation", map[string]interface{}{
			"source": source,
			"error":  err.Error(),
		})
		return 0, utils.NewCatalogLoadError(err.Error())
	}

	byID := make(map[int]*models.JobPosting, len(jobs))
	for i := range jobs {
		byID[jobs[i].ID] = &jobs[i]
	}

	c.snapshot.Store(&snapshot{jobs: jobs, byID: byID})

	c.logger.Info("Job catalog loaded", map[string]interface{}{
		"source": source,
		"count":  len(jobs),
	})

	return len(jobs), nil
}

// All returns every posting in the current generation, in load order
func (c *Catalog) All() []models.JobPosting {
	snap := c.snapshot.Load()
	if snap == nil {
		return nil
	}
	return snap.jobs
}

// ByID looks up one posting by its load-time ID
func (c *Catalog) ByID(id int) (*models.JobPosting, bool) {
	snap := c.snapshot.Load()
	if snap == nil {
		return nil, false
	}
	job, ok := snap.byID[id]
	return job, ok
}

// Count returns the number of postings in the current generation
func (c *Catalog) Count() int {
	snap := c.snapshot.Load()
	if snap == nil {
		return 0
	}
	return len(snap.jobs)
}

// Loaded reports whether any generation has ever been published
func (c *Catalog) Loaded() bool {
	return c.snapshot.Load() != nil
}
