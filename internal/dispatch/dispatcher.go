package dispatch

import (
	"context"
	"fmt"
	"time"

	"golang.org/x/time/rate"

	"hirebridge/internal/config"
	"hirebridge/internal/logging"
	"hirebridge/pkg/models"
	"hirebridge/pkg/utils"
)

// Dispatcher sends one application per matched job, strictly one at a
// time. Sequential processing is a deliberate throttle against mail
// provider rate limits, not an implementation shortcut.
type Dispatcher struct {
	mailer  Mailer
	limiter *rate.Limiter
	from    string
	logger  logging.Logger
}

// New creates a dispatcher with the configured send rate
func New(cfg *config.Config, mailer Mailer) *Dispatcher {
	perMinute := cfg.Dispatch.SendsPerMin
	if perMinute <= 0 {
		perMinute = 60
	}

	return &Dispatcher{
		mailer:  mailer,
		limiter: rate.NewLimiter(rate.Limit(float64(perMinute)/60.0), 1),
		from:    cfg.Dispatch.FromAddress,
		logger:  logging.GetGlobalLogger(),
	}
}

// NewUnthrottled creates a dispatcher without the inter-send delay. The
// delay is a scheduling policy, not a correctness requirement, so tests
// and backfills can skip it.
func NewUnthrottled(cfg *config.Config, mailer Mailer) *Dispatcher {
	d := New(cfg, mailer)
	d.limiter = rate.NewLimiter(rate.Inf, 1)
	return d
}

// DispatchAll sends an application for every matched job in ranking
// order and returns one terminal record per job. A failed send is
// recorded and the batch continues: one bad company email must not block
// the rest. The batch itself only fails if the context is cancelled.
func (d *Dispatcher) DispatchAll(ctx context.Context, matchedJobs []models.MatchedJob, candidate models.CandidateInfo, resumeText string) ([]models.ApplicationRecord, models.DispatchSummary, error) {
	records := make([]models.ApplicationRecord, 0, len(matchedJobs))
	summary := models.DispatchSummary{}

	for i, match := range matchedJobs {
		if err := d.limiter.Wait(ctx); err != nil {
			return records, summary, err
		}

		record := models.ApplicationRecord{
			CompanyName:  match.Job.CompanyName,
			JobRole:      match.Job.Role,
			CompanyEmail: match.Job.CompanyEmail,
			Timestamp:    time.Now(),
		}

		err := d.mailer.Send(ctx, d.buildMessage(match, candidate, resumeText))
		if err != nil {
			sendErr := utils.NewDispatchError(err.Error())
			record.Status = models.DispatchStatusFailed
			record.ErrorDetail = sendErr.Error()
			summary.TotalFailed++

			d.logger.Warn("Application send failed", map[string]interface{}{
				"position": i,
				"company":  match.Job.CompanyName,
				"role":     match.Job.Role,
				"error":    err.Error(),
			})
		} else {
			record.Status = models.DispatchStatusSent
			summary.TotalSent++

			d.logger.Info("Application sent", map[string]interface{}{
				"position": i,
				"company":  match.Job.CompanyName,
				"role":     match.Job.Role,
			})
		}

		records = append(records, record)
	}

	return records, summary, nil
}

func (d *Dispatcher) buildMessage(match models.MatchedJob, candidate models.CandidateInfo, resumeText string) Message {
	body := fmt.Sprintf(`Dear %s hiring team,

I would like to apply for the %s position. My verified skills matching your requirements: %s.

Name: %s
Email: %s
Phone: %s
`,
		match.Job.CompanyName,
		match.Job.Role,
		joinOrNone(match.MatchedSkills),
		candidate.Name,
		candidate.Email,
		candidate.Phone,
	)

	if resumeText != "" {
		body += "\n--- Resume ---\n" + resumeText + "\n"
	}

	return Message{
		From:    d.from,
		To:      match.Job.CompanyEmail,
		Subject: fmt.Sprintf("Application for %s - %s", match.Job.Role, candidate.Name),
		Text:    body,
		ReplyTo: candidate.Email,
	}
}

func joinOrNone(skills []string) string {
	if len(skills) == 0 {
		return "(none listed)"
	}
	out := skills[0]
	for _, s := range skills[1:] {
		out += ", " + s
	}
	return out
}
