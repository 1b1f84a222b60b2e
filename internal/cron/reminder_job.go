package cron

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/multierr"

	"github.com/codegym/gym-manager-backend/pkg/db/models"
	dbtypes "github.com/codegym/gym-manager-backend/pkg/db/types"
	"github.com/codegym/gym-manager-backend/pkg/logger"
	"github.com/codegym/gym-manager-backend/pkg/mailer"
	"github.com/codegym/gym-manager-backend/pkg/metrics"
)

const defaultReminderWindowDays = 7

type expiringMembersRepo interface {
	ListExpiringBetween(ctx context.Context, from, to dbtypes.Date) ([]models.Member, error)
}

// ExpiryReminderJobParams configure the membership expiry reminder job.
type ExpiryReminderJobParams struct {
	Logger     *logger.Logger
	Repository expiringMembersRepo
	Mailer     mailer.Mailer
	Metrics    *metrics.JobMetrics
	WindowDays int
}

// NewExpiryReminderJob emails members whose membership lapses within the
// configured window.
func NewExpiryReminderJob(params ExpiryReminderJobParams) (Job, error) {
	if params.Logger == nil {
		return nil, fmt.Errorf("logger required")
	}
	if params.Repository == nil {
		return nil, fmt.Errorf("members repository required")
	}
	if params.Mailer == nil {
		return nil, fmt.Errorf("mailer required")
	}
	window := params.WindowDays
	if window <= 0 {
		window = defaultReminderWindowDays
	}
	return &expiryReminderJob{
		logg:    params.Logger,
		repo:    params.Repository,
		mail:    params.Mailer,
		metrics: params.Metrics,
		window:  window,
		now:     time.Now,
	}, nil
}

type expiryReminderJob struct {
	logg    *logger.Logger
	repo    expiringMembersRepo
	mail    mailer.Mailer
	metrics *metrics.JobMetrics
	window  int
	now     func() time.Time
}

func (j *expiryReminderJob) Name() string { return "membership-expiry-reminder" }

func (j *expiryReminderJob) Run(ctx context.Context) error {
	today := dbtypes.DateOf(j.now().UTC())
	until := today.AddDays(j.window)

	members, err := j.repo.ListExpiringBetween(ctx, today, until)
	if err != nil {
		return fmt.Errorf("list expiring members: %w", err)
	}

	var sent int
	var sendErrs error
	for i := range members {
		member := &members[i]
		if member.Email == "" || member.ActiveUntil == nil {
			continue
		}
		if err := j.mail.Send(ctx, member.Email, reminderSubject, reminderBody(member)); err != nil {
			sendErrs = multierr.Append(sendErrs, fmt.Errorf("member %s: %w", member.ID, err))
			continue
		}
		sent++
	}

	if j.metrics != nil {
		j.metrics.AddRemindersSent(sent)
	}
	logCtx := j.logg.WithFields(ctx, map[string]any{
		"window_days": j.window,
		"candidates":  len(members),
		"sent":        sent,
	})
	j.logg.Info(logCtx, "expiry reminders processed")

	if sendErrs != nil {
		return fmt.Errorf("expiry reminders: %w", sendErrs)
	}
	return nil
}

const reminderSubject = "Your gym membership is about to expire"

func reminderBody(member *models.Member) string {
	return fmt.Sprintf(
		"Hi %s,\n\nYour membership is active until %s. Visit the front desk or pay online to extend it and keep training without interruption.\n\nSee you at the gym!",
		member.FullName, member.ActiveUntil,
	)
}
