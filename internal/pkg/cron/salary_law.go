package cron

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/cmlabs-hris/hris-payroll-go/internal/domain/salarylaw"
)

type SalaryLawJobs struct {
	salaryLawRepo salarylaw.SalaryLawRepository
	now           func() time.Time
}

func NewSalaryLawJobs(salaryLawRepo salarylaw.SalaryLawRepository, now func() time.Time) *SalaryLawJobs {
	if now == nil {
		now = time.Now
	}
	return &SalaryLawJobs{salaryLawRepo: salaryLawRepo, now: now}
}

func (j *SalaryLawJobs) RegisterJobs(scheduler *Scheduler, interval time.Duration) error {
	return scheduler.AddJob("salary_law_check", interval, j.CheckCurrentYear)
}

// CheckCurrentYear warns when the running year has no active salary law,
// since every payroll computation for that year would fail.
func (j *SalaryLawJobs) CheckCurrentYear(ctx context.Context) error {
	year := j.now().Year()

	_, err := j.salaryLawRepo.GetByYear(ctx, year)
	if errors.Is(err, salarylaw.ErrSalaryLawNotFound) {
		slog.Warn("Cron: no active salary law for current year", "year", year)
		return nil
	}
	return err
}
