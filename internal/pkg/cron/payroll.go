package cron

import (
	"context"
	"log/slog"
	"time"

	"github.com/AtidYarokMx/Suhuevo-sub000/internal/domain/payroll"
	"github.com/AtidYarokMx/Suhuevo-sub000/internal/pkg/database"
)

const autoClosePayrollJob = "auto_close_payroll"

// PayrollJobs commits the last closed week once its cutoff has passed.
type PayrollJobs struct {
	payrollService payroll.PayrollService
	txm            database.Transactor
	interval       time.Duration
}

func NewPayrollJobs(payrollService payroll.PayrollService, txm database.Transactor, interval time.Duration) *PayrollJobs {
	return &PayrollJobs{
		payrollService: payrollService,
		txm:            txm,
		interval:       interval,
	}
}

func (j *PayrollJobs) RegisterJobs(scheduler *Scheduler) {
	scheduler.AddJob(autoClosePayrollJob, j.interval, j.AutoCloseLastWeek)
}

// AutoCloseLastWeek is a no-op when the week already has a payroll.
func (j *PayrollJobs) AutoCloseLastWeek(ctx context.Context) error {
	var created bool
	err := j.txm.WithinTx(ctx, func(ctx context.Context) error {
		var err error
		created, err = j.payrollService.CloseLastWeek(ctx)
		return err
	})
	if err != nil {
		return err
	}

	if created {
		slog.InfoContext(ctx, "Cron: payroll closed for last week")
	}
	return nil
}
