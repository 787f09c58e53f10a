package payroll

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"slices"
	"strings"
	"time"

	"github.com/AtidYarokMx/Suhuevo-sub000/internal/domain/employee"
	"github.com/AtidYarokMx/Suhuevo-sub000/internal/domain/payroll"
	"github.com/AtidYarokMx/Suhuevo-sub000/internal/domain/sequence"
	"github.com/AtidYarokMx/Suhuevo-sub000/internal/pkg/apperror"
	"github.com/AtidYarokMx/Suhuevo-sub000/internal/pkg/lock"
	"github.com/AtidYarokMx/Suhuevo-sub000/internal/pkg/observability"
	"github.com/AtidYarokMx/Suhuevo-sub000/internal/pkg/timeutil"
	"github.com/AtidYarokMx/Suhuevo-sub000/internal/pkg/validator"
)

// runLockTTL bounds how long a crashed run can block its week.
const runLockTTL = 2 * time.Minute

const (
	modePreview = "preview"
	modeCommit  = "commit"
)

type PayrollServiceImpl struct {
	payrollRepo  payroll.PayrollRepository
	sequenceRepo sequence.SequenceRepository
	employeeRepo employee.EmployeeRepository
	aggregator   *Aggregator
	locker       lock.Locker
	metrics      *observability.Metrics
	holidays     Holidays
	loc          *time.Location
	clock        timeutil.Clock
}

func NewPayrollService(
	payrollRepo payroll.PayrollRepository,
	sequenceRepo sequence.SequenceRepository,
	employeeRepo employee.EmployeeRepository,
	aggregator *Aggregator,
	locker lock.Locker,
	metrics *observability.Metrics,
	holidays Holidays,
	loc *time.Location,
	clock timeutil.Clock,
) payroll.PayrollService {
	return &PayrollServiceImpl{
		payrollRepo:  payrollRepo,
		sequenceRepo: sequenceRepo,
		employeeRepo: employeeRepo,
		aggregator:   aggregator,
		locker:       locker,
		metrics:      metrics,
		holidays:     holidays,
		loc:          loc,
		clock:        clock,
	}
}

// ========== EXECUTION ==========

// Execute implements payroll.PayrollService.
func (s *PayrollServiceImpl) Execute(ctx context.Context, req payroll.ExecutePayrollRequest) (payroll.PayrollResponse, error) {
	if err := req.Validate(); err != nil {
		return payroll.PayrollResponse{}, err
	}

	start, ok := validator.IsValidDate(req.WeekStartDate, s.loc)
	if !ok {
		return payroll.PayrollResponse{}, apperror.Withf(payroll.ErrInvalidDate, "invalid date %q, expected YYYY-MM-DD", req.WeekStartDate)
	}
	if start.Weekday() != timeutil.WeekStartDay {
		return payroll.PayrollResponse{}, apperror.Withf(payroll.ErrInvalidWeekday,
			"week start date %s is a %s, payroll weeks start on %s", req.WeekStartDate, start.Weekday(), timeutil.WeekStartDay)
	}
	window := timeutil.WeekWindow(start, s.loc)

	if !req.Preview {
		release, err := s.locker.Acquire(ctx, lock.PayrollWeekKey(req.WeekStartDate), runLockTTL)
		if errors.Is(err, lock.ErrLocked) {
			return payroll.PayrollResponse{}, payroll.ErrPayrollInProgress
		}
		if err != nil {
			return payroll.PayrollResponse{}, err
		}
		defer func() {
			if err := release(context.WithoutCancel(ctx)); err != nil {
				slog.ErrorContext(ctx, "failed to release payroll lock", "start_date", req.WeekStartDate, "error", err)
			}
		}()
	}

	lines, err := s.computeLines(ctx, window)
	if err != nil {
		return payroll.PayrollResponse{}, err
	}

	run := payroll.Payroll{
		Name:       payrollName(window),
		StartDate:  window.Start,
		CutoffDate: window.Cutoff,
		Lines:      lines,
	}

	if req.Preview {
		s.metrics.PayrollRun(modePreview, len(lines))
		slog.InfoContext(ctx, "payroll preview computed", "start_date", req.WeekStartDate, "lines", len(lines))
		resp := payroll.NewPayrollResponse(run)
		resp.Preview = true
		return resp, nil
	}

	saved, err := s.persist(ctx, run)
	if err != nil {
		return payroll.PayrollResponse{}, err
	}

	s.metrics.PayrollRun(modeCommit, len(lines))
	slog.InfoContext(ctx, "payroll committed", "payroll_id", saved.ID, "start_date", req.WeekStartDate, "lines", len(lines))
	return s.response(saved), nil
}

func (s *PayrollServiceImpl) computeLines(ctx context.Context, window timeutil.Window) ([]payroll.Line, error) {
	employees, err := s.employeeRepo.ListActive(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list employees: %w", err)
	}
	data, err := s.aggregator.Collect(ctx, window)
	if err != nil {
		return nil, err
	}

	slices.SortFunc(employees, func(a, b employee.Employee) int {
		return strings.Compare(a.Code, b.Code)
	})

	lines := make([]payroll.Line, 0, len(employees))
	for _, emp := range employees {
		lines = append(lines, ComputeLine(emp, data, s.holidays))
	}
	return lines, nil
}

// persist upserts run by start date on the transaction carried by ctx.
func (s *PayrollServiceImpl) persist(ctx context.Context, run payroll.Payroll) (payroll.Payroll, error) {
	existing, err := s.payrollRepo.GetActiveByStartDate(ctx, run.StartDate)
	switch {
	case err == nil:
		existing.Name = run.Name
		existing.CutoffDate = run.CutoffDate
		existing.Lines = run.Lines
		return s.payrollRepo.UpdateRun(ctx, existing)
	case errors.Is(err, payroll.ErrPayrollNotFound):
	default:
		return payroll.Payroll{}, err
	}

	seq, err := s.sequenceRepo.Consume(ctx, sequence.Payroll)
	if err != nil {
		return payroll.Payroll{}, fmt.Errorf("failed to consume payroll sequence: %w", err)
	}
	run.ID = fmt.Sprintf("PR%08d", seq)
	return s.payrollRepo.Create(ctx, run)
}

func payrollName(window timeutil.Window) string {
	return fmt.Sprintf("Nómina del %s al %s", window.Start.Format(timeutil.DateLayout), window.Cutoff.Format(timeutil.DateLayout))
}

// CloseLastWeek implements payroll.PayrollService.
func (s *PayrollServiceImpl) CloseLastWeek(ctx context.Context) (bool, error) {
	start := timeutil.LastClosedWeekStart(s.clock.Now(), s.loc)

	_, err := s.payrollRepo.GetActiveByStartDate(ctx, start)
	if err == nil {
		return false, nil
	}
	if !errors.Is(err, payroll.ErrPayrollNotFound) {
		return false, err
	}

	_, err = s.Execute(ctx, payroll.ExecutePayrollRequest{WeekStartDate: start.Format(timeutil.DateLayout)})
	if errors.Is(err, payroll.ErrPayrollInProgress) || errors.Is(err, payroll.ErrPayrollExists) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return true, nil
}

// ========== QUERIES ==========

// GetPayroll implements payroll.PayrollService.
func (s *PayrollServiceImpl) GetPayroll(ctx context.Context, id string) (payroll.PayrollResponse, error) {
	p, err := s.payrollRepo.GetByID(ctx, id)
	if err != nil {
		return payroll.PayrollResponse{}, err
	}
	return s.response(p), nil
}

// ListPayrolls implements payroll.PayrollService.
func (s *PayrollServiceImpl) ListPayrolls(ctx context.Context, filter payroll.PayrollFilter) (payroll.ListPayrollResponse, error) {
	filter.Normalize()

	summaries, total, err := s.payrollRepo.List(ctx, filter)
	if err != nil {
		return payroll.ListPayrollResponse{}, err
	}

	data := make([]payroll.PayrollSummaryResponse, 0, len(summaries))
	for _, p := range summaries {
		data = append(data, payroll.PayrollSummaryResponse{
			ID:            p.ID,
			Name:          p.Name,
			StartDate:     timeutil.DateIn(p.StartDate, s.loc).Format(timeutil.DateLayout),
			CutoffDate:    p.CutoffDate.In(s.loc).Format(timeutil.DateTimeLayout),
			EmployeeCount: p.EmployeeCount,
			TotalNetPay:   p.TotalNetPay,
		})
	}

	return payroll.ListPayrollResponse{
		Data:       data,
		TotalCount: total,
		Page:       filter.Page,
		Limit:      filter.Limit,
	}, nil
}

// DeletePayroll implements payroll.PayrollService.
func (s *PayrollServiceImpl) DeletePayroll(ctx context.Context, id string) error {
	if err := s.payrollRepo.SoftDelete(ctx, id); err != nil {
		return err
	}
	slog.InfoContext(ctx, "payroll deleted", "payroll_id", id)
	return nil
}

// Export implements payroll.PayrollService.
func (s *PayrollServiceImpl) Export(ctx context.Context, id string) (payroll.ExportFile, error) {
	p, err := s.payrollRepo.GetByID(ctx, id)
	if err != nil {
		return payroll.ExportFile{}, err
	}

	content, err := RenderWorkbook(p)
	if err != nil {
		return payroll.ExportFile{}, fmt.Errorf("failed to render payroll %s: %w", id, err)
	}
	return payroll.ExportFile{Content: content, FileName: exportFileName(p)}, nil
}

func (s *PayrollServiceImpl) response(p payroll.Payroll) payroll.PayrollResponse {
	p.StartDate = timeutil.DateIn(p.StartDate, s.loc)
	p.CutoffDate = p.CutoffDate.In(s.loc)
	return payroll.NewPayrollResponse(p)
}
