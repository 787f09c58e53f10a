package payroll

import (
	"context"
	"fmt"

	"github.com/AtidYarokMx/Suhuevo-sub000/internal/domain/absence"
	"github.com/AtidYarokMx/Suhuevo-sub000/internal/domain/attendance"
	"github.com/AtidYarokMx/Suhuevo-sub000/internal/domain/bonus"
	"github.com/AtidYarokMx/Suhuevo-sub000/internal/domain/overtime"
	"github.com/AtidYarokMx/Suhuevo-sub000/internal/domain/payroll"
	"github.com/AtidYarokMx/Suhuevo-sub000/internal/pkg/database"
	"github.com/AtidYarokMx/Suhuevo-sub000/internal/pkg/timeutil"
	"golang.org/x/sync/errgroup"
)

// Aggregator loads every record of a payroll week in parallel.
type Aggregator struct {
	attendanceRepo attendance.AttendanceRepository
	absenceRepo    absence.AbsenceRepository
	overtimeRepo   overtime.OvertimeRepository
	bonusRepo      bonus.BonusRepository
	personalRepo   bonus.PersonalBonusRepository
}

func NewAggregator(
	attendanceRepo attendance.AttendanceRepository,
	absenceRepo absence.AbsenceRepository,
	overtimeRepo overtime.OvertimeRepository,
	bonusRepo bonus.BonusRepository,
	personalRepo bonus.PersonalBonusRepository,
) *Aggregator {
	return &Aggregator{
		attendanceRepo: attendanceRepo,
		absenceRepo:    absenceRepo,
		overtimeRepo:   overtimeRepo,
		bonusRepo:      bonusRepo,
		personalRepo:   personalRepo,
	}
}

// Collect runs read-only queries on the pool, outside any transaction carried by ctx.
func (a *Aggregator) Collect(ctx context.Context, window timeutil.Window) (payroll.WindowData, error) {
	g, gctx := errgroup.WithContext(database.Detach(ctx))

	var (
		attendances []attendance.Attendance
		paid        []absence.Absence
		unjustified []absence.Absence
		overtimes   []overtime.Overtime
		bonuses     []bonus.Bonus
		overrides   []bonus.PersonalBonus
		custom      []bonus.PersonalBonus
	)

	g.Go(func() (err error) {
		attendances, err = a.attendanceRepo.ListInRange(gctx, window.Start, window.End)
		return wrap("attendances", err)
	})
	g.Go(func() (err error) {
		paid, err = a.absenceRepo.ListPaidInRange(gctx, window.Start, window.End)
		return wrap("paid absences", err)
	})
	g.Go(func() (err error) {
		unjustified, err = a.absenceRepo.ListUnjustifiedInRange(gctx, window.Start, window.End)
		return wrap("unjustified absences", err)
	})
	g.Go(func() (err error) {
		overtimes, err = a.overtimeRepo.ListInRange(gctx, window.Start, window.End)
		return wrap("overtimes", err)
	})
	g.Go(func() (err error) {
		bonuses, err = a.bonusRepo.ListActive(gctx, true)
		return wrap("bonuses", err)
	})
	g.Go(func() (err error) {
		overrides, err = a.personalRepo.ListEnabled(gctx, bonus.EntityBonus)
		return wrap("bonus overrides", err)
	})
	g.Go(func() (err error) {
		custom, err = a.personalRepo.ListEnabled(gctx, bonus.EntityCatalogPersonalBonus)
		return wrap("custom bonuses", err)
	})

	if err := g.Wait(); err != nil {
		return payroll.WindowData{}, err
	}

	general := make(map[bonus.Key]*bonus.Bonus, len(bonuses))
	for i := range bonuses {
		general[bonuses[i].Key] = &bonuses[i]
	}

	return payroll.WindowData{
		Window:              window,
		Attendances:         groupBy(attendances, func(a attendance.Attendance) string { return a.EmployeeCode }),
		PaidAbsences:        groupBy(paid, func(a absence.Absence) string { return a.EmployeeCode }),
		UnjustifiedAbsences: groupBy(unjustified, func(a absence.Absence) string { return a.EmployeeCode }),
		Overtimes:           groupBy(overtimes, func(o overtime.Overtime) string { return o.EmployeeCode }),
		Bonuses:             general,
		Overrides:           bonus.NewOverrides(overrides),
		CustomBonuses:       groupBy(custom, func(p bonus.PersonalBonus) string { return p.EmployeeCode }),
	}, nil
}

func groupBy[T any](items []T, key func(T) string) map[string][]T {
	grouped := make(map[string][]T)
	for _, item := range items {
		k := key(item)
		grouped[k] = append(grouped[k], item)
	}
	return grouped
}

func wrap(what string, err error) error {
	if err != nil {
		return fmt.Errorf("failed to load %s: %w", what, err)
	}
	return nil
}
