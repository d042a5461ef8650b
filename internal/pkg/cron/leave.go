package cron

import (
	"context"
	"log/slog"
	"time"

	"github.com/cmlabs-hris/workforce-admin-go/internal/domain/leave"
)

type LeaveJobs struct {
	leaveService leave.LeaveService
	now          func() time.Time
}

func NewLeaveJobs(leaveService leave.LeaveService) *LeaveJobs {
	return &LeaveJobs{
		leaveService: leaveService,
		now:          time.Now,
	}
}

func (j *LeaveJobs) RegisterJobs(scheduler *Scheduler) {
	scheduler.AddJob("open_leave_year", 6*time.Hour, j.OpenLeaveYear)
}

// OpenLeaveYear makes sure every (user, leave type) pair with an allowance last year
// has one for the current year. Existing balances are left untouched, so running it
// repeatedly is harmless.
func (j *LeaveJobs) OpenLeaveYear(ctx context.Context) error {
	year := j.now().Year()

	created, err := j.leaveService.OpenYear(ctx, year)
	if err != nil {
		return err
	}

	if created > 0 {
		slog.Info("cron: opened leave balances", "year", year, "created", created)
	}
	return nil
}
