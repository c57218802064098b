// Package scheduler runs jobs at a fixed local time once per calendar day.
// There is no distributed lock: when several instances run, each fires its
// own copy of the job.
package scheduler

import (
	"context"
	"time"

	"go.uber.org/zap"
)

type Job func(context.Context)

type Daily struct {
	name     string
	hour     int
	minute   int
	location *time.Location
	job      Job
}

func NewDaily(name string, hour, minute int, location *time.Location, job Job) *Daily {
	return &Daily{name: name, hour: hour, minute: minute, location: location, job: job}
}

// Start launches the scheduler loop in its own goroutine. It stops when
// ctx is cancelled.
func (d *Daily) Start(ctx context.Context) {
	go d.run(ctx)
}

func (d *Daily) run(ctx context.Context) {
	for {
		next := d.NextRun(time.Now().In(d.location))
		zap.L().Info("scheduled daily job", zap.String("job", d.name), zap.Time("next_run", next))

		timer := time.NewTimer(time.Until(next))
		select {
		case <-ctx.Done():
			timer.Stop()
			return
		case <-timer.C:
			d.invoke(ctx)
		}
	}
}

func (d *Daily) invoke(ctx context.Context) {
	defer func() {
		if r := recover(); r != nil {
			zap.L().Error("daily job panicked", zap.String("job", d.name), zap.Any("panic", r))
		}
	}()
	d.job(ctx)
}

// NextRun returns the first hour:minute in the scheduler's location
// strictly after now.
func (d *Daily) NextRun(now time.Time) time.Time {
	now = now.In(d.location)
	next := time.Date(now.Year(), now.Month(), now.Day(), d.hour, d.minute, 0, 0, d.location)
	if !next.After(now) {
		next = next.AddDate(0, 0, 1)
	}
	return next
}
