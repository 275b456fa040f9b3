// Package scheduler runs the daily due-date scan as a delivery: a timer loop
// that fires once per day at the configured local wall-clock time.
package scheduler

import (
	"context"
	"log/slog"
	"time"

	"upkeep/config"
	"upkeep/internal/delivery"
	deliverycontext "upkeep/internal/delivery/context"
	"upkeep/internal/usecase"
	"upkeep/internal/util"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

type schedulerServer struct {
	cfg        *config.ScanConfig
	logger     *slog.Logger
	reminderUC usecase.ReminderUsecase
	location   *time.Location
	hour       int
	minute     int
	quit       chan struct{}

	// now is the clock; tests override it.
	now func() time.Time
}

// ServerParams holds dependencies for the scheduler delivery.
type ServerParams struct {
	fx.In
	fx.Lifecycle

	Config     *config.Config
	Logger     *slog.Logger
	ReminderUC usecase.ReminderUsecase
}

// NewServer creates the scheduler delivery.
func NewServer(params ServerParams) (delivery.Delivery, error) {
	scanCfg := params.Config.Scan
	if scanCfg == nil {
		scanCfg = &config.ScanConfig{Enabled: true, RunAt: "07:00", TimeZone: "Local"}
	}

	hour, minute, err := parseRunAt(scanCfg.RunAt)
	if err != nil {
		return nil, err
	}

	location := time.Local
	if scanCfg.TimeZone != "" && scanCfg.TimeZone != "Local" {
		location, err = time.LoadLocation(scanCfg.TimeZone)
		if err != nil {
			return nil, errors.Wrapf(err, "invalid scan time zone %q", scanCfg.TimeZone)
		}
	}

	srv := &schedulerServer{
		cfg:        scanCfg,
		logger:     params.Logger,
		reminderUC: params.ReminderUC,
		location:   location,
		hour:       hour,
		minute:     minute,
		quit:       make(chan struct{}),
		now:        time.Now,
	}

	params.Append(fx.Hook{
		OnStop: srv.stop,
	})

	return srv, nil
}

// parseRunAt parses a "HH:MM" wall-clock time.
func parseRunAt(runAt string) (hour, minute int, err error) {
	t, err := time.Parse("15:04", runAt)
	if err != nil {
		return 0, 0, errors.Wrapf(err, "invalid scan runAt %q, expected HH:MM", runAt)
	}

	return t.Hour(), t.Minute(), nil
}

// Serve blocks, firing the due-date scan once per day at the configured time,
// until the context is cancelled or the delivery is stopped.
func (s *schedulerServer) Serve(ctx context.Context) error {
	if !s.cfg.Enabled {
		s.logger.Info("Scan scheduler disabled")

		return nil
	}

	s.logger.Info("Starting scan scheduler",
		slog.String("run_at", s.cfg.RunAt),
		slog.String("time_zone", s.location.String()),
	)

	for {
		next := nextRunAfter(s.now().In(s.location), s.hour, s.minute)
		s.logger.Info("Next scan scheduled", slog.Time("at", next))

		timer := time.NewTimer(time.Until(next))
		select {
		case <-ctx.Done():
			timer.Stop()

			return nil
		case <-s.quit:
			timer.Stop()

			return nil
		case <-timer.C:
			s.runScan(ctx)
		}
	}
}

// runScan executes one scan with a run-scoped logger. Scan errors are logged,
// never fatal; the next day's run is scheduled regardless.
func (s *schedulerServer) runScan(ctx context.Context) {
	runID := uuid.New().String()
	runLogger := s.logger.With(slog.String("run_id", runID))

	runCtx := deliverycontext.WithRequestID(ctx, runID)
	runCtx = deliverycontext.WithLogger(runCtx, runLogger)

	start := s.now()
	report, err := s.reminderUC.ScanDueMaintenance(runCtx)
	if err != nil {
		runLogger.Error("Due-date scan failed", slog.Any("error", err))

		return
	}

	runLogger.Info("Due-date scan completed",
		slog.String("duration", util.FormatDuration(time.Since(start))),
		slog.Int("users_scanned", report.UsersScanned),
		slog.Int("users_skipped", report.UsersSkipped),
		slog.Int("users_failed", report.UsersFailed),
		slog.Int("reminders_sent", report.RemindersSent),
	)
}

// nextRunAfter returns the next instant strictly after now with the given
// wall-clock time in now's location. Built with time.Date so DST transitions
// resolve to a valid instant.
func nextRunAfter(now time.Time, hour, minute int) time.Time {
	year, month, day := now.Date()
	next := time.Date(year, month, day, hour, minute, 0, 0, now.Location())
	if !next.After(now) {
		next = time.Date(year, month, day+1, hour, minute, 0, 0, now.Location())
	}

	return next
}

// stop ends the Serve loop.
func (s *schedulerServer) stop(ctx context.Context) error {
	s.logger.Info("Shutting down scan scheduler")
	close(s.quit)

	return nil
}
