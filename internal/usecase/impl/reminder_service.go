// Package impl contains the application service implementations.
package impl

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"upkeep/config"
	deliverycontext "upkeep/internal/delivery/context"
	"upkeep/internal/domain/entity"
	domainerrors "upkeep/internal/domain/errors"
	"upkeep/internal/domain/repository"
	"upkeep/internal/domain/service"
	"upkeep/internal/usecase"

	"github.com/pkg/errors"
)

type reminderService struct {
	logger          *slog.Logger
	userRepo        repository.UserRepository
	equipmentRepo   repository.EquipmentRepository
	maintenanceRepo repository.MaintenanceRepository
	notificationSvc service.NotificationService
	usage           *config.UsageConfig
	texts           *config.NotificationConfig
	location        *time.Location

	// now is the clock; tests override it to pin "today".
	now func() time.Time
}

// NewReminderService creates the reminder usecase instance.
func NewReminderService(
	logger *slog.Logger,
	userRepo repository.UserRepository,
	equipmentRepo repository.EquipmentRepository,
	maintenanceRepo repository.MaintenanceRepository,
	notificationSvc service.NotificationService,
	cfg *config.Config,
) (usecase.ReminderUsecase, error) {
	location, err := resolveLocation(cfg.Scan)
	if err != nil {
		return nil, err
	}

	usage := cfg.Usage
	if usage == nil {
		usage = config.DefaultUsageConfig()
	}

	texts := cfg.Notification
	if texts == nil {
		texts = config.DefaultNotificationConfig()
	}

	return &reminderService{
		logger:          logger,
		userRepo:        userRepo,
		equipmentRepo:   equipmentRepo,
		maintenanceRepo: maintenanceRepo,
		notificationSvc: notificationSvc,
		usage:           usage,
		texts:           texts,
		location:        location,
		now:             time.Now,
	}, nil
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (s *reminderService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, s.logger)
}

func resolveLocation(scan *config.ScanConfig) (*time.Location, error) {
	if scan == nil || scan.TimeZone == "" || scan.TimeZone == "Local" {
		return time.Local, nil
	}

	location, err := time.LoadLocation(scan.TimeZone)
	if err != nil {
		return nil, errors.Wrapf(err, "invalid scan time zone %q", scan.TimeZone)
	}

	return location, nil
}

// ScanDueMaintenance walks all users, their equipment and maintenance
// records, and sends one combined reminder per user for the records whose
// projected due date is today. One user's failure never aborts the scan.
func (s *reminderService) ScanDueMaintenance(ctx context.Context) (*usecase.ScanReport, error) {
	today := s.now().In(s.location)
	s.log(ctx).Info("Starting daily maintenance check",
		slog.String("today", today.Format(time.DateOnly)),
	)

	users, err := s.userRepo.ListUsers(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list users")
	}

	report := &usecase.ScanReport{}
	for _, user := range users {
		if !user.HasTokens() {
			report.UsersSkipped++
			s.log(ctx).Info("Skipping user, no FCM tokens found", slog.String("user_id", user.ID))

			continue
		}

		report.UsersScanned++

		messages, err := s.collectDueReminders(ctx, user.ID, today)
		if err != nil {
			// Isolated per-user failure domain: a malformed subtree must not
			// abort the rest of the day's scan.
			report.UsersFailed++
			s.log(ctx).Error("Failed to check maintenance for user",
				slog.String("user_id", user.ID),
				slog.Any("error", err),
			)

			continue
		}

		if len(messages) == 0 {
			continue
		}

		report.RemindersSent++
		s.notifyUser(ctx, user.ID, user.FCMTokens, strings.Join(messages, "\n"))
	}

	s.log(ctx).Info("Finished daily maintenance check",
		slog.Int("users_scanned", report.UsersScanned),
		slog.Int("users_skipped", report.UsersSkipped),
		slog.Int("users_failed", report.UsersFailed),
		slog.Int("reminders_sent", report.RemindersSent),
	)

	return report, nil
}

// collectDueReminders returns one message line per maintenance record of the
// user that is due on the given day.
func (s *reminderService) collectDueReminders(ctx context.Context, userID string, today time.Time) ([]string, error) {
	equipment, err := s.equipmentRepo.ListByUser(ctx, userID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list equipment")
	}

	avgDailyUsage := s.usage.AverageDailyUsage()

	var messages []string
	for _, equip := range equipment {
		records, err := s.maintenanceRepo.ListByEquipment(ctx, userID, equip.ID)
		if err != nil {
			return nil, errors.Wrapf(err, "failed to list maintenance of equipment %s", equip.ID)
		}

		for _, record := range records {
			due := nextDueDate(record.LastServicedAt.In(s.location), record.HoursLimit, avgDailyUsage)
			if !sameDate(due, today) {
				continue
			}

			message := dueMessage(record, equip)
			messages = append(messages, message)
			s.log(ctx).Info("Found due maintenance",
				slog.String("user_id", userID),
				slog.String("equipment_id", equip.ID),
				slog.String("maintenance_id", record.ID),
				slog.String("message", message),
			)
		}
	}

	return messages, nil
}

func dueMessage(record *entity.MaintenanceRecord, equip *entity.Equipment) string {
	return fmt.Sprintf("Maintenance for %q on %q is due today.", record.Type, equip.Name)
}

// notifyUser attempts one multicast reminder send covering all of the user's
// tokens. Delivery failures are logged and swallowed so the scan continues
// with the next user; per-token failures are informational only.
func (s *reminderService) notifyUser(ctx context.Context, userID string, tokens []string, body string) {
	if len(tokens) == 0 {
		s.log(ctx).Warn("No tokens found for user, cannot send message", slog.String("user_id", userID))

		return
	}

	s.log(ctx).Info("Sending reminder to user", slog.String("user_id", userID))

	successCount, failureCount, err := s.notificationSvc.SendMulticast(ctx, tokens, s.texts.ReminderTitle, body, nil)
	if err != nil {
		s.log(ctx).Error("Failed to send reminder to user",
			slog.String("user_id", userID),
			slog.Any("error", err),
		)

		return
	}

	s.log(ctx).Info("Processed reminder messages for user",
		slog.String("user_id", userID),
		slog.Int("sent", successCount),
		slog.Int("failed", failureCount),
	)
}

// SendTestNotification sends a fixed test push to the calling user's devices.
// Unlike the scan path, failures surface to the caller as typed errors.
func (s *reminderService) SendTestNotification(ctx context.Context, userID string) (string, error) {
	s.log(ctx).Info("Test notification requested", slog.String("user_id", userID))

	user, err := s.userRepo.FindByID(ctx, userID)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return "", domainerrors.ErrUserNotFound
		}

		return "", domainerrors.ErrInternalError.WrapMessage("failed to fetch user")
	}

	if !user.HasTokens() {
		return "", domainerrors.ErrNoDeviceTokens
	}

	successCount, failureCount, err := s.notificationSvc.SendMulticast(ctx, user.FCMTokens, s.texts.TestTitle, s.texts.TestBody, nil)
	if err != nil {
		s.log(ctx).Error("Failed to send test notification",
			slog.String("user_id", userID),
			slog.Any("error", err),
		)

		return "", domainerrors.ErrNotificationSendFailed
	}

	s.log(ctx).Info("Test notification sent",
		slog.String("user_id", userID),
		slog.Int("sent", successCount),
		slog.Int("failed", failureCount),
	)

	return "Test notification sent successfully.", nil
}
