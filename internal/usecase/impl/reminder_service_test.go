package impl

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"upkeep/config"
	"upkeep/internal/domain/entity"
	domainerrors "upkeep/internal/domain/errors"
	"upkeep/internal/domain/repository"
	mockRepo "upkeep/internal/mocks/repository"
	mockSvc "upkeep/internal/mocks/service"
	"upkeep/internal/usecase"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// reminderServiceFixtures holds all test dependencies for reminder service tests.
type reminderServiceFixtures struct {
	service         usecase.ReminderUsecase
	userRepo        *mockRepo.MockUserRepository
	equipmentRepo   *mockRepo.MockEquipmentRepository
	maintenanceRepo *mockRepo.MockMaintenanceRepository
	notificationSvc *mockSvc.MockNotificationService
}

// testToday is the pinned scan day for every test, 2024-03-15 UTC.
var testToday = time.Date(2024, 3, 15, 8, 0, 0, 0, time.UTC)

func createTestReminderService(t *testing.T) reminderServiceFixtures {
	userRepo := mockRepo.NewMockUserRepository(t)
	equipmentRepo := mockRepo.NewMockEquipmentRepository(t)
	maintenanceRepo := mockRepo.NewMockMaintenanceRepository(t)
	notificationSvc := mockSvc.NewMockNotificationService(t)
	logger := slog.New(slog.NewTextHandler(io.Discard, &slog.HandlerOptions{Level: slog.LevelDebug}))

	cfg := &config.Config{
		Scan:         &config.ScanConfig{Enabled: true, RunAt: "07:00", TimeZone: "UTC"},
		Usage:        config.DefaultUsageConfig(),
		Notification: config.DefaultNotificationConfig(),
	}

	service, err := NewReminderService(
		logger,
		userRepo,
		equipmentRepo,
		maintenanceRepo,
		notificationSvc,
		cfg,
	)
	require.NoError(t, err)

	service.(*reminderService).now = func() time.Time { return testToday }

	return reminderServiceFixtures{
		service:         service,
		userRepo:        userRepo,
		equipmentRepo:   equipmentRepo,
		maintenanceRepo: maintenanceRepo,
		notificationSvc: notificationSvc,
	}
}

// dueOnTestToday returns a last-serviced instant whose 40-hour limit projects
// to testToday under the default usage rate (8 elapsed days).
func dueOnTestToday() time.Time {
	return testToday.AddDate(0, 0, -8)
}

func TestReminderService_ScanDueMaintenance_SkipsUsersWithoutTokens(t *testing.T) {
	fixtures := createTestReminderService(t)

	ctx := context.Background()
	fixtures.userRepo.EXPECT().
		ListUsers(ctx).
		Return([]*entity.User{{ID: "user-1", FCMTokens: nil}}, nil)

	report, err := fixtures.service.ScanDueMaintenance(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, report.UsersSkipped)
	assert.Equal(t, 0, report.UsersScanned)
	assert.Equal(t, 0, report.RemindersSent)
}

func TestReminderService_ScanDueMaintenance_SendsCombinedReminder(t *testing.T) {
	fixtures := createTestReminderService(t)

	ctx := context.Background()
	user := &entity.User{ID: "user-1", FCMTokens: []string{"token-a", "token-b"}}
	lastServiced := dueOnTestToday()

	fixtures.userRepo.EXPECT().
		ListUsers(ctx).
		Return([]*entity.User{user}, nil)

	fixtures.equipmentRepo.EXPECT().
		ListByUser(ctx, "user-1").
		Return([]*entity.Equipment{{ID: "equip-1", UserID: "user-1", Name: "Tractor"}}, nil)

	fixtures.maintenanceRepo.EXPECT().
		ListByEquipment(ctx, "user-1", "equip-1").
		Return([]*entity.MaintenanceRecord{
			{ID: "maint-1", Type: "Oil Change", LastServicedAt: lastServiced, HoursLimit: 40},
			{ID: "maint-2", Type: "Filter Swap", LastServicedAt: lastServiced, HoursLimit: 40},
		}, nil)

	wantBody := "Maintenance for \"Oil Change\" on \"Tractor\" is due today.\n" +
		"Maintenance for \"Filter Swap\" on \"Tractor\" is due today."
	fixtures.notificationSvc.EXPECT().
		SendMulticast(ctx, []string{"token-a", "token-b"}, "Upcoming Maintenance Reminder", wantBody, map[string]string(nil)).
		Return(2, 0, nil)

	report, err := fixtures.service.ScanDueMaintenance(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, report.UsersScanned)
	assert.Equal(t, 1, report.RemindersSent)
	assert.Equal(t, 0, report.UsersFailed)
}

func TestReminderService_ScanDueMaintenance_ExcludesNotDueRecords(t *testing.T) {
	fixtures := createTestReminderService(t)

	ctx := context.Background()
	user := &entity.User{ID: "user-1", FCMTokens: []string{"token-a"}}

	fixtures.userRepo.EXPECT().
		ListUsers(ctx).
		Return([]*entity.User{user}, nil)

	fixtures.equipmentRepo.EXPECT().
		ListByUser(ctx, "user-1").
		Return([]*entity.Equipment{{ID: "equip-1", UserID: "user-1", Name: "Tractor"}}, nil)

	// One record due yesterday, one due tomorrow; neither fires today.
	fixtures.maintenanceRepo.EXPECT().
		ListByEquipment(ctx, "user-1", "equip-1").
		Return([]*entity.MaintenanceRecord{
			{ID: "maint-1", Type: "Oil Change", LastServicedAt: dueOnTestToday().AddDate(0, 0, -1), HoursLimit: 40},
			{ID: "maint-2", Type: "Filter Swap", LastServicedAt: dueOnTestToday().AddDate(0, 0, 1), HoursLimit: 40},
		}, nil)

	report, err := fixtures.service.ScanDueMaintenance(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, report.UsersScanned)
	assert.Equal(t, 0, report.RemindersSent)
}

func TestReminderService_ScanDueMaintenance_UserFailureDoesNotAbort(t *testing.T) {
	fixtures := createTestReminderService(t)

	ctx := context.Background()
	broken := &entity.User{ID: "user-1", FCMTokens: []string{"token-a"}}
	healthy := &entity.User{ID: "user-2", FCMTokens: []string{"token-b"}}

	fixtures.userRepo.EXPECT().
		ListUsers(ctx).
		Return([]*entity.User{broken, healthy}, nil)

	fixtures.equipmentRepo.EXPECT().
		ListByUser(ctx, "user-1").
		Return(nil, errors.New("document read failed"))

	fixtures.equipmentRepo.EXPECT().
		ListByUser(ctx, "user-2").
		Return([]*entity.Equipment{{ID: "equip-2", UserID: "user-2", Name: "Mower"}}, nil)

	fixtures.maintenanceRepo.EXPECT().
		ListByEquipment(ctx, "user-2", "equip-2").
		Return([]*entity.MaintenanceRecord{
			{ID: "maint-1", Type: "Blade Sharpening", LastServicedAt: dueOnTestToday(), HoursLimit: 40},
		}, nil)

	fixtures.notificationSvc.EXPECT().
		SendMulticast(ctx, []string{"token-b"}, "Upcoming Maintenance Reminder",
			"Maintenance for \"Blade Sharpening\" on \"Mower\" is due today.", map[string]string(nil)).
		Return(1, 0, nil)

	report, err := fixtures.service.ScanDueMaintenance(ctx)
	require.NoError(t, err)
	assert.Equal(t, 2, report.UsersScanned)
	assert.Equal(t, 1, report.UsersFailed)
	assert.Equal(t, 1, report.RemindersSent)
}

func TestReminderService_ScanDueMaintenance_SendFailureIsSwallowed(t *testing.T) {
	fixtures := createTestReminderService(t)

	ctx := context.Background()
	first := &entity.User{ID: "user-1", FCMTokens: []string{"token-a"}}
	second := &entity.User{ID: "user-2", FCMTokens: []string{"token-b"}}

	fixtures.userRepo.EXPECT().
		ListUsers(ctx).
		Return([]*entity.User{first, second}, nil)

	fixtures.equipmentRepo.EXPECT().
		ListByUser(ctx, "user-1").
		Return([]*entity.Equipment{{ID: "equip-1", UserID: "user-1", Name: "Tractor"}}, nil)

	fixtures.equipmentRepo.EXPECT().
		ListByUser(ctx, "user-2").
		Return([]*entity.Equipment{{ID: "equip-2", UserID: "user-2", Name: "Mower"}}, nil)

	fixtures.maintenanceRepo.EXPECT().
		ListByEquipment(ctx, "user-1", "equip-1").
		Return([]*entity.MaintenanceRecord{
			{ID: "maint-1", Type: "Oil Change", LastServicedAt: dueOnTestToday(), HoursLimit: 40},
		}, nil)

	fixtures.maintenanceRepo.EXPECT().
		ListByEquipment(ctx, "user-2", "equip-2").
		Return([]*entity.MaintenanceRecord{
			{ID: "maint-2", Type: "Blade Sharpening", LastServicedAt: dueOnTestToday(), HoursLimit: 40},
		}, nil)

	// The first user's delivery fails; the second still gets their reminder.
	fixtures.notificationSvc.EXPECT().
		SendMulticast(ctx, []string{"token-a"}, "Upcoming Maintenance Reminder",
			"Maintenance for \"Oil Change\" on \"Tractor\" is due today.", map[string]string(nil)).
		Return(0, 0, errors.New("messaging backend unavailable"))

	fixtures.notificationSvc.EXPECT().
		SendMulticast(ctx, []string{"token-b"}, "Upcoming Maintenance Reminder",
			"Maintenance for \"Blade Sharpening\" on \"Mower\" is due today.", map[string]string(nil)).
		Return(1, 0, nil)

	report, err := fixtures.service.ScanDueMaintenance(ctx)
	require.NoError(t, err)
	assert.Equal(t, 2, report.RemindersSent)
	assert.Equal(t, 0, report.UsersFailed)
}

func TestReminderService_ScanDueMaintenance_ListUsersError(t *testing.T) {
	fixtures := createTestReminderService(t)

	ctx := context.Background()
	fixtures.userRepo.EXPECT().
		ListUsers(ctx).
		Return(nil, errors.New("collection unavailable"))

	report, err := fixtures.service.ScanDueMaintenance(ctx)
	assert.Error(t, err)
	assert.Nil(t, report)
	assert.Contains(t, err.Error(), "failed to list users")
}

func TestReminderService_SendTestNotification_Success(t *testing.T) {
	fixtures := createTestReminderService(t)

	ctx := context.Background()
	fixtures.userRepo.EXPECT().
		FindByID(ctx, "user-1").
		Return(&entity.User{ID: "user-1", FCMTokens: []string{"token-a"}}, nil)

	fixtures.notificationSvc.EXPECT().
		SendMulticast(ctx, []string{"token-a"}, "Test Notification",
			"This is a test notification from the app settings!", map[string]string(nil)).
		Return(1, 0, nil)

	message, err := fixtures.service.SendTestNotification(ctx, "user-1")
	require.NoError(t, err)
	assert.Equal(t, "Test notification sent successfully.", message)
}

func TestReminderService_SendTestNotification_UserNotFound(t *testing.T) {
	fixtures := createTestReminderService(t)

	ctx := context.Background()
	fixtures.userRepo.EXPECT().
		FindByID(ctx, "user-1").
		Return(nil, repository.ErrUserNotFound)

	message, err := fixtures.service.SendTestNotification(ctx, "user-1")
	assert.Empty(t, message)
	assert.Equal(t, domainerrors.ErrUserNotFound, err)
}

func TestReminderService_SendTestNotification_RepositoryError(t *testing.T) {
	fixtures := createTestReminderService(t)

	ctx := context.Background()
	fixtures.userRepo.EXPECT().
		FindByID(ctx, "user-1").
		Return(nil, errors.New("document read failed"))

	message, err := fixtures.service.SendTestNotification(ctx, "user-1")
	assert.Empty(t, message)
	assert.ErrorIs(t, err, domainerrors.ErrInternalError)
}

func TestReminderService_SendTestNotification_NoDeviceTokens(t *testing.T) {
	fixtures := createTestReminderService(t)

	ctx := context.Background()
	fixtures.userRepo.EXPECT().
		FindByID(ctx, "user-1").
		Return(&entity.User{ID: "user-1", FCMTokens: []string{}}, nil)

	message, err := fixtures.service.SendTestNotification(ctx, "user-1")
	assert.Empty(t, message)
	assert.Equal(t, domainerrors.ErrNoDeviceTokens, err)
}

func TestReminderService_SendTestNotification_SendFailed(t *testing.T) {
	fixtures := createTestReminderService(t)

	ctx := context.Background()
	fixtures.userRepo.EXPECT().
		FindByID(ctx, "user-1").
		Return(&entity.User{ID: "user-1", FCMTokens: []string{"token-a"}}, nil)

	fixtures.notificationSvc.EXPECT().
		SendMulticast(ctx, []string{"token-a"}, "Test Notification",
			"This is a test notification from the app settings!", map[string]string(nil)).
		Return(0, 0, errors.New("messaging backend unavailable"))

	message, err := fixtures.service.SendTestNotification(ctx, "user-1")
	assert.Empty(t, message)
	assert.Equal(t, domainerrors.ErrNotificationSendFailed, err)
}
