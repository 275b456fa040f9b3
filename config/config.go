package config

import (
	"os"
	"path/filepath"
	"strings"
	"time"
	"unicode"

	"github.com/go-viper/mapstructure/v2"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env/v2"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
	"github.com/pkg/errors"
)

const (
	defaultPath = "."

	defaultScanAt   = "07:00"
	defaultTimeZone = "Local"
)

type Config struct {
	Env struct {
		Env         string `json:"env" yaml:"env"`
		ServiceName string `json:"serviceName" yaml:"serviceName"`
		Debug       bool   `json:"debug" yaml:"debug"`
		Log         Log    `json:"log" yaml:"log"`
	} `json:"env" yaml:"env"`

	HTTP struct {
		Port     int `json:"port" yaml:"port"`
		Timeouts struct {
			ReadTimeout       time.Duration `json:"readTimeout" yaml:"readTimeout"`
			ReadHeaderTimeout time.Duration `json:"readHeaderTimeout" yaml:"readHeaderTimeout"`
			WriteTimeout      time.Duration `json:"writeTimeout" yaml:"writeTimeout"`
			IdleTimeout       time.Duration `json:"idleTimeout" yaml:"idleTimeout"`
		} `json:"timeouts" yaml:"timeouts"`
	} `json:"http" yaml:"http"`

	// Firebase configuration shared by messaging, identity verification
	// and the Firestore document store
	Firebase *FirebaseConfig `json:"firebase" yaml:"firebase"`

	// Scan configuration for the daily due-date scan
	Scan *ScanConfig `json:"scan" yaml:"scan"`

	// Usage configuration for the due-date projection
	Usage *UsageConfig `json:"usage" yaml:"usage"`

	// Notification configuration for push message texts
	Notification *NotificationConfig `json:"notification" yaml:"notification"`
}

type Log struct {
	Pretty bool   `json:"pretty" yaml:"pretty"`
	Level  string `json:"level" yaml:"level"`
}

// FirebaseConfig defines Firebase project access for push notifications,
// ID token verification and Firestore reads.
type FirebaseConfig struct {
	ProjectID       string `json:"projectId" yaml:"projectId"`
	CredentialsPath string `json:"credentialsPath" yaml:"credentialsPath"`
}

// ScanConfig defines when the daily due-date scan runs.
type ScanConfig struct {
	// Enabled turns the scheduler delivery on or off.
	Enabled bool `json:"enabled" yaml:"enabled"`

	// RunAt is the local wall-clock time of the daily run, "HH:MM".
	RunAt string `json:"runAt" yaml:"runAt"`

	// TimeZone is an IANA zone name; "Local" uses the host zone.
	TimeZone string `json:"timeZone" yaml:"timeZone"`
}

// UsageConfig holds the usage-rate projection constants. The average daily
// usage is (HoursPerActiveDay * ActiveDaysPerWeek) / DaysPerWeek.
type UsageConfig struct {
	HoursPerActiveDay float64 `json:"hoursPerActiveDay" yaml:"hoursPerActiveDay"`
	ActiveDaysPerWeek float64 `json:"activeDaysPerWeek" yaml:"activeDaysPerWeek"`
	DaysPerWeek       float64 `json:"daysPerWeek" yaml:"daysPerWeek"`
}

// AverageDailyUsage returns the projected usage hours per calendar day.
func (u *UsageConfig) AverageDailyUsage() float64 {
	if u == nil || u.DaysPerWeek == 0 {
		return 0
	}

	return u.HoursPerActiveDay * u.ActiveDaysPerWeek / u.DaysPerWeek
}

// DefaultUsageConfig returns the reference projection constants
// (6.5 hours across 6 active days of a 7-day week).
func DefaultUsageConfig() *UsageConfig {
	return &UsageConfig{
		HoursPerActiveDay: 6.5,
		ActiveDaysPerWeek: 6,
		DaysPerWeek:       7,
	}
}

// NotificationConfig holds the fixed push message texts.
type NotificationConfig struct {
	ReminderTitle string `json:"reminderTitle" yaml:"reminderTitle"`
	TestTitle     string `json:"testTitle" yaml:"testTitle"`
	TestBody      string `json:"testBody" yaml:"testBody"`
}

// DefaultNotificationConfig returns the stock message texts.
func DefaultNotificationConfig() *NotificationConfig {
	return &NotificationConfig{
		ReminderTitle: "Upcoming Maintenance Reminder",
		TestTitle:     "Test Notification",
		TestBody:      "This is a test notification from the app settings!",
	}
}

// LoadWithEnv loads .yaml files through koanf.
func LoadWithEnv[T any](currEnv string, configPath ...string) (*T, error) {
	cfg := new(T)
	koanfInstance := koanf.New(".")

	// Build list of paths to search for config file
	searchPaths := []string{defaultPath}
	if len(configPath) != 0 {
		pwd, err := os.Getwd()
		if err != nil {
			return nil, errors.Wrap(err, "os.Getwd")
		}
		for _, path := range configPath {
			abs := filepath.Join(pwd, path)
			searchPaths = append(searchPaths, abs)
		}
	}

	// Try to find and load the config file
	var configFile string
	var found bool
	for _, path := range searchPaths {
		candidate := filepath.Join(path, currEnv+".yaml")
		if _, err := os.Stat(candidate); err == nil {
			configFile = candidate
			found = true

			break
		}
	}

	if !found {
		return nil, errors.Errorf("config file %s.yaml not found in any search path", currEnv)
	}

	// Load YAML config file
	if err := koanfInstance.Load(file.Provider(configFile), yaml.Parser()); err != nil {
		return nil, errors.Wrapf(err, "read %s config failed", currEnv)
	}

	existingConfigMap := koanfInstance.Raw()

	// Load environment variables
	if err := koanfInstance.Load(env.Provider(".", env.Opt{
		TransformFunc: func(k, v string) (string, any) {
			// Convert ENV_VAR_NAME to path and align each segment with existing YAML keys.
			// Example: FIREBASE_PROJECTID -> firebase.projectId (not firebase.projectid)
			key := canonicalizeEnvKey(k, existingConfigMap)

			return key, v
		},
	}), nil); err != nil {
		return nil, errors.Wrap(err, "load env variables failed")
	}

	// Unmarshal into the config struct (case-insensitive to match env vars)
	if err := koanfInstance.UnmarshalWithConf("", cfg, koanf.UnmarshalConf{
		DecoderConfig: &mapstructure.DecoderConfig{
			Result:           cfg,
			WeaklyTypedInput: true,
			DecodeHook: mapstructure.ComposeDecodeHookFunc(
				mapstructure.StringToTimeDurationHookFunc(),
			),
			MatchName: func(mapKey, fieldName string) bool {
				// Case-insensitive matching for env var overrides
				return strings.EqualFold(mapKey, fieldName)
			},
		},
	}); err != nil {
		return nil, errors.Wrapf(err, "unmarshal %s config failed", currEnv)
	}

	return cfg, nil
}

func New() (*Config, error) {
	cfg, err := LoadWithEnv[Config]("config", "config", "../config", "../../config")
	if err != nil {
		return nil, err
	}

	if cfg.Scan == nil {
		cfg.Scan = &ScanConfig{Enabled: true}
	}
	if strings.TrimSpace(cfg.Scan.RunAt) == "" {
		cfg.Scan.RunAt = defaultScanAt
	}
	if strings.TrimSpace(cfg.Scan.TimeZone) == "" {
		cfg.Scan.TimeZone = defaultTimeZone
	}

	if cfg.Usage == nil {
		cfg.Usage = DefaultUsageConfig()
	}

	if cfg.Notification == nil {
		cfg.Notification = DefaultNotificationConfig()
	}

	return cfg, nil
}

func canonicalizeEnvKey(rawKey string, existing map[string]any) string {
	segments := strings.Split(strings.ToLower(rawKey), "_")
	canonical := make([]string, 0, len(segments))
	current := existing

	for _, segment := range segments {
		if segment == "" {
			continue
		}

		if matched, next, ok := findExistingSegment(current, segment); ok {
			canonical = append(canonical, matched)
			current = next
		} else {
			canonical = append(canonical, segment)
			current = nil
		}
	}

	return strings.Join(canonical, ".")
}

func findExistingSegment(current map[string]any, segment string) (matched string, next map[string]any, ok bool) {
	if len(current) == 0 {
		return "", nil, false
	}

	needle := normalizeToken(segment)
	for key, value := range current {
		if normalizeToken(key) != needle {
			continue
		}

		child, _ := value.(map[string]any)

		return key, child, true
	}

	return "", nil, false
}

func normalizeToken(s string) string {
	var normalized strings.Builder
	normalized.Grow(len(s))

	for _, r := range s {
		if !unicode.IsLetter(r) && !unicode.IsDigit(r) {
			continue
		}
		normalized.WriteRune(unicode.ToLower(r))
	}

	return normalized.String()
}
