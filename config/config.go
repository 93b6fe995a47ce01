package config

import (
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"
	"unicode"

	"github.com/go-viper/mapstructure/v2"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env/v2"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
	"github.com/pkg/errors"
	"github.com/slighter12/go-lib/database/postgres"
)

const (
	defaultPath               = "."
	defaultMaxRequestBodySize = "100KB"

	defaultBcryptCost         = 10
	defaultAccessTokenTTL     = 15 * time.Minute
	defaultTimezone           = "America/Mexico_City"
	defaultCompartmentCount   = 3
	defaultPushTTL            = 60
	defaultPushSendTimeout    = 10 * time.Second
	defaultMaxConcurrentSends = 8
	defaultPushIcon           = "/icon-192.png"
	defaultPushBadge          = "/badge-72.png"
	defaultAlarmTitle         = "💊 Time for your medication"
	defaultSweeperSchedule    = "*/15 * * * *"
	defaultRetentionHorizon   = 24 * time.Hour
	defaultMetricsPath        = "/metrics"
)

type Config struct {
	Env struct {
		Env         string `json:"env" yaml:"env"`
		ServiceName string `json:"serviceName" yaml:"serviceName"`
		Debug       bool   `json:"debug" yaml:"debug"`
		Log         Log    `json:"log" yaml:"log"`
	} `json:"env" yaml:"env"`

	HTTP struct {
		Port               int    `json:"port" yaml:"port"`
		MaxRequestBodySize string `json:"maxRequestBodySize" yaml:"maxRequestBodySize"`
		Timeouts           struct {
			ReadTimeout       time.Duration `json:"readTimeout" yaml:"readTimeout"`
			ReadHeaderTimeout time.Duration `json:"readHeaderTimeout" yaml:"readHeaderTimeout"`
			WriteTimeout      time.Duration `json:"writeTimeout" yaml:"writeTimeout"`
			IdleTimeout       time.Duration `json:"idleTimeout" yaml:"idleTimeout"`
		} `json:"timeouts" yaml:"timeouts"`
	} `json:"http" yaml:"http"`

	Postgres *postgres.DBConn `json:"postgres" yaml:"postgres" mapstructure:"postgres"`

	SecretKey struct {
		Access string `json:"access" yaml:"access"`
	} `json:"secretKey" yaml:"secretKey"`

	Auth *AuthConfig `json:"auth" yaml:"auth"`

	// Device provisioning defaults
	Device *DeviceConfig `json:"device" yaml:"device"`

	// Push delivery configuration (Web Push)
	Push *PushConfig `json:"push" yaml:"push"`

	// Firebase configuration for native app push notifications
	Firebase *FirebaseConfig `json:"firebase" yaml:"firebase"`

	// Sweeper configuration for command expiry housekeeping
	Sweeper *SweeperConfig `json:"sweeper" yaml:"sweeper"`

	Metrics *MetricsConfig `json:"metrics" yaml:"metrics"`
}

// AuthConfig defines authentication-related configuration
type AuthConfig struct {
	BcryptCost     int           `json:"bcryptCost" yaml:"bcryptCost"`
	AccessTokenTTL time.Duration `json:"accessTokenTTL" yaml:"accessTokenTTL"`
}

// DeviceConfig defines defaults applied when a device is registered
type DeviceConfig struct {
	DefaultTimezone         string `json:"defaultTimezone" yaml:"defaultTimezone"`
	DefaultCompartmentCount int    `json:"defaultCompartmentCount" yaml:"defaultCompartmentCount"`
}

type Log struct {
	Pretty bool   `json:"pretty" yaml:"pretty"`
	Level  string `json:"level" yaml:"level"`
}

// PushConfig defines Web Push (VAPID) delivery configuration
type PushConfig struct {
	VAPIDPublicKey     string        `json:"vapidPublicKey" yaml:"vapidPublicKey"`
	VAPIDPrivateKey    string        `json:"vapidPrivateKey" yaml:"vapidPrivateKey"`
	Subscriber         string        `json:"subscriber" yaml:"subscriber"`
	TTL                int           `json:"ttl" yaml:"ttl"`
	Urgency            string        `json:"urgency" yaml:"urgency"`
	SendTimeout        time.Duration `json:"sendTimeout" yaml:"sendTimeout"`
	MaxConcurrentSends int           `json:"maxConcurrentSends" yaml:"maxConcurrentSends"`
	Icon               string        `json:"icon" yaml:"icon"`
	Badge              string        `json:"badge" yaml:"badge"`
	DefaultAlarmTitle  string        `json:"defaultAlarmTitle" yaml:"defaultAlarmTitle"`
}

// FirebaseConfig defines Firebase configuration for push notifications
type FirebaseConfig struct {
	Enabled         bool   `json:"enabled" yaml:"enabled"`
	ProjectID       string `json:"projectId" yaml:"projectId"`
	CredentialsPath string `json:"credentialsPath" yaml:"credentialsPath"`
}

// SweeperConfig defines when and how far back stale commands are expired
type SweeperConfig struct {
	// Cron spec; six fields enable seconds precision.
	Schedule         string        `json:"schedule" yaml:"schedule"`
	RetentionHorizon time.Duration `json:"retentionHorizon" yaml:"retentionHorizon"`
}

// MetricsConfig defines the Prometheus exposition endpoint
type MetricsConfig struct {
	Enabled bool   `json:"enabled" yaml:"enabled"`
	Path    string `json:"path" yaml:"path"`
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
			// Example: POSTGRES_SSLMODE -> postgres.sslMode (not postgres.sslmode)
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

	if strings.TrimSpace(cfg.HTTP.MaxRequestBodySize) == "" {
		cfg.HTTP.MaxRequestBodySize = defaultMaxRequestBodySize
	}

	applyDefaults(cfg)

	// Build replicas from environment variables (POSTGRES_REPLICAS_0_HOST, POSTGRES_REPLICAS_0_PORT, etc.)
	if cfg.Postgres != nil {
		cfg.Postgres.Replicas = buildReplicasFromEnv()
	}

	return cfg, nil
}

// applyDefaults fills optional sections so callers never see nil pointers.
func applyDefaults(cfg *Config) {
	if cfg.Auth == nil {
		cfg.Auth = &AuthConfig{}
	}
	if cfg.Auth.BcryptCost == 0 {
		cfg.Auth.BcryptCost = defaultBcryptCost
	}
	if cfg.Auth.AccessTokenTTL == 0 {
		cfg.Auth.AccessTokenTTL = defaultAccessTokenTTL
	}

	if cfg.Device == nil {
		cfg.Device = &DeviceConfig{}
	}
	if cfg.Device.DefaultTimezone == "" {
		cfg.Device.DefaultTimezone = defaultTimezone
	}
	if cfg.Device.DefaultCompartmentCount == 0 {
		cfg.Device.DefaultCompartmentCount = defaultCompartmentCount
	}

	if cfg.Push == nil {
		cfg.Push = &PushConfig{}
	}
	if cfg.Push.TTL == 0 {
		cfg.Push.TTL = defaultPushTTL
	}
	if cfg.Push.SendTimeout == 0 {
		cfg.Push.SendTimeout = defaultPushSendTimeout
	}
	if cfg.Push.MaxConcurrentSends == 0 {
		cfg.Push.MaxConcurrentSends = defaultMaxConcurrentSends
	}
	if cfg.Push.Icon == "" {
		cfg.Push.Icon = defaultPushIcon
	}
	if cfg.Push.Badge == "" {
		cfg.Push.Badge = defaultPushBadge
	}
	if cfg.Push.DefaultAlarmTitle == "" {
		cfg.Push.DefaultAlarmTitle = defaultAlarmTitle
	}

	if cfg.Firebase == nil {
		cfg.Firebase = &FirebaseConfig{}
	}

	if cfg.Sweeper == nil {
		cfg.Sweeper = &SweeperConfig{}
	}
	if cfg.Sweeper.Schedule == "" {
		cfg.Sweeper.Schedule = defaultSweeperSchedule
	}
	if cfg.Sweeper.RetentionHorizon == 0 {
		cfg.Sweeper.RetentionHorizon = defaultRetentionHorizon
	}

	if cfg.Metrics == nil {
		cfg.Metrics = &MetricsConfig{}
	}
	if cfg.Metrics.Path == "" {
		cfg.Metrics.Path = defaultMetricsPath
	}
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

// buildReplicasFromEnv builds the replicas slice from environment variables.
// Environment variable format: POSTGRES_REPLICAS_{index}_{field}
// Example: POSTGRES_REPLICAS_0_HOST, POSTGRES_REPLICAS_0_PORT, POSTGRES_REPLICAS_0_USERNAME, POSTGRES_REPLICAS_0_PASSWORD
func buildReplicasFromEnv() []postgres.ConnectionConfig {
	var replicas []postgres.ConnectionConfig

	for i := 0; ; i++ {
		prefix := "POSTGRES_REPLICAS_" + strconv.Itoa(i) + "_"

		host := os.Getenv(prefix + "HOST")
		port := os.Getenv(prefix + "PORT")
		if host == "" || port == "" {
			// No more replicas or incomplete configuration.
			break
		}

		replica := postgres.ConnectionConfig{
			Host:     host,
			Port:     port,
			UserName: os.Getenv(prefix + "USERNAME"),
			Password: os.Getenv(prefix + "PASSWORD"),
		}

		replicas = append(replicas, replica)
	}

	return replicas
}
