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
	defaultPath               = "."
	defaultMaxRequestBodySize = "100KB"

	defaultBatteryTickInterval = 5 * time.Second
	defaultDrainStep           = 0.1
	defaultDrainHoursStep      = 0.02
	defaultChargeStep          = 0.5
	defaultChargeHoursStep     = 0.1
	defaultHistorySize         = 5
	defaultScanDelay           = 3 * time.Second
	defaultWeatherTimeout      = 10 * time.Second
	defaultGeolocationMode     = "fixed"
	defaultMaxWeightKg         = 5.0
	defaultLowBatteryPercent   = 20.0
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

	// Simulation configures the mocked sensor timers
	Simulation SimulationConfig `json:"simulation" yaml:"simulation"`

	// Thresholds seeds the user adjustable alert thresholds
	Thresholds ThresholdsConfig `json:"thresholds" yaml:"thresholds"`

	// Weather configures the weather provider client
	Weather WeatherConfig `json:"weather" yaml:"weather"`

	// Geolocation configures where the backpack reports itself to be
	Geolocation GeolocationConfig `json:"geolocation" yaml:"geolocation"`

	// PubSub configuration for the notification feed
	PubSub *PubSubConfig `json:"pubsub" yaml:"pubsub"`

	// QRCode configuration for device pairing QR codes
	QRCode *QRCodeConfig `json:"qrcode" yaml:"qrcode"`
}

type Log struct {
	Pretty bool   `json:"pretty" yaml:"pretty"`
	Level  string `json:"level" yaml:"level"`
}

// SimulationConfig defines the battery process and scan delay parameters
type SimulationConfig struct {
	// Period of the battery process
	BatteryTickInterval time.Duration `json:"batteryTickInterval" yaml:"batteryTickInterval"`

	// Percent and hours removed per tick while draining
	DrainStep      float64 `json:"drainStep" yaml:"drainStep"`
	DrainHoursStep float64 `json:"drainHoursStep" yaml:"drainHoursStep"`

	// Percent and hours added per tick while charging
	ChargeStep      float64 `json:"chargeStep" yaml:"chargeStep"`
	ChargeHoursStep float64 `json:"chargeHoursStep" yaml:"chargeHoursStep"`

	// Length of the battery history buffer
	HistorySize int `json:"historySize" yaml:"historySize"`

	// Simulated duration of a book scan
	ScanDelay time.Duration `json:"scanDelay" yaml:"scanDelay"`
}

// ThresholdsConfig defines the initial alert thresholds
type ThresholdsConfig struct {
	MaxWeightKg       float64 `json:"maxWeightKg" yaml:"maxWeightKg"`
	LowBatteryPercent float64 `json:"lowBatteryPercent" yaml:"lowBatteryPercent"`
}

// WeatherConfig defines the OpenWeatherMap style provider settings
type WeatherConfig struct {
	BaseURL string        `json:"baseUrl" yaml:"baseUrl"`
	APIKey  string        `json:"apiKey" yaml:"apiKey"`
	Timeout time.Duration `json:"timeout" yaml:"timeout"`

	// Period of the background refresh, zero disables it
	RefreshInterval time.Duration `json:"refreshInterval" yaml:"refreshInterval"`
}

// GeolocationConfig defines the location source
type GeolocationConfig struct {
	// Mode is "fixed", "denied" or "unsupported"
	Mode      string  `json:"mode" yaml:"mode"`
	Latitude  float64 `json:"latitude" yaml:"latitude"`
	Longitude float64 `json:"longitude" yaml:"longitude"`
}

// PubSubConfig defines Pub/Sub configuration for the notification feed
type PubSubConfig struct {
	// Provider type: "local" for local HTTP, "topic" for a gocloud topic URL or "fcm" for phone push
	Provider string `json:"provider" yaml:"provider"`

	// Topic URL for the topic provider, e.g. mem://notifications or gcppubsub://projects/p/topics/t
	TopicURL string `json:"topicUrl" yaml:"topicUrl"`

	// Local HTTP endpoint for development (for local provider)
	LocalEndpoint string `json:"localEndpoint" yaml:"localEndpoint"`

	// Firebase service account file and push topic (for fcm provider)
	CredentialsPath string `json:"credentialsPath" yaml:"credentialsPath"`
	FCMTopic        string `json:"fcmTopic" yaml:"fcmTopic"`
}

// QRCodeConfig defines QR code generation configuration
type QRCodeConfig struct {
	Size                 int    `json:"size" yaml:"size"`
	ErrorCorrectionLevel string `json:"errorCorrectionLevel" yaml:"errorCorrectionLevel"`
	BaseURL              string `json:"baseUrl" yaml:"baseUrl"`

	// DeviceID identifies this backpack in pairing codes, a random id is used when empty
	DeviceID string `json:"deviceId" yaml:"deviceId"`
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
			// Example: WEATHER_APIKEY -> weather.apiKey (not weather.apikey)
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

	cfg.applyDefaults()

	return cfg, nil
}

func (cfg *Config) applyDefaults() {
	if strings.TrimSpace(cfg.HTTP.MaxRequestBodySize) == "" {
		cfg.HTTP.MaxRequestBodySize = defaultMaxRequestBodySize
	}

	sim := &cfg.Simulation
	if sim.BatteryTickInterval <= 0 {
		sim.BatteryTickInterval = defaultBatteryTickInterval
	}
	if sim.DrainStep <= 0 {
		sim.DrainStep = defaultDrainStep
	}
	if sim.DrainHoursStep <= 0 {
		sim.DrainHoursStep = defaultDrainHoursStep
	}
	if sim.ChargeStep <= 0 {
		sim.ChargeStep = defaultChargeStep
	}
	if sim.ChargeHoursStep <= 0 {
		sim.ChargeHoursStep = defaultChargeHoursStep
	}
	if sim.HistorySize <= 0 {
		sim.HistorySize = defaultHistorySize
	}
	if sim.ScanDelay <= 0 {
		sim.ScanDelay = defaultScanDelay
	}

	if cfg.Thresholds.MaxWeightKg <= 0 {
		cfg.Thresholds.MaxWeightKg = defaultMaxWeightKg
	}
	if cfg.Thresholds.LowBatteryPercent <= 0 {
		cfg.Thresholds.LowBatteryPercent = defaultLowBatteryPercent
	}

	if cfg.Weather.Timeout <= 0 {
		cfg.Weather.Timeout = defaultWeatherTimeout
	}
	if strings.TrimSpace(cfg.Geolocation.Mode) == "" {
		cfg.Geolocation.Mode = defaultGeolocationMode
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
