package settings

import (
	"encoding/json"
	"log/slog"
	"strings"
	"time"

	"github.com/pkg/errors"

	"pfeifer.dev/colprev/cereal/custom"
	"pfeifer.dev/colprev/collision"
	"pfeifer.dev/colprev/params"
	"pfeifer.dev/colprev/utils"
)

var (
	Settings = CollisionPreventionSettings{}
)

type CollisionPreventionSettings struct {
	CollisionPreventionDistance   float32 `json:"collision_prevention_distance"`
	StalenessWindowMs             int     `json:"staleness_window_ms"`
	BinResolutionDeg              float32 `json:"bin_resolution_deg"`
	InterferenceThresholdFraction float32 `json:"interference_threshold_fraction"`
	WarningThrottleIntervalMs     int     `json:"warning_throttle_interval_ms"`
	MaxSensorInstances            int     `json:"max_sensor_instances"`
	LogLevel                      string  `json:"log_level"`
}

func (s *CollisionPreventionSettings) Default() {
	s.CollisionPreventionDistance = -1
	s.StalenessWindowMs = 500
	s.BinResolutionDeg = 5
	s.InterferenceThresholdFraction = 0.05
	s.WarningThrottleIntervalMs = 5000
	s.MaxSensorInstances = MAX_SENSOR_INSTANCES
	s.LogLevel = "error"
}

func (s *CollisionPreventionSettings) Enabled() bool {
	return s.CollisionPreventionDistance > 0
}

func (s *CollisionPreventionSettings) Validate() error {
	if s.StalenessWindowMs <= 0 {
		return errors.Errorf("staleness_window_ms must be positive, got %d", s.StalenessWindowMs)
	}
	if s.BinResolutionDeg <= 0 || s.BinResolutionDeg > 90 {
		return errors.Errorf("bin_resolution_deg must be in (0, 90], got %f", s.BinResolutionDeg)
	}
	if s.InterferenceThresholdFraction <= 0 || s.InterferenceThresholdFraction >= 1 {
		return errors.Errorf("interference_threshold_fraction must be in (0, 1), got %f", s.InterferenceThresholdFraction)
	}
	if s.WarningThrottleIntervalMs < 0 {
		return errors.Errorf("warning_throttle_interval_ms must not be negative, got %d", s.WarningThrottleIntervalMs)
	}
	if s.MaxSensorInstances < 1 || s.MaxSensorInstances > 10 {
		return errors.Errorf("max_sensor_instances must be in [1, 10], got %d", s.MaxSensorInstances)
	}
	return nil
}

// ControllerConfig converts the persisted settings into the collision core
// configuration.
func (s *CollisionPreventionSettings) ControllerConfig() collision.Config {
	return collision.Config{
		SafetyDistance:                float64(s.CollisionPreventionDistance),
		StalenessWindow:               time.Duration(s.StalenessWindowMs) * time.Millisecond,
		BinResolution:                 float64(s.BinResolutionDeg),
		InterferenceThresholdFraction: float64(s.InterferenceThresholdFraction),
		WarningThrottleInterval:       time.Duration(s.WarningThrottleIntervalMs) * time.Millisecond,
	}
}

func (s *CollisionPreventionSettings) Unmarshal(data []byte) error {
	loaded := *s
	if err := json.Unmarshal(data, &loaded); err != nil {
		return errors.Wrap(err, "could not parse settings")
	}
	if err := loaded.Validate(); err != nil {
		return errors.Wrap(err, "invalid settings")
	}
	*s = loaded
	return nil
}

// Load replaces s with the persisted settings. Fields missing from the param
// take their default. On failure s is left untouched.
func (s *CollisionPreventionSettings) Load() (success bool) {
	data, err := params.GetParam(params.COLLISION_PREVENTION_SETTINGS)
	if err != nil {
		utils.Logwe(err)
		return false
	}

	loaded := CollisionPreventionSettings{}
	loaded.Default()
	err = loaded.Unmarshal(data)
	if err != nil {
		utils.Loge(err)
		return false
	}

	*s = loaded
	s.setLogLevel()

	return true
}

// LoadWithRetries falls back to persisting the defaults when no stored
// settings can be read.
func (s *CollisionPreventionSettings) LoadWithRetries(tries int) {
	s.Default()
	for range tries {
		if s.Load() {
			return
		}
		time.Sleep(1 * time.Second)
	}
	s.setLogLevel()
	s.Save()
}

func (s *CollisionPreventionSettings) Save() {
	data, err := json.MarshalIndent(s, "", "  ")
	if err != nil {
		utils.Loge(err)
		return
	}
	err = params.PutParam(params.COLLISION_PREVENTION_SETTINGS, data)
	if err != nil {
		utils.Loge(err)
		return
	}
}

func (s *CollisionPreventionSettings) setLogLevel() {
	slog.SetLogLoggerLevel(ParseLogLevel(s.LogLevel))
}

func ParseLogLevel(level string) slog.Level {
	switch strings.ToLower(level) {
	case "debug":
		return slog.LevelDebug
	case "info":
		return slog.LevelInfo
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelError
	}
}

// Handle applies a runtime input. It reports whether the controller
// configuration may have changed.
func (s *CollisionPreventionSettings) Handle(input custom.CollisionPreventionIn) (changed bool) {
	slog.Info("settings input", "type", input.Type().String(), "float", input.Float())
	switch input.Type() {
	case custom.CollisionPreventionInputType_reloadSettings:
		return s.Load()
	case custom.CollisionPreventionInputType_saveSettings:
		saved := *s
		go saved.Save()
	case custom.CollisionPreventionInputType_loadDefaultSettings:
		s.Default()
		s.setLogLevel()
		return true
	case custom.CollisionPreventionInputType_setCollisionPreventionDistance:
		s.CollisionPreventionDistance = input.Float()
		return true
	case custom.CollisionPreventionInputType_setStalenessWindow:
		if input.Float() > 0 {
			s.StalenessWindowMs = int(input.Float())
			return true
		}
		slog.Warn("ignoring non-positive staleness window", "value", input.Float())
	case custom.CollisionPreventionInputType_setInterferenceThreshold:
		if input.Float() > 0 && input.Float() < 1 {
			s.InterferenceThresholdFraction = input.Float()
			return true
		}
		slog.Warn("ignoring interference threshold outside (0, 1)", "value", input.Float())
	case custom.CollisionPreventionInputType_setWarningThrottleInterval:
		if input.Float() >= 0 {
			s.WarningThrottleIntervalMs = int(input.Float())
			return true
		}
		slog.Warn("ignoring negative warning throttle interval", "value", input.Float())
	case custom.CollisionPreventionInputType_setLogLevel:
		logLevel, err := input.Str()
		if err != nil {
			utils.Loge(err)
			return false
		}
		s.LogLevel = logLevel
		s.setLogLevel()
	}
	return false
}
