package cli

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"

	"github.com/manifoldco/promptui"
	"github.com/pkg/errors"
	"github.com/urfave/cli/v3"

	"pfeifer.dev/colprev/params"
	ms "pfeifer.dev/colprev/settings"
)

func settingsCommand() *cli.Command {
	return &cli.Command{
		Name:    "settings",
		Aliases: []string{"s"},
		Usage:   "Show or edit the persisted settings",
		Flags: []cli.Flag{
			&cli.Float64Flag{
				Category: "Collision Prevention",
				Name:     "distance",
				Usage:    "Minimum distance in meters kept to obstacles, <= 0 disables collision prevention",
			},
			&cli.IntFlag{
				Category: "Collision Prevention",
				Name:     "staleness-window",
				Usage:    "Maximum age in milliseconds of accepted ranging data",
			},
			&cli.Float64Flag{
				Category: "Collision Prevention",
				Name:     "bin-resolution",
				Usage:    "Angular width in degrees of one distance profile bin",
			},
			&cli.Float64Flag{
				Category: "Collision Prevention",
				Name:     "interference-threshold",
				Usage:    "Fraction of max speed the setpoint may be changed before warning",
			},
			&cli.IntFlag{
				Category: "Collision Prevention",
				Name:     "warning-throttle",
				Usage:    "Minimum time in milliseconds between no range data warnings",
			},
			&cli.IntFlag{
				Category: "Sensors",
				Name:     "max-sensors",
				Usage:    "Number of distance sensor instances to subscribe to",
			},
			&cli.StringFlag{
				Category: "Logging",
				Name:     "log-level",
				Usage:    "One of debug, info, warn or error",
			},
			&cli.BoolFlag{
				Name:    "prompt",
				Aliases: []string{"p"},
				Usage:   "Prompt for every setting",
			},
			&cli.BoolFlag{
				Name:  "defaults",
				Usage: "Reset every setting to its default before applying changes",
			},
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			applyParamsDir(cmd)
			s := ms.CollisionPreventionSettings{}
			s.Default()
			s.Load()
			if cmd.Bool("defaults") {
				s.Default()
			}

			changed := applySettingFlags(cmd, &s) || cmd.Bool("defaults")
			if cmd.Bool("prompt") {
				if err := promptSettings(&s); err != nil {
					return err
				}
				changed = true
			}

			if changed {
				if err := s.Validate(); err != nil {
					return errors.Wrap(err, "refusing to save settings")
				}
				params.EnsureParamDirectories()
				s.Save()
			}

			b, err := json.MarshalIndent(s, "", "  ")
			if err != nil {
				return errors.Wrap(err, "could not marshal settings")
			}
			fmt.Println(string(b))
			return nil
		},
	}
}

func applySettingFlags(cmd *cli.Command, s *ms.CollisionPreventionSettings) bool {
	changed := false
	if cmd.IsSet("distance") {
		s.CollisionPreventionDistance = float32(cmd.Float64("distance"))
		changed = true
	}
	if cmd.IsSet("staleness-window") {
		s.StalenessWindowMs = cmd.Int("staleness-window")
		changed = true
	}
	if cmd.IsSet("bin-resolution") {
		s.BinResolutionDeg = float32(cmd.Float64("bin-resolution"))
		changed = true
	}
	if cmd.IsSet("interference-threshold") {
		s.InterferenceThresholdFraction = float32(cmd.Float64("interference-threshold"))
		changed = true
	}
	if cmd.IsSet("warning-throttle") {
		s.WarningThrottleIntervalMs = cmd.Int("warning-throttle")
		changed = true
	}
	if cmd.IsSet("max-sensors") {
		s.MaxSensorInstances = cmd.Int("max-sensors")
		changed = true
	}
	if cmd.IsSet("log-level") {
		s.LogLevel = cmd.String("log-level")
		changed = true
	}
	return changed
}

func validateFloat(input string) error {
	_, err := strconv.ParseFloat(input, 32)
	if err != nil {
		return errors.New("invalid number")
	}
	return nil
}

func validateInt(input string) error {
	_, err := strconv.Atoi(input)
	if err != nil {
		return errors.New("invalid integer")
	}
	return nil
}

func promptFloat(label string, value *float32) error {
	prompt := promptui.Prompt{
		Label:    label,
		Default:  strconv.FormatFloat(float64(*value), 'f', -1, 32),
		Validate: validateFloat,
	}
	result, err := prompt.Run()
	if err != nil {
		return errors.Wrapf(err, "prompt for %s failed", label)
	}
	parsed, _ := strconv.ParseFloat(result, 32)
	*value = float32(parsed)
	return nil
}

func promptInt(label string, value *int) error {
	prompt := promptui.Prompt{
		Label:    label,
		Default:  strconv.Itoa(*value),
		Validate: validateInt,
	}
	result, err := prompt.Run()
	if err != nil {
		return errors.Wrapf(err, "prompt for %s failed", label)
	}
	*value, _ = strconv.Atoi(result)
	return nil
}

func promptSettings(s *ms.CollisionPreventionSettings) error {
	if err := promptFloat("Collision Prevention Distance (m)", &s.CollisionPreventionDistance); err != nil {
		return err
	}
	if err := promptInt("Staleness Window (ms)", &s.StalenessWindowMs); err != nil {
		return err
	}
	if err := promptFloat("Bin Resolution (deg)", &s.BinResolutionDeg); err != nil {
		return err
	}
	if err := promptFloat("Interference Threshold (fraction of max speed)", &s.InterferenceThresholdFraction); err != nil {
		return err
	}
	if err := promptInt("Warning Throttle Interval (ms)", &s.WarningThrottleIntervalMs); err != nil {
		return err
	}
	if err := promptInt("Distance Sensor Instances", &s.MaxSensorInstances); err != nil {
		return err
	}

	levels := []string{"debug", "info", "warn", "error"}
	selected := 3
	for i, level := range levels {
		if level == s.LogLevel {
			selected = i
		}
	}
	prompt := promptui.Select{
		Label:     "Log Level",
		Items:     levels,
		CursorPos: selected,
	}
	_, result, err := prompt.Run()
	if err != nil {
		return errors.Wrap(err, "prompt for log level failed")
	}
	s.LogLevel = result
	return nil
}
