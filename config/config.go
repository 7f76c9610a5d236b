// SPDX-License-Identifier: MIT
// Package: lvradar/config
//
// config.go - viper-backed loading of radar.Config and targets.

package config

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cast"
	"github.com/spf13/viper"

	"github.com/katalvlaran/lvradar/cfar"
	"github.com/katalvlaran/lvradar/channel"
	"github.com/katalvlaran/lvradar/radar"
)

// EnvPrefix is the prefix of environment overrides.
const EnvPrefix = "LVRADAR"

// Sentinel errors for loading.
var (
	// ErrRead is returned when the source cannot be read or parsed.
	ErrRead = errors.New("config: cannot read configuration")

	// ErrDecode is returned when a value has the wrong shape or type.
	ErrDecode = errors.New("config: cannot decode configuration")
)

// Load reads path, applies defaults and environment overrides, and validates
// the result.
//
// Errors: ErrRead, ErrDecode, or radar.ErrConfiguration from validation.
func Load(path string) (radar.Config, []channel.Target, error) {
	v := newViper()
	v.SetConfigFile(path)
	if err := v.ReadInConfig(); err != nil {
		return radar.Config{}, nil, fmt.Errorf("Load: %s: %w: %w", path, ErrRead, err)
	}

	return decode(v)
}

// LoadReader is Load for an in-memory source; format is a viper config type
// such as "yaml", "toml" or "json".
func LoadReader(r io.Reader, format string) (radar.Config, []channel.Target, error) {
	v := newViper()
	v.SetConfigType(format)
	if err := v.ReadConfig(r); err != nil {
		return radar.Config{}, nil, fmt.Errorf("LoadReader: %s: %w: %w", format, ErrRead, err)
	}

	return decode(v)
}

// Default returns the defaults plus environment overrides, without a file.
func Default() (radar.Config, []channel.Target, error) {
	return decode(newViper())
}

func newViper() *viper.Viper {
	v := viper.New()
	setDefaults(v, radar.DefaultConfig())
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	return v
}

// setDefaults registers every key so that env overrides and Unmarshal see it.
// start_freq has no default; decode derives it from bandwidth.
func setDefaults(v *viper.Viper, d radar.Config) {
	v.SetDefault("sample_rate", d.SampleRate)
	v.SetDefault("bandwidth", d.Bandwidth)
	v.SetDefault("pulse_duration", d.PulseDuration)
	v.SetDefault("down_chirp", d.DownChirp)
	v.SetDefault("window", string(d.Window))
	v.SetDefault("n_pulses", d.NPulses)
	v.SetDefault("prf", d.PRF)
	v.SetDefault("noise_std", d.NoiseStd)
	v.SetDefault("attenuation", d.Attenuation)
	v.SetDefault("filter_method", d.FilterMethod)
	v.SetDefault("propagation_speed", d.PropagationSpeed)
	v.SetDefault("margin", d.Margin)
	v.SetDefault("seed", d.Seed)
	v.SetDefault("workers", d.Workers)
	v.SetDefault("cfar.num_train", d.CFAR.NumTrain)
	v.SetDefault("cfar.num_guard", d.CFAR.NumGuard)
	v.SetDefault("cfar.pfa", d.CFAR.PFA)
	v.SetDefault("cfar.peak_guard", d.CFAR.PeakGuard)
	v.SetDefault("cfar.mode", d.CFAR.Mode.String())
	v.SetDefault("targets", []any{})
}

func decode(v *viper.Viper) (radar.Config, []channel.Target, error) {
	var cfg radar.Config
	if err := v.Unmarshal(&cfg); err != nil {
		return radar.Config{}, nil, fmt.Errorf("decode: %w: %w", ErrDecode, err)
	}

	if !v.IsSet("start_freq") {
		cfg.StartFreq = -cfg.Bandwidth / 2
	}

	mode, err := cfar.ParseMode(v.GetString("cfar.mode"))
	if err != nil {
		return radar.Config{}, nil, fmt.Errorf("decode: cfar.mode: %w: %w", radar.ErrConfiguration, err)
	}
	cfg.CFAR.Mode = mode

	targets, err := decodeTargets(v.Get("targets"))
	if err != nil {
		return radar.Config{}, nil, fmt.Errorf("decode: targets: %w", err)
	}

	if err = cfg.Validate(); err != nil {
		return radar.Config{}, nil, fmt.Errorf("decode: %w", err)
	}

	return cfg, targets, nil
}

// decodeTargets accepts a list whose items are either a bare range or a map
// with "range" and optional "reflectivity".
func decodeTargets(raw any) ([]channel.Target, error) {
	if raw == nil {
		return nil, nil
	}
	items, err := cast.ToSliceE(raw)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrDecode, err)
	}

	out := make([]channel.Target, 0, len(items))
	for i, item := range items {
		var t channel.Target
		switch item.(type) {
		case map[string]any, map[any]any:
			x := cast.ToStringMap(item)
			rv, ok := x["range"]
			if !ok {
				return nil, fmt.Errorf("[%d]: missing range: %w", i, ErrDecode)
			}
			if t.Range, err = cast.ToFloat64E(rv); err != nil {
				return nil, fmt.Errorf("[%d].range: %w: %w", i, ErrDecode, err)
			}
			if r, ok := x["reflectivity"]; ok {
				if t.Reflectivity, err = cast.ToFloat64E(r); err != nil {
					return nil, fmt.Errorf("[%d].reflectivity: %w: %w", i, ErrDecode, err)
				}
			}
		default:
			if t.Range, err = cast.ToFloat64E(item); err != nil {
				return nil, fmt.Errorf("[%d]: %w: %w", i, ErrDecode, err)
			}
		}
		out = append(out, t)
	}

	return out, nil
}
