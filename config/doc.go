// Package config loads a radar.Config and its target scenario from a file
// (TOML, YAML or JSON, chosen by extension) or a reader, through
// github.com/spf13/viper.
//
// Every key defaults to radar.DefaultConfig(); a file only needs the values
// it changes. Environment variables prefixed LVRADAR_ override both, with
// dots replaced by underscores (LVRADAR_CFAR_PFA=0.01). When start_freq is
// not given it follows the bandwidth as −bandwidth/2.
//
// Example (YAML):
//
//	sample_rate: 100e6
//	bandwidth: 20e6
//	n_pulses: 64
//	window: hamming
//	cfar:
//	  pfa: 8e-3
//	  mode: go
//	targets:
//	  - 1700
//	  - {range: 3930, reflectivity: 0.5}
package config
