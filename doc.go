// Package lvradar is a pulsed LFM radar simulator: it synthesises a chirp,
// drops scaled echoes of it into a noisy record, compresses the record with a
// matched filter, integrates many pulses coherently, and finds targets with
// CFAR detection before converting detections back to range.
//
// 🚀 What is lvradar?
//
//	A small, deterministic, library-first signal chain:
//		• Waveform: complex baseband LFM chirp with Hann/Hamming/Blackman taper
//		• Channel: delay, 1/R² attenuation and complex AWGN per target
//		• Matched filter: FFT or direct "same"-length pulse compression
//		• Integration: coherent sum of N pulses on a bounded worker pool
//		• CFAR: cell-averaging (plus GO/SO variants) with local-max pruning
//		• Ranging: group-delay–corrected sample→metre conversion and scoring
//
// ✨ Why lvradar?
//
//   - Reproducible – every noise draw comes from a seed, per pulse
//   - Plain data in, plain data out – slices of complex128 and float64
//   - Configurable – YAML/TOML/JSON files and LVRADAR_* env via viper
//   - Observable – structured logrus fields on every run
//
// The signal chain is organised as:
//
//	noise/       seeded sources and complex Gaussian draws
//	waveform/    chirp synthesis and tapering windows
//	channel/     target echoes, attenuation laws, AWGN
//	matched/     pulse compression (FFT and direct engines)
//	integrate/   coherent multi-pulse integration
//	cfar/        adaptive-threshold detection
//	ranging/     index→range conversion and detection assessment
//	radar/       Config + Simulator wiring the stages end to end
//	config/      viper-backed configuration loading
//	cmd/radarsim CLI front end
//
// Quick ASCII picture:
//
//	chirp ─► channel ─► matched ─► integrate ─► |·| ─► CFAR ─► ranges
//
//	go run ./cmd/radarsim run --targets 1700,3930,6027
package lvradar
