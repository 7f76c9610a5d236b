// Package radar wires the signal chain into one pulsed-radar simulation:
//
//	waveform → channel → fit to PRI → matched → integrate → cfar → ranging
//
// 🚀 What is here?
//
//	Config gathers every parameter of a run (sample rate, chirp, PRF, noise,
//	CFAR, propagation model) with defaults matching the reference scenario:
//	100 MHz sampling, a 20 MHz Hann-tapered ±10 MHz chirp of 10 µs, 128
//	pulses at 5 kHz. Simulator validates the Config once, synthesizes the
//	pulse once and then runs any number of target scenarios against it.
//
// ✨ Key features:
//   - fail-fast validation: every problem is reported as ErrConfiguration
//     joined with the owning package's sentinel (errors.Is works for both)
//   - reentrant: no package-level state; concurrent Runs on one Simulator are safe
//   - deterministic: all noise derives from Config.Seed
//   - Result exposes everything a plotting front-end needs, and Summary()
//     condenses it into a YAML-friendly report
//   - structured logging through an injected logrus.FieldLogger (silent by default)
//
// ⚙️ Usage:
//
//	sim, err := radar.New(radar.DefaultConfig(), radar.WithLogger(log))
//	if err != nil {
//	  return err
//	}
//	res, err := sim.Run(ctx, channel.Targets(1700, 3930, 6027))
//	fmt.Println(res.Ranges) // ≈ [1699.5 3930 6027]
package radar
