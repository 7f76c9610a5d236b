// Package ranging turns detection indices on a compressed profile into target
// ranges and scores them against ground truth.
//
// Conversion:
//
//	corrected = k − ⌊M/2⌋          (undo the matched-filter group delay)
//	R         = corrected/fs · c/2  (round trip halved)
//
// Indices whose corrected value is negative are filter-transient artifacts
// near t = 0 and are dropped. Order is preserved, so ascending detections
// give ascending ranges. One range bin is c/(2·fs) metres.
//
// Assess pairs estimates with known target ranges and reports per-target
// errors plus mean and RMS error (gonum/stat).
package ranging
