// Package premiumbonds estimates the effective annual return of a fixed-prize
// lottery savings instrument, such as UK Premium Bonds, by Monte Carlo simulation.
//
// Each bond in a large pool has an independent monthly chance of winning one of
// several fixed prize tiers. The issuer publishes, for every draw, the number of
// prizes per tier and how many bonds there are per prize. From that:
//   - Parameter derivation: DeriveProbabilities turns published tier counts into
//     the probability vector of a single monthly draw, including the implicit
//     "no prize" outcome.
//   - Simulation: a Simulator draws many independent years of twelve monthly
//     multinomial draws for a holding and returns the annual winnings of each.
//   - Summary: Summarize reduces the sample to the median winnings, the median
//     effective rate and the 80% interval.
//
// This package serves as the foundational logic for the `pbs` command-line
// tool. It has no dependency on any presentation or input mechanism.
package premiumbonds
