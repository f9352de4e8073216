// Package convert holds the pure conversion pipeline: choosing the effective
// input unit, applying the linear formula for a unit pair and formatting the
// result. Nothing here performs I/O.
package convert
