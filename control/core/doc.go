// Package core holds scalar numeric helpers shared by the control packages:
// decibel and angle conversions and tolerance comparisons.
package core
