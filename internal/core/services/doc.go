// Package services implements the driving port interfaces.
// Services orchestrate calls to driven ports (adapters) around the
// date resolution core in package dates.
package services
