//go:build !tm1637debug
// +build !tm1637debug

package tm1637

// strictSteps off: an impossible cursor is counted and the driver goes idle
const strictSteps = false
