//go:build tm1637debug
// +build tm1637debug

package tm1637

// strictSteps turns an impossible cursor into a panic
const strictSteps = true
