// Package types defines the participant record, the board template and
// capacity, the seed lists, configuration, and standard error types for
// the heartboard system.
package types
