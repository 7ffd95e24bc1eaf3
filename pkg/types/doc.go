// Package types defines the interfaces shared across inreplace packages.
package types
