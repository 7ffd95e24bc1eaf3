// Package makevar reads and edits Makefile-style variable assignments.
//
// An assignment is a logical line of the form
//
//	NAME = value
//	NAME += value
//	NAME ?= value
//	NAME := value
//
// with any mix of spaces and tabs around the operator, optional leading
// indentation, and a value that may continue over several physical lines
// when each of them ends with a backslash:
//
//	CFLAGS = -Wall -O2 \
//	         -DSOME_VAR=1
//
// Names match as whole tokens: FLAG never matches a FLAG2 line. Physical
// lines that continue another logical line are never treated as
// assignments of their own.
package makevar
