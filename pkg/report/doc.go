// Package report prints inreplace results for people and for programs.
//
// Three formats are supported: text (lipgloss styled, colour decided by
// ColorMode and the terminal), json and yaml. Each format can include a
// unified diff of every changed file.
package report
