// Package testutil provides utilities for testing inreplace components.
//
// Key components:
//   - NewTestFS: in-memory afero filesystem behind types.FS
//   - FileTree / WriteFileTree: declarative file setup
//   - RecordingFS: a types.FS wrapper that records writes and injects
//     failures per path
//
// All test data should be defined inline, not in external files.
package testutil
