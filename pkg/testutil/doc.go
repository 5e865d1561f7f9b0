// Package testutil provides utilities for testing dotfiles components.
//
// Key components:
//   - TestEnvironment: isolated HOME and dotfiles checkout in a temp directory
//   - FaultFS: wraps a types.FS and fails configured paths
//   - NewCaptureLogger: zerolog logger writing into a buffer
//
// Usage guidelines:
//   - Each test should be completely isolated with no shared state
//   - All test data should be defined inline, not in external files
package testutil
