// Package symlink links the immediate children of a source tree into a
// target directory.
//
// For each child the reconciler inspects the target and does the least work
// needed to make it a symlink to the source:
//
//   - missing target: create the link (Created)
//   - symlink to the same source: nothing (AlreadyLinked)
//   - symlink elsewhere: replace the link only, never its destination (Relinked)
//   - real file or directory: rename to <target>.backup.<unix-seconds>, then
//     link (BackedUpAndLinked)
//
// Backups are never cleaned up. Two backups of the same target within one
// second share a name and the later rename replaces the earlier backup.
package symlink
