// Package testutil provides utilities for testing dotprov components.
//
// Key components:
//   - TestEnvironment: isolated home, XDG directories and a source root on
//     the real filesystem, with DOTPROV_* variables cleared
//   - FileTree: declarative source tree setup
//
// Provisioning depends on symlinks, inode identity and permission bits, so
// tests run against the real filesystem under t.TempDir rather than an
// in-memory one.
package testutil
