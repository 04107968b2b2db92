// Package provision brings destinations in line with their declared
// sources.
//
// A run resolves every files declaration against the source roots, walks
// each resolved root and reconciles every walked entry independently:
//
//  1. the destination's parent is created and made private
//  2. the destination is turned into a directory, a symlink to the source or
//     a private copy of the source
//  3. dot-named destinations are hidden where the platform needs it
//
// Each entry yields exactly one types.Result. Steps that already ran are
// never rolled back when a later step fails.
package provision
