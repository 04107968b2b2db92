// Package filesystem provides the filesystem port used by dotprov.
//
// Everything that inspects or mutates paths goes through FS, which is backed
// by an afero.Fs. Production code uses the OS filesystem; symlink and lstat
// support are taken from afero's optional Linker and Lstater interfaces.
package filesystem
