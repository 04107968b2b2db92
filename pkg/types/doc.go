// Package types defines the data model shared across dotprov: the desired
// states read from input, the provisioning context naming the source roots,
// and the per-entry results written as output.
package types
