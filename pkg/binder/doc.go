// Package binder maps the well-known field roles to fields resolved through
// a fields.Directory: base fields, boundary fields and the atmospheric
// fields including one chemistry sublist entry per species.
//
// A name that does not resolve is mapped as nil; a role without a backing
// field in the current setup is legal.
package binder
