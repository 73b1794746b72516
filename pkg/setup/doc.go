// Package setup runs the setup phase of a case: it builds the field
// catalog from the case file, brings the registry up, runs the enabled
// binders and then the explicit bindings.
//
// The returned Session owns the registry until Close is called. Fields
// live in the session's catalog; the registry only points at them.
package setup
