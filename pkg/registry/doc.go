// Package registry provides a generic, insertion-ordered registry of named
// items. Each registered item also gets a stable position (its insertion
// index), so the registry doubles as a name -> id table. It is used for the
// role name table and for the field catalog.
package registry
