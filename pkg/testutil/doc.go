// Package testutil provides fixtures for testing fieldptr components.
//
// Key components:
//   - TestEnvironment: isolated XDG state directory and a case directory
//     that are cleaned up with the test
//   - CaseBuilder: declarative case setup, with the same defaults the
//     case loader applies
//   - NewCatalog: a field catalog from a list of names
//
// All test data should be defined inline, not in external files.
package testutil
