// Package roles defines the enumeration of field roles: the small integer
// slots ("the time step field", "the temperature field", "the i-th chemical
// species field") that the field-pointer registry is indexed by.
//
// The enumeration is fixed at compile time. Count is the registry size.
package roles
