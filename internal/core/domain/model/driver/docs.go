// Package driver provides the driver aggregate and its availability windows.
//
// A Driver is a registered courier identified by a phone number that is unique
// across all drivers. Drivers claim orders themselves; the package carries no
// dispatch logic.
//
// An Availability is a driver-declared delivery window (date, start time, and a
// list of serviced locations). Availability is informational only and is never
// consulted by the acceptance or transfer coordinators.
package driver
