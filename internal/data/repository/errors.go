// Sentinel errors shared across repositories. Higher layers match on
// these with errors.Is to tell user-facing outcomes apart from
// provisioning bugs.
package repository

import "errors"

// ErrNotFound is returned when a requested entity does not exist.
var ErrNotFound = errors.New("not found")

// ErrNoSuchShowDate is returned by the inventory ledger when no
// per-date row exists for a (show, date) key, i.e. the date lies outside
// the show's scheduled range. This is a data-integrity condition: the
// validator only lets such requests through when provisioning failed to
// seed the rows.
var ErrNoSuchShowDate = errors.New("no inventory for show date")

// ErrSeatsUnavailable is returned by the ledger commit when any requested
// seat is already booked for the key. Detected under the row lock, so it
// also covers the case where a concurrent request won the race after
// validation passed.
var ErrSeatsUnavailable = errors.New("seats already booked")

// ErrShowFull is returned when the remaining per-date count cannot cover
// the requested seats.
var ErrShowFull = errors.New("show is fully booked")
