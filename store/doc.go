// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package store holds the persistence layer: voter and administrator
identities, the candidate/position registry, and the voting window
singleton.

Every function takes a Querier, which both *sql.DB and *sql.Tx satisfy.
Plain reads pass the database handle; the ballot engine passes its
transaction so multi-step writes commit or roll back as one unit.

# Errors

Validation failures surface as typed sentinels the handler layer maps
to HTTP statuses:

  - ErrNotFound: no row matches
  - ErrDuplicateIdentity: voter username or reg number taken
  - ErrPositionExists / ErrPositionInUse: position management conflicts
  - ErrInvalidRange: window end not after start
  - ErrNoWindow: no voting window configured

Anything else is an I/O-level failure wrapped with context.

# Voting Window

The window is a single row, replaced wholesale by SetWindow. StateAt is
a pure function of (window, now); callers supply the clock.
*/
package store
