package tracker

// Package tracker owns the ordered hobby collection. It enforces the
// collection invariants (case-insensitive unique names, unique ids,
// order-preserving removal) and notifies subscribers synchronously after
// every accepted mutation.
