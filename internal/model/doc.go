package model

// Package model defines the domain data structures shared across the app:
// hobby records and the seed entries they are created from. Records are plain
// values so that snapshots handed to the UI can never alias store state.
