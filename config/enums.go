package config

//go:generate go tool go-enum --marshal --names

// How extraction reacts to broken references.
// ENUM(fail-fast, collect-all)
type ErrorMode int

// What to do with item ids which have no item record.
// ENUM(fail, placeholder)
type MissingItemPolicy int

// Layout of the cache snapshot.
// ENUM(auto, directory, zip, sqlite)
type SnapshotFormat int
