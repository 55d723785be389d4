package collog

//go:generate go tool go-enum --names

// Traversal level where resolution failed.
// ENUM(unknown, tab, page, item)
type Level int

// Kind of the record resolution failed for.
// ENUM(struct, enum, item)
type RecordKind int
