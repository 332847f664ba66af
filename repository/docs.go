// Package repository provides generic in-memory collections for a single
// entity type each.
//
// A MemoryRepository is keyed by a unique id and enforces uniqueness on insert
// and existence on lookup and delete. A ListRepository is an append-only
// collection queried with predicates, where absence is a normal outcome.
//
// The repositories offer a whole set of methods out of the box. If that is not
// enough, embed a repository into your own type to overwrite a method or to
// extend it with new ones. StockRepository does exactly that to add
// UpdateQuantity, and there are more examples in the test files.
//
// All repositories are in memory. Sometimes it is handy to keep some data
// around between runs of a demo, so it is possible to use a Store to do so.
// This is not intended for production use.
package repository
