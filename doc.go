// Package shopkeeper implements an inventory and sales tracker for a small
// shop: a catalog of items keyed by name, an append-only log of completed
// sales, and write-through persistence of both to local JSON files.
//
// The Shopkeeper type owns all state and enforces the invariants (stock
// never goes negative, sales are all-or-nothing). The Store type handles the
// durable round-trip, creating missing files and recovering from corrupt
// ones by starting fresh.
package shopkeeper
