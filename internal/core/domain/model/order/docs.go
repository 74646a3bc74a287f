// Package order implements the order aggregate of the pharmacy delivery
// marketplace.
//
// An Order is created at checkout from immutable snapshots of the selected
// cart lines (Item) and then walks a status state machine (Status) from
// Processing through broadcast, acceptance, hand-over and confirmation to
// Delivered, or to Cancelled while it has not yet left the pharmacy.
//
// All authorization rules of the lifecycle live here: who may cancel,
// complete, confirm, broadcast, and which roles may use the generic status
// update. The storage layer mirrors the contended transitions (acceptance)
// as conditional updates; this package is the single source of truth for
// which transitions exist.
package order
