// Package courier holds the delivery side of the marketplace: the courier
// Profile (availability and rating aggregate) and the delivery Request, the
// offer a pharmacy broadcasts to couriers. Requests resolve on a
// first-acceptance-wins basis; losing requests are rejected in the same
// transaction that assigns the winner.
package courier
