// Package services contains stateless domain services, logic that spans
// several aggregates and therefore belongs to none of them.
package services
