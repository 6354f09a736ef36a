// Package service contains the catalog's application layer. It creates
// domain entities with injected identifiers, runs enrollment transitions on
// programs, and reports their outcomes through structured logs and events.
//
// The domain package never generates identifiers or prints anything; that
// work happens here and in the handlers registered on the event emitter.
package service
