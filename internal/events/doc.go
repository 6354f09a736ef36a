// Package events carries enrollment outcomes from the catalog service to
// whoever wants to observe them.
//
// Services emit events without knowing which handlers will process them, which
// keeps presentation (console notices, audit logs) out of the domain.
//
// The primary components are:
// - EnrollmentEvent: the outcome of an enroll or cancel transition
// - EventHandler: interface for components that can handle events
// - EventEmitter: interface for components that can emit events
package events
