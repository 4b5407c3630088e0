// Package service implements HBnB business logic between the HTTP handlers
// and the repositories.
//
// Services own the authorization decisions: every mutating method takes the
// acting user (an Actor derived from token claims), resolves whether the
// actor may act on the target (access.go), runs the business rules, then
// applies the change with a single repository call. Reads are public and
// skip the resolver entirely.
//
// All errors returned to handlers are the sentinels in errors.go, so the
// HTTP mapping stays in one place.
package service
