// Package handler implements the HTTP layer of the HBnB API.
//
// Handlers decode and field-validate requests, pull the acting user from
// the request context, call a service method, and write either the result
// or a ProblemDetails produced by MapServiceError. No business rules live
// here.
package handler
