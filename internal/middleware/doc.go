// Package middleware provides HTTP middleware for the HBnB API:
// request IDs, structured request logging, panic recovery, CORS, gzip
// compression, and JWT authentication with an admin-only variant.
package middleware
