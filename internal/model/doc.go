// Package model defines the domain entities (User, Place, Review, Amenity),
// the request structs accepted by the API, and the RFC 9457 Problem Details
// error representation shared by all handlers.
package model
