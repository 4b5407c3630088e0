// Package repository implements data access for HBnB entities over the
// database.Database interface.
//
// One repository per entity (user, place, review, amenity). Repositories
// return domain models and translate storage errors to database sentinels;
// a missing record is (nil, nil) so callers decide whether absence is an
// error. Cascade deletes are single atomic batches, never multi-call
// sequences.
package repository
