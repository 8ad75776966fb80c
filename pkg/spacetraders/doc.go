// Package spacetraders is a domain-object facade over the SpaceTraders API.
//
// Every object holds a shared *api.Client and a cached copy of the data the
// server last returned for it. Mutating operations replace only the part of
// the cache the server answered with; nothing refreshes on its own. Objects do
// no locking: callers serialize mutations on the same object.
package spacetraders
