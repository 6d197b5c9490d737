// Package access implements scope-based authorization: a static
// (resource, action) → scope rule table, user role grants with ownership
// discriminants, and the engine that evaluates a caller against both.
package access
