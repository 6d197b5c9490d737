// Package country models the hierarchical geography directory
// (continent → region → country). Countries are identified by a stable
// label; two- and three-letter ISO codes and the numeric code exist for
// external lookups. The package also builds the nested tree representation
// from the flat persisted list and flattens it back in pre-order.
package country
