// Package catalog models the shippable-offering catalog: companies with
// their origin-country sets, company-agnostic package tiers with capacity
// ceilings, the company-package offerings that combine the two, and the
// per-offering restrictions that narrow destinations and ceilings.
package catalog
