// Package binding models product-to-offering shipment bindings: which
// company packages a base product may ship with, who owns the product, and
// the declared parcel measurements used for rate resolution.
package binding
