// Package quote models the input parcels and the priced, immutable Quote
// produced by the pricing calculator.
//
// Key business rules:
//   - Every parcel dimension and weight is strictly positive
//   - A quote carries at least one parcel
//   - Volume is additive per parcel, never a bounding box of all parcels
//   - A quote expires a fixed TTL after it was priced
package quote
