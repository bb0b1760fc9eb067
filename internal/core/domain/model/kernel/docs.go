// Package kernel provides the domain primitives shared by the shipping engine's
// aggregates: the UUID identifier and the decimal helpers used for parcel
// dimensions, weights and money.
package kernel
