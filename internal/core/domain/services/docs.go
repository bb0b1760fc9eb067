// Package services provides the stateless domain services of the shipping
// engine.
//
// The package includes:
//   - PricingCalculator: the one place where a set of parcels and a tariff become a price
//   - TrackingNumberGenerator: builds human-decodable, random tracking numbers
package services
