// Package shipment holds the Shipment aggregate: the durable record created
// when a draft quote is promoted, and its guarded lifecycle
// (confirm, pay, cancel, complete, soft delete).
package shipment
