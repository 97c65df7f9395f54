// Package shipment provides domain entities and business logic for shipment
// management in the tracking system. It implements the Shipment aggregate root
// with its contact, routing, and lifecycle state.
//
// The package includes:
//   - Shipment: The aggregate root holding identity, contact, routing, status, and metadata
//   - Status: The closed enumeration of lifecycle states
//   - Metadata: An opaque structured attribute document
//
// Key business rules:
//   - Contact and routing fields are required non-empty on creation
//   - The status enumeration is closed, but transition ordering is not enforced
//   - Status changes are audited through the history ledger; the generic
//     field-update path cannot modify status
//   - Identifiers are store-assigned and never reused
//
// The package follows Domain-Driven Design principles, providing rich domain
// behavior, encapsulation, and validation to ensure business rules are enforced.
package shipment
