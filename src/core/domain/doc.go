// Package domain contains the identifier model of the service.
//
// This package defines:
//   - Encoder: the reversible transform that turns arbitrary text into the
//     local-id alphabet [A-Za-z0-9._-], using "_XX" escapes
//   - Value objects: DomainName, ObjectID, UserID and GroupID
//   - Entities: Provider, a registered federated container
//   - Domain errors shared by the service layers
//
// Rules for this package:
//   - No external dependencies except the standard library
//   - No infrastructure concerns (database, HTTP, etc.)
//   - Value objects are immutable and comparable, so they work as map keys
//
// Example:
//
//	id := domain.NewObjectIDInDomain("example.com", "мама")
//	wire := id.String()             // "example.com:_D0_BC_D0_B0_D0_BC_D0_B0"
//	same := domain.ParseObjectID(wire)
//	_ = same == id                  // true
//	_ = same.LocalIDDecoded()       // "мама"
package domain
