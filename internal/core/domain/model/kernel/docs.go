// Package kernel provides core domain primitives shared by the fulfillment model.
//
// The package includes:
//   - UUID: a value object for identifiers of audit records
//   - Address: the frozen shipping address snapshot captured when an order is placed
//
// Both are immutable once constructed and safe for concurrent use.
package kernel
