// Package relay implements the record upload flow.
//
// For every vote or feedback record the relay:
//   - validates the record
//   - builds the canonical envelope and the fixed tag set
//   - submits the serialized envelope through the uploader
//   - records the receipt and publishes an upload event
//
// Uploads are never retried or deduplicated; each call produces its own receipt.
package relay
