// Package domain holds the records accepted by the relay and the values
// derived from them: upload envelopes, tags, receipts and upload events.
package domain
