// Package uploader provides Uploader implementations.
//
// The factory creates an uploader based on provider configuration:
//   - irys: signs upload requests with the wallet key and submits them to an Irys upload node
//   - memory: in-process uploader for development and tests
package uploader
