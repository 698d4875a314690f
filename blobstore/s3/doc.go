// Package s3 provides a blobstore.Store backed by Amazon S3.
//
// Reads use ranged GetObject requests so large graph descriptions can
// be inspected without downloading the whole object. Writes go through
// the SDK upload manager, which switches to multipart uploads for
// large artifacts and validates integrity with CRC32C checksums.
package s3
