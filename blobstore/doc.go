// Package blobstore abstracts storage for serialized artifacts such as
// graph descriptions, kernel manifests and capability sets.
//
// A Store addresses immutable blobs by name. Implementations exist for
// in-memory storage (testing), the local file system (memory-mapped
// reads) and S3-compatible object stores (see the s3 and minio
// subpackages).
//
// Blobs written through Put are atomic: readers never observe a
// partially written artifact.
package blobstore
