// Package storage provides the object-storage ingestion source for dataset
// files.
//
// It wraps the MinIO Go client behind a small read-only interface: checking
// bucket access, streaming dataset objects, and listing what is available to
// ingest. Both AWS S3 and self-hosted MinIO instances work. The analyzer
// never writes to storage; all analysis state lives in process memory.
//
// # Client interface
//
// The Client interface abstracts the provider, which keeps ingestion easy to
// mock in unit tests (see core/storage/mocks).
//
// # Usage
//
//	client, err := storage.NewClient(cfg)
//	reader, err := client.GetObject(ctx, "datasets", "pfep.csv", minio.GetObjectOptions{})
package storage
