// Package dataset implements loading and lifecycle management of the two
// analysis inputs: the PFEP master reference table and the current-inventory
// snapshot.
//
// Datasets arrive as CSV, either uploaded in the request body or ingested
// from the configured object-storage bucket; built-in sample datasets are
// available for demonstration. Each load replaces the previous dataset
// wholesale unless the dataset is locked.
//
// PFEP master-data management (upload, replace, lock) is an administrative
// concern and sits behind the admin key; the inventory snapshot is open to
// every authenticated caller.
//
// # HTTP Endpoints
//
//   - POST   /datasets/pfep              : upload PFEP CSV (admin)
//   - POST   /datasets/pfep/storage      : ingest PFEP CSV from the bucket (admin)
//   - POST   /datasets/pfep/sample       : load the sample PFEP dataset (admin)
//   - POST   /datasets/pfep/lock         : lock the PFEP dataset (admin)
//   - DELETE /datasets/pfep/lock         : unlock the PFEP dataset (admin)
//   - POST   /datasets/inventory         : upload inventory CSV
//   - POST   /datasets/inventory/storage : ingest inventory CSV from the bucket
//   - POST   /datasets/inventory/sample  : load the sample inventory dataset
//   - POST   /datasets/inventory/lock    : lock the inventory dataset
//   - DELETE /datasets/inventory/lock    : unlock the inventory dataset
//   - GET    /datasets                   : status of both datasets
//   - GET    /datasets/storage           : list ingestible CSV objects
package dataset
