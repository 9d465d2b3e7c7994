package dataset

import (
	"context"
	"fmt"
	"io"
	"strings"

	"pfep-analyzer/core/analysis"
	"pfep-analyzer/core/schema"
	"pfep-analyzer/core/session"
	"pfep-analyzer/core/storage"
	"pfep-analyzer/core/tabular"

	"github.com/minio/minio-go/v7"
	"go.uber.org/zap"
)

// Service loads and manages the session datasets.
type Service struct {
	session *session.Session
	client  storage.Client
	bucket  string
	logger  *zap.Logger
}

// NewService creates a new dataset service. The storage client may be nil
// when object-storage ingestion is not configured.
func NewService(sess *session.Session, client storage.Client, bucket string, logger *zap.Logger) *Service {
	return &Service{
		session: sess,
		client:  client,
		bucket:  bucket,
		logger:  logger,
	}
}

// LoadReferenceCSV parses a CSV stream into the PFEP reference dataset and
// installs it in the session.
func (s *Service) LoadReferenceCSV(r io.Reader, source string) (session.DatasetInfo, error) {
	table, err := tabular.ReadCSV(r)
	if err != nil {
		return session.DatasetInfo{}, err
	}

	items, dropped, err := schema.BuildReference(table)
	if err != nil {
		return session.DatasetInfo{}, err
	}
	if dropped > 0 {
		s.logger.Warn("Dropped PFEP rows with empty part identifiers",
			zap.Int("dropped", dropped), zap.String("source", source))
	}

	return s.session.SetReference(items, source, dropped)
}

// LoadInventoryCSV parses a CSV stream into the inventory dataset and
// installs it in the session.
func (s *Service) LoadInventoryCSV(r io.Reader, source string) (session.DatasetInfo, error) {
	table, err := tabular.ReadCSV(r)
	if err != nil {
		return session.DatasetInfo{}, err
	}

	items, dropped, err := schema.BuildInventory(table)
	if err != nil {
		return session.DatasetInfo{}, err
	}
	if dropped > 0 {
		s.logger.Warn("Dropped inventory rows with empty part identifiers",
			zap.Int("dropped", dropped), zap.String("source", source))
	}

	return s.session.SetInventory(items, source, dropped)
}

// LoadFromStorage ingests a CSV object from the configured bucket into the
// given dataset.
func (s *Service) LoadFromStorage(ctx context.Context, kind session.Kind, objectName string) (session.DatasetInfo, error) {
	if s.client == nil {
		return session.DatasetInfo{}, fmt.Errorf("object storage is not configured")
	}

	reader, err := s.client.GetObject(ctx, s.bucket, objectName, minio.GetObjectOptions{})
	if err != nil {
		return session.DatasetInfo{}, fmt.Errorf("failed to fetch %s from bucket %s: %w", objectName, s.bucket, err)
	}
	defer reader.Close()

	source := "storage:" + objectName
	if kind == session.KindReference {
		return s.LoadReferenceCSV(reader, source)
	}
	return s.LoadInventoryCSV(reader, source)
}

// LoadSample installs the built-in demonstration dataset.
func (s *Service) LoadSample(kind session.Kind) (session.DatasetInfo, error) {
	if kind == session.KindReference {
		return s.session.SetReference(analysis.SampleReference(), "sample", 0)
	}
	return s.session.SetInventory(analysis.SampleInventory(), "sample", 0)
}

// SetLock flips the advisory lock flag on a dataset.
func (s *Service) SetLock(kind session.Kind, locked bool) error {
	return s.session.SetLock(kind, locked)
}

// Status reports both datasets' metadata.
func (s *Service) Status() (reference, inventory *session.DatasetInfo) {
	return s.session.Status()
}

// ListStorageObjects lists CSV objects available for ingestion in the
// configured bucket.
func (s *Service) ListStorageObjects(ctx context.Context) ([]string, error) {
	if s.client == nil {
		return nil, fmt.Errorf("object storage is not configured")
	}

	exists, err := s.client.BucketExists(ctx, s.bucket)
	if err != nil {
		return nil, fmt.Errorf("failed to check bucket %s: %w", s.bucket, err)
	}
	if !exists {
		return nil, fmt.Errorf("bucket %s does not exist", s.bucket)
	}

	var objects []string
	for info := range s.client.ListObjects(ctx, s.bucket, minio.ListObjectsOptions{Recursive: true}) {
		if info.Err != nil {
			return nil, fmt.Errorf("failed to list bucket %s: %w", s.bucket, info.Err)
		}
		if strings.HasSuffix(strings.ToLower(info.Key), ".csv") {
			objects = append(objects, info.Key)
		}
	}
	return objects, nil
}
