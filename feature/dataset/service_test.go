package dataset

import (
	"context"
	"io"
	"strings"
	"testing"

	"pfep-analyzer/core/schema"
	"pfep-analyzer/core/session"
	"pfep-analyzer/core/storage/mocks"

	"github.com/minio/minio-go/v7"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

const referenceCSV = `Part No,Description,RM IN QTY,Vendor Name,Vendor Code,City,State
A,Hex Bolt,4,Acme Fasteners,V001,Pune,MH
B,Washer,6,Acme Fasteners,V001,Pune,MH
,Orphan Row,2,Ghost Vendor,V999,Nowhere,XX
`

const inventoryCSV = `Part No,Description,Current QTY,Stock Value
A,Hex Bolt,5.23,"1,200"
B,Washer,8.36,640
`

func setupTestService(t *testing.T) (*Service, *session.Session, *mocks.Client) {
	sess := session.New()
	mockClient := new(mocks.Client)
	svc := NewService(sess, mockClient, "test-bucket", zap.NewNop())
	return svc, sess, mockClient
}

func TestLoadReferenceCSV(t *testing.T) {
	svc, sess, _ := setupTestService(t)

	info, err := svc.LoadReferenceCSV(strings.NewReader(referenceCSV), "upload")

	require.NoError(t, err)
	assert.Equal(t, session.KindReference, info.Kind)
	assert.Equal(t, 2, info.Rows)
	assert.Equal(t, 1, info.Dropped)
	assert.Equal(t, "upload", info.Source)

	reference, _ := sess.Snapshot()
	require.Len(t, reference, 2)
	assert.Equal(t, "A", reference[0].PartID)
	assert.Equal(t, 4.0, reference[0].TargetQty)
	assert.Equal(t, "Acme Fasteners", reference[0].VendorName)
}

func TestLoadInventoryCSV(t *testing.T) {
	svc, sess, _ := setupTestService(t)

	info, err := svc.LoadInventoryCSV(strings.NewReader(inventoryCSV), "upload")

	require.NoError(t, err)
	assert.Equal(t, session.KindInventory, info.Kind)
	assert.Equal(t, 2, info.Rows)
	assert.Equal(t, 0, info.Dropped)

	_, inventory := sess.Snapshot()
	require.Len(t, inventory, 2)
	assert.Equal(t, 5.23, inventory[0].OnHandQty)
	assert.Equal(t, int64(1200), inventory[0].StockValue)
}

func TestLoadReferenceCSVMissingColumns(t *testing.T) {
	svc, _, _ := setupTestService(t)

	_, err := svc.LoadReferenceCSV(strings.NewReader("Foo,Bar\n1,2\n"), "upload")

	var schemaErr *schema.SchemaError
	require.ErrorAs(t, err, &schemaErr)
	assert.Contains(t, schemaErr.Missing, schema.FieldPartID)
	assert.Contains(t, schemaErr.Missing, schema.FieldTargetQty)
}

func TestLoadReferenceCSVLocked(t *testing.T) {
	svc, sess, _ := setupTestService(t)

	_, err := svc.LoadReferenceCSV(strings.NewReader(referenceCSV), "upload")
	require.NoError(t, err)
	require.NoError(t, sess.SetLock(session.KindReference, true))

	_, err = svc.LoadReferenceCSV(strings.NewReader(referenceCSV), "upload")
	assert.ErrorIs(t, err, session.ErrLocked)
}

func TestLoadFromStorage(t *testing.T) {
	svc, sess, mockClient := setupTestService(t)

	mockClient.On("GetObject", mock.Anything, "test-bucket", "pfep.csv", mock.Anything).
		Return(io.NopCloser(strings.NewReader(referenceCSV)), nil)

	info, err := svc.LoadFromStorage(context.Background(), session.KindReference, "pfep.csv")

	require.NoError(t, err)
	assert.Equal(t, "storage:pfep.csv", info.Source)
	assert.Equal(t, 2, info.Rows)

	reference, _ := sess.Status()
	require.NotNil(t, reference)
	mockClient.AssertExpectations(t)
}

func TestLoadFromStorageFetchError(t *testing.T) {
	svc, _, mockClient := setupTestService(t)

	mockClient.On("GetObject", mock.Anything, "test-bucket", "missing.csv", mock.Anything).
		Return(nil, assert.AnError)

	_, err := svc.LoadFromStorage(context.Background(), session.KindInventory, "missing.csv")
	assert.Error(t, err)
}

func TestLoadFromStorageWithoutClient(t *testing.T) {
	sess := session.New()
	svc := NewService(sess, nil, "test-bucket", zap.NewNop())

	_, err := svc.LoadFromStorage(context.Background(), session.KindReference, "pfep.csv")
	assert.Error(t, err)
}

func TestLoadSample(t *testing.T) {
	svc, sess, _ := setupTestService(t)

	refInfo, err := svc.LoadSample(session.KindReference)
	require.NoError(t, err)
	invInfo, err := svc.LoadSample(session.KindInventory)
	require.NoError(t, err)

	assert.Equal(t, "sample", refInfo.Source)
	assert.Equal(t, "sample", invInfo.Source)
	assert.Equal(t, 20, refInfo.Rows)
	assert.Equal(t, 20, invInfo.Rows)
	assert.True(t, sess.Loaded())
}

func TestListStorageObjects(t *testing.T) {
	svc, _, mockClient := setupTestService(t)

	ch := make(chan minio.ObjectInfo, 3)
	ch <- minio.ObjectInfo{Key: "pfep.csv"}
	ch <- minio.ObjectInfo{Key: "readme.txt"}
	ch <- minio.ObjectInfo{Key: "exports/stock.CSV"}
	close(ch)

	mockClient.On("BucketExists", mock.Anything, "test-bucket").Return(true, nil)
	mockClient.On("ListObjects", mock.Anything, "test-bucket", mock.Anything).
		Return((<-chan minio.ObjectInfo)(ch))

	objects, err := svc.ListStorageObjects(context.Background())

	require.NoError(t, err)
	assert.Equal(t, []string{"pfep.csv", "exports/stock.CSV"}, objects)
}

func TestListStorageObjectsMissingBucket(t *testing.T) {
	svc, _, mockClient := setupTestService(t)

	mockClient.On("BucketExists", mock.Anything, "test-bucket").Return(false, nil)

	_, err := svc.ListStorageObjects(context.Background())
	assert.Error(t, err)
}
