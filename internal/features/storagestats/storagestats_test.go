package storagestats

import (
	"context"
	"errors"
	"testing"

	"studio-admin/internal/common/apperr"
	"studio-admin/internal/config"

	"github.com/minio/minio-go/v7"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo/integration/mtest"
)

func TestFromBytes(t *testing.T) {
	s := FromBytes(256*1024*1024, 512)
	assert.Equal(t, 262144.0, s.UsedStorageKB)
	assert.Equal(t, 256.0, s.UsedStorageMB)
	assert.Equal(t, 512.0, s.TotalStorageMB)

	s = FromBytes(1536, 0)
	assert.Equal(t, 1.5, s.UsedStorageKB)
	assert.Equal(t, 0.0, s.TotalStorageMB)
}

func TestMongoProvider(t *testing.T) {
	mt := mtest.New(t, mtest.NewOptions().ClientType(mtest.Mock))

	mt.Run("sums storage and index size", func(mt *mtest.T) {
		mt.AddMockResponses(mtest.CreateSuccessResponse(
			bson.E{Key: "db", Value: "studio-admin"},
			bson.E{Key: "storageSize", Value: float64(3 * 1024 * 1024)},
			bson.E{Key: "indexSize", Value: float64(1024 * 1024)},
		))

		s, err := NewMongoProvider(mt.DB, 512).Storage(context.Background())
		require.NoError(t, err)
		assert.Equal(t, 4.0, s.UsedStorageMB)
		assert.Equal(t, 512.0, s.TotalStorageMB)

		cmd := mt.GetStartedEvent().Command
		assert.EqualValues(t, 1, cmd.Lookup("dbStats").AsInt64())
	})

	mt.Run("command failure is upstream", func(mt *mtest.T) {
		mt.AddMockResponses(mtest.CreateCommandErrorResponse(mtest.CommandError{
			Code:    13,
			Name:    "Unauthorized",
			Message: "not authorized",
		}))

		_, err := NewMongoProvider(mt.DB, 512).Storage(context.Background())
		assert.ErrorIs(t, err, apperr.ErrUpstreamUnavailable)
	})
}

type fakeLister struct {
	objects []minio.ObjectInfo
}

func (f fakeLister) ListObjects(ctx context.Context, bucketName string, opts minio.ListObjectsOptions) <-chan minio.ObjectInfo {
	ch := make(chan minio.ObjectInfo, len(f.objects))
	for _, o := range f.objects {
		ch <- o
	}
	close(ch)
	return ch
}

func TestMinioProvider(t *testing.T) {
	p := &MinioProvider{
		client: fakeLister{objects: []minio.ObjectInfo{
			{Key: "posters/a.png", Size: 1024 * 1024},
			{Key: "cards/b.png", Size: 512 * 1024},
		}},
		bucket:  "studio-assets",
		totalMB: 100,
	}

	s, err := p.Storage(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 1536.0, s.UsedStorageKB)
	assert.Equal(t, 1.5, s.UsedStorageMB)
	assert.Equal(t, 100.0, s.TotalStorageMB)
}

func TestMinioProviderListError(t *testing.T) {
	p := &MinioProvider{
		client: fakeLister{objects: []minio.ObjectInfo{
			{Key: "a", Size: 10},
			{Err: errors.New("access denied")},
		}},
		bucket: "studio-assets",
	}

	_, err := p.Storage(context.Background())
	assert.ErrorIs(t, err, apperr.ErrUpstreamUnavailable)
}

func TestNewMinioProviderRequiresCredentials(t *testing.T) {
	_, err := NewMinioProvider(&config.Config{MinioEndpoint: "localhost:9000"})
	assert.Error(t, err)

	p, err := NewMinioProvider(&config.Config{
		MinioEndpoint:  "localhost:9000",
		MinioAccessKey: "key",
		MinioSecretKey: "secret",
		MinioBucket:    "studio-assets",
		StorageTotalMB: 512,
	})
	require.NoError(t, err)
	assert.Equal(t, "minio", p.Name())
}
