package storage

import (
	"citabot-service/internal/app/contracts"
	"citabot-service/internal/pkg/exceptions"
	"context"
	"io"
	"sync"

	"github.com/minio/minio-go/v7"
)

type minioStorageService struct {
	MinioClient *minio.Client
	BucketName  string
}

var (
	storageServiceInstance contracts.StorageService
	onceStorageService     sync.Once
)

func NewMinioStorageService(minioClient *minio.Client, bucketName string) contracts.StorageService {
	onceStorageService.Do(func() {
		storageServiceInstance = &minioStorageService{
			MinioClient: minioClient,
			BucketName:  bucketName,
		}
	})
	return storageServiceInstance
}

func (s *minioStorageService) UploadObject(ctx context.Context, objectName, contentType string, size int64, reader io.Reader) (string, error) {
	_, err := s.MinioClient.PutObject(ctx, s.BucketName, objectName, reader, size, minio.PutObjectOptions{
		ContentType: contentType,
	})
	if err != nil {
		return "", exceptions.ErrMinioUpload(err)
	}
	return objectName, nil
}
