package contracts

import (
	"context"
	"io"
)

type StorageService interface {
	UploadObject(ctx context.Context, objectName, contentType string, size int64, reader io.Reader) (string, error)
}
