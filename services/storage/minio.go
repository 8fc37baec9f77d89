package storage

import (
	"bytes"
	"context"
	"fmt"

	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
	"github.com/sirupsen/logrus"
)

// Client wraps a MinIO connection for one bucket. Created once at startup
// and safe for concurrent use.
type Client struct {
	mc        *minio.Client
	bucket    string
	publicURL string
}

func NewClient(ctx context.Context, endpoint, accessKey, secretKey, bucket string, useSSL bool) (*Client, error) {
	if endpoint == "" {
		return nil, fmt.Errorf("MINIO_ENDPOINT is not set")
	}

	mc, err := minio.New(endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(accessKey, secretKey, ""),
		Secure: useSSL,
	})
	if err != nil {
		return nil, fmt.Errorf("could not create storage client: %w", err)
	}

	exists, err := mc.BucketExists(ctx, bucket)
	if err != nil {
		return nil, fmt.Errorf("could not check bucket %q: %w", bucket, err)
	}
	if !exists {
		if err := mc.MakeBucket(ctx, bucket, minio.MakeBucketOptions{}); err != nil {
			return nil, fmt.Errorf("could not create bucket %q: %w", bucket, err)
		}
		logrus.WithField("bucket", bucket).Info("storage bucket created")
	}

	scheme := "http"
	if useSSL {
		scheme = "https"
	}

	return &Client{
		mc:        mc,
		bucket:    bucket,
		publicURL: fmt.Sprintf("%s://%s/%s", scheme, endpoint, bucket),
	}, nil
}

// Upload stores the object under {userID}/{filename} and returns its public
// URL. A returned error means nothing durable was written.
func (c *Client) Upload(ctx context.Context, userID, filename, contentType string, data []byte) (string, error) {
	objectName := fmt.Sprintf("%s/%s", userID, filename)

	_, err := c.mc.PutObject(ctx, c.bucket, objectName, bytes.NewReader(data), int64(len(data)),
		minio.PutObjectOptions{ContentType: contentType})
	if err != nil {
		return "", fmt.Errorf("could not upload %q to storage: %w", objectName, err)
	}

	logrus.WithFields(logrus.Fields{
		"bucket": c.bucket,
		"object": objectName,
		"bytes":  len(data),
	}).Info("object uploaded to storage")

	return fmt.Sprintf("%s/%s", c.publicURL, objectName), nil
}
