// Package filestore stores recipe media in an S3-compatible bucket.
package filestore

import (
	"bytes"
	"context"
	"fmt"
	"path"
	"strconv"
	"strings"

	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"

	"github.com/annsokol/foodbook/internal/config"
)

const recipeImagesDir = "recipes/images"

type FileStoreInterface interface {
	WriteRecipeImage(ctx context.Context, recipeID int64, suffix, contentType string, data []byte) (url string, err error)
	DeleteObjectURL(ctx context.Context, objectURL string) error
}

type FileStore struct {
	client    *minio.Client
	bucket    string
	publicURL string
}

var _ FileStoreInterface = (*FileStore)(nil)

func New(conf config.S3Config) (*FileStore, error) {
	client, err := minio.New(conf.Endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(conf.AccessKey, conf.SecretKey, ""),
		Secure: conf.UseSSL,
	})
	if err != nil {
		return nil, fmt.Errorf("creating s3 client: %w", err)
	}

	return &FileStore{
		client:    client,
		bucket:    conf.Bucket,
		publicURL: strings.TrimRight(conf.PublicURL, "/"),
	}, nil
}

// EnsureBucket creates the media bucket if it does not exist yet.
func (f *FileStore) EnsureBucket(ctx context.Context) error {
	exists, err := f.client.BucketExists(ctx, f.bucket)
	if err != nil {
		return fmt.Errorf("checking bucket: %w", err)
	}
	if exists {
		return nil
	}
	if err := f.client.MakeBucket(ctx, f.bucket, minio.MakeBucketOptions{}); err != nil {
		return fmt.Errorf("creating bucket: %w", err)
	}
	return nil
}

// WriteRecipeImage stores a recipe image and returns its public URL.
// A re-upload for the same recipe overwrites the previous object.
func (f *FileStore) WriteRecipeImage(ctx context.Context, recipeID int64, suffix, contentType string, data []byte) (string, error) {
	objectPath := RecipeImagePath(recipeID, suffix)
	_, err := f.client.PutObject(ctx, f.bucket, objectPath,
		bytes.NewReader(data), int64(len(data)),
		minio.PutObjectOptions{ContentType: contentType})
	if err != nil {
		return "", fmt.Errorf("uploading recipe image: %w", err)
	}
	return f.ObjectURL(objectPath), nil
}

// DeleteObjectURL removes the object a previously returned URL points at.
func (f *FileStore) DeleteObjectURL(ctx context.Context, objectURL string) error {
	objectPath := strings.TrimPrefix(objectURL, f.publicURL)
	objectPath = strings.TrimLeft(objectPath, "/")
	if err := f.client.RemoveObject(ctx, f.bucket, objectPath, minio.RemoveObjectOptions{}); err != nil {
		return fmt.Errorf("removing object: %w", err)
	}
	return nil
}

// ObjectURL maps an object path to its public URL.
func (f *FileStore) ObjectURL(objectPath string) string {
	return f.publicURL + "/" + strings.TrimLeft(objectPath, "/")
}

// RecipeImagePath is the object path of a recipe's image.
func RecipeImagePath(recipeID int64, suffix string) string {
	return path.Join(recipeImagesDir, strconv.FormatInt(recipeID, 10)+suffix)
}
