package storage

import (
	"bytes"
	"context"
	"fmt"
	"path"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/gabriel-vasile/mimetype"
)

// PutObjectAPI is the part of the S3 client the host needs.
type PutObjectAPI interface {
	PutObject(ctx context.Context, params *s3.PutObjectInput, optFns ...func(*s3.Options)) (*s3.PutObjectOutput, error)
}

type S3Host struct {
	client PutObjectAPI
	bucket string
	region string
	folder string
}

func NewS3Host(client PutObjectAPI, bucket, region string) *S3Host {
	return &S3Host{
		client: client,
		bucket: bucket,
		region: region,
		folder: AvatarFolder,
	}
}

func (h *S3Host) objectKey(publicID string) string {
	return path.Join(h.folder, publicID)
}

// PublicURL is the virtual-hosted-style URL of an uploaded object.
func (h *S3Host) PublicURL(publicID string) string {
	return fmt.Sprintf("https://%s.s3.%s.amazonaws.com/%s", h.bucket, h.region, h.objectKey(publicID))
}

func (h *S3Host) Upload(ctx context.Context, data []byte, publicID string) (string, error) {
	if len(data) == 0 {
		return "", ErrEmptyImage
	}

	_, err := h.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(h.bucket),
		Key:         aws.String(h.objectKey(publicID)),
		Body:        bytes.NewReader(data),
		ContentType: aws.String(mimetype.Detect(data).String()),
	})
	if err != nil {
		return "", fmt.Errorf("failed to upload image %s: %v", publicID, err)
	}
	return h.PublicURL(publicID), nil
}
