package storage

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
)

var ErrBadLocation = errors.New("invalid s3 location")

type S3Location struct {
	Bucket string
	Key    string
}

func (loc S3Location) String() string {
	return S3Scheme + loc.Bucket + "/" + loc.Key
}

// ParseS3 splits s3://bucket/some/key into bucket and key.
func ParseS3(dest string) (loc S3Location, err error) {
	rest, ok := strings.CutPrefix(dest, S3Scheme)

	if !ok {
		return loc, fmt.Errorf("%w: %s", ErrBadLocation, dest)
	}

	bucket, key, _ := strings.Cut(rest, "/")

	if bucket == "" || key == "" || strings.HasSuffix(key, "/") {
		return loc, fmt.Errorf("%w: %s", ErrBadLocation, dest)
	}

	return S3Location{Bucket: bucket, Key: key}, nil
}

// NewS3Client builds a path-style client from AWS_REGION, AWS_ENDPOINT,
// AWS_ACCESS_KEY and AWS_SECRET_KEY. Without static keys the default AWS
// credential chain is used.
func NewS3Client(ctx context.Context) (*s3.Client, error) {
	opts := []func(*config.LoadOptions) error{
		config.WithRegion(os.Getenv("AWS_REGION")),
	}

	if endpoint := os.Getenv("AWS_ENDPOINT"); endpoint != "" {
		opts = append(opts, config.WithBaseEndpoint(endpoint))
	}

	if accessKey := os.Getenv("AWS_ACCESS_KEY"); accessKey != "" {
		opts = append(opts, config.WithCredentialsProvider(credentials.NewStaticCredentialsProvider(
			accessKey,
			os.Getenv("AWS_SECRET_KEY"),
			"",
		)))
	}

	cfg, err := config.LoadDefaultConfig(ctx, opts...)

	if err != nil {
		return nil, fmt.Errorf("load aws config: %w", err)
	}

	client := s3.NewFromConfig(cfg, func(o *s3.Options) {
		o.UsePathStyle = true
	})

	return client, nil
}

func PutFile(ctx context.Context, client *s3.Client, loc S3Location, data []byte) error {
	_, err := client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(loc.Bucket),
		Key:         aws.String(loc.Key),
		Body:        bytes.NewReader(data),
		ContentType: aws.String("text/csv; charset=utf-8"),
	})

	if err != nil {
		return fmt.Errorf("failed to upload %s: %w", loc, err)
	}

	log.Infof("uploaded %d bytes to %s", len(data), loc)

	return nil
}
