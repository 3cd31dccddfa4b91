package kv

import (
	"bytes"
	"context"
	"errors"
	"io"
	"log/slog"
	"net/http"

	"genesis-storefront/internal/infra"
	"genesis-storefront/internal/pkg/errs"

	"github.com/aws/aws-sdk-go-v2/aws"
	awshttp "github.com/aws/aws-sdk-go-v2/aws/transport/http"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/aws/aws-sdk-go-v2/service/s3/types"
)

// S3Options configures an S3-compatible bucket (AWS S3 or MinIO).
type S3Options struct {
	Bucket          string
	Region          string
	Endpoint        string // set for MinIO and other S3-compatible servers
	AccessKeyID     string // empty falls back to the default credential chain
	SecretAccessKey string
	PathStyle       bool
	HTTPClient      *http.Client
}

// S3 keeps each document as the object <namespace>/<key>.
type S3 struct {
	client    *s3.Client
	bucket    string
	namespace string
	logger    *slog.Logger
}

func NewS3(ctx context.Context, opts S3Options, namespace string, logger *slog.Logger) (*S3, error) {
	if opts.Bucket == "" {
		return nil, errs.New("s3 bucket required")
	}
	region := opts.Region
	if region == "" {
		region = "us-east-1"
	}

	loadOpts := []func(*config.LoadOptions) error{config.WithRegion(region)}
	if opts.AccessKeyID != "" {
		loadOpts = append(loadOpts, config.WithCredentialsProvider(
			credentials.NewStaticCredentialsProvider(opts.AccessKeyID, opts.SecretAccessKey, ""),
		))
	}
	awsCfg, err := config.LoadDefaultConfig(ctx, loadOpts...)
	if err != nil {
		return nil, errs.Wrap(err, "load aws config")
	}

	client := s3.NewFromConfig(awsCfg, func(o *s3.Options) {
		o.UsePathStyle = opts.PathStyle
		if opts.Endpoint != "" {
			o.BaseEndpoint = aws.String(opts.Endpoint)
		}
		if opts.HTTPClient != nil {
			o.HTTPClient = opts.HTTPClient
		}
		// Older S3-compatible servers reject trailing checksums.
		o.RequestChecksumCalculation = aws.RequestChecksumCalculationWhenRequired
	})

	return &S3{client: client, bucket: opts.Bucket, namespace: namespace, logger: logger}, nil
}

func (s *S3) Driver() Driver { return DriverS3 }

func (s *S3) objectKey(key string) string {
	if s.namespace == "" {
		return key
	}
	return s.namespace + "/" + key
}

func (s *S3) Get(ctx context.Context, key string) ([]byte, error) {
	if err := validateKey(key); err != nil {
		return nil, infra.WrapRepoErr(s.logger, infra.KindInvalidRecord, "s3 get "+key, err)
	}
	out, err := s.client.GetObject(ctx, &s3.GetObjectInput{
		Bucket: aws.String(s.bucket),
		Key:    aws.String(s.objectKey(key)),
	})
	if err != nil {
		if isS3NotFound(err) {
			return nil, infra.WrapRepoErr(s.logger, infra.KindNotFound, "s3 get "+key, nil)
		}
		return nil, infra.WrapRepoErr(s.logger, infra.KindStoreFailure, "s3 get "+key, err)
	}
	defer out.Body.Close()

	payload, err := io.ReadAll(out.Body)
	if err != nil {
		return nil, infra.WrapRepoErr(s.logger, infra.KindStoreFailure, "s3 read "+key, err)
	}
	return payload, nil
}

func (s *S3) Put(ctx context.Context, key string, value []byte) error {
	if err := validateKey(key); err != nil {
		return infra.WrapRepoErr(s.logger, infra.KindInvalidRecord, "s3 put "+key, err)
	}
	_, err := s.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:        aws.String(s.bucket),
		Key:           aws.String(s.objectKey(key)),
		Body:          bytes.NewReader(value),
		ContentLength: aws.Int64(int64(len(value))),
		ContentType:   aws.String("application/json"),
	})
	if err != nil {
		return infra.WrapRepoErr(s.logger, infra.KindStoreFailure, "s3 put "+key, err)
	}
	return nil
}

// Delete succeeds for absent objects, as S3 itself does.
func (s *S3) Delete(ctx context.Context, key string) error {
	if err := validateKey(key); err != nil {
		return infra.WrapRepoErr(s.logger, infra.KindInvalidRecord, "s3 delete "+key, err)
	}
	_, err := s.client.DeleteObject(ctx, &s3.DeleteObjectInput{
		Bucket: aws.String(s.bucket),
		Key:    aws.String(s.objectKey(key)),
	})
	if err != nil && !isS3NotFound(err) {
		return infra.WrapRepoErr(s.logger, infra.KindStoreFailure, "s3 delete "+key, err)
	}
	return nil
}

func (s *S3) Close() error { return nil }

func isS3NotFound(err error) bool {
	var noSuchKey *types.NoSuchKey
	if errors.As(err, &noSuchKey) {
		return true
	}
	var respErr *awshttp.ResponseError
	return errors.As(err, &respErr) && respErr.HTTPStatusCode() == http.StatusNotFound
}
