package s3

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/aws/aws-sdk-go-v2/service/s3/types"
	"github.com/aws/smithy-go"

	"github.com/shiosai/vodfront/internal/usecase"
)

var _ usecase.ObjectStorage = (*S3Client)(nil)

type S3Config struct {
	Endpoint        string
	AccessKeyID     string
	SecretAccessKey string
	Region          string
}

type S3API interface {
	GetObject(context.Context, *s3.GetObjectInput, ...func(*s3.Options)) (*s3.GetObjectOutput, error)
	HeadObject(context.Context, *s3.HeadObjectInput, ...func(*s3.Options)) (*s3.HeadObjectOutput, error)
	HeadBucket(context.Context, *s3.HeadBucketInput, ...func(*s3.Options)) (*s3.HeadBucketOutput, error)
	ListObjectsV2(context.Context, *s3.ListObjectsV2Input, ...func(*s3.Options)) (*s3.ListObjectsV2Output, error)
	DeleteObjects(context.Context, *s3.DeleteObjectsInput, ...func(*s3.Options)) (*s3.DeleteObjectsOutput, error)
}

// S3Client はバケットをリクエストごとに指定するオブジェクトストアクライアント
type S3Client struct {
	client               S3API
	presignClient        *s3.Client
	presignClientFactory PresignClientFactory
	vodBucket            string
}

func NewS3Connection(cfg S3Config) (*s3.Client, error) {
	awsCfg := aws.Config{
		Region:      cfg.Region,
		Credentials: credentials.NewStaticCredentialsProvider(cfg.AccessKeyID, cfg.SecretAccessKey, ""),
	}

	client := s3.NewFromConfig(awsCfg, func(o *s3.Options) {
		if cfg.Endpoint != "" {
			o.BaseEndpoint = aws.String(cfg.Endpoint)
		}
		// MinIO互換エンドポイントのためパススタイルを使用
		o.UsePathStyle = true
	})

	return client, nil
}

func NewS3Client(client *s3.Client, vodBucket string) *S3Client {
	return NewS3ClientWithPresignFactory(client, client, vodBucket, nil)
}

func NewS3ClientWithPresignFactory(client S3API, presignClient *s3.Client, vodBucket string, factory PresignClientFactory) *S3Client {
	if factory == nil {
		factory = DefaultPresignClientFactory
	}
	return &S3Client{
		client:               client,
		presignClient:        presignClient,
		presignClientFactory: factory,
		vodBucket:            vodBucket,
	}
}

// GetObjectText はオブジェクトの内容をテキストとして取得する。
// 存在しない場合はusecase.ErrObjectNotFoundを返す。
func (c *S3Client) GetObjectText(ctx context.Context, bucket, key string) (string, error) {
	result, err := c.client.GetObject(ctx, &s3.GetObjectInput{
		Bucket: aws.String(bucket),
		Key:    aws.String(key),
	})
	if err != nil {
		if isNotFound(err) {
			return "", usecase.ErrObjectNotFound
		}
		return "", NewStorageError(OperationGet, err)
	}
	defer func() { _ = result.Body.Close() }()

	body, err := io.ReadAll(result.Body)
	if err != nil {
		return "", NewStorageError(OperationGet, err)
	}

	return string(body), nil
}

// ObjectExists はオブジェクトの存在をHeadObjectで確認する
func (c *S3Client) ObjectExists(ctx context.Context, bucket, key string) (bool, error) {
	_, err := c.client.HeadObject(ctx, &s3.HeadObjectInput{
		Bucket: aws.String(bucket),
		Key:    aws.String(key),
	})
	if err != nil {
		if isNotFound(err) {
			return false, nil
		}
		return false, NewStorageError(OperationHead, err)
	}

	return true, nil
}

// DeletePrefix は指定プレフィックス配下の全オブジェクトを削除する。
// ListObjectsV2のページングに追従し、空のプレフィックスでもエラーにしない。
func (c *S3Client) DeletePrefix(ctx context.Context, bucket, prefix string) error {
	var continuationToken *string

	for {
		listed, err := c.client.ListObjectsV2(ctx, &s3.ListObjectsV2Input{
			Bucket:            aws.String(bucket),
			Prefix:            aws.String(prefix),
			ContinuationToken: continuationToken,
		})
		if err != nil {
			return NewStorageError(OperationList, err)
		}

		if len(listed.Contents) > 0 {
			objects := make([]types.ObjectIdentifier, 0, len(listed.Contents))
			for _, obj := range listed.Contents {
				objects = append(objects, types.ObjectIdentifier{Key: obj.Key})
			}

			_, err = c.client.DeleteObjects(ctx, &s3.DeleteObjectsInput{
				Bucket: aws.String(bucket),
				Delete: &types.Delete{
					Objects: objects,
					Quiet:   aws.Bool(true),
				},
			})
			if err != nil {
				return NewStorageError(OperationDelete, err)
			}
		}

		if listed.IsTruncated == nil || !*listed.IsTruncated {
			return nil
		}
		continuationToken = listed.NextContinuationToken
	}
}

// HeadBucket はVODバケットへの疎通を確認する
func (c *S3Client) HeadBucket(ctx context.Context) error {
	_, err := c.client.HeadBucket(ctx, &s3.HeadBucketInput{
		Bucket: aws.String(c.vodBucket),
	})
	if err != nil {
		return fmt.Errorf("failed to head bucket: %w", err)
	}
	return nil
}

func isNotFound(err error) bool {
	var nf *types.NotFound
	if errors.As(err, &nf) {
		return true
	}
	var nsk *types.NoSuchKey
	if errors.As(err, &nsk) {
		return true
	}

	var apiErr smithy.APIError
	if errors.As(err, &apiErr) {
		switch apiErr.ErrorCode() {
		case "NotFound", "NoSuchKey":
			return true
		}
	}
	return false
}
