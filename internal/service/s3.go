package service

import (
	"context"
	"fmt"
	"io"
	"log"
	"path"
	"strconv"
	"time"
	"tush00nka/studybud/internal/config"
	"tush00nka/studybud/internal/model"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/feature/s3/manager"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/google/uuid"
)

type S3Service struct {
	bucket   string
	uploader *manager.Uploader
	s3Client *s3.Client
}

// NewS3Service connects to the avatar bucket. Static keys are used when
// configured, otherwise the default AWS credential chain.
func NewS3Service(ctx context.Context, cfg *config.Config) (*S3Service, error) {
	if cfg.S3BucketName == "" {
		return nil, fmt.Errorf("S3_BUCKET_NAME is required for avatar storage")
	}

	s3Opts := []func(*s3.Options){}

	if cfg.S3Endpoint != "" {
		s3Opts = append(s3Opts, func(o *s3.Options) {
			o.BaseEndpoint = aws.String(cfg.S3Endpoint)
			o.UsePathStyle = true // MinIO
		})
	}

	loadOpts := []func(*awsconfig.LoadOptions) error{
		awsconfig.WithRegion(cfg.S3Region),
	}
	if cfg.S3AccessKeyID != "" {
		loadOpts = append(loadOpts, awsconfig.WithCredentialsProvider(
			credentials.NewStaticCredentialsProvider(cfg.S3AccessKeyID, cfg.S3SecretAccessKey, ""),
		))
	}

	awsCfg, err := awsconfig.LoadDefaultConfig(ctx, loadOpts...)
	if err != nil {
		return nil, fmt.Errorf("failed to load AWS config: %w", err)
	}

	s3Client := s3.NewFromConfig(awsCfg, s3Opts...)

	log.Printf("s3: avatar storage initialized with bucket %s (endpoint %q)", cfg.S3BucketName, cfg.S3Endpoint)
	return &S3Service{
		bucket:   cfg.S3BucketName,
		uploader: manager.NewUploader(s3Client),
		s3Client: s3Client,
	}, nil
}

// AvatarKey is the object key for an uploaded avatar.
func AvatarKey(userID uint, fileID, filename string) string {
	return path.Join("avatars", strconv.FormatUint(uint64(userID), 10), fileID, path.Base(filename))
}

func (s *S3Service) UploadAvatar(ctx context.Context, file io.Reader, filename, contentType string, userID uint) (*model.FileMetadata, error) {
	fileID := uuid.New().String()
	s3Key := AvatarKey(userID, fileID, filename)

	result, err := s.uploader.Upload(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(s.bucket),
		Key:         aws.String(s3Key),
		Body:        file,
		ContentType: aws.String(contentType),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to upload file: %w", err)
	}

	log.Printf("s3: uploaded avatar for user %d to %s", userID, result.Location)

	return &model.FileMetadata{
		ID:               fileID,
		Filename:         filename,
		ContentType:      contentType,
		S3Key:            s3Key,
		S3Bucket:         s.bucket,
		UploadedByUserID: userID,
		CreatedAt:        time.Now(),
	}, nil
}

func (s *S3Service) GeneratePresignedURL(ctx context.Context, key string, expires time.Duration) (string, error) {
	presignClient := s3.NewPresignClient(s.s3Client)

	request, err := presignClient.PresignGetObject(ctx, &s3.GetObjectInput{
		Bucket: aws.String(s.bucket),
		Key:    aws.String(key),
	}, s3.WithPresignExpires(expires))
	if err != nil {
		return "", fmt.Errorf("failed to generate presigned URL: %w", err)
	}

	return request.URL, nil
}

func (s *S3Service) HealthCheck(ctx context.Context) error {
	_, err := s.s3Client.HeadBucket(ctx, &s3.HeadBucketInput{Bucket: aws.String(s.bucket)})
	if err != nil {
		return fmt.Errorf("storage health check failed: %w", err)
	}
	return nil
}
