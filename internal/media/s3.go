package media

import (
	"context"
	"fmt"
	"mime/multipart"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsConfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/rs/zerolog/log"

	"github.com/merakistudio/interior-api/internal/config"
)

// S3Store is the bucket-backed alternative to LocalStore, for deploys
// where the app instance has no persistent disk.
type S3Store struct {
	client       *s3.Client
	bucket       string
	publicDomain string
}

func NewS3Store(cfg *config.Config) (*S3Store, error) {
	staticProvider := credentials.NewStaticCredentialsProvider(
		cfg.S3AccessKeyID,
		cfg.S3SecretAccessKey,
		"",
	)

	awsCfg, err := awsConfig.LoadDefaultConfig(
		context.Background(),
		awsConfig.WithCredentialsProvider(staticProvider),
	)
	if err != nil {
		return nil, fmt.Errorf("load aws config: %w", err)
	}

	client := s3.NewFromConfig(awsCfg, func(o *s3.Options) {
		o.BaseEndpoint = aws.String(cfg.S3Endpoint)
		o.UsePathStyle = true
		o.Region = "auto"
	})

	log.Info().Str("bucket", cfg.S3Bucket).Msg("media store backed by s3")

	return &S3Store{
		client:       client,
		bucket:       cfg.S3Bucket,
		publicDomain: strings.TrimSuffix(cfg.S3PublicDomain, "/"),
	}, nil
}

func (s *S3Store) Save(ctx context.Context, fh *multipart.FileHeader) (File, error) {
	if err := Validate(fh); err != nil {
		return File{}, err
	}

	src, err := fh.Open()
	if err != nil {
		return File{}, fmt.Errorf("open upload: %w", err)
	}
	defer src.Close()

	name := NewName(fh.Filename)

	_, err = s.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:        aws.String(s.bucket),
		Key:           aws.String(name),
		Body:          src,
		ContentType:   aws.String(fh.Header.Get("Content-Type")),
		ContentLength: aws.Int64(fh.Size),
	})
	if err != nil {
		return File{}, fmt.Errorf("upload to s3: %w", err)
	}

	return s.file(name), nil
}

func (s *S3Store) List(ctx context.Context) ([]File, error) {
	out, err := s.client.ListObjectsV2(ctx, &s3.ListObjectsV2Input{
		Bucket: aws.String(s.bucket),
	})
	if err != nil {
		return nil, fmt.Errorf("list bucket: %w", err)
	}

	files := []File{}
	for _, obj := range out.Contents {
		if obj.Key == nil {
			continue
		}
		files = append(files, s.file(*obj.Key))
	}
	return files, nil
}

func (s *S3Store) Remove(ctx context.Context, name string) error {
	_, err := s.client.DeleteObject(ctx, &s3.DeleteObjectInput{
		Bucket: aws.String(s.bucket),
		Key:    aws.String(name),
	})
	if err != nil {
		return fmt.Errorf("delete from s3: %w", err)
	}
	return nil
}

func (s *S3Store) file(name string) File {
	return File{
		Name: name,
		URL:  fmt.Sprintf("%s/%s", s.publicDomain, name),
	}
}

var _ Store = (*S3Store)(nil)
