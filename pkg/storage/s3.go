// Package storage presigns direct-to-bucket uploads of archive images.
package storage

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/google/uuid"
)

const uploadExpiry = 15 * time.Minute

type S3Config struct {
	Endpoint      string // empty means AWS
	Region        string
	Bucket        string
	AccessKey     string
	SecretKey     string
	PublicBaseURL string // prefix for image_url; derived from Endpoint when empty
}

// PresignedUpload is what a client needs to PUT an image and then reference
// it from an archive.
type PresignedUpload struct {
	UploadURL string `json:"upload_url"`
	ImageURL  string `json:"image_url"`
	Key       string `json:"key"`
	ExpiresIn int    `json:"expires_in"`
}

type S3Presigner struct {
	client        *s3.PresignClient
	bucket        string
	publicBaseURL string
	now           func() time.Time
}

func NewS3Presigner(ctx context.Context, cfg S3Config) (*S3Presigner, error) {
	awsCfg, err := config.LoadDefaultConfig(ctx,
		config.WithRegion(cfg.Region),
		config.WithCredentialsProvider(credentials.NewStaticCredentialsProvider(
			cfg.AccessKey,
			cfg.SecretKey,
			"",
		)))
	if err != nil {
		return nil, fmt.Errorf("load s3 config: %w", err)
	}

	client := s3.NewFromConfig(awsCfg, func(o *s3.Options) {
		if cfg.Endpoint != "" {
			o.BaseEndpoint = aws.String(cfg.Endpoint)
			// MinIO and most self-hosted gateways want path-style URLs.
			o.UsePathStyle = true
		}
	})

	base := cfg.PublicBaseURL
	if base == "" {
		if cfg.Endpoint != "" {
			base = strings.TrimRight(cfg.Endpoint, "/") + "/" + cfg.Bucket
		} else {
			base = fmt.Sprintf("https://%s.s3.%s.amazonaws.com", cfg.Bucket, cfg.Region)
		}
	}

	return &S3Presigner{
		client:        s3.NewPresignClient(client),
		bucket:        cfg.Bucket,
		publicBaseURL: strings.TrimRight(base, "/"),
		now:           time.Now,
	}, nil
}

// PresignImageUpload returns a presigned PUT for one image owned by userID.
func (p *S3Presigner) PresignImageUpload(ctx context.Context, userID, contentType string) (*PresignedUpload, error) {
	key := p.imageKey(userID)

	req, err := p.client.PresignPutObject(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(p.bucket),
		Key:         aws.String(key),
		ContentType: aws.String(contentType),
	}, s3.WithPresignExpires(uploadExpiry))
	if err != nil {
		return nil, fmt.Errorf("presign put: %w", err)
	}

	return &PresignedUpload{
		UploadURL: req.URL,
		ImageURL:  p.publicBaseURL + "/" + key,
		Key:       key,
		ExpiresIn: int(uploadExpiry.Seconds()),
	}, nil
}

func (p *S3Presigner) imageKey(userID string) string {
	d := p.now()
	return fmt.Sprintf("archives/%s/%04d/%02d/%s", userID, d.Year(), int(d.Month()), uuid.New())
}
