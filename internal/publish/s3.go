// Package publish uploads finished renders to object storage.
package publish

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"log"
	"os"
	"path"
	"time"

	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/aws/credentials"
	"github.com/aws/aws-sdk-go/aws/session"
	"github.com/aws/aws-sdk-go/service/s3"
	"github.com/aws/aws-sdk-go/service/s3/s3iface"
	"github.com/joho/godotenv"
)

// UploadTimeout bounds a single upload.
const UploadTimeout = 10 * time.Second

// ErrNoBucket is returned when no bucket is configured.
var ErrNoBucket = errors.New("publish: S3 bucket not set")

// Publisher stores an encoded image under key.
type Publisher interface {
	Publish(ctx context.Context, key string, data []byte, contentType string) error
}

// S3Config holds connection settings for an S3-compatible store.
type S3Config struct {
	AccessKey string
	SecretKey string
	Endpoint  string
	Region    string
	Bucket    string
	Prefix    string
	ACL       string
}

// LoadS3Config reads S3_* variables from the environment. When envFile is
// set it is loaded first; a missing file is not an error.
func LoadS3Config(envFile string) S3Config {
	if envFile != "" {
		if err := godotenv.Load(envFile); err != nil && !errors.Is(err, os.ErrNotExist) {
			log.Printf("publish: load %s: %v", envFile, err)
		}
	}
	return S3Config{
		AccessKey: os.Getenv("S3_ACCESS_KEY"),
		SecretKey: os.Getenv("S3_SECRET_KEY"),
		Endpoint:  os.Getenv("S3_ENDPOINT"),
		Region:    getEnv("S3_REGION", "us-east-1"),
		Bucket:    os.Getenv("S3_BUCKET"),
		Prefix:    os.Getenv("S3_PREFIX"),
		ACL:       os.Getenv("S3_ACL"),
	}
}

func getEnv(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok {
		return value
	}
	return fallback
}

// S3 uploads objects with PutObject.
type S3 struct {
	client s3iface.S3API
	cfg    S3Config
}

// NewS3 opens a session for cfg.
func NewS3(cfg S3Config) (*S3, error) {
	if cfg.Bucket == "" {
		return nil, ErrNoBucket
	}

	awsCfg := &aws.Config{
		Region:           aws.String(cfg.Region),
		S3ForcePathStyle: aws.Bool(true),
	}
	if cfg.Endpoint != "" {
		awsCfg.Endpoint = aws.String(cfg.Endpoint)
	}
	if cfg.AccessKey != "" {
		awsCfg.Credentials = credentials.NewStaticCredentials(cfg.AccessKey, cfg.SecretKey, "")
	}

	sess, err := session.NewSession(awsCfg)
	if err != nil {
		return nil, fmt.Errorf("publish: S3 session: %w", err)
	}
	return NewS3WithClient(s3.New(sess), cfg), nil
}

// NewS3WithClient wraps an existing client.
func NewS3WithClient(client s3iface.S3API, cfg S3Config) *S3 {
	return &S3{client: client, cfg: cfg}
}

// Key joins the configured prefix and name.
func (p *S3) Key(name string) string {
	if p.cfg.Prefix == "" {
		return name
	}
	return path.Join(p.cfg.Prefix, name)
}

// Publish uploads data under the prefixed key.
func (p *S3) Publish(ctx context.Context, key string, data []byte, contentType string) error {
	ctx, cancel := context.WithTimeout(ctx, UploadTimeout)
	defer cancel()

	input := &s3.PutObjectInput{
		Bucket:        aws.String(p.cfg.Bucket),
		Key:           aws.String(p.Key(key)),
		Body:          bytes.NewReader(data),
		ContentLength: aws.Int64(int64(len(data))),
		ContentType:   aws.String(contentType),
	}
	if p.cfg.ACL != "" {
		input.ACL = aws.String(p.cfg.ACL)
	}

	if _, err := p.client.PutObjectWithContext(ctx, input); err != nil {
		return fmt.Errorf("publish: upload %s: %w", p.Key(key), err)
	}

	log.Printf("Uploaded %s to s3://%s (%d bytes)", p.Key(key), p.cfg.Bucket, len(data))
	return nil
}
