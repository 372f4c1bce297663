package publish

import (
	"context"
	"fmt"
	"os"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/s3"
)

// ClientConfig configures the S3 client built by NewS3Client.
type ClientConfig struct {
	// Region falls back to AWS_REGION, then AWS_DEFAULT_REGION.
	Region string

	// Endpoint points the client at an S3-compatible store.
	Endpoint string

	// PathStyle addresses buckets as path segments instead of subdomains.
	PathStyle bool

	// Getenv reads the environment. Defaults to os.Getenv.
	Getenv func(string) string
}

// NewS3Client builds an S3 client with credentials taken from
// AWS_ACCESS_KEY_ID, AWS_SECRET_ACCESS_KEY and AWS_SESSION_TOKEN.
func NewS3Client(cfg ClientConfig) (*s3.Client, error) {
	getenv := cfg.Getenv
	if getenv == nil {
		getenv = os.Getenv
	}

	region := cfg.Region
	if region == "" {
		region = getenv("AWS_REGION")
	}
	if region == "" {
		region = getenv("AWS_DEFAULT_REGION")
	}
	if region == "" {
		return nil, fmt.Errorf("no AWS region: pass --region or set AWS_REGION")
	}

	creds, err := envCredentials(getenv)
	if err != nil {
		return nil, err
	}

	opts := s3.Options{
		Region:       region,
		Credentials:  aws.NewCredentialsCache(creds),
		UsePathStyle: cfg.PathStyle,
	}
	if cfg.Endpoint != "" {
		opts.BaseEndpoint = aws.String(cfg.Endpoint)
	}
	return s3.New(opts), nil
}

func envCredentials(getenv func(string) string) (aws.CredentialsProvider, error) {
	id := getenv("AWS_ACCESS_KEY_ID")
	secret := getenv("AWS_SECRET_ACCESS_KEY")
	if id == "" || secret == "" {
		return nil, fmt.Errorf("AWS_ACCESS_KEY_ID and AWS_SECRET_ACCESS_KEY must be set")
	}
	token := getenv("AWS_SESSION_TOKEN")

	return aws.CredentialsProviderFunc(func(context.Context) (aws.Credentials, error) {
		return aws.Credentials{
			AccessKeyID:     id,
			SecretAccessKey: secret,
			SessionToken:    token,
			Source:          "Environment",
		}, nil
	}), nil
}
