package publish

import (
	"context"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/s3"

	"github.com/jackcharlielopez/forge-cli/internal/config"
	"github.com/jackcharlielopez/forge-cli/internal/errors"
)

// s3API is the subset of the S3 client the publisher needs.
type s3API interface {
	PutObject(ctx context.Context, params *s3.PutObjectInput, optFns ...func(*s3.Options)) (*s3.PutObjectOutput, error)
}

// S3Publisher uploads the output tree object by object.
type S3Publisher struct {
	cfg    *config.S3Config
	client s3API
}

// NewS3Publisher creates a publisher for the configured bucket. The
// client is created lazily on first publish so credentials are only
// required when actually publishing.
func NewS3Publisher(cfg *config.S3Config) *S3Publisher {
	return &S3Publisher{cfg: cfg}
}

func (p *S3Publisher) Name() string {
	return "s3://" + p.cfg.Bucket
}

// Publish walks the output tree and uploads every file under the
// configured key prefix.
func (p *S3Publisher) Publish(ctx context.Context, outputDir string) error {
	if p.client == nil {
		opts := []func(*awsconfig.LoadOptions) error{}
		if p.cfg.Region != "" {
			opts = append(opts, awsconfig.WithRegion(p.cfg.Region))
		}
		awsCfg, err := awsconfig.LoadDefaultConfig(ctx, opts...)
		if err != nil {
			return errors.New("E602").Wrap(err).
				WithSuggestion("Check your AWS credentials and region")
		}
		p.client = s3.NewFromConfig(awsCfg)
	}

	return filepath.WalkDir(outputDir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return errors.New("E602").Wrap(err)
		}
		if d.IsDir() {
			return nil
		}

		rel, err := filepath.Rel(outputDir, path)
		if err != nil {
			return errors.New("E602").Wrap(err)
		}
		key := p.key(rel)

		f, err := os.Open(path)
		if err != nil {
			return errors.New("E602").Wrap(err).WithField(rel)
		}
		defer f.Close()

		_, err = p.client.PutObject(ctx, &s3.PutObjectInput{
			Bucket:      aws.String(p.cfg.Bucket),
			Key:         aws.String(key),
			Body:        f,
			ContentType: aws.String(contentType(rel)),
		})
		if err != nil {
			return errors.New("E602").Wrap(err).
				WithField(rel).
				WithDetail("upload to " + p.Name() + "/" + key + " failed")
		}
		return nil
	})
}

// key maps a relative output path to its object key, always with
// forward slashes.
func (p *S3Publisher) key(rel string) string {
	key := filepath.ToSlash(rel)
	if p.cfg.Prefix != "" {
		key = strings.TrimSuffix(p.cfg.Prefix, "/") + "/" + key
	}
	return key
}

// contentType maps the artifact extensions a build produces. S3 does
// not sniff content, and wrong types break browser rendering of the
// published docs.
func contentType(path string) string {
	switch filepath.Ext(path) {
	case ".json":
		return "application/json"
	case ".html":
		return "text/html; charset=utf-8"
	case ".css":
		return "text/css; charset=utf-8"
	case ".js", ".jsx":
		return "text/javascript; charset=utf-8"
	case ".ts", ".tsx":
		return "text/plain; charset=utf-8"
	case ".svg":
		return "image/svg+xml"
	case ".md":
		return "text/markdown; charset=utf-8"
	default:
		return "application/octet-stream"
	}
}
