package assets

import (
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"log/slog"
	"os"
	"path"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/feature/s3/manager"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/aws/smithy-go"
	mapset "github.com/deckarep/golang-set/v2"

	"github.com/aouyang1/artgallery/gallery"
	"github.com/aouyang1/artgallery/util"
)

const awsConfigTimeout = 3 * time.Second

// S3API is the subset of the S3 client the source uses.
type S3API interface {
	manager.DownloadAPIClient
	s3.ListObjectsV2APIClient
}

type S3Config struct {
	Profile  string
	Region   string
	Bucket   string
	Prefix   string
	CacheDir string
}

// S3Source fetches images from a bucket on first use and keeps them in a
// local cache directory afterwards.
type S3Source struct {
	client   S3API
	bucket   string
	prefix   string
	cacheDir string

	// serializes downloads so a burst of requests fetches an object once
	mu sync.Mutex
}

// NewS3Source loads the shared AWS configuration and builds a source for
// cfg.Bucket.
func NewS3Source(ctx context.Context, cfg S3Config) (*S3Source, error) {
	if cfg.Bucket == "" {
		return nil, errors.New("no s3 bucket provided")
	}

	var opts []func(*config.LoadOptions) error
	if cfg.Profile != "" {
		opts = append(opts, config.WithSharedConfigProfile(cfg.Profile))
	}
	if cfg.Region != "" {
		opts = append(opts, config.WithRegion(cfg.Region))
	}

	ctxCfg, cancelCfg := context.WithTimeout(ctx, awsConfigTimeout)
	awsCfg, err := config.LoadDefaultConfig(ctxCfg, opts...)
	cancelCfg()
	if err != nil {
		return nil, fmt.Errorf("load aws config: %w", err)
	}

	return NewS3SourceWithClient(s3.NewFromConfig(awsCfg), cfg)
}

func NewS3SourceWithClient(client S3API, cfg S3Config) (*S3Source, error) {
	if cfg.Bucket == "" {
		return nil, errors.New("no s3 bucket provided")
	}
	if cfg.CacheDir == "" {
		return nil, errors.New("no cache directory provided for s3 images")
	}
	if err := os.MkdirAll(cfg.CacheDir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create s3 cache directory: %w", err)
	}
	return &S3Source{
		client:   client,
		bucket:   cfg.Bucket,
		prefix:   strings.Trim(cfg.Prefix, "/"),
		cacheDir: cfg.CacheDir,
	}, nil
}

func (s *S3Source) Name() string {
	return "s3://" + path.Join(s.bucket, s.prefix)
}

func (s *S3Source) key(name string) string {
	if s.prefix == "" {
		return name
	}
	return s.prefix + "/" + name
}

func (s *S3Source) Open(ctx context.Context, name string) (io.ReadCloser, error) {
	if err := checkName(name); err != nil {
		return nil, err
	}

	cached := filepath.Join(s.cacheDir, name)
	if f, err := os.Open(cached); err == nil {
		return f, nil
	}

	if err := s.download(ctx, name); err != nil {
		return nil, err
	}
	f, err := os.Open(cached)
	if err != nil {
		return nil, fmt.Errorf("open cached image %s: %w", name, err)
	}
	return f, nil
}

func (s *S3Source) download(ctx context.Context, name string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	cached := filepath.Join(s.cacheDir, name)
	if _, err := os.Stat(cached); err == nil {
		return nil
	}

	tmp, err := os.CreateTemp(s.cacheDir, "."+name+".*")
	if err != nil {
		return fmt.Errorf("unable to create file for s3 download, %s, %w", name, err)
	}
	defer os.Remove(tmp.Name())

	downloader := manager.NewDownloader(s.client)
	_, err = downloader.Download(ctx, tmp, &s3.GetObjectInput{
		Bucket: aws.String(s.bucket),
		Key:    aws.String(s.key(name)),
	})
	if closeErr := tmp.Close(); err == nil {
		err = closeErr
	}
	if isMissingObject(err) {
		return fmt.Errorf("%w: %s in %s", ErrNotFound, name, s.Name())
	}
	if err != nil {
		return fmt.Errorf("unable to download object from s3, %s, %w", name, err)
	}

	if err := os.Rename(tmp.Name(), cached); err != nil {
		return fmt.Errorf("move downloaded image %s: %w", name, err)
	}
	slog.Info("cached image from s3", "name", name, "bucket", s.bucket)
	return nil
}

func isMissingObject(err error) bool {
	var apiErr smithy.APIError
	if !errors.As(err, &apiErr) {
		return false
	}
	switch apiErr.ErrorCode() {
	case "NoSuchKey", "NotFound":
		return true
	}
	return false
}

// RemoteFiles lists the supported images stored under the prefix.
func (s *S3Source) RemoteFiles(ctx context.Context) (mapset.Set[string], error) {
	input := &s3.ListObjectsV2Input{Bucket: aws.String(s.bucket)}
	if s.prefix != "" {
		input.Prefix = aws.String(s.prefix + "/")
	}

	remoteFiles := mapset.NewSet[string]()
	paginator := s3.NewListObjectsV2Paginator(s.client, input)
	for paginator.HasMorePages() {
		page, err := paginator.NextPage(ctx)
		if err != nil {
			return nil, fmt.Errorf("list s3 objects: %w", err)
		}
		for _, object := range page.Contents {
			name := path.Base(aws.ToString(object.Key))
			if util.IsSupportedImage(name) {
				remoteFiles.Add(name)
			}
		}
	}
	return remoteFiles, nil
}

// Prefetch downloads every catalog image the bucket has and the cache lacks.
// It returns the catalog images absent from the bucket.
func (s *S3Source) Prefetch(ctx context.Context, c *gallery.Catalog) ([]string, error) {
	remoteFiles, err := s.RemoteFiles(ctx)
	if err != nil {
		return nil, err
	}

	wanted := mapset.NewSet[string]()
	for _, a := range c.All() {
		wanted.Add(a.Image)
	}

	missing := wanted.Difference(remoteFiles).ToSlice()
	if len(missing) > 0 {
		slog.Info("s3 bucket is missing catalog images", "bucket", s.bucket, "count", len(missing), "names", missing)
	}

	for _, name := range wanted.Intersect(remoteFiles).ToSlice() {
		if _, err := os.Stat(filepath.Join(s.cacheDir, name)); err == nil {
			continue
		} else if !errors.Is(err, fs.ErrNotExist) {
			return missing, fmt.Errorf("stat cached image %s: %w", name, err)
		}
		if err := s.download(ctx, name); err != nil {
			slog.Warn("error while downloading s3 object", "name", name, "error", err)
		}
	}
	return missing, nil
}
