package storage

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"path"
	"path/filepath"
	"regexp"
	"strings"
	"time"

	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/aws/credentials"
	"github.com/aws/aws-sdk-go/aws/session"
	"github.com/aws/aws-sdk-go/service/s3"
	"github.com/rs/zerolog/log"
)

// exportPrefix is the key prefix (and local URL path) of generated files.
const exportPrefix = "exports"

// Storage publishes generated calendar files and returns where screens and
// browsers can fetch them.
type Storage interface {
	Save(ctx context.Context, filename, contentType string, body []byte) (string, error)
}

type LocalStorage struct {
	dir string
	now func() time.Time
}

type SpacesStorage struct {
	client *s3.S3
	bucket string
	cdnURL string
	now    func() time.Time
}

// NewLocalStorage writes into dir, which the router serves under /exports.
func NewLocalStorage(dir string) *LocalStorage {
	return &LocalStorage{dir: dir, now: time.Now}
}

func (ls *LocalStorage) Dir() string { return ls.dir }

func NewSpacesStorage(endpoint, region, bucket, cdnURL, accessKey, secretKey string) (*SpacesStorage, error) {
	config := &aws.Config{
		Credentials:      credentials.NewStaticCredentials(accessKey, secretKey, ""),
		Endpoint:         aws.String(endpoint),
		Region:           aws.String(region),
		S3ForcePathStyle: aws.Bool(false),
	}

	sess, err := session.NewSession(config)
	if err != nil {
		return nil, fmt.Errorf("failed to create session: %w", err)
	}

	return &SpacesStorage{
		client: s3.New(sess),
		bucket: bucket,
		cdnURL: cdnURL,
		now:    time.Now,
	}, nil
}

var unsafeChars = regexp.MustCompile(`[^a-zA-Z0-9_-]`)

// normalizeFilename creates a unique, normalized filename without spaces
func normalizeFilename(originalFilename string, now time.Time) string {
	ext := filepath.Ext(originalFilename)
	baseName := strings.TrimSuffix(originalFilename, ext)

	baseName = strings.ReplaceAll(baseName, " ", "_")
	baseName = unsafeChars.ReplaceAllString(baseName, "")
	if baseName == "" {
		baseName = "file"
	}

	// timestamp keeps re-exports of the same month apart
	return fmt.Sprintf("%s_%s%s", baseName, now.UTC().Format("20060102_150405"), strings.ToLower(ext))
}

func (ls *LocalStorage) Save(_ context.Context, filename, contentType string, body []byte) (string, error) {
	name := normalizeFilename(filename, ls.now())
	log.Debug().Str("original", filename).Str("normalized", name).Str("contentType", contentType).Msg("saving export")

	if err := os.MkdirAll(ls.dir, 0o755); err != nil {
		return "", fmt.Errorf("failed to create export directory: %w", err)
	}
	if err := os.WriteFile(filepath.Join(ls.dir, name), body, 0o644); err != nil {
		return "", fmt.Errorf("failed to save file: %w", err)
	}
	return "/" + path.Join(exportPrefix, name), nil
}

func (ss *SpacesStorage) Save(ctx context.Context, filename, contentType string, body []byte) (string, error) {
	name := normalizeFilename(filename, ss.now())
	key := path.Join(exportPrefix, name)

	_, err := ss.client.PutObjectWithContext(ctx, &s3.PutObjectInput{
		Bucket:       aws.String(ss.bucket),
		Key:          aws.String(key),
		Body:         bytes.NewReader(body),
		ContentType:  aws.String(contentType),
		CacheControl: aws.String("public, max-age=86400"),
		ACL:          aws.String("public-read"),
	})
	if err != nil {
		log.Error().Err(err).Str("key", key).Msg("failed to upload export to Spaces")
		return "", fmt.Errorf("failed to upload to Spaces: %w", err)
	}

	return fmt.Sprintf("%s/%s", strings.TrimSuffix(ss.cdnURL, "/"), key), nil
}
