package media

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"sync/atomic"

	"cloud.google.com/go/storage"
	"golang.org/x/sync/errgroup"
)

// ProgressFunc receives upload progress as a 0-100 percentage.
type ProgressFunc func(percent int)

// File is one pending upload.
type File struct {
	Name        string
	ContentType string
	Size        int64
	Reader      io.Reader
}

// Uploader streams images into the storage bucket.
type Uploader struct {
	bucket *storage.BucketHandle
}

// NewUploader wraps the bucket handle from the backend guard.
func NewUploader(bucket *storage.BucketHandle) *Uploader {
	return &Uploader{bucket: bucket}
}

// Upload validates and streams one image into the given folder, reporting
// progress along the way, and returns the durable public URL.
func (u *Uploader) Upload(ctx context.Context, folder string, f File, onProgress ProgressFunc) (string, error) {
	if err := ValidateImage(f.Name, f.Size, f.ContentType); err != nil {
		return "", err
	}
	object := ObjectName(f.Name, folder)

	w := u.bucket.Object(object).NewWriter(ctx)
	w.ContentType = f.ContentType

	src := f.Reader
	if onProgress != nil && f.Size > 0 {
		src = &progressReader{r: f.Reader, total: f.Size, report: onProgress}
	}
	if _, err := io.Copy(w, src); err != nil {
		_ = w.Close()
		slog.Error("Upload failed", "object", object, "error", err)
		return "", fmt.Errorf("upload %s: %w", object, err)
	}
	if err := w.Close(); err != nil {
		slog.Error("Failed to finalize upload", "object", object, "error", err)
		return "", fmt.Errorf("finalize upload %s: %w", object, err)
	}
	if onProgress != nil {
		onProgress(100)
	}

	attrs := w.Attrs()
	slog.Info("Upload complete", "object", attrs.Name, "bucket", attrs.Bucket, "bytes", attrs.Size)
	return PublicURL(attrs.Bucket, attrs.Name), nil
}

// UploadAll uploads several images concurrently, reporting aggregate
// progress as files complete. The returned URLs are in input order. One
// failing file fails the batch.
func (u *Uploader) UploadAll(ctx context.Context, folder string, files []File, onProgress ProgressFunc) ([]string, error) {
	urls := make([]string, len(files))
	var completed atomic.Int64

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(4)
	for i, f := range files {
		g.Go(func() error {
			url, err := u.Upload(gctx, folder, f, nil)
			if err != nil {
				return err
			}
			urls[i] = url
			done := completed.Add(1)
			if onProgress != nil {
				onProgress(int(done * 100 / int64(len(files))))
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return urls, nil
}

// Delete removes a previously uploaded image given its public URL. URLs
// that do not point at the bucket are skipped with a warning rather than
// treated as failures.
func (u *Uploader) Delete(ctx context.Context, publicURL string) error {
	object, ok := ObjectPathFromURL(publicURL)
	if !ok {
		slog.Warn("Not a storage URL, skipping deletion", "url", publicURL)
		return nil
	}
	if err := u.bucket.Object(object).Delete(ctx); err != nil {
		slog.Error("Failed to delete object", "object", object, "error", err)
		return fmt.Errorf("delete %s: %w", object, err)
	}
	slog.Info("Image deleted", "object", object)
	return nil
}

// progressReader reports whole-percent changes as bytes flow through.
type progressReader struct {
	r      io.Reader
	total  int64
	read   int64
	last   int
	report ProgressFunc
}

func (p *progressReader) Read(buf []byte) (int, error) {
	n, err := p.r.Read(buf)
	p.read += int64(n)
	if pct := int(p.read * 100 / p.total); pct != p.last {
		p.last = pct
		p.report(pct)
	}
	return n, err
}
