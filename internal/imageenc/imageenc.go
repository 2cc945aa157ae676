// Package imageenc turns a single uploaded image into an inline data URL.
// The encoder validates and encodes; persisting the result is the caller's job.
package imageenc

import (
	"context"
	"encoding/base64"
	"errors"
	"fmt"
	"io"
	"mime/multipart"
	"os"
	"strings"

	"github.com/gabriel-vasile/mimetype"
	"github.com/spf13/afero"
)

// MaxImageSize is the exclusive upper bound on accepted files.
const MaxImageSize = 2 << 20

// User-facing messages for rejected files.
const (
	MsgTooLarge = "Image size should be less than 2MB"
	MsgNotImage = "Please select an image file"
)

var (
	ErrTooLarge = errors.New("image exceeds size limit")
	ErrNotImage = errors.New("file is not an image")
)

// Message maps a rejection to its fixed user-facing text. Other errors yield "".
func Message(err error) string {
	switch {
	case errors.Is(err, ErrTooLarge):
		return MsgTooLarge
	case errors.Is(err, ErrNotImage):
		return MsgNotImage
	default:
		return ""
	}
}

// Source is one selected file.
type Source interface {
	Name() string
	Size() int64
	// ContentType is the declared MIME type. Empty means unknown.
	ContentType() string
	Open() (io.ReadCloser, error)
}

// Callback receives the encoded data URL.
type Callback func(ctx context.Context, dataURL string) error

// Encoder validates and encodes image sources.
type Encoder struct {
	maxSize int64
}

// Option configures an Encoder.
type Option func(*Encoder)

// WithMaxSize overrides MaxImageSize.
func WithMaxSize(n int64) Option {
	return func(e *Encoder) {
		e.maxSize = n
	}
}

// New creates an Encoder.
func New(opts ...Option) *Encoder {
	e := &Encoder{maxSize: MaxImageSize}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Encode checks src, reads it and hands data:<mime>;base64,<payload> to fn.
// fn is never called when validation or reading fails.
func (e *Encoder) Encode(ctx context.Context, src Source, fn Callback) error {
	if src.Size() >= e.maxSize {
		return ErrTooLarge
	}

	declared := normalizeType(src.ContentType())
	if declared != "" && !isImage(declared) {
		return ErrNotImage
	}

	rc, err := src.Open()
	if err != nil {
		return fmt.Errorf("open %s: %w", src.Name(), err)
	}
	defer rc.Close()

	// Size is only declared. A file that reaches the limit is rejected here too.
	data, err := io.ReadAll(io.LimitReader(rc, e.maxSize))
	if err != nil {
		return fmt.Errorf("read %s: %w", src.Name(), err)
	}
	if int64(len(data)) >= e.maxSize {
		return ErrTooLarge
	}

	mediaType := declared
	if mediaType == "" {
		mediaType = normalizeType(mimetype.Detect(data).String())
		if !isImage(mediaType) {
			return ErrNotImage
		}
	}

	if err := ctx.Err(); err != nil {
		return err
	}
	return fn(ctx, DataURL(mediaType, data))
}

// DataURL formats data as a base64 data URL.
func DataURL(mediaType string, data []byte) string {
	return "data:" + mediaType + ";base64," + base64.StdEncoding.EncodeToString(data)
}

// normalizeType strips parameters and lowercases. The generic binary type
// carries no information, so it is treated as unknown.
func normalizeType(ct string) string {
	ct, _, _ = strings.Cut(ct, ";")
	ct = strings.ToLower(strings.TrimSpace(ct))
	if ct == "application/octet-stream" {
		return ""
	}
	return ct
}

func isImage(ct string) bool {
	return strings.HasPrefix(ct, "image/")
}

type multipartSource struct {
	fh *multipart.FileHeader
}

// FromMultipart adapts an uploaded form file.
func FromMultipart(fh *multipart.FileHeader) Source {
	return multipartSource{fh: fh}
}

func (s multipartSource) Name() string        { return s.fh.Filename }
func (s multipartSource) Size() int64         { return s.fh.Size }
func (s multipartSource) ContentType() string { return s.fh.Header.Get("Content-Type") }
func (s multipartSource) Open() (io.ReadCloser, error) {
	return s.fh.Open()
}

type fileSource struct {
	fs   afero.Fs
	path string
	size int64
}

// FromFile adapts a file on fs. The type is always sniffed from content.
func FromFile(fs afero.Fs, path string) (Source, error) {
	info, err := fs.Stat(path)
	if err != nil {
		return nil, fmt.Errorf("stat %s: %w", path, err)
	}
	if info.IsDir() {
		return nil, fmt.Errorf("%s is a directory", path)
	}
	return fileSource{fs: fs, path: path, size: info.Size()}, nil
}

func (s fileSource) Name() string        { return s.path }
func (s fileSource) Size() int64         { return s.size }
func (s fileSource) ContentType() string { return "" }
func (s fileSource) Open() (io.ReadCloser, error) {
	return s.fs.OpenFile(s.path, os.O_RDONLY, 0)
}
