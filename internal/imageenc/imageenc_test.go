package imageenc

import (
	"bytes"
	"context"
	"encoding/base64"
	"errors"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var pngBytes = append([]byte("\x89PNG\r\n\x1a\n\x00\x00\x00\rIHDR"), make([]byte, 32)...)

type fakeSource struct {
	name    string
	size    int64
	ct      string
	data    []byte
	openErr error
	readErr error
	opened  bool
}

func (f *fakeSource) Name() string        { return f.name }
func (f *fakeSource) Size() int64         { return f.size }
func (f *fakeSource) ContentType() string { return f.ct }
func (f *fakeSource) Open() (io.ReadCloser, error) {
	f.opened = true
	if f.openErr != nil {
		return nil, f.openErr
	}
	if f.readErr != nil {
		return io.NopCloser(&failingReader{err: f.readErr}), nil
	}
	return io.NopCloser(bytes.NewReader(f.data)), nil
}

type failingReader struct{ err error }

func (r *failingReader) Read([]byte) (int, error) { return 0, r.err }

func recordCalls(calls *[]string) Callback {
	return func(_ context.Context, dataURL string) error {
		*calls = append(*calls, dataURL)
		return nil
	}
}

func TestEncode_Rejections(t *testing.T) {
	tests := []struct {
		name    string
		src     *fakeSource
		wantErr error
		wantMsg string
		opened  bool
	}{
		{
			name:    "exactly the limit",
			src:     &fakeSource{name: "big.png", size: MaxImageSize, ct: "image/png"},
			wantErr: ErrTooLarge,
			wantMsg: MsgTooLarge,
		},
		{
			name:    "above the limit",
			src:     &fakeSource{name: "big.png", size: MaxImageSize + 1, ct: "image/png"},
			wantErr: ErrTooLarge,
			wantMsg: MsgTooLarge,
		},
		{
			name:    "declared text",
			src:     &fakeSource{name: "notes.txt", size: 10, ct: "text/plain", data: []byte("hello")},
			wantErr: ErrNotImage,
			wantMsg: MsgNotImage,
		},
		{
			name:    "sniffed text",
			src:     &fakeSource{name: "notes", size: 11, data: []byte("hello world")},
			wantErr: ErrNotImage,
			wantMsg: MsgNotImage,
			opened:  true,
		},
		{
			name:    "size understated",
			src:     &fakeSource{name: "liar.png", size: 1, ct: "image/png", data: make([]byte, MaxImageSize)},
			wantErr: ErrTooLarge,
			wantMsg: MsgTooLarge,
			opened:  true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var calls []string
			err := New().Encode(context.Background(), tt.src, recordCalls(&calls))
			require.ErrorIs(t, err, tt.wantErr)
			assert.Equal(t, tt.wantMsg, Message(err))
			assert.Empty(t, calls, "callback must not run")
			assert.Equal(t, tt.opened, tt.src.opened)
		})
	}
}

func TestEncode_ReadFailure(t *testing.T) {
	var calls []string
	src := &fakeSource{name: "a.png", size: 10, ct: "image/png", readErr: errors.New("disk gone")}

	err := New().Encode(context.Background(), src, recordCalls(&calls))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "disk gone")
	assert.Empty(t, Message(err))
	assert.Empty(t, calls)
}

func TestEncode_DeclaredType(t *testing.T) {
	var calls []string
	src := &fakeSource{name: "a.gif", size: 3, ct: "IMAGE/GIF; charset=binary", data: []byte("abc")}

	require.NoError(t, New().Encode(context.Background(), src, recordCalls(&calls)))
	require.Len(t, calls, 1)
	assert.Equal(t, "data:image/gif;base64,YWJj", calls[0])
}

func TestEncode_CallbackError(t *testing.T) {
	src := &fakeSource{name: "a.png", size: int64(len(pngBytes)), ct: "image/png", data: pngBytes}
	want := errors.New("store down")

	err := New().Encode(context.Background(), src, func(context.Context, string) error { return want })
	assert.ErrorIs(t, err, want)
}

func TestEncode_CanceledContext(t *testing.T) {
	var calls []string
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	src := &fakeSource{name: "a.png", size: int64(len(pngBytes)), ct: "image/png", data: pngBytes}

	err := New().Encode(ctx, src, recordCalls(&calls))
	assert.ErrorIs(t, err, context.Canceled)
	assert.Empty(t, calls)
}

func TestFromFile_SniffsType(t *testing.T) {
	fs := afero.NewMemMapFs()
	require.NoError(t, afero.WriteFile(fs, "/avatars/me", pngBytes, 0o644))

	src, err := FromFile(fs, "/avatars/me")
	require.NoError(t, err)
	assert.Equal(t, int64(len(pngBytes)), src.Size())

	var calls []string
	require.NoError(t, New().Encode(context.Background(), src, recordCalls(&calls)))
	require.Len(t, calls, 1)

	payload, ok := strings.CutPrefix(calls[0], "data:image/png;base64,")
	require.True(t, ok, "unexpected prefix: %s", calls[0][:30])
	decoded, err := base64.StdEncoding.DecodeString(payload)
	require.NoError(t, err)
	assert.Equal(t, pngBytes, decoded)
}

func TestFromFile_Errors(t *testing.T) {
	fs := afero.NewMemMapFs()
	require.NoError(t, fs.MkdirAll("/dir", 0o755))

	_, err := FromFile(fs, "/missing.png")
	assert.Error(t, err)

	_, err = FromFile(fs, "/dir")
	assert.Error(t, err)
}

func TestWithMaxSize(t *testing.T) {
	var calls []string
	src := &fakeSource{name: "a.png", size: 100, ct: "image/png", data: make([]byte, 100)}

	err := New(WithMaxSize(100)).Encode(context.Background(), src, recordCalls(&calls))
	assert.ErrorIs(t, err, ErrTooLarge)
	assert.Empty(t, calls)
}

func TestFromMultipart(t *testing.T) {
	body := &bytes.Buffer{}
	w := multipart.NewWriter(body)
	part, err := w.CreateFormFile("image", "avatar.png")
	require.NoError(t, err)
	_, err = part.Write(pngBytes)
	require.NoError(t, err)
	require.NoError(t, w.Close())

	req := httptest.NewRequest(http.MethodPost, "/", body)
	req.Header.Set("Content-Type", w.FormDataContentType())
	require.NoError(t, req.ParseMultipartForm(MaxImageSize))
	_, fh, err := req.FormFile("image")
	require.NoError(t, err)

	src := FromMultipart(fh)
	assert.Equal(t, "avatar.png", src.Name())
	assert.Equal(t, "application/octet-stream", src.ContentType())

	var calls []string
	require.NoError(t, New().Encode(context.Background(), src, recordCalls(&calls)))
	require.Len(t, calls, 1)
	assert.True(t, strings.HasPrefix(calls[0], "data:image/png;base64,"))
}
