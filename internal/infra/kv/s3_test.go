//go:build unit

package kv_test

import (
	"bytes"
	"context"
	"io"
	"net/http"
	"strconv"
	"strings"
	"sync"
	"testing"

	"genesis-storefront/internal/infra/kv"
	"genesis-storefront/tests/common/storetest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeS3 answers the path-style object calls the backend makes.
type fakeS3 struct {
	mu      sync.Mutex
	bucket  string
	objects map[string][]byte
	fail    bool
}

func (f *fakeS3) RoundTrip(req *http.Request) (*http.Response, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.fail {
		return xmlResponse(http.StatusForbidden, "AccessDenied"), nil
	}

	key := strings.TrimPrefix(req.URL.Path, "/"+f.bucket+"/")
	switch req.Method {
	case http.MethodGet:
		body, ok := f.objects[key]
		if !ok {
			return xmlResponse(http.StatusNotFound, "NoSuchKey"), nil
		}
		return &http.Response{
			StatusCode: http.StatusOK,
			Header: http.Header{
				"Content-Length": {strconv.Itoa(len(body))},
				"Content-Type":   {"application/json"},
			},
			Body:          io.NopCloser(bytes.NewReader(body)),
			ContentLength: int64(len(body)),
		}, nil
	case http.MethodPut:
		body, err := io.ReadAll(req.Body)
		if err != nil {
			return nil, err
		}
		f.objects[key] = body
		return &http.Response{
			StatusCode: http.StatusOK,
			Header:     http.Header{"ETag": {`"etag"`}},
			Body:       io.NopCloser(bytes.NewReader(nil)),
		}, nil
	case http.MethodDelete:
		delete(f.objects, key)
		return &http.Response{StatusCode: http.StatusNoContent, Body: io.NopCloser(bytes.NewReader(nil))}, nil
	}
	return xmlResponse(http.StatusMethodNotAllowed, "MethodNotAllowed"), nil
}

func xmlResponse(status int, code string) *http.Response {
	body := `<?xml version="1.0" encoding="UTF-8"?><Error><Code>` + code + `</Code><Message>` + code + `</Message></Error>`
	return &http.Response{
		StatusCode: status,
		Header:     http.Header{"Content-Type": {"application/xml"}},
		Body:       io.NopCloser(strings.NewReader(body)),
	}
}

func newFakeS3Backend(t *testing.T) (*kv.S3, *fakeS3) {
	t.Helper()

	fake := &fakeS3{bucket: "storefront", objects: map[string][]byte{}}
	b, err := kv.NewS3(context.Background(), kv.S3Options{
		Bucket:          fake.bucket,
		Endpoint:        "http://s3.fake.local",
		AccessKeyID:     "AKIA",
		SecretAccessKey: "SECRET",
		PathStyle:       true,
		HTTPClient:      &http.Client{Transport: fake},
	}, "genesis", discardLogger())
	require.NoError(t, err)
	return b, fake
}

func TestS3Backend(t *testing.T) {
	b, fake := newFakeS3Backend(t)

	storetest.RunBackendContract(t, b)

	t.Run("objects are keyed under the namespace", func(t *testing.T) {
		require.NoError(t, b.Put(context.Background(), "contact", []byte(`{}`)))

		fake.mu.Lock()
		defer fake.mu.Unlock()
		assert.Contains(t, fake.objects, "genesis/contact")
	})

	t.Run("server errors are not reported as misses", func(t *testing.T) {
		fake.mu.Lock()
		fake.fail = true
		fake.mu.Unlock()
		t.Cleanup(func() {
			fake.mu.Lock()
			fake.fail = false
			fake.mu.Unlock()
		})

		_, err := b.Get(context.Background(), "contact")
		require.Error(t, err)
		assert.False(t, kv.IsNotFound(err))
	})
}

func TestNewS3RequiresBucket(t *testing.T) {
	_, err := kv.NewS3(context.Background(), kv.S3Options{}, "genesis", discardLogger())
	assert.Error(t, err)
}
