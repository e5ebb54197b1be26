package tmb

import (
	"context"
	"fmt"
	"io"
	"strings"

	"cloud.google.com/go/storage"
	"github.com/carbocation/pfx"
)

const googleStoragePrefix = "gs://"

// IsGoogleStoragePath reports whether path names a Google Cloud Storage object.
func IsGoogleStoragePath(path string) bool {
	return strings.HasPrefix(path, googleStoragePrefix)
}

// SplitGoogleStoragePath splits "gs://bucket/path/to/object" into its bucket
// and object names.
func SplitGoogleStoragePath(path string) (bucket, object string, err error) {
	if !IsGoogleStoragePath(path) {
		return "", "", pfx.Err(fmt.Errorf("%s does not begin with %s", path, googleStoragePrefix))
	}

	parts := strings.SplitN(strings.TrimPrefix(path, googleStoragePrefix), "/", 2)
	if len(parts) != 2 || parts[0] == "" || parts[1] == "" {
		return "", "", pfx.Err(fmt.Errorf("%s does not name both a bucket and an object", path))
	}

	return parts[0], parts[1], nil
}

// gcsObjectReader closes the storage client along with the object reader.
type gcsObjectReader struct {
	*storage.Reader
	client *storage.Client
}

func (g *gcsObjectReader) Close() error {
	rerr := g.Reader.Close()
	cerr := g.client.Close()
	if rerr != nil {
		return rerr
	}
	return cerr
}

// OpenGoogleStorage streams a gs:// object using application default
// credentials.
func OpenGoogleStorage(ctx context.Context, path string) (io.ReadCloser, error) {
	bucket, object, err := SplitGoogleStoragePath(path)
	if err != nil {
		return nil, pfx.Err(err)
	}

	client, err := storage.NewClient(ctx)
	if err != nil {
		return nil, pfx.Err(err)
	}

	r, err := client.Bucket(bucket).Object(object).NewReader(ctx)
	if err != nil {
		client.Close()
		return nil, pfx.Err(err)
	}

	return &gcsObjectReader{Reader: r, client: client}, nil
}
