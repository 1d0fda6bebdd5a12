package http

import (
	"compress/gzip"
	"io"
	"net/http"
	"strings"
	"sync"

	"github.com/MKhiriev/go-delivery-board/internal/utils"
)

// compressionLevel is the gzip level of responses compressed by chi.
const compressionLevel = 5

var gzipReaderPool = sync.Pool{
	New: func() any {
		return new(gzip.Reader)
	},
}

// withGZipBody inflates request bodies sent with "Content-Encoding: gzip",
// so a large CSV export can be uploaded compressed. Response compression is
// left to chi's Compress middleware.
func withGZipBody(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Body == nil || !strings.Contains(r.Header.Get("Content-Encoding"), "gzip") {
			next.ServeHTTP(w, r)
			return
		}

		zr := gzipReaderPool.Get().(*gzip.Reader)
		if err := zr.Reset(r.Body); err != nil {
			gzipReaderPool.Put(zr)
			utils.WriteError(w, http.StatusBadRequest, "invalid gzip request body", nil)
			return
		}

		r.Body = &pooledGZipBody{Reader: zr, body: r.Body}
		r.Header.Del("Content-Encoding")
		r.ContentLength = -1

		next.ServeHTTP(w, r)
	})
}

// pooledGZipBody returns its reader to the pool once the body is closed.
type pooledGZipBody struct {
	*gzip.Reader
	body   io.Closer
	closed bool
}

func (b *pooledGZipBody) Close() error {
	if b.closed {
		return nil
	}
	b.closed = true

	b.Reader.Close()
	gzipReaderPool.Put(b.Reader)
	return b.body.Close()
}
