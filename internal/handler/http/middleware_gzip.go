package http

import (
	"compress/gzip"
	"io"
	"net/http"
	"strings"
	"sync"
)

// Compression state is pooled; journal payloads are small and frequent, so
// allocating a fresh gzip writer per request would dominate the handler cost.
var gzipWriterPool = sync.Pool{
	New: func() any { return gzip.NewWriter(nil) },
}

var gzipReaderPool = sync.Pool{
	New: func() any { return new(gzip.Reader) },
}

// withGZip handles compression on both sides of a request: a body sent with
// "Content-Encoding: gzip" is transparently decompressed before the handler
// reads it, and the response is compressed when the client's Accept-Encoding
// includes gzip.
func withGZip(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
		if strings.Contains(req.Header.Get("Content-Encoding"), "gzip") && req.Body != nil {
			if !decompressRequestBody(w, req) {
				return
			}
		}

		if !strings.Contains(req.Header.Get("Accept-Encoding"), "gzip") {
			next.ServeHTTP(w, req)
			return
		}

		gzipWriter := gzipWriterPool.Get().(*gzip.Writer)
		gzipWriter.Reset(w)

		next.ServeHTTP(&gzipResponseWriter{ResponseWriter: w, gzipWriter: gzipWriter}, req)

		gzipWriter.Close()
		gzipWriterPool.Put(gzipWriter)
	})
}

// decompressRequestBody swaps req.Body for a pooled gzip reader over the
// original body. On malformed gzip data it answers 400 and reports false;
// the request must not proceed to the handler.
func decompressRequestBody(w http.ResponseWriter, req *http.Request) bool {
	gzipReader := gzipReaderPool.Get().(*gzip.Reader)
	if err := gzipReader.Reset(req.Body); err != nil {
		gzipReaderPool.Put(gzipReader)
		http.Error(w, "Invalid gzip data", http.StatusBadRequest)
		return false
	}

	req.Body = &pooledBodyReader{
		Reader: gzipReader,
		release: func() {
			gzipReader.Close()
			gzipReaderPool.Put(gzipReader)
		},
	}
	req.Header.Del("Content-Encoding")

	return true
}

// pooledBodyReader returns its gzip reader to the pool when the request body
// is closed.
type pooledBodyReader struct {
	io.Reader
	release func()
}

func (p *pooledBodyReader) Close() error {
	if p.release != nil {
		p.release()
	}
	return nil
}

// gzipResponseWriter routes body writes through the gzip writer and stamps
// the Content-Encoding header when the status is written.
type gzipResponseWriter struct {
	http.ResponseWriter
	gzipWriter *gzip.Writer
}

func (w *gzipResponseWriter) WriteHeader(statusCode int) {
	w.Header().Set("Content-Encoding", "gzip")
	w.ResponseWriter.WriteHeader(statusCode)
}

func (w *gzipResponseWriter) Write(data []byte) (int, error) {
	return w.gzipWriter.Write(data)
}
