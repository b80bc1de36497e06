package http

import (
	"compress/gzip"
	"net/http"
	"strings"
)

// withGunzip transparently decodes request bodies sent with
// Content-Encoding: gzip. Response compression is done by chi's Compress.
func withGunzip(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Body == nil || !strings.Contains(r.Header.Get("Content-Encoding"), "gzip") {
			next.ServeHTTP(w, r)
			return
		}

		zr, err := gzip.NewReader(r.Body)
		if err != nil {
			writeError(w, r, ErrInvalidJSON)
			return
		}
		defer zr.Close()

		r.Body = gunzipBody{Reader: zr, orig: r.Body}
		r.Header.Del("Content-Encoding")
		r.ContentLength = -1

		next.ServeHTTP(w, r)
	})
}

type gunzipBody struct {
	*gzip.Reader
	orig interface{ Close() error }
}

func (b gunzipBody) Close() error {
	_ = b.Reader.Close()
	return b.orig.Close()
}
