package middleware

import (
	"bytes"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/oretina/assettrack/pkg/cache"
)

type bodyCapture struct {
	gin.ResponseWriter
	buf bytes.Buffer
}

func (w *bodyCapture) Write(b []byte) (int, error) {
	w.buf.Write(b)
	return w.ResponseWriter.Write(b)
}

// CacheResponse serves recent GET responses from the response cache, keyed by
// method+path. It wraps the handler explicitly instead of patching the
// serializer; only successful responses are stored.
func CacheResponse(store cache.ResponseCache) gin.HandlerFunc {
	return func(c *gin.Context) {
		if c.Request.Method != http.MethodGet {
			c.Next()
			return
		}

		key := c.Request.Method + ":" + c.Request.URL.RequestURI()
		if body, ok := store.Get(c.Request.Context(), key); ok {
			c.Data(http.StatusOK, "application/json; charset=utf-8", body)
			c.Abort()
			return
		}

		capture := &bodyCapture{ResponseWriter: c.Writer}
		c.Writer = capture

		c.Next()

		if c.Writer.Status() == http.StatusOK {
			store.Set(c.Request.Context(), key, capture.buf.Bytes())
		}
	}
}
