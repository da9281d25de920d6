package middleware

import (
	"crypto/md5"
	"encoding/hex"
	"encoding/json"
	"io"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
)

// CacheEntry represents a cached response
type CacheEntry struct {
	Data      interface{}
	ExpiresAt time.Time
}

// ResponseCache manages cached responses
type ResponseCache struct {
	cache    map[string]*CacheEntry
	mu       sync.RWMutex
	ttl      time.Duration
	stop     chan struct{}
	stopOnce sync.Once
}

// NewResponseCache creates a new response cache
func NewResponseCache(ttl time.Duration) *ResponseCache {
	rc := &ResponseCache{
		cache: make(map[string]*CacheEntry),
		ttl:   ttl,
		stop:  make(chan struct{}),
	}

	go rc.cleanup()

	return rc
}

// Stop terminates the cleanup goroutine. Safe to call more than once.
func (rc *ResponseCache) Stop() {
	rc.stopOnce.Do(func() {
		close(rc.stop)
	})
}

// Cache middleware for caching responses. GET responses and scoring
// POST responses are cacheable; scoring is deterministic for a given
// body, so identical requests can share a result.
func (rc *ResponseCache) Cache() gin.HandlerFunc {
	return func(c *gin.Context) {
		if c.Request.Method != "GET" && !isScoringEndpoint(c.Request.URL.Path) {
			c.Next()
			return
		}

		key := rc.generateKey(c)

		rc.mu.RLock()
		entry, exists := rc.cache[key]
		rc.mu.RUnlock()

		if exists && time.Now().Before(entry.ExpiresAt) {
			c.JSON(200, entry.Data)
			c.Abort()
			return
		}

		writer := &responseWriter{
			ResponseWriter: c.Writer,
			body:           []byte{},
		}
		c.Writer = writer

		c.Next()

		if c.Writer.Status() == 200 && len(writer.body) > 0 {
			var data interface{}
			if err := json.Unmarshal(writer.body, &data); err == nil {
				rc.mu.Lock()
				rc.cache[key] = &CacheEntry{
					Data:      data,
					ExpiresAt: time.Now().Add(rc.ttl),
				}
				rc.mu.Unlock()
			}
		}
	}
}

// generateKey creates a cache key from request
func (rc *ResponseCache) generateKey(c *gin.Context) string {
	h := md5.New()
	h.Write([]byte(c.Request.Method))
	h.Write([]byte(c.Request.URL.Path))
	h.Write([]byte(c.Request.URL.RawQuery))

	// POST bodies distinguish otherwise identical requests
	if c.Request.Method == "POST" {
		body, _ := c.GetRawData()
		h.Write(body)
		c.Request.Body = &cachedBody{bytes: body}
	}

	return hex.EncodeToString(h.Sum(nil))
}

// cleanup removes expired cache entries until Stop is called.
func (rc *ResponseCache) cleanup() {
	ticker := time.NewTicker(5 * time.Minute)
	defer ticker.Stop()
	for {
		select {
		case <-ticker.C:
			rc.mu.Lock()
			now := time.Now()
			for key, entry := range rc.cache {
				if now.After(entry.ExpiresAt) {
					delete(rc.cache, key)
				}
			}
			rc.mu.Unlock()
		case <-rc.stop:
			return
		}
	}
}

// responseWriter wraps gin.ResponseWriter to capture response body
type responseWriter struct {
	gin.ResponseWriter
	body []byte
}

func (w *responseWriter) Write(b []byte) (int, error) {
	w.body = append(w.body, b...)
	return w.ResponseWriter.Write(b)
}

// cachedBody implements io.ReadCloser
type cachedBody struct {
	bytes []byte
	pos   int
}

func (cb *cachedBody) Read(p []byte) (n int, err error) {
	if cb.pos >= len(cb.bytes) {
		return 0, io.EOF
	}
	n = copy(p, cb.bytes[cb.pos:])
	cb.pos += n
	return n, nil
}

func (cb *cachedBody) Close() error {
	return nil
}

// isScoringEndpoint reports whether the path is a cacheable POST endpoint.
func isScoringEndpoint(path string) bool {
	return path == "/api/jobs/score"
}

// CreateCaches builds the caches used by the router. Scoring results live
// longer than general responses since listings change slowly.
func CreateCaches() map[string]*ResponseCache {
	return map[string]*ResponseCache{
		"scoring": NewResponseCache(15 * time.Minute),
		"general": NewResponseCache(5 * time.Minute),
	}
}
