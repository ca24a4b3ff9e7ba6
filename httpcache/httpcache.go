// Package httpcache caches successful HTTP responses on disk for the day.
package httpcache

import (
	"bufio"
	"bytes"
	"crypto/sha1"
	"fmt"
	"net/http"
	"net/http/httputil"
	"os"
	"path/filepath"

	"github.com/etnz/portfolio-lots/date"
	"github.com/rs/zerolog/log"
)

// Transport implements a simple disk cache for HTTP responses.
//
// Keys include the current day, so that cached entries expire every day.
type Transport struct {
	base   http.RoundTripper
	dir    string
	prefix string
	today  func() date.Date
}

// New returns a cache in dir, os.TempDir() if empty, over base,
// http.DefaultTransport if nil. Cache files are named after prefix.
func New(base http.RoundTripper, dir, prefix string) *Transport {
	if base == nil {
		base = http.DefaultTransport
	}
	if dir == "" {
		dir = os.TempDir()
	}
	return &Transport{base: base, dir: dir, prefix: prefix, today: date.Today}
}

// key returns the cache key of req. The api key is part of the URL so a
// different key never shares entries.
func (c *Transport) key(req *http.Request) string {
	key := fmt.Sprintf("%s %s %s", c.today(), req.Method, req.URL.String())
	return fmt.Sprintf("%s-%x", c.prefix, sha1.Sum([]byte(key)))
}

// RoundTrip implements the http.RoundTripper interface. It checks for a cached
// response on disk first. If none is found, it proceeds with the actual HTTP
// request and caches the new response if it's successful.
func (c *Transport) RoundTrip(req *http.Request) (resp *http.Response, err error) {
	key := c.key(req)

	cachedResp, err := c.get(key, req)
	if err == nil { // Cache hit
		log.Debug().Str("url", req.URL.Path).Str("key", key).Msg("cache hit")
		return cachedResp, nil
	}

	resp, err = c.base.RoundTrip(req)
	if err != nil {
		return nil, err
	}
	log.Debug().Str("method", req.Method).Str("host", req.URL.Host).Str("path", req.URL.Path).Str("status", resp.Status).Msg("http")
	if resp.StatusCode >= 300 {
		return resp, nil
	}
	// otherwise attempt to store it in cache
	if err := c.put(key, resp); err != nil {
		log.Warn().Err(err).Msg("cache write error (ignored)")
	}
	return resp, nil
}

// get retrieves a cached response from disk
func (c *Transport) get(key string, req *http.Request) (*http.Response, error) {
	content, err := os.ReadFile(filepath.Join(c.dir, key))
	if err != nil {
		return nil, err
	}
	return http.ReadResponse(bufio.NewReader(bytes.NewReader(content)), req)
}

// put stores a response to disk cache. The response body remains readable.
func (c *Transport) put(key string, resp *http.Response) error {
	content, err := httputil.DumpResponse(resp, true)
	if err != nil {
		return err
	}
	return os.WriteFile(filepath.Join(c.dir, key), content, 0o644)
}
