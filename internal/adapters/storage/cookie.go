package storage

import (
	"context"
	"net/http"
	"net/url"
	"time"

	"sakeenah/internal/domain"
)

// CookieOptions controls the cookies written by a CookieStore.
type CookieOptions struct {
	Secure bool
	MaxAge time.Duration
}

// CookieStore is a per-request KeyValueStore over the visitor's cookies.
// Writes are sent as Set-Cookie headers and are visible to later reads within
// the same request.
type CookieStore struct {
	r       *http.Request
	w       http.ResponseWriter
	opts    CookieOptions
	pending map[string]*string
}

var _ domain.KeyValueStore = (*CookieStore)(nil)

// NewCookieStore binds a store to one request/response pair.
func NewCookieStore(w http.ResponseWriter, r *http.Request, opts CookieOptions) *CookieStore {
	return &CookieStore{r: r, w: w, opts: opts, pending: make(map[string]*string)}
}

func (s *CookieStore) Get(_ context.Context, key string) (string, bool, error) {
	if v, ok := s.pending[key]; ok {
		if v == nil {
			return "", false, nil
		}
		return *v, true, nil
	}
	c, err := s.r.Cookie(key)
	if err != nil {
		return "", false, nil
	}
	v, err := url.QueryUnescape(c.Value)
	if err != nil {
		// Unreadable cookies are treated as absent.
		return "", false, nil
	}
	return v, true, nil
}

func (s *CookieStore) Set(_ context.Context, key, value string) error {
	http.SetCookie(s.w, &http.Cookie{
		Name:     key,
		Value:    url.QueryEscape(value),
		Path:     "/",
		MaxAge:   int(s.opts.MaxAge / time.Second),
		HttpOnly: true,
		Secure:   s.opts.Secure,
		SameSite: http.SameSiteLaxMode,
	})
	s.pending[key] = &value
	return nil
}

func (s *CookieStore) Remove(_ context.Context, key string) error {
	if _, err := s.r.Cookie(key); err == nil || s.pending[key] != nil {
		http.SetCookie(s.w, &http.Cookie{
			Name:     key,
			Value:    "",
			Path:     "/",
			MaxAge:   -1,
			HttpOnly: true,
			Secure:   s.opts.Secure,
			SameSite: http.SameSiteLaxMode,
		})
	}
	s.pending[key] = nil
	return nil
}
