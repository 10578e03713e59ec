package gotld

import (
	"context"
	"sync/atomic"

	"golang.org/x/sync/singleflight"
)

// Process-wide default manager. Init publishes it atomically;
// concurrent Init calls are collapsed into a single load whose result
// all callers observe. A later Init fully replaces the manager.
var (
	defaultManager atomic.Pointer[FQDN]
	initGroup      singleflight.Group
)

// Init builds and initializes the package-level manager. It must
// complete successfully before GetFQDN, Extract or ValidateOrigin are
// usable. Calling it again re-downloads the list and swaps the manager
// in one step; readers never observe a partially loaded state.
func Init(ctx context.Context, opts ...Option) error {
	_, err, _ := initGroup.Do("init", func() (interface{}, error) {
		f, err := New(opts...)
		if err != nil {
			return nil, err
		}
		if err := f.Init(ctx); err != nil {
			return nil, err
		}
		defaultManager.Store(f)
		return f, nil
	})
	return err
}

// GetFQDN returns the registrable domain of a URL or hostname using the
// package-level manager.
func GetFQDN(srcURL string) (string, error) {
	f := defaultManager.Load()
	if f == nil {
		return "", ErrNotInitialized
	}
	return f.GetFQDN(srcURL)
}

// Extract returns the full match result using the package-level manager.
func Extract(srcURL string) (Result, error) {
	f := defaultManager.Load()
	if f == nil {
		return Result{}, ErrNotInitialized
	}
	return f.Extract(srcURL)
}

// ValidateOrigin reports whether the origin is acceptable against the
// allowed list. Any failure, including an uninitialized manager for
// hostname origins, resolves to false.
func ValidateOrigin(origin string, allowed []string) bool {
	f := defaultManager.Load()
	if f == nil {
		return false
	}
	return f.ValidateOrigin(origin, allowed)
}
