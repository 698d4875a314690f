package blobstore

import (
	"context"

	"golang.org/x/sync/errgroup"
	"golang.org/x/sync/semaphore"
	"golang.org/x/time/rate"
)

// UploaderConfig holds limits for bulk uploads.
type UploaderConfig struct {
	// Concurrency is the maximum number of in-flight Puts.
	// If 0, defaults to 4.
	Concurrency int64

	// RateBytesPerSec throttles upload throughput.
	// If 0, unlimited.
	RateBytesPerSec int64
}

// Uploader writes batches of artifacts to a Store with bounded
// concurrency and optional throughput throttling.
type Uploader struct {
	store   Store
	sem     *semaphore.Weighted
	limiter *rate.Limiter
}

// NewUploader creates an Uploader on top of the given store.
func NewUploader(store Store, cfg UploaderConfig) *Uploader {
	if cfg.Concurrency <= 0 {
		cfg.Concurrency = 4
	}

	u := &Uploader{
		store: store,
		sem:   semaphore.NewWeighted(cfg.Concurrency),
	}

	if cfg.RateBytesPerSec > 0 {
		u.limiter = rate.NewLimiter(rate.Limit(cfg.RateBytesPerSec), int(cfg.RateBytesPerSec))
	}

	return u
}

// Upload writes all named blobs. It blocks until every Put has
// completed or the first error cancels the remaining uploads.
func (u *Uploader) Upload(ctx context.Context, blobs map[string][]byte) error {
	g, ctx := errgroup.WithContext(ctx)

	for name, data := range blobs {
		if err := u.sem.Acquire(ctx, 1); err != nil {
			// A failed Put cancels ctx; prefer its error over the
			// acquire failure.
			if werr := g.Wait(); werr != nil {
				return werr
			}
			return err
		}

		g.Go(func() error {
			defer u.sem.Release(1)

			if err := u.throttle(ctx, len(data)); err != nil {
				return err
			}
			return u.store.Put(ctx, name, data)
		})
	}

	return g.Wait()
}

func (u *Uploader) throttle(ctx context.Context, n int) error {
	if u.limiter == nil || n == 0 {
		return nil
	}
	burst := u.limiter.Burst()
	for n > 0 {
		chunk := n
		if chunk > burst {
			chunk = burst
		}
		if err := u.limiter.WaitN(ctx, chunk); err != nil {
			return err
		}
		n -= chunk
	}
	return nil
}
