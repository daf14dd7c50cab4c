package settings

import (
	"context"
	"log/slog"
	"time"
)

// Source is the part of Store the watcher needs.
type Source interface {
	Revision(ctx context.Context) (int64, error)
	Load(ctx context.Context) (Values, error)
}

// Watch polls src every interval and copies fresh values into s whenever
// the revision moves. It returns when ctx is done.
func Watch(ctx context.Context, src Source, s *Settings, interval time.Duration) {
	log := slog.Default().With("component", "watcher")

	last, err := src.Revision(ctx)
	if err != nil {
		log.Warn("read revision", "error", err)
	}

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
		}

		rev, err := src.Revision(ctx)
		if err != nil {
			log.Warn("read revision", "error", err)
			continue
		}
		if rev == last {
			continue
		}

		v, err := src.Load(ctx)
		if err != nil {
			log.Warn("reload settings", "error", err)
			continue
		}
		last = rev
		s.Set(v)
		log.Debug("settings reloaded", "revision", rev)
	}
}
