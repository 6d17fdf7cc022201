package api

import (
	"context"
	"log"
	"os"
	"path/filepath"
	"time"
)

const (
	DefaultUploadTTL     = time.Hour
	DefaultSweepInterval = 15 * time.Minute
)

// StartUploadSweeper removes files in dir older than ttl on a fixed interval.
// The pipeline deletes every temp file in-line; the sweeper only catches
// files orphaned by a crash between save and release.
func StartUploadSweeper(ctx context.Context, dir string, ttl, interval time.Duration) {
	if ttl <= 0 {
		ttl = DefaultUploadTTL
	}
	if interval <= 0 {
		interval = DefaultSweepInterval
	}
	go sweepLoop(ctx, dir, ttl, interval)
}

func sweepLoop(ctx context.Context, dir string, ttl, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if err := sweepExpired(dir, ttl); err != nil {
				log.Printf("sweep upload dir error: %v", err)
			}
		}
	}
}

func sweepExpired(dir string, ttl time.Duration) error {
	entries, err := os.ReadDir(dir)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return err
	}

	cutoff := time.Now().Add(-ttl)
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		info, err := entry.Info()
		if err != nil {
			continue
		}
		if info.ModTime().After(cutoff) {
			continue
		}
		path := filepath.Join(dir, entry.Name())
		if err := os.Remove(path); err != nil && !os.IsNotExist(err) {
			log.Printf("remove orphaned upload %s failed: %v", path, err)
		}
	}
	return nil
}
