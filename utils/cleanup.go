package utils

import (
	"fmt"
	"log"
	"os"
	"path/filepath"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/robfig/cron/v3"
)

// Retry configuration
const maxRetries = 3
const retryDelay = 2 * time.Minute

// CleanupExpiredFiles removes a generated export older than the TTL.
func CleanupExpiredFiles(filePath string, ttl time.Duration) error {
	info, err := os.Stat(filePath)
	if err != nil {
		return fmt.Errorf("error checking file: %v", err)
	}

	if time.Since(info.ModTime()) > ttl {
		if err := os.Remove(filePath); err != nil {
			return fmt.Errorf("error deleting expired file: %v", err)
		}
		log.Printf("expired export %s deleted", filePath)
	}
	return nil
}

// CleanupAllExpired sweeps old Excel exports and drops the listing caches so
// stale pages cannot outlive their TTL misconfiguration.
func CleanupAllExpired(fileTTL time.Duration, redisClient *redis.Client) error {
	files, err := os.ReadDir(exportDir)
	if err != nil {
		if os.IsNotExist(err) {
			return nil // nothing exported yet
		}
		return fmt.Errorf("error reading files directory: %v", err)
	}

	for _, file := range files {
		if file.IsDir() {
			continue
		}
		if err := CleanupExpiredFiles(filepath.Join(exportDir, file.Name()), fileTTL); err != nil {
			log.Println("Error cleaning up file:", err)
		}
	}

	for _, resource := range []string{"jobcards", "customers"} {
		if err := InvalidateCache(redisClient, resource); err != nil {
			return fmt.Errorf("error cleaning up cache: %v", err)
		}
	}

	return nil
}

// RunScheduledCleanup runs cleanup daily at 1 AM with retries, logging
// failures once retries are exhausted.
func RunScheduledCleanup(redisClient *redis.Client) {
	c := cron.New()

	c.AddFunc("0 1 * * *", func() {
		log.Println("running scheduled cleanup task...")

		var retries int
		for retries < maxRetries {
			err := CleanupAllExpired(24*time.Hour, redisClient)
			if err == nil {
				log.Println("cleanup successful")
				return
			}
			log.Printf("cleanup failed: %v", err)
			retries++
			time.Sleep(retryDelay)
		}

		log.Printf("cleanup task failed after %d retries. please check the system.", retries)
	})

	c.Start()

	// Keep the goroutine alive so cron jobs keep firing
	select {}
}
