package store

import (
	"io"
	"log"
	"os"
	"path/filepath"
	"time"
)

// StartDailySnapshots copies the file store's data directory into a
// timestamped folder under backupDir every day at the given hour, and prunes
// snapshots older than retention. Runs forever; call in a goroutine.
func StartDailySnapshots(dataDir, backupDir string, retention time.Duration, hour, min int) {
	for {
		now := time.Now()
		next := time.Date(now.Year(), now.Month(), now.Day(), hour, min, 0, 0, now.Location())
		if !next.After(now) {
			next = next.Add(24 * time.Hour)
		}
		log.Printf("⏳ Next store snapshot scheduled at: %s", next.Format("2006-01-02 15:04:05"))
		time.Sleep(next.Sub(now))

		dest := filepath.Join(backupDir, time.Now().Format("2006-01-02_15-04-05"))
		if err := copyDir(dataDir, dest); err != nil {
			log.Printf("❌ Store snapshot failed: %v", err)
		} else {
			log.Printf("✅ Store snapshot written to %s", dest)
		}

		pruneSnapshots(backupDir, retention)
	}
}

func copyDir(src, dest string) error {
	entries, err := os.ReadDir(src)
	if err != nil {
		return err
	}
	if err := os.MkdirAll(dest, 0755); err != nil {
		return err
	}
	for _, entry := range entries {
		srcPath := filepath.Join(src, entry.Name())
		destPath := filepath.Join(dest, entry.Name())
		if entry.IsDir() {
			if err := copyDir(srcPath, destPath); err != nil {
				return err
			}
			continue
		}
		if err := copyFile(srcPath, destPath); err != nil {
			return err
		}
	}
	return nil
}

func copyFile(src, dest string) error {
	in, err := os.Open(src)
	if err != nil {
		return err
	}
	defer in.Close()

	out, err := os.Create(dest)
	if err != nil {
		return err
	}
	defer out.Close()

	if _, err := io.Copy(out, in); err != nil {
		return err
	}
	return out.Sync()
}

func pruneSnapshots(backupDir string, retention time.Duration) {
	entries, err := os.ReadDir(backupDir)
	if err != nil {
		return
	}
	cutoff := time.Now().Add(-retention)
	for _, entry := range entries {
		if !entry.IsDir() {
			continue
		}
		path := filepath.Join(backupDir, entry.Name())
		info, err := os.Stat(path)
		if err != nil {
			continue
		}
		if info.ModTime().Before(cutoff) {
			if err := os.RemoveAll(path); err != nil {
				log.Printf("❌ Failed to remove old snapshot %s: %v", path, err)
			} else {
				log.Printf("🗑️ Removed old snapshot: %s", path)
			}
		}
	}
}
