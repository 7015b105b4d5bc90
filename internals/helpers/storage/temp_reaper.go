package storage

import (
	"log"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/robfig/cron/v3"
)

func getEnvOrDefault(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func getEnvInt(key string, def int) int {
	v := os.Getenv(key)
	if v == "" {
		return def
	}
	i, err := strconv.Atoi(v)
	if err != nil {
		return def
	}
	return i
}

// StartTempReaperCron menjalankan penyapu file tmp yang ditinggal client
// (upload putus sebelum commit). Best effort; kebenaran sistem tidak
// bergantung pada job ini.
func StartTempReaperCron(s *LocalStorage) {
	schedule := getEnvOrDefault("TEMP_REAPER_SCHEDULE", "*/30 * * * *")
	maxAge := time.Duration(getEnvInt("TEMP_REAPER_MAX_AGE_MINUTES", 60)) * time.Minute

	c := cron.New(cron.WithChain(cron.SkipIfStillRunning(cron.DefaultLogger)))
	_, err := c.AddFunc(schedule, func() {
		reapOnce(s, maxAge)
	})
	if err != nil {
		log.Printf("[TEMP-REAPER] schedule %q invalid: %v", schedule, err)
		return
	}
	c.Start()
	log.Printf("[TEMP-REAPER] aktif, schedule=%q maxAge=%s", schedule, maxAge)
}

func reapOnce(s *LocalStorage, maxAge time.Duration) {
	dir := filepath.Join(s.Root, TempDirName)
	entries, err := os.ReadDir(dir)
	if err != nil {
		if !os.IsNotExist(err) {
			log.Printf("[TEMP-REAPER] baca dir gagal: %v", err)
		}
		return
	}

	cutoff := time.Now().Add(-maxAge)
	removed := 0
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		info, err := e.Info()
		if err != nil {
			continue
		}
		if info.ModTime().Before(cutoff) {
			if err := os.Remove(filepath.Join(dir, e.Name())); err == nil {
				removed++
			}
		}
	}
	if removed > 0 {
		log.Printf("[TEMP-REAPER] %d file tmp kadaluarsa dihapus", removed)
	}
}
