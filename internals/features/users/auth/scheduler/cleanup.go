package scheduler

import (
	"log"
	"time"

	"gorm.io/gorm"

	authRepo "kostku_backend/internals/features/users/auth/repository"
)

// StartBlacklistCleanup menghapus token blacklist yang sudah kedaluwarsa
// setiap 24 jam sekali, supaya tabel token_blacklist tidak membengkak.
func StartBlacklistCleanup(db *gorm.DB) {
	go func() {
		ticker := time.NewTicker(24 * time.Hour)
		defer ticker.Stop()
		for range ticker.C {
			deleted, err := authRepo.CleanupExpiredBlacklist(db)
			if err != nil {
				log.Printf("[SCHEDULER] cleanup token blacklist gagal: %v", err)
				continue
			}
			if deleted > 0 {
				log.Printf("[SCHEDULER] %d token blacklist kedaluwarsa dihapus", deleted)
			}
		}
	}()
}
