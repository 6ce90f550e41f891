package scheduler

import (
	"log"
	"time"

	"gorm.io/gorm"

	authModel "tokobuku_backend/internals/features/users/auth/model"
)

// StartTokenCleanupScheduler bersihin token blacklist + refresh token yang
// sudah kadaluarsa secara periodik. Jalan di goroutine sendiri.
func StartTokenCleanupScheduler(db *gorm.DB, interval time.Duration) {
	if interval <= 0 {
		interval = time.Hour
	}
	go func() {
		ticker := time.NewTicker(interval)
		defer ticker.Stop()
		for range ticker.C {
			cleanupExpiredTokens(db)
		}
	}()
	log.Printf("🧹 Token cleanup scheduler aktif (interval %s)", interval)
}

func cleanupExpiredTokens(db *gorm.DB) {
	now := time.Now().UTC()

	res := db.Unscoped().
		Where("expired_at < ?", now).
		Delete(&authModel.TokenBlacklist{})
	if res.Error != nil {
		log.Printf("[WARN] cleanup blacklist gagal: %v", res.Error)
	} else if res.RowsAffected > 0 {
		log.Printf("🧹 %d blacklist token dihapus", res.RowsAffected)
	}

	res = db.Where("expires_at < ? OR revoked_at IS NOT NULL", now).
		Delete(&authModel.RefreshToken{})
	if res.Error != nil {
		log.Printf("[WARN] cleanup refresh token gagal: %v", res.Error)
	} else if res.RowsAffected > 0 {
		log.Printf("🧹 %d refresh token dihapus", res.RowsAffected)
	}
}
