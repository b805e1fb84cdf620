package handlers

import (
	"fmt"
	"time"

	"github.com/alexedwards/scs/v2"
	"gorm.io/gorm"

	"ogcard/internal/stats"
)

const (
	defaultMaxAge       = 24 * time.Hour
	defaultSharedMaxAge = 7 * 24 * time.Hour
)

var (
	sessionManager *scs.SessionManager
	store          *stats.Store

	cacheControl   = formatCacheControl(defaultMaxAge, defaultSharedMaxAge)
	statsTokenHash string
)

// Configure installs the shared dependencies used by the HTTP handlers.
// A nil db disables render statistics.
func Configure(sm *scs.SessionManager, db *gorm.DB) {
	sessionManager = sm
	store = stats.NewStore(db)
}

// ConfigureCache sets the Cache-Control lifetimes sent with rendered cards.
// Non-positive values keep the defaults.
func ConfigureCache(maxAge, sharedMaxAge time.Duration) {
	if maxAge <= 0 {
		maxAge = defaultMaxAge
	}
	if sharedMaxAge <= 0 {
		sharedMaxAge = defaultSharedMaxAge
	}
	cacheControl = formatCacheControl(maxAge, sharedMaxAge)
}

// ConfigureStatsToken sets the bcrypt hash of the bearer token required by
// Stats. An empty hash leaves the endpoint open.
func ConfigureStatsToken(hash string) {
	statsTokenHash = hash
}

func formatCacheControl(maxAge, sharedMaxAge time.Duration) string {
	return fmt.Sprintf("public, max-age=%d, s-maxage=%d", int64(maxAge.Seconds()), int64(sharedMaxAge.Seconds()))
}
