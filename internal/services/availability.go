package services

import (
	"time"

	"canteen/internal/models"
)

const clockLayout = "15:04"

// IsAvailableAt reports whether item can be ordered at the given instant.
// The admin-controlled available flag always wins; when both window bounds
// are set the item is orderable iff from <= now <= to, inclusive on both
// ends. Windows crossing midnight (e.g. 22:00-02:00) never match. The
// result depends on wall-clock time, so callers must re-evaluate on every
// request.
func IsAvailableAt(item *models.MenuItem, now time.Time) bool {
	if !item.Available {
		return false
	}
	if item.AvailableFrom == nil || item.AvailableTo == nil {
		return true
	}

	from, err := time.Parse(clockLayout, *item.AvailableFrom)
	if err != nil {
		return false
	}
	to, err := time.Parse(clockLayout, *item.AvailableTo)
	if err != nil {
		return false
	}
	cur, err := time.Parse(clockLayout, now.Format(clockLayout))
	if err != nil {
		return false
	}

	return !cur.Before(from) && !cur.After(to)
}
