package utils

import (
	"fmt"
	"math"
	"time"
)

const (
	million  = 1_000_000
	thousand = 1_000

	day = 24 * time.Hour

	// DateLayout mirrors the en-US short date used for older videos.
	DateLayout = "1/2/2006"
)

func GetCurrentTime() time.Time {
	return time.Now().UTC()
}

// FormatCount renders count with a magnitude suffix followed by unit, e.g. "1.2M views".
func FormatCount(count int64, unit string) string {
	switch {
	case count >= million:
		return fmt.Sprintf("%.1fM %s", roundOneDecimal(float64(count)/million), unit)
	case count >= thousand:
		return fmt.Sprintf("%.1fK %s", roundOneDecimal(float64(count)/thousand), unit)
	default:
		return fmt.Sprintf("%d %s", count, unit)
	}
}

func FormatViewCount(count int64) string {
	return FormatCount(count, "views")
}

// roundOneDecimal rounds half away from zero so 1.25 becomes 1.3 rather than 1.2.
func roundOneDecimal(v float64) float64 {
	return math.Round(v*10) / 10
}

// FormatPublishedDate describes publishedAt relative to now. Elapsed time is counted in
// whole days rounded up; anything a week or older is shown as a date.
func FormatPublishedDate(publishedAt, now time.Time) string {
	elapsed := now.Sub(publishedAt)
	if elapsed < 0 {
		elapsed = -elapsed
	}
	days := int64(math.Ceil(float64(elapsed) / float64(day)))

	switch {
	case days == 1:
		return "1 day ago"
	case days < 7:
		return fmt.Sprintf("%d days ago", days)
	default:
		return publishedAt.Local().Format(DateLayout)
	}
}
