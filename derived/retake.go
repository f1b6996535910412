package derived

import (
	"time"

	"github.com/lumenlearn/lumen-go/models"
)

// RetakeEligibility reports whether a user may attempt an assessment again.
// Eligible when no prior attempt exists or when the time since the most
// recent attempt exceeds the cooldown. When ineligible, waitMinutes is the
// remaining wait rounded up.
func RetakeEligibility(attempts []models.AssessmentAttempt, cooldownHours int, now time.Time) (eligible bool, waitMinutes int) {
	if len(attempts) == 0 || cooldownHours <= 0 {
		return true, 0
	}

	var latest time.Time
	for _, attempt := range attempts {
		if attempt.CompletedAt.After(latest) {
			latest = attempt.CompletedAt
		}
	}

	cooldown := time.Duration(cooldownHours) * time.Hour
	elapsed := now.Sub(latest)
	if elapsed > cooldown {
		return true, 0
	}

	remaining := cooldown - elapsed
	return false, int((remaining + time.Minute - 1) / time.Minute)
}
