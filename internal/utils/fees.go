package utils

import (
	"time"

	"rentdesk-backend/internal/domain"
)

// FeeBreakdown is the result of a fee computation at vehicle return.
type FeeBreakdown struct {
	LateFee      int64
	ExtensionFee int64
	HoursLate    int
	DayCrossed   bool
}

// WholeHoursBetween returns the number of whole hours from earlier to later,
// truncating fractional hours. Negative when later precedes earlier.
func WholeHoursBetween(later, earlier time.Time) int {
	return int(later.Sub(earlier).Hours())
}

// StartOfDay returns midnight of t's calendar day, in t's location.
func StartOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

// ComputeFees derives the late fee and extension fee for a return observed at
// actualReturn against a dropoff scheduled for scheduledEnd at dropoffTime.
// It is pure and total over well-formed inputs; callers substitute
// domain.DefaultFeeSettings() when configuration is absent.
//
// Late fee: charged only when the return is strictly more than the grace
// period in whole hours past the scheduled dropoff instant. Exactly at the
// boundary incurs no fee.
//
// Extension fee: charged when either trigger holds: the vehicle comes back
// on a later calendar day than scheduled, or the return runs strictly more
// than the threshold in whole hours past the scheduled dropoff instant.
func ComputeFees(scheduledEnd time.Time, dropoffTime domain.TimeOfDay, actualReturn time.Time, settings domain.FeeSettings) FeeBreakdown {
	expectedReturn := dropoffTime.On(scheduledEnd)
	actual := actualReturn.In(expectedReturn.Location())

	hoursLate := WholeHoursBetween(actual, expectedReturn)
	if hoursLate < 0 {
		hoursLate = 0
	}

	breakdown := FeeBreakdown{HoursLate: hoursLate}

	if hoursLate > settings.LateFee.GracePeriodHours {
		breakdown.LateFee = settings.LateFee.Amount
	}

	breakdown.DayCrossed = StartOfDay(actual).After(StartOfDay(expectedReturn))
	if breakdown.DayCrossed || hoursLate > settings.ExtensionFee.ThresholdHours {
		breakdown.ExtensionFee = settings.ExtensionFee.Amount
	}

	return breakdown
}
