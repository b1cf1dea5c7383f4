package domain

// LateFeeSettings controls the flat late charge: the fee applies only when
// the return is more than GracePeriodHours whole hours past the scheduled
// dropoff instant.
type LateFeeSettings struct {
	Amount           int64 `json:"amount"`
	GracePeriodHours int   `json:"grace_period_hours"`
}

// ExtensionFeeSettings controls the flat extension charge: the fee applies
// when the return crosses into a later calendar day than scheduled, or when
// the return runs more than ThresholdHours whole hours past the scheduled
// dropoff instant.
type ExtensionFeeSettings struct {
	Amount         int64 `json:"amount"`
	ThresholdHours int   `json:"threshold_hours"`
}

// FeeSettings is immutable per calculation call. When no configuration row
// exists, DefaultFeeSettings applies.
type FeeSettings struct {
	LateFee      LateFeeSettings      `json:"late_fee"`
	ExtensionFee ExtensionFeeSettings `json:"extension_fee"`
}

// DefaultFeeSettings returns the hard-coded fallback used when fee
// configuration is absent.
func DefaultFeeSettings() FeeSettings {
	return FeeSettings{
		LateFee:      LateFeeSettings{Amount: 1000, GracePeriodHours: 2},
		ExtensionFee: ExtensionFeeSettings{Amount: 1000, ThresholdHours: 6},
	}
}
