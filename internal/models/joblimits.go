package models

// JobLimits is the per-tier job-posting quota configuration.
type JobLimits struct {
	FreeTierLimit     int `json:"freeTierLimit"`
	StandardTierLimit int `json:"standardTierLimit"`
	PremiumTierLimit  int `json:"premiumTierLimit"`
	// WindowDays is the rolling window the limits apply over.
	WindowDays int `json:"windowDays"`
}
