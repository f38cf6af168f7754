package models

// StakingAsset is a single staked position in a user's portfolio.
type StakingAsset struct {
	ID            string  `json:"id"`
	UserID        string  `json:"user_id"`
	AssetName     string  `json:"asset_name"`
	AssetSymbol   string  `json:"asset_symbol"`
	AmountStaked  float64 `json:"amount_staked"`
	CurrentValue  float64 `json:"current_value"`
	APY           float64 `json:"apy"`
	RewardsEarned float64 `json:"rewards_earned"`
	StakingDate   string  `json:"staking_date"`
	LogoURL       string  `json:"logo_url,omitempty"`
}

// StakingOverview aggregates a user's staking portfolio.
type StakingOverview struct {
	TotalStakedValue    float64 `json:"total_staked_value"`
	TotalRewardsEarned  float64 `json:"total_rewards_earned"`
	AverageAPY          float64 `json:"average_apy"`
	TotalAssets         int     `json:"total_assets"`
	PerformanceChange24 float64 `json:"performance_change_24h"`
}

// RewardHistoryEntry is one day's accrued reward for one asset.
type RewardHistoryEntry struct {
	Date        string  `json:"date"`
	Amount      float64 `json:"amount"`
	AssetSymbol string  `json:"asset_symbol"`
}

// PerformancePoint is one day's total portfolio value.
type PerformancePoint struct {
	Date  string  `json:"date"`
	Value float64 `json:"value"`
}
