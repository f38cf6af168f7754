package services

import (
	"math"
	"math/rand"
	"time"

	"github.com/google/uuid"

	"github.com/stakeboard/stakeboard/internal/server/models"
)

// defaultHistoryDays is used when a client omits or mangles the days param.
const defaultHistoryDays = 30

// stakableAsset is a catalog entry for the synthetic portfolio.
type stakableAsset struct {
	name   string
	symbol string
	logo   string
}

var stakableAssets = []stakableAsset{
	{"Ethereum", "ETH", "https://images.unsplash.com/photo-1622630998477-20aa696ecb05?w=100"},
	{"Polkadot", "DOT", "https://images.unsplash.com/photo-1639762681485-074b7f938ba0?w=100"},
	{"Cardano", "ADA", "https://images.unsplash.com/photo-1621416894569-0f39ed31d247?w=100"},
	{"Solana", "SOL", "https://images.unsplash.com/photo-1639762681057-408e52192e55?w=100"},
	{"Cosmos", "ATOM", "https://images.unsplash.com/photo-1640826514546-7d2b75c88886?w=100"},
}

// StakingService generates per-user synthetic staking data. There is no
// persistence: every call produces a fresh randomized portfolio with
// realistic shapes, which is all the dashboard needs.
type StakingService struct{}

func NewStakingService() *StakingService {
	return &StakingService{}
}

// Assets returns one staked position per catalog asset for the user.
func (s *StakingService) Assets(userID string) []*models.StakingAsset {
	now := time.Now().UTC()
	assets := make([]*models.StakingAsset, 0, len(stakableAssets))

	for _, a := range stakableAssets {
		amount := randFloat(10, 500)
		price := randFloat(50, 3000)
		apy := randFloat(4.5, 15.0)
		daysStaked := rand.Intn(336) + 30 // 30..365

		assets = append(assets, &models.StakingAsset{
			ID:            uuid.NewString(),
			UserID:        userID,
			AssetName:     a.name,
			AssetSymbol:   a.symbol,
			AmountStaked:  round2(amount),
			CurrentValue:  round2(amount * price),
			APY:           round2(apy),
			RewardsEarned: round2(amount * (apy / 100) * (float64(daysStaked) / 365)),
			StakingDate:   now.AddDate(0, 0, -daysStaked).Format(time.RFC3339),
			LogoURL:       a.logo,
		})
	}

	return assets
}

// Overview aggregates a freshly generated portfolio.
func (s *StakingService) Overview(userID string) *models.StakingOverview {
	assets := s.Assets(userID)

	var totalStaked, totalRewards, apySum float64
	for _, a := range assets {
		totalStaked += a.CurrentValue
		totalRewards += a.RewardsEarned
		apySum += a.APY
	}

	avgAPY := 0.0
	if len(assets) > 0 {
		avgAPY = apySum / float64(len(assets))
	}

	return &models.StakingOverview{
		TotalStakedValue:    round2(totalStaked),
		TotalRewardsEarned:  round2(totalRewards),
		AverageAPY:          round2(avgAPY),
		TotalAssets:         len(assets),
		PerformanceChange24: round2(randFloat(-5.0, 8.0)),
	}
}

// RewardsHistory returns one reward entry per day, oldest first.
func (s *StakingService) RewardsHistory(days int) []*models.RewardHistoryEntry {
	if days <= 0 {
		days = defaultHistoryDays
	}

	now := time.Now().UTC()
	history := make([]*models.RewardHistoryEntry, 0, days)

	for i := 0; i < days; i++ {
		date := now.AddDate(0, 0, -(days - i))
		history = append(history, &models.RewardHistoryEntry{
			Date:        date.Format("2006-01-02"),
			Amount:      round2(randFloat(0.5, 5.0)),
			AssetSymbol: stakableAssets[rand.Intn(len(stakableAssets))].symbol,
		})
	}

	return history
}

// Performance returns a daily portfolio-value series with mild volatility,
// oldest first, starting from a fixed baseline.
func (s *StakingService) Performance(days int) []*models.PerformancePoint {
	if days <= 0 {
		days = defaultHistoryDays
	}

	now := time.Now().UTC()
	value := 50000.0
	series := make([]*models.PerformancePoint, 0, days)

	for i := 0; i < days; i++ {
		date := now.AddDate(0, 0, -(days - i))
		// -2% to +3% daily change
		value *= 1 + randFloat(-0.02, 0.03)

		series = append(series, &models.PerformancePoint{
			Date:  date.Format("2006-01-02"),
			Value: round2(value),
		})
	}

	return series
}

func randFloat(min, max float64) float64 {
	return min + rand.Float64()*(max-min)
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
