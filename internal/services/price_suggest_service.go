package services

import (
	"context"
	"encoding/json"
	"log"
	"sort"
	"strings"
	"time"

	"github.com/redis/go-redis/v9"

	"auctionBack/internal/models"
	"auctionBack/internal/repositories"
)

const (
	priceCacheTTL    = time.Hour
	priceSampleLimit = 200
)

// PriceSuggestService recommends a start price from the settled prices of
// similar past auctions. Results are cached in redis per keyword set.
type PriceSuggestService struct {
	ItemRepo *repositories.ItemRepository
	Redis    *redis.Client
	ErrorLog *log.Logger
}

func (s *PriceSuggestService) Suggest(ctx context.Context, req models.PriceSuggestRequest) (models.PriceSuggestion, error) {
	keywords := ExtractKeywords(req.Title)
	if len(keywords) == 0 {
		return models.PriceSuggestion{Message: "title too short to match past auctions"}, nil
	}

	cacheKey := "price_suggest:" + strings.Join(keywords, ":")
	if s.Redis != nil {
		cached, err := s.Redis.Get(ctx, cacheKey).Result()
		if err == nil {
			var suggestion models.PriceSuggestion
			if err := json.Unmarshal([]byte(cached), &suggestion); err == nil {
				return suggestion, nil
			}
		} else if err != redis.Nil {
			s.ErrorLog.Printf("price suggest cache read failed: %v", err)
		}
	}

	var prices []int64
	for _, keyword := range keywords {
		found, err := s.ItemRepo.SettledPricesByKeyword(ctx, keyword, priceSampleLimit)
		if err != nil {
			return models.PriceSuggestion{}, err
		}
		prices = append(prices, found...)
		if len(prices) >= priceSampleLimit {
			prices = prices[:priceSampleLimit]
			break
		}
	}

	suggestion := AnalyzePrices(prices)

	if s.Redis != nil {
		payload, err := json.Marshal(suggestion)
		if err == nil {
			if err := s.Redis.Set(ctx, cacheKey, payload, priceCacheTTL).Err(); err != nil {
				s.ErrorLog.Printf("price suggest cache write failed: %v", err)
			}
		}
	}
	return suggestion, nil
}

// ExtractKeywords lowercases the title and keeps words long enough to be
// meaningful search terms.
func ExtractKeywords(title string) []string {
	var keywords []string
	for _, word := range strings.Fields(strings.ToLower(title)) {
		word = strings.Trim(word, ".,!?\"'()[]")
		if len(word) < 3 {
			continue
		}
		keywords = append(keywords, word)
	}
	return keywords
}

// AnalyzePrices builds a recommendation from settled prices of comparable
// auctions. The top and bottom 5% are trimmed before averaging so a single
// outlier sale does not skew the recommendation.
func AnalyzePrices(prices []int64) models.PriceSuggestion {
	if len(prices) == 0 {
		return models.PriceSuggestion{Message: "no comparable sales found"}
	}

	sorted := make([]int64, len(prices))
	copy(sorted, prices)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i] < sorted[j] })

	trim := len(sorted) / 20
	trimmed := sorted[trim : len(sorted)-trim]

	var sum int64
	for _, p := range trimmed {
		sum += p
	}
	average := sum / int64(len(trimmed))

	// recommend slightly under the average to attract bidders
	return models.PriceSuggestion{
		RecommendedPrice: average * 9 / 10,
		AveragePrice:     average,
		MinPrice:         sorted[0],
		MaxPrice:         sorted[len(sorted)-1],
		Count:            len(prices),
		Message:          "based on settled prices of similar auctions",
	}
}
