package services

import (
	"reflect"
	"testing"
)

func TestExtractKeywords(t *testing.T) {
	got := ExtractKeywords("Vintage Camera, 35mm!")
	want := []string{"vintage", "camera", "35mm"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("ExtractKeywords() = %v, want %v", got, want)
	}

	if got := ExtractKeywords("a an"); got != nil {
		t.Errorf("short words should be dropped, got %v", got)
	}
}

func TestAnalyzePricesEmpty(t *testing.T) {
	suggestion := AnalyzePrices(nil)
	if suggestion.Count != 0 {
		t.Errorf("count = %d, want 0", suggestion.Count)
	}
	if suggestion.RecommendedPrice != 0 {
		t.Errorf("recommended price = %d, want 0", suggestion.RecommendedPrice)
	}
	if suggestion.Message == "" {
		t.Error("expected a message for the empty sample")
	}
}

func TestAnalyzePrices(t *testing.T) {
	suggestion := AnalyzePrices([]int64{1000, 1200, 1400})

	if suggestion.Count != 3 {
		t.Errorf("count = %d, want 3", suggestion.Count)
	}
	if suggestion.AveragePrice != 1200 {
		t.Errorf("average price = %d, want 1200", suggestion.AveragePrice)
	}
	if suggestion.RecommendedPrice != 1080 {
		t.Errorf("recommended price = %d, want 1080 (90%% of average)", suggestion.RecommendedPrice)
	}
	if suggestion.MinPrice != 1000 || suggestion.MaxPrice != 1400 {
		t.Errorf("min/max = %d/%d, want 1000/1400", suggestion.MinPrice, suggestion.MaxPrice)
	}
}

func TestAnalyzePricesTrimsOutliers(t *testing.T) {
	prices := make([]int64, 0, 40)
	for i := 0; i < 38; i++ {
		prices = append(prices, 1000)
	}
	// one absurdly low and one absurdly high sale
	prices = append(prices, 1, 1000000)

	suggestion := AnalyzePrices(prices)
	if suggestion.AveragePrice != 1000 {
		t.Errorf("average price = %d, want 1000 after trimming outliers", suggestion.AveragePrice)
	}
	if suggestion.RecommendedPrice != 900 {
		t.Errorf("recommended price = %d, want 900", suggestion.RecommendedPrice)
	}
	if suggestion.MinPrice != 1 || suggestion.MaxPrice != 1000000 {
		t.Errorf("min/max should report the untrimmed range, got %d/%d", suggestion.MinPrice, suggestion.MaxPrice)
	}
}
