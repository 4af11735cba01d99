// README: Hotel service tests: rating filter, defaults, caching, summaries.
package hotels

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/Seymakarakurt/TravelGuideWithoutKi/internal/types"
)

func TestSearch_FiltersLowRatings(t *testing.T) {
	svc := NewService(NewMemoryCache())
	res, err := svc.Search(context.Background(), Query{Location: "Berlin"})
	if err != nil {
		t.Fatal(err)
	}
	for _, h := range res.Hotels {
		if h.Rating != 0 && h.Rating < 3.5 {
			t.Fatalf("hotel with rating %.1f survived the filter", h.Rating)
		}
	}
}

func TestSearch_PriceAscending(t *testing.T) {
	svc := NewService(NewMemoryCache())
	res, err := svc.Search(context.Background(), Query{Location: "Hamburg"})
	if err != nil {
		t.Fatal(err)
	}
	for i := 1; i < len(res.Hotels); i++ {
		if res.Hotels[i].Price.Amount < res.Hotels[i-1].Price.Amount {
			t.Fatalf("hotels not price-ascending: %v", res.Hotels)
		}
	}
}

func TestSearch_DefaultsStayWindow(t *testing.T) {
	cache := NewMemoryCache()
	svc := NewService(cache)
	if _, err := svc.Search(context.Background(), Query{Location: "Rom"}); err != nil {
		t.Fatal(err)
	}

	checkIn := time.Now().AddDate(0, 0, 7).Format("2006-01-02")
	checkOut := time.Now().AddDate(0, 0, 14).Format("2006-01-02")
	key := "rom_" + checkIn + "_" + checkOut + "_1"
	if _, ok := cache.Get(context.Background(), key); !ok {
		t.Fatalf("expected cache entry under default stay window key %q", key)
	}
}

func TestSearch_CacheHitKeepsSource(t *testing.T) {
	svc := NewService(NewMemoryCache())
	q := Query{Location: "Paris", CheckIn: "2026-10-01", CheckOut: "2026-10-08", Guests: 2}

	first, err := svc.Search(context.Background(), q)
	if err != nil {
		t.Fatal(err)
	}
	if first.Source != SourceSimulated {
		t.Fatalf("first source = %s, want %s", first.Source, SourceSimulated)
	}

	second, err := svc.Search(context.Background(), q)
	if err != nil {
		t.Fatal(err)
	}
	if second.Source != SourceCache {
		t.Fatalf("second source = %s, want %s", second.Source, SourceCache)
	}
}

func TestSearch_BudgetFilter(t *testing.T) {
	svc := NewService(NewMemoryCache())
	res, err := svc.Search(context.Background(), Query{Location: "Madrid", Budget: 1})
	if err != nil {
		t.Fatal(err)
	}
	for _, h := range res.Hotels {
		if h.Price.Amount > 1 {
			t.Fatalf("hotel above budget survived the filter: %d EUR", h.Price.Amount)
		}
	}
}

func TestSummary_EmptyResult(t *testing.T) {
	svc := NewService(NewMemoryCache())
	got := svc.Summary(Result{}, Query{Location: "Berlin"})
	if got != "Keine gut bewerteten Hotels gefunden." {
		t.Fatalf("empty summary = %q", got)
	}
}

func TestSummary_CapsAtFiveHotels(t *testing.T) {
	svc := NewService(NewMemoryCache())
	list := make([]Hotel, 9)
	for i := range list {
		list[i] = Hotel{Name: "H", Price: types.EUR(int64(80 + i)), Rating: 4.0}
	}
	summary := svc.Summary(Result{Hotels: list, Source: SourceCache}, Query{Location: "Wien"})
	if strings.Contains(summary, "6. ") {
		t.Fatalf("summary lists more than five hotels:\n%s", summary)
	}
}
