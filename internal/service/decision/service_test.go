package decision

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/iamasit07/5-in-a-row/backend/internal/domain"
	"github.com/iamasit07/5-in-a-row/backend/internal/service/bot"
)

var errMiss = errors.New("miss")

type fakeCache struct {
	mu      sync.Mutex
	data    map[string]string
	sets    int
	failGet bool
}

func newFakeCache() *fakeCache {
	return &fakeCache{data: make(map[string]string)}
}

func (f *fakeCache) Get(_ context.Context, key string) (string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.failGet {
		return "", errors.New("connection refused")
	}
	v, ok := f.data[key]
	if !ok {
		return "", errMiss
	}
	return v, nil
}

func (f *fakeCache) Set(_ context.Context, key string, value string, _ time.Duration) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.data[key] = value
	f.sets++
	return nil
}

func TestDecideCachesDeterministicTiers(t *testing.T) {
	cache := newFakeCache()
	svc := NewService(cache, time.Minute, time.Second)
	req := Request{Board: domain.NewBoard(), Color: domain.ColorBlack, Tier: domain.Normal}

	first, err := svc.Decide(context.Background(), req)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if first.Cached || !first.OK || first.Move != (domain.Position{Row: 7, Col: 7}) {
		t.Fatalf("unexpected first result %+v", first)
	}
	if cache.sets != 1 {
		t.Fatalf("expected one cache write, got %d", cache.sets)
	}

	second, err := svc.Decide(context.Background(), req)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !second.Cached || second.Move != first.Move || second.Stage != bot.StageOpeningBook {
		t.Fatalf("expected cached opening book move, got %+v", second)
	}
}

func TestDecideSkipsCacheForRandomTiers(t *testing.T) {
	cache := newFakeCache()
	svc := NewService(cache, time.Minute, time.Second)

	for _, tier := range []domain.Tier{domain.Beginner, domain.Easy} {
		res, err := svc.Decide(context.Background(), Request{Board: domain.NewBoard(), Color: domain.ColorWhite, Tier: tier})
		if err != nil {
			t.Fatalf("%s: unexpected error: %v", tier, err)
		}
		if !res.OK || res.Cached {
			t.Fatalf("%s: unexpected result %+v", tier, res)
		}
	}
	if cache.sets != 0 {
		t.Fatalf("random tiers must not be cached, got %d writes", cache.sets)
	}
}

func TestDecideUsesStoredDecision(t *testing.T) {
	cache := newFakeCache()
	req := Request{Board: domain.NewBoard(), Color: domain.ColorBlack, Tier: domain.Expert}
	cache.data[CacheKey(req)] = `{"move":{"row":3,"col":4},"ok":true,"stage":"search"}`

	res, err := NewService(cache, time.Minute, 0).Decide(context.Background(), req)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !res.Cached || res.Move != (domain.Position{Row: 3, Col: 4}) {
		t.Fatalf("expected stored decision, got %+v", res)
	}
}

func TestDecideSurvivesCacheFailure(t *testing.T) {
	cache := newFakeCache()
	cache.failGet = true
	cache.data["ignored"] = "x"
	req := Request{Board: domain.NewBoard(), Color: domain.ColorBlack, Tier: domain.Hard}

	res, err := NewService(cache, time.Minute, time.Second).Decide(context.Background(), req)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if res.Cached || res.Move != (domain.Position{Row: 7, Col: 7}) {
		t.Fatalf("expected a fresh center move, got %+v", res)
	}
}

func TestDecideRejectsInvalidColor(t *testing.T) {
	svc := NewService(nil, 0, 0)
	_, err := svc.Decide(context.Background(), Request{Board: domain.NewBoard(), Tier: domain.Hard})
	if !errors.Is(err, domain.ErrInvalidColor) {
		t.Fatalf("expected ErrInvalidColor, got %v", err)
	}

	_, err = svc.Decide(context.Background(), Request{Board: domain.NewBoard(), Color: domain.ColorBlack, Tier: domain.Tier(9)})
	if !errors.Is(err, domain.ErrUnknownTier) {
		t.Fatalf("expected ErrUnknownTier, got %v", err)
	}
}

func TestCacheKeyDependsOnPosition(t *testing.T) {
	a := Request{Board: domain.NewBoard(), Color: domain.ColorBlack, Tier: domain.Hard}
	b := a
	b.Board = domain.Place(b.Board, 7, 7, domain.ColorWhite)
	b.History = []domain.Position{{Row: 7, Col: 7}}
	c := a
	c.Color = domain.ColorWhite

	if CacheKey(a) == CacheKey(b) || CacheKey(a) == CacheKey(c) {
		t.Fatalf("cache keys collide: %s %s %s", CacheKey(a), CacheKey(b), CacheKey(c))
	}
}

func TestCacheKeyUsesTrackedHash(t *testing.T) {
	g := domain.NewGame()
	for _, mv := range []struct {
		color domain.Color
		pos   domain.Position
	}{
		{domain.ColorBlack, domain.Position{Row: 7, Col: 7}},
		{domain.ColorWhite, domain.Position{Row: 7, Col: 8}},
		{domain.ColorBlack, domain.Position{Row: 8, Col: 8}},
	} {
		if err := g.MakeMove(mv.color, mv.pos); err != nil {
			t.Fatalf("move %v: %v", mv.pos, err)
		}
	}

	tracked := Request{Board: g.Board, History: g.HistoryCopy(), Color: domain.ColorWhite, Tier: domain.Hard, Hash: g.Hash}
	computed := tracked
	computed.Hash = 0
	if CacheKey(tracked) != CacheKey(computed) {
		t.Fatalf("tracked and computed keys differ: %s vs %s", CacheKey(tracked), CacheKey(computed))
	}
}
