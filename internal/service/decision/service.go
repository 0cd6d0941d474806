package decision

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/iamasit07/5-in-a-row/backend/internal/domain"
	"github.com/iamasit07/5-in-a-row/backend/internal/service/bot"
)

// Cache is the subset of the Redis cache the service needs.
type Cache interface {
	Get(ctx context.Context, key string) (string, error)
	Set(ctx context.Context, key string, value string, expiration time.Duration) error
}

type Request struct {
	Board   domain.Board
	History []domain.Position
	Color   domain.Color
	Tier    domain.Tier
	// Hash is the Zobrist hash of Board when the caller already tracks it;
	// zero means it is computed here.
	Hash    uint64
}

type Result struct {
	Move     domain.Position `json:"move"`
	OK       bool            `json:"ok"`
	Stage    bot.Stage       `json:"stage"`
	Cached   bool            `json:"cached"`
	TimedOut bool            `json:"timedOut"`
	Nodes    int             `json:"nodes"`
	Elapsed  time.Duration   `json:"elapsed"`
}

// Service asks the engine for moves, bounding each search and reusing
// answers for positions already seen by a deterministic tier.
type Service struct {
	cache   Cache
	ttl     time.Duration
	timeout time.Duration
}

// NewService creates the decision service. cache may be nil.
func NewService(cache Cache, ttl, timeout time.Duration) *Service {
	return &Service{cache: cache, ttl: ttl, timeout: timeout}
}

func CacheKey(req Request) string {
	hash := req.Hash
	if hash == 0 {
		hash = domain.Hash(&req.Board)
	}
	return fmt.Sprintf("decision:%s:%s:%d:%016x", req.Tier, req.Color, len(req.History), hash)
}

func (s *Service) Decide(ctx context.Context, req Request) (Result, error) {
	engine, err := bot.NewEngine(req.Tier, req.Color)
	if err != nil {
		return Result{}, fmt.Errorf("decision: %w", err)
	}

	cacheable := s.cache != nil && engine.Deterministic()
	key := ""
	if cacheable {
		key = CacheKey(req)
		if res, ok := s.lookup(ctx, key); ok {
			return res, nil
		}
	}

	if s.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, s.timeout)
		defer cancel()
	}

	d := engine.Analyze(ctx, req.Board, req.History)
	res := Result{
		Move:     d.Move,
		OK:       d.OK,
		Stage:    d.Stage,
		TimedOut: d.TimedOut,
		Nodes:    d.Nodes,
		Elapsed:  d.Elapsed,
	}

	log.Debug().
		Str("component", "engine").
		Str("tier", req.Tier.String()).
		Str("color", req.Color.String()).
		Str("stage", string(d.Stage)).
		Str("move", d.Move.String()).
		Int("nodes", d.Nodes).
		Int("searched", d.Searched).
		Bool("timed_out", d.TimedOut).
		Dur("elapsed", d.Elapsed).
		Msg("decision")

	// a truncated search is not the tier's real answer
	if cacheable && d.OK && !d.TimedOut {
		s.store(ctx, key, res)
	}
	return res, nil
}

func (s *Service) lookup(ctx context.Context, key string) (Result, bool) {
	val, err := s.cache.Get(ctx, key)
	if err != nil {
		return Result{}, false
	}
	var res Result
	if err := json.Unmarshal([]byte(val), &res); err != nil {
		log.Warn().Str("component", "engine").Str("key", key).Err(err).Msg("corrupt cached decision")
		return Result{}, false
	}
	res.Cached = true
	return res, true
}

func (s *Service) store(ctx context.Context, key string, res Result) {
	data, err := json.Marshal(res)
	if err != nil {
		return
	}
	if err := s.cache.Set(ctx, key, string(data), s.ttl); err != nil {
		log.Warn().Str("component", "engine").Str("key", key).Err(err).Msg("failed to cache decision")
	}
}
