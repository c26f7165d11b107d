package service

import (
	"context"
	"errors"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/beka-birhanu/vinom-robot/game"
	"github.com/beka-birhanu/vinom-robot/identity"
	"github.com/beka-birhanu/vinom-robot/service/i"
)

type memoryEpisodeRepo struct {
	mu      sync.Mutex
	records map[uuid.UUID]*game.Record
	err     error
}

func newMemoryEpisodeRepo() *memoryEpisodeRepo {
	return &memoryEpisodeRepo{records: map[uuid.UUID]*game.Record{}}
}

func (r *memoryEpisodeRepo) Save(_ context.Context, record *game.Record) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.err != nil {
		return r.err
	}
	r.records[record.ID] = record
	return nil
}

func (r *memoryEpisodeRepo) ByID(_ context.Context, id uuid.UUID) (*game.Record, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	record, ok := r.records[id]
	if !ok {
		return nil, i.ErrNotFound
	}
	return record, nil
}

type memoryLeaderboard struct {
	mu   sync.Mutex
	sets map[string][]i.ScoredMember
	err  error
}

func newMemoryLeaderboard() *memoryLeaderboard {
	return &memoryLeaderboard{sets: map[string][]i.ScoredMember{}}
}

func (l *memoryLeaderboard) Record(_ context.Context, key string, score float64, member string) error {
	l.mu.Lock()
	defer l.mu.Unlock()
	if l.err != nil {
		return l.err
	}
	set := append(l.sets[key], i.ScoredMember{Member: member, Score: score})
	sort.SliceStable(set, func(a, b int) bool { return set[a].Score < set[b].Score })
	l.sets[key] = set
	return nil
}

func (l *memoryLeaderboard) Top(_ context.Context, key string, n int64) ([]i.ScoredMember, error) {
	l.mu.Lock()
	defer l.mu.Unlock()
	set := l.sets[key]
	if int64(len(set)) > n {
		set = set[:n]
	}
	return append([]i.ScoredMember(nil), set...), nil
}

type memoryOperatorRepo struct {
	byName map[string]*identity.Operator
}

func (r *memoryOperatorRepo) Save(_ context.Context, o *identity.Operator) error {
	if _, ok := r.byName[o.Username]; ok {
		return errors.New("username conflict")
	}
	r.byName[o.Username] = o
	return nil
}

func (r *memoryOperatorRepo) ByID(_ context.Context, id uuid.UUID) (*identity.Operator, error) {
	for _, o := range r.byName {
		if o.ID == id {
			return o, nil
		}
	}
	return nil, i.ErrNotFound
}

func (r *memoryOperatorRepo) ByUsername(_ context.Context, username string) (*identity.Operator, error) {
	o, ok := r.byName[username]
	if !ok {
		return nil, i.ErrNotFound
	}
	return o, nil
}

type stubTokenizer struct {
	claims map[string]interface{}
	exp    time.Duration
}

func (s *stubTokenizer) Generate(claims map[string]interface{}, exp time.Duration) (string, error) {
	s.claims, s.exp = claims, exp
	return "signed-token", nil
}

func (s *stubTokenizer) Decode(string) (map[string]interface{}, error) {
	return s.claims, nil
}
