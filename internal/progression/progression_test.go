package progression_test

import (
	"errors"
	"testing"

	"go.uber.org/mock/gomock"
	"pgregory.net/rapid"

	"github.com/yaelverdejo-liuthus/Cannon-blast/internal/config"
	"github.com/yaelverdejo-liuthus/Cannon-blast/internal/core"
	"github.com/yaelverdejo-liuthus/Cannon-blast/internal/progression"
	"github.com/yaelverdejo-liuthus/Cannon-blast/internal/progression/mocks"
	"github.com/yaelverdejo-liuthus/Cannon-blast/internal/round"
)

// memStore is an in-memory HighScoreStore.
type memStore struct {
	value  int
	writes []int
}

func (s *memStore) HighScore() (int, error) { return s.value, nil }
func (s *memStore) SetHighScore(v int) error {
	s.value = v
	s.writes = append(s.writes, v)
	return nil
}

func TestStars(t *testing.T) {
	level1 := [3]int{3000, 6000, 8200}
	tests := []struct {
		score  int
		stars  int
		earned [3]bool
	}{
		{0, 0, [3]bool{}},
		{2999, 0, [3]bool{}},
		{3000, 1, [3]bool{true, false, false}},
		{6500, 2, [3]bool{true, true, false}},
		{8200, 3, [3]bool{true, true, true}},
	}

	for _, tc := range tests {
		n, earned := progression.Stars(level1, tc.score)
		if n != tc.stars || earned != tc.earned {
			t.Errorf("Stars(%d) = %d %v, expected %d %v", tc.score, n, earned, tc.stars, tc.earned)
		}
	}
}

func TestStarsIndependent(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		a := rapid.IntRange(0, 10000).Draw(t, "a")
		b := rapid.IntRange(a, 20000).Draw(t, "b")
		c := rapid.IntRange(b, 30000).Draw(t, "c")
		score := rapid.IntRange(0, 40000).Draw(t, "score")

		n, earned := progression.Stars([3]int{a, b, c}, score)
		count := 0
		for i, th := range []int{a, b, c} {
			if earned[i] != (score >= th) {
				t.Fatalf("star %d = %v for score %d threshold %d", i, earned[i], score, th)
			}
			if earned[i] {
				count++
			}
		}
		if n != count {
			t.Fatalf("n = %d, counted %d", n, count)
		}
	})
}

func TestInfiniteAmmo(t *testing.T) {
	m := progression.New(config.Default(), nil, nil)
	tests := []struct {
		round, carried, want int
	}{
		{1, 0, 10},
		{1, 6, 10},
		{2, 0, 3},
		{2, 4, 7},
		{9, 1, 4},
	}
	for _, tc := range tests {
		if got := m.InfiniteAmmo(tc.round, tc.carried); got != tc.want {
			t.Errorf("InfiniteAmmo(%d, %d) = %d, expected %d", tc.round, tc.carried, got, tc.want)
		}
	}
}

func TestCampaignProgression(t *testing.T) {
	m := progression.New(config.Default(), nil, nil)

	plan, err := m.StartCampaign(1)
	if err != nil {
		t.Fatal(err)
	}
	if plan.Ammo != 7 || plan.Score != 0 || plan.Name != "The Pyramid" {
		t.Errorf("plan = %+v", plan)
	}
	if _, err := m.Next(); !errors.Is(err, progression.ErrNotWon) {
		t.Errorf("Next() before win = %v, expected ErrNotWon", err)
	}

	res := m.RoundWon(round.Snapshot{State: round.Won, Score: 6500, Ammo: 2})
	if res.Stars != 2 || !res.HasNext {
		t.Errorf("result = %+v, expected 2 stars with next", res)
	}
	if res.NewHighScore || m.HighScore() != 0 {
		t.Error("campaign score touched the high score")
	}

	plan, err = m.Next()
	if err != nil || plan.Level != 2 || plan.Ammo != 6 || plan.Score != 0 {
		t.Fatalf("Next() = %+v, %v", plan, err)
	}
	m.RoundWon(round.Snapshot{Score: 100})
	plan, _ = m.Next()
	if plan.Level != 3 || plan.Ammo != 5 {
		t.Fatalf("Next() = %+v, expected level 3", plan)
	}

	res = m.RoundWon(round.Snapshot{Score: 3600})
	if res.HasNext || res.Stars != 3 {
		t.Errorf("last level result = %+v", res)
	}
	if _, err := m.Next(); !errors.Is(err, progression.ErrNoMoreLevels) {
		t.Errorf("Next() = %v, expected ErrNoMoreLevels", err)
	}

	plan, err = m.Retry()
	if err != nil || plan.Level != 3 || plan.Score != 0 {
		t.Errorf("Retry() = %+v, %v", plan, err)
	}
}

func TestUnknownLevel(t *testing.T) {
	m := progression.New(config.Default(), nil, nil)
	if _, err := m.StartCampaign(42); !errors.Is(err, progression.ErrUnknownLevel) {
		t.Errorf("StartCampaign(42) = %v, expected ErrUnknownLevel", err)
	}
}

func TestInfiniteRun(t *testing.T) {
	store := &memStore{}
	m := progression.New(config.Default(), store, nil)

	plan := m.StartInfinite()
	if plan.Mode != core.ModeInfinite || plan.Round != 1 || plan.Ammo != 10 || plan.Score != 0 {
		t.Fatalf("StartInfinite() = %+v", plan)
	}

	m.RoundWon(round.Snapshot{Score: 4000, Ammo: 4})
	plan, err := m.Next()
	if err != nil {
		t.Fatal(err)
	}
	if plan.Round != 2 || plan.Ammo != 7 || plan.Score != 4000 {
		t.Errorf("round 2 plan = %+v, expected ammo 7 score 4000", plan)
	}

	m.RoundWon(round.Snapshot{Score: 6000, Ammo: 0})
	plan, _ = m.Next()
	if plan.Round != 3 || plan.Ammo != 3 {
		t.Errorf("round 3 plan = %+v, expected ammo 3", plan)
	}

	res := m.RoundLost(round.Snapshot{Score: 6800, Ammo: 0})
	if !res.RunOver || res.HighScore != 6800 {
		t.Errorf("loss result = %+v", res)
	}
	if _, err := m.Next(); !errors.Is(err, progression.ErrNotWon) {
		t.Errorf("Next() after loss = %v, expected ErrNotWon", err)
	}

	plan, _ = m.Retry()
	if plan.Round != 1 || plan.Ammo != 10 || plan.Score != 0 {
		t.Errorf("Retry() = %+v, expected a new run", plan)
	}
	if store.value != 6800 {
		t.Errorf("stored high score = %d, expected 6800", store.value)
	}
}

func TestHighScoreLoadedOnce(t *testing.T) {
	ctrl := gomock.NewController(t)
	store := mocks.NewMockHighScoreStore(ctrl)
	store.EXPECT().HighScore().Return(5000, nil).Times(1)
	store.EXPECT().SetHighScore(5200).Return(nil).Times(1)

	m := progression.New(config.Default(), store, nil)
	m.StartInfinite()

	if m.ObserveScore(4000) {
		t.Error("ObserveScore(4000) improved on 5000")
	}
	if !m.ObserveScore(5200) {
		t.Error("ObserveScore(5200) did not improve on 5000")
	}
	if m.ObserveScore(5200) {
		t.Error("equal score counted as improvement")
	}
}

func TestHighScoreStoreFailureIsNotFatal(t *testing.T) {
	ctrl := gomock.NewController(t)
	store := mocks.NewMockHighScoreStore(ctrl)
	store.EXPECT().HighScore().Return(0, errors.New("disk gone"))
	store.EXPECT().SetHighScore(gomock.Any()).Return(errors.New("disk gone")).Times(2)

	m := progression.New(config.Default(), store, nil)
	m.StartInfinite()
	m.ObserveScore(300)
	m.ObserveScore(900)

	if m.HighScore() != 900 {
		t.Errorf("HighScore() = %d, expected in-memory 900", m.HighScore())
	}
}

func TestCampaignScoresNotPersisted(t *testing.T) {
	ctrl := gomock.NewController(t)
	store := mocks.NewMockHighScoreStore(ctrl)
	store.EXPECT().HighScore().Return(0, nil)

	m := progression.New(config.Default(), store, nil)
	if _, err := m.StartCampaign(1); err != nil {
		t.Fatal(err)
	}
	if m.ObserveScore(9000) {
		t.Error("campaign score observed as high score")
	}
}

// The persisted value always equals the maximum score observed.
func TestHighScoreMonotonic(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		initial := rapid.IntRange(0, 5000).Draw(t, "initial")
		store := &memStore{value: initial}
		m := progression.New(config.Default(), store, nil)
		m.StartInfinite()

		best := initial
		scores := rapid.SliceOf(rapid.IntRange(0, 20000)).Draw(t, "scores")
		for _, s := range scores {
			m.ObserveScore(s)
			best = max(best, s)
			if store.value != best || m.HighScore() != best {
				t.Fatalf("stored %d, in memory %d, expected %d", store.value, m.HighScore(), best)
			}
		}
		for i := 1; i < len(store.writes); i++ {
			if store.writes[i] <= store.writes[i-1] {
				t.Fatalf("writes not increasing: %v", store.writes)
			}
		}
	})
}
