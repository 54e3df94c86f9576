package services

import (
	"context"
	"fmt"

	"github.com/Dosada05/club-system/models"
	"github.com/Dosada05/club-system/repositories"
)

// In-memory фейки репозиториев для тестов сервисного слоя.

type fakePlayerRepo struct {
	players []*models.Player
	err     error
}

func (f *fakePlayerRepo) GetByID(_ context.Context, id int) (*models.Player, error) {
	if f.err != nil {
		return nil, f.err
	}
	for _, p := range f.players {
		if p.ID == id {
			return p, nil
		}
	}
	return nil, repositories.ErrPlayerNotFound
}

func (f *fakePlayerRepo) ListByTeam(_ context.Context, teamID int) ([]*models.Player, error) {
	if f.err != nil {
		return nil, f.err
	}
	out := make([]*models.Player, 0)
	for _, p := range f.players {
		if p.TeamID == teamID {
			out = append(out, p)
		}
	}
	return out, nil
}

type fakeGameRepo struct {
	games  map[int]*models.Game
	err    error
	scores map[int]string // записанные UpdateScore
}

func newFakeGameRepo(games ...*models.Game) *fakeGameRepo {
	f := &fakeGameRepo{games: make(map[int]*models.Game), scores: make(map[int]string)}
	for _, g := range games {
		f.games[g.ID] = g
	}
	return f
}

func (f *fakeGameRepo) GetByID(_ context.Context, id int) (*models.Game, error) {
	if f.err != nil {
		return nil, f.err
	}
	g, ok := f.games[id]
	if !ok {
		return nil, repositories.ErrGameNotFound
	}
	copied := *g
	return &copied, nil
}

func (f *fakeGameRepo) ListByTeam(_ context.Context, teamID int) ([]*models.Game, error) {
	if f.err != nil {
		return nil, f.err
	}
	out := make([]*models.Game, 0)
	for _, g := range f.games {
		if g.TeamID == teamID {
			out = append(out, g)
		}
	}
	return out, nil
}

func (f *fakeGameRepo) UpdateScore(_ context.Context, id int, score *string) error {
	if f.err != nil {
		return f.err
	}
	g, ok := f.games[id]
	if !ok {
		return repositories.ErrGameNotFound
	}
	g.Score = score
	f.scores[id] = *score
	return nil
}

type fakeStatRepo struct {
	stats       map[int]*models.GameStat
	failMinutes map[int]bool // stat IDs, для которых сохранение минут падает
	savedMins   map[int]int
	savedSubs   map[int][]models.SubstitutionEntry
}

func newFakeStatRepo(statsList ...*models.GameStat) *fakeStatRepo {
	f := &fakeStatRepo{
		stats:       make(map[int]*models.GameStat),
		failMinutes: make(map[int]bool),
		savedMins:   make(map[int]int),
		savedSubs:   make(map[int][]models.SubstitutionEntry),
	}
	for _, st := range statsList {
		f.stats[st.ID] = st
	}
	return f
}

func (f *fakeStatRepo) GetByID(_ context.Context, id int) (*models.GameStat, error) {
	st, ok := f.stats[id]
	if !ok {
		return nil, repositories.ErrGameStatNotFound
	}
	copied := *st
	return &copied, nil
}

func (f *fakeStatRepo) ListByGame(_ context.Context, gameID int) ([]*models.GameStat, error) {
	out := make([]*models.GameStat, 0)
	for _, st := range f.stats {
		if st.GameID == gameID {
			out = append(out, st)
		}
	}
	return out, nil
}

func (f *fakeStatRepo) ListByGames(_ context.Context, gameIDs []int64) ([]*models.GameStat, error) {
	out := make([]*models.GameStat, 0)
	for _, id := range gameIDs {
		byGame, _ := f.ListByGame(context.Background(), int(id))
		out = append(out, byGame...)
	}
	return out, nil
}

func (f *fakeStatRepo) UpdateMinutes(_ context.Context, id int, minutes int) error {
	if f.failMinutes[id] {
		return fmt.Errorf("simulated save failure for stat %d", id)
	}
	st, ok := f.stats[id]
	if !ok {
		return repositories.ErrGameStatNotFound
	}
	st.Minutes = minutes
	f.savedMins[id] = minutes
	return nil
}

func (f *fakeStatRepo) ReplaceSubstitutions(_ context.Context, _ repositories.SQLExecutor, id int, subs []models.SubstitutionEntry) error {
	st, ok := f.stats[id]
	if !ok {
		return repositories.ErrGameStatNotFound
	}
	st.Substitutions = subs
	f.savedSubs[id] = subs
	return nil
}

type fakeTrainingRepo struct {
	trainings []*models.TrainingSession
	err       error
}

func (f *fakeTrainingRepo) ListByTeam(_ context.Context, teamID int) ([]*models.TrainingSession, error) {
	if f.err != nil {
		return nil, f.err
	}
	out := make([]*models.TrainingSession, 0)
	for _, t := range f.trainings {
		if t.TeamID == teamID {
			out = append(out, t)
		}
	}
	return out, nil
}

func (f *fakeTrainingRepo) GetByID(_ context.Context, id int) (*models.TrainingSession, error) {
	if f.err != nil {
		return nil, f.err
	}
	for _, t := range f.trainings {
		if t.ID == id {
			return t, nil
		}
	}
	return nil, repositories.ErrTrainingNotFound
}
