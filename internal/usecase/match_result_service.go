package usecase

import (
	"context"
	"fmt"
	"sync"

	"github.com/panjf2000/ants/v2"

	"github.com/riskibarqy/amateur-league/internal/domain/card"
	"github.com/riskibarqy/amateur-league/internal/domain/goal"
	"github.com/riskibarqy/amateur-league/internal/domain/match"
	"github.com/riskibarqy/amateur-league/internal/domain/player"
	idgen "github.com/riskibarqy/amateur-league/internal/platform/id"
	"github.com/riskibarqy/amateur-league/internal/platform/logging"
)

const defaultRepairWorkerCount = 4

type RecordGoalInput struct {
	MatchID     string
	ScorerID    string
	AssistantID string
	TeamID      string
	Minute      int
}

type UpdateGoalInput struct {
	ScorerID    string
	AssistantID string
	TeamID      string
	Minute      int
}

type RecordCardInput struct {
	MatchID  string
	PlayerID string
	TeamID   string
	Type     card.Type
	Minute   int
}

type UpdateCardInput struct {
	PlayerID string
	TeamID   string
	Type     card.Type
	Minute   int
}

type ReplaceGoalInput struct {
	ScorerID    string
	AssistantID string
	TeamID      string
	Minute      int
}

type ReplaceCardInput struct {
	PlayerID string
	TeamID   string
	Type     card.Type
	Minute   int
}

// ReplaceResultInput is a full result edit. When Goals is non-empty the
// final score is derived from the goal counts; otherwise HomeScore and
// AwayScore are taken as supplied (score-only edit).
type ReplaceResultInput struct {
	HomeScore int
	AwayScore int
	Finished  bool
	Goals     []ReplaceGoalInput
	Cards     []ReplaceCardInput
}

// MatchResultService keeps Match.HomeScore/AwayScore equal to the goal
// counts per side. Writes to the same match are serialized through a
// per-match mutex; this is the chosen answer to concurrent goal edits.
type MatchResultService struct {
	matchRepo  match.Repository
	goalRepo   goal.Repository
	cardRepo   card.Repository
	playerRepo player.Repository
	ids        idgen.Generator
	logger     *logging.Logger

	repairWorkers int

	locksMu sync.Mutex
	locks   map[string]*sync.Mutex
}

func NewMatchResultService(
	matchRepo match.Repository,
	goalRepo goal.Repository,
	cardRepo card.Repository,
	playerRepo player.Repository,
	ids idgen.Generator,
	logger *logging.Logger,
) *MatchResultService {
	if logger == nil {
		logger = logging.Default()
	}

	return &MatchResultService{
		matchRepo:     matchRepo,
		goalRepo:      goalRepo,
		cardRepo:      cardRepo,
		playerRepo:    playerRepo,
		ids:           ids,
		logger:        logger,
		repairWorkers: defaultRepairWorkerCount,
		locks:         make(map[string]*sync.Mutex),
	}
}

// SetRepairWorkers overrides the pool size used by RepairAllScores.
func (s *MatchResultService) SetRepairWorkers(n int) {
	if n > 0 {
		s.repairWorkers = n
	}
}

// RecordGoal stores a goal and recounts the parent match's score.
func (s *MatchResultService) RecordGoal(ctx context.Context, input RecordGoalInput) (match.Match, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.MatchResultService.RecordGoal")
	defer span.End()

	m, err := s.getMatch(ctx, input.MatchID)
	if err != nil {
		return match.Match{}, err
	}

	unlock := s.lockMatch(m.ID)
	defer unlock()

	if err := s.validateGoalRefs(ctx, m, input.ScorerID, input.AssistantID, input.TeamID); err != nil {
		return match.Match{}, err
	}

	goalID, err := s.ids.NewID()
	if err != nil {
		return match.Match{}, fmt.Errorf("generate goal id: %w", err)
	}

	item := goal.Goal{
		ID:          goalID,
		MatchID:     m.ID,
		ScorerID:    input.ScorerID,
		AssistantID: input.AssistantID,
		TeamID:      input.TeamID,
		Minute:      input.Minute,
	}
	if err := item.Validate(); err != nil {
		return match.Match{}, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	if err := s.goalRepo.Create(ctx, item); err != nil {
		return match.Match{}, fmt.Errorf("create goal: %w", err)
	}

	return s.recountScore(ctx, m)
}

// UpdateGoal edits an existing goal and recounts the match's score.
func (s *MatchResultService) UpdateGoal(ctx context.Context, goalID string, input UpdateGoalInput) (match.Match, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.MatchResultService.UpdateGoal")
	defer span.End()

	existing, found, err := s.goalRepo.GetByID(ctx, goalID)
	if err != nil {
		return match.Match{}, fmt.Errorf("get goal: %w", err)
	}
	if !found {
		return match.Match{}, fmt.Errorf("%w: goal=%s", ErrNotFound, goalID)
	}

	m, err := s.getMatch(ctx, existing.MatchID)
	if err != nil {
		return match.Match{}, err
	}

	unlock := s.lockMatch(m.ID)
	defer unlock()

	if err := s.validateGoalRefs(ctx, m, input.ScorerID, input.AssistantID, input.TeamID); err != nil {
		return match.Match{}, err
	}

	updated := goal.Goal{
		ID:          existing.ID,
		MatchID:     existing.MatchID,
		ScorerID:    input.ScorerID,
		AssistantID: input.AssistantID,
		TeamID:      input.TeamID,
		Minute:      input.Minute,
	}
	if err := updated.Validate(); err != nil {
		return match.Match{}, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	if err := s.goalRepo.Update(ctx, updated); err != nil {
		return match.Match{}, fmt.Errorf("update goal: %w", err)
	}

	return s.recountScore(ctx, m)
}

// RemoveGoal deletes a goal and recounts the match's score.
func (s *MatchResultService) RemoveGoal(ctx context.Context, goalID string) (match.Match, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.MatchResultService.RemoveGoal")
	defer span.End()

	existing, found, err := s.goalRepo.GetByID(ctx, goalID)
	if err != nil {
		return match.Match{}, fmt.Errorf("get goal: %w", err)
	}
	if !found {
		return match.Match{}, fmt.Errorf("%w: goal=%s", ErrNotFound, goalID)
	}

	m, err := s.getMatch(ctx, existing.MatchID)
	if err != nil {
		return match.Match{}, err
	}

	unlock := s.lockMatch(m.ID)
	defer unlock()

	if err := s.goalRepo.Delete(ctx, goalID); err != nil {
		return match.Match{}, fmt.Errorf("delete goal: %w", err)
	}

	return s.recountScore(ctx, m)
}

// RecordCard stores a booking for a match.
func (s *MatchResultService) RecordCard(ctx context.Context, input RecordCardInput) (card.Card, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.MatchResultService.RecordCard")
	defer span.End()

	m, err := s.getMatch(ctx, input.MatchID)
	if err != nil {
		return card.Card{}, err
	}

	if err := s.validateCardRefs(ctx, m, input.PlayerID, input.TeamID); err != nil {
		return card.Card{}, err
	}

	cardID, err := s.ids.NewID()
	if err != nil {
		return card.Card{}, fmt.Errorf("generate card id: %w", err)
	}

	item := card.Card{
		ID:       cardID,
		MatchID:  m.ID,
		PlayerID: input.PlayerID,
		TeamID:   input.TeamID,
		Type:     input.Type,
		Minute:   input.Minute,
	}
	if err := item.Validate(); err != nil {
		return card.Card{}, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	if err := s.cardRepo.Create(ctx, item); err != nil {
		return card.Card{}, fmt.Errorf("create card: %w", err)
	}

	return item, nil
}

// UpdateCard edits an existing booking.
func (s *MatchResultService) UpdateCard(ctx context.Context, cardID string, input UpdateCardInput) (card.Card, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.MatchResultService.UpdateCard")
	defer span.End()

	existing, found, err := s.cardRepo.GetByID(ctx, cardID)
	if err != nil {
		return card.Card{}, fmt.Errorf("get card: %w", err)
	}
	if !found {
		return card.Card{}, fmt.Errorf("%w: card=%s", ErrNotFound, cardID)
	}

	m, err := s.getMatch(ctx, existing.MatchID)
	if err != nil {
		return card.Card{}, err
	}

	if err := s.validateCardRefs(ctx, m, input.PlayerID, input.TeamID); err != nil {
		return card.Card{}, err
	}

	updated := card.Card{
		ID:       existing.ID,
		MatchID:  existing.MatchID,
		PlayerID: input.PlayerID,
		TeamID:   input.TeamID,
		Type:     input.Type,
		Minute:   input.Minute,
	}
	if err := updated.Validate(); err != nil {
		return card.Card{}, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	if err := s.cardRepo.Update(ctx, updated); err != nil {
		return card.Card{}, fmt.Errorf("update card: %w", err)
	}

	return updated, nil
}

// RemoveCard deletes a booking. Cards never touch the score.
func (s *MatchResultService) RemoveCard(ctx context.Context, cardID string) error {
	ctx, span := startUsecaseSpan(ctx, "usecase.MatchResultService.RemoveCard")
	defer span.End()

	_, found, err := s.cardRepo.GetByID(ctx, cardID)
	if err != nil {
		return fmt.Errorf("get card: %w", err)
	}
	if !found {
		return fmt.Errorf("%w: card=%s", ErrNotFound, cardID)
	}

	if err := s.cardRepo.Delete(ctx, cardID); err != nil {
		return fmt.Errorf("delete card: %w", err)
	}

	return nil
}

// ReplaceResult swaps the whole goal and card set of a match in one
// transaction. Prior sets leave no residue.
func (s *MatchResultService) ReplaceResult(ctx context.Context, matchID string, input ReplaceResultInput) (match.Match, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.MatchResultService.ReplaceResult")
	defer span.End()

	m, err := s.getMatch(ctx, matchID)
	if err != nil {
		return match.Match{}, err
	}

	unlock := s.lockMatch(m.ID)
	defer unlock()

	if input.HomeScore < 0 || input.AwayScore < 0 {
		return match.Match{}, fmt.Errorf("%w: score cannot be negative", ErrInvalidInput)
	}

	goals := make([]goal.Goal, 0, len(input.Goals))
	homeGoals, awayGoals := 0, 0
	for _, in := range input.Goals {
		if err := s.validateGoalRefs(ctx, m, in.ScorerID, in.AssistantID, in.TeamID); err != nil {
			return match.Match{}, err
		}

		goalID, err := s.ids.NewID()
		if err != nil {
			return match.Match{}, fmt.Errorf("generate goal id: %w", err)
		}

		item := goal.Goal{
			ID:          goalID,
			MatchID:     m.ID,
			ScorerID:    in.ScorerID,
			AssistantID: in.AssistantID,
			TeamID:      in.TeamID,
			Minute:      in.Minute,
		}
		if err := item.Validate(); err != nil {
			return match.Match{}, fmt.Errorf("%w: %v", ErrInvalidInput, err)
		}

		if in.TeamID == m.HomeTeamID {
			homeGoals++
		} else {
			awayGoals++
		}
		goals = append(goals, item)
	}

	cards := make([]card.Card, 0, len(input.Cards))
	for _, in := range input.Cards {
		if err := s.validateCardRefs(ctx, m, in.PlayerID, in.TeamID); err != nil {
			return match.Match{}, err
		}

		cardID, err := s.ids.NewID()
		if err != nil {
			return match.Match{}, fmt.Errorf("generate card id: %w", err)
		}

		item := card.Card{
			ID:       cardID,
			MatchID:  m.ID,
			PlayerID: in.PlayerID,
			TeamID:   in.TeamID,
			Type:     in.Type,
			Minute:   in.Minute,
		}
		if err := item.Validate(); err != nil {
			return match.Match{}, fmt.Errorf("%w: %v", ErrInvalidInput, err)
		}
		cards = append(cards, item)
	}

	m.Finished = input.Finished
	if len(goals) > 0 {
		m.HomeScore = homeGoals
		m.AwayScore = awayGoals
	} else {
		m.HomeScore = input.HomeScore
		m.AwayScore = input.AwayScore
	}

	replacement := match.ResultReplacement{Match: m, Goals: goals, Cards: cards}
	if err := s.matchRepo.ReplaceResult(ctx, replacement); err != nil {
		return match.Match{}, fmt.Errorf("replace match result: %w", err)
	}

	s.logger.InfoContext(ctx, "match result replaced",
		"match_id", m.ID,
		"home_score", m.HomeScore,
		"away_score", m.AwayScore,
		"goals", len(goals),
		"cards", len(cards),
		"finished", m.Finished,
	)

	return m, nil
}

// RepairScore recomputes the denormalized score of one match from its
// stored goals. Used to fix drift after imperfect cascades.
func (s *MatchResultService) RepairScore(ctx context.Context, matchID string) (match.Match, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.MatchResultService.RepairScore")
	defer span.End()

	m, err := s.getMatch(ctx, matchID)
	if err != nil {
		return match.Match{}, err
	}

	unlock := s.lockMatch(m.ID)
	defer unlock()

	return s.recountScore(ctx, m)
}

// RepairAllScores recounts every match on a small worker pool and
// returns how many matches were checked.
func (s *MatchResultService) RepairAllScores(ctx context.Context) (int, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.MatchResultService.RepairAllScores")
	defer span.End()

	matches, err := s.matchRepo.List(ctx)
	if err != nil {
		return 0, fmt.Errorf("list matches: %w", err)
	}
	if len(matches) == 0 {
		return 0, nil
	}

	workers := s.repairWorkers
	if workers > len(matches) {
		workers = len(matches)
	}

	workerPool, err := ants.NewPool(workers)
	if err != nil {
		return 0, fmt.Errorf("create repair worker pool: %w", err)
	}
	defer workerPool.Release()

	var wg sync.WaitGroup
	var errMu sync.Mutex
	var firstErr error

	for _, m := range matches {
		m := m
		wg.Add(1)
		if submitErr := workerPool.Submit(func() {
			defer wg.Done()

			unlock := s.lockMatch(m.ID)
			defer unlock()

			if _, repairErr := s.recountScore(ctx, m); repairErr != nil {
				errMu.Lock()
				if firstErr == nil {
					firstErr = repairErr
				}
				errMu.Unlock()
			}
		}); submitErr != nil {
			wg.Done()
			errMu.Lock()
			if firstErr == nil {
				firstErr = fmt.Errorf("submit repair task: %w", submitErr)
			}
			errMu.Unlock()
		}
	}

	wg.Wait()

	if firstErr != nil {
		return 0, firstErr
	}
	return len(matches), nil
}

func (s *MatchResultService) recountScore(ctx context.Context, m match.Match) (match.Match, error) {
	goals, err := s.goalRepo.ListByMatch(ctx, m.ID)
	if err != nil {
		return match.Match{}, fmt.Errorf("list goals by match: %w", err)
	}

	home, away := 0, 0
	for _, g := range goals {
		switch g.TeamID {
		case m.HomeTeamID:
			home++
		case m.AwayTeamID:
			away++
		}
	}

	if err := s.matchRepo.UpdateScore(ctx, m.ID, home, away); err != nil {
		return match.Match{}, fmt.Errorf("update match score: %w", err)
	}

	m.HomeScore = home
	m.AwayScore = away

	return m, nil
}

func (s *MatchResultService) validateGoalRefs(ctx context.Context, m match.Match, scorerID, assistantID, teamID string) error {
	if !m.Involves(teamID) {
		return fmt.Errorf("%w: team %s plays in neither side of match %s", ErrConsistency, teamID, m.ID)
	}

	scorer, found, err := s.playerRepo.GetByID(ctx, scorerID)
	if err != nil {
		return fmt.Errorf("get scorer: %w", err)
	}
	if !found {
		return fmt.Errorf("%w: player=%s", ErrNotFound, scorerID)
	}

	if assistantID == "" {
		return nil
	}
	if assistantID == scorerID {
		return fmt.Errorf("%w: assistant cannot be the scorer", ErrInvalidInput)
	}

	assistant, found, err := s.playerRepo.GetByID(ctx, assistantID)
	if err != nil {
		return fmt.Errorf("get assistant: %w", err)
	}
	if !found {
		return fmt.Errorf("%w: player=%s", ErrNotFound, assistantID)
	}
	if assistant.TeamID != scorer.TeamID {
		// Tolerated, but worth a trace: usually a data-entry mistake.
		s.logger.WarnContext(ctx, "assistant from a different team than scorer",
			"match_id", m.ID,
			"scorer_id", scorerID,
			"assistant_id", assistantID,
		)
	}

	return nil
}

func (s *MatchResultService) validateCardRefs(ctx context.Context, m match.Match, playerID, teamID string) error {
	if !m.Involves(teamID) {
		return fmt.Errorf("%w: team %s plays in neither side of match %s", ErrConsistency, teamID, m.ID)
	}

	_, found, err := s.playerRepo.GetByID(ctx, playerID)
	if err != nil {
		return fmt.Errorf("get player: %w", err)
	}
	if !found {
		return fmt.Errorf("%w: player=%s", ErrNotFound, playerID)
	}

	return nil
}

func (s *MatchResultService) getMatch(ctx context.Context, matchID string) (match.Match, error) {
	m, found, err := s.matchRepo.GetByID(ctx, matchID)
	if err != nil {
		return match.Match{}, fmt.Errorf("get match: %w", err)
	}
	if !found {
		return match.Match{}, fmt.Errorf("%w: match=%s", ErrNotFound, matchID)
	}
	return m, nil
}

func (s *MatchResultService) lockMatch(matchID string) func() {
	s.locksMu.Lock()
	lock, ok := s.locks[matchID]
	if !ok {
		lock = &sync.Mutex{}
		s.locks[matchID] = lock
	}
	s.locksMu.Unlock()

	lock.Lock()
	return lock.Unlock
}
