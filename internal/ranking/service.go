// Package ranking validates leaderboard submissions and serves the leaderboard.
package ranking

import (
	"context"
	"errors"
	"fmt"

	"github.com/go-playground/validator/v10"

	"github.com/osse101/LoveSim_Go/internal/domain"
	"github.com/osse101/LoveSim_Go/internal/logger"
	"github.com/osse101/LoveSim_Go/internal/metrics"
	"github.com/osse101/LoveSim_Go/internal/repository"
)

// Service defines the interface for leaderboard operations
type Service interface {
	// GetLeaderboard returns the top entries; an empty scenarioTitle means all scenarios.
	GetLeaderboard(ctx context.Context, scenarioTitle string) ([]domain.LeaderboardEntry, error)
	// SubmitRanking validates and stores a submission and returns its rank.
	SubmitRanking(ctx context.Context, sub domain.RankingSubmission) (int, error)
}

type service struct {
	repo     repository.Ranking
	clock    Clock
	validate *validator.Validate
}

// NewService creates a new ranking service
func NewService(repo repository.Ranking) Service {
	return NewServiceWithClock(repo, RealClock{})
}

// NewServiceWithClock creates a ranking service with an explicit clock
func NewServiceWithClock(repo repository.Ranking, clock Clock) Service {
	return &service{
		repo:     repo,
		clock:    clock,
		validate: newValidator(),
	}
}

// GetLeaderboard returns up to domain.LeaderboardMaxEntries entries
func (s *service) GetLeaderboard(ctx context.Context, scenarioTitle string) ([]domain.LeaderboardEntry, error) {
	entries, err := s.repo.ListRankings(ctx, domain.LeaderboardFilter{
		ScenarioTitle: scenarioTitle,
		Limit:         domain.LeaderboardMaxEntries,
	})
	if err != nil {
		logger.FromContext(ctx).Error(LogMsgLeaderboardFailed, "error", err)
		return nil, fmt.Errorf(ErrMsgLeaderboardFailed, err)
	}
	if entries == nil {
		entries = []domain.LeaderboardEntry{}
	}
	return entries, nil
}

// SubmitRanking runs the validation chain in order and stops at the first
// failure. The returned error wraps one of the domain submission sentinels.
func (s *service) SubmitRanking(ctx context.Context, sub domain.RankingSubmission) (int, error) {
	log := logger.FromContext(ctx)

	ranking, reason, err := s.buildRanking(sub)
	if err != nil {
		metrics.RankingRejections.WithLabelValues(reason).Inc()
		log.Info(LogMsgRankingRejected, "reason", reason)
		return 0, err
	}

	rank, err := s.repo.InsertRanking(ctx, ranking)
	if err != nil {
		log.Error(LogMsgRankingStoreFailed, "error", err, "scenario_title", ranking.ScenarioTitle)
		return 0, fmt.Errorf(ErrMsgStoreRankingFailed, errors.Join(domain.ErrDatabaseError, err))
	}

	metrics.RankingsSubmitted.Inc()
	log.Info(LogMsgRankingSubmitted,
		"ranking_id", ranking.ID,
		"score", ranking.Score,
		"scenario_title", ranking.ScenarioTitle,
		"rank", rank)
	log.Debug(LogMsgRankingSubmitted, "ranking_id", ranking.ID, "ip_address", ranking.IPAddress)

	return rank, nil
}

// buildRanking validates sub and returns the ranking to persist, or the
// rejection reason and error.
func (s *service) buildRanking(sub domain.RankingSubmission) (*domain.Ranking, string, error) {
	if len(sub.Score) == 0 {
		return nil, ReasonMissingFields, domain.ErrMissingRankingFields
	}

	nickname := normalizeNickname(sub.Nickname)
	if err := s.validate.Var(nickname, fmt.Sprintf("min=%d,max=%d", domain.NicknameMinLength, domain.NicknameMaxLength)); err != nil {
		return nil, ReasonNicknameLength, domain.ErrInvalidNicknameLength
	}
	if err := s.validate.Var(nickname, TagNickname); err != nil {
		return nil, ReasonNicknameChars, domain.ErrInvalidNicknameChars
	}

	score, err := coerceScore(sub.Score)
	if err != nil {
		if errors.Is(err, domain.ErrScoreOutOfRange) {
			return nil, ReasonScoreRange, err
		}
		return nil, ReasonScoreFormat, err
	}
	if err := s.validate.Var(score, fmt.Sprintf("min=%d,max=%d", domain.ScoreMin, domain.ScoreMax)); err != nil {
		return nil, ReasonScoreRange, domain.ErrScoreOutOfRange
	}

	if err := s.validate.Var(sub.ScenarioTitle, fmt.Sprintf("max=%d", domain.ScenarioTitleMaxLength)); err != nil {
		return nil, ReasonTitleLength, domain.ErrScenarioTitleTooLong
	}

	for _, counter := range []*int{sub.PlayTime, sub.ChoicesCount} {
		if counter == nil {
			continue
		}
		if *counter < 0 {
			return nil, ReasonNegativeCounter, domain.ErrInvalidOptionalCounter
		}
		if *counter > domain.CounterMax {
			return nil, ReasonCounterRange, domain.ErrInvalidDataFormat
		}
	}

	return &domain.Ranking{
		Nickname:      nickname,
		Score:         score,
		ScenarioTitle: sub.ScenarioTitle,
		PlayTime:      sub.PlayTime,
		ChoicesCount:  sub.ChoicesCount,
		Timestamp:     s.clock.Now().UTC(),
		IPAddress:     sub.ClientIP,
	}, "", nil
}
