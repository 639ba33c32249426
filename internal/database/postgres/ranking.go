package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/osse101/LoveSim_Go/internal/domain"
	"github.com/osse101/LoveSim_Go/internal/repository"
)

// Ties keep submission order; id breaks exact timestamp ties.
const listRankingsQuery = `
SELECT nickname, score, scenario_title
FROM rankings
WHERE ($1::text = '' OR scenario_title = $1)
ORDER BY score DESC, created_at ASC, id ASC
LIMIT $2`

const insertRankingQuery = `
INSERT INTO rankings (nickname, score, scenario_title, play_time, choices_count, created_at, ip_address)
VALUES ($1, $2, $3, $4, $5, $6, $7)
RETURNING id`

// Counts strictly higher scores only, so equal scores share a rank.
const countHigherScoresQuery = `
SELECT COUNT(*)
FROM rankings
WHERE score > $1 AND scenario_title = $2`

// RankingRepository implements repository.Ranking for PostgreSQL
type RankingRepository struct {
	pool *pgxpool.Pool
}

// NewRankingRepository creates a new RankingRepository
func NewRankingRepository(pool *pgxpool.Pool) repository.Ranking {
	return &RankingRepository{pool: pool}
}

type leaderboardRow struct {
	Nickname      string `db:"nickname"`
	Score         int32  `db:"score"`
	ScenarioTitle string `db:"scenario_title"`
}

// ListRankings returns the top entries, optionally narrowed to one scenario title
func (r *RankingRepository) ListRankings(ctx context.Context, filter domain.LeaderboardFilter) ([]domain.LeaderboardEntry, error) {
	limit := filter.Limit
	if limit <= 0 || limit > domain.LeaderboardMaxEntries {
		limit = domain.LeaderboardMaxEntries
	}

	rows, err := r.pool.Query(ctx, listRankingsQuery, filter.ScenarioTitle, limit)
	if err != nil {
		return nil, fmt.Errorf(ErrMsgListRankingsFailed, err)
	}
	records, err := pgx.CollectRows(rows, pgx.RowToStructByName[leaderboardRow])
	if err != nil {
		return nil, fmt.Errorf(ErrMsgListRankingsFailed, err)
	}

	entries := make([]domain.LeaderboardEntry, 0, len(records))
	for _, rec := range records {
		entries = append(entries, domain.LeaderboardEntry{
			Nickname:      rec.Nickname,
			Score:         int(rec.Score),
			ScenarioTitle: rec.ScenarioTitle,
		})
	}
	return entries, nil
}

// InsertRanking stores the ranking and computes its rank in the same transaction.
// On success rk.ID is populated.
func (r *RankingRepository) InsertRanking(ctx context.Context, rk *domain.Ranking) (int, error) {
	playTime, err := ptrToInt4(rk.PlayTime)
	if err != nil {
		return 0, fmt.Errorf(ErrMsgInsertRankingFailed, err)
	}
	choicesCount, err := ptrToInt4(rk.ChoicesCount)
	if err != nil {
		return 0, fmt.Errorf(ErrMsgInsertRankingFailed, err)
	}

	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return 0, fmt.Errorf(ErrMsgBeginTxFailed, err)
	}
	defer SafeRollback(ctx, tx)

	var id int64
	err = tx.QueryRow(ctx, insertRankingQuery,
		rk.Nickname,
		rk.Score,
		rk.ScenarioTitle,
		playTime,
		choicesCount,
		rk.Timestamp,
		truncate(rk.IPAddress, domain.IPAddressMaxLength),
	).Scan(&id)
	if err != nil {
		return 0, fmt.Errorf(ErrMsgInsertRankingFailed, err)
	}

	var higher int64
	if err := tx.QueryRow(ctx, countHigherScoresQuery, rk.Score, rk.ScenarioTitle).Scan(&higher); err != nil {
		return 0, fmt.Errorf(ErrMsgCountRankFailed, err)
	}

	if err := tx.Commit(ctx); err != nil {
		return 0, fmt.Errorf(ErrMsgCommitTxFailed, err)
	}

	rk.ID = id
	return int(higher) + 1, nil
}
