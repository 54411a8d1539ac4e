package storage

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/palemoky/ba-cay/internal/game"
)

const (
	// Redis key
	playerStatsKey    = "bacay:player:stats:"
	leaderboardKey    = "bacay:leaderboard:bankroll"
	dailyLeaderboard  = "bacay:leaderboard:daily:"
	weeklyLeaderboard = "bacay:leaderboard:weekly:"
	recentSessionsKey = "bacay:sessions:recent"

	// RecentLimit 最近对局保留条数
	RecentLimit = 50
)

// Board selects which leaderboard to read.
type Board int

const (
	BoardAllTime Board = iota
	BoardDaily
	BoardWeekly
)

func (b Board) String() string {
	switch b {
	case BoardDaily:
		return "daily"
	case BoardWeekly:
		return "weekly"
	default:
		return "all-time"
	}
}

// PlayerStats 玩家统计数据, keyed by player name.
type PlayerStats struct {
	PlayerName string `json:"player_name"`

	// 总计
	Sessions  int `json:"sessions"`   // 总场次
	Survivals int `json:"survivals"`  // 坚持到最后
	Busts     int `json:"busts"`      // 输光
	Quits     int `json:"quits"`      // 中途退出
	Rounds    int `json:"rounds"`     // 总局数
	RoundsWon int `json:"rounds_won"` // 赢得的局数

	// 筹码
	BestBankroll int `json:"best_bankroll"` // 历史最高筹码
	LastBankroll int `json:"last_bankroll"` // 最近一场结束时筹码

	// 连续坚持到最后的场次
	CurrentStreak int `json:"current_streak"`
	MaxStreak     int `json:"max_streak"`

	// 时间
	LastPlayedAt int64 `json:"last_played_at"`
	CreatedAt    int64 `json:"created_at"`
}

// RoundWinRate returns the share of rounds won, in percent.
func (s *PlayerStats) RoundWinRate() float64 {
	if s.Rounds == 0 {
		return 0
	}
	return float64(s.RoundsWon) / float64(s.Rounds) * 100
}

// LeaderboardEntry 排行榜条目
type LeaderboardEntry struct {
	Rank         int     `json:"rank"`
	PlayerName   string  `json:"player_name"`
	BestBankroll int     `json:"best_bankroll"`
	Sessions     int     `json:"sessions"`
	Survivals    int     `json:"survivals"`
	RoundWinRate float64 `json:"round_win_rate"`
}

// Leaderboard records finished sessions. It never stores anything a session
// could be resumed from.
type Leaderboard struct {
	redis *redis.Client
	now   func() time.Time
}

// NewLeaderboard 创建排行榜
func NewLeaderboard(client *redis.Client) *Leaderboard {
	return &Leaderboard{redis: client, now: time.Now}
}

func playerKey(name string) string {
	return strings.ToLower(strings.TrimSpace(name))
}

func (lb *Leaderboard) boardKey(b Board) string {
	now := lb.now()
	switch b {
	case BoardDaily:
		return dailyLeaderboard + now.Format("2006-01-02")
	case BoardWeekly:
		year, week := now.ISOWeek()
		return fmt.Sprintf("%s%d-W%02d", weeklyLeaderboard, year, week)
	default:
		return leaderboardKey
	}
}

// PlayerStats 获取玩家统计, nil when the player has never finished a session.
func (lb *Leaderboard) PlayerStats(ctx context.Context, name string) (*PlayerStats, error) {
	data, err := lb.redis.Get(ctx, playerStatsKey+playerKey(name)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, nil
		}
		return nil, err
	}

	var stats PlayerStats
	if err := json.Unmarshal(data, &stats); err != nil {
		return nil, fmt.Errorf("decode stats for %q: %w", name, err)
	}
	return &stats, nil
}

func (lb *Leaderboard) savePlayerStats(ctx context.Context, stats *PlayerStats) error {
	data, err := json.Marshal(stats)
	if err != nil {
		return err
	}
	return lb.redis.Set(ctx, playerStatsKey+playerKey(stats.PlayerName), data, 0).Err()
}

// applySummary 把一场结果计入统计
func applySummary(stats *PlayerStats, sum game.Summary, now int64) {
	stats.PlayerName = sum.PlayerName
	stats.Sessions++
	stats.Rounds += sum.Rounds
	stats.RoundsWon += sum.RoundsWon
	stats.LastBankroll = sum.FinalBankroll
	stats.BestBankroll = max(stats.BestBankroll, sum.PeakBankroll, sum.FinalBankroll)
	stats.LastPlayedAt = now

	switch sum.Outcome {
	case game.StatusSoleSurvivor.String():
		stats.Survivals++
		stats.CurrentStreak++
	case game.StatusPrimaryLost.String():
		stats.Busts++
		stats.CurrentStreak = 0
	default:
		stats.Quits++
		stats.CurrentStreak = 0
	}
	stats.MaxStreak = max(stats.MaxStreak, stats.CurrentStreak)
}

// RecordSession stores a finished session's summary and updates the boards.
func (lb *Leaderboard) RecordSession(ctx context.Context, sum game.Summary) error {
	if playerKey(sum.PlayerName) == "" {
		return errors.New("summary has no player name")
	}

	stats, err := lb.PlayerStats(ctx, sum.PlayerName)
	if err != nil {
		return err
	}
	now := lb.now().Unix()
	if stats == nil {
		stats = &PlayerStats{CreatedAt: now}
	}
	applySummary(stats, sum, now)

	if err := lb.savePlayerStats(ctx, stats); err != nil {
		return err
	}
	if err := lb.updateBoards(ctx, stats, sum.PeakBankroll); err != nil {
		return err
	}
	return lb.pushRecent(ctx, sum)
}

// updateBoards 更新排行榜, keeping the best score per board.
func (lb *Leaderboard) updateBoards(ctx context.Context, stats *PlayerStats, sessionPeak int) error {
	member := playerKey(stats.PlayerName)

	if err := lb.redis.ZAdd(ctx, leaderboardKey, redis.Z{
		Score:  float64(stats.BestBankroll),
		Member: member,
	}).Err(); err != nil {
		return err
	}

	for board, ttl := range map[Board]time.Duration{
		BoardDaily:  48 * time.Hour,
		BoardWeekly: 8 * 24 * time.Hour,
	} {
		key := lb.boardKey(board)
		if err := lb.redis.ZAddArgs(ctx, key, redis.ZAddArgs{
			GT:      true,
			Members: []redis.Z{{Score: float64(sessionPeak), Member: member}},
		}).Err(); err != nil {
			return err
		}
		lb.redis.Expire(ctx, key, ttl)
	}
	return nil
}

func (lb *Leaderboard) pushRecent(ctx context.Context, sum game.Summary) error {
	data, err := json.Marshal(sum)
	if err != nil {
		return err
	}
	pipe := lb.redis.TxPipeline()
	pipe.LPush(ctx, recentSessionsKey, data)
	pipe.LTrim(ctx, recentSessionsKey, 0, RecentLimit-1)
	_, err = pipe.Exec(ctx)
	return err
}

// Top 获取排行榜（从高到低）
func (lb *Leaderboard) Top(ctx context.Context, board Board, limit int) ([]LeaderboardEntry, error) {
	if limit <= 0 {
		return nil, nil
	}

	results, err := lb.redis.ZRevRangeWithScores(ctx, lb.boardKey(board), 0, int64(limit-1)).Result()
	if err != nil {
		return nil, err
	}

	entries := make([]LeaderboardEntry, 0, len(results))
	for _, result := range results {
		member, ok := result.Member.(string)
		if !ok {
			continue
		}
		stats, err := lb.PlayerStats(ctx, member)
		if err != nil || stats == nil {
			continue
		}

		entries = append(entries, LeaderboardEntry{
			Rank:         len(entries) + 1,
			PlayerName:   stats.PlayerName,
			BestBankroll: int(result.Score),
			Sessions:     stats.Sessions,
			Survivals:    stats.Survivals,
			RoundWinRate: stats.RoundWinRate(),
		})
	}
	return entries, nil
}

// PlayerRank 获取玩家总榜排名, -1 when not ranked.
func (lb *Leaderboard) PlayerRank(ctx context.Context, name string) (int64, error) {
	rank, err := lb.redis.ZRevRank(ctx, leaderboardKey, playerKey(name)).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return -1, nil // 未上榜
		}
		return -1, err
	}
	return rank + 1, nil // Redis 排名从 0 开始
}

// Recent returns the latest finished sessions, newest first.
func (lb *Leaderboard) Recent(ctx context.Context, limit int) ([]game.Summary, error) {
	if limit <= 0 {
		return nil, nil
	}
	raw, err := lb.redis.LRange(ctx, recentSessionsKey, 0, int64(limit-1)).Result()
	if err != nil {
		return nil, err
	}

	out := make([]game.Summary, 0, len(raw))
	for _, item := range raw {
		var sum game.Summary
		if err := json.Unmarshal([]byte(item), &sum); err != nil {
			return nil, fmt.Errorf("decode recent session: %w", err)
		}
		out = append(out, sum)
	}
	return out, nil
}
