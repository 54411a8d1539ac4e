// Command leaderboard prints the results of finished sessions stored in redis.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"strconv"
	"time"

	_ "github.com/joho/godotenv/autoload"
	"github.com/pterm/pterm"
	"github.com/redis/go-redis/v9"

	"github.com/palemoky/ba-cay/internal/config"
	"github.com/palemoky/ba-cay/internal/storage"
)

var errNoRedis = errors.New("redis.addr is not configured")

func main() {
	configPath := flag.String("config", "configs/config.yaml", "config file path")
	boardName := flag.String("board", "all", "board to show: all, daily or weekly")
	limit := flag.Int("limit", 10, "number of entries")
	player := flag.String("player", "", "show one player's stats")
	recent := flag.Int("recent", 0, "also list the latest N sessions")
	flag.Parse()

	if err := run(*configPath, *boardName, *limit, *player, *recent); err != nil {
		pterm.Error.Println(err)
		os.Exit(1)
	}
}

func run(configPath, boardName string, limit int, player string, recent int) error {
	board, err := parseBoard(boardName)
	if err != nil {
		return err
	}
	cfg, err := config.Load(configPath)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	if cfg.Redis.Addr == "" {
		return errNoRedis
	}

	rdb := redis.NewClient(&redis.Options{
		Addr:     cfg.Redis.Addr,
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})
	defer func() { _ = rdb.Close() }()

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := rdb.Ping(ctx).Err(); err != nil {
		return fmt.Errorf("redis %s: %w", cfg.Redis.Addr, err)
	}

	lb := storage.NewLeaderboard(rdb)
	if player != "" {
		return printPlayer(ctx, os.Stdout, lb, player)
	}
	if err := printBoard(ctx, os.Stdout, lb, board, limit); err != nil {
		return err
	}
	if recent > 0 {
		return printRecent(ctx, os.Stdout, lb, recent)
	}
	return nil
}

func parseBoard(name string) (storage.Board, error) {
	switch name {
	case "all", "all-time":
		return storage.BoardAllTime, nil
	case "daily":
		return storage.BoardDaily, nil
	case "weekly":
		return storage.BoardWeekly, nil
	default:
		return 0, fmt.Errorf("unknown board %q", name)
	}
}

func printBoard(ctx context.Context, w io.Writer, lb *storage.Leaderboard, board storage.Board, limit int) error {
	entries, err := lb.Top(ctx, board, limit)
	if err != nil {
		return fmt.Errorf("read %s board: %w", board, err)
	}

	fmt.Fprint(w, pterm.DefaultSection.Sprintf("Best bankrolls (%s)", board))
	if len(entries) == 0 {
		fmt.Fprintln(w, pterm.Info.Sprint("no finished sessions yet"))
		return nil
	}

	data := pterm.TableData{{"#", "Player", "Best", "Sessions", "Survived", "Rounds won"}}
	for _, e := range entries {
		data = append(data, []string{
			strconv.Itoa(e.Rank),
			e.PlayerName,
			strconv.Itoa(e.BestBankroll),
			strconv.Itoa(e.Sessions),
			strconv.Itoa(e.Survivals),
			fmt.Sprintf("%.1f%%", e.RoundWinRate),
		})
	}
	table, err := pterm.DefaultTable.WithHasHeader().WithData(data).Srender()
	if err != nil {
		return err
	}
	fmt.Fprintln(w, table)
	return nil
}

func printPlayer(ctx context.Context, w io.Writer, lb *storage.Leaderboard, name string) error {
	stats, err := lb.PlayerStats(ctx, name)
	if err != nil {
		return fmt.Errorf("read stats: %w", err)
	}
	if stats == nil {
		fmt.Fprintln(w, pterm.Warning.Sprintf("%s has not finished a session", name))
		return nil
	}
	rank, err := lb.PlayerRank(ctx, name)
	if err != nil {
		return fmt.Errorf("read rank: %w", err)
	}

	rankText := "-"
	if rank > 0 {
		rankText = strconv.FormatInt(rank, 10)
	}
	fmt.Fprint(w, pterm.DefaultSection.Sprint(stats.PlayerName))
	fmt.Fprintf(w, "Rank:          %s\n", rankText)
	fmt.Fprintf(w, "Best bankroll: %d\n", stats.BestBankroll)
	fmt.Fprintf(w, "Last bankroll: %d\n", stats.LastBankroll)
	fmt.Fprintf(w, "Sessions:      %d (survived %d, bust %d, quit %d)\n", stats.Sessions, stats.Survivals, stats.Busts, stats.Quits)
	fmt.Fprintf(w, "Rounds won:    %d/%d (%.1f%%)\n", stats.RoundsWon, stats.Rounds, stats.RoundWinRate())
	fmt.Fprintf(w, "Best streak:   %d\n", stats.MaxStreak)
	return nil
}

func printRecent(ctx context.Context, w io.Writer, lb *storage.Leaderboard, limit int) error {
	sessions, err := lb.Recent(ctx, limit)
	if err != nil {
		return fmt.Errorf("read recent sessions: %w", err)
	}

	fmt.Fprint(w, pterm.DefaultSection.Sprint("Recent sessions"))
	data := pterm.TableData{{"Player", "Bots", "Rounds", "Final", "Outcome"}}
	for _, s := range sessions {
		data = append(data, []string{
			s.PlayerName,
			strconv.Itoa(s.Bots),
			strconv.Itoa(s.Rounds),
			strconv.Itoa(s.FinalBankroll),
			s.Outcome,
		})
	}
	table, err := pterm.DefaultTable.WithHasHeader().WithData(data).Srender()
	if err != nil {
		return err
	}
	fmt.Fprintln(w, table)
	return nil
}
