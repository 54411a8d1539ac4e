package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	_ "github.com/joho/godotenv/autoload"
	"github.com/redis/go-redis/v9"
	"golang.org/x/term"

	"github.com/palemoky/ba-cay/internal/config"
	"github.com/palemoky/ba-cay/internal/console"
	"github.com/palemoky/ba-cay/internal/game"
	"github.com/palemoky/ba-cay/internal/logger"
	"github.com/palemoky/ba-cay/internal/sound"
	"github.com/palemoky/ba-cay/internal/storage"
	"github.com/palemoky/ba-cay/internal/ui"
	"github.com/palemoky/ba-cay/internal/ui/model"
)

func main() {
	configPath := flag.String("config", "configs/config.yaml", "config file path")
	mode := flag.String("mode", "auto", "driver: auto, tui or console")
	name := flag.String("name", "", "player name (console mode skips the prompt)")
	bots := flag.Int("bots", -1, "number of bots (console mode skips the prompt)")
	flag.Parse()

	if err := run(*configPath, *mode, *name, *bots); err != nil {
		fmt.Fprintln(os.Stderr, "ba-cay:", err)
		os.Exit(1)
	}
}

func run(configPath, mode, name string, bots int) (err error) {
	cfg, err := config.Load(configPath)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	if err := logger.Init(cfg.Log.Level); err != nil {
		fmt.Fprintln(os.Stderr, "logging disabled:", err)
	}
	defer logger.Close()
	defer func() {
		if r := recover(); r != nil {
			logger.LogPanic(r)
			err = fmt.Errorf("panic: %v", r)
		}
	}()

	board := openLeaderboard(cfg.Redis)

	if mode == "auto" {
		mode = "console"
		if term.IsTerminal(int(os.Stdin.Fd())) && term.IsTerminal(int(os.Stdout.Fd())) {
			mode = "tui"
		}
	}
	logger.LogInfo("starting in %s mode", mode)

	switch mode {
	case "tui":
		return runTUI(cfg, board)
	case "console":
		return runConsole(cfg, board, name, bots)
	default:
		return fmt.Errorf("unknown mode %q", mode)
	}
}

// openLeaderboard returns nil when redis is not configured or unreachable.
func openLeaderboard(rc config.RedisConfig) *storage.Leaderboard {
	if rc.Addr == "" {
		return nil
	}
	rdb := redis.NewClient(&redis.Options{
		Addr:     rc.Addr,
		Password: rc.Password,
		DB:       rc.DB,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	if err := rdb.Ping(ctx).Err(); err != nil {
		logger.LogError("redis %s unreachable, leaderboard disabled: %v", rc.Addr, err)
		_ = rdb.Close()
		return nil
	}
	return storage.NewLeaderboard(rdb)
}

func recordSession(board *storage.Leaderboard, sum game.Summary) {
	if board == nil {
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	if err := board.RecordSession(ctx, sum); err != nil {
		logger.LogError("record session %s: %v", sum.SessionID, err)
	}
}

func sessionOptions(cfg *config.Config) []game.Option {
	return []game.Option{
		game.WithBankroll(cfg.Game.StartingBankroll),
		game.WithMinBet(cfg.Game.MinBet),
		game.WithLogger(logger.Logger()),
	}
}

func runTUI(cfg *config.Config, board *storage.Leaderboard) error {
	sm := sound.NewSoundManager(cfg.Sound.Dir)
	if cfg.Sound.Enabled {
		go func() {
			if err := sm.Init(); err != nil {
				logger.LogError("sound init: %v", err)
			}
		}()
	}
	defer sm.Close()

	settings := model.DefaultSettings()
	settings.Pacing = game.Pacing{
		DealDelay:   cfg.Pace.DealDelay(),
		RevealDelay: cfg.Pace.RevealDelay(),
		BetStep:     cfg.Game.BetStep,
		MinBet:      cfg.Game.MinBet,
		DefaultBet:  cfg.Game.DefaultBet,
	}
	settings.Bankroll = cfg.Game.StartingBankroll
	settings.MaxBots = cfg.Game.MaxBots
	settings.Frame = cfg.Pace.FrameInterval()
	settings.Sound = sm
	settings.NewSession = func(name string, bots int) *game.Session {
		return game.NewSession(name, bots, sessionOptions(cfg)...)
	}
	settings.OnSessionEnd = func(sum game.Summary) { recordSession(board, sum) }

	p := tea.NewProgram(ui.NewAppModel(settings), tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("run tui: %w", err)
	}
	return nil
}

func runConsole(cfg *config.Config, board *storage.Leaderboard, name string, bots int) error {
	con := console.New(os.Stdin, os.Stdout, cfg.Game.MaxBots)
	con.Banner()

	if name == "" || bots < 0 {
		var err error
		name, bots, err = con.AskSetup()
		if err != nil {
			return err
		}
	} else {
		check := game.CheckSetup(name, fmt.Sprint(bots), cfg.Game.MaxBots)
		if check.NameErr != nil {
			return check.NameErr
		}
		if check.BotsErr != nil {
			return check.BotsErr
		}
		name, bots = check.Name, check.Bots
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	sess := game.NewSession(name, bots, sessionOptions(cfg)...)
	_, err := game.NewTurnDriver(sess, con, cfg.Pace.ConsoleRevealDelay()).Run(ctx)
	if sess.Status().Over() {
		recordSession(board, sess.Summary())
	}
	return err
}
