package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"time"

	"github.com/kelseyhightower/envconfig"
	"gopkg.in/yaml.v3"
)

// EnvPrefix 环境变量前缀, e.g. BACAY_GAME_MIN_BET.
const EnvPrefix = "BACAY"

// Config 客户端配置
type Config struct {
	Game  GameConfig  `yaml:"game" envconfig:"game"`
	Pace  PaceConfig  `yaml:"pace" envconfig:"pace"`
	Redis RedisConfig `yaml:"redis" envconfig:"redis"`
	Log   LogConfig   `yaml:"log" envconfig:"log"`
	Sound SoundConfig `yaml:"sound" envconfig:"sound"`
}

// GameConfig 游戏配置
type GameConfig struct {
	StartingBankroll int `yaml:"starting_bankroll" envconfig:"starting_bankroll"`
	MaxBots          int `yaml:"max_bots" envconfig:"max_bots"`
	MinBet           int `yaml:"min_bet" envconfig:"min_bet"`
	BetStep          int `yaml:"bet_step" envconfig:"bet_step"`
	DefaultBet       int `yaml:"default_bet" envconfig:"default_bet"`
}

// PaceConfig 节奏配置
type PaceConfig struct {
	DealDelayMs          int `yaml:"deal_delay_ms" envconfig:"deal_delay_ms"`                     // 发牌后停顿（毫秒）
	RevealDelayMs        int `yaml:"reveal_delay_ms" envconfig:"reveal_delay_ms"`                 // 每家亮牌间隔（毫秒）
	ConsoleRevealDelayMs int `yaml:"console_reveal_delay_ms" envconfig:"console_reveal_delay_ms"` // 文本模式亮牌间隔（毫秒）
	FPS                  int `yaml:"fps" envconfig:"fps"`
}

// RedisConfig Redis 配置. An empty Addr disables the leaderboard.
type RedisConfig struct {
	Addr     string `yaml:"addr" envconfig:"addr"`
	Password string `yaml:"password" envconfig:"password"`
	DB       int    `yaml:"db" envconfig:"db"`
}

// LogConfig 日志配置
type LogConfig struct {
	Level string `yaml:"level" envconfig:"level"`
}

// SoundConfig 音效配置
type SoundConfig struct {
	Enabled bool   `yaml:"enabled" envconfig:"enabled"`
	Dir     string `yaml:"dir" envconfig:"dir"`
}

// DealDelay 返回发牌停顿时长
func (c *PaceConfig) DealDelay() time.Duration {
	return time.Duration(c.DealDelayMs) * time.Millisecond
}

// RevealDelay 返回亮牌间隔
func (c *PaceConfig) RevealDelay() time.Duration {
	return time.Duration(c.RevealDelayMs) * time.Millisecond
}

// ConsoleRevealDelay 返回文本模式亮牌间隔
func (c *PaceConfig) ConsoleRevealDelay() time.Duration {
	return time.Duration(c.ConsoleRevealDelayMs) * time.Millisecond
}

// FrameInterval 返回每帧时长
func (c *PaceConfig) FrameInterval() time.Duration {
	return time.Second / time.Duration(c.FPS)
}

// Load reads the YAML file at path, fills defaults and applies BACAY_*
// environment overrides. A missing file yields the defaults.
func Load(path string) (*Config, error) {
	cfg := *Default()

	if path != "" {
		data, err := os.ReadFile(path)
		switch {
		case errors.Is(err, fs.ErrNotExist):
		case err != nil:
			return nil, err
		default:
			if err := yaml.Unmarshal(data, &cfg); err != nil {
				return nil, fmt.Errorf("parse %s: %w", path, err)
			}
		}
	}

	fillDefaults(&cfg)

	if err := envconfig.Process(EnvPrefix, &cfg); err != nil {
		return nil, fmt.Errorf("env overrides: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// 显式写成零值的字段回落到默认值
func fillDefaults(cfg *Config) {
	def := Default()

	if cfg.Game.StartingBankroll == 0 {
		cfg.Game.StartingBankroll = def.Game.StartingBankroll
	}
	if cfg.Game.MaxBots == 0 {
		cfg.Game.MaxBots = def.Game.MaxBots
	}
	if cfg.Game.MinBet == 0 {
		cfg.Game.MinBet = def.Game.MinBet
	}
	if cfg.Game.BetStep == 0 {
		cfg.Game.BetStep = def.Game.BetStep
	}
	if cfg.Game.DefaultBet == 0 {
		cfg.Game.DefaultBet = def.Game.DefaultBet
	}
	if cfg.Pace.DealDelayMs == 0 {
		cfg.Pace.DealDelayMs = def.Pace.DealDelayMs
	}
	if cfg.Pace.RevealDelayMs == 0 {
		cfg.Pace.RevealDelayMs = def.Pace.RevealDelayMs
	}
	if cfg.Pace.ConsoleRevealDelayMs == 0 {
		cfg.Pace.ConsoleRevealDelayMs = def.Pace.ConsoleRevealDelayMs
	}
	if cfg.Pace.FPS == 0 {
		cfg.Pace.FPS = def.Pace.FPS
	}
	if cfg.Log.Level == "" {
		cfg.Log.Level = def.Log.Level
	}
	if cfg.Sound.Dir == "" {
		cfg.Sound.Dir = def.Sound.Dir
	}
}

// Default 返回默认配置
func Default() *Config {
	return &Config{
		Game: GameConfig{
			StartingBankroll: 1000,
			MaxBots:          13,
			MinBet:           10,
			BetStep:          10,
			DefaultBet:       50,
		},
		Pace: PaceConfig{
			DealDelayMs:          2000,
			RevealDelayMs:        1000,
			ConsoleRevealDelayMs: 700,
			FPS:                  30,
		},
		Log: LogConfig{
			Level: "info",
		},
		Sound: SoundConfig{
			Enabled: true,
			Dir:     "assets/sounds",
		},
	}
}

// Validate 校验配置取值范围
func (c *Config) Validate() error {
	switch {
	case c.Game.StartingBankroll <= 0:
		return fmt.Errorf("game.starting_bankroll must be positive, got %d", c.Game.StartingBankroll)
	case c.Game.MaxBots < 0 || c.Game.MaxBots > 13:
		return fmt.Errorf("game.max_bots must be within 0..13, got %d", c.Game.MaxBots)
	case c.Game.MinBet <= 0:
		return fmt.Errorf("game.min_bet must be positive, got %d", c.Game.MinBet)
	case c.Game.BetStep <= 0:
		return fmt.Errorf("game.bet_step must be positive, got %d", c.Game.BetStep)
	case c.Game.DefaultBet < c.Game.MinBet:
		return fmt.Errorf("game.default_bet %d is below min_bet %d", c.Game.DefaultBet, c.Game.MinBet)
	case c.Pace.DealDelayMs < 0 || c.Pace.RevealDelayMs < 0 || c.Pace.ConsoleRevealDelayMs < 0:
		return errors.New("pace delays must not be negative")
	case c.Pace.FPS <= 0 || c.Pace.FPS > 120:
		return fmt.Errorf("pace.fps must be within 1..120, got %d", c.Pace.FPS)
	case c.Redis.DB < 0:
		return fmt.Errorf("redis.db must not be negative, got %d", c.Redis.DB)
	}
	return nil
}
