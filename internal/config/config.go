package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
)

type Config struct {
	LogLevel  string    `yaml:"log-level" env:"LOG_LEVEL" env-default:"info"`
	Window    Window    `yaml:"window"`
	Render    Render    `yaml:"render"`
	Spectator Spectator `yaml:"spectator"`
}

type Window struct {
	Title     string `yaml:"title" env:"WINDOW_TITLE" env-default:"Tic Tac GPU"`
	Width     int    `yaml:"width" env:"WINDOW_WIDTH" env-default:"400"`
	Height    int    `yaml:"height" env:"WINDOW_HEIGHT" env-default:"400"`
	Resizable bool   `yaml:"resizable" env:"WINDOW_RESIZABLE" env-default:"false"`
}

type Render struct {
	Background      []float32 `yaml:"background" env:"RENDER_BACKGROUND" env-default:"0.04,0.09,0.09,1"`
	RoundOver       []float32 `yaml:"round-over" env:"RENDER_ROUND_OVER" env-default:"0.3,0.35,0.35,1"`
	PowerPreference string    `yaml:"power-preference" env:"RENDER_POWER_PREFERENCE" env-default:"high-performance"`
}

type Spectator struct {
	Enabled bool          `yaml:"enabled" env:"SPECTATOR_ENABLED" env-default:"false"`
	Channel string        `yaml:"channel" env:"SPECTATOR_CHANNEL" env-default:"tictacgpu:round"`
	Timeout time.Duration `yaml:"timeout" env:"SPECTATOR_TIMEOUT" env-default:"250ms"`
	Redis   Redis         `yaml:"redis"`
}

type Redis struct {
	Host string `yaml:"host" env:"REDIS_HOST" env-default:"localhost"`
	Port string `yaml:"port" env:"REDIS_PORT" env-default:"6379"`
}

// MustLoad - load all configurations in config.yml file. Without the file, defaults and the
// environment are used.
func MustLoad(path string) *Config {
	config, err := Load(path)
	if err != nil {
		panic(fmt.Errorf("unable to load config file: %w", err))
	}

	return config
}

func Load(path string) (*Config, error) {
	config := &Config{}

	if _, err := os.Stat(path); errors.Is(err, fs.ErrNotExist) {
		if err = cleanenv.ReadEnv(config); err != nil {
			return nil, err
		}
		return config, nil
	}

	if err := cleanenv.ReadConfig(path, config); err != nil {
		return nil, err
	}

	return config, nil
}

func (that *Redis) GetRedisAddr() string {
	return fmt.Sprintf("%s:%s", that.Host, that.Port)
}

// Color - returns rgba when it has exactly four components, fallback otherwise.
func Color(rgba []float32, fallback [4]float32) [4]float32 {
	if len(rgba) != 4 {
		return fallback
	}
	return [4]float32{rgba[0], rgba[1], rgba[2], rgba[3]}
}
