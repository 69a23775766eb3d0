package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
	"gopkg.in/yaml.v3"
)

type Config struct {
	Server struct {
		Addr           string   `yaml:"addr"`
		GinMode        string   `yaml:"ginMode"`
		AllowedOrigins []string `yaml:"allowedOrigins"`
	} `yaml:"server"`

	Client struct {
		APIURL    string `yaml:"apiURL"`
		StorePath string `yaml:"storePath"`
		LogPath   string `yaml:"logPath"`
	} `yaml:"client"`

	Log struct {
		Level string `yaml:"level"`
	} `yaml:"log"`
}

// Default 默认配置，与前端约定的3001端口一致
func Default() *Config {
	cfg := &Config{}
	cfg.Server.Addr = ":3001"
	cfg.Server.GinMode = "release"
	cfg.Server.AllowedOrigins = []string{"*"}
	cfg.Client.APIURL = "http://localhost:3001"
	cfg.Client.StorePath = defaultStorePath()
	cfg.Client.LogPath = "slate.log"
	cfg.Log.Level = "info"
	return cfg
}

// LoadConfig 读取YAML配置文件，文件不存在时使用默认值，最后应用环境变量
func LoadConfig(path string) (*Config, error) {
	cfg := Default()

	if path != "" {
		data, err := os.ReadFile(path)
		switch {
		case errors.Is(err, fs.ErrNotExist):
		case err != nil:
			return nil, fmt.Errorf("failed to read config file: %w", err)
		default:
			if err := yaml.Unmarshal(data, cfg); err != nil {
				return nil, fmt.Errorf("failed to unmarshal yaml: %w", err)
			}
		}
	}

	applyEnv(cfg)
	if cfg.Client.StorePath == "" {
		cfg.Client.StorePath = defaultStorePath()
	}
	if err := validateGinMode(cfg.Server.GinMode); err != nil {
		return nil, err
	}
	return cfg, nil
}

// validateGinMode gin.SetMode遇到未知模式会panic，这里提前返回错误
func validateGinMode(mode string) error {
	switch mode {
	case gin.DebugMode, gin.ReleaseMode, gin.TestMode:
		return nil
	}
	return fmt.Errorf("invalid gin mode %q: want %s, %s or %s", mode, gin.DebugMode, gin.ReleaseMode, gin.TestMode)
}

func applyEnv(cfg *Config) {
	if v := os.Getenv("SLATE_ADDR"); v != "" {
		cfg.Server.Addr = v
	}
	if v := os.Getenv("GIN_MODE"); v != "" {
		cfg.Server.GinMode = v
	}
	if v := os.Getenv("SLATE_API_URL"); v != "" {
		cfg.Client.APIURL = v
	}
	if v := os.Getenv("SLATE_STORE_PATH"); v != "" {
		cfg.Client.StorePath = v
	}
	if v := os.Getenv("SLATE_LOG_LEVEL"); v != "" {
		cfg.Log.Level = v
	}
}

// InitLogger 初始化日志格式和级别
func InitLogger(level string) error {
	logrus.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	lvl, err := logrus.ParseLevel(level)
	if err != nil {
		return fmt.Errorf("invalid log level %q: %w", level, err)
	}
	logrus.SetLevel(lvl)
	return nil
}

// InitLogFile 将日志输出重定向到文件，终端界面运行时使用
func InitLogFile(logPath string) (*os.File, error) {
	logFile, err := os.OpenFile(logPath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0666)
	if err != nil {
		return nil, fmt.Errorf("failed to open log file: %w", err)
	}
	logrus.SetOutput(logFile)
	return logFile, nil
}

func defaultStorePath() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		dir = "."
	}
	return filepath.Join(dir, "slate", "form.db")
}
