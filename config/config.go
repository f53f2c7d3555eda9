// Package config 命令行入口的 YAML 配置
// 计算库本身不读配置, 只认 Options; 优先级为 flag > 配置文件 > 默认值
package config

import (
	"fmt"
	"os"
	"strings"
	"sync/atomic"

	"github.com/sirupsen/logrus"
	mutualinfo "github.com/sragli/mutual-information"
	"github.com/sragli/mutual-information/errorx"
	"gopkg.in/yaml.v3"
)

// LogConfig 日志输出配置, File 为空时写 stderr
type LogConfig struct {
	Level     string `yaml:"level"`
	File      string `yaml:"file"`
	MaxSizeMB int    `yaml:"max_size_mb"`
}

type Config struct {
	Bins int       `yaml:"bins"`
	Base float64   `yaml:"base"`
	Log  LogConfig `yaml:"log"`
}

// 用 atomic.Value 存当前配置, 读取无锁
var cfgValue atomic.Value // stores *Config

func defaults() *Config {
	return &Config{
		Bins: mutualinfo.DefaultBins,
		Base: mutualinfo.DefaultBase,
		Log:  LogConfig{Level: "info", MaxSizeMB: 64},
	}
}

// Load 读取并校验配置文件, 缺省键落到默认值
func Load(path string) (*Config, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read yaml: %w", err)
	}

	c := defaults()
	if err := yaml.Unmarshal(b, c); err != nil {
		return nil, fmt.Errorf("unmarshal yaml: %w", err)
	}

	if c.Bins < 1 {
		return nil, errorx.Newf(errorx.ErrInvalidOption, "bins must be >= 1, got %d", c.Bins)
	}
	if c.Base <= 0 || c.Base == 1 {
		return nil, errorx.Newf(errorx.ErrInvalidOption, "base must be positive and != 1, got %v", c.Base)
	}
	c.Log.Level = strings.ToLower(strings.TrimSpace(c.Log.Level))
	if _, err := logrus.ParseLevel(c.Log.Level); err != nil {
		return nil, errorx.Newf(errorx.ErrInvalidOption, "unknown log level %q", c.Log.Level)
	}
	if c.Log.MaxSizeMB <= 0 {
		c.Log.MaxSizeMB = 64
	}
	return c, nil
}

func Init(path string) error {
	c, err := Load(path)
	if err != nil {
		return err
	}
	cfgValue.Store(c)
	return nil
}

// Get 未 Init 时返回默认配置
func Get() *Config {
	cAny := cfgValue.Load()
	if cAny == nil {
		return defaults()
	}
	return cAny.(*Config)
}

// Options 转换为计算入口的 Options
func (c *Config) Options() *mutualinfo.Options {
	return &mutualinfo.Options{Bins: c.Bins, Base: c.Base}
}
