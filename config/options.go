package config

import "strings"

// DefaultEnvPrefix 默认环境变量前缀.
const DefaultEnvPrefix = "RINGKIT"

// Options 配置加载选项.
type Options struct {
	// EnvPrefix 环境变量前缀，例如 "RINGKIT" 会将 RINGKIT_LOG_LEVEL 映射到 log.level
	EnvPrefix string

	// EnvKeyReplacer 环境变量键替换器，默认将 . 替换为 _
	EnvKeyReplacer *strings.Replacer

	// AutomaticEnv 是否自动绑定环境变量
	AutomaticEnv bool

	// ConfigType 显式指定配置文件类型（yaml, json, toml）
	ConfigType string

	// Defaults 默认配置值
	Defaults map[string]any
}

// DefaultOptions 返回默认选项.
func DefaultOptions() *Options {
	return &Options{
		EnvPrefix:      DefaultEnvPrefix,
		EnvKeyReplacer: strings.NewReplacer(".", "_"),
		AutomaticEnv:   true,
	}
}

// Option 配置选项函数.
type Option func(*Options)

// WithEnvPrefix 设置环境变量前缀.
func WithEnvPrefix(prefix string) Option {
	return func(o *Options) {
		o.EnvPrefix = prefix
	}
}

// WithoutEnv 关闭环境变量绑定.
func WithoutEnv() Option {
	return func(o *Options) {
		o.AutomaticEnv = false
	}
}

// WithDefaults 设置默认值.
func WithDefaults(defaults map[string]any) Option {
	return func(o *Options) {
		o.Defaults = defaults
	}
}

// WithConfigType 显式指定配置文件类型.
func WithConfigType(configType string) Option {
	return func(o *Options) {
		o.ConfigType = configType
	}
}
