package config

import (
	"errors"
	"fmt"
	"strings"
	"sync"

	"github.com/spf13/viper"
)

const envPrefix = "YDBGATHER"

// Manager loads configuration from file, environment and defaults.
type Manager struct {
	config     *Config
	viper      *viper.Viper
	configFile string
	mu         sync.RWMutex
}

// ManagerOption configures a Manager.
type ManagerOption func(*Manager)

// WithConfigFile reads exactly this file instead of searching the config paths.
func WithConfigFile(path string) ManagerOption {
	return func(m *Manager) { m.configFile = path }
}

// NewManager creates a new configuration manager.
func NewManager(opts ...ManagerOption) (*Manager, error) {
	m := &Manager{viper: viper.New()}
	for _, opt := range opts {
		opt(m)
	}
	v := m.viper

	v.SetConfigType("toml")
	if m.configFile != "" {
		v.SetConfigFile(m.configFile)
	} else {
		v.SetConfigName("config")
		configDir, err := GetConfigDir()
		if err != nil {
			return nil, fmt.Errorf("failed to determine config directory: %w\nCheck XDG_CONFIG_HOME environment variable or HOME directory", err)
		}
		v.AddConfigPath(configDir)
		v.AddConfigPath(".")
	}

	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.BindEnv("logging.level", envPrefix+"_LOG_LEVEL"); err != nil {
		return nil, fmt.Errorf("failed to bind %s_LOG_LEVEL: %w", envPrefix, err)
	}
	if err := v.BindEnv("logging.format", envPrefix+"_LOG_FORMAT"); err != nil {
		return nil, fmt.Errorf("failed to bind %s_LOG_FORMAT: %w", envPrefix, err)
	}

	return m, nil
}

// Load reads the configuration. A missing file in the search paths is not an
// error; defaults and the environment still apply.
func (m *Manager) Load() error {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.setDefaults()

	if err := m.readConfigFile(); err != nil {
		return err
	}

	cfg := &Config{}
	if err := m.viper.Unmarshal(cfg); err != nil {
		return fmt.Errorf(
			"failed to parse config file at %s: %w\nCheck for syntax errors, invalid values, or type mismatches",
			m.viper.ConfigFileUsed(),
			err,
		)
	}
	normalizeConfig(cfg)

	if err := validateConfig(cfg); err != nil {
		return fmt.Errorf("configuration validation failed: %w", err)
	}

	m.config = cfg
	return nil
}

func (m *Manager) readConfigFile() error {
	err := m.viper.ReadInConfig()
	if err == nil {
		return nil
	}
	var notFound viper.ConfigFileNotFoundError
	if errors.As(err, &notFound) {
		return nil
	}
	file := m.viper.ConfigFileUsed()
	if file == "" {
		file = m.configFile
	}
	return fmt.Errorf("failed to read config file at %s: %w\nCheck the file format (must be valid TOML) and permissions", file, err)
}

// Get returns the loaded configuration, or the defaults before Load.
func (m *Manager) Get() *Config {
	m.mu.RLock()
	defer m.mu.RUnlock()
	if m.config == nil {
		return DefaultConfig()
	}
	return m.config
}

// ConfigFileUsed returns the file that was read, if any.
func (m *Manager) ConfigFileUsed() string {
	return m.viper.ConfigFileUsed()
}

func (m *Manager) setDefaults() {
	defaults := DefaultConfig()

	m.viper.SetDefault("logging.level", defaults.Logging.Level)
	m.viper.SetDefault("logging.format", defaults.Logging.Format)

	m.viper.SetDefault("output.dir", defaults.Output.Dir)
	m.viper.SetDefault("output.dir_perm", defaults.Output.DirPerm)
	m.viper.SetDefault("output.file_perm", defaults.Output.FilePerm)

	m.viper.SetDefault("inspector.debugger", defaults.Inspector.Debugger)
	m.viper.SetDefault("inspector.file_inspector", defaults.Inspector.FileInspector)
	m.viper.SetDefault("inspector.proc_root", defaults.Inspector.ProcRoot)
	m.viper.SetDefault("inspector.frame_window", defaults.Inspector.FrameWindow)

	m.viper.SetDefault("system.env_prefixes", defaults.System.EnvPrefixes)
	m.viper.SetDefault("system.core_pattern_path", defaults.System.CorePatternPath)

	m.viper.SetDefault("captures.enabled", defaults.Captures.Enabled)
	m.viper.SetDefault("captures.include", defaults.Captures.Include)
	m.viper.SetDefault("captures.journal_since", defaults.Captures.JournalSince)
}

func normalizeConfig(cfg *Config) {
	cfg.Logging.Level = strings.ToLower(strings.TrimSpace(cfg.Logging.Level))
	if cfg.Logging.Level == "" {
		cfg.Logging.Level = defaultLogLevel
	}
	if cfg.Logging.Level == "warning" {
		cfg.Logging.Level = "warn"
	}
	cfg.Logging.Format = strings.ToLower(strings.TrimSpace(cfg.Logging.Format))
	if cfg.Logging.Format == "" || cfg.Logging.Format == "text" {
		cfg.Logging.Format = defaultLogFormat
	}

	if cfg.Output.DirPerm == "" {
		cfg.Output.DirPerm = defaultDirPerm
	}
	if cfg.Output.FilePerm == "" {
		cfg.Output.FilePerm = defaultFilePerm
	}

	if cfg.Inspector.Debugger == "" {
		cfg.Inspector.Debugger = defaultDebugger
	}
	if cfg.Inspector.FileInspector == "" {
		cfg.Inspector.FileInspector = defaultFileInspector
	}
	if cfg.Inspector.ProcRoot == "" {
		cfg.Inspector.ProcRoot = defaultProcRoot
	}

	if cfg.Captures.JournalSince == "" {
		cfg.Captures.JournalSince = defaultJournalSince
	}
}
