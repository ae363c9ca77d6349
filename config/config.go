package config

import (
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"
	"unicode"

	"github.com/go-viper/mapstructure/v2"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env/v2"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
	"github.com/pkg/errors"
	"github.com/slighter12/go-lib/database/postgres"
)

const (
	defaultPath               = "."
	defaultMaxRequestBodySize = "100KB"

	defaultProviderTimeout      = 5 * time.Second
	defaultWriteBackTimeout     = 10 * time.Second
	defaultWriteBackConcurrency = 8
	defaultTokenTTL             = 24 * time.Hour
	defaultSlowQueryThreshold   = 200 * time.Millisecond
	defaultPoolMonitorInterval  = 5 * time.Second
	defaultViaCepBaseURL        = "https://viacep.com.br"
	defaultCepAbertoBaseURL     = "https://www.cepaberto.com"
)

type Config struct {
	Env struct {
		Env         string `json:"env" yaml:"env"`
		ServiceName string `json:"serviceName" yaml:"serviceName"`
		Debug       bool   `json:"debug" yaml:"debug"`
		Log         Log    `json:"log" yaml:"log"`
	} `json:"env" yaml:"env"`

	HTTP struct {
		Port               int    `json:"port" yaml:"port"`
		MaxRequestBodySize string `json:"maxRequestBodySize" yaml:"maxRequestBodySize"`
		Timeouts           struct {
			ReadTimeout       time.Duration `json:"readTimeout" yaml:"readTimeout"`
			ReadHeaderTimeout time.Duration `json:"readHeaderTimeout" yaml:"readHeaderTimeout"`
			WriteTimeout      time.Duration `json:"writeTimeout" yaml:"writeTimeout"`
			IdleTimeout       time.Duration `json:"idleTimeout" yaml:"idleTimeout"`
		} `json:"timeouts" yaml:"timeouts"`
	} `json:"http" yaml:"http"`

	Postgres *postgres.DBConn `json:"postgres" yaml:"postgres" mapstructure:"postgres"`

	// Database holds schema management options
	Database *DatabaseConfig `json:"database" yaml:"database"`

	// Auth configuration for the bearer token guard on the address API
	Auth *AuthConfig `json:"auth" yaml:"auth"`

	// Resolver configuration for the provider race
	Resolver *ResolverConfig `json:"resolver" yaml:"resolver"`

	// WriteBack configuration for persisting provider-resolved addresses
	WriteBack *WriteBackConfig `json:"writeBack" yaml:"writeBack"`

	// Providers configuration for the external zipcode services
	Providers ProvidersConfig `json:"providers" yaml:"providers"`
}

type Log struct {
	Pretty bool   `json:"pretty" yaml:"pretty"`
	Level  string `json:"level" yaml:"level"`
}

// DatabaseConfig defines schema management options
type DatabaseConfig struct {
	// Apply pending migrations when the service starts
	AutoMigrate bool `json:"autoMigrate" yaml:"autoMigrate"`

	// Statements slower than this are logged as warnings
	SlowQueryThreshold time.Duration `json:"slowQueryThreshold" yaml:"slowQueryThreshold"`

	// Period of the connection pool wait monitor
	PoolMonitorInterval time.Duration `json:"poolMonitorInterval" yaml:"poolMonitorInterval"`
}

// AuthConfig defines the JWT guard configuration
type AuthConfig struct {
	Enabled  bool          `json:"enabled" yaml:"enabled"`
	Secret   string        `json:"secret" yaml:"secret"`
	Issuer   string        `json:"issuer" yaml:"issuer"`
	TokenTTL time.Duration `json:"tokenTtl" yaml:"tokenTtl"`
}

// ResolverConfig defines how providers are raced
type ResolverConfig struct {
	// Deadline applied to every single provider call
	ProviderTimeout time.Duration `json:"providerTimeout" yaml:"providerTimeout"`

	// Share one race between concurrent lookups of the same zipcode
	Coalesce bool `json:"coalesce" yaml:"coalesce"`
}

// WriteBackConfig defines the background persistence of resolved addresses
type WriteBackConfig struct {
	// Deadline for one write-back, independent of the originating request
	Timeout time.Duration `json:"timeout" yaml:"timeout"`

	// Maximum number of write-backs running at the same time
	MaxConcurrent int `json:"maxConcurrent" yaml:"maxConcurrent"`
}

// ProvidersConfig groups the external zipcode services
type ProvidersConfig struct {
	ViaCep    *ViaCepConfig    `json:"viaCep" yaml:"viaCep"`
	CepAberto *CepAbertoConfig `json:"cepAberto" yaml:"cepAberto"`
}

// ViaCepConfig defines the ViaCEP provider
type ViaCepConfig struct {
	Enabled bool   `json:"enabled" yaml:"enabled"`
	BaseURL string `json:"baseUrl" yaml:"baseUrl"`
}

// CepAbertoConfig defines the CEP Aberto provider
type CepAbertoConfig struct {
	Enabled bool   `json:"enabled" yaml:"enabled"`
	BaseURL string `json:"baseUrl" yaml:"baseUrl"`
	Token   string `json:"token" yaml:"token"`

	// Requests per second allowed by the account; zero disables limiting
	RateLimit float64 `json:"rateLimit" yaml:"rateLimit"`
	Burst     int     `json:"burst" yaml:"burst"`
}

// LoadWithEnv loads .yaml files through koanf.
func LoadWithEnv[T any](currEnv string, configPath ...string) (*T, error) {
	cfg := new(T)
	koanfInstance := koanf.New(".")

	// Build list of paths to search for config file
	searchPaths := []string{defaultPath}
	if len(configPath) != 0 {
		pwd, err := os.Getwd()
		if err != nil {
			return nil, errors.Wrap(err, "os.Getwd")
		}
		for _, path := range configPath {
			abs := filepath.Join(pwd, path)
			searchPaths = append(searchPaths, abs)
		}
	}

	// Try to find and load the config file
	var configFile string
	var found bool
	for _, path := range searchPaths {
		candidate := filepath.Join(path, currEnv+".yaml")
		if _, err := os.Stat(candidate); err == nil {
			configFile = candidate
			found = true

			break
		}
	}

	if !found {
		return nil, errors.Errorf("config file %s.yaml not found in any search path", currEnv)
	}

	// Load YAML config file
	if err := koanfInstance.Load(file.Provider(configFile), yaml.Parser()); err != nil {
		return nil, errors.Wrapf(err, "read %s config failed", currEnv)
	}

	existingConfigMap := koanfInstance.Raw()

	// Load environment variables
	if err := koanfInstance.Load(env.Provider(".", env.Opt{
		TransformFunc: func(k, v string) (string, any) {
			// Convert ENV_VAR_NAME to path and align each segment with existing YAML keys.
			// Example: POSTGRES_SSLMODE -> postgres.sslMode (not postgres.sslmode)
			key := canonicalizeEnvKey(k, existingConfigMap)

			return key, v
		},
	}), nil); err != nil {
		return nil, errors.Wrap(err, "load env variables failed")
	}

	// Unmarshal into the config struct (case-insensitive to match env vars)
	if err := koanfInstance.UnmarshalWithConf("", cfg, koanf.UnmarshalConf{
		DecoderConfig: &mapstructure.DecoderConfig{
			Result:           cfg,
			WeaklyTypedInput: true,
			DecodeHook: mapstructure.ComposeDecodeHookFunc(
				mapstructure.StringToTimeDurationHookFunc(),
			),
			MatchName: func(mapKey, fieldName string) bool {
				// Case-insensitive matching for env var overrides
				return strings.EqualFold(mapKey, fieldName)
			},
		},
	}); err != nil {
		return nil, errors.Wrapf(err, "unmarshal %s config failed", currEnv)
	}

	return cfg, nil
}

func New() (*Config, error) {
	cfg, err := LoadWithEnv[Config]("config", "config", "../config", "../../config")
	if err != nil {
		return nil, err
	}

	if strings.TrimSpace(cfg.HTTP.MaxRequestBodySize) == "" {
		cfg.HTTP.MaxRequestBodySize = defaultMaxRequestBodySize
	}

	// Build replicas from environment variables (POSTGRES_REPLICAS_0_HOST, POSTGRES_REPLICAS_0_PORT, etc.)
	if cfg.Postgres != nil {
		cfg.Postgres.Replicas = buildReplicasFromEnv()
	}

	ApplyDefaults(cfg)

	return cfg, nil
}

// ApplyDefaults fills the optional sections left empty by the config file.
func ApplyDefaults(cfg *Config) {
	if cfg.Database == nil {
		cfg.Database = &DatabaseConfig{}
	}
	if cfg.Database.SlowQueryThreshold <= 0 {
		cfg.Database.SlowQueryThreshold = defaultSlowQueryThreshold
	}
	if cfg.Database.PoolMonitorInterval <= 0 {
		cfg.Database.PoolMonitorInterval = defaultPoolMonitorInterval
	}

	if cfg.Auth == nil {
		cfg.Auth = &AuthConfig{}
	}
	if cfg.Auth.TokenTTL <= 0 {
		cfg.Auth.TokenTTL = defaultTokenTTL
	}

	if cfg.Resolver == nil {
		cfg.Resolver = &ResolverConfig{}
	}
	if cfg.Resolver.ProviderTimeout <= 0 {
		cfg.Resolver.ProviderTimeout = defaultProviderTimeout
	}

	if cfg.WriteBack == nil {
		cfg.WriteBack = &WriteBackConfig{}
	}
	if cfg.WriteBack.Timeout <= 0 {
		cfg.WriteBack.Timeout = defaultWriteBackTimeout
	}
	if cfg.WriteBack.MaxConcurrent <= 0 {
		cfg.WriteBack.MaxConcurrent = defaultWriteBackConcurrency
	}

	if cfg.Providers.ViaCep != nil && strings.TrimSpace(cfg.Providers.ViaCep.BaseURL) == "" {
		cfg.Providers.ViaCep.BaseURL = defaultViaCepBaseURL
	}
	if cfg.Providers.CepAberto != nil && strings.TrimSpace(cfg.Providers.CepAberto.BaseURL) == "" {
		cfg.Providers.CepAberto.BaseURL = defaultCepAbertoBaseURL
	}
}

func canonicalizeEnvKey(rawKey string, existing map[string]any) string {
	segments := strings.Split(strings.ToLower(rawKey), "_")
	canonical := make([]string, 0, len(segments))
	current := existing

	for _, segment := range segments {
		if segment == "" {
			continue
		}

		if matched, next, ok := findExistingSegment(current, segment); ok {
			canonical = append(canonical, matched)
			current = next
		} else {
			canonical = append(canonical, segment)
			current = nil
		}
	}

	return strings.Join(canonical, ".")
}

func findExistingSegment(current map[string]any, segment string) (matched string, next map[string]any, ok bool) {
	if len(current) == 0 {
		return "", nil, false
	}

	needle := normalizeToken(segment)
	for key, value := range current {
		if normalizeToken(key) != needle {
			continue
		}

		child, _ := value.(map[string]any)

		return key, child, true
	}

	return "", nil, false
}

func normalizeToken(s string) string {
	var normalized strings.Builder
	normalized.Grow(len(s))

	for _, r := range s {
		if !unicode.IsLetter(r) && !unicode.IsDigit(r) {
			continue
		}
		normalized.WriteRune(unicode.ToLower(r))
	}

	return normalized.String()
}

// buildReplicasFromEnv builds the replicas slice from environment variables.
// Environment variable format: POSTGRES_REPLICAS_{index}_{field}
// Example: POSTGRES_REPLICAS_0_HOST, POSTGRES_REPLICAS_0_PORT, POSTGRES_REPLICAS_0_USERNAME, POSTGRES_REPLICAS_0_PASSWORD
func buildReplicasFromEnv() []postgres.ConnectionConfig {
	var replicas []postgres.ConnectionConfig

	for i := 0; ; i++ {
		prefix := "POSTGRES_REPLICAS_" + strconv.Itoa(i) + "_"

		host := os.Getenv(prefix + "HOST")
		port := os.Getenv(prefix + "PORT")
		if host == "" || port == "" {
			// No more replicas or incomplete configuration.
			break
		}

		replica := postgres.ConnectionConfig{
			Host:     host,
			Port:     port,
			UserName: os.Getenv(prefix + "USERNAME"),
			Password: os.Getenv(prefix + "PASSWORD"),
		}

		replicas = append(replicas, replica)
	}

	return replicas
}
