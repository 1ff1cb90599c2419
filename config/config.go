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

const defaultPath = "."

type Config struct {
	Env struct {
		Env         string `json:"env" yaml:"env"`
		ServiceName string `json:"serviceName" yaml:"serviceName"`
		Debug       bool   `json:"debug" yaml:"debug"`
		Log         Log    `json:"log" yaml:"log"`
	} `json:"env" yaml:"env"`

	HTTP struct {
		Port     int `json:"port" yaml:"port"`
		Timeouts struct {
			ReadTimeout       time.Duration `json:"readTimeout" yaml:"readTimeout"`
			ReadHeaderTimeout time.Duration `json:"readHeaderTimeout" yaml:"readHeaderTimeout"`
			WriteTimeout      time.Duration `json:"writeTimeout" yaml:"writeTimeout"`
			IdleTimeout       time.Duration `json:"idleTimeout" yaml:"idleTimeout"`
		} `json:"timeouts" yaml:"timeouts"`
	} `json:"http" yaml:"http"`

	Postgres *postgres.DBConn `json:"postgres" yaml:"postgres" mapstructure:"postgres"`

	JWT *JWTConfig `json:"jwt" yaml:"jwt"`

	Apple *AppleConfig `json:"apple" yaml:"apple"`

	Google *GoogleConfig `json:"google" yaml:"google"`

	Otp *OtpConfig `json:"otp" yaml:"otp"`

	Mail *MailConfig `json:"mail" yaml:"mail"`

	Cookie *CookieConfig `json:"cookie" yaml:"cookie"`
}

// JWTConfig defines signing key material and token lifetimes. When a private
// key is configured, access tokens are signed RS256 so resource servers can
// verify them with the public key alone; otherwise the shared secret is used
// with HS256.
type JWTConfig struct {
	PrivateKey      string        `json:"privateKey" yaml:"privateKey"` // PEM-encoded RSA private key.
	PublicKey       string        `json:"publicKey" yaml:"publicKey"`   // PEM-encoded RSA public key.
	Secret          string        `json:"secret" yaml:"secret"`         // Symmetric fallback secret.
	Issuer          string        `json:"issuer" yaml:"issuer"`
	Audience        string        `json:"audience" yaml:"audience"`
	AccessTTL       time.Duration `json:"accessTtl" yaml:"accessTtl"`
	RefreshTTL      time.Duration `json:"refreshTtl" yaml:"refreshTtl"`
	RotationEnabled bool          `json:"rotationEnabled" yaml:"rotationEnabled"`
}

// AppleConfig defines the Sign in with Apple client credentials.
type AppleConfig struct {
	TeamID        string `json:"teamId" yaml:"teamId"`
	KeyID         string `json:"keyId" yaml:"keyId"`
	ServicesID    string `json:"servicesId" yaml:"servicesId"`   // The client_id presented to Apple.
	PrivateKey    string `json:"privateKey" yaml:"privateKey"`   // PEM-encoded EC private key (P-256).
	TokenEndpoint string `json:"tokenEndpoint" yaml:"tokenEndpoint"` // Override for tests; defaults to Apple's endpoint.
}

// GoogleConfig defines the Google Sign-In client configuration.
type GoogleConfig struct {
	ClientID          string `json:"clientId" yaml:"clientId"`
	TokenInfoEndpoint string `json:"tokenInfoEndpoint" yaml:"tokenInfoEndpoint"` // Override for tests.
}

// OtpConfig defines email one-time-passcode issuance and verification limits.
type OtpConfig struct {
	CodeTTL         time.Duration `json:"codeTtl" yaml:"codeTtl"`
	MaxAttempts     int           `json:"maxAttempts" yaml:"maxAttempts"`
	RateLimitWindow time.Duration `json:"rateLimitWindow" yaml:"rateLimitWindow"`
	RateLimitMax    int           `json:"rateLimitMax" yaml:"rateLimitMax"`
}

// MailConfig defines the SMTP transport for outbound verification mail.
// When Host is empty the service falls back to a log-only mailer for
// local development.
type MailConfig struct {
	Host     string `json:"host" yaml:"host"`
	Port     int    `json:"port" yaml:"port"`
	Username string `json:"username" yaml:"username"`
	Password string `json:"password" yaml:"password"`
	From     string `json:"from" yaml:"from"`
}

// CookieConfig controls the web refresh-token cookie.
type CookieConfig struct {
	Secure bool   `json:"secure" yaml:"secure"`
	Domain string `json:"domain" yaml:"domain"`
}

type Log struct {
	Pretty bool   `json:"pretty" yaml:"pretty"`
	Level  string `json:"level" yaml:"level"`
}

// Defaults applied when the YAML leaves auth knobs unset.
const (
	defaultAccessTTL       = 15 * time.Minute
	defaultRefreshTTL      = 7 * 24 * time.Hour
	defaultOtpTTL          = 10 * time.Minute
	defaultOtpMaxAttempts  = 3
	defaultOtpRateWindow   = time.Hour
	defaultOtpRateMax      = 5
	defaultIssuer          = "gazette"
	defaultAudience        = "gazette-clients"
)

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

	applyAuthDefaults(cfg)

	// Build replicas from environment variables (POSTGRES_REPLICAS_0_HOST, POSTGRES_REPLICAS_0_PORT, etc.)
	if cfg.Postgres != nil {
		cfg.Postgres.Replicas = buildReplicasFromEnv()
	}

	return cfg, nil
}

func applyAuthDefaults(cfg *Config) {
	if cfg.JWT == nil {
		cfg.JWT = &JWTConfig{}
	}
	if cfg.JWT.AccessTTL <= 0 {
		cfg.JWT.AccessTTL = defaultAccessTTL
	}
	if cfg.JWT.RefreshTTL <= 0 {
		cfg.JWT.RefreshTTL = defaultRefreshTTL
	}
	if cfg.JWT.Issuer == "" {
		cfg.JWT.Issuer = defaultIssuer
	}
	if cfg.JWT.Audience == "" {
		cfg.JWT.Audience = defaultAudience
	}

	if cfg.Otp == nil {
		cfg.Otp = &OtpConfig{}
	}
	if cfg.Otp.CodeTTL <= 0 {
		cfg.Otp.CodeTTL = defaultOtpTTL
	}
	if cfg.Otp.MaxAttempts <= 0 {
		cfg.Otp.MaxAttempts = defaultOtpMaxAttempts
	}
	if cfg.Otp.RateLimitWindow <= 0 {
		cfg.Otp.RateLimitWindow = defaultOtpRateWindow
	}
	if cfg.Otp.RateLimitMax <= 0 {
		cfg.Otp.RateLimitMax = defaultOtpRateMax
	}

	if cfg.Cookie == nil {
		cfg.Cookie = &CookieConfig{Secure: true}
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
// Example: POSTGRES_REPLICAS_0_HOST, POSTGRES_REPLICAS_0_PORT
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
