package cliparse

import (
	"errors"
	"flag"
	"fmt"
	"os"
	"strconv"

	"gopkg.in/yaml.v3"
)

const (
	DatabasePostgres = "postgres"
	DatabaseSQLite   = "sqlite"

	DefaultPort         = 3000
	DefaultLabUsername  = "admin"
	DefaultLabRealm     = "Laboratoire Central CBeT"
	DefaultStaticDir    = "public"
	DefaultMaxBodyBytes = 1 << 20
)

type Config struct {
	Port            int    `yaml:"port"`
	DatabaseURL     string `yaml:"database_url"`
	DatabaseType    string `yaml:"database_type"`
	LabUsername     string `yaml:"lab_username"`
	LabPassword     string `yaml:"lab_password"`
	LabPasswordHash string `yaml:"lab_password_hash"`
	LabRealm        string `yaml:"lab_realm"`
	StaticDir       string `yaml:"static_dir"`
	MaxBodyBytes    int64  `yaml:"max_body_bytes"`

	ConfigFile   string `yaml:"-"`
	HashPassword string `yaml:"-"`
}

// ParseFlags builds the configuration from defaults, an optional YAML file,
// environment variables and command-line flags, in increasing precedence.
func ParseFlags(args []string) (Config, error) {
	var flags Config

	fs := flag.NewFlagSet("sentinelles", flag.ContinueOnError)

	fs.StringVar(&flags.ConfigFile, "c", "", "YAML config file")

	// Network config (can be CLI args or env)
	fs.IntVar(&flags.Port, "p", 0, "Server port")
	fs.StringVar(&flags.DatabaseURL, "d", "", "Database URL")
	fs.StringVar(&flags.DatabaseType, "t", "", "Database type (postgres or sqlite)")
	fs.StringVar(&flags.StaticDir, "static", "", "Directory of static frontend files")

	// Secrets (prefer env variables, but allow CLI for dev)
	fs.StringVar(&flags.LabUsername, "lab-user", "", "Lab dashboard username")
	fs.StringVar(&flags.LabPassword, "lab-password", "", "Lab dashboard password (prefer env)")
	fs.StringVar(&flags.LabPasswordHash, "lab-password-hash", "", "Lab dashboard bcrypt hash (prefer env)")

	fs.StringVar(&flags.HashPassword, "hash-password", "", "Print a bcrypt hash of the given password and exit")

	if err := fs.Parse(args); err != nil {
		return Config{}, err
	}

	// Hashing mode needs nothing else.
	if flags.HashPassword != "" {
		return flags, nil
	}

	cfg := Config{
		Port:         DefaultPort,
		DatabaseType: DatabasePostgres,
		LabUsername:  DefaultLabUsername,
		LabRealm:     DefaultLabRealm,
		StaticDir:    DefaultStaticDir,
		MaxBodyBytes: DefaultMaxBodyBytes,
	}

	cfg.ConfigFile = firstNonEmpty(flags.ConfigFile, os.Getenv("CONFIG_FILE"))
	if cfg.ConfigFile != "" {
		if err := loadFile(cfg.ConfigFile, &cfg); err != nil {
			return Config{}, err
		}
	}

	if err := applyEnv(&cfg); err != nil {
		return Config{}, err
	}

	// CLI overrides everything else
	if flags.Port != 0 {
		cfg.Port = flags.Port
	}
	cfg.DatabaseURL = firstNonEmpty(flags.DatabaseURL, cfg.DatabaseURL)
	cfg.DatabaseType = firstNonEmpty(flags.DatabaseType, cfg.DatabaseType)
	cfg.StaticDir = firstNonEmpty(flags.StaticDir, cfg.StaticDir)
	cfg.LabUsername = firstNonEmpty(flags.LabUsername, cfg.LabUsername)
	cfg.LabPassword = firstNonEmpty(flags.LabPassword, cfg.LabPassword)
	cfg.LabPasswordHash = firstNonEmpty(flags.LabPasswordHash, cfg.LabPasswordHash)

	if err := cfg.validate(); err != nil {
		return Config{}, err
	}

	return cfg, nil
}

func loadFile(path string, cfg *Config) error {
	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("open config file: %w", err)
	}
	defer f.Close()

	if err := yaml.NewDecoder(f).Decode(cfg); err != nil {
		return fmt.Errorf("decode config file %s: %w", path, err)
	}
	return nil
}

func applyEnv(cfg *Config) error {
	if portStr := os.Getenv("PORT"); portStr != "" {
		port, err := strconv.Atoi(portStr)
		if err != nil {
			return errors.New("invalid PORT env variable")
		}
		cfg.Port = port
	}
	if v := os.Getenv("MAX_BODY_BYTES"); v != "" {
		n, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			return errors.New("invalid MAX_BODY_BYTES env variable")
		}
		cfg.MaxBodyBytes = n
	}

	cfg.DatabaseURL = firstNonEmpty(os.Getenv("DATABASE_URL"), cfg.DatabaseURL)
	cfg.DatabaseType = firstNonEmpty(os.Getenv("DATABASE_TYPE"), cfg.DatabaseType)
	cfg.LabUsername = firstNonEmpty(os.Getenv("LAB_USERNAME"), cfg.LabUsername)
	cfg.LabPassword = firstNonEmpty(os.Getenv("LAB_PASSWORD"), cfg.LabPassword)
	cfg.LabPasswordHash = firstNonEmpty(os.Getenv("LAB_PASSWORD_HASH"), cfg.LabPasswordHash)
	cfg.LabRealm = firstNonEmpty(os.Getenv("LAB_REALM"), cfg.LabRealm)
	cfg.StaticDir = firstNonEmpty(os.Getenv("STATIC_DIR"), cfg.StaticDir)
	return nil
}

func (cfg Config) validate() error {
	if cfg.Port <= 0 || cfg.Port > 65535 {
		return fmt.Errorf("invalid port %d", cfg.Port)
	}
	if cfg.DatabaseURL == "" {
		return errors.New("database URL required (use -d or DATABASE_URL env)")
	}
	switch cfg.DatabaseType {
	case DatabasePostgres, DatabaseSQLite:
	default:
		return fmt.Errorf("unknown database type %q (want postgres or sqlite)", cfg.DatabaseType)
	}

	// Secrets - MUST be provided
	if cfg.LabUsername == "" {
		return errors.New("LAB_USERNAME must not be empty")
	}
	if cfg.LabPassword == "" && cfg.LabPasswordHash == "" {
		return errors.New("LAB_PASSWORD or LAB_PASSWORD_HASH required")
	}
	if cfg.MaxBodyBytes <= 0 {
		return errors.New("MAX_BODY_BYTES must be positive")
	}
	return nil
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
