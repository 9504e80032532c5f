package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"strings"
)

// ErrNotFound is returned when no appsettings file for the requested
// environment exists in the working directory or any parent.
var ErrNotFound = errors.New("config file not found")

// Config holds the database connection parameters extracted from the
// appsettings connection string. It lives for one command invocation.
type Config struct {
	Host     string
	Database string
	User     string
	Password string
	Charset  string
}

// DetectEnvironment infers the environment from the host OS, matching the
// original deployment convention: Windows is the development machine,
// everything else is treated as production.
func DetectEnvironment() string {
	if runtime.GOOS == "windows" {
		return "Development"
	}
	return "Production"
}

// FileForEnvironment maps an environment name to its appsettings file.
func FileForEnvironment(env string) (string, error) {
	switch strings.ToLower(env) {
	case "development", "dev":
		return "appsettings.Development.json", nil
	case "production", "prod":
		return "appsettings.Production.json", nil
	default:
		return "", fmt.Errorf("unknown environment %q (use development or production)", env)
	}
}

// Load resolves the appsettings file for env and returns the parsed
// connection parameters. An empty env falls back to OS detection. The
// resolved environment, file, and non-secret fields are printed so the
// operator can see which database a destructive command will touch.
func Load(env string) (*Config, error) {
	if env == "" {
		env = DetectEnvironment()
		fmt.Printf("Detected OS: %s -> using %s environment\n", runtime.GOOS, env)
	}

	fileName, err := FileForEnvironment(env)
	if err != nil {
		return nil, err
	}

	path, err := findAppSettings(fileName)
	if err != nil {
		return nil, err
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %s", ErrNotFound, path)
		}
		return nil, fmt.Errorf("reading config file %s: %w", path, err)
	}

	var doc struct {
		ConnectionStrings struct {
			DefaultConnection string `json:"DefaultConnection"`
		} `json:"ConnectionStrings"`
	}
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("parsing config file %s: %w", path, err)
	}
	if doc.ConnectionStrings.DefaultConnection == "" {
		return nil, fmt.Errorf("parsing config file %s: missing ConnectionStrings.DefaultConnection", path)
	}

	cfg, err := ParseConnectionString(doc.ConnectionStrings.DefaultConnection)
	if err != nil {
		return nil, fmt.Errorf("parsing config file %s: %w", path, err)
	}

	fmt.Printf("Loaded config: %s\n", fileName)
	fmt.Printf("  Host: %s\n", cfg.Host)
	fmt.Printf("  Database: %s\n", cfg.Database)
	fmt.Printf("  User: %s\n", cfg.User)

	return cfg, nil
}

// ParseConnectionString splits a semicolon-delimited key=value connection
// string. Keys are matched case-insensitively; unrecognized keys are
// ignored. The charset is fixed to utf8mb4, which is what the table
// storing CJK text requires.
func ParseConnectionString(s string) (*Config, error) {
	cfg := &Config{Charset: "utf8mb4"}

	for _, item := range strings.Split(s, ";") {
		if !strings.Contains(item, "=") {
			continue
		}
		parts := strings.SplitN(item, "=", 2)
		key := strings.ToLower(strings.TrimSpace(parts[0]))
		value := strings.TrimSpace(parts[1])

		switch key {
		case "server":
			cfg.Host = value
		case "database":
			cfg.Database = value
		case "user":
			cfg.User = value
		case "password":
			cfg.Password = value
		}
	}

	if cfg.Host == "" || cfg.Database == "" {
		return nil, fmt.Errorf("connection string missing Server or Database")
	}

	return cfg, nil
}

// findAppSettings walks up from the working directory looking for the
// appsettings file, so the tool can run from anywhere inside the project.
func findAppSettings(fileName string) (string, error) {
	dir, err := os.Getwd()
	if err != nil {
		return "", fmt.Errorf("getting working directory: %w", err)
	}

	for {
		path := filepath.Join(dir, fileName)
		if _, err := os.Stat(path); err == nil {
			return path, nil
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			break
		}
		dir = parent
	}

	return "", fmt.Errorf("%w: %s not found in working directory or any parent", ErrNotFound, fileName)
}
