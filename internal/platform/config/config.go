// Package config loads runtime settings from the environment and an optional
// .env file.
package config

import (
	"bufio"
	"errors"
	"fmt"
	"net/url"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"
)

const (
	defaultEnvFile      = ".env"
	defaultAddr         = ":8080"
	defaultProductID    = "1001"
	defaultContainerID  = "staff-review-widget"
	defaultPerPage      = 5
	maxPerPage          = 50
	defaultWASMPath     = "dist/widget.wasm"
	defaultReadTimeout  = 15 * time.Second
	defaultWriteTimeout = 30 * time.Second
)

// Preview configures the local preview server.
type Preview struct {
	Addr         string
	ProductID    string
	PerPage      int
	FixturesPath string
	UploadsDir   string
	WASMPath     string
	WASMExecPath string
	// ServerURL is the review API base the embedded widget calls. Empty
	// means the preview server itself.
	ServerURL    string
	ReadTimeout  time.Duration
	WriteTimeout time.Duration
}

// Widget configures one embedded widget instance in the browser.
type Widget struct {
	ServerBaseURL string
	ProductID     string
	ContainerID   string
	PerPage       int
	LogLevel      string
}

// ValidationError is returned when required configuration fields are missing or invalid.
type ValidationError struct {
	fields []string
}

// Error implements the error interface.
func (e *ValidationError) Error() string {
	return fmt.Sprintf("config validation failed: missing or invalid fields [%s]", strings.Join(e.fields, ", "))
}

// Fields returns a copy of the missing/invalid field list.
func (e *ValidationError) Fields() []string {
	out := make([]string, len(e.fields))
	copy(out, e.fields)
	return out
}

// Option customises LoadPreview.
type Option func(*loaderOptions)

type loaderOptions struct {
	envFile      string
	envMap       map[string]string
	useSystemEnv bool
}

// WithEnvFile overrides the .env file path.
func WithEnvFile(path string) Option {
	return func(o *loaderOptions) {
		o.envFile = path
	}
}

// WithEnvMap injects values that take precedence over the system environment.
func WithEnvMap(values map[string]string) Option {
	return func(o *loaderOptions) {
		o.envMap = values
	}
}

// WithoutSystemEnv ignores os.Environ.
func WithoutSystemEnv() Option {
	return func(o *loaderOptions) {
		o.useSystemEnv = false
	}
}

// LoadPreview assembles the preview server configuration. Precedence is
// .env < OS environment < WithEnvMap.
func LoadPreview(opts ...Option) (Preview, error) {
	options := loaderOptions{envFile: defaultEnvFile, useSystemEnv: true}
	for _, opt := range opts {
		opt(&options)
	}

	values, err := loadDotEnv(options.envFile)
	if err != nil {
		return Preview{}, err
	}
	if values == nil {
		values = map[string]string{}
	}
	if options.useSystemEnv {
		for _, entry := range os.Environ() {
			key, value, ok := strings.Cut(entry, "=")
			if ok && strings.TrimSpace(key) != "" {
				values[strings.TrimSpace(key)] = value
			}
		}
	}
	for k, v := range options.envMap {
		values[k] = v
	}
	lookup := func(key string) (string, bool) {
		v, ok := values[key]
		return strings.TrimSpace(v), ok
	}

	var invalid []string
	cfg := Preview{
		Addr:         stringWithDefault(lookup, "PREVIEW_ADDR", defaultAddr),
		ProductID:    stringWithDefault(lookup, "PREVIEW_PRODUCT_ID", defaultProductID),
		FixturesPath: stringWithDefault(lookup, "PREVIEW_FIXTURES", ""),
		UploadsDir:   stringWithDefault(lookup, "PREVIEW_UPLOADS_DIR", ""),
		WASMPath:     stringWithDefault(lookup, "PREVIEW_WASM_PATH", defaultWASMPath),
		WASMExecPath: stringWithDefault(lookup, "PREVIEW_WASM_EXEC_PATH", defaultWASMExecPath()),
		ServerURL:    strings.TrimRight(stringWithDefault(lookup, "PREVIEW_SERVER_URL", ""), "/"),
		ReadTimeout:  durationWithDefault(lookup, "PREVIEW_READ_TIMEOUT", defaultReadTimeout),
		WriteTimeout: durationWithDefault(lookup, "PREVIEW_WRITE_TIMEOUT", defaultWriteTimeout),
	}

	perPage, ok := intWithDefault(lookup, "PREVIEW_PER_PAGE", defaultPerPage)
	if !ok || perPage < 1 || perPage > maxPerPage {
		invalid = append(invalid, "PREVIEW_PER_PAGE")
	}
	cfg.PerPage = perPage

	if cfg.ServerURL != "" && !absoluteHTTPURL(cfg.ServerURL) {
		invalid = append(invalid, "PREVIEW_SERVER_URL")
	}

	if len(invalid) > 0 {
		return Preview{}, &ValidationError{fields: invalid}
	}
	return cfg, nil
}

// WidgetFromLookup reads widget settings through lookup, typically backed by
// the page's srwConfig object. The server URL is required.
func WidgetFromLookup(lookup func(string) (string, bool)) (Widget, error) {
	get := func(key string) (string, bool) {
		v, ok := lookup(key)
		return strings.TrimSpace(v), ok
	}

	cfg := Widget{
		ServerBaseURL: strings.TrimRight(stringWithDefault(get, "server", ""), "/"),
		ProductID:     stringWithDefault(get, "productId", ""),
		ContainerID:   stringWithDefault(get, "containerId", defaultContainerID),
		LogLevel:      stringWithDefault(get, "logLevel", "warn"),
	}

	var invalid []string
	if !absoluteHTTPURL(cfg.ServerBaseURL) {
		invalid = append(invalid, "server")
	}
	perPage, ok := intWithDefault(get, "perPage", defaultPerPage)
	if !ok || perPage < 1 || perPage > maxPerPage {
		invalid = append(invalid, "perPage")
	}
	cfg.PerPage = perPage

	if len(invalid) > 0 {
		return Widget{}, &ValidationError{fields: invalid}
	}
	return cfg, nil
}

func absoluteHTTPURL(raw string) bool {
	u, err := url.Parse(raw)
	if err != nil {
		return false
	}
	return (u.Scheme == "http" || u.Scheme == "https") && u.Host != ""
}

func defaultWASMExecPath() string {
	return filepath.Join(goroot(), "lib", "wasm", "wasm_exec.js")
}

func goroot() string {
	if root := os.Getenv("GOROOT"); root != "" {
		return root
	}
	return "/usr/local/go"
}

func loadDotEnv(path string) (map[string]string, error) {
	if path == "" {
		return nil, nil
	}

	absPath, err := filepath.Abs(path)
	if err != nil {
		absPath = path
	}

	file, err := os.Open(absPath)
	if errors.Is(err, os.ErrNotExist) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("config: unable to read %s: %w", absPath, err)
	}
	defer file.Close()

	scanner := bufio.NewScanner(file)
	values := make(map[string]string)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		line = strings.TrimSpace(strings.TrimPrefix(line, "export "))
		key, value, ok := strings.Cut(line, "=")
		if !ok {
			continue
		}
		key = strings.TrimSpace(key)
		if key == "" {
			continue
		}
		values[key] = strings.Trim(strings.TrimSpace(value), "\"'")
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("config: failed parsing %s: %w", absPath, err)
	}
	return values, nil
}

func stringWithDefault(lookup func(string) (string, bool), key, fallback string) string {
	if value, ok := lookup(key); ok && value != "" {
		return value
	}
	return fallback
}

func durationWithDefault(lookup func(string) (string, bool), key string, fallback time.Duration) time.Duration {
	if value, ok := lookup(key); ok && value != "" {
		if d, err := time.ParseDuration(value); err == nil {
			return d
		}
	}
	return fallback
}

// intWithDefault reports false when the key is set but not an integer.
func intWithDefault(lookup func(string) (string, bool), key string, fallback int) (int, bool) {
	value, ok := lookup(key)
	if !ok || value == "" {
		return fallback, true
	}
	n, err := strconv.Atoi(value)
	if err != nil {
		return fallback, false
	}
	return n, true
}
