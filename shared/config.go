package shared

import (
	"encoding/json"
	"github.com/tailscale/hujson"
	"log"
	"os"
)

const (
	configVarName  = "CONFIG"                  // If set, will load config.json from this path and not from devConfigPath
	secretsVarName = "SECRETS"                 // If set, will load secrets.json from this path and not from devSecretsPath
	devConfigPath  = "./dev/config.dev.jsonc"  // Path to config.json in development environment
	devSecretsPath = "./dev/secrets.dev.jsonc" // Path to secrets.json in development environment
)

type Config struct {
	Secrets       Secrets      `json:"-"`
	LogFile       string       `json:"log_file"`
	LogLevel      string       `json:"log_level"`
	ServicePort   uint         `json:"service_port"`
	Host          string       `json:"host"`          // Our own host; action links point here
	PlatformHost  string       `json:"platform_host"` // Host of the bookmark source platform, for canonical post URLs
	DbFile        string       `json:"db_file"`
	DigestMaxKB   int          `json:"digest_max_kb"`
	SnippetMaxLen int          `json:"snippet_max_len"`
	MoreSendCount int          `json:"more_send_count"`
	SourceApi     SourceApi    `json:"source_api"`
	MailApi       MailApi      `json:"mail_api"`
}

type SourceApi struct {
	BaseUrl     string `json:"base_url"`
	PageSize    int    `json:"page_size"`
	MaxItems    int    `json:"max_items"`
	PageDelayMs int    `json:"page_delay_ms"` // Pause between pagination requests; the provider rate-limits
	TimeoutSec  int    `json:"timeout_sec"`
}

type MailApi struct {
	BaseUrl    string `json:"base_url"`
	FromAddr   string `json:"from_addr"`
	TimeoutSec int    `json:"timeout_sec"`
}

type Secrets struct {
	HmacKey     string   `json:"hmac_key"`
	ApiKeys     []string `json:"api_keys"`
	MetricsAuth string   `json:"metrics_auth"`
	MailApiKey  string   `json:"mail_api_key"`
}

func LoadConfig() *Config {

	// Where are our config and secrets files?
	cfgPath := os.Getenv(configVarName)
	if len(cfgPath) == 0 {
		cfgPath = devConfigPath
	}
	secretsPath := os.Getenv(secretsVarName)
	if len(secretsPath) == 0 {
		secretsPath = devSecretsPath
	}

	// Read config file
	var config Config
	mustDeserializeFile(cfgPath, &config)
	// Read secrets member from secrets file
	mustDeserializeFile(secretsPath, &config.Secrets)
	return &config
}

func mustDeserializeFile[T any](fileName string, obj *T) {
	var err error
	var cfgJson []byte
	cfgJson, err = os.ReadFile(fileName)
	if err != nil {
		log.Fatal(err)
	}
	// JSONC => JSON
	cfgJson, err = standardizeJSON(cfgJson)
	if err != nil {
		log.Fatal(err)
	}
	// Parse
	if err := json.Unmarshal(cfgJson, obj); err != nil {
		log.Fatal(err)
	}
}

func standardizeJSON(b []byte) ([]byte, error) {
	ast, err := hujson.Parse(b)
	if err != nil {
		return b, err
	}
	ast.Standardize()
	return ast.Pack(), nil
}
