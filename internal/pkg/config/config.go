package config

import (
	"fmt"
	"time"

	"github.com/kelseyhightower/envconfig"
)

// -----------------------------------------------------------------------------
// Environment variable configuration guidelines:
// - required: Values that differ between environments (port, DB connection, etc.), security settings
// - default: Values common across all environments (timezone, timeout, etc.), standard settings
// -----------------------------------------------------------------------------

type Config struct {
	Server   ServerConfig
	DB       DBConfig
	CORS     CORSConfig
	Log      LogConfig
	Agent    AgentConfig
	Commerce CommerceConfig
	Chat     ChatConfig
	Intake   IntakeConfig
}

type ServerConfig struct {
	Port string `envconfig:"PORT" required:"true"`
}

type DBConfig struct {
	Host     string `envconfig:"DB_HOST" default:"localhost"`
	Port     string `envconfig:"DB_PORT" default:"5432"`
	User     string `envconfig:"DB_USER" required:"true"`
	Password string `envconfig:"DB_PASSWORD" required:"true"`
	DBName   string `envconfig:"DB_NAME" required:"true"`
	SSLMode  string `envconfig:"DB_SSL_MODE" default:"disable"`
	TimeZone string `envconfig:"DB_TIMEZONE" default:"Asia/Tokyo"`
}

type CORSConfig struct {
	AllowOrigins     []string      `envconfig:"CORS_ALLOW_ORIGINS" default:"http://localhost:3000,http://localhost:8080"`
	AllowMethods     []string      `envconfig:"CORS_ALLOW_METHODS" default:"GET,POST,PUT,PATCH,DELETE,OPTIONS"`
	AllowHeaders     []string      `envconfig:"CORS_ALLOW_HEADERS" default:"Origin,Content-Type,Accept,Access-Token,Location-Id"`
	ExposeHeaders    []string      `envconfig:"CORS_EXPOSE_HEADERS" default:"Content-Length"`
	AllowCredentials bool          `envconfig:"CORS_ALLOW_CREDENTIALS" default:"true"`
	MaxAge           time.Duration `envconfig:"CORS_MAX_AGE" default:"12h"`
}

type LogConfig struct {
	Level          string `envconfig:"LOG_LEVEL" default:"info"`
	TimeZone       string `envconfig:"LOG_TIMEZONE" default:"Asia/Tokyo"`
	TimeFormat     string `envconfig:"LOG_TIME_FORMAT" default:"2006-01-02 15:04:05.000"`
	TimeZoneOffset int    `envconfig:"LOG_TIMEZONE_OFFSET" default:"32400"` // 9*60*60
}

// AgentConfig points at the Vertex AI project hosting the conversational agent.
type AgentConfig struct {
	Project  string        `envconfig:"AGENT_GCP_PROJECT" required:"true"`
	Location string        `envconfig:"AGENT_GCP_LOCATION" default:"us-central1"`
	Model    string        `envconfig:"AGENT_MODEL" default:"gemini-2.5-flash"`
	Timeout  time.Duration `envconfig:"AGENT_CALL_TIMEOUT" default:"30s"`
}

// CommerceConfig points at the commerce platform. AccessToken and LocationID
// are fallbacks for requests that carry no per-request credentials.
type CommerceConfig struct {
	BaseURL     string        `envconfig:"COMMERCE_BASE_URL" default:"https://connect.squareupsandbox.com"`
	AccessToken string        `envconfig:"COMMERCE_ACCESS_TOKEN" default:""`
	LocationID  string        `envconfig:"COMMERCE_LOCATION_ID" default:""`
	Timeout     time.Duration `envconfig:"COMMERCE_CALL_TIMEOUT" default:"30s"`
}

type ChatConfig struct {
	// Turn count past which the transcript is condensed before being sent to
	// the agent again.
	HistoryLimit int `envconfig:"CHAT_HISTORY_LIMIT" default:"15"`
}

// IntakeConfig carries the fixed customer fields the operator form does not
// collect. Defaults are the placeholder values of the original deployment;
// production installs must override them.
type IntakeConfig struct {
	PhoneNumber  string `envconfig:"INTAKE_PHONE_NUMBER" default:"5145832589"`
	AddressLine1 string `envconfig:"INTAKE_ADDRESS_LINE_1" default:"11 - 3795"`
	PostalCode   string `envconfig:"INTAKE_POSTAL_CODE" default:"H3T 1H"`
	Country      string `envconfig:"INTAKE_COUNTRY" default:"CA"`
	Birthday     string `envconfig:"INTAKE_BIRTHDAY" default:"1992-02-19"`
}

func (c *DBConfig) BuildDSN() string {
	return fmt.Sprintf(
		"postgres://%s:%s@%s:%s/%s?sslmode=%s&timezone=%s",
		c.User, c.Password, c.Host, c.Port, c.DBName, c.SSLMode, c.TimeZone,
	)
}

func LoadConfig() (Config, error) {
	var cfg Config
	err := envconfig.Process("", &cfg)
	if err != nil {
		return Config{}, fmt.Errorf("failed to process env config: %w", err)
	}
	return cfg, nil
}

func NewTestConfig() Config {
	return Config{
		Server: ServerConfig{
			Port: "8889", // Test port
		},
		DB: DBConfig{
			Host:     "localhost",
			Port:     "15433", // Test DB port
			User:     "test",
			Password: "test",
			DBName:   "test_db",
			SSLMode:  "disable",
			TimeZone: "Asia/Tokyo",
		},
		Log: LogConfig{
			Level:          "error", // Error level only for tests
			TimeZone:       "Asia/Tokyo",
			TimeFormat:     "2006-01-02 15:04:05.000",
			TimeZoneOffset: 32400,
		},
		Agent: AgentConfig{
			Project:  "test-project",
			Location: "us-central1",
			Model:    "gemini-2.5-flash",
			Timeout:  5 * time.Second,
		},
		Commerce: CommerceConfig{
			BaseURL: "http://localhost:18080",
			Timeout: 5 * time.Second,
		},
		Chat: ChatConfig{
			HistoryLimit: 15,
		},
		Intake: IntakeConfig{
			PhoneNumber:  "5145832589",
			AddressLine1: "11 - 3795",
			PostalCode:   "H3T 1H",
			Country:      "CA",
			Birthday:     "1992-02-19",
		},
	}
}
