package config

import (
	"fmt"
	"time"

	"cafe-kiosk/internal/pkg/errs"
	"cafe-kiosk/internal/pkg/money"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
	"github.com/shopspring/decimal"
)

// -----------------------------------------------------------------------------
// Environment variable configuration guidelines:
// - required: none; a kiosk must boot on a bare terminal
// - default: every value, tuned for the café's console kiosk
// A .env file in the working directory is loaded first when present.
// -----------------------------------------------------------------------------

const (
	ModeConsole = "console"
	ModeHTTP    = "http"
)

type Config struct {
	App    AppConfig
	Kiosk  KioskConfig
	Server ServerConfig
	CORS   CORSConfig
	Log    LogConfig
}

type AppConfig struct {
	Mode string `envconfig:"KIOSK_MODE" default:"console"`
}

type KioskConfig struct {
	ShopName          string        `envconfig:"SHOP_NAME" default:"CAFÉ JAVA"`
	CurrencySymbol    string        `envconfig:"CURRENCY_SYMBOL" default:"₱"`
	TimeZone          string        `envconfig:"KIOSK_TIMEZONE" default:"Local"`
	SurchargeBlock    time.Duration `envconfig:"SURCHARGE_BLOCK" default:"30m"`
	SurchargePerBlock string        `envconfig:"SURCHARGE_PER_BLOCK" default:"50"`
}

type ServerConfig struct {
	Port string `envconfig:"PORT" default:"8080"`
}

type CORSConfig struct {
	AllowOrigins     []string      `envconfig:"CORS_ALLOW_ORIGINS" default:"http://localhost:3000,http://localhost:8080"`
	AllowMethods     []string      `envconfig:"CORS_ALLOW_METHODS" default:"GET,POST,OPTIONS"`
	AllowHeaders     []string      `envconfig:"CORS_ALLOW_HEADERS" default:"Origin,Content-Type,Accept"`
	ExposeHeaders    []string      `envconfig:"CORS_EXPOSE_HEADERS" default:"Content-Length,X-Request-ID"`
	AllowCredentials bool          `envconfig:"CORS_ALLOW_CREDENTIALS" default:"false"`
	MaxAge           time.Duration `envconfig:"CORS_MAX_AGE" default:"12h"`
}

type LogConfig struct {
	Level          string `envconfig:"LOG_LEVEL" default:"info"`
	Output         string `envconfig:"LOG_OUTPUT" default:"stderr"` // stdout, stderr or a file path
	TimeZone       string `envconfig:"LOG_TIMEZONE" default:"Asia/Manila"`
	TimeFormat     string `envconfig:"LOG_TIME_FORMAT" default:"2006-01-02 15:04:05.000"`
	TimeZoneOffset int    `envconfig:"LOG_TIMEZONE_OFFSET" default:"28800"` // 8*60*60
}

func (c KioskConfig) Location() (*time.Location, error) {
	loc, err := time.LoadLocation(c.TimeZone)
	if err != nil {
		return nil, errs.Wrapf(err, "invalid KIOSK_TIMEZONE %q", c.TimeZone)
	}
	return loc, nil
}

func (c KioskConfig) PerBlock() (decimal.Decimal, error) {
	v, err := money.Parse(c.SurchargePerBlock)
	if err != nil {
		return decimal.Zero, errs.Wrapf(err, "invalid SURCHARGE_PER_BLOCK %q", c.SurchargePerBlock)
	}
	return v, nil
}

func (c Config) Validate() error {
	switch c.App.Mode {
	case ModeConsole, ModeHTTP:
	default:
		return errs.New(fmt.Sprintf("KIOSK_MODE must be %q or %q, got %q", ModeConsole, ModeHTTP, c.App.Mode))
	}

	if c.Kiosk.SurchargeBlock < time.Minute {
		return errs.New(fmt.Sprintf("SURCHARGE_BLOCK must be at least 1m, got %s", c.Kiosk.SurchargeBlock))
	}
	if c.Kiosk.SurchargeBlock%time.Minute != 0 {
		return errs.New(fmt.Sprintf("SURCHARGE_BLOCK must be whole minutes, got %s", c.Kiosk.SurchargeBlock))
	}

	perBlock, err := c.Kiosk.PerBlock()
	if err != nil {
		return err
	}
	if perBlock.IsNegative() {
		return errs.New("SURCHARGE_PER_BLOCK cannot be negative")
	}

	if _, err := c.Kiosk.Location(); err != nil {
		return err
	}
	return nil
}

func LoadConfig() (Config, error) {
	// a missing .env is normal; only explicit env matters then
	_ = godotenv.Load()

	var cfg Config
	err := envconfig.Process("", &cfg)
	if err != nil {
		return Config{}, fmt.Errorf("failed to process env config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, errs.Wrap(err, "invalid configuration")
	}
	return cfg, nil
}

func NewTestConfig() Config {
	return Config{
		App: AppConfig{
			Mode: ModeConsole,
		},
		Kiosk: KioskConfig{
			ShopName:          "CAFÉ JAVA",
			CurrencySymbol:    "₱",
			TimeZone:          "UTC",
			SurchargeBlock:    30 * time.Minute,
			SurchargePerBlock: "50",
		},
		Server: ServerConfig{
			Port: "8889", // Test port
		},
		Log: LogConfig{
			Level:          "error", // Error level only for tests
			Output:         "stderr",
			TimeZone:       "UTC",
			TimeFormat:     "2006-01-02 15:04:05.000",
			TimeZoneOffset: 0,
		},
	}
}
