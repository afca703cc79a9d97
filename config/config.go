// Package config loads the addresses and RPC settings the classifier runs
// with. Values come from an optional .properties file, then the environment,
// and are validated once at startup.
package config

import (
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/gagliardetto/solana-go"
	"github.com/gagliardetto/solana-go/rpc"
	gvalidator "github.com/go-playground/validator/v10"
	"github.com/kelseyhightower/envconfig"
	"github.com/magiconair/properties"

	solanaswapgo "github.com/franco-bianco/rayswap-go/solanaswap-go"
)

// ErrInvalidConfig is the first error in the chain returned when validation fails.
var ErrInvalidConfig = errors.New("invalid configuration")

const errStringFormat = "'%s': value '%v' does not meet the requirements for the '%s' validation"

// Config keys double as environment variable and properties file names.
type Config struct {
	ExcludedProgramID  string `envconfig:"JUP_PUBKEY" validate:"required,solana_pubkey"`
	RequiredProgramID  string `envconfig:"RAY_PUBKEY" validate:"required,solana_pubkey"`
	BaseMint           string `envconfig:"SOL_PUBKEY" validate:"required,solana_pubkey"`
	TrackedAccount     string `envconfig:"TARGET_PUBKEY" validate:"required,solana_pubkey"`
	ReferenceAuthority string `envconfig:"RAY_AUTHORITY_V4" validate:"required,solana_pubkey"`

	RPCURL        string        `envconfig:"RPC_URL" validate:"required,url"`
	LogLevel      string        `envconfig:"LOG_LEVEL" validate:"required,oneof=trace debug info warn warning error fatal panic"`
	MaxTxVersion  uint64        `envconfig:"MAX_TX_VERSION"`
	FetchAttempts uint          `envconfig:"FETCH_ATTEMPTS" validate:"gte=1"`
	FetchDelay    time.Duration `envconfig:"FETCH_DELAY" validate:"gte=0"`
	FetchMaxDelay time.Duration `envconfig:"FETCH_MAX_DELAY" validate:"gtefield=FetchDelay"`
}

func defaults() *Config {
	return &Config{
		RPCURL:        rpc.MainNetBeta.RPC,
		LogLevel:      "info",
		FetchAttempts: 3,
		FetchDelay:    500 * time.Millisecond,
		FetchMaxDelay: 5 * time.Second,
	}
}

// Load builds the configuration. path may be empty, in which case only the
// environment is read.
func Load(path string) (*Config, error) {
	cfg := defaults()

	if path != "" {
		props, err := properties.LoadFile(path, properties.UTF8)
		if err != nil {
			return nil, fmt.Errorf("failed to load config file %s: %w", path, err)
		}
		cfg.applyProperties(props)
	}

	if err := envconfig.Process("", cfg); err != nil {
		return nil, fmt.Errorf("failed to read environment: %w", err)
	}

	if err := validate(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) applyProperties(p *properties.Properties) {
	c.ExcludedProgramID = p.GetString("JUP_PUBKEY", c.ExcludedProgramID)
	c.RequiredProgramID = p.GetString("RAY_PUBKEY", c.RequiredProgramID)
	c.BaseMint = p.GetString("SOL_PUBKEY", c.BaseMint)
	c.TrackedAccount = p.GetString("TARGET_PUBKEY", c.TrackedAccount)
	c.ReferenceAuthority = p.GetString("RAY_AUTHORITY_V4", c.ReferenceAuthority)

	c.RPCURL = p.GetString("RPC_URL", c.RPCURL)
	c.LogLevel = p.GetString("LOG_LEVEL", c.LogLevel)
	c.MaxTxVersion = p.GetUint64("MAX_TX_VERSION", c.MaxTxVersion)
	c.FetchAttempts = p.GetUint("FETCH_ATTEMPTS", c.FetchAttempts)
	c.FetchDelay = p.GetParsedDuration("FETCH_DELAY", c.FetchDelay)
	c.FetchMaxDelay = p.GetParsedDuration("FETCH_MAX_DELAY", c.FetchMaxDelay)
}

// Programs returns the address set the parser matches against.
func (c *Config) Programs() solanaswapgo.Config {
	return solanaswapgo.Config{
		ExcludedProgramID:  c.ExcludedProgramID,
		RequiredProgramID:  c.RequiredProgramID,
		BaseMint:           c.BaseMint,
		TrackedAccount:     c.TrackedAccount,
		ReferenceAuthority: c.ReferenceAuthority,
	}
}

var (
	validator         *gvalidator.Validate
	initValidatorOnce sync.Once
)

func getValidator() *gvalidator.Validate {
	initValidatorOnce.Do(func() {
		validator = gvalidator.New(gvalidator.WithRequiredStructEnabled())
		if err := validator.RegisterValidation("solana_pubkey", isPublicKey); err != nil {
			panic(err)
		}
	})
	return validator
}

func isPublicKey(fl gvalidator.FieldLevel) bool {
	_, err := solana.PublicKeyFromBase58(fl.Field().String())
	return err == nil
}

// validate joins every violation behind ErrInvalidConfig.
func validate(cfg *Config) error {
	err := getValidator().Struct(cfg)
	if err == nil {
		return nil
	}

	var validationErrors gvalidator.ValidationErrors
	if !errors.As(err, &validationErrors) {
		return err
	}

	errs := []error{ErrInvalidConfig}
	for _, validationErr := range validationErrors {
		errs = append(errs, fmt.Errorf(errStringFormat, validationErr.Field(), validationErr.Value(), validationErr.Tag()))
	}
	return errors.Join(errs...)
}
