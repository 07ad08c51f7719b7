// Package config defines the data structures related to configuration and
// includes functions for loading and parsing the planning config.
package config

import (
	"fmt"
	"io"

	"github.com/iwvelando/prepay-planner/internal/engine"
	"github.com/spf13/viper"
)

// Configuration holds all configuration for a one-shot reschedule run.
type Configuration struct {
	Loan        Loan
	Prepayments []Prepayment
	Logging     LoggingConfig `yaml:"logging,omitempty"`
	Output      OutputConfig  `yaml:"output,omitempty"`
}

// Loan holds the loan parameters being rescheduled.
type Loan struct {
	Principal   float64
	AnnualRate  float64
	EMI         float64
	TotalTenure int
	PaidEMIs    int
}

// Prepayment is one planned lump-sum payment.
type Prepayment struct {
	Month  int
	Amount float64
}

// LoggingConfig holds logging configuration options
type LoggingConfig struct {
	Level      string `yaml:"level,omitempty"`      // debug, info, warn, error
	Format     string `yaml:"format,omitempty"`     // json, console
	OutputFile string `yaml:"outputFile,omitempty"` // optional file output
}

// OutputConfig holds output format configuration options
type OutputConfig struct {
	Format string `yaml:"format,omitempty"` // pretty, csv
}

// LoadConfiguration takes a file path as input and loads the YAML-formatted
// configuration there.
func LoadConfiguration(configPath string) (*Configuration, error) {
	v := viper.New()
	v.SetConfigFile(configPath)
	v.AutomaticEnv()

	v.SetConfigType("yml")

	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("error reading config file, %s", err)
	}

	var configuration Configuration
	if err := v.Unmarshal(&configuration); err != nil {
		return nil, fmt.Errorf("unable to decode into struct, %s", err)
	}

	return &configuration, nil
}

// LoadConfigurationFromReader loads a YAML-formatted configuration from an
// arbitrary reader.
func LoadConfigurationFromReader(reader io.Reader) (*Configuration, error) {
	v := viper.New()
	v.SetConfigType("yml")

	if err := v.ReadConfig(reader); err != nil {
		return nil, fmt.Errorf("error reading config data, %s", err)
	}

	var configuration Configuration
	if err := v.Unmarshal(&configuration); err != nil {
		return nil, fmt.Errorf("unable to decode into struct, %s", err)
	}

	return &configuration, nil
}

// Request converts the planning configuration into an engine request.
func (conf *Configuration) Request() engine.Request {
	request := engine.Request{
		Principal:   conf.Loan.Principal,
		AnnualRate:  conf.Loan.AnnualRate,
		EMI:         conf.Loan.EMI,
		TotalTenure: conf.Loan.TotalTenure,
		PaidEMIs:    conf.Loan.PaidEMIs,
	}
	for _, prepayment := range conf.Prepayments {
		request.Prepayments = append(request.Prepayments, engine.Prepayment{
			Month:  prepayment.Month,
			Amount: prepayment.Amount,
		})
	}
	return request
}
