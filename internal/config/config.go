package config

import (
	"strings"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"
	"github.com/tcfw/didpay/internal/utils/logging"
)

var (
	defaults = map[string]interface{}{
		"verbose":   false,
		"logFormat": "text",
	}
)

func init() {
	for k, v := range defaults {
		viper.SetDefault(k, v)
	}
}

func GetConfig() (*Config, error) {
	viper.SetConfigType("yaml")
	viper.SetConfigName("didpay")
	viper.AddConfigPath("/etc/didpay/")
	viper.AddConfigPath("$HOME/.didpay")
	viper.AddConfigPath(".")
	viper.SetEnvPrefix("DIDPAY")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()
	err := viper.ReadInConfig()
	if err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); ok {
			// Config file not found; ignore error
			logging.Entry().Debug("no config found")
		} else {
			return nil, errors.Wrap(err, "reading config file")
		}
	}

	return build()
}

func build() (*Config, error) {
	c := &Config{}

	var err error

	c.storage, err = buildStorageConfig()
	if err != nil {
		return nil, errors.Wrap(err, "storage config")
	}

	c.payee, err = buildPayeeConfig()
	if err != nil {
		return nil, errors.Wrap(err, "payee config")
	}

	c.payer, err = buildPayerConfig()
	if err != nil {
		return nil, errors.Wrap(err, "payer config")
	}

	logging.SetFormat(viper.GetString("logFormat"))

	if viper.GetBool("verbose") {
		logging.SetLevel(logrus.DebugLevel)
		logging.Entry().WithField("level", "debug").Debug("setting log level")
	}

	return c, nil
}

type Config struct {
	storage *Storage
	payee   *Payee
	payer   *Payer
}

func (c *Config) Storage() *Storage {
	return c.storage
}

func (c *Config) Payee() *Payee {
	return c.payee
}

func (c *Config) Payer() *Payer {
	return c.payer
}
