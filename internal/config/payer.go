package config

import (
	"time"

	"github.com/spf13/viper"
	"github.com/tcfw/didpay/pkg/subrav"
)

type Payer struct {
	DID              string
	KeyID            string
	MaxAmount        *subrav.BigInt
	RecoveryInterval time.Duration
	Retry            struct {
		Min time.Duration
		Max time.Duration
	}
}

const (
	Cfg_payer_did              = "payer.did"
	Cfg_payer_keyID            = "payer.keyId"
	Cfg_payer_maxAmount        = "payer.maxAmount"
	Cfg_payer_recoveryInterval = "payer.recoveryInterval"
	Cfg_payer_retry_min        = "payer.retry.min"
	Cfg_payer_retry_max        = "payer.retry.max"
)

var (
	payerDefaults = map[string]interface{}{
		Cfg_payer_did:              "",
		Cfg_payer_keyID:            "",
		Cfg_payer_maxAmount:        "",
		Cfg_payer_recoveryInterval: time.Second,
		Cfg_payer_retry_min:        100 * time.Millisecond,
		Cfg_payer_retry_max:        2 * time.Second,
	}
)

func init() {
	for k, v := range payerDefaults {
		viper.SetDefault(k, v)
	}
}

func buildPayerConfig() (*Payer, error) {
	c := &Payer{
		DID:              viper.GetString(Cfg_payer_did),
		KeyID:            viper.GetString(Cfg_payer_keyID),
		RecoveryInterval: viper.GetDuration(Cfg_payer_recoveryInterval),
	}

	c.Retry.Min = viper.GetDuration(Cfg_payer_retry_min)
	c.Retry.Max = viper.GetDuration(Cfg_payer_retry_max)

	if viper.GetString(Cfg_payer_maxAmount) != "" {
		m, err := bigIntKey(Cfg_payer_maxAmount)
		if err != nil {
			return nil, err
		}
		c.MaxAmount = &m
	}

	return c, nil
}
