package config

import (
	"time"

	"github.com/pkg/errors"
	"github.com/spf13/viper"
	"github.com/tcfw/didpay/pkg/subrav"
)

type Payee struct {
	ServiceID    string
	DID          string
	HTTPListen   string
	GRPCListen   string
	BasePath     string
	AssetID      string
	ChainID      subrav.BigInt
	Price        subrav.BigInt
	ReplayWindow time.Duration
	NameServer   string

	Idempotency struct {
		Size int
		TTL  time.Duration
	}
	Claims struct {
		Interval  time.Duration
		MinAmount subrav.BigInt
	}
}

const (
	Cfg_payee_serviceID        = "payee.serviceId"
	Cfg_payee_did              = "payee.did"
	Cfg_payee_httpListen       = "payee.httpListen"
	Cfg_payee_grpcListen       = "payee.grpcListen"
	Cfg_payee_basePath         = "payee.basePath"
	Cfg_payee_assetID          = "payee.assetId"
	Cfg_payee_chainID          = "payee.chainId"
	Cfg_payee_price            = "payee.price"
	Cfg_payee_replayWindow     = "payee.replayWindow"
	Cfg_payee_nameServer       = "payee.nameServer"
	Cfg_payee_idempotency_size = "payee.idempotency.size"
	Cfg_payee_idempotency_ttl  = "payee.idempotency.ttl"
	Cfg_payee_claims_interval  = "payee.claims.interval"
	Cfg_payee_claims_minAmount = "payee.claims.minAmount"
)

var (
	payeeDefaults = map[string]interface{}{
		Cfg_payee_serviceID:        "didpay-demo",
		Cfg_payee_did:              "",
		Cfg_payee_httpListen:       ":8080",
		Cfg_payee_grpcListen:       ":8081",
		Cfg_payee_basePath:         "/payment-channel",
		Cfg_payee_assetID:          "0x3::gas::GAS",
		Cfg_payee_chainID:          "4",
		Cfg_payee_price:            "100",
		Cfg_payee_replayWindow:     5 * time.Minute,
		Cfg_payee_nameServer:       "",
		Cfg_payee_idempotency_size: 10000,
		Cfg_payee_idempotency_ttl:  10 * time.Minute,
		Cfg_payee_claims_interval:  time.Minute,
		Cfg_payee_claims_minAmount: "1000",
	}
)

func init() {
	for k, v := range payeeDefaults {
		viper.SetDefault(k, v)
	}
}

func buildPayeeConfig() (*Payee, error) {
	c := &Payee{
		ServiceID:    viper.GetString(Cfg_payee_serviceID),
		DID:          viper.GetString(Cfg_payee_did),
		HTTPListen:   viper.GetString(Cfg_payee_httpListen),
		GRPCListen:   viper.GetString(Cfg_payee_grpcListen),
		BasePath:     viper.GetString(Cfg_payee_basePath),
		AssetID:      viper.GetString(Cfg_payee_assetID),
		ReplayWindow: viper.GetDuration(Cfg_payee_replayWindow),
		NameServer:   viper.GetString(Cfg_payee_nameServer),
	}

	c.Idempotency.Size = viper.GetInt(Cfg_payee_idempotency_size)
	c.Idempotency.TTL = viper.GetDuration(Cfg_payee_idempotency_ttl)
	c.Claims.Interval = viper.GetDuration(Cfg_payee_claims_interval)

	var err error

	if c.ChainID, err = bigIntKey(Cfg_payee_chainID); err != nil {
		return nil, err
	}
	if c.Price, err = bigIntKey(Cfg_payee_price); err != nil {
		return nil, err
	}
	if c.Claims.MinAmount, err = bigIntKey(Cfg_payee_claims_minAmount); err != nil {
		return nil, err
	}

	return c, nil
}

func bigIntKey(key string) (subrav.BigInt, error) {
	b, err := subrav.ParseBigInt(viper.GetString(key))
	if err != nil {
		return subrav.BigInt{}, errors.Wrap(err, key)
	}

	return b, nil
}
