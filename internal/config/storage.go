package config

import (
	"os"
	"path/filepath"

	"github.com/spf13/viper"
)

type Storage struct {
	DataDir      string
	IdentityFile string
}

const (
	Cfg_storage_dataDir      = "storage.dataDir"
	Cfg_storage_identityFile = "storage.identityFile"
)

func init() {
	home, err := os.UserHomeDir()
	if err != nil {
		home = "."
	}

	viper.SetDefault(Cfg_storage_dataDir, filepath.Join(home, ".didpay", "data"))
	viper.SetDefault(Cfg_storage_identityFile, filepath.Join(home, ".didpay", "identity.yaml"))
}

func buildStorageConfig() (*Storage, error) {
	return &Storage{
		DataDir:      viper.GetString(Cfg_storage_dataDir),
		IdentityFile: viper.GetString(Cfg_storage_identityFile),
	}, nil
}
