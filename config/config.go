package config

import (
	"os"
	"path"

	"github.com/CodeWarrior1241/Unusual-FPGA-ADI-testbenches/log"

	homedir "github.com/mitchellh/go-homedir"
	"github.com/spf13/viper"
)

// Config holds the tool defaults. All values can be overridden in
// config.yaml; the library mode can additionally be overridden through
// the ADI_LIBRARY_MODE environment variable.
type Config struct {
	// Vivado is the launcher of the vendor EDA toolchain.
	Vivado string
	// Part is the FPGA part the simulation project is created for.
	Part string
	// Board is the evaluation board identifier, may be empty.
	Board string
	// LibraryMode selects how the IP library is organized when the vendor
	// scripts build it ("ooc" or "flat").
	LibraryMode string
	// DefaultConfig, DefaultTest and DefaultMode are used when the
	// corresponding flags are not given.
	DefaultConfig string
	DefaultTest   string
	DefaultMode   string
}

const configFileName = "config"

// LibraryModeEnvVar overrides the library organization setting.
const LibraryModeEnvVar = "ADI_LIBRARY_MODE"

var config *Config

func getConfigDir() (string, error) {
	if configDir, ok := os.LookupEnv("ATB_CONFIG_DIR"); ok {
		return configDir, nil
	}

	if xdgConfigHome, ok := os.LookupEnv("XDG_CONFIG_HOME"); ok {
		return path.Join(xdgConfigHome, "atb"), nil
	}

	home, err := homedir.Dir()
	if err != nil {
		return "", err
	}
	return path.Join(home, ".config", "atb"), nil
}

func loadConfiguration() Config {
	v := viper.New()
	v.SetConfigName(configFileName)
	v.SetConfigType("yaml")

	v.SetDefault("vivado", "vivado")
	v.SetDefault("part", "xc7z045ffg900-2")
	v.SetDefault("board", "")
	v.SetDefault("library_mode", "ooc")
	v.SetDefault("default_config", "cfg1")
	v.SetDefault("default_test", "test_program")
	v.SetDefault("default_mode", "batch")

	v.BindEnv("library_mode", LibraryModeEnvVar)

	if configDir, err := getConfigDir(); err == nil {
		v.AddConfigPath(configDir)
		if err := v.ReadInConfig(); err != nil {
			log.Debug("No configuration file loaded: %s. Using default configuration.\n", err)
		} else {
			log.Debug("Loaded configuration from '%s'.\n", v.ConfigFileUsed())
		}
	} else {
		log.Debug("Unable to find the configuration directory: %s. Using default configuration.\n", err)
	}

	return Config{
		Vivado:        v.GetString("vivado"),
		Part:          v.GetString("part"),
		Board:         v.GetString("board"),
		LibraryMode:   v.GetString("library_mode"),
		DefaultConfig: v.GetString("default_config"),
		DefaultTest:   v.GetString("default_test"),
		DefaultMode:   v.GetString("default_mode"),
	}
}

// GetConfig returns the tool configuration, loading it on first use.
func GetConfig() Config {
	if config == nil {
		loadedConfig := loadConfiguration()
		config = &loadedConfig
	}

	return *config
}
