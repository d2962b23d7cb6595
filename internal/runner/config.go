package runner

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/projectdiscovery/gologger"
	"github.com/projectdiscovery/guessx"
	fileutil "github.com/projectdiscovery/utils/file"
)

func getUserHomeDir() string {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		panic(err)
	}
	return homeDir
}

// defaultEstimatorConfig is the per version config written on first run
func defaultEstimatorConfig() string {
	return filepath.Join(getUserHomeDir(), fmt.Sprintf(".config/guessx/estimator_%v.yaml", version))
}

func init() {
	defaultCfg := defaultEstimatorConfig()
	// create default estimator config if does not exist
	if fileutil.FileExists(defaultCfg) {
		// if it exists use that data as default
		cfg, err := guessx.NewConfig(defaultCfg)
		if err == nil {
			guessx.DefaultConfig = cfg
			return
		}
		gologger.Warning().Msgf("ignoring invalid estimator config %v: %v", defaultCfg, err)
		return
	}
	if err := os.MkdirAll(filepath.Dir(defaultCfg), 0700); err != nil {
		gologger.Error().Msgf("failed to create config dir for %v got: %v", defaultCfg, err)
		return
	}
	if err := guessx.GenerateSample(defaultCfg); err != nil {
		gologger.Error().Msgf("failed to save default config to %v got: %v", defaultCfg, err)
	}
}
