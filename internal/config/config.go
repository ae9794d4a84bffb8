package config

import (
	"os"
	"path/filepath"

	"github.com/pelletier/go-toml/v2"
)

// AppConfig is the application configuration, loaded from config.toml.
type AppConfig struct {
	Server   ServerConfig   `toml:"server"`
	Data     DataConfig     `toml:"data"`
	Business BusinessConfig `toml:"business"`
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	Port    int  `toml:"port"`
	DevMode bool `toml:"dev_mode"`
}

// DataConfig locates the spreadsheet files and the snapshot database.
type DataConfig struct {
	DataDir         string `toml:"data_dir"`
	SnapshotDB      string `toml:"snapshot_db"`
	CountryFile     string `toml:"country_file"`
	ProductFile     string `toml:"product_file"`
	OfficeFile      string `toml:"office_file"`
	SummaryFile     string `toml:"summary_file"`
	GrowthFile      string `toml:"growth_file"`
	CommoditySubdir string `toml:"commodity_subdir"`
}

// BusinessConfig holds analysis defaults.
type BusinessConfig struct {
	DefaultTopN    int      `toml:"default_top_n"`
	CommodityYears []string `toml:"commodity_years"`
}

// LoadConfigInfo carries metadata about how the config was loaded.
type LoadConfigInfo struct {
	PortSpecified bool
}

// DefaultConfig returns the built-in defaults.
func DefaultConfig() *AppConfig {
	return &AppConfig{
		Server: ServerConfig{
			Port:    20377,
			DevMode: false,
		},
		Data: DataConfig{
			DataDir:         "data",
			SnapshotDB:      "snapshots.db",
			CountryFile:     "impexp_countrydata.xlsx",
			ProductFile:     "impexp_Productdata.xlsx",
			OfficeFile:      "customoffice_trade_allyr.xlsx",
			SummaryFile:     "trade_2071_082.xlsx",
			GrowthFile:      "trad_Percechange2072_to_82.xlsx",
			CommoditySubdir: "commodities",
		},
		Business: BusinessConfig{
			DefaultTopN: 10,
			CommodityYears: []string{
				"2081/082",
				"2080/081",
				"2079/080",
				"2078/079",
				"2077/078",
				"2076/077",
				"2075/076",
				"2074/075",
			},
		},
	}
}

func isPortSpecifiedInToml(data []byte) bool {
	var raw map[string]any
	if err := toml.Unmarshal(data, &raw); err != nil {
		return false
	}

	serverAny, ok := raw["server"]
	if !ok {
		return false
	}

	serverMap, ok := serverAny.(map[string]any)
	if !ok {
		return false
	}

	_, ok = serverMap["port"]
	return ok
}

// GetExeDir returns the directory of the running executable.
func GetExeDir() (string, error) {
	exe, err := os.Executable()
	if err != nil {
		return "", err
	}
	return filepath.Dir(exe), nil
}

// LoadConfigWithInfo loads config.toml from the executable directory
// and reports whether the file specified a port.
func LoadConfigWithInfo() (*AppConfig, LoadConfigInfo, error) {
	info := LoadConfigInfo{}
	config := DefaultConfig()

	exeDir, err := GetExeDir()
	if err != nil {
		exeDir = "."
	}

	configPath := filepath.Join(exeDir, "config.toml")

	data, err := os.ReadFile(configPath)
	if err != nil {
		if os.IsNotExist(err) {
			// No config file, run on defaults.
			return config, info, nil
		}
		return nil, info, err
	}

	info.PortSpecified = isPortSpecifiedInToml(data)

	if err := toml.Unmarshal(data, config); err != nil {
		return nil, info, err
	}

	// Environment overrides, used by local runs and integration tests.
	if v := os.Getenv("TRADELENS_DATA_DIR"); v != "" {
		config.Data.DataDir = v
	}
	if v := os.Getenv("TRADELENS_SNAPSHOT_DB"); v != "" {
		config.Data.SnapshotDB = v
	}

	return config, info, nil
}

// LoadConfig loads config.toml from the executable directory.
func LoadConfig() (*AppConfig, error) {
	config, _, err := LoadConfigWithInfo()
	return config, err
}

// SaveConfig writes the configuration back to config.toml.
func SaveConfig(config *AppConfig) error {
	exeDir, err := GetExeDir()
	if err != nil {
		exeDir = "."
	}

	configPath := filepath.Join(exeDir, "config.toml")

	data, err := toml.Marshal(config)
	if err != nil {
		return err
	}

	return os.WriteFile(configPath, data, 0644)
}

// EnsureDataDir creates the data directory and its subdirectories
// next to the executable if they do not exist.
func EnsureDataDir(config *AppConfig) (string, error) {
	dataDir := config.Data.DataDir
	if !filepath.IsAbs(dataDir) {
		exeDir, err := GetExeDir()
		if err != nil {
			exeDir = "."
		}
		dataDir = filepath.Join(exeDir, dataDir)
	}

	if err := os.MkdirAll(dataDir, 0755); err != nil {
		return "", err
	}

	if err := os.MkdirAll(filepath.Join(dataDir, config.Data.CommoditySubdir), 0755); err != nil {
		return "", err
	}

	return dataDir, nil
}

// GetDataPath resolves a data file path inside the data directory.
func GetDataPath(config *AppConfig, filename string) string {
	dataDir := config.Data.DataDir
	if !filepath.IsAbs(dataDir) {
		exeDir, _ := GetExeDir()
		if exeDir == "" {
			exeDir = "."
		}
		dataDir = filepath.Join(exeDir, dataDir)
	}
	return filepath.Join(dataDir, filename)
}
