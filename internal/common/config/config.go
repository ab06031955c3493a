// internal/common/config/config.go
package config

import "furnishing-engine/pkg/catalog"

// Config is the main application configuration struct.
type Config struct {
	App     AppConfig     `mapstructure:"app"`
	Data    DataConfig    `mapstructure:"data"`
	Budget  BudgetConfig  `mapstructure:"budget"`
	Logging LoggingConfig `mapstructure:"logging"`
}

// --- Core App Config ---
type AppConfig struct {
	Name        string `mapstructure:"name"`
	Version     string `mapstructure:"version"`
	Environment string `mapstructure:"environment"`
}

// DataConfig points at the rule and catalog documents the engine consumes.
type DataConfig struct {
	RulesPath     string `mapstructure:"rules_path"`
	ItemsPath     string `mapstructure:"items_path"`
	TemplatesPath string `mapstructure:"templates_path"`
}

// BudgetConfig holds the budget defaults (monetary amounts in minor units).
type BudgetConfig struct {
	ContingencyRate    float64 `mapstructure:"contingency_rate"`
	InstallationFee    int64   `mapstructure:"installation_fee"`
	FuelFee            int64   `mapstructure:"fuel_fee"`
	StorageFee         int64   `mapstructure:"storage_fee"`
	KitchenFee         int64   `mapstructure:"kitchen_fee"`
	PropertyMgmtFee    int64   `mapstructure:"property_mgmt_fee"`
	DesignFeePerSqft   int64   `mapstructure:"design_fee_per_sqft"`
	DisableContingency bool    `mapstructure:"disable_contingency"`
}

// ToDefaults converts the config section into the engine's defaults record.
func (b BudgetConfig) ToDefaults() catalog.BudgetDefaults {
	return catalog.BudgetDefaults{
		ContingencyRate:  b.ContingencyRate,
		InstallationFee:  b.InstallationFee,
		FuelFee:          b.FuelFee,
		StorageFee:       b.StorageFee,
		KitchenFee:       b.KitchenFee,
		PropertyMgmtFee:  b.PropertyMgmtFee,
		DesignFeePerSqft: b.DesignFeePerSqft,
	}
}

type LoggingConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
	Output string `mapstructure:"output"`
}
