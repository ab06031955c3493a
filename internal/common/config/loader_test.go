// internal/common/config/loader_test.go
package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoadFromFile(t *testing.T) {
	path := writeConfig(t, `
app:
  name: test-engine
data:
  rules_path: testdata/rules.json
  items_path: testdata/items.json
  templates_path: testdata/templates.json
budget:
  contingency_rate: 0.2
  design_fee_per_sqft: 150
logging:
  level: debug
`)

	cfg, err := LoadFromFile(path)
	require.NoError(t, err)

	assert.Equal(t, "test-engine", cfg.App.Name)
	assert.Equal(t, "testdata/rules.json", cfg.Data.RulesPath)
	assert.Equal(t, 0.2, cfg.Budget.ContingencyRate)
	assert.Equal(t, int64(150), cfg.Budget.DesignFeePerSqft)
	assert.Equal(t, "debug", cfg.Logging.Level)

	// Unset fields pick up defaults.
	assert.Equal(t, "json", cfg.Logging.Format)
}

func TestLoadFromFile_DefaultsApplied(t *testing.T) {
	path := writeConfig(t, `
app:
  name: ""
`)

	cfg, err := LoadFromFile(path)
	require.NoError(t, err)

	assert.Equal(t, "furnishing-engine", cfg.App.Name)
	assert.Equal(t, "configs/autoconfig-rules.json", cfg.Data.RulesPath)
	assert.Equal(t, 0.10, cfg.Budget.ContingencyRate)
}

func TestLoadFromFile_RejectsBadContingencyRate(t *testing.T) {
	path := writeConfig(t, `
data:
  rules_path: r.json
  items_path: i.json
  templates_path: t.json
budget:
  contingency_rate: 1.5
`)

	_, err := LoadFromFile(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid configuration")
}

func TestLoadFromFile_MissingFile(t *testing.T) {
	_, err := LoadFromFile(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.Error(t, err)
}

func TestBudgetConfigToDefaults(t *testing.T) {
	b := BudgetConfig{
		ContingencyRate:  0.1,
		InstallationFee:  350000,
		FuelFee:          45000,
		StorageFee:       120000,
		KitchenFee:       250000,
		PropertyMgmtFee:  150000,
		DesignFeePerSqft: 150,
	}

	d := b.ToDefaults()
	assert.Equal(t, 0.1, d.ContingencyRate)
	assert.Equal(t, int64(350000), d.InstallationFee)
	assert.Equal(t, int64(150), d.DesignFeePerSqft)
}
