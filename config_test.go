package recordkeep_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/RgDivine/recordkeep"
)

func TestDefaultViper(t *testing.T) {
	t.Parallel()

	t.Run("defaults", func(t *testing.T) {
		t.Parallel()

		vip := recordkeep.DefaultViper()

		config := recordkeep.Config{}
		err := vip.Unmarshal(&config)

		assert.NoError(t, err)
		assert.Equal(t, recordkeep.LocalEnv, config.Environment)
		assert.Equal(t, "info", config.Log.Level)
		assert.False(t, config.Store.Enabled, "demos run in memory by default")
		assert.Equal(t, "./data", config.Store.Path)
	})

	t.Run("overwrite default", func(t *testing.T) {
		t.Parallel()

		vip := recordkeep.DefaultViper()
		vip.Set("log.level", "debug")
		vip.Set("environment", "test")

		config := recordkeep.Config{}
		err := vip.Unmarshal(&config)

		assert.NoError(t, err)
		assert.Equal(t, recordkeep.TestEnv, config.Environment)
		assert.Equal(t, "debug", config.Log.Level)
	})

	t.Run("unsupported environment", func(t *testing.T) {
		t.Parallel()

		vip := recordkeep.DefaultViper()
		vip.Set("environment", "staging")

		err := vip.Unmarshal(&recordkeep.Config{})
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "use one of")
	})
}
