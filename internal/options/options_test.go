package options

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
)

type decodeConfig struct {
	maxPositions int
	strict       bool
	calls        []string
}

func withMax(n int) Option[*decodeConfig] {
	return New(func(c *decodeConfig) error {
		if n <= 0 {
			return errors.New("max positions must be positive")
		}
		c.maxPositions = n
		c.calls = append(c.calls, "max")

		return nil
	})
}

func withStrict() Option[*decodeConfig] {
	return NoError(func(c *decodeConfig) {
		c.strict = true
		c.calls = append(c.calls, "strict")
	})
}

func TestApply_InOrder(t *testing.T) {
	cfg := &decodeConfig{}

	err := Apply(cfg, withStrict(), withMax(10))
	require.NoError(t, err)
	require.True(t, cfg.strict)
	require.Equal(t, 10, cfg.maxPositions)
	require.Equal(t, []string{"strict", "max"}, cfg.calls)
}

func TestApply_StopsAtFirstError(t *testing.T) {
	cfg := &decodeConfig{}

	err := Apply(cfg, withMax(5), withMax(-1), withStrict())
	require.Error(t, err)
	require.Contains(t, err.Error(), "must be positive")
	require.Equal(t, 5, cfg.maxPositions)
	require.False(t, cfg.strict, "options after a failure must not run")
}

func TestApply_NoOptions(t *testing.T) {
	cfg := &decodeConfig{}

	require.NoError(t, Apply(cfg))
	require.Equal(t, decodeConfig{}, *cfg)
}

func TestApply_SkipsNil(t *testing.T) {
	cfg := &decodeConfig{}

	require.NoError(t, Apply(cfg, nil, withStrict()))
	require.True(t, cfg.strict)
}
