package vcconfig_test

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vcsolve/vcsolve/vcconfig"
)

func TestLoadDefaultsOnEmptyFile(t *testing.T) {
	cfg, err := vcconfig.Load(strings.NewReader(""))
	require.NoError(t, err)
	assert.Equal(t, vcconfig.Default(), cfg)
}

func TestLoadIgnoresCommentsAndBlanks(t *testing.T) {
	src := "# a comment\n\nCONFIG_MIRROR false\n   \nLP_BOUND_CUTOFF 42.5\n"
	cfg, err := vcconfig.Load(strings.NewReader(src))
	require.NoError(t, err)
	assert.False(t, cfg.Mirror)
	assert.Equal(t, 42.5, cfg.LPBoundCutoff)
}

func TestLoadRuleSlot(t *testing.T) {
	cfg, err := vcconfig.Load(strings.NewReader("CONFIG_RULE 1 UNCONF\nCONFIG_RULE 16 DEG_1\n"))
	require.NoError(t, err)
	assert.Equal(t, vcconfig.RuleUnconf, cfg.Rules[0])
	assert.Equal(t, vcconfig.RuleDeg1, cfg.Rules[15])
}

func TestLoadAcceptsOptPrefixedRuleTags(t *testing.T) {
	cfg, err := vcconfig.Load(strings.NewReader("CONFIG_RULE 2 OPT_UNCONF_COMBO\n"))
	require.NoError(t, err)
	assert.Equal(t, vcconfig.RuleUnconfCombo, cfg.Rules[1])
}

func TestLoadRejectsUnknownKey(t *testing.T) {
	_, err := vcconfig.Load(strings.NewReader("NOT_A_KEY 1\n"))
	require.ErrorIs(t, err, vcconfig.ErrUnknownKey)
}

func TestLoadRejectsMalformedLine(t *testing.T) {
	_, err := vcconfig.Load(strings.NewReader("CONFIG_MIRROR\n"))
	require.ErrorIs(t, err, vcconfig.ErrMalformedLine)
}

func TestLoadRejectsBadRuleSlot(t *testing.T) {
	_, err := vcconfig.Load(strings.NewReader("CONFIG_RULE 99 DEG_1\n"))
	require.ErrorIs(t, err, vcconfig.ErrBadRuleSlot)

	_, err = vcconfig.Load(strings.NewReader("CONFIG_RULE 1 NOT_A_TAG\n"))
	require.ErrorIs(t, err, vcconfig.ErrBadRuleSlot)
}

func TestRenderLoadRoundTrip(t *testing.T) {
	cfg := vcconfig.Default(vcconfig.WithBranching(false, true, false))
	var buf bytes.Buffer
	require.NoError(t, vcconfig.Render(cfg, &buf))

	loaded, err := vcconfig.Load(&buf)
	require.NoError(t, err)
	assert.Equal(t, cfg, loaded)
}

func TestDefaultOptionsApplyInOrder(t *testing.T) {
	cfg := vcconfig.Default(
		vcconfig.WithLPBound(false, 10),
		vcconfig.WithLPBound(true, 20),
	)
	assert.True(t, cfg.LPBoundEnabled)
	assert.Equal(t, 20.0, cfg.LPBoundCutoff)
}
