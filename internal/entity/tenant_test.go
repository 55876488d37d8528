package entity

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestDecodeTenantConfig(t *testing.T) {
	bag := Map{
		"shop_patterns": []any{"coffee", "latte"},
		"prizes": []any{
			map[string]any{"name": "Free drink", "rate": 0.1, "emoji": "🎁", "instruction": "Show this at the counter"},
			map[string]any{"name": "Nothing", "rate": "0.9"},
		},
		"greeting_message": "Welcome!",
		"spin_cooldown":    3600,
	}

	cfg, err := DecodeTenantConfig(bag)
	require.NoError(t, err)
	require.Equal(t, []string{"coffee", "latte"}, cfg.ShopPatterns)
	require.Len(t, cfg.Prizes, 2)
	require.Equal(t, "Free drink", cfg.Prizes[0].Name)
	require.Equal(t, 0.1, cfg.Prizes[0].Rate)
	require.Equal(t, 0.9, cfg.Prizes[1].Rate)

	// Unrecognized keys survive the round trip for the engine to consume.
	require.Equal(t, "Welcome!", cfg.Remain["greeting_message"])
	require.Equal(t, 3600, cfg.Remain["spin_cooldown"])
}

func TestDecodeTenantConfig_emptyBag(t *testing.T) {
	cfg, err := DecodeTenantConfig(Map{})
	require.NoError(t, err)
	require.Empty(t, cfg.ShopPatterns)
	require.Empty(t, cfg.Prizes)
}
