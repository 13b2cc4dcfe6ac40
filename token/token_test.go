package token

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestKindString(t *testing.T) {
	tests := []struct {
		kind     Kind
		expected string
	}{
		{None, "NONE"},
		{Word, "WORD"},
		{Type, "TYPE"},
		{PPIf, "PP_IF"},
		{WhileOfDo, "WHILE_OF_DO"},
		{OCIntf, "OC_INTF"},
		{DVersionIf, "D_VERSION_IF"},
		{MacroElse, "MACRO_ELSE"},
		{Kind(-1), "UNKNOWN"},
		{Kind(100000), "UNKNOWN"},
	}

	for _, tt := range tests {
		t.Run(tt.expected, func(t *testing.T) {
			require.Equal(t, tt.expected, tt.kind.String())
		})
	}
}

func TestEveryKindIsNamed(t *testing.T) {
	for k := None; k <= MacroElse; k++ {
		require.NotEqual(t, "UNKNOWN", k.String(), "kind %d has no name", int(k))
	}
}
