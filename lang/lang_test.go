package lang

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestParse(t *testing.T) {
	tests := []struct {
		input    string
		expected Flags
		wantErr  bool
	}{
		{"C", C, false},
		{"CPP", CPP, false},
		{"cpp", CPP, false},
		{"OC", OC, false},
		{"OC+", OC | CPP, false},
		{"java", Java, false},
		{"PAWN", Pawn, false},
		{"ECMA", ECMA, false},
		{"fortran", 0, true},
		{"", 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			f, err := Parse(tt.input)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			require.Equal(t, tt.expected, f)
		})
	}
}

func TestAggregates(t *testing.T) {
	// AllC covers the curly-brace languages; Pawn only joins via All.
	require.True(t, AllC.Intersects(ECMA))
	require.False(t, AllC.Intersects(Pawn))
	require.True(t, All.Intersects(Pawn))

	for _, f := range []Flags{C, CPP, D, CS, Java, OC, Vala, ECMA} {
		require.True(t, AllC.Intersects(f), "AllC should include %s", f)
	}
}

func TestIntersectsIgnoresPPMarker(t *testing.T) {
	// Two sets sharing only the marker bit do not intersect as languages.
	require.False(t, FlagPP.Intersects(FlagPP))
	require.True(t, (C | FlagPP).Intersects(C))
	require.False(t, (C | FlagPP).Intersects(D))
}

func TestPPOnly(t *testing.T) {
	require.True(t, (All | FlagPP).PPOnly())
	require.False(t, All.PPOnly())
}

func TestString(t *testing.T) {
	tests := []struct {
		flags    Flags
		expected string
	}{
		{C, "C"},
		{C | CPP, "C+CPP"},
		{OC | CPP, "CPP+OC"},
		{All | FlagPP, "C+CPP+D+CS+JAVA+OC+VALA+PAWN+ECMA/PP"},
		{0, "NONE"},
		{FlagPP, "NONE/PP"},
	}

	for _, tt := range tests {
		t.Run(tt.expected, func(t *testing.T) {
			require.Equal(t, tt.expected, tt.flags.String())
		})
	}
}
