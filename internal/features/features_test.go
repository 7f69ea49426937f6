package features_test

import (
	"os"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/tetratelabs/sveasm/internal/features"
)

func TestParse(t *testing.T) {
	tests := []struct {
		in  string
		exp features.Set
	}{
		{in: "", exp: features.None},
		{in: "none", exp: features.None},
		{in: "all", exp: features.All},
		{in: "sve2", exp: features.SVE2},
		{in: "sve2,bitperm", exp: features.SVE2 | features.BitPerm},
		{in: " I8MM , sve2 ", exp: features.SVE2 | features.I8MM},
	}
	for _, tt := range tests {
		tc := tt
		t.Run(tc.in, func(t *testing.T) {
			s, err := features.Parse(tc.in)
			require.NoError(t, err)
			require.Equal(t, tc.exp, s)
		})
	}

	_, err := features.Parse("sve2,avx")
	require.EqualError(t, err, `unknown feature "avx"`)
}

func TestSet(t *testing.T) {
	s := features.None.With(features.SVE2)
	require.True(t, s.Has(features.SVE2))
	require.False(t, s.Has(features.SVE2|features.I8MM))
	require.Equal(t, "sve2", s.String())

	s = features.All.Without(features.BitPerm)
	require.Equal(t, "sve2,i8mm", s.String())
	require.Equal(t, "none", features.None.String())
}

func TestFromEnvironment(t *testing.T) {
	if _, ok := os.LookupEnv(features.EnvVarName); ok {
		t.Skipf("%s is set by the environment", features.EnvVarName)
	}
	s, err := features.FromEnvironment()
	require.NoError(t, err)
	require.Equal(t, features.All, s)
}

func TestFromEnvironment_Reloads(t *testing.T) {
	t.Setenv(features.EnvVarName, "sve2")
	s, err := features.FromEnvironment()
	require.NoError(t, err)
	require.Equal(t, features.SVE2, s)

	t.Setenv(features.EnvVarName, "none")
	s, err = features.FromEnvironment()
	require.NoError(t, err)
	require.Equal(t, features.None, s)

	t.Setenv(features.EnvVarName, "i8mm,bogus")
	_, err = features.FromEnvironment()
	require.EqualError(t, err, `unknown feature "bogus"`)
}
