package verdict_test

import (
	"testing"

	"github.com/haxtibal/i4w-callapi/verdict"
	"github.com/stretchr/testify/assert"
)

func TestFromInt(t *testing.T) {
	cases := []struct {
		in   int
		want verdict.ExitCode
	}{
		{0, verdict.OK},
		{1, verdict.Warning},
		{2, verdict.Critical},
		{3, verdict.Unknown},
		{99, verdict.Unknown},
		{-1, verdict.Unknown},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, verdict.FromInt(tc.in))
	}
}

func TestFormatWithoutPerfdata(t *testing.T) {
	assert.Equal(t, "OK - up", verdict.Format("OK - up", "", false))
	assert.Equal(t, "OK - up", verdict.Format("OK - up", "rta=1ms", false))
}

func TestFormatWithPerfdata(t *testing.T) {
	assert.Equal(t, "OK - up | rta=1ms", verdict.Format("OK - up", "rta=1ms", true))
}

func TestFormatNormalizesCRLF(t *testing.T) {
	assert.Equal(t, "line1\nline2", verdict.Format("line1\r\nline2", "", false))
}

func TestFormatIgnoresEmptyValidPerfdata(t *testing.T) {
	assert.Equal(t, "OK - up", verdict.Format("OK - up", "", true))
}
