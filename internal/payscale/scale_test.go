package payscale

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse(t *testing.T) {
	s, err := Parse("1200-30-1440-40-1800")
	require.NoError(t, err)
	assert.Equal(t, int64(1200), s.Start)
	assert.Equal(t, int64(1800), s.Max)
	require.Len(t, s.Stages, 2)
	assert.Equal(t, Stage{From: 1200, To: 1440, Increment: 30}, s.Stages[0])
	assert.Equal(t, Stage{From: 1440, To: 1800, Increment: 40}, s.Stages[1])
}

func TestParseSingleFigure(t *testing.T) {
	s, err := Parse("2500")
	require.NoError(t, err)
	assert.Equal(t, int64(2500), s.Start)
	assert.Equal(t, int64(2500), s.Max)
	assert.Empty(t, s.Stages)
}

func TestParseRejectsMalformed(t *testing.T) {
	for _, raw := range []string{"", "1200-30", "1200-0-1440", "1440-30-1200", "abc-30-1440"} {
		_, err := Parse(raw)
		assert.Error(t, err, "scale %q", raw)
	}
}

func TestIncrement(t *testing.T) {
	s := MustParse("1200-30-1440-40-1800")

	tests := []struct {
		name     string
		pay      int64
		n        int
		expected int64
	}{
		{"single step in first range", 1200, 1, 1230},
		{"step at range boundary uses next range", 1440, 1, 1480},
		{"last step before boundary", 1410, 1, 1440},
		{"multiple steps across ranges", 1410, 2, 1480},
		{"clamps at maximum", 1790, 1, 1800},
		{"at maximum stays", 1800, 1, 1800},
		{"above maximum clamps", 1900, 1, 1800},
		{"off-stage pay uses bracketing increment", 1215, 1, 1245},
		{"final range step overshooting maximum clamps", 1770, 1, 1800},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, s.Increment(tt.pay, tt.n))
		})
	}
}

func TestFitNextHigher(t *testing.T) {
	s := MustParse("1200-30-1440-40-1800")

	tests := []struct {
		name     string
		pay      int64
		expected int64
	}{
		{"below floor fixes at floor", 1000, 1200},
		{"at floor moves to next stage", 1200, 1230},
		{"between stages moves above", 1215, 1230},
		{"at stage moves to next", 1230, 1260},
		{"across range boundary", 1440, 1480},
		{"near maximum caps", 1795, 1800},
		{"at maximum stays", 1800, 1800},
		{"above maximum caps", 2500, 1800},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, s.FitNextHigher(tt.pay))
		})
	}
}
