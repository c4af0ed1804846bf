package main

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	fluenterrors "github.com/alexisbeaulieu97/fluent/pkg/errors"
)

// field returns the value printed after label on its own line.
func field(t *testing.T, out, label string) string {
	t.Helper()

	for _, line := range strings.Split(out, "\n") {
		if rest, ok := strings.CutPrefix(strings.TrimSpace(line), label+" "); ok {
			return strings.TrimSpace(rest)
		}
	}
	t.Fatalf("no %q line in:\n%s", label, out)
	return ""
}

func TestOverflowCommand(t *testing.T) {
	tests := []struct {
		name      string
		args      []string
		kept      string
		overflow  string
		indicator string
	}{
		{
			name:      "end policy hides a suffix",
			args:      []string{"--width", "300", "--spacing", "8", "--indicator", "32", "60", "60", "60", "60", "60"},
			kept:      "0 1 2",
			overflow:  "[3,5)",
			indicator: "true",
		},
		{
			name:      "start policy hides a prefix",
			args:      []string{"--width", "300", "--spacing", "8", "--indicator", "32", "--policy", "start", "60", "60", "60", "60", "60"},
			kept:      "2 3 4",
			overflow:  "[0,2)",
			indicator: "true",
		},
		{
			name:      "everything fits",
			args:      []string{"--width", "100", "10", "10", "10"},
			kept:      "0 1 2",
			overflow:  "[3,3)",
			indicator: "false",
		},
		{
			name:      "forced indicator",
			args:      []string{"--always", "10", "10"},
			kept:      "0 1",
			overflow:  "[2,2)",
			indicator: "true",
		},
		{
			name:      "no room",
			args:      []string{"--width", "0", "10", "10"},
			kept:      "-",
			overflow:  "[0,2)",
			indicator: "false",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, _, err := execute(t, append([]string{"overflow"}, tt.args...)...)
			require.NoError(t, err)

			assert.Equal(t, tt.kept, field(t, out, "kept"))
			assert.Equal(t, tt.overflow, field(t, out, "overflow"))
			assert.Equal(t, tt.indicator, field(t, out, "indicator"))
		})
	}
}

func TestOverflowCommandPlacements(t *testing.T) {
	out, _, err := execute(t, "overflow", "--width", "300", "--spacing", "8", "--indicator", "32", "60", "60", "60", "60", "60")
	require.NoError(t, err)

	assert.Equal(t, "236x1", field(t, out, "size"))

	var rows [][]string
	for _, line := range strings.Split(out, "\n") {
		if cols := strings.Fields(line); len(cols) == 5 && cols[0] != "item" {
			rows = append(rows, cols)
		}
	}
	assert.Equal(t, [][]string{
		{"0", "0", "0", "60", "1"},
		{"1", "68", "0", "60", "1"},
		{"2", "136", "0", "60", "1"},
		{"overflow", "204", "0", "32", "1"},
	}, rows)
}

func TestOverflowCommandErrors(t *testing.T) {
	tests := []struct {
		name  string
		args  []string
		field string
	}{
		{name: "policy", args: []string{"--policy", "middle", "10"}, field: "policy"},
		{name: "arrangement", args: []string{"--arrangement", "spread", "10"}, field: "arrangement"},
		{name: "item width", args: []string{"ten"}, field: "item"},
		{name: "item height", args: []string{"10xtall"}, field: "item"},
		{name: "negative width", args: []string{"-10"}, field: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, _, err := execute(t, append([]string{"overflow"}, tt.args...)...)
			require.Error(t, err)
			if tt.field == "" {
				return
			}
			var verr *fluenterrors.ValidationError
			require.ErrorAs(t, err, &verr)
			assert.Equal(t, tt.field, verr.Field)
		})
	}
}

func TestOverflowRequiresItems(t *testing.T) {
	_, _, err := execute(t, "overflow", "--width", "10")
	require.Error(t, err)
}
