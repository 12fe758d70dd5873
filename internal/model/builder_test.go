package model

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestSetConfig verifies that every pair lands in Config and that later
// assignments to the same key win, matching argument order.
func TestSetConfig(t *testing.T) {
	tests := []struct {
		name  string
		pairs [][2]string
		want  map[string]string
	}{
		{
			name:  "single pair",
			pairs: [][2]string{{"db", "postgres"}},
			want:  map[string]string{"db": "postgres"},
		},
		{
			name:  "multiple pairs",
			pairs: [][2]string{{"a", "1"}, {"b", "2"}, {"c", "3"}},
			want:  map[string]string{"a": "1", "b": "2", "c": "3"},
		},
		{
			name:  "repeated key keeps last value",
			pairs: [][2]string{{"a", "1"}, {"a", "2"}},
			want:  map[string]string{"a": "2"},
		},
		{
			name:  "empty value is stored",
			pairs: [][2]string{{"a", ""}},
			want:  map[string]string{"a": ""},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := NewBuilder("/tmp/repo", false, nil)
			for _, p := range tt.pairs {
				b.SetConfig(p[0], p[1])
			}
			assert.Equal(t, tt.want, b.Config)
		})
	}
}

// TestSetConfig_VerboseEcho checks the echo format written to Log.
func TestSetConfig_VerboseEcho(t *testing.T) {
	var log bytes.Buffer
	b := NewBuilder("/tmp/repo", true, &log)

	b.SetConfig("erp", "odoo")
	b.SetConfig("port", "8069")

	assert.Equal(t, "  config[erp] = odoo\n  config[port] = 8069\n", log.String())
}

// TestSetConfig_Quiet checks that nothing is written without --verbose.
func TestSetConfig_Quiet(t *testing.T) {
	var log bytes.Buffer
	b := NewBuilder("/tmp/repo", false, &log)

	b.SetConfig("erp", "odoo")

	assert.Empty(t, log.String())
	assert.Equal(t, "odoo", b.Config["erp"])
}

// TestSetConfig_ZeroValueBuilder ensures a Builder literal without a map
// does not panic.
func TestSetConfig_ZeroValueBuilder(t *testing.T) {
	b := &Builder{}
	require.NotPanics(t, func() { b.SetConfig("k", "v") })
	assert.Equal(t, "v", b.Config["k"])
}

func TestLogf(t *testing.T) {
	var log bytes.Buffer

	NewBuilder("/r", false, &log).Logf("hidden %d", 1)
	assert.Empty(t, log.String())

	NewBuilder("/r", true, &log).Logf("shown %d", 2)
	assert.Equal(t, "[verbose] shown 2\n", log.String())
}

func TestBuilder_String(t *testing.T) {
	assert.Equal(t, `<Builder "/srv/repo">`, NewBuilder("/srv/repo", false, nil).String())
}
