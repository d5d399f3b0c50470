package loader

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseStaff(t *testing.T) {
	input := `# candidates for the first intake
Ada Lovelace (85)

Brian Kernighan(70)
  Grace Hopper ( 100 )
`
	staff, err := ParseStaff(strings.NewReader(input))
	require.NoError(t, err)
	require.Len(t, staff, 3)

	assert.Equal(t, "Ada Lovelace", staff[0].Name)
	assert.Equal(t, 85, staff[0].Skill)
	assert.Equal(t, "Brian Kernighan", staff[1].Name)
	assert.Equal(t, 70, staff[1].Skill)
	assert.Equal(t, "Grace Hopper", staff[2].Name)
	assert.Equal(t, 100, staff[2].Skill)

	for _, s := range staff {
		assert.Equal(t, 100, s.Stamina)
		assert.Zero(t, s.YearsOfTeaching)
	}
}

func TestParseStaffMalformed(t *testing.T) {
	tests := []struct {
		name  string
		input string
		line  string
	}{
		{"missing skill", "Ada (85)\nBrian\n", "line 2"},
		{"non numeric skill", "Ada (high)\n", "line 1"},
		{"skill above range", "\nAda (101)\n", "line 2"},
		{"negative skill", "Ada (-3)\n", "line 1"},
		{"missing name", "(50)\n", "line 1"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseStaff(strings.NewReader(tt.input))
			require.ErrorIs(t, err, ErrMalformedRecord)
			assert.Contains(t, err.Error(), tt.line)
		})
	}
}

func TestParseStaffEmpty(t *testing.T) {
	staff, err := ParseStaff(strings.NewReader("# nobody yet\n\n"))
	require.NoError(t, err)
	assert.Empty(t, staff)
}

func TestLoadStaffFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "staff.txt")
	require.NoError(t, os.WriteFile(path, []byte("Ada (85)\nBrian (70)\n"), 0o644))

	staff, err := LoadStaff(path)
	require.NoError(t, err)
	assert.Len(t, staff, 2)

	_, err = LoadStaff(filepath.Join(t.TempDir(), "missing.txt"))
	assert.Error(t, err)
}
