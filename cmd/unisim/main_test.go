package main

import (
	"bytes"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/fatih/color"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/napolitain/unisim/internal/loader"
	"github.com/napolitain/unisim/internal/models"
)

func TestParseAnswer(t *testing.T) {
	tests := []struct {
		input string
		want  int
		err   bool
	}{
		{"5\n", 5, false},
		{"  12 ", 12, false},
		{"no", 0, false},
		{"NO\n", 0, false},
		{"", 0, false},
		{"0", 0, false},
		{"-2", 0, true},
		{"maybe", 0, true},
	}
	for _, tt := range tests {
		got, err := parseAnswer(tt.input)
		if tt.err {
			assert.ErrorIs(t, err, errInvalidAnswer, tt.input)
			continue
		}
		require.NoError(t, err, tt.input)
		assert.Equal(t, tt.want, got, tt.input)
	}
}

func TestContinueModelKeys(t *testing.T) {
	var m tea.Model = continueModel{question: "more?"}
	for _, msg := range []tea.Msg{
		tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("1x2")},
		tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("3")},
		tea.KeyMsg{Type: tea.KeyBackspace},
	} {
		m, _ = m.Update(msg)
	}
	assert.Equal(t, "12", m.(continueModel).input)

	m, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	require.NotNil(t, cmd)
	years, err := m.(continueModel).years()
	require.NoError(t, err)
	assert.Equal(t, 12, years)
	assert.Empty(t, m.View())
}

func TestContinueModelEscStops(t *testing.T) {
	var m tea.Model = continueModel{input: "4"}
	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyEsc})
	years, err := m.(continueModel).years()
	require.NoError(t, err)
	assert.Zero(t, years)
}

func TestApplyPositional(t *testing.T) {
	v := viper.New()
	require.NoError(t, applyPositional(v, []string{"staff.txt", "2500", "4"}))
	assert.Equal(t, "staff.txt", v.GetString(loader.KeyStaffFile))
	assert.Equal(t, 2500.0, v.GetFloat64(loader.KeyFunding))
	assert.Equal(t, 4, v.GetInt(loader.KeyYears))

	assert.ErrorIs(t, applyPositional(viper.New(), []string{"s", "lots"}), loader.ErrInvalidConfig)
	assert.ErrorIs(t, applyPositional(viper.New(), []string{"s", "1", "2.5"}), loader.ErrInvalidConfig)
}

func TestRegisterFlagsBindsConfigKeys(t *testing.T) {
	v := viper.New()
	flags := pflag.NewFlagSet("unisim", pflag.ContinueOnError)
	registerFlags(flags, v)

	require.NoError(t, flags.Parse([]string{"-s", "pool.txt", "--years", "4", "--metrics", "run.prom", "-q"}))

	assert.Equal(t, "pool.txt", v.GetString(loader.KeyStaffFile))
	assert.Equal(t, 4, v.GetInt(loader.KeyYears))
	assert.Equal(t, "run.prom", v.GetString(loader.KeyMetrics))
	assert.True(t, v.GetBool(loader.KeyQuiet))
	assert.Equal(t, 1000.0, v.GetFloat64(loader.KeyFunding), "unset flags fall back to their default")
}

func TestPrinterGroupsByYear(t *testing.T) {
	color.NoColor = true
	var buf bytes.Buffer
	p := newPrinter(&buf, false)

	p.Emit(models.Event{Year: 1, Kind: models.EventBuilt, Subject: "Zepler (B2)", Facility: models.Lab, Amount: 300})
	p.Emit(models.Event{Year: 1, Kind: models.EventPaidMaintenance, Amount: 2.1})
	p.Emit(models.Event{Year: 2, Kind: models.EventLeft, Subject: "Ada"})

	out := buf.String()
	assert.Contains(t, out, "Year 1:\n")
	assert.Contains(t, out, `Built Lab "Zepler (B2)" for 300 coins.`)
	assert.Contains(t, out, "Paid 2.1 coins in maintenance costs.")
	assert.Contains(t, out, "Year 2:\nAda left the university.")
}

func TestPrinterQuiet(t *testing.T) {
	var buf bytes.Buffer
	p := newPrinter(&buf, true)
	p.Emit(models.Event{Year: 1, Kind: models.EventHired, Subject: "Ada"})
	assert.Empty(t, buf.String())
}
