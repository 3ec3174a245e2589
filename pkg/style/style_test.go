package style_test

import (
	"bytes"
	"os"
	"strings"
	"testing"

	"github.com/jonas-elhs/metemplate/pkg/errors"
	"github.com/jonas-elhs/metemplate/pkg/style"
	"github.com/jonas-elhs/metemplate/pkg/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleProjects() []types.Project {
	return []types.Project{
		{Name: "alacritty", ValueSets: map[string]types.ValueSet{
			"light": {Name: "light"},
			"dark":  {Name: "dark"},
			"gruv":  {Name: "gruv"},
		}},
		{Name: "git", ValueSets: map[string]types.ValueSet{
			"work": {Name: "work"},
		}},
		{Name: "empty"},
	}
}

func TestPlainRenderer_RenderProjectList(t *testing.T) {
	r := style.NewPlainRenderer()

	t.Run("with_values", func(t *testing.T) {
		want := strings.Join([]string{
			"alacritty",
			"  ├─ dark",
			"  ├─ gruv",
			"  └─ light",
			"",
			"git",
			"  └─ work",
			"",
			"empty",
		}, "\n")
		assert.Equal(t, want, r.RenderProjectList(sampleProjects(), true))
	})

	t.Run("names_only", func(t *testing.T) {
		assert.Equal(t, "alacritty\ngit\nempty", r.RenderProjectList(sampleProjects(), false))
	})
}

func TestTerminalRenderer_RenderProjectList(t *testing.T) {
	out := style.NewTerminalRenderer().RenderProjectList(sampleProjects(), true)

	for _, want := range []string{"alacritty", "dark", "light", "git", "work", style.BranchLast, style.BranchMiddle} {
		assert.Contains(t, out, want)
	}
}

func TestRenderGenerated(t *testing.T) {
	plain := style.NewPlainRenderer()
	assert.Equal(t, "Generated template 'kitty'", plain.RenderGenerated("kitty", false))
	assert.Equal(t, "Would generate template 'kitty'", plain.RenderGenerated("kitty", true))

	term := style.NewTerminalRenderer()
	assert.Contains(t, term.RenderGenerated("kitty", false), "kitty")
}

func TestRenderError(t *testing.T) {
	err := errors.New(errors.ErrNotFound, "no project named 'x' found")

	assert.Equal(t, "Error: [NOT_FOUND] no project named 'x' found", style.NewPlainRenderer().RenderError(err))
	assert.Contains(t, style.NewTerminalRenderer().RenderError(err), "no project named 'x' found")
	assert.Empty(t, style.NewPlainRenderer().RenderError(nil))
}

func TestParseFormat(t *testing.T) {
	tests := []struct {
		in   string
		want style.Format
	}{
		{"", style.FormatAuto},
		{"auto", style.FormatAuto},
		{"term", style.FormatTerminal},
		{"Terminal", style.FormatTerminal},
		{"plain", style.FormatText},
		{"text", style.FormatText},
	}
	for _, tt := range tests {
		got, err := style.ParseFormat(tt.in)
		require.NoError(t, err, tt.in)
		assert.Equal(t, tt.want, got, tt.in)
	}

	_, err := style.ParseFormat("json")
	assert.Error(t, err)
}

func TestDetectFormat_NotATerminal(t *testing.T) {
	f, err := os.CreateTemp(t.TempDir(), "out")
	require.NoError(t, err)
	defer f.Close()

	assert.Equal(t, style.FormatText, style.DetectFormat(f))
	assert.Equal(t, style.FormatText, style.FormatAuto.Resolve(f))
	assert.Equal(t, style.FormatTerminal, style.FormatTerminal.Resolve(f))
}

func TestResolve_NonFileWriter(t *testing.T) {
	var buf bytes.Buffer
	assert.Equal(t, style.FormatText, style.FormatAuto.Resolve(&buf))
	assert.Equal(t, style.FormatTerminal, style.FormatTerminal.Resolve(&buf))
}

func TestDetectFormat_NoColor(t *testing.T) {
	t.Setenv("NO_COLOR", "1")
	assert.Equal(t, style.FormatText, style.DetectFormat(os.Stdout))
}

func TestNewRenderer(t *testing.T) {
	assert.IsType(t, &style.TerminalRenderer{}, style.NewRenderer(style.FormatTerminal))
	assert.IsType(t, &style.PlainRenderer{}, style.NewRenderer(style.FormatText))
}
