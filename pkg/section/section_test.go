// pkg/section/section_test.go
// TEST TYPE: Unit Test
// DEPENDENCIES: None
// PURPOSE: Test block excision, mode composition and idempotent re-application

package section_test

import (
	"testing"

	"github.com/jonas-elhs/metemplate/pkg/errors"
	"github.com/jonas-elhs/metemplate/pkg/section"
	"github.com/jonas-elhs/metemplate/pkg/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSynchronize_Replace(t *testing.T) {
	got, err := section.Synchronize(types.ModeReplace, "anything\nelse\n", "single", "t")
	require.NoError(t, err)
	assert.Equal(t, "single", got, "replace mode ignores existing content and line count")
}

func TestSynchronize_Append(t *testing.T) {
	tests := []struct {
		name     string
		existing string
		rendered string
		want     string
	}{
		{
			name:     "missing_destination",
			existing: "",
			rendered: "START\nnew\nEND\n",
			want:     "START\nnew\nEND\n",
		},
		{
			name:     "unrelated_content_kept_in_front",
			existing: "X\nY\n",
			rendered: "START\nnew\nEND\n",
			want:     "X\nY\nSTART\nnew\nEND\n",
		},
		{
			name:     "old_block_replaced_not_duplicated",
			existing: "X\nSTART\nold\nEND\nY\n",
			rendered: "START\nnew\nEND",
			want:     "X\nY\nSTART\nnew\nEND",
		},
		{
			name:     "existing_without_final_newline",
			existing: "X",
			rendered: "START\nEND\n",
			want:     "X\nSTART\nEND\n",
		},
		{
			name:     "unterminated_old_block_drops_rest",
			existing: "X\nSTART\nold\n",
			rendered: "START\nnew\nEND\n",
			want:     "X\nSTART\nnew\nEND\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := section.Synchronize(types.ModeAppend, tt.existing, tt.rendered, "t")
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestSynchronize_Prepend(t *testing.T) {
	got, err := section.Synchronize(types.ModePrepend, "X\n# begin\nold\n# end\nY\n", "# begin\nnew\n# end\n", "t")
	require.NoError(t, err)
	assert.Equal(t, "# begin\nnew\n# end\nX\nY\n", got)
}

func TestSynchronize_Idempotent(t *testing.T) {
	for _, mode := range []types.TemplateMode{types.ModeAppend, types.ModePrepend} {
		t.Run(mode.String(), func(t *testing.T) {
			rendered := "# >>> managed\nexport A=1\n# <<< managed\n"
			existing := "alias ll='ls -l'\n"

			once, err := section.Synchronize(mode, existing, rendered, "t")
			require.NoError(t, err)

			twice, err := section.Synchronize(mode, once, rendered, "t")
			require.NoError(t, err)
			assert.Equal(t, once, twice)

			changed := "# >>> managed\nexport A=2\n# <<< managed\n"
			swapped, err := section.Synchronize(mode, twice, changed, "t")
			require.NoError(t, err)
			assert.Contains(t, swapped, "alias ll='ls -l'\n")
			assert.Contains(t, swapped, "export A=2")
			assert.NotContains(t, swapped, "export A=1")
		})
	}
}

func TestSynchronize_IdempotentWithoutTrailingNewline(t *testing.T) {
	for _, mode := range []types.TemplateMode{types.ModeAppend, types.ModePrepend} {
		t.Run(mode.String(), func(t *testing.T) {
			rendered := "START\nnew\nEND"

			once, err := section.Synchronize(mode, "X\nY\n", rendered, "t")
			require.NoError(t, err)
			assert.Contains(t, once, "X\n")
			assert.Contains(t, once, "Y\n")

			twice, err := section.Synchronize(mode, once, rendered, "t")
			require.NoError(t, err)
			assert.Equal(t, once, twice)
		})
	}

	got, err := section.Synchronize(types.ModePrepend, "X\nY\n", "START\nnew\nEND", "t")
	require.NoError(t, err)
	assert.Equal(t, "START\nnew\nEND\nX\nY\n", got)

	got, err = section.Synchronize(types.ModePrepend, "", "START\nnew\nEND", "t")
	require.NoError(t, err)
	assert.Equal(t, "START\nnew\nEND", got)
}

func TestSynchronize_Preconditions(t *testing.T) {
	tests := []struct {
		name     string
		rendered string
		wantMsg  string
	}{
		{"empty", "", "[RENDER] template cannot be empty: git"},
		{"one_line", "only\n", "[RENDER] template has only one line: git"},
		{"one_line_without_newline", "only", "[RENDER] template has only one line: git"},
	}

	for _, tt := range tests {
		for _, mode := range []types.TemplateMode{types.ModeAppend, types.ModePrepend} {
			t.Run(tt.name+"_"+mode.String(), func(t *testing.T) {
				_, err := section.Synchronize(mode, "existing\n", tt.rendered, "git")
				require.Error(t, err)
				assert.True(t, errors.IsErrorCode(err, errors.ErrRender))
				assert.Equal(t, tt.wantMsg, err.Error())
			})
		}
	}
}

func TestSynchronize_UnknownMode(t *testing.T) {
	_, err := section.Synchronize(types.TemplateMode(42), "", "a\nb\n", "t")
	assert.True(t, errors.IsErrorCode(err, errors.ErrInternal))
}

func TestBounds(t *testing.T) {
	first, last, err := section.Bounds("a\r\nb\r\nc\r\n", "t")
	require.NoError(t, err)
	assert.Equal(t, "a", first)
	assert.Equal(t, "c", last)
}
