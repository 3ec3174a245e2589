package generate_test

import (
	"testing"

	"github.com/jonas-elhs/metemplate/pkg/generate"
	"github.com/stretchr/testify/assert"
)

func TestSeededChooser_IsDeterministic(t *testing.T) {
	names := []string{"a", "b", "c", "d"}

	first := generate.NewSeededChooser(42)
	second := generate.NewSeededChooser(42)
	for i := 0; i < 20; i++ {
		assert.Equal(t, first.Choose(names), second.Choose(names))
	}
}

func TestRandomChooser_PicksFromNames(t *testing.T) {
	names := []string{"dark", "light"}
	for i := 0; i < 20; i++ {
		assert.Contains(t, names, generate.RandomChooser{}.Choose(names))
	}
}

func TestChooserFunc(t *testing.T) {
	c := generate.ChooserFunc(func(names []string) string { return names[len(names)-1] })
	assert.Equal(t, "z", c.Choose([]string{"a", "z"}))
}
