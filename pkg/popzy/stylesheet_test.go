package popzy

import (
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/stretchr/testify/assert"
)

func TestStyleSheet_LaterClassesWin(t *testing.T) {
	sheet := StyleSheet{
		"a": {Foreground: "#111111", Width: 10},
		"b": {Foreground: "#222222"},
	}

	st := sheet.Style("a", "b", "unknown")

	assert.Equal(t, lipgloss.Color("#222222"), st.GetForeground())
	assert.Equal(t, 10, st.GetWidth())
}

func TestStyleSheet_Merge(t *testing.T) {
	base := DefaultStyleSheet()
	merged := base.Merge(StyleSheet{
		ClassContainer: {BorderColor: "#ff0000"},
		"wide":         {Width: 80},
	})

	assert.Equal(t, "#ff0000", merged[ClassContainer].BorderColor)
	assert.Equal(t, "rounded", merged[ClassContainer].Border, "unset properties keep the base value")
	assert.Equal(t, 80, merged["wide"].Width)
	assert.Equal(t, "#7aa2f7", base[ClassContainer].BorderColor, "merge does not mutate the receiver")
}

func TestClassStyle_Padding(t *testing.T) {
	st := StyleSheet{"p": {Padding: []int{1, 2}}}.Style("p")

	assert.Equal(t, 1, st.GetPaddingTop())
	assert.Equal(t, 2, st.GetPaddingLeft())
	assert.Equal(t, 4, st.GetHorizontalPadding())
}

func TestClassStyle_NoBorder(t *testing.T) {
	sheet := DefaultStyleSheet().Merge(StyleSheet{"flat": {Border: "none"}})
	st := sheet.Style(ClassContainer, "flat")

	assert.Equal(t, 0, st.GetBorderTopSize())
	assert.Equal(t, 0, st.GetBorderLeftSize())
}

func TestValidBorder(t *testing.T) {
	assert.True(t, ValidBorder("rounded"))
	assert.True(t, ValidBorder("none"))
	assert.False(t, ValidBorder("wavy"))
}
