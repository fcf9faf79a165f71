package randid

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGenerate(t *testing.T) {
	for _, n := range []int{0, 1, 8, 32} {
		id := Generate(n)
		assert.Len(t, id, n)
		assert.Empty(t, strings.Trim(id, alphabet))
	}
}

func TestNew(t *testing.T) {
	id := New("popzy")
	assert.True(t, strings.HasPrefix(id, "popzy-"))
	assert.Len(t, id, len("popzy-")+DefaultLength)

	assert.Len(t, New(""), DefaultLength)
	assert.NotEqual(t, New("x"), New("x"))
}
