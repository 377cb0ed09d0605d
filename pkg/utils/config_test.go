package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSplitRows(t *testing.T) {
	assert.Equal(t, []string{"A", "B", "C"}, splitRows("A,B,C"))
	assert.Equal(t, []string{"A", "B"}, splitRows(" A , B "))
	assert.Equal(t, []string{"A"}, splitRows("A,,"))
	assert.Empty(t, splitRows(""))
}
