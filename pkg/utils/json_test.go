package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPrettyJson(t *testing.T) {
	payload := struct {
		Name   string   `json:"name"`
		Labels []string `json:"labels"`
	}{
		Name:   "PMax - Shoes",
		Labels: []string{"a"},
	}

	var out string
	assert.NotPanics(t, func() { out = PrettyJson(payload) })
	assert.Contains(t, out, "\n  \"name\": \"PMax - Shoes\"")
	assert.Contains(t, out, "\n    \"a\"")
	assert.NotContains(t, out, "\t")
}

func TestPrettyJson_Unsupported(t *testing.T) {
	assert.Equal(t, "", PrettyJson(make(chan int)))
}
