package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBranch_IsTracking(t *testing.T) {
	tests := []struct {
		name     string
		branch   Branch
		expected bool
	}{
		{"with upstream", Branch{Name: "feature", Upstream: "refs/heads/feature"}, true},
		{"without upstream", Branch{Name: "feature"}, false},
		{"detached", Branch{Tip: "abc123"}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.branch.IsTracking())
		})
	}
}

func TestBranch_IsDetached(t *testing.T) {
	assert.True(t, Branch{Tip: "abc123"}.IsDetached())
	assert.False(t, Branch{Name: "main", Tip: "abc123"}.IsDetached())
}
