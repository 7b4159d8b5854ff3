package tui

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPorts_Validate(t *testing.T) {
	t.Run("nil explore service returns error", func(t *testing.T) {
		ports := &Ports{}

		err := ports.Validate()

		assert.ErrorIs(t, err, ErrMissingExploreService)
	})

	t.Run("explore only is valid", func(t *testing.T) {
		ports := &Ports{Explore: &MockExploreService{}}

		assert.NoError(t, ports.Validate())
	})

	t.Run("all ports is valid", func(t *testing.T) {
		ports := &Ports{
			Explore: &MockExploreService{},
			Apod:    &MockApodService{},
		}

		assert.NoError(t, ports.Validate())
	})
}
