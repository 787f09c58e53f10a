package shed

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCanTransition(t *testing.T) {
	allowed := map[[2]Status]bool{
		{StatusInactive, StatusCleaning}:            true,
		{StatusCleaning, StatusReadyToProduction}:   true,
		{StatusReadyToProduction, StatusProduction}: true,
		{StatusProduction, StatusInactive}:          true,
	}
	all := []Status{StatusInactive, StatusCleaning, StatusReadyToProduction, StatusProduction}
	for _, from := range all {
		for _, to := range all {
			assert.Equal(t, allowed[[2]Status{from, to}], CanTransition(from, to), "%s -> %s", from, to)
		}
	}
	assert.False(t, CanTransition(Status("broken"), StatusCleaning))
}
