package shared_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/sectorwars/traderoutes/internal/domain/shared"
)

func TestCoordinates_DistanceTo(t *testing.T) {
	origin := shared.NewCoordinates(0, 0, 0)

	assert.Equal(t, 0.0, origin.DistanceTo(origin))
	assert.Equal(t, 5.0, origin.DistanceTo(shared.NewCoordinates(3, 4, 0)))
	// Distance is symmetric
	far := shared.NewCoordinates(-2, 7, 1)
	assert.Equal(t, origin.DistanceTo(far), far.DistanceTo(origin))
}

func TestValidationError_Message(t *testing.T) {
	err := shared.NewValidationError("distance", "must be positive")

	assert.Equal(t, "distance: must be positive", err.Error())
}
