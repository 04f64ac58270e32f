package components

import (
	"testing"

	"github.com/spaghettifunk/geogen/engine/math"
	"github.com/stretchr/testify/assert"
)

func TestCameraDefaultView(t *testing.T) {
	c := NewCamera()
	assert.Equal(t, math.NewMat4EulerXY(DefaultPitch, DefaultYaw), c.GetView())
	assert.False(t, c.IsDirty)
}

func TestCameraPitchIsClamped(t *testing.T) {
	c := NewCamera()
	c.Pitch(10)
	assert.InDelta(t, pitchLimit, c.GetEulerRotation().X, 1e-6)
	c.SetEulerRotation(math.NewVec3(-10, 0, 0))
	assert.InDelta(t, -pitchLimit, c.GetEulerRotation().X, 1e-6)
}

func TestCameraViewFollowsRotation(t *testing.T) {
	c := NewCamera()
	c.SetEulerRotation(math.NewVec3Zero())
	c.Yaw(math.K_PI / 2)

	// A quarter turn about y moves +x onto the z axis.
	v := math.NewVec3(1, 0, 0).TransformDirection(c.GetView())
	assert.InDelta(t, 0, v.X, 1e-5)
	assert.InDelta(t, 0, v.Y, 1e-5)
	assert.InDelta(t, 1, math.Abs(v.Z), 1e-5)
}
