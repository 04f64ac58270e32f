package components

import (
	"github.com/spaghettifunk/geogen/engine/math"
)

// Clamp to avoid looking straight down, where yaw stops having a visible effect.
var pitchLimit = math.DegToRad(89)

const (
	DefaultPitch float32 = 0.45
	DefaultYaw   float32 = 0.6
)

/**
 * @brief An orthographic camera orbiting the origin. The view matrix turns
 * the scene by Yaw around the y axis and then tilts it by Pitch around the
 * x axis, so a positive pitch looks down on the shapes.
 */
type Camera struct {
	/**
	 * @brief The rotation of this camera using Euler angles (pitch, yaw, roll).
	 * Roll is ignored. Use SetEulerRotation so the view matrix is rebuilt.
	 */
	EulerRotation math.Vec3
	/** @brief Internal flag used to determine when the view matrix needs to be rebuilt. */
	IsDirty bool
	/** @brief The cached view matrix. Read it through GetView. */
	ViewMatrix math.Mat4
}

func NewCamera() *Camera {
	camera := &Camera{}
	camera.Reset()
	return camera
}

// Reset points the camera at the default three-quarter view.
func (c *Camera) Reset() {
	c.EulerRotation = math.NewVec3(DefaultPitch, DefaultYaw, 0)
	c.IsDirty = true
	c.ViewMatrix = math.NewMat4Identity()
}

func (c *Camera) GetEulerRotation() math.Vec3 {
	return c.EulerRotation
}

func (c *Camera) SetEulerRotation(rotation math.Vec3) {
	c.EulerRotation = rotation
	c.EulerRotation.X = math.Clamp(c.EulerRotation.X, -pitchLimit, pitchLimit)
	c.IsDirty = true
}

func (c *Camera) GetView() math.Mat4 {
	if c.IsDirty {
		c.ViewMatrix = math.NewMat4EulerXY(c.EulerRotation.X, c.EulerRotation.Y)
		c.IsDirty = false
	}
	return c.ViewMatrix
}

func (c *Camera) Yaw(amount float32) {
	c.EulerRotation.Y += amount
	c.IsDirty = true
}

func (c *Camera) Pitch(amount float32) {
	c.EulerRotation.X += amount
	c.EulerRotation.X = math.Clamp(c.EulerRotation.X, -pitchLimit, pitchLimit)
	c.IsDirty = true
}
