package graphics

import (
	"math"

	"github.com/go-gl/mathgl/mgl32"
)

var worldUp = mgl32.Vec3{0, 1, 0}

// maxPitch keeps the view vector away from the vertical axis so the view
// matrix never degenerates.
var maxPitch = mgl32.DegToRad(89)

// Camera is a free-flying perspective camera. Yaw and pitch are radians;
// yaw 0 looks down +X and positive pitch looks up. The combined
// view-projection matrix is cached and recomputed only after a mutation.
type Camera struct {
	position mgl32.Vec3
	yaw      float32
	pitch    float32

	fovDeg float32
	aspect float32
	near   float32
	far    float32

	sensitivity float32
	moveSpeed   float32

	viewProj mgl32.Mat4
	dirty    bool
}

// NewCamera creates a camera at the origin. FOV is in degrees.
func NewCamera(fovDeg, aspect, near, far float32) *Camera {
	return &Camera{
		fovDeg:      fovDeg,
		aspect:      aspect,
		near:        near,
		far:         far,
		sensitivity: 0.002,
		moveSpeed:   5.0,
		dirty:       true,
	}
}

// Position returns the camera position.
func (c *Camera) Position() mgl32.Vec3 {
	return c.position
}

// SetPosition moves the camera to p.
func (c *Camera) SetPosition(p mgl32.Vec3) {
	c.position = p
	c.dirty = true
}

// Yaw returns the yaw angle in radians.
func (c *Camera) Yaw() float32 {
	return c.yaw
}

// Pitch returns the pitch angle in radians.
func (c *Camera) Pitch() float32 {
	return c.pitch
}

// SetSensitivity sets the look sensitivity in radians per pixel.
func (c *Camera) SetSensitivity(s float32) {
	if s > 0 {
		c.sensitivity = s
	}
}

// SetMoveSpeed sets the flying speed in blocks per second.
func (c *Camera) SetMoveSpeed(s float32) {
	if s > 0 {
		c.moveSpeed = s
	}
}

// SetAspect updates the viewport aspect ratio.
func (c *Camera) SetAspect(aspect float32) {
	if aspect > 0 && aspect != c.aspect {
		c.aspect = aspect
		c.dirty = true
	}
}

// SetFOV updates the vertical field of view in degrees.
func (c *Camera) SetFOV(fovDeg float32) {
	if fovDeg > 0 && fovDeg != c.fovDeg {
		c.fovDeg = fovDeg
		c.dirty = true
	}
}

// SetOrientation sets yaw and pitch in radians. Pitch saturates the same
// way Look does.
func (c *Camera) SetOrientation(yaw, pitch float32) {
	if pitch > maxPitch {
		pitch = maxPitch
	}
	if pitch < -maxPitch {
		pitch = -maxPitch
	}
	c.yaw = yaw
	c.pitch = pitch
	c.dirty = true
}

// Forward returns the unit view direction.
func (c *Camera) Forward() mgl32.Vec3 {
	cosPitch := float32(math.Cos(float64(c.pitch)))
	return mgl32.Vec3{
		float32(math.Cos(float64(c.yaw))) * cosPitch,
		float32(math.Sin(float64(c.pitch))),
		float32(math.Sin(float64(c.yaw))) * cosPitch,
	}
}

// Right returns the unit vector to the camera's right on the horizontal
// plane of the view.
func (c *Camera) Right() mgl32.Vec3 {
	return c.Forward().Cross(worldUp).Normalize()
}

// Look applies a mouse movement. Deltas are in pixels with dy positive
// downward, as GLFW reports cursor motion; pitch saturates short of
// straight up and down.
func (c *Camera) Look(dx, dy float32) {
	c.yaw += dx * c.sensitivity
	c.pitch -= dy * c.sensitivity
	if c.pitch > maxPitch {
		c.pitch = maxPitch
	}
	if c.pitch < -maxPitch {
		c.pitch = -maxPitch
	}
	c.dirty = true
}

// Move flies the camera along its view axes: forward along the view
// direction, right on the horizontal plane, up along the world vertical.
// Each argument is an input axis in [-1,1], scaled by the move speed and
// the frame time.
func (c *Camera) Move(forward, right, up, dt float32) {
	if forward == 0 && right == 0 && up == 0 {
		return
	}
	amount := c.moveSpeed * dt
	delta := c.Forward().Mul(forward * amount)
	delta = delta.Add(c.Right().Mul(right * amount))
	delta = delta.Add(worldUp.Mul(up * amount))
	c.position = c.position.Add(delta)
	c.dirty = true
}

// ViewProjection returns the cached projection*view matrix, recomputing it
// if any camera parameter changed since the last call.
func (c *Camera) ViewProjection() mgl32.Mat4 {
	if c.dirty {
		proj := mgl32.Perspective(mgl32.DegToRad(c.fovDeg), c.aspect, c.near, c.far)
		view := mgl32.LookAtV(c.position, c.position.Add(c.Forward()), worldUp)
		c.viewProj = proj.Mul4(view)
		c.dirty = false
	}
	return c.viewProj
}
