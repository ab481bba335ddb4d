// Package collision computes how far two overlapping hitboxes interpenetrate
// and resolves the overlap, either by moving the pushed object out (hard) or by
// accelerating it away (soft).
package collision

import (
	"errors"
	"log"
	"math"

	"github.com/automoto/tundra/shared/gamemath"
	"github.com/automoto/tundra/shared/hitbox"
)

// ErrRectangleRectangle is returned for rectangle-rectangle pushes, which have no
// resolution.
var ErrRectangleRectangle = errors.New("collision: rectangle-rectangle push is not supported")

// PushInfo describes the push applied to the pushed hitbox: the world-space
// direction to move it and how far the shapes interpenetrate.
type PushInfo struct {
	Direction float64
	AmountIn  float64
}

// Vector returns the push as a displacement of length AmountIn.
func (p PushInfo) Vector() gamemath.Vec {
	return gamemath.FromPolar(p.AmountIn, p.Direction)
}

// GetPushInfo returns the push that separates pushed from pushing.
func GetPushInfo(pushed, pushing *hitbox.Hitbox) (PushInfo, error) {
	switch {
	case pushed.Kind == hitbox.Circular && pushing.Kind == hitbox.Circular:
		return circleCirclePush(pushed, pushing), nil
	case pushed.Kind == hitbox.Circular && pushing.Kind == hitbox.Rectangular:
		return CircleRectanglePush(pushed.Position, pushed.Radius, pushing.Position, pushing.Width, pushing.Height, pushing.Rotation), nil
	case pushed.Kind == hitbox.Rectangular && pushing.Kind == hitbox.Circular:
		info := CircleRectanglePush(pushing.Position, pushing.Radius, pushed.Position, pushed.Width, pushed.Height, pushed.Rotation)
		info.Direction += math.Pi
		return info, nil
	default:
		return PushInfo{}, ErrRectangleRectangle
	}
}

func circleCirclePush(pushed, pushing *hitbox.Hitbox) PushInfo {
	offset := pushed.Position.Sub(pushing.Position)
	return PushInfo{
		Direction: offset.Angle(),
		AmountIn:  pushed.Radius + pushing.Radius - offset.Length(),
	}
}

// CircleRectanglePush computes the push on a circle from a rectangle. The
// circle centre is moved into the rectangle's unrotated frame and classified
// against the top/bottom faces, the left/right faces, then the corners.
//
// A corner that cannot be resolved logs a warning and yields a zero push.
func CircleRectanglePush(circlePos gamemath.Vec, radius float64, rectPos gamemath.Vec, width, height, rotation float64) PushInfo {
	local := circlePos.Sub(rectPos).Rotate(-rotation)
	halfW, halfH := width/2, height/2
	absX, absY := math.Abs(local.X), math.Abs(local.Y)

	var localDir, amountIn float64
	switch {
	case absX <= halfW:
		localDir = faceDirection(local.Y, math.Pi/2)
		amountIn = radius + halfH - absY
	case absY <= halfH:
		localDir = faceDirection(local.X, 0)
		amountIn = radius + halfW - absX
	default:
		offX, offY := absX-halfW, absY-halfH
		if offX >= offY {
			localDir = faceDirection(local.X, 0)
			amountIn = math.Sqrt(radius*radius-offY*offY) - offX
		} else {
			localDir = faceDirection(local.Y, math.Pi/2)
			amountIn = math.Sqrt(radius*radius-offX*offX) - offY
		}
		if math.IsNaN(amountIn) {
			log.Printf("[collision] warning: unresolvable circle-rectangle corner (local %.2f, %.2f, radius %.2f)", local.X, local.Y, radius)
			return PushInfo{}
		}
	}

	return PushInfo{
		Direction: localDir + rotation,
		AmountIn:  amountIn,
	}
}

// faceDirection returns positive for a non-negative coordinate and the
// opposite direction otherwise.
func faceDirection(coord, positive float64) float64 {
	if coord >= 0 {
		return positive
	}
	return positive + math.Pi
}
