package game

import (
	"github.com/hajimehoshi/ebiten/v2"
)

// inputState is the set of movement keys held during one tick.
type inputState struct {
	forward, back       bool
	turnLeft, turnRight bool
	strafeLeft          bool
	strafeRight         bool
}

// readInput samples the movement keys.
func readInput() inputState {
	return inputState{
		forward:     ebiten.IsKeyPressed(ebiten.KeyW) || ebiten.IsKeyPressed(ebiten.KeyUp),
		back:        ebiten.IsKeyPressed(ebiten.KeyS) || ebiten.IsKeyPressed(ebiten.KeyDown),
		turnLeft:    ebiten.IsKeyPressed(ebiten.KeyA) || ebiten.IsKeyPressed(ebiten.KeyLeft),
		turnRight:   ebiten.IsKeyPressed(ebiten.KeyD) || ebiten.IsKeyPressed(ebiten.KeyRight),
		strafeLeft:  ebiten.IsKeyPressed(ebiten.KeyQ),
		strafeRight: ebiten.IsKeyPressed(ebiten.KeyE),
	}
}

// applyInput moves the camera for one tick. Screen y grows downward, so a
// left turn decreases the angle.
func (g *Game) applyInput(in inputState) {
	move := g.config.GetMoveSpeed()
	rot := g.config.GetRotSpeed()

	if in.turnLeft {
		g.camera.Rotate(-rot)
	}
	if in.turnRight {
		g.camera.Rotate(rot)
	}
	if in.forward {
		g.camera.MoveForward(move)
	}
	if in.back {
		g.camera.MoveForward(-move)
	}
	if in.strafeLeft {
		g.camera.Strafe(-move)
	}
	if in.strafeRight {
		g.camera.Strafe(move)
	}
}
