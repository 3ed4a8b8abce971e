package ui

import (
	"snake-arcade/game/types"

	rl "github.com/gen2brain/raylib-go/raylib"
)

type keyBinding struct {
	key int32
	cmd types.Command
}

// keyBindings is scanned in order every frame. Arrows and WASD steer,
// P/Enter/Space pause, R restarts.
var keyBindings = []keyBinding{
	{rl.KeyUp, types.CmdUp},
	{rl.KeyW, types.CmdUp},
	{rl.KeyDown, types.CmdDown},
	{rl.KeyS, types.CmdDown},
	{rl.KeyLeft, types.CmdLeft},
	{rl.KeyA, types.CmdLeft},
	{rl.KeyRight, types.CmdRight},
	{rl.KeyD, types.CmdRight},
	{rl.KeyP, types.CmdTogglePause},
	{rl.KeyEnter, types.CmdTogglePause},
	{rl.KeySpace, types.CmdTogglePause},
	{rl.KeyR, types.CmdRestart},
}

// PollCommands returns the commands whose keys went down this frame
func PollCommands() []types.Command {
	var cmds []types.Command
	for _, b := range keyBindings {
		if rl.IsKeyPressed(b.key) {
			cmds = append(cmds, b.cmd)
		}
	}
	return cmds
}
