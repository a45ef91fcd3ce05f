package game

import "github.com/go-gl/glfw/v3.3/glfw"

// Intent is the driving input sampled once per frame from held keys.
type Intent struct {
	Accelerate bool
	Brake      bool
	Left       bool
	Right      bool
}

type Input struct {
	prevKeys map[glfw.Key]bool
}

func NewInput() *Input {
	return &Input{
		prevKeys: make(map[glfw.Key]bool),
	}
}

func (in *Input) JustPressed(window *glfw.Window, key glfw.Key) bool {
	down := window.GetKey(key) == glfw.Press
	jp := down && !in.prevKeys[key]
	in.prevKeys[key] = down
	return jp
}

func keyHeld(window *glfw.Window, keys ...glfw.Key) bool {
	for _, k := range keys {
		if window.GetKey(k) == glfw.Press {
			return true
		}
	}
	return false
}

// ReadIntent samples the held driving keys. Arrows and WASD both work.
func ReadIntent(window *glfw.Window) Intent {
	return Intent{
		Accelerate: keyHeld(window, glfw.KeyUp, glfw.KeyW),
		Brake:      keyHeld(window, glfw.KeyDown, glfw.KeyS),
		Left:       keyHeld(window, glfw.KeyLeft, glfw.KeyA),
		Right:      keyHeld(window, glfw.KeyRight, glfw.KeyD),
	}
}
