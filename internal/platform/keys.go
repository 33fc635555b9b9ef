package platform

import (
	"github.com/go-gl/glfw/v3.3/glfw"

	studio "github.com/gekko3d/studio"
)

var glfwKeyNames = map[glfw.Key]string{
	glfw.KeySpace:     studio.KeySpace,
	glfw.KeyEnter:     studio.KeyEnter,
	glfw.KeyKPEnter:   studio.KeyEnter,
	glfw.KeyEscape:    studio.KeyEscape,
	glfw.KeyTab:       studio.KeyTab,
	glfw.KeyBackspace: studio.KeyBackspace,
	glfw.KeyDelete:    studio.KeyDelete,
	glfw.KeyRight:     studio.KeyRight,
	glfw.KeyLeft:      studio.KeyLeft,
	glfw.KeyDown:      studio.KeyDown,
	glfw.KeyUp:        studio.KeyUp,
	glfw.KeyMinus:     "-",
	glfw.KeyEqual:     "=",
}

func init() {
	for k := glfw.KeyA; k <= glfw.KeyZ; k++ {
		glfwKeyNames[k] = string(rune('a' + int(k-glfw.KeyA)))
	}
	for k := glfw.Key0; k <= glfw.Key9; k++ {
		glfwKeyNames[k] = string(rune('0' + int(k-glfw.Key0)))
	}
}

// keyName maps a GLFW key to the name shortcuts see. Modifier keys on their
// own have no name.
func keyName(key glfw.Key) (string, bool) {
	name, ok := glfwKeyNames[key]
	return name, ok
}
