package components

import (
	"fmt"

	"github.com/yohamta/donburi"
)

// MustSingleton returns the only instance of a singleton component. A missing
// singleton means the world was never set up and is fatal.
func MustSingleton[T any](w donburi.World, c *donburi.ComponentType[T]) *T {
	e, ok := c.First(w)
	if !ok {
		var zero T
		panic(fmt.Sprintf("missing singleton %T", zero))
	}
	return c.Get(e)
}
