package scene

import (
	"fmt"

	"github.com/lucasb-eyer/go-colorful"

	"tween/property"
)

// currentValue reads a sprite property once, to learn its type before the
// binding proper is made.
func currentValue(sp *Sprite, name string) (any, error) {
	acc, err := property.Resolve(sp, name)
	if err != nil {
		return nil, err
	}
	return acc.Get(sp)
}

// coerce converts a YAML destination value to the property's type. YAML
// decodes numbers as int or float64 and colors arrive as hex strings, so the
// raw node rarely matches the bound property exactly.
func coerce(to, cur any) (any, error) {
	switch cur.(type) {
	case float64:
		switch v := to.(type) {
		case float64:
			return v, nil
		case int:
			return float64(v), nil
		}
	case int:
		switch v := to.(type) {
		case int:
			return v, nil
		case float64:
			return int(v), nil
		}
	case string:
		if v, ok := to.(string); ok {
			return v, nil
		}
	case colorful.Color:
		if v, ok := to.(string); ok {
			c, err := colorful.Hex(v)
			if err != nil {
				return nil, err
			}
			return c, nil
		}
	}
	return nil, fmt.Errorf("scene: cannot use %T destination for %T property", to, cur)
}
