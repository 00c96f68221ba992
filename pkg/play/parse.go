package play

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/IlikeChooros/go-hypercube/pkg/hypercube"
)

// Parse a position written as "x y z" or "x,y,z", one coordinate per axis
func ParsePosition(text string, shape hypercube.Shape) (hypercube.Position, error) {
	fields := strings.FieldsFunc(text, func(r rune) bool {
		return r == ',' || r == ' ' || r == '\t'
	})

	pos := make(hypercube.Position, len(fields))
	for i, field := range fields {
		v, err := strconv.Atoi(field)
		if err != nil {
			return nil, fmt.Errorf("%w: %q is not a number", hypercube.ErrInvalidPosition, field)
		}
		pos[i] = v
	}

	if err := shape.Validate(pos); err != nil {
		return nil, err
	}
	return pos, nil
}
