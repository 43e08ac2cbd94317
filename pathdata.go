package shape

import (
	"fmt"

	"github.com/tdewolff/parse/v2/strconv"
)

func skipCommaWhitespace(b []byte) int {
	i := 0
	for i < len(b) && (b[i] == ' ' || b[i] == ',' || b[i] == '\n' || b[i] == '\r' || b[i] == '\t') {
		i++
	}
	return i
}

// pathDataArgs is the number of arguments taken by each path data command.
var pathDataArgs = map[byte]int{
	'M': 2,
	'L': 2,
	'H': 1,
	'V': 1,
	'C': 6,
	'S': 4,
	'Q': 4,
	'T': 2,
	'Z': 0,
}

// ParsePathData parses SVG path data such as "M0,0 L10,0 L10,10 Z" into a
// path. Absolute and relative forms of M, L, H, V, C, S, Q, T and Z are
// supported. Elliptical arcs are not.
func ParsePathData(s string) (BezPath, error) {
	b := []byte(s)
	i := skipCommaWhitespace(b)
	if i == len(b) {
		return nil, nil
	}
	if b[i] < 'A' {
		return nil, fmt.Errorf("shape: bad path data: must start with a command")
	}

	var (
		p       BezPath
		args    [6]float64
		cur     Point // current pen position
		start   Point // start of the current subpath
		ctrl    Point // last control point, for S and T
		prevCmd byte
		cmd     byte
		haveCmd bool
	)
	for {
		i += skipCommaWhitespace(b[i:])
		if i >= len(b) {
			break
		}
		c := b[i]
		if (c >= 'A' && c <= 'Z') || (c >= 'a' && c <= 'z') {
			cmd = c
			haveCmd = true
			i++
			i += skipCommaWhitespace(b[i:])
		} else if !haveCmd || cmd == 'Z' || cmd == 'z' {
			return nil, fmt.Errorf("shape: bad path data: unexpected %q at position %d", c, i+1)
		}

		upper := cmd
		if upper >= 'a' {
			upper -= 'a' - 'A'
		}
		n, ok := pathDataArgs[upper]
		if !ok {
			return nil, fmt.Errorf("shape: bad path data: unsupported command %q at position %d", cmd, i)
		}
		for j := range n {
			num, k := strconv.ParseFloat(b[i:])
			if k == 0 {
				return nil, fmt.Errorf("shape: bad path data: command %q needs %d numbers at position %d", cmd, n, i+1)
			}
			args[j] = num
			i += k
			i += skipCommaWhitespace(b[i:])
		}

		rel := cmd != upper
		abs := func(x, y float64) Point {
			if rel {
				return Pt(cur.X+x, cur.Y+y)
			}
			return Pt(x, y)
		}
		switch upper {
		case 'M':
			cur = abs(args[0], args[1])
			start = cur
			p.MoveTo(cur)
			// Further coordinate pairs after a moveto are implicit linetos.
			if rel {
				cmd = 'l'
			} else {
				cmd = 'L'
			}
		case 'L':
			cur = abs(args[0], args[1])
			p.LineTo(cur)
		case 'H':
			if rel {
				cur.X += args[0]
			} else {
				cur.X = args[0]
			}
			p.LineTo(cur)
		case 'V':
			if rel {
				cur.Y += args[0]
			} else {
				cur.Y = args[0]
			}
			p.LineTo(cur)
		case 'C':
			c1 := abs(args[0], args[1])
			c2 := abs(args[2], args[3])
			end := abs(args[4], args[5])
			p.CubicTo(c1, c2, end)
			ctrl, cur = c2, end
		case 'S':
			c1 := cur
			if prevCmd == 'C' || prevCmd == 'S' {
				c1 = cur.Translate(cur.Sub(ctrl))
			}
			c2 := abs(args[0], args[1])
			end := abs(args[2], args[3])
			p.CubicTo(c1, c2, end)
			ctrl, cur = c2, end
		case 'Q':
			c1 := abs(args[0], args[1])
			end := abs(args[2], args[3])
			p.QuadTo(c1, end)
			ctrl, cur = c1, end
		case 'T':
			c1 := cur
			if prevCmd == 'Q' || prevCmd == 'T' {
				c1 = cur.Translate(cur.Sub(ctrl))
			}
			end := abs(args[0], args[1])
			p.QuadTo(c1, end)
			ctrl, cur = c1, end
		case 'Z':
			p.ClosePath()
			cur = start
		}
		prevCmd = upper
	}
	return p, nil
}

// MustParsePathData is like [ParsePathData] but panics on error.
func MustParsePathData(s string) BezPath {
	p, err := ParsePathData(s)
	if err != nil {
		panic(err)
	}
	return p
}
