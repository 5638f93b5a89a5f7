package coord

import (
	"fmt"
	"math"
	"regexp"
	"strconv"
	"strings"

	"github.com/suyu0925/coordx/pkg/common"
)

// Notation is a textual coordinate notation understood by Parse.
type Notation int

const (
	// GeoCaching: N 31° 12.922 E 121° 32.473
	GeoCaching Notation = iota + 1
	// DMS, degrees minutes seconds: 31°12'55.3"N 121°32'28.4"E
	DMS
	// DDM, degrees and decimal minutes: 31 12.922, 121 32.473
	DDM
	// DD, decimal degrees: 31.215367,121.541217
	DD
	// DDDL, decimal degrees with direction letters: 39.9042° N 116.4074° E
	DDDL
)

func (n Notation) String() string {
	switch n {
	case GeoCaching:
		return "GeoCaching"
	case DMS:
		return "DMS"
	case DDM:
		return "DDM"
	case DD:
		return "DD"
	case DDDL:
		return "DDDL"
	default:
		return fmt.Sprintf("Notation(%d)", int(n))
	}
}

// ErrInvalidFormat is matched by every error returned from Parse.
var ErrInvalidFormat = common.ErrInvalidFormat

// Patterns are tried in order; the first one found anywhere in the input wins.
var notations = []struct {
	notation Notation
	pattern  *regexp.Regexp
}{
	{GeoCaching, compile(`([NS])\s*(\d+)[°\s]+\s*([\d.]+)[′']?\s*([EW])\s*(\d+)[°\s]+\s*([\d.]+)[′']?`)},
	{DMS, compile(`(\d+)[°\s]+(\d+)[′']([\d.]+)["”]([NS])\s+(\d+)[°\s]+(\d+)[′']([\d.]+)["”]([EW])`)},
	{DDM, compile(`(\d+)[\s°]+([\d.]+)[′']?,\s*(\d+)[\s°]+([\d.]+)[′']?`)},
	{DD, compile(`([\d.-]+),\s*([\d.-]+)`)},
	{DDDL, compile(`([\d.-]+)[°\s]+([NS])\s+([\d.-]+)[°\s]+([EW])`)},
}

// space is the set \s stands for in pasted map text: ASCII whitespace plus
// vertical tab, Unicode space separators, line/paragraph separators and BOM.
const space = `\s\v\p{Zs}\x{2028}\x{2029}\x{FEFF}`

// compile widens every \s in expr to space, inside and outside brackets.
func compile(expr string) *regexp.Regexp {
	var b strings.Builder
	inClass := false
	for i := 0; i < len(expr); i++ {
		switch {
		case expr[i] == '\\' && i+1 < len(expr) && expr[i+1] == 's':
			if inClass {
				b.WriteString(space)
			} else {
				b.WriteString("[" + space + "]")
			}
			i++
		case expr[i] == '\\' && i+1 < len(expr):
			b.WriteByte(expr[i])
			b.WriteByte(expr[i+1])
			i++
		default:
			switch expr[i] {
			case '[':
				inClass = true
			case ']':
				inClass = false
			}
			b.WriteByte(expr[i])
		}
	}
	return regexp.MustCompile(b.String())
}

// Parse reads a coordinate written in any supported Notation.
func Parse(text string) (Coordinate, error) {
	c, _, err := ParseNotation(text)
	return c, err
}

// ParseNotation is like Parse and also reports which notation matched.
func ParseNotation(text string) (Coordinate, Notation, error) {
	for _, n := range notations {
		m := n.pattern.FindStringSubmatch(text)
		if m == nil {
			continue
		}
		c, err := extract(n.notation, m)
		if err != nil {
			return Coordinate{}, n.notation, invalidFormat(text, err).WithField("notation", n.notation.String())
		}
		return c, n.notation, nil
	}
	return Coordinate{}, 0, invalidFormat(text, nil)
}

func invalidFormat(text string, cause error) *common.AppError {
	return common.NewInvalidFormatError(fmt.Sprintf("invalid coordinate format %q", text), cause).
		WithField("input", text)
}

// extract turns the submatches of notation n into a coordinate. The first
// pair of values is always the latitude.
func extract(n Notation, m []string) (Coordinate, error) {
	g := groups{m: m}
	var lat, lng float64
	switch n {
	case GeoCaching:
		lat = hemisphere(g.float(2)+g.float(3)/60, m[1])
		lng = hemisphere(g.float(5)+g.float(6)/60, m[4])
	case DMS:
		lat = hemisphere(g.float(1)+g.float(2)/60+g.float(3)/3600, m[4])
		lng = hemisphere(g.float(5)+g.float(6)/60+g.float(7)/3600, m[8])
	case DDM:
		lat = g.float(1) + g.float(2)/60
		lng = g.float(3) + g.float(4)/60
	case DD:
		lat = g.float(1)
		lng = g.float(2)
	case DDDL:
		lat = hemisphere(g.float(1), m[2])
		lng = hemisphere(g.float(3), m[4])
	default:
		return Coordinate{}, common.NewAppError(common.ErrorTypeInvalidFormat, "UNSUPPORTED_NOTATION",
			fmt.Sprintf("unsupported notation %s", n), nil)
	}
	return Coordinate{Lng: lng, Lat: lat}, nil
}

// hemisphere negates v for the southern and western hemispheres.
func hemisphere(v float64, letter string) float64 {
	if letter == "S" || letter == "W" {
		return -v
	}
	return v
}

// groups parses submatches as floats.
type groups struct {
	m []string
}

func (g groups) float(i int) float64 {
	return parseFloatPrefix(g.m[i])
}

var numberPrefix = regexp.MustCompile(`^[+-]?(?:Infinity|(?:\d+\.?\d*|\.\d+)(?:[eE][+-]?\d+)?)`)

// parseFloatPrefix reads the longest leading decimal number of s, so "1.2.3"
// is 1.2 and "31.2-" is 31.2. Without any leading number it returns NaN.
func parseFloatPrefix(s string) float64 {
	p := numberPrefix.FindString(strings.TrimLeft(s, " \t\n\v\f\r"))
	if p == "" {
		return math.NaN()
	}
	// out of range values parse to ±Inf, which flows through like any other float
	v, _ := strconv.ParseFloat(p, 64)
	return v
}
