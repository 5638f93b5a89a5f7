// Package coord converts coordinates between WGS84, GCJ02 and BD09 and
// parses or formats human-written coordinate strings.
//
// All functions are pure and safe for concurrent use.
package coord

import (
	"fmt"
	"strings"

	"github.com/suyu0925/coordx/pkg/common"
)

// Coordinate is a longitude/latitude pair in decimal degrees. Values are not
// range checked.
type Coordinate struct {
	Lng float64 `json:"lng"`
	Lat float64 `json:"lat"`
}

// Point returns the raw pair.
func (c Coordinate) Point() Coordinate { return c }

// System identifies a coordinate reference system.
type System int

const (
	WGS84 System = iota + 1
	GCJ02
	BD09
)

// ErrUnknownSystem is matched by errors returned for an invalid System.
var ErrUnknownSystem = common.ErrValidation

func (s System) String() string {
	switch s {
	case WGS84:
		return "WGS84"
	case GCJ02:
		return "GCJ02"
	case BD09:
		return "BD09"
	default:
		return fmt.Sprintf("System(%d)", int(s))
	}
}

// Valid reports whether s is one of the three known systems.
func (s System) Valid() bool {
	return s >= WGS84 && s <= BD09
}

// ParseSystem maps names such as "wgs84", "GCJ-02" or "bd_09" to a System.
func ParseSystem(name string) (System, error) {
	n := strings.ToUpper(strings.TrimSpace(name))
	n = strings.NewReplacer("-", "", "_", "").Replace(n)
	switch n {
	case "WGS84":
		return WGS84, nil
	case "GCJ02":
		return GCJ02, nil
	case "BD09":
		return BD09, nil
	}
	return 0, unknownSystem(name)
}

func unknownSystem(v interface{}) *common.AppError {
	return common.NewValidationError(fmt.Sprintf("unknown coordinate system %v", v), nil).
		WithField("system", fmt.Sprint(v))
}

// Typed is a coordinate tagged with the system that produced it. It is
// implemented only by WGS84Coordinate, GCJ02Coordinate and BD09Coordinate.
type Typed interface {
	System() System
	Point() Coordinate
	typed()
}

// WGS84Coordinate is a coordinate in the global GPS datum.
type WGS84Coordinate struct{ Coordinate }

// GCJ02Coordinate is a coordinate in China's obfuscated datum.
type GCJ02Coordinate struct{ Coordinate }

// BD09Coordinate is a coordinate in Baidu's datum.
type BD09Coordinate struct{ Coordinate }

func NewWGS84(lng, lat float64) WGS84Coordinate {
	return WGS84Coordinate{Coordinate{Lng: lng, Lat: lat}}
}

func NewGCJ02(lng, lat float64) GCJ02Coordinate {
	return GCJ02Coordinate{Coordinate{Lng: lng, Lat: lat}}
}

func NewBD09(lng, lat float64) BD09Coordinate {
	return BD09Coordinate{Coordinate{Lng: lng, Lat: lat}}
}

func (WGS84Coordinate) System() System { return WGS84 }
func (GCJ02Coordinate) System() System { return GCJ02 }
func (BD09Coordinate) System() System  { return BD09 }

func (WGS84Coordinate) typed() {}
func (GCJ02Coordinate) typed() {}
func (BD09Coordinate) typed()  {}

// NewTyped tags c with a system chosen at runtime.
func NewTyped(s System, c Coordinate) (Typed, error) {
	switch s {
	case WGS84:
		return WGS84Coordinate{c}, nil
	case GCJ02:
		return GCJ02Coordinate{c}, nil
	case BD09:
		return BD09Coordinate{c}, nil
	}
	return nil, unknownSystem(s)
}
