package coord

import "math"

// WGS84ToGCJ02 applies the GCJ02 offset. Points outside China are returned
// unchanged.
func WGS84ToGCJ02(c WGS84Coordinate) GCJ02Coordinate {
	if !InChina(c.Coordinate) {
		return GCJ02Coordinate{c.Coordinate}
	}
	dLng, dLat := delta(c.Lng, c.Lat)
	return NewGCJ02(c.Lng+dLng, c.Lat+dLat)
}

// GCJ02ToWGS84 removes the GCJ02 offset by reflecting the forward transform of
// c through c. The offset is computed at the GCJ02 point, so the result is an
// approximation (about 1~2m inside China). Points outside China are returned
// unchanged.
func GCJ02ToWGS84(c GCJ02Coordinate) WGS84Coordinate {
	if !InChina(c.Coordinate) {
		return WGS84Coordinate{c.Coordinate}
	}
	dLng, dLat := delta(c.Lng, c.Lat)
	mgLng, mgLat := c.Lng+dLng, c.Lat+dLat
	return NewWGS84(c.Lng*2-mgLng, c.Lat*2-mgLat)
}

// GCJ02ToBD09 applies Baidu's polar offset. It is applied everywhere, not only
// inside China.
func GCJ02ToBD09(c GCJ02Coordinate) BD09Coordinate {
	lng, lat := c.Lng, c.Lat
	z := math.Sqrt(lng*lng+lat*lat) + 0.00002*math.Sin(lat*xPi)
	theta := math.Atan2(lat, lng) + 0.000003*math.Cos(lng*xPi)
	return NewBD09(z*math.Cos(theta)+0.0065, z*math.Sin(theta)+0.006)
}

// BD09ToGCJ02 is the inverse of GCJ02ToBD09.
func BD09ToGCJ02(c BD09Coordinate) GCJ02Coordinate {
	x := c.Lng - 0.0065
	y := c.Lat - 0.006
	z := math.Sqrt(x*x+y*y) - 0.00002*math.Sin(y*xPi)
	theta := math.Atan2(y, x) - 0.000003*math.Cos(x*xPi)
	return NewGCJ02(z*math.Cos(theta), z*math.Sin(theta))
}

// WGS84ToBD09 converts through GCJ02.
func WGS84ToBD09(c WGS84Coordinate) BD09Coordinate {
	return GCJ02ToBD09(WGS84ToGCJ02(c))
}

// BD09ToWGS84 converts through GCJ02.
func BD09ToWGS84(c BD09Coordinate) WGS84Coordinate {
	return GCJ02ToWGS84(BD09ToGCJ02(c))
}

// Convert converts c into the system to. Converting into the source system
// returns c as is.
func Convert(c Typed, to System) (Typed, error) {
	if !to.Valid() {
		return nil, unknownSystem(to)
	}
	switch v := c.(type) {
	case WGS84Coordinate:
		switch to {
		case GCJ02:
			return WGS84ToGCJ02(v), nil
		case BD09:
			return WGS84ToBD09(v), nil
		}
	case GCJ02Coordinate:
		switch to {
		case WGS84:
			return GCJ02ToWGS84(v), nil
		case BD09:
			return GCJ02ToBD09(v), nil
		}
	case BD09Coordinate:
		switch to {
		case WGS84:
			return BD09ToWGS84(v), nil
		case GCJ02:
			return BD09ToGCJ02(v), nil
		}
	default:
		return nil, unknownSystem(c)
	}
	return c, nil
}
