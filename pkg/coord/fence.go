package coord

// InChina reports whether c lies inside the rough bounding box of mainland
// China (N 3.86~53.55, E 73.66~135.05). Points on the boundary are outside.
// GCJ02 obfuscation is only applied to points inside the box.
func InChina(c Coordinate) bool {
	return c.Lng > 73.66 && c.Lng < 135.05 && c.Lat > 3.86 && c.Lat < 53.55
}
