// Package mathutil holds small numeric helpers shared by plugins.
package mathutil

import "math"

// RoundToClosest returns whichever of values lies closest to original. The
// earliest candidate wins a tie. With no candidates it returns 0.
//
// Typical use is snapping a yaw in degrees to a cardinal direction:
// RoundToClosest(yaw, 0, 90, 180, 270, 360).
func RoundToClosest(original int, values ...int) int {
	closest := math.MaxInt
	value := 0
	for _, v := range values {
		if r := abs(v - original); r < closest {
			value = v
			closest = r
		}
	}
	return value
}

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}
