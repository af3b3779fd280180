// internal/utils/math.go
package utils

import "math"

// LerpAngle interpolates between two angles along the shortest arc.
func LerpAngle(from, to, t float64) float64 {
	from = NormalizeAngle(from)
	to = NormalizeAngle(to)

	diff := to - from
	if diff > math.Pi {
		diff -= 2 * math.Pi
	} else if diff < -math.Pi {
		diff += 2 * math.Pi
	}

	return NormalizeAngle(from + diff*t)
}

// NormalizeAngle нормализует угол в диапазон [-π, π]
func NormalizeAngle(angle float64) float64 {
	for angle > math.Pi {
		angle -= 2 * math.Pi
	}
	for angle < -math.Pi {
		angle += 2 * math.Pi
	}
	return angle
}
