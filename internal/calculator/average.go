package calculator

import (
	"errors"

	"SiliconMeter/internal/model"
)

// TrailingAverage computes the mean of the most recent min(window, len(points))
// prices. Unlike a strict SMA it tolerates short histories: a single point
// is its own average.
func TrailingAverage(points []model.PricePoint, window int) (float64, error) {
	if window <= 0 {
		return 0, errors.New("window must be positive")
	}
	if len(points) == 0 {
		return 0, errors.New("no price points provided")
	}
	start := len(points) - window
	if start < 0 {
		start = 0
	}
	sum := 0.0
	for i := start; i < len(points); i++ {
		sum += points[i].Price
	}
	return sum / float64(len(points)-start), nil
}
