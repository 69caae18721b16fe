package model

// IndexPoint is one month of the steel price index (1982=100 base).
type IndexPoint struct {
	Month int     `json:"month"`
	Year  int     `json:"year"`
	Index float64 `json:"steel_price_index"`
}

// PricePathFromIndex converts an index path to a $/ton baseline path using
// the base-price conversion factor: price = (index / 100) * basePricePerTon,
// where basePricePerTon is the $/ton price when the index reads 100.
func PricePathFromIndex(points []IndexPoint, basePricePerTon float64) []float64 {
	path := make([]float64, len(points))
	for i, p := range points {
		path[i] = (p.Index / 100.0) * basePricePerTon
	}
	return path
}
