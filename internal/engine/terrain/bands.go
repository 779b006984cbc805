package terrain

// Band is one entry of the height color table. A height belongs to the first
// band whose Upper bound it is strictly below.
type Band struct {
	Name  string
	Upper float32
	Color [3]float32
}

// snowLine is the upper bound of the last band; it exceeds any normalized height.
const snowLine float32 = 1e30

// Bands is the ordered height color table.
var Bands = []Band{
	{Name: "lowland", Upper: 0.2, Color: [3]float32{0.13, 0.55, 0.13}},
	{Name: "grass", Upper: 0.4, Color: [3]float32{0.42, 0.56, 0.14}},
	{Name: "dirt", Upper: 0.6, Color: [3]float32{0.55, 0.35, 0.17}},
	{Name: "rock", Upper: 0.8, Color: [3]float32{0.63, 0.63, 0.63}},
	{Name: "snow", Upper: snowLine, Color: [3]float32{0.94, 0.94, 1.0}},
}

// BandIndex returns the index in Bands for a normalized height.
func BandIndex(h float32) int {
	for i, b := range Bands {
		if h < b.Upper {
			return i
		}
	}
	// NaN compares false against every bound.
	return len(Bands) - 1
}

// Classify returns the band color for a normalized height.
func Classify(h float32) [3]float32 {
	return Bands[BandIndex(h)].Color
}
