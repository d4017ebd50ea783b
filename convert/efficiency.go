package convert

// EfficiencyReport compares the projected encoded sizes of a payload
// under base64 (3 bytes to 4 chars) and Z85 (4 bytes to 5 chars).
type EfficiencyReport struct {
	OriginalSize    int     `json:"original_size"`
	Base64Size      int     `json:"base64_size"`
	Z85Size         int     `json:"z85_size"`
	EfficiencyRatio float64 `json:"efficiency_ratio"`
	BandwidthSaving float64 `json:"bandwidth_saving"`
}

// Efficiency computes an EfficiencyReport for a payload of
// originalSize bytes. Every non-negative size is valid, a zero size
// yields a ratio of 1 and no saving.
func Efficiency(originalSize int) EfficiencyReport {
	base64Size := (originalSize + 2) / 3 * 4
	z85Size := (originalSize + 3) / 4 * 5

	ratio := 1.0
	if originalSize > 0 {
		ratio = float64(z85Size) / float64(base64Size)
	}

	return EfficiencyReport{
		OriginalSize:    originalSize,
		Base64Size:      base64Size,
		Z85Size:         z85Size,
		EfficiencyRatio: ratio,
		BandwidthSaving: (1 - ratio) * 100,
	}
}
