package weather

// Decode translates the coded fields of an entry. Unknown codes are kept as-is.
func Decode(e Entry) DecodedEntry {
	return DecodedEntry{
		Timepoint:        e.Timepoint,
		CloudCover:       CloudCoverLabel(e.CloudCover),
		LiftedIndex:      LiftedIndexLabel(e.LiftedIndex),
		PrecType:         PrecTypeLabel(e.PrecType),
		PrecAmount:       PrecAmountLabel(e.PrecAmount),
		Temperature:      TemperatureLabel(e.Temperature),
		RelativeHumidity: RelativeHumidityLabel(e.RelativeHumidity),
		Wind:             WindLabel(e.Wind),
		Weather:          WeatherLabel(e.Weather),
	}
}

// WindLabel combines the decoded speed with the raw compass direction,
// e.g. "3.4-8.0m/s (moderate), NW"
func WindLabel(w Wind) string {
	return WindSpeedLabel(w.Speed) + ", " + w.Direction
}
