package weather

import "strconv"

// Lookup tables for the coded fields of the 7Timer! civil product.
// Reference: http://www.7timer.info/doc.php?lang=en#civil
// Codes without an entry decode to their raw value.

var cloudCoverLabels = map[int]string{
	1: "0%-6%",
	2: "6%-19%",
	3: "19%-31%",
	4: "31%-44%",
	5: "44%-56%",
	6: "56%-69%",
	7: "69%-81%",
	8: "81%-94%",
	9: "94%-100%",
}

var liftedIndexLabels = map[int]string{
	-10: "Below -7",
	-6:  "-7 to -5",
	-4:  "-5 to -3",
	-1:  "-3 to 0",
	2:   "0 to 4",
	6:   "4 to 8",
	10:  "8 to 11",
	15:  "Over 11",
}

var precAmountLabels = map[int]string{
	0: "None",
	1: "0-0.25mm/hr",
	2: "0.25-1mm/hr",
	3: "1-4mm/hr",
	4: "4-10mm/hr",
	5: "10-16mm/hr",
	6: "16-30mm/hr",
	7: "30-50mm/hr",
	8: "50-75mm/hr",
	9: "Over 75mm/hr",
}

var precTypeLabels = map[string]string{
	"none": "None",
	"snow": "Snow",
	"rain": "Rain",
	"frzr": "Freezing Rain",
	"icep": "Ice Pellets",
}

var windSpeedLabels = map[int]string{
	1: "Below 0.3m/s (calm)",
	2: "0.3-3.4m/s (light)",
	3: "3.4-8.0m/s (moderate)",
	4: "8.0-10.8m/s (fresh)",
	5: "10.8-17.2m/s (strong)",
	6: "17.2-24.5m/s (gale)",
	7: "24.5-32.6m/s (storm)",
	8: "Over 32.6m/s (hurricane)",
}

// Weather condition descriptions, shared by the day and night codes
const (
	descClear           = "Clear: Total cloud cover less than 20%"
	descPartlyCloudy    = "Partly Cloudy: Total cloud cover between 20%-60%"
	descCloudy          = "Cloudy: Total cloud cover between 60%-80%"
	descVeryCloudy      = "Very Cloudy: Total cloud cover over over 80%"
	descFoggy           = "Foggy: Relative humidity over 90% with total cloud cover less than 60%"
	descLightRain       = "Light Rain: Precipitation rate less than 4mm/hr with total cloud cover more than 80%"
	descOccasionalRain  = "Occasional Showers: Precipitation rate less than 4mm/hr with cloud cover between 60%-80%"
	descIsolatedRain    = "Isolated showers: Precipitation rate less than 4mm/hr less than 60%"
	descLightSnow       = "Light Snow: Precipitation rate less than 4mm/hr"
	descRain            = "Rain: Precipitation rate over 4mm/hr"
	descSnow            = "Snow: Precipitation rate over 4mm/hr"
	descMixed           = "Mixed: Precipitation type to be ice pellets or freezing rain"
	descThunderPossible = "Thunderstorm Possible: Lifted Index less than -5 with precipitation rate below 4mm/hr"
	descThunderstorm    = "Thunderstorm: Lifted Index less than -5 with precipitation rate over 4mm/hr"
)

var weatherLabels = map[string]string{
	"clearday":       descClear,
	"clearnight":     descClear,
	"pcloudyday":     descPartlyCloudy,
	"pcloudynight":   descPartlyCloudy,
	"mcloudyday":     descCloudy,
	"mcloudynight":   descCloudy,
	"cloudyday":      descVeryCloudy,
	"cloudynight":    descVeryCloudy,
	"humidday":       descFoggy,
	"humidnight":     descFoggy,
	"lightrainday":   descLightRain,
	"lightrainnight": descLightRain,
	"oshowerday":     descOccasionalRain,
	"oshowernight":   descOccasionalRain,
	"ishowerday":     descIsolatedRain,
	"ishowernight":   descIsolatedRain,
	"lightsnowday":   descLightSnow,
	"lightsnownight": descLightSnow,
	"rainday":        descRain,
	"rainnight":      descRain,
	"snowday":        descSnow,
	"snownight":      descSnow,
	"rainsnowday":    descMixed,
	"rainsnownight":  descMixed,
	"tsday":          descThunderPossible,
	"tsnight":        descThunderPossible,
	"tsrainday":      descThunderstorm,
	"tsrainnight":    descThunderstorm,
}

func lookupInt(table map[int]string, code int) string {
	if label, ok := table[code]; ok {
		return label
	}
	return strconv.Itoa(code)
}

func lookupString(table map[string]string, code string) string {
	if label, ok := table[code]; ok {
		return label
	}
	return code
}

// CloudCoverLabel returns the cloud cover range for a code 1-9
func CloudCoverLabel(code int) string {
	return lookupInt(cloudCoverLabels, code)
}

// LiftedIndexLabel returns the lifted index range for a code
func LiftedIndexLabel(code int) string {
	return lookupInt(liftedIndexLabels, code)
}

// PrecAmountLabel returns the precipitation rate for a code 0-9
func PrecAmountLabel(code int) string {
	return lookupInt(precAmountLabels, code)
}

// PrecTypeLabel returns the precipitation type name
func PrecTypeLabel(code string) string {
	return lookupString(precTypeLabels, code)
}

// WindSpeedLabel returns the 10m wind speed range for a code 1-8
func WindSpeedLabel(code int) string {
	return lookupInt(windSpeedLabels, code)
}

// WeatherLabel returns the description of a weather condition code
func WeatherLabel(code string) string {
	return lookupString(weatherLabels, code)
}

// TemperatureLabel passes the 2m temperature through unchanged
func TemperatureLabel(fahrenheit int) string {
	return strconv.Itoa(fahrenheit)
}

// RelativeHumidityLabel passes the 2m relative humidity through unchanged
func RelativeHumidityLabel(rh string) string {
	return rh
}
