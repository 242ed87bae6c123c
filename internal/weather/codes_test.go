package weather

import (
	"strings"
	"testing"
)

func TestIntLabels(t *testing.T) {
	tests := []struct {
		name   string
		lookup func(int) string
		want   map[int]string
	}{
		{
			name:   "cloud cover",
			lookup: CloudCoverLabel,
			want: map[int]string{
				1: "0%-6%", 2: "6%-19%", 3: "19%-31%", 4: "31%-44%", 5: "44%-56%",
				6: "56%-69%", 7: "69%-81%", 8: "81%-94%", 9: "94%-100%",
			},
		},
		{
			name:   "lifted index",
			lookup: LiftedIndexLabel,
			want: map[int]string{
				-10: "Below -7", -6: "-7 to -5", -4: "-5 to -3", -1: "-3 to 0",
				2: "0 to 4", 6: "4 to 8", 10: "8 to 11", 15: "Over 11",
			},
		},
		{
			name:   "precipitation amount",
			lookup: PrecAmountLabel,
			want: map[int]string{
				0: "None", 1: "0-0.25mm/hr", 2: "0.25-1mm/hr", 3: "1-4mm/hr", 4: "4-10mm/hr",
				5: "10-16mm/hr", 6: "16-30mm/hr", 7: "30-50mm/hr", 8: "50-75mm/hr", 9: "Over 75mm/hr",
			},
		},
		{
			name:   "wind speed",
			lookup: WindSpeedLabel,
			want: map[int]string{
				1: "Below 0.3m/s (calm)", 2: "0.3-3.4m/s (light)", 3: "3.4-8.0m/s (moderate)",
				4: "8.0-10.8m/s (fresh)", 5: "10.8-17.2m/s (strong)", 6: "17.2-24.5m/s (gale)",
				7: "24.5-32.6m/s (storm)", 8: "Over 32.6m/s (hurricane)",
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			for code, want := range tt.want {
				if got := tt.lookup(code); got != want {
					t.Errorf("lookup(%d) = %q, want %q", code, got, want)
				}
			}
		})
	}
}

func TestIntLabels_Unknown(t *testing.T) {
	tests := []struct {
		name   string
		lookup func(int) string
		code   int
		want   string
	}{
		{"cloud cover zero", CloudCoverLabel, 0, "0"},
		{"cloud cover ten", CloudCoverLabel, 10, "10"},
		{"lifted index gap", LiftedIndexLabel, 0, "0"},
		{"lifted index negative gap", LiftedIndexLabel, -5, "-5"},
		{"precipitation amount", PrecAmountLabel, -9999, "-9999"},
		{"wind speed", WindSpeedLabel, 9, "9"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.lookup(tt.code); got != tt.want {
				t.Errorf("lookup(%d) = %q, want %q", tt.code, got, tt.want)
			}
		})
	}
}

func TestPrecTypeLabel(t *testing.T) {
	tests := []struct {
		code string
		want string
	}{
		{"none", "None"},
		{"snow", "Snow"},
		{"rain", "Rain"},
		{"frzr", "Freezing Rain"},
		{"icep", "Ice Pellets"},
		{"hail", "hail"},
		{"", ""},
	}

	for _, tt := range tests {
		t.Run(tt.code, func(t *testing.T) {
			if got := PrecTypeLabel(tt.code); got != tt.want {
				t.Errorf("PrecTypeLabel(%q) = %q, want %q", tt.code, got, tt.want)
			}
		})
	}
}

func TestWeatherLabel(t *testing.T) {
	tests := []struct {
		condition string
		want      string
	}{
		{"clear", "Clear: Total cloud cover less than 20%"},
		{"pcloudy", "Partly Cloudy: Total cloud cover between 20%-60%"},
		{"mcloudy", "Cloudy: Total cloud cover between 60%-80%"},
		{"cloudy", "Very Cloudy: Total cloud cover over over 80%"},
		{"humid", "Foggy: Relative humidity over 90% with total cloud cover less than 60%"},
		{"lightrain", "Light Rain: Precipitation rate less than 4mm/hr with total cloud cover more than 80%"},
		{"oshower", "Occasional Showers: Precipitation rate less than 4mm/hr with cloud cover between 60%-80%"},
		{"ishower", "Isolated showers: Precipitation rate less than 4mm/hr less than 60%"},
		{"lightsnow", "Light Snow: Precipitation rate less than 4mm/hr"},
		{"rain", "Rain: Precipitation rate over 4mm/hr"},
		{"snow", "Snow: Precipitation rate over 4mm/hr"},
		{"rainsnow", "Mixed: Precipitation type to be ice pellets or freezing rain"},
		{"ts", "Thunderstorm Possible: Lifted Index less than -5 with precipitation rate below 4mm/hr"},
		{"tsrain", "Thunderstorm: Lifted Index less than -5 with precipitation rate over 4mm/hr"},
	}

	for _, tt := range tests {
		t.Run(tt.condition, func(t *testing.T) {
			day := WeatherLabel(tt.condition + "day")
			night := WeatherLabel(tt.condition + "night")
			if day != tt.want {
				t.Errorf("WeatherLabel(%q) = %q, want %q", tt.condition+"day", day, tt.want)
			}
			if night != tt.want {
				t.Errorf("WeatherLabel(%q) = %q, want %q", tt.condition+"night", night, tt.want)
			}
		})
	}

	if len(weatherLabels) != 2*len(tests) {
		t.Errorf("weatherLabels has %d codes, want %d", len(weatherLabels), 2*len(tests))
	}
	for code := range weatherLabels {
		if !strings.HasSuffix(code, "day") && !strings.HasSuffix(code, "night") {
			t.Errorf("weather code %q has no day/night suffix", code)
		}
	}
}

func TestWeatherLabel_Unknown(t *testing.T) {
	if got := WeatherLabel("sandstormday"); got != "sandstormday" {
		t.Errorf("WeatherLabel(unknown) = %q, want pass-through", got)
	}
}

func TestPassThroughLabels(t *testing.T) {
	if got := TemperatureLabel(-4); got != "-4" {
		t.Errorf("TemperatureLabel(-4) = %q, want -4", got)
	}
	if got := RelativeHumidityLabel("54%"); got != "54%" {
		t.Errorf("RelativeHumidityLabel(54%%) = %q, want 54%%", got)
	}
}
