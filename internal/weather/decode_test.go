package weather

import "testing"

func TestWindLabel(t *testing.T) {
	tests := []struct {
		name string
		wind Wind
		want string
	}{
		{
			name: "moderate north-west",
			wind: Wind{Speed: 3, Direction: "NW"},
			want: "3.4-8.0m/s (moderate), NW",
		},
		{
			name: "calm",
			wind: Wind{Speed: 1, Direction: "N"},
			want: "Below 0.3m/s (calm), N",
		},
		{
			name: "unknown speed keeps raw code",
			wind: Wind{Speed: 12, Direction: "SE"},
			want: "12, SE",
		},
		{
			name: "direction is never decoded",
			wind: Wind{Speed: 8, Direction: "xyz"},
			want: "Over 32.6m/s (hurricane), xyz",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := WindLabel(tt.wind); got != tt.want {
				t.Errorf("WindLabel(%+v) = %q, want %q", tt.wind, got, tt.want)
			}
		})
	}
}

func TestDecode(t *testing.T) {
	entry := Entry{
		Timepoint:        9,
		CloudCover:       7,
		LiftedIndex:      -6,
		PrecType:         "frzr",
		PrecAmount:       4,
		Temperature:      31,
		RelativeHumidity: "88%",
		Wind:             Wind{Speed: 5, Direction: "E"},
		Weather:          "rainsnownight",
	}

	want := DecodedEntry{
		Timepoint:        9,
		CloudCover:       "69%-81%",
		LiftedIndex:      "-7 to -5",
		PrecType:         "Freezing Rain",
		PrecAmount:       "4-10mm/hr",
		Temperature:      "31",
		RelativeHumidity: "88%",
		Wind:             "10.8-17.2m/s (strong), E",
		Weather:          "Mixed: Precipitation type to be ice pellets or freezing rain",
	}

	if got := Decode(entry); got != want {
		t.Errorf("Decode() = %+v, want %+v", got, want)
	}
}

func TestDecode_UnknownCodesPassThrough(t *testing.T) {
	entry := Entry{
		Timepoint:   3,
		CloudCover:  -9999,
		LiftedIndex: 3,
		PrecType:    "graupel",
		PrecAmount:  12,
		Wind:        Wind{Speed: 0, Direction: "NE"},
		Weather:     "",
	}

	got := Decode(entry)

	if got.CloudCover != "-9999" {
		t.Errorf("CloudCover = %q, want -9999", got.CloudCover)
	}
	if got.LiftedIndex != "3" {
		t.Errorf("LiftedIndex = %q, want 3", got.LiftedIndex)
	}
	if got.PrecType != "graupel" {
		t.Errorf("PrecType = %q, want graupel", got.PrecType)
	}
	if got.PrecAmount != "12" {
		t.Errorf("PrecAmount = %q, want 12", got.PrecAmount)
	}
	if got.Wind != "0, NE" {
		t.Errorf("Wind = %q, want \"0, NE\"", got.Wind)
	}
	if got.Weather != "" {
		t.Errorf("Weather = %q, want empty", got.Weather)
	}
}
