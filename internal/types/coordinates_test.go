package types

import "testing"

func TestCoordinates_Float(t *testing.T) {
	tests := []struct {
		name    string
		coords  Coordinates
		wantLat float64
		wantLon float64
		wantErr bool
	}{
		{
			name:    "valid",
			coords:  NewCoordinates("39.1911", "-106.8175", "Aspen, Colorado 81611"),
			wantLat: 39.1911,
			wantLon: -106.8175,
		},
		{
			name:    "invalid latitude",
			coords:  NewCoordinates("north", "-106.8175", ""),
			wantErr: true,
		},
		{
			name:    "invalid longitude",
			coords:  NewCoordinates("39.1911", "", ""),
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			lat, lon, err := tt.coords.Float()
			if tt.wantErr {
				if err == nil {
					t.Error("Float() expected error but got none")
				}
				return
			}
			if err != nil {
				t.Fatalf("Float() unexpected error = %v", err)
			}
			if lat != tt.wantLat || lon != tt.wantLon {
				t.Errorf("Float() = (%v, %v), want (%v, %v)", lat, lon, tt.wantLat, tt.wantLon)
			}
		})
	}
}
