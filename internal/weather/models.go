package weather

import (
	"time"

	"ipweather/internal/types"
)

// InitTimeLayout is the layout of the model initialization timestamp (YYYYMMDDHH, UTC)
const InitTimeLayout = "2006010215"

// StepHours is the spacing of the forecast data series
const StepHours = 3

// Forecast is a 7Timer! civil forecast for one location
type Forecast struct {
	Location  types.Coordinates
	Product   string
	Init      time.Time // model initialization, UTC
	Entries   []Entry   // Entries[i].Timepoint == StepHours*(i+1)
	ViewerURL string
}

// Entry holds the coded fields of one data series point
type Entry struct {
	Timepoint        int
	CloudCover       int
	LiftedIndex      int
	PrecType         string
	PrecAmount       int
	Temperature      int // °F
	RelativeHumidity string
	Wind             Wind
	Weather          string
}

// Wind is the 10m wind: a speed code and a compass direction
type Wind struct {
	Speed     int
	Direction string
}

// DecodedEntry is an Entry with every coded field translated to display text
type DecodedEntry struct {
	Timepoint        int    `json:"timepoint"`
	CloudCover       string `json:"cloudCover"`
	LiftedIndex      string `json:"liftedIndex"`
	PrecType         string `json:"precType"`
	PrecAmount       string `json:"precAmount"`
	Temperature      string `json:"temperature"`
	RelativeHumidity string `json:"relativeHumidity"`
	Wind             string `json:"wind"`
	Weather          string `json:"weather"`
}

// Slot is a selected entry together with the local time it is labelled with
type Slot struct {
	Index   int          `json:"index"`
	ValidAt time.Time    `json:"validAt"`
	Entry   DecodedEntry `json:"entry"`
}
