package seventimer

type ForecastAPIResponse struct {
	Product    string      `json:"product"`
	Init       string      `json:"init"` // YYYYMMDDHH, UTC
	Dataseries []DataPoint `json:"dataseries"`
}

type DataPoint struct {
	Timepoint   int    `json:"timepoint"` // hours past init
	Cloudcover  int    `json:"cloudcover"`
	LiftedIndex int    `json:"lifted_index"`
	PrecType    string `json:"prec_type"`
	PrecAmount  int    `json:"prec_amount"`
	Temp2m      int    `json:"temp2m"`
	Rh2m        string `json:"rh2m"`
	Wind10m     struct {
		Direction string `json:"direction"`
		Speed     int    `json:"speed"`
	} `json:"wind10m"`
	Weather string `json:"weather"`
}
