package entity

// CityPopulation is one place decoded from a census API row.
type CityPopulation struct {
	Name       string `json:"name"`
	Population int64  `json:"population"`
	StateCode  string `json:"stateCode"`
	PlaceCode  string `json:"placeCode"`
}
