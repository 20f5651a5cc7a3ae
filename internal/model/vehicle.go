package model

// Vehicle is one entry of the chat catalog.
type Vehicle struct {
	Model     string       `json:"model"`
	BasePrice int          `json:"basePrice"`
	Specs     VehicleSpecs `json:"specs"`
	Trims     []Trim       `json:"trims"`
}

type VehicleSpecs struct {
	Range    string `json:"range"`
	Power    string `json:"power"`
	ZeroTo60 string `json:"zeroTo60"`
	TopSpeed string `json:"topSpeed"`
}

type Trim struct {
	Name  string `json:"name"`
	Price int    `json:"price"`
}
