package building

// wireBuilding mirrors the external building JSON contract
// field-for-field; it exists only to decode into, never exposed
// outside this package. encoding/json is used here deliberately:
// bytedance/sonic and goccy/go-json are transitive dependencies of
// gin, which this library does not use — there is no HTTP surface to
// justify importing a web framework just to reach its JSON encoder.
type wireBuilding struct {
	NameBuilding string      `json:"NameBuilding"`
	Address      string      `json:"Address"`
	Level        []wireLevel `json:"Level"`
}

type wireLevel struct {
	NameLevel    string        `json:"NameLevel"`
	ZLevel       float64       `json:"ZLevel"`
	BuildElement []wireElement `json:"BuildElement"`
}

type wireElement struct {
	ID     string      `json:"Id"`
	Name   string      `json:"Name"`
	Sign   string      `json:"Sign"`
	SizeZ  float64     `json:"SizeZ"`
	Output []string    `json:"Output"`
	XY     []wireRing  `json:"XY"`
}

type wireRing struct {
	Points []wirePoint `json:"points"`
}

type wirePoint struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}
