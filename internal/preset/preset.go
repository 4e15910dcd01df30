package preset

// Preset is one pre-registered QR payload. Its position in the data file is
// its identity: /qr/{index} addresses presets by ordinal.
type Preset struct {
	Name  string `json:"name"`
	Text  string `json:"text"`
	Color string `json:"color"`
}
