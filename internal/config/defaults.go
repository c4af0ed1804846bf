package config

// DefaultGallery returns the built-in scene shown when no gallery file is
// given.
func DefaultGallery() *Gallery {
	noSnap := false
	return &Gallery{
		Version: "1.0",
		Title:   "Fluent gallery",
		Theme:   "dark",
		Accent:  "#0078d4",
		Sliders: []SliderSpec{
			{ID: "volume", Label: "Volume", Start: 0, End: 100, Value: 40, Format: "%.0f"},
			{ID: "brightness", Label: "Brightness", Start: 0, End: 100, Value: 50, Steps: 3, Format: "%.0f"},
			{ID: "opacity", Label: "Opacity", Start: 0, End: 1, Value: 0.8, Steps: 9, Snap: &noSnap},
			{ID: "temperature", Label: "Temperature", Start: -10, End: 40, Value: 21, Steps: 9, Format: "%.0f°"},
		},
		Colors: []ColorSpec{
			{Name: "Accent", Hex: "#0078d4"},
			{Name: "Success", Hex: "#0f7b0f"},
			{Name: "Caution", Hex: "#9d5d00"},
			{Name: "Critical", Hex: "#c42b1c"},
		},
		Overflow: OverflowSpec{
			Policy:      "end",
			Arrangement: "start",
			Spacing:     1,
			Items: []CommandSpec{
				{ID: "new", Label: "New", Icon: "+"},
				{ID: "open", Label: "Open"},
				{ID: "save", Label: "Save"},
				{ID: "share", Label: "Share"},
				{ID: "cut", Label: "Cut"},
				{ID: "copy", Label: "Copy"},
				{ID: "paste", Label: "Paste"},
				{ID: "rename", Label: "Rename"},
				{ID: "delete", Label: "Delete"},
				{ID: "settings", Label: "Settings"},
			},
		},
	}
}
