package colors

// Wave returns the Kanagawa Wave color scheme (dark theme with blue/purple accents)
func Wave() *ColorScheme {
	return &ColorScheme{
		Preset: "wave",

		Accent: "#957FB8", // oniViolet

		Background: "#1F1F28", // sumiInk1
		Surface:    "#2A2A37", // sumiInk2

		Create: "#98BB6C", // springGreen
		Edit:   "#7E9CD8", // crystalBlue
		Delete: "#FF5D62", // peachRed

		Border:     "#54546D", // sumiInk4
		HeaderFg:   "#7AA89F", // waveAqua2
		SelectedFg: "#DCD7BA", // fujiWhite
		SelectedBg: "#223249", // waveBlue1

		Title:  "#7E9CD8",
		Subtle: "#727169", // fujiGray
		Normal: "#DCD7BA",

		Positive: "#98BB6C",
		Negative: "#E82424", // samuraiRed

		InfoFg:    "#658594", // dragonBlue
		InfoBg:    "#252535", // winterBlue
		WarningFg: "#FF9E3B", // roninYellow
		WarningBg: "#49443C", // winterYellow
		ErrorFg:   "#E82424",
		ErrorBg:   "#43242B", // winterRed

		StatusBarBg:   "#363646", // sumiInk3
		StatusBarText: "#DCD7BA",
	}
}
