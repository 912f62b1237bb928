package config

// KeyMappings defines all configurable key bindings
type KeyMappings struct {
	// Table
	Search     string `yaml:"search"`
	Columns    string `yaml:"columns"`
	PrevColumn string `yaml:"prev_column"`
	NextColumn string `yaml:"next_column"`
	ToggleSort string `yaml:"toggle_sort"`
	SortAsc    string `yaml:"sort_asc"`
	SortDesc   string `yaml:"sort_desc"`
	PrevPage   string `yaml:"prev_page"`
	NextPage   string `yaml:"next_page"`
	Export     string `yaml:"export"`
	PrevRow    string `yaml:"prev_row"`
	NextRow    string `yaml:"next_row"`

	// Pages
	NextTab     string `yaml:"next_tab"`
	PrevTab     string `yaml:"prev_tab"`
	Refresh     string `yaml:"refresh"`
	Create      string `yaml:"create"`
	Edit        string `yaml:"edit"`
	TogglePause string `yaml:"toggle_pause"`
	Filter      string `yaml:"filter"`

	// Forms
	SaveForm string `yaml:"save_form"`

	// Other
	Logout   string `yaml:"logout"`
	ShowHelp string `yaml:"show_help"`
	Quit     string `yaml:"quit"`
}

// DefaultKeyMappings returns the default key mappings
func DefaultKeyMappings() KeyMappings {
	return KeyMappings{
		// Table
		Search:     "/",
		Columns:    "c",
		PrevColumn: "h",
		NextColumn: "l",
		ToggleSort: "s",
		SortAsc:    "<",
		SortDesc:   ">",
		PrevPage:   "[",
		NextPage:   "]",
		Export:     "x",
		PrevRow:    "k",
		NextRow:    "j",

		// Pages
		NextTab:     "tab",
		PrevTab:     "shift+tab",
		Refresh:     "r",
		Create:      "a",
		Edit:        "e",
		TogglePause: "p",
		Filter:      "f",

		SaveForm: "ctrl+s",

		// Other
		Logout:   "ctrl+o",
		ShowHelp: "?",
		Quit:     "q",
	}
}

func (k *KeyMappings) fields() []*string {
	return []*string{
		&k.Search, &k.Columns, &k.PrevColumn, &k.NextColumn,
		&k.ToggleSort, &k.SortAsc, &k.SortDesc,
		&k.PrevPage, &k.NextPage, &k.Export, &k.PrevRow, &k.NextRow,
		&k.NextTab, &k.PrevTab, &k.Refresh, &k.Create, &k.Edit, &k.TogglePause, &k.Filter,
		&k.SaveForm, &k.Logout, &k.ShowHelp, &k.Quit,
	}
}

// applyDefaults fills in missing key mappings with defaults
func (k *KeyMappings) applyDefaults() {
	defaults := DefaultKeyMappings()
	theirs := defaults.fields()
	for i, f := range k.fields() {
		if *f == "" {
			*f = *theirs[i]
		}
	}
}
