package metadata

// Metadata describes one jurisdiction: its chambers, its terms in order, and
// the display details of every session.
type Metadata struct {
	Abbreviation   string                   `yaml:"abbreviation" json:"abbreviation"`
	Name           string                   `yaml:"name" json:"name"`
	Chambers       map[string]Chamber       `yaml:"chambers" json:"chambers"`
	Terms          []Term                   `yaml:"terms" json:"terms"`
	SessionDetails map[string]SessionDetail `yaml:"session_details" json:"session_details"`
}

// Chamber holds the display strings for one chamber ("upper", "lower").
type Chamber struct {
	Name  string `yaml:"name" json:"name"`
	Title string `yaml:"title" json:"title"`
}

// Term is a multi-year legislative period spanning one or more sessions.
type Term struct {
	Name      string   `yaml:"name" json:"name"`
	StartYear int      `yaml:"start_year" json:"start_year"`
	EndYear   int      `yaml:"end_year" json:"end_year"`
	Sessions  []string `yaml:"sessions" json:"sessions"`
}

// SessionDetail is the display data for one session.
type SessionDetail struct {
	DisplayName string `yaml:"display_name" json:"display_name"`
	Type        string `yaml:"type,omitempty" json:"type,omitempty"`
}
