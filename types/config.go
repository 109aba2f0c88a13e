package types

// DefaultFolderPath is where character cards live unless configured otherwise.
const DefaultFolderPath = "characters"

// Config carries the store location and the seed values pre-filled into new
// cards. It is passed explicitly to the store and the card factory; there is
// no ambient global state.
type Config struct {
	// FolderPath is the directory character cards are read from and
	// written to.
	FolderPath string `json:"folder_path" yaml:"folder_path"`

	// DefaultAuthor, DefaultWork and DefaultTrack seed the metadata of
	// newly created cards. They never influence the card identifier.
	DefaultAuthor string `json:"default_author" yaml:"default_author"`
	DefaultWork   string `json:"default_work" yaml:"default_work"`
	DefaultTrack  string `json:"default_track" yaml:"default_track"`
}

// NewConfig returns a Config with the default folder path.
func NewConfig() Config {
	return Config{FolderPath: DefaultFolderPath}
}
