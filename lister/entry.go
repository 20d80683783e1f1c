package lister

import (
	"encoding/json"
	"os"
	"time"
)

// ErrNoPermission is the marker stored in Stats.Err when an entry cannot be stat'ed.
const ErrNoPermission = "NO PERMISSION"

// Entry is one item read from a directory.
type Entry struct {
	Name      string
	Path      string // directory path joined with Name
	IsDir     bool
	IsSymlink bool
	Stats     *Stats // set only when stats are requested
}

// Stats is the stat data attached to an entry.
type Stats struct {
	Size    int64
	Mode    os.FileMode
	ModTime time.Time
	IsDir   bool

	// FormattedSize is the size formatter's output; nil without a formatter.
	FormattedSize *string
	// Err is set instead of the fields above when stat failed.
	Err string
}

func newStats(fi os.FileInfo) *Stats {
	return &Stats{
		Size:    fi.Size(),
		Mode:    fi.Mode(),
		ModTime: fi.ModTime(),
		IsDir:   fi.IsDir(),
	}
}

// MarshalJSON reports the formatted size under "size" when present, and
// only the error marker for failed stats.
func (s Stats) MarshalJSON() ([]byte, error) {
	if s.Err != "" {
		return json.Marshal(struct {
			Err string `json:"err"`
		}{s.Err})
	}
	var size any = s.Size
	if s.FormattedSize != nil {
		size = *s.FormattedSize
	}
	return json.Marshal(struct {
		Size    any       `json:"size"`
		Mode    string    `json:"mode"`
		ModTime time.Time `json:"mtime"`
		IsDir   bool      `json:"isDirectory"`
	}{size, s.Mode.String(), s.ModTime, s.IsDir})
}
