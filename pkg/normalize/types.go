// Package normalize maps the divergent JSON shapes returned by upstream drama
// catalog APIs onto one canonical model.
//
// Every function in this package is total: missing or mistyped upstream
// fields degrade to documented defaults instead of producing errors.
package normalize

// Status is the airing state of a drama.
type Status string

const (
	StatusOngoing   Status = "Ongoing"
	StatusCompleted Status = "Completed"
)

// UnknownName is used when an upstream record carries no usable title.
const UnknownName = "Unknown"

// DefaultQuality is the resolution assumed when an upstream stream entry
// does not declare one. It is also the preferred resolution when ordering
// quality options.
const DefaultQuality = 720

// Drama is the canonical catalog entry.
type Drama struct {
	BookID        string   `json:"bookId"`
	BookName      string   `json:"bookName"`
	Cover         string   `json:"cover"`
	Introduction  string   `json:"introduction"`
	Rating        float64  `json:"rating"`
	Genres        []string `json:"genres"`
	Status        Status   `json:"status"`
	Year          int      `json:"year"`
	LatestEpisode int      `json:"latestEpisode"`
	ChapterCount  *int     `json:"chapterCount,omitempty"`
	ViewCount     *int64   `json:"viewCount,omitempty"`
	CornerLabel   string   `json:"cornerLabel,omitempty"`
}

// Episode is a single playable unit of a drama. VideoURL and QualityOptions
// stay empty until the stream for the episode has been resolved.
type Episode struct {
	ChapterID      string          `json:"chapterId"`
	ChapterIndex   int             `json:"chapterIndex"`
	ChapterName    string          `json:"chapterName"`
	Cover          string          `json:"cover"`
	VideoURL       string          `json:"videoUrl,omitempty"`
	QualityOptions []QualityOption `json:"qualityOptions,omitempty"`
}

// QualityOption is one playable rendition of an episode.
type QualityOption struct {
	Quality   int    `json:"quality"`
	VideoURL  string `json:"videoUrl"`
	IsDefault bool   `json:"isDefault"`
}

// Category is a catalog grouping offered by an upstream.
type Category struct {
	ID          int    `json:"id"`
	Name        string `json:"name"`
	ReplaceName string `json:"replaceName,omitempty"`
}

// WithStream returns a copy of the episode completed with resolved stream
// options. VideoURL is taken from the default option.
func (e Episode) WithStream(opts []QualityOption) Episode {
	e.QualityOptions = opts
	e.VideoURL = ""
	for _, o := range opts {
		if o.IsDefault {
			e.VideoURL = o.VideoURL
			break
		}
	}
	if e.VideoURL == "" && len(opts) > 0 {
		e.VideoURL = opts[0].VideoURL
	}
	return e
}
