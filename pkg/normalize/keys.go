package normalize

import (
	"fmt"
	"slices"
)

// Field names a canonical field whose value is resolved through a fallback
// chain of upstream keys.
type Field string

// Drama fields.
const (
	FieldID            Field = "id"
	FieldName          Field = "name"
	FieldCover         Field = "cover"
	FieldIntroduction  Field = "introduction"
	FieldRating        Field = "rating"
	FieldYear          Field = "year"
	FieldLatestEpisode Field = "latest_episode"
	FieldChapterCount  Field = "chapter_count"
	FieldViewCount     Field = "view_count"
	FieldCornerLabel   Field = "corner_label"
	FieldTagName       Field = "tag_name"
)

// Episode fields.
const (
	FieldChapterID    Field = "chapter_id"
	FieldChapterIndex Field = "chapter_index"
	FieldChapterName  Field = "chapter_name"
	FieldChapterCover Field = "chapter_cover"
)

// Stream fields.
const (
	FieldCDNList   Field = "cdn_list"
	FieldCDNDomain Field = "cdn_domain"
	FieldPathList  Field = "path_list"
	FieldPathURL   Field = "path_url"
	FieldQuality   Field = "quality"
	FieldVideoURL  Field = "video_url"
)

// Category fields.
const (
	FieldCategoryID   Field = "category_id"
	FieldCategoryName Field = "category_name"
	FieldReplaceName  Field = "replace_name"
)

// KeyTable holds the ordered upstream keys tried for each canonical field.
// Supporting a new upstream shape means adding keys to a row.
type KeyTable map[Field][]string

// DefaultKeys is the fallback table covering every known upstream shape.
var DefaultKeys = KeyTable{
	FieldID:            {"bookId", "bookid", "id"},
	FieldName:          {"bookName", "bookname", "name"},
	FieldCover:         {"coverWap", "cover", "coverUrl"},
	FieldIntroduction:  {"introduction", "description"},
	FieldRating:        {"rating", "score"},
	FieldYear:          {"year", "releaseYear"},
	FieldLatestEpisode: {"latestChapter", "latestEpisode", "chapterCount", "totalChapter"},
	FieldChapterCount:  {"chapterCount", "totalChapter"},
	FieldViewCount:     {"viewCount", "playCount"},
	FieldCornerLabel:   {"cornerLabel", "cornerName"},
	FieldTagName:       {"tagName", "tagEnName"},

	FieldChapterID:    {"chapterId", "chapterid", "id"},
	FieldChapterIndex: {"chapterIndex", "index"},
	FieldChapterName:  {"chapterName", "name", "title"},
	FieldChapterCover: {"cover", "coverUrl"},

	FieldCDNList:   {"cdnList"},
	FieldCDNDomain: {"cdnDomain", "domain"},
	FieldPathList:  {"videoPathList", "pathList"},
	FieldPathURL:   {"videoPath", "path", "url"},
	FieldQuality:   {"definition", "quality"},
	FieldVideoURL:  {"videoUrl", "url", "videoPath"},

	FieldCategoryID:   {"id", "categoryId"},
	FieldCategoryName: {"name", "categoryName"},
	FieldReplaceName:  {"replaceName"},
}

// Fields lists every field known to DefaultKeys in a stable order.
func Fields() []Field {
	out := make([]Field, 0, len(DefaultKeys))
	for f := range DefaultKeys {
		out = append(out, f)
	}
	slices.Sort(out)
	return out
}

// Clone returns a deep copy of the table.
func (t KeyTable) Clone() KeyTable {
	out := make(KeyTable, len(t))
	for f, keys := range t {
		out[f] = slices.Clone(keys)
	}
	return out
}

// Extend returns a copy of the table with extra keys appended to the named
// fields. Keys already in a row are not duplicated. Unknown fields are an
// error so that configuration typos surface at startup.
func (t KeyTable) Extend(aliases map[string][]string) (KeyTable, error) {
	out := t.Clone()
	for name, keys := range aliases {
		f := Field(name)
		row, ok := out[f]
		if !ok {
			return nil, fmt.Errorf("unknown field %q", name)
		}
		for _, k := range keys {
			if k != "" && !slices.Contains(row, k) {
				row = append(row, k)
			}
		}
		out[f] = row
	}
	return out, nil
}
