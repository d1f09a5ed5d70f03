package normalize

import "fmt"

// Episode maps one upstream chapter object to the listing fields of an
// Episode. index is the chapter's position in the upstream list and is used
// only when the upstream does not declare an id, index or name. Upstreams
// disagree on whether chapter indexes are 0- or 1-based; a declared index is
// trusted as-is.
func (n *Normalizer) Episode(obj Object, index int) Episode {
	k := n.keys
	ep := Episode{
		ChapterID:    obj.stringOr(k[FieldChapterID], fmt.Sprintf("ep-%d", index)),
		ChapterIndex: index,
		ChapterName:  cleanText(obj.stringOr(k[FieldChapterName], "")),
		Cover:        FixURL(obj.stringOr(k[FieldChapterCover], "")),
	}
	if i, ok := n.ChapterIndex(obj); ok {
		ep.ChapterIndex = i
	}
	if ep.ChapterName == "" {
		ep.ChapterName = episodeName(index + 1)
	}
	return ep
}

// ChapterIndex returns the index an upstream chapter object declares, if
// any. No positional fallback is applied.
func (n *Normalizer) ChapterIndex(obj Object) (int, bool) {
	v, ok := obj.first(n.keys[FieldChapterIndex])
	if !ok {
		return 0, false
	}
	return toInt(v)
}

// Episodes normalizes a chapter list, skipping entries that are not objects.
// Positions of skipped entries are not reused.
func (n *Normalizer) Episodes(list []any) []Episode {
	out := make([]Episode, 0, len(list))
	for i, item := range list {
		obj, ok := AsObject(item)
		if !ok {
			continue
		}
		out = append(out, n.Episode(obj, i))
	}
	return out
}

// SynthesizeEpisodes builds placeholder episodes for a drama whose upstream
// exposes a chapter count but no chapter list.
func SynthesizeEpisodes(count int) []Episode {
	if count <= 0 {
		return []Episode{}
	}
	out := make([]Episode, count)
	for i := range out {
		out[i] = Episode{
			ChapterID:    fmt.Sprintf("ep-%d", i),
			ChapterIndex: i + 1,
			ChapterName:  episodeName(i + 1),
		}
	}
	return out
}

func episodeName(n int) string {
	return fmt.Sprintf("Episode %d", n)
}
