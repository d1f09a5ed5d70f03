package normalize

// Drama maps an upstream object of unknown shape to a canonical Drama.
// It never fails; absent fields take their documented defaults.
func (n *Normalizer) Drama(obj Object) Drama {
	k := n.keys
	d := Drama{
		BookID:        obj.stringOr(k[FieldID], ""),
		BookName:      cleanText(obj.stringOr(k[FieldName], UnknownName)),
		Cover:         FixURL(obj.stringOr(k[FieldCover], "")),
		Introduction:  cleanText(obj.stringOr(k[FieldIntroduction], "")),
		Genres:        n.genres(obj),
		Status:        dramaStatus(obj),
		LatestEpisode: obj.intOr(k[FieldLatestEpisode], 0),
		CornerLabel:   cleanText(obj.stringOr(k[FieldCornerLabel], "")),
	}
	if d.BookName == "" {
		d.BookName = UnknownName
	}

	if v, ok := obj.first(k[FieldRating]); ok {
		d.Rating = ParseRating(v)
	}
	if v, ok := obj.first(k[FieldYear]); ok {
		d.Year = ParseYear(v)
	}
	if c, ok := obj.optInt(k[FieldChapterCount]); ok {
		d.ChapterCount = &c
	}
	if v, ok := obj.first(k[FieldViewCount]); ok {
		if views, ok := ParseViewCount(v); ok {
			d.ViewCount = &views
		}
	}
	return d
}

// Dramas normalizes a drama list, skipping non-object entries.
func (n *Normalizer) Dramas(list []any) []Drama {
	out := make([]Drama, 0, len(list))
	for _, item := range list {
		if obj, ok := AsObject(item); ok {
			out = append(out, n.Drama(obj))
		}
	}
	return out
}

// dramaStatus is Ongoing only when finished is explicitly false or status
// reads "Ongoing"; everything else is Completed.
func dramaStatus(obj Object) Status {
	if finished, ok := obj["finished"].(bool); ok && !finished {
		return StatusOngoing
	}
	if s, ok := obj["status"].(string); ok && s == string(StatusOngoing) {
		return StatusOngoing
	}
	return StatusCompleted
}

// genres prefers tags, then tagNameList, then genres. Tag entries may be
// plain strings or objects carrying a tag name.
func (n *Normalizer) genres(obj Object) []string {
	out := []string{}
	if tags, ok := AsList(obj["tags"]); ok {
		for _, t := range tags {
			var name string
			if s, ok := t.(string); ok {
				name = s
			} else if o, ok := AsObject(t); ok {
				name = o.stringOr(n.keys[FieldTagName], "")
			}
			if name = cleanText(name); name != "" {
				out = append(out, name)
			}
		}
		return out
	}
	for _, key := range []string{"tagNameList", "genres"} {
		list, ok := AsList(obj[key])
		if !ok {
			continue
		}
		for _, t := range list {
			if s, ok := t.(string); ok {
				if s = cleanText(s); s != "" {
					out = append(out, s)
				}
			}
		}
		return out
	}
	return out
}
