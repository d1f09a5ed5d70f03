package normalize

import (
	"sort"
	"strings"
)

// Qualities extracts the playable options of a resolved episode payload.
//
// CDN entries are scanned in order and the first one yielding at least one
// usable path wins; its first usable path is the default. Without a CDN
// list, a single top-level video URL becomes the only (default) option.
// The result is ordered by SortQualities and may be empty.
func (n *Normalizer) Qualities(obj Object) []QualityOption {
	opts := n.cdnQualities(obj)
	if len(opts) == 0 {
		opts = n.directQuality(obj)
	}
	SortQualities(opts)
	return opts
}

func (n *Normalizer) cdnQualities(obj Object) []QualityOption {
	v, ok := obj.first(n.keys[FieldCDNList])
	if !ok {
		return nil
	}
	cdns, ok := AsList(v)
	if !ok {
		return nil
	}
	for _, c := range cdns {
		cdn, ok := AsObject(c)
		if !ok {
			continue
		}
		if opts := n.cdnOptions(cdn); len(opts) > 0 {
			return opts
		}
	}
	return nil
}

func (n *Normalizer) cdnOptions(cdn Object) []QualityOption {
	k := n.keys
	domain := cdn.stringOr(k[FieldCDNDomain], "")
	v, ok := cdn.first(k[FieldPathList])
	if !ok {
		return nil
	}
	paths, ok := AsList(v)
	if !ok {
		return nil
	}

	var opts []QualityOption
	for _, p := range paths {
		entry, ok := AsObject(p)
		if !ok {
			continue
		}
		u := entry.stringOr(k[FieldPathURL], "")
		if u == "" {
			continue
		}
		if domain != "" && !isAbsolute(u) {
			u = joinDomain(domain, u)
		}
		opts = append(opts, QualityOption{
			Quality:   entry.intOr(k[FieldQuality], DefaultQuality),
			VideoURL:  FixURL(u),
			IsDefault: len(opts) == 0,
		})
	}
	return opts
}

func (n *Normalizer) directQuality(obj Object) []QualityOption {
	u := obj.stringOr(n.keys[FieldVideoURL], "")
	if u == "" {
		return []QualityOption{}
	}
	return []QualityOption{{
		Quality:   obj.intOr(n.keys[FieldQuality], DefaultQuality),
		VideoURL:  FixURL(u),
		IsDefault: true,
	}}
}

// SortQualities orders options in place: DefaultQuality first, then by
// descending quality. Equal qualities keep their upstream order.
func SortQualities(opts []QualityOption) {
	sort.SliceStable(opts, func(i, j int) bool {
		a, b := opts[i].Quality, opts[j].Quality
		if (a == DefaultQuality) != (b == DefaultQuality) {
			return a == DefaultQuality
		}
		return a > b
	})
}

func isAbsolute(u string) bool {
	lower := strings.ToLower(u)
	return strings.HasPrefix(lower, "http://") ||
		strings.HasPrefix(lower, "https://") ||
		strings.HasPrefix(u, "//")
}

func joinDomain(domain, path string) string {
	domain = strings.TrimSuffix(domain, "/")
	if i := strings.Index(domain, "://"); i >= 0 {
		domain = domain[i+3:]
	}
	return "https://" + domain + "/" + strings.TrimPrefix(path, "/")
}
