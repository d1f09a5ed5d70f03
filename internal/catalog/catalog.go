// Package catalog serves normalized drama data fetched through the upstream
// gateway.
package catalog

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/url"
	"strconv"
	"strings"

	"github.com/vmunix/dracin/pkg/normalize"
)

// ErrNotFound is returned when a lookup or episode has no match.
var ErrNotFound = errors.New("not found")

//go:generate mockgen -destination=mocks/mock_fetcher.go -package=mocks github.com/vmunix/dracin/internal/catalog Fetcher

// Fetcher performs one upstream GET and returns the decoded, unwrapped JSON.
// *upstream.Client satisfies it.
type Fetcher interface {
	Get(ctx context.Context, provider, path string, query url.Values) (any, error)
}

// listKeys are the object keys under which upstreams nest drama lists.
var listKeys = []string{"list", "bookList", "data"}

// Service maps catalog operations onto upstream paths and normalizes the
// results. It holds no per-request state.
type Service struct {
	fetcher Fetcher
	norm    *normalize.Normalizer
	log     *slog.Logger
}

// NewService creates a catalog service. A nil normalizer uses the default
// key table.
func NewService(fetcher Fetcher, norm *normalize.Normalizer, log *slog.Logger) *Service {
	if norm == nil {
		norm, _ = normalize.New()
	}
	if log == nil {
		log = slog.Default()
	}
	return &Service{
		fetcher: fetcher,
		norm:    norm,
		log:     log,
	}
}

// Home returns featured dramas.
func (s *Service) Home(ctx context.Context, provider string, page int) ([]normalize.Drama, error) {
	return s.dramas(ctx, provider, "home", pageQuery(page))
}

// Recommend returns recommended dramas.
func (s *Service) Recommend(ctx context.Context, provider string, page int) ([]normalize.Drama, error) {
	return s.dramas(ctx, provider, "recommend", pageQuery(page))
}

// VIP returns members-only dramas.
func (s *Service) VIP(ctx context.Context, provider string, page int) ([]normalize.Drama, error) {
	return s.dramas(ctx, provider, "vip", pageQuery(page))
}

// Search returns dramas matching a keyword.
func (s *Service) Search(ctx context.Context, provider, query string) ([]normalize.Drama, error) {
	return s.dramas(ctx, provider, "search", url.Values{"keyword": {query}})
}

// Categories returns the upstream category list.
func (s *Service) Categories(ctx context.Context, provider string) ([]normalize.Category, error) {
	v, err := s.fetcher.Get(ctx, provider, "categories", nil)
	if err != nil {
		return nil, fmt.Errorf("categories: %w", err)
	}
	list, ok := normalize.AsList(v)
	if !ok {
		s.log.Debug("unexpected shape", "path", "categories")
		return []normalize.Category{}, nil
	}
	return s.norm.Categories(list), nil
}

// Category returns the dramas in one category.
func (s *Service) Category(ctx context.Context, provider string, id, page int) ([]normalize.Drama, error) {
	q := pageQuery(page)
	q.Set("categoryId", strconv.Itoa(id))
	return s.dramas(ctx, provider, "categories", q)
}

// ByType resolves a listing type or numeric category id to a drama list.
// Unknown types fall back to the home listing.
func (s *Service) ByType(ctx context.Context, provider, kind string, page int) ([]normalize.Drama, error) {
	if id, err := strconv.Atoi(kind); err == nil {
		return s.Category(ctx, provider, id, page)
	}
	switch strings.ToLower(kind) {
	case "foryou", "populersearch":
		return s.Recommend(ctx, provider, 1)
	case "vip":
		return s.VIP(ctx, provider, page)
	case "dubindo":
		return s.Home(ctx, provider, page)
	default: // trending, latest
		return s.Home(ctx, provider, 1)
	}
}

// Detail returns one drama. Download-shaped payloads ({info, data}) take
// their chapter counts from the chapter list.
func (s *Service) Detail(ctx context.Context, provider, bookID string) (normalize.Drama, error) {
	v, err := s.download(ctx, provider, bookID)
	if err != nil {
		return normalize.Drama{}, err
	}

	obj, _ := normalize.AsObject(v)
	var d normalize.Drama
	if info, ok := normalize.AsObject(obj["info"]); ok {
		d = s.norm.Drama(info)
		if chapters, ok := normalize.AsList(obj["data"]); ok {
			n := len(chapters)
			d.ChapterCount = &n
			d.LatestEpisode = n
		}
	} else {
		d = s.norm.Drama(obj)
	}
	if d.BookID == "" {
		d.BookID = bookID
	}
	return d, nil
}

// Episodes returns the listing fields of every episode. When the upstream
// has no chapter list but reports a chapter count, placeholder episodes
// are synthesized.
func (s *Service) Episodes(ctx context.Context, provider, bookID string) ([]normalize.Episode, error) {
	v, err := s.download(ctx, provider, bookID)
	if err != nil {
		return nil, err
	}

	if chapters := chapterList(v); len(chapters) > 0 {
		return s.norm.Episodes(chapters), nil
	}

	if obj, ok := normalize.AsObject(v); ok {
		src := obj
		if info, ok := normalize.AsObject(obj["info"]); ok {
			src = info
		}
		if d := s.norm.Drama(src); d.ChapterCount != nil {
			s.log.Debug("synthesizing episodes", "book_id", bookID, "count", *d.ChapterCount)
			return normalize.SynthesizeEpisodes(*d.ChapterCount), nil
		}
	}
	return []normalize.Episode{}, nil
}

// Play resolves one episode, by declared chapter index or else by 1-based
// position, and completes it with its stream options.
func (s *Service) Play(ctx context.Context, provider, bookID string, episode int) (normalize.Episode, error) {
	v, err := s.download(ctx, provider, bookID)
	if err != nil {
		return normalize.Episode{}, err
	}

	chapters := chapterList(v)
	pos := -1
	for i, c := range chapters {
		if obj, ok := normalize.AsObject(c); ok {
			if idx, ok := s.norm.ChapterIndex(obj); ok && idx == episode {
				pos = i
				break
			}
		}
	}
	if pos < 0 && episode >= 1 && episode <= len(chapters) {
		pos = episode - 1
	}
	if pos < 0 {
		return normalize.Episode{}, fmt.Errorf("episode %d of %s: %w", episode, bookID, ErrNotFound)
	}

	obj, ok := normalize.AsObject(chapters[pos])
	if !ok {
		return normalize.Episode{}, fmt.Errorf("episode %d of %s: %w", episode, bookID, ErrNotFound)
	}
	ep := s.norm.Episode(obj, pos)
	return ep.WithStream(s.norm.Qualities(obj)), nil
}

// Stream returns the quality options of one episode. A missing episode
// yields an empty list.
func (s *Service) Stream(ctx context.Context, provider, bookID string, episode int) ([]normalize.QualityOption, error) {
	ep, err := s.Play(ctx, provider, bookID, episode)
	if errors.Is(err, ErrNotFound) {
		return []normalize.QualityOption{}, nil
	}
	if err != nil {
		return nil, err
	}
	if ep.QualityOptions == nil {
		return []normalize.QualityOption{}, nil
	}
	return ep.QualityOptions, nil
}

// LookupResult is the outcome of a title lookup.
type LookupResult struct {
	Drama normalize.Drama
	Match Match
}

// Lookup searches for title and returns the closest-named drama.
func (s *Service) Lookup(ctx context.Context, provider, title string) (*LookupResult, error) {
	dramas, err := s.Search(ctx, provider, title)
	if err != nil {
		return nil, err
	}
	names := make([]string, len(dramas))
	for i, d := range dramas {
		names[i] = d.BookName
	}
	m := MatchTitle(title, names)
	if m.Index < 0 {
		return nil, fmt.Errorf("lookup %q: %w", title, ErrNotFound)
	}
	return &LookupResult{Drama: dramas[m.Index], Match: m}, nil
}

func (s *Service) dramas(ctx context.Context, provider, path string, q url.Values) ([]normalize.Drama, error) {
	v, err := s.fetcher.Get(ctx, provider, path, q)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	list, ok := dramaList(v)
	if !ok {
		s.log.Debug("unexpected shape", "path", path)
		return []normalize.Drama{}, nil
	}
	return s.norm.Dramas(list), nil
}

func (s *Service) download(ctx context.Context, provider, bookID string) (any, error) {
	v, err := s.fetcher.Get(ctx, provider, "download/"+url.PathEscape(bookID), nil)
	if err != nil {
		return nil, fmt.Errorf("download %s: %w", bookID, err)
	}
	return v, nil
}

// dramaList accepts a bare array or an object nesting one under listKeys.
func dramaList(v any) ([]any, bool) {
	if list, ok := normalize.AsList(v); ok {
		return list, true
	}
	obj, ok := normalize.AsObject(v)
	if !ok {
		return nil, false
	}
	for _, k := range listKeys {
		if list, ok := normalize.AsList(obj[k]); ok {
			return list, true
		}
	}
	return nil, false
}

// chapterList accepts a download-shaped object or a bare array.
func chapterList(v any) []any {
	if obj, ok := normalize.AsObject(v); ok {
		list, _ := normalize.AsList(obj["data"])
		return list
	}
	list, _ := normalize.AsList(v)
	return list
}

func pageQuery(page int) url.Values {
	if page < 1 {
		page = 1
	}
	return url.Values{"page": {strconv.Itoa(page)}}
}
