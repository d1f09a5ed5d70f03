package catalog_test

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/vmunix/dracin/internal/catalog"
	"github.com/vmunix/dracin/internal/catalog/mocks"
	"github.com/vmunix/dracin/internal/upstream"
	"github.com/vmunix/dracin/pkg/normalize"
)

// testLogger returns a discard logger for tests.
func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// payload decodes and unwraps a JSON body the way the gateway does.
func payload(t *testing.T, body string) any {
	t.Helper()
	v, err := upstream.Decode([]byte(body))
	require.NoError(t, err)
	return upstream.Unwrap(v)
}

func newService(t *testing.T) (*catalog.Service, *mocks.MockFetcher) {
	t.Helper()
	ctrl := gomock.NewController(t)
	f := mocks.NewMockFetcher(ctrl)
	return catalog.NewService(f, nil, testLogger()), f
}

const downloadBody = `{
	"info": {"id": "b1", "name": "Flash Marriage", "cover": "//img.example.com/b1.jpg", "chapterCount": 99},
	"data": [
		{"chapterId": "c1", "chapterIndex": 1, "chapterName": "Ep 1", "videoPath": "https://v.example.com/1.mp4"},
		{"chapterId": "c2", "chapterIndex": 2, "chapterName": "Ep 2", "cdnList": [
			{"cdnDomain": "a.example.com", "videoPathList": []},
			{"cdnDomain": "b.example.com", "videoPathList": [
				{"videoPath": "/2-1080.m3u8", "definition": 1080},
				{"videoPath": "/2-720.m3u8", "definition": 720}
			]}
		]},
		{"chapterId": "c3", "chapterName": "Ep 3"}
	]
}`

func TestService_Home(t *testing.T) {
	svc, f := newService(t)
	f.EXPECT().
		Get(gomock.Any(), "secondary", "home", url.Values{"page": {"2"}}).
		Return(payload(t, `{"data":[{"bookId":"1","bookName":"A"},{"bookid":"2"}],"success":true}`), nil)

	dramas, err := svc.Home(context.Background(), "secondary", 2)
	require.NoError(t, err)
	require.Len(t, dramas, 2)
	assert.Equal(t, "A", dramas[0].BookName)
	assert.Equal(t, "2", dramas[1].BookID)
	assert.Equal(t, normalize.UnknownName, dramas[1].BookName)
}

func TestService_Home_PageDefaultsToOne(t *testing.T) {
	svc, f := newService(t)
	f.EXPECT().
		Get(gomock.Any(), "", "home", url.Values{"page": {"1"}}).
		Return(payload(t, `[]`), nil)

	dramas, err := svc.Home(context.Background(), "", 0)
	require.NoError(t, err)
	assert.Empty(t, dramas)
}

func TestService_ShapeMismatchDegradesToEmpty(t *testing.T) {
	svc, f := newService(t)
	f.EXPECT().Get(gomock.Any(), gomock.Any(), "recommend", gomock.Any()).Return(payload(t, `"oops"`), nil)

	dramas, err := svc.Recommend(context.Background(), "", 1)
	require.NoError(t, err)
	assert.NotNil(t, dramas)
	assert.Empty(t, dramas)
}

func TestService_TransportErrorPropagates(t *testing.T) {
	svc, f := newService(t)
	boom := &upstream.StatusError{Code: 503, Status: "503 Service Unavailable"}
	f.EXPECT().Get(gomock.Any(), gomock.Any(), "home", gomock.Any()).Return(nil, boom)

	_, err := svc.Home(context.Background(), "", 1)
	var se *upstream.StatusError
	assert.ErrorAs(t, err, &se)
}

func TestService_VIP_BookList(t *testing.T) {
	svc, f := newService(t)
	f.EXPECT().Get(gomock.Any(), gomock.Any(), "vip", gomock.Any()).
		Return(payload(t, `{"data":{"bookList":[{"bookId":"v1","bookName":"Vip"}]},"success":true}`), nil)

	dramas, err := svc.VIP(context.Background(), "", 1)
	require.NoError(t, err)
	require.Len(t, dramas, 1)
	assert.Equal(t, "v1", dramas[0].BookID)
}

func TestService_Search_ListWrapper(t *testing.T) {
	svc, f := newService(t)
	f.EXPECT().Get(gomock.Any(), gomock.Any(), "search", url.Values{"keyword": {"ceo"}}).
		Return(payload(t, `{"list":[{"bookName":"CEO"}]}`), nil)

	dramas, err := svc.Search(context.Background(), "", "ceo")
	require.NoError(t, err)
	require.Len(t, dramas, 1)
	assert.Equal(t, "CEO", dramas[0].BookName)
}

func TestService_Categories(t *testing.T) {
	svc, f := newService(t)
	f.EXPECT().Get(gomock.Any(), gomock.Any(), "categories", gomock.Nil()).
		Return(payload(t, `[{"id":1,"name":"Romance","replaceName":"Love"},{"id":2,"name":"Action"}]`), nil)

	cats, err := svc.Categories(context.Background(), "")
	require.NoError(t, err)
	assert.Equal(t, []normalize.Category{
		{ID: 1, Name: "Romance", ReplaceName: "Love"},
		{ID: 2, Name: "Action"},
	}, cats)
}

func TestService_ByType(t *testing.T) {
	tests := []struct {
		kind  string
		path  string
		query url.Values
	}{
		{"12", "categories", url.Values{"categoryId": {"12"}, "page": {"3"}}},
		{"trending", "home", url.Values{"page": {"1"}}},
		{"latest", "home", url.Values{"page": {"1"}}},
		{"dubindo", "home", url.Values{"page": {"3"}}},
		{"foryou", "recommend", url.Values{"page": {"1"}}},
		{"populersearch", "recommend", url.Values{"page": {"1"}}},
		{"vip", "vip", url.Values{"page": {"3"}}},
		{"whatever", "home", url.Values{"page": {"1"}}},
	}
	for _, tt := range tests {
		t.Run(tt.kind, func(t *testing.T) {
			svc, f := newService(t)
			f.EXPECT().Get(gomock.Any(), "p", tt.path, tt.query).Return(payload(t, `[]`), nil)

			_, err := svc.ByType(context.Background(), "p", tt.kind, 3)
			require.NoError(t, err)
		})
	}
}

func TestService_Detail_DownloadShape(t *testing.T) {
	svc, f := newService(t)
	f.EXPECT().Get(gomock.Any(), gomock.Any(), "download/b1", gomock.Nil()).Return(payload(t, downloadBody), nil)

	d, err := svc.Detail(context.Background(), "", "b1")
	require.NoError(t, err)
	assert.Equal(t, "b1", d.BookID)
	assert.Equal(t, "Flash Marriage", d.BookName)
	assert.Equal(t, "https://img.example.com/b1.jpg", d.Cover)
	require.NotNil(t, d.ChapterCount)
	assert.Equal(t, 3, *d.ChapterCount, "chapter count comes from the list")
	assert.Equal(t, 3, d.LatestEpisode)
}

func TestService_Detail_PlainObject(t *testing.T) {
	svc, f := newService(t)
	f.EXPECT().Get(gomock.Any(), gomock.Any(), "download/b2", gomock.Any()).
		Return(payload(t, `{"data":{"bookName":"Plain","chapterCount":8},"success":true}`), nil)

	d, err := svc.Detail(context.Background(), "", "b2")
	require.NoError(t, err)
	assert.Equal(t, "b2", d.BookID, "requested id fills a missing one")
	assert.Equal(t, "Plain", d.BookName)
	assert.Equal(t, 8, d.LatestEpisode)
}

func TestService_Detail_Empty(t *testing.T) {
	svc, f := newService(t)
	f.EXPECT().Get(gomock.Any(), gomock.Any(), "download/b3", gomock.Any()).Return(payload(t, `[]`), nil)

	d, err := svc.Detail(context.Background(), "", "b3")
	require.NoError(t, err)
	assert.Equal(t, "b3", d.BookID)
	assert.Equal(t, normalize.UnknownName, d.BookName)
}

func TestService_Detail_EscapesID(t *testing.T) {
	svc, f := newService(t)
	f.EXPECT().Get(gomock.Any(), gomock.Any(), "download/a%2Fb", gomock.Any()).Return(payload(t, `{}`), nil)

	_, err := svc.Detail(context.Background(), "", "a/b")
	require.NoError(t, err)
}

func TestService_Episodes(t *testing.T) {
	svc, f := newService(t)
	f.EXPECT().Get(gomock.Any(), gomock.Any(), "download/b1", gomock.Any()).Return(payload(t, downloadBody), nil)

	eps, err := svc.Episodes(context.Background(), "", "b1")
	require.NoError(t, err)
	require.Len(t, eps, 3)
	assert.Equal(t, normalize.Episode{ChapterID: "c1", ChapterIndex: 1, ChapterName: "Ep 1"}, eps[0])
	assert.Equal(t, 2, eps[2].ChapterIndex, "undeclared index falls back to position")
}

func TestService_Episodes_Synthesized(t *testing.T) {
	svc, f := newService(t)
	f.EXPECT().Get(gomock.Any(), gomock.Any(), "download/b4", gomock.Any()).
		Return(payload(t, `{"info":{"id":"b4","chapterCount":5},"data":[]}`), nil)

	eps, err := svc.Episodes(context.Background(), "", "b4")
	require.NoError(t, err)
	require.Len(t, eps, 5)
	for i, ep := range eps {
		assert.Equal(t, i+1, ep.ChapterIndex)
		assert.Equal(t, fmt.Sprintf("Episode %d", i+1), ep.ChapterName)
	}
}

func TestService_Episodes_NothingKnown(t *testing.T) {
	svc, f := newService(t)
	f.EXPECT().Get(gomock.Any(), gomock.Any(), "download/b5", gomock.Any()).Return(payload(t, `{"info":{"id":"b5"}}`), nil)

	eps, err := svc.Episodes(context.Background(), "", "b5")
	require.NoError(t, err)
	assert.NotNil(t, eps)
	assert.Empty(t, eps)
}

func TestService_Play(t *testing.T) {
	svc, f := newService(t)
	f.EXPECT().Get(gomock.Any(), gomock.Any(), "download/b1", gomock.Any()).Return(payload(t, downloadBody), nil)

	ep, err := svc.Play(context.Background(), "", "b1", 2)
	require.NoError(t, err)
	assert.Equal(t, "c2", ep.ChapterID)
	assert.Equal(t, "https://b.example.com/2-1080.m3u8", ep.VideoURL)
	assert.Equal(t, []normalize.QualityOption{
		{Quality: 720, VideoURL: "https://b.example.com/2-720.m3u8"},
		{Quality: 1080, VideoURL: "https://b.example.com/2-1080.m3u8", IsDefault: true},
	}, ep.QualityOptions)
}

func TestService_Play_PositionFallback(t *testing.T) {
	svc, f := newService(t)
	f.EXPECT().Get(gomock.Any(), gomock.Any(), "download/b1", gomock.Any()).Return(payload(t, downloadBody), nil)

	ep, err := svc.Play(context.Background(), "", "b1", 3)
	require.NoError(t, err)
	assert.Equal(t, "c3", ep.ChapterID)
	assert.Empty(t, ep.QualityOptions)
}

func TestService_Play_NotFound(t *testing.T) {
	svc, f := newService(t)
	f.EXPECT().Get(gomock.Any(), gomock.Any(), "download/b1", gomock.Any()).Return(payload(t, downloadBody), nil)

	_, err := svc.Play(context.Background(), "", "b1", 9)
	assert.ErrorIs(t, err, catalog.ErrNotFound)
}

func TestService_Stream(t *testing.T) {
	svc, f := newService(t)
	f.EXPECT().Get(gomock.Any(), gomock.Any(), "download/b1", gomock.Any()).Return(payload(t, downloadBody), nil).Times(2)

	opts, err := svc.Stream(context.Background(), "", "b1", 1)
	require.NoError(t, err)
	assert.Equal(t, []normalize.QualityOption{{Quality: 720, VideoURL: "https://v.example.com/1.mp4", IsDefault: true}}, opts)

	opts, err = svc.Stream(context.Background(), "", "b1", 42)
	require.NoError(t, err)
	assert.NotNil(t, opts)
	assert.Empty(t, opts, "missing episode yields no options")
}

func TestService_Stream_Error(t *testing.T) {
	svc, f := newService(t)
	f.EXPECT().Get(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(nil, errors.New("dial tcp: refused"))

	_, err := svc.Stream(context.Background(), "", "b1", 1)
	assert.ErrorContains(t, err, "refused")
}

func TestService_Lookup(t *testing.T) {
	svc, f := newService(t)
	f.EXPECT().Get(gomock.Any(), gomock.Any(), "search", url.Values{"keyword": {"flash marriage"}}).
		Return(payload(t, `[{"bookId":"x","bookName":"Flash Divorce"},{"bookId":"y","bookName":"Flash Marriage!"}]`), nil)

	res, err := svc.Lookup(context.Background(), "", "flash marriage")
	require.NoError(t, err)
	assert.Equal(t, "y", res.Drama.BookID)
	assert.Equal(t, catalog.ConfidenceHigh, res.Match.Confidence)
}

func TestService_Lookup_NoMatch(t *testing.T) {
	svc, f := newService(t)
	f.EXPECT().Get(gomock.Any(), gomock.Any(), "search", gomock.Any()).Return(payload(t, `[]`), nil)

	_, err := svc.Lookup(context.Background(), "", "anything")
	assert.ErrorIs(t, err, catalog.ErrNotFound)
}
