package main

import (
	"encoding/json"
	"fmt"
	"io"
	"strconv"
	"strings"
	"text/tabwriter"

	"github.com/vmunix/dracin/pkg/normalize"
)

func printJSON(w io.Writer, v any) {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	_ = enc.Encode(v)
}

func printDramas(w io.Writer, dramas []normalize.Drama) {
	if len(dramas) == 0 {
		fmt.Fprintln(w, "No dramas found")
		return
	}

	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "ID\tTITLE\tEPS\tSTATUS\tRATING\tGENRES")
	for _, d := range dramas {
		fmt.Fprintf(tw, "%s\t%s\t%d\t%s\t%s\t%s\n",
			d.BookID,
			truncate(d.BookName, 40),
			d.LatestEpisode,
			d.Status,
			formatRating(d.Rating),
			strings.Join(d.Genres, ", "),
		)
	}
	_ = tw.Flush()
}

func printDrama(w io.Writer, d *normalize.Drama) {
	fmt.Fprintf(w, "%s (%s)\n", d.BookName, d.BookID)
	if d.CornerLabel != "" {
		fmt.Fprintf(w, "  [%s]\n", d.CornerLabel)
	}
	fmt.Fprintf(w, "  Status:   %s\n", d.Status)
	if d.Year > 0 {
		fmt.Fprintf(w, "  Year:     %d\n", d.Year)
	}
	fmt.Fprintf(w, "  Rating:   %s\n", formatRating(d.Rating))
	fmt.Fprintf(w, "  Episodes: %d\n", d.LatestEpisode)
	if d.ViewCount != nil {
		fmt.Fprintf(w, "  Views:    %s\n", formatCount(*d.ViewCount))
	}
	if len(d.Genres) > 0 {
		fmt.Fprintf(w, "  Genres:   %s\n", strings.Join(d.Genres, ", "))
	}
	if d.Cover != "" {
		fmt.Fprintf(w, "  Cover:    %s\n", d.Cover)
	}
	if d.Introduction != "" {
		fmt.Fprintf(w, "\n%s\n", d.Introduction)
	}
}

func printEpisodes(w io.Writer, eps []normalize.Episode) {
	if len(eps) == 0 {
		fmt.Fprintln(w, "No episodes found")
		return
	}
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "#\tID\tNAME")
	for _, ep := range eps {
		fmt.Fprintf(tw, "%d\t%s\t%s\n", ep.ChapterIndex, ep.ChapterID, ep.ChapterName)
	}
	_ = tw.Flush()
}

func printQualities(w io.Writer, opts []normalize.QualityOption) {
	if len(opts) == 0 {
		fmt.Fprintln(w, "No streams found")
		return
	}
	for _, q := range opts {
		marker := " "
		if q.IsDefault {
			marker = "*"
		}
		fmt.Fprintf(w, "%s %5dp  %s\n", marker, q.Quality, q.VideoURL)
	}
}

func formatRating(r float64) string {
	if r == 0 {
		return "-"
	}
	return strconv.FormatFloat(r, 'f', 1, 64)
}

// formatCount abbreviates large counts: 1234 -> 1.2K, 2500000 -> 2.5M.
func formatCount(n int64) string {
	switch {
	case n >= 1_000_000:
		return strconv.FormatFloat(float64(n)/1_000_000, 'f', 1, 64) + "M"
	case n >= 1_000:
		return strconv.FormatFloat(float64(n)/1_000, 'f', 1, 64) + "K"
	default:
		return strconv.FormatInt(n, 10)
	}
}

func truncate(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n-3]) + "..."
}
