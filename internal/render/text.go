package render

import (
	"fmt"
	"io"
	"strings"

	"github.com/jfmyers9/jellywrapped/internal/recap"
	"github.com/mattn/go-runewidth"
)

const artistColumnWidth = 28

// WriteText renders reports as a plain-text summary.
//
// Output is fully determined by the reports: the same input always
// produces the same bytes.
func WriteText(w io.Writer, reports []recap.UserReport) error {
	for i, report := range reports {
		if i > 0 {
			if _, err := fmt.Fprintln(w); err != nil {
				return err
			}
		}
		if err := writeUser(w, report); err != nil {
			return err
		}
	}
	return nil
}

func writeUser(w io.Writer, report recap.UserReport) error {
	header := fmt.Sprintf("=== %s ===", report.UserName)
	if _, err := fmt.Fprintln(w, header); err != nil {
		return err
	}

	if _, err := fmt.Fprintf(w, "Total plays:      %d\n", report.TotalPlays); err != nil {
		return err
	}
	if _, err := fmt.Fprintf(w, "Minutes listened: %.0f\n", report.MinutesListened); err != nil {
		return err
	}

	if report.TotalPlays == 0 {
		_, err := fmt.Fprintln(w, "No plays recorded.")
		return err
	}

	if _, err := fmt.Fprintln(w); err != nil {
		return err
	}

	columns := fmt.Sprintf("   %s %s", padToWidth("Top Artists", artistColumnWidth), "Top Songs")
	if _, err := fmt.Fprintln(w, columns); err != nil {
		return err
	}

	rows := len(report.TopArtists)
	if len(report.TopSongs) > rows {
		rows = len(report.TopSongs)
	}

	for i := 0; i < rows; i++ {
		var artist, song string
		if i < len(report.TopArtists) {
			artist = fmt.Sprintf("%s (%d)", report.TopArtists[i].Name, report.TopArtists[i].Plays)
		}
		if i < len(report.TopSongs) {
			song = fmt.Sprintf("%s (%d)", report.TopSongs[i].Name, report.TopSongs[i].Plays)
		}

		line := fmt.Sprintf("%2d. %s %s", i+1, padToWidth(artist, artistColumnWidth), song)
		if _, err := fmt.Fprintln(w, strings.TrimRight(line, " ")); err != nil {
			return err
		}
	}

	return nil
}

// padToWidth pads or truncates text to a fixed display width.
// Width is measured in display columns, accounting for Unicode characters.
// If text is longer than width, truncates with "..." suffix.
func padToWidth(text string, width int) string {
	if width <= 0 {
		return text
	}

	currentWidth := runewidth.StringWidth(text)

	if currentWidth > width {
		ellipsis := "..."
		ellipsisWidth := runewidth.StringWidth(ellipsis)

		if width <= ellipsisWidth {
			return runewidth.Truncate(ellipsis, width, "")
		}

		truncated := runewidth.Truncate(text, width-ellipsisWidth, "")
		result := truncated + ellipsis

		resultWidth := runewidth.StringWidth(result)
		if resultWidth < width {
			return result + strings.Repeat(" ", width-resultWidth)
		}
		return result
	}

	if currentWidth < width {
		return text + strings.Repeat(" ", width-currentWidth)
	}

	return text
}
