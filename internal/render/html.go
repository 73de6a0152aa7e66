package render

import (
	"context"
	"fmt"
	"html/template"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/jfmyers9/jellywrapped/internal/recap"
	"github.com/rs/zerolog"
)

// ImageFetcher downloads an item's primary image. The Jellyfin
// client's image service satisfies this.
type ImageFetcher interface {
	Primary(ctx context.Context, itemID string, w io.Writer) error
}

// HTMLRenderer writes per-user wrapped cards into an output directory,
// downloading each user's top-song cover into an assets subdirectory.
type HTMLRenderer struct {
	OutputDir string
	Images    ImageFetcher // Optional: nil skips cover downloads
	Logger    zerolog.Logger
}

// cardData is the template context for a single wrapped card.
type cardData struct {
	UserName        string
	ImagePath       string
	MinutesListened float64
	Rows            []cardRow
}

type cardRow struct {
	Rank   int
	Artist string
	Song   string
}

var cardTemplate = template.Must(template.New("card").Parse(`<!DOCTYPE html>
<html>

<head>
  <meta charset="UTF-8">
  <meta name="viewport" content="width=device-width, initial-scale=1.0">
  <title>{{.UserName}} — Jellyfin Wrapped</title>
  <style>
    #content {
      width: 500px;
      height: 700px;
      background-color: purple;
      border-radius: 20px;
      margin: auto;
      padding: 25px;
      text-align: center;
      color: white;
      font-family: system-ui, -apple-system, BlinkMacSystemFont, 'Segoe UI', Roboto, Oxygen, Ubuntu, Cantarell, 'Open Sans', 'Helvetica Neue', sans-serif;
    }

    #main_image {
      width: 50%;
      display: inline-block;
    }

    #main_table {
      margin: auto;
      text-align: left;
      width: 100%;
    }

    td {
      font-weight: 700;
    }

    th {
      font-weight: normal;
    }
  </style>
</head>

<body>
  <div id="content">
    <h1>Jellyfin Wrapped</h1>
{{- if .ImagePath}}
    <img src="{{.ImagePath}}" id="main_image">
{{- end}}
    <table id="main_table">
      <tr>
        <th>Top Artists</th>
        <th>Top Songs</th>
      </tr>
{{- range .Rows}}
      <tr>
        <td>{{.Rank}}. {{.Artist}}</td>
        <td>{{.Rank}}. {{.Song}}</td>
      </tr>
{{- end}}
    </table>
    <p id="minutes_listened">Minutes Listened: {{printf "%.0f" .MinutesListened}}</p>
  </div>
</body>

</html>
`))

// Render writes one wrapped card per user plus downloaded cover art.
//
// A failed cover download is logged and the card renders without the
// image; any other failure aborts the render.
func (r *HTMLRenderer) Render(ctx context.Context, reports []recap.UserReport) error {
	assetsDir := filepath.Join(r.OutputDir, "assets")
	if err := os.MkdirAll(assetsDir, 0755); err != nil {
		return fmt.Errorf("failed to create output directory: %w", err)
	}

	for _, report := range reports {
		imagePath := r.fetchCover(ctx, report, assetsDir)

		data := cardData{
			UserName:        report.UserName,
			ImagePath:       imagePath,
			MinutesListened: report.MinutesListened,
			Rows:            buildRows(report),
		}

		outPath := filepath.Join(r.OutputDir, sanitizeFilename(report.UserName)+"_wrapped.html")
		if err := r.writeCard(outPath, data); err != nil {
			return err
		}

		r.Logger.Info().Str("user", report.UserName).Str("path", outPath).Msg("Wrote wrapped card")
	}

	return nil
}

// fetchCover downloads the cover of the user's top song and returns
// the relative path to embed, or "" if there is nothing to embed.
func (r *HTMLRenderer) fetchCover(ctx context.Context, report recap.UserReport, assetsDir string) string {
	if r.Images == nil || len(report.TopSongs) == 0 {
		return ""
	}

	itemID := report.TopSongs[0].ItemID
	assetPath := filepath.Join(assetsDir, itemID)

	f, err := os.Create(assetPath)
	if err != nil {
		r.Logger.Warn().Err(err).Str("item", itemID).Msg("Failed to create cover file")
		return ""
	}

	if err := r.Images.Primary(ctx, itemID, f); err != nil {
		_ = f.Close()
		_ = os.Remove(assetPath)
		r.Logger.Warn().Err(err).Str("item", itemID).Msg("Failed to download cover")
		return ""
	}

	if err := f.Close(); err != nil {
		r.Logger.Warn().Err(err).Str("item", itemID).Msg("Failed to write cover file")
		return ""
	}

	return "./assets/" + itemID
}

func (r *HTMLRenderer) writeCard(path string, data cardData) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create card file: %w", err)
	}

	if err := cardTemplate.Execute(f, data); err != nil {
		_ = f.Close()
		return fmt.Errorf("failed to render card: %w", err)
	}

	return f.Close()
}

// buildRows zips the top-artist and top-song lists into table rows.
// The lists can have different lengths; missing cells stay blank.
func buildRows(report recap.UserReport) []cardRow {
	rows := len(report.TopArtists)
	if len(report.TopSongs) > rows {
		rows = len(report.TopSongs)
	}

	out := make([]cardRow, 0, rows)
	for i := 0; i < rows; i++ {
		row := cardRow{Rank: i + 1}
		if i < len(report.TopArtists) {
			row.Artist = report.TopArtists[i].Name
		}
		if i < len(report.TopSongs) {
			row.Song = report.TopSongs[i].Name
		}
		out = append(out, row)
	}
	return out
}

// sanitizeFilename strips characters that would break a filename.
func sanitizeFilename(name string) string {
	replacer := strings.NewReplacer("/", "_", "\\", "_", ":", "_", "..", "_")
	cleaned := replacer.Replace(name)
	if cleaned == "" {
		return "user"
	}
	return cleaned
}
