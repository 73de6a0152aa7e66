package recap

import (
	"sort"
)

// TicksPerMinute converts Jellyfin run time ticks (100 nanoseconds
// each) to minutes.
const TicksPerMinute = 600_000_000

// Song is a ranked entry in a user's top-songs list.
type Song struct {
	ItemID string
	Name   string
	Artist string // Album artist, for display
	Plays  int
}

// Artist is a ranked entry in a user's top-artists list.
type Artist struct {
	Name  string
	Plays int
}

// UserReport holds one user's aggregated listening statistics.
type UserReport struct {
	UserID          string
	UserName        string
	TotalPlays      int
	MinutesListened float64
	TopSongs        []Song
	TopArtists      []Artist
}

// Build aggregates a snapshot into per-user reports.
//
// Every user in the snapshot gets a report, including users with zero
// recorded plays (their totals are zero and their top lists empty).
// Ordering is deterministic: reports are sorted by user name, and top
// lists break play-count ties by name, so identical snapshots always
// produce identical output.
func Build(snap *Snapshot, topSongs, topArtists int) []UserReport {
	reports := make([]UserReport, 0, len(snap.Users))

	for _, user := range snap.Users {
		report := UserReport{
			UserID:   user.ID,
			UserName: user.Name,
		}

		artistPlays := make(map[string]int)

		for _, item := range snap.Items {
			count := snap.PlayCount(user.ID, item.ID)
			if count == 0 {
				continue
			}

			report.TotalPlays += count
			report.MinutesListened += float64(item.RunTimeTicks) / TicksPerMinute * float64(count)

			report.TopSongs = append(report.TopSongs, Song{
				ItemID: item.ID,
				Name:   item.Name,
				Artist: item.AlbumArtist,
				Plays:  count,
			})

			for _, artist := range item.Artists {
				artistPlays[artist] += count
			}
		}

		sort.Slice(report.TopSongs, func(i, j int) bool {
			a, b := report.TopSongs[i], report.TopSongs[j]
			if a.Plays != b.Plays {
				return a.Plays > b.Plays
			}
			return a.Name < b.Name
		})
		if len(report.TopSongs) > topSongs {
			report.TopSongs = report.TopSongs[:topSongs]
		}

		report.TopArtists = rankArtists(artistPlays, topArtists)

		reports = append(reports, report)
	}

	sort.Slice(reports, func(i, j int) bool {
		return reports[i].UserName < reports[j].UserName
	})

	return reports
}

// rankArtists sorts aggregated artist plays into a bounded top list.
func rankArtists(plays map[string]int, limit int) []Artist {
	artists := make([]Artist, 0, len(plays))
	for name, count := range plays {
		artists = append(artists, Artist{Name: name, Plays: count})
	}

	sort.Slice(artists, func(i, j int) bool {
		if artists[i].Plays != artists[j].Plays {
			return artists[i].Plays > artists[j].Plays
		}
		return artists[i].Name < artists[j].Name
	})

	if len(artists) > limit {
		artists = artists[:limit]
	}
	return artists
}
