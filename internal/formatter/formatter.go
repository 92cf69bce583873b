// package formatter renders artist records and quiz history for terminal
// display and exports discovery results to CSV, Markdown, and plain text.
package formatter

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"

	"tunetutor/internal/models"
	"tunetutor/internal/shared"
)

// ArtistTable renders artist records as a rounded terminal table.
func ArtistTable(artists []models.ArtistRecord) string {
	tw := table.NewWriter()
	tw.SetStyle(table.StyleRounded)
	tw.AppendHeader(table.Row{"#", "Name", "Type", "Area", "Genre", "Since"})

	for i, artist := range artists {
		tw.AppendRow(table.Row{
			i + 1,
			artist.Name,
			orDash(artist.Type),
			orDash(artist.Area),
			orDash(artist.Genre),
			orDash(artist.ActiveSince),
		})
	}

	tw.SetColumnConfigs([]table.ColumnConfig{
		{Number: 1, Align: text.AlignRight, AlignHeader: text.AlignLeft},
	})

	return tw.Render()
}

// ResultsTable renders quiz history as a rounded terminal table, newest first.
func ResultsTable(results []*models.QuizResult) string {
	tw := table.NewWriter()
	tw.SetStyle(table.StyleRounded)
	tw.AppendHeader(table.Row{"Run", "Score", "Percent", "Title", "Date"})

	for _, result := range results {
		tw.AppendRow(table.Row{
			result.Sequence(),
			fmt.Sprintf("%d/%d", result.Score(), result.Total()),
			fmt.Sprintf("%d%%", result.Percentage()),
			result.Title(),
			result.CreatedAt().Format("2006-01-02 15:04"),
		})
	}

	tw.SetColumnConfigs([]table.ColumnConfig{
		{Number: 1, Align: text.AlignRight, AlignHeader: text.AlignLeft},
		{Number: 3, Align: text.AlignRight, AlignHeader: text.AlignLeft},
	})

	return tw.Render()
}

// ExportToCSV converts artist records to CSV with columns: Name, Type, Area, Genre, Since, Profile
func ExportToCSV(artists []models.ArtistRecord) ([]byte, error) {
	var buf bytes.Buffer
	writer := csv.NewWriter(&buf)

	headers := []string{"Name", "Type", "Area", "Genre", "Since", "Score", "Profile"}
	if err := writer.Write(headers); err != nil {
		return nil, fmt.Errorf("failed to write CSV headers: %w", err)
	}

	for _, artist := range artists {
		record := []string{
			artist.Name,
			artist.Type,
			artist.Area,
			artist.Genre,
			artist.ActiveSince,
			strconv.Itoa(artist.Score),
			artist.ProfileURL,
		}
		if err := writer.Write(record); err != nil {
			return nil, fmt.Errorf("failed to write CSV record: %w", err)
		}
	}

	writer.Flush()
	if err := writer.Error(); err != nil {
		return nil, fmt.Errorf("CSV writer error: %w", err)
	}

	return buf.Bytes(), nil
}

// ExportToMarkdown converts artist records to a Markdown listing.
func ExportToMarkdown(artists []models.ArtistRecord, title string) ([]byte, error) {
	var buf bytes.Buffer

	if title == "" {
		title = "Discovered Artists"
	}
	buf.WriteString(fmt.Sprintf("# %s\n\n", title))
	buf.WriteString(fmt.Sprintf("**Artists**: %d\n\n", len(artists)))

	for i, artist := range artists {
		buf.WriteString(fmt.Sprintf("%d. **%s**", i+1, artist.Name))
		if artist.Genre != "" {
			buf.WriteString(fmt.Sprintf(" — %s", artist.Genre))
		}
		if artist.Area != "" {
			buf.WriteString(fmt.Sprintf(" (%s)", artist.Area))
		}
		buf.WriteString("\n")
		if artist.Disambiguation != "" {
			buf.WriteString(fmt.Sprintf("   - %s\n", artist.Disambiguation))
		}
		if artist.ProfileURL != "" {
			buf.WriteString(fmt.Sprintf("   - [Profile](%s)\n", artist.ProfileURL))
		}
	}

	return buf.Bytes(), nil
}

// ExportToText converts artist records to plain text.
func ExportToText(artists []models.ArtistRecord) ([]byte, error) {
	var buf bytes.Buffer

	buf.WriteString(fmt.Sprintf("Artists: %d\n\n", len(artists)))
	for i, artist := range artists {
		buf.WriteString(fmt.Sprintf("%d. %s", i+1, artist.Name))
		if artist.Genre != "" {
			buf.WriteString(fmt.Sprintf(" - %s", artist.Genre))
		}
		buf.WriteString("\n")
	}

	return buf.Bytes(), nil
}

// ToJSON generates a JSON representation of artist records.
func ToJSON(artists []models.ArtistRecord) ([]byte, error) {
	return shared.MarshalJSON(artists, true)
}

// WriteExport writes artist records to outputDir in the given format
// (csv, md/markdown, txt, json). Returns the path of the written file.
func WriteExport(artists []models.ArtistRecord, format, outputDir string) (string, error) {
	if err := os.MkdirAll(outputDir, 0755); err != nil {
		return "", fmt.Errorf("failed to create output directory: %w", err)
	}

	var (
		data []byte
		name string
		err  error
	)

	switch format {
	case "csv":
		name = "artists.csv"
		data, err = ExportToCSV(artists)
	case "md", "markdown":
		name = "artists.md"
		data, err = ExportToMarkdown(artists, "")
	case "txt":
		name = "artists.txt"
		data, err = ExportToText(artists)
	case "json", "":
		name = "artists.json"
		data, err = ToJSON(artists)
	default:
		return "", fmt.Errorf("%w: unknown export format %q", shared.ErrInvalidFlag, format)
	}
	if err != nil {
		return "", fmt.Errorf("failed to generate %s export: %w", format, err)
	}

	path := filepath.Join(outputDir, name)
	if err := os.WriteFile(path, data, 0644); err != nil {
		return "", fmt.Errorf("failed to write export file: %w", err)
	}

	return path, nil
}

func orDash(s string) string {
	if s == "" {
		return "-"
	}
	return s
}
