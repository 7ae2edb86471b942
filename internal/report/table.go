package report

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"github.com/okian/arena/internal/domain/board"
)

const bestMarker = " ★"

// Write renders b in the requested format.
func Write(w io.Writer, b board.Board, f Format) error {
	switch f {
	case FormatText, "":
		return WriteText(w, b)
	case FormatJSON:
		return WriteJSON(w, b)
	default:
		return fmt.Errorf("%w: %q", ErrUnknownFormat, f)
	}
}

// WriteJSON writes the board as indented JSON.
func WriteJSON(w io.Writer, b board.Board) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(b)
}

// WriteText writes the board as an aligned table: one row per indicator,
// one column per house, the best value starred.
func WriteText(w io.Writer, b board.Board) error {
	if _, err := fmt.Fprintf(w, "Arena das Casas · %s\n", b.Label); err != nil {
		return err
	}
	if !b.UpdatedAt.IsZero() {
		if _, err := fmt.Fprintf(w, "Atualizado em %s\n", b.UpdatedAt.Format("2006-01-02 15:04")); err != nil {
			return err
		}
	}
	if _, err := fmt.Fprintln(w); err != nil {
		return err
	}

	tw := tabwriter.NewWriter(w, 0, 0, 3, ' ', 0)

	header := []string{"INDICADOR"}
	for _, h := range b.Houses {
		header = append(header, strings.ToUpper(houseName(h)))
	}
	writeRow(tw, header)

	for _, ind := range b.Indicators {
		row := []string{ind.Indicator.Label}
		for _, v := range ind.Values {
			cell := v.Formatted
			if v.Best {
				cell += bestMarker
			}
			row = append(row, cell)
		}
		if ind.Missing {
			row[0] += " (incompleto)"
		}
		writeRow(tw, row)
	}

	wins := []string{"DESTAQUES"}
	for _, h := range b.Houses {
		wins = append(wins, fmt.Sprint(h.Wins))
	}
	writeRow(tw, wins)

	return tw.Flush()
}

func writeRow(w io.Writer, cells []string) {
	_, _ = fmt.Fprintln(w, strings.Join(cells, "\t"))
}

func houseName(h board.HouseCard) string {
	if h.House.Name != "" {
		return h.House.Name
	}
	return string(h.Key)
}
