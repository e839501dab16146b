package adapters

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"semeai_engine/internal/domain/board"
	"semeai_engine/internal/domain/semeai"
	"semeai_engine/internal/domain/sgf"
)

// Export writes the position as a single-node SGF. Semeai moves are marked
// with triangles, semeai threats with squares, and the verdicts go into the
// comment.
func (a *AdapterPosition) Export(path string, pos *Position, reports []semeai.Report) error {
	out := sgf.Serialize(ExportSGF(pos, reports))
	if err := os.WriteFile(path, []byte(out), 0o644); err != nil {
		return fmt.Errorf("writing %s: %w", path, err)
	}
	a.log.Infof("exported %d semeai reports to %s", len(reports), path)
	return nil
}

func ExportSGF(pos *Position, reports []semeai.Report) *sgf.SGF {
	b := pos.Board
	size := b.BoardSize()
	props := map[string][]string{
		"FF": {"4"},
		"GM": {"1"},
		"SZ": {strconv.Itoa(size)},
		"PL": {strings.ToUpper(pos.ToMove.String()[:1])},
	}
	for i := 0; i < size; i++ {
		for j := 0; j < size; j++ {
			p := board.NewPos(i, j)
			switch b.Color(p) {
			case board.Black:
				props["AB"] = append(props["AB"], p.SGF())
			case board.White:
				props["AW"] = append(props["AW"], p.SGF())
			}
		}
	}

	marked := make(map[string]bool)
	var comment []string
	for _, r := range reports {
		comment = append(comment, fmt.Sprintf("%s vs %s: %s, %s, %s/%s margin %s",
			r.Mine.Format(size), r.Yours.Format(size), r.Resolution, r.Counts,
			r.Verdict.Mine, r.Verdict.Yours, r.Verdict.Margin))
		for _, m := range r.Moves {
			key := ""
			switch m.Kind {
			case semeai.SemeaiMove:
				key = "TR"
			case semeai.SemeaiThreat:
				key = "SQ"
			default:
				continue
			}
			if id := key + m.Move.SGF(); !marked[id] {
				marked[id] = true
				props[key] = append(props[key], m.Move.SGF())
			}
		}
	}
	if len(comment) > 0 {
		props["C"] = []string{strings.Join(comment, "\n")}
	}
	return &sgf.SGF{Root: &sgf.GameTree{Nodes: []sgf.Node{{Properties: props}}}}
}
