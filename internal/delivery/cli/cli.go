package cli

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"semeai_engine/internal/adapters"
	"semeai_engine/internal/bootstrap"
	"semeai_engine/internal/domain/board"
	"semeai_engine/internal/domain/semeai"
	semeaiuc "semeai_engine/internal/usecase/semeai"
)

type SemeaiHandler struct {
	cfg       bootstrap.Config
	log       *zap.SugaredLogger
	positions *adapters.AdapterPosition
}

func NewSemeaiHandler(cfg bootstrap.Config, log *zap.SugaredLogger) *SemeaiHandler {
	return &SemeaiHandler{
		cfg:       cfg,
		log:       log,
		positions: adapters.NewAdapterPosition(&cfg, log),
	}
}

type options struct {
	annotations string
	color       string
	export      string
}

func (h *SemeaiHandler) RootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:           "semeai",
		Short:         "Analyze capturing races between adjacent dragons",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.AddCommand(h.analyzeCommand(), h.smallCommand(), h.reviseCommand())
	return root
}

func (h *SemeaiHandler) analyzeCommand() *cobra.Command {
	var opts options
	cmd := &cobra.Command{
		Use:   "analyze <position.sgf>...",
		Short: "Run the small-semeai pass and the semeai scanner",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if opts.export != "" && len(args) > 1 {
				return fmt.Errorf("--export takes a single position, got %d", len(args))
			}
			return h.batch(cmd.Context(), cmd.OutOrStdout(), args, func(w io.Writer, name string) error {
				return h.analyze(w, name, opts)
			})
		},
	}
	cmd.Flags().StringVarP(&opts.annotations, "annotations", "a", "", "YAML annotation file (defaults to <position>.yaml when present)")
	cmd.Flags().StringVarP(&opts.color, "color", "c", "", "side whose races are scanned (defaults to the side to move)")
	cmd.Flags().StringVar(&opts.export, "export", "", "write the analysed position with marked moves to this SGF file")
	return cmd
}

func (h *SemeaiHandler) smallCommand() *cobra.Command {
	var opts options
	cmd := &cobra.Command{
		Use:   "small <position.sgf>...",
		Short: "Run only the small-semeai pass and print revised attack and defense points",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return h.batch(cmd.Context(), cmd.OutOrStdout(), args, func(w io.Writer, name string) error {
				return h.small(w, name, opts)
			})
		},
	}
	cmd.Flags().StringVarP(&opts.annotations, "annotations", "a", "", "YAML annotation file")
	return cmd
}

func (h *SemeaiHandler) reviseCommand() *cobra.Command {
	var opts options
	cmd := &cobra.Command{
		Use:   "revise <position.sgf>...",
		Short: "Run the semeai scanner, then downgrade unconfirmed dead dragons",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return h.batch(cmd.Context(), cmd.OutOrStdout(), args, func(w io.Writer, name string) error {
				return h.revise(w, name, opts)
			})
		},
	}
	cmd.Flags().StringVarP(&opts.annotations, "annotations", "a", "", "YAML annotation file")
	cmd.Flags().StringVarP(&opts.color, "color", "c", "", "side whose opponent dragons are revised (defaults to the side to move)")
	return cmd
}

// batch runs fn for every position concurrently. Each position owns its own
// board, so every analysis stays single-threaded; output keeps argument order.
func (h *SemeaiHandler) batch(ctx context.Context, out io.Writer, names []string, fn func(io.Writer, string) error) error {
	if ctx == nil {
		ctx = context.Background()
	}
	buffers := make([]strings.Builder, len(names))
	g, ctx := errgroup.WithContext(ctx)
	if h.cfg.BatchWorkers > 0 {
		g.SetLimit(h.cfg.BatchWorkers)
	}
	for i, name := range names {
		i, name := i, name
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			return fn(&buffers[i], name)
		})
	}
	err := g.Wait()
	for i := range buffers {
		if _, werr := io.WriteString(out, buffers[i].String()); werr != nil && err == nil {
			err = werr
		}
	}
	return err
}

func (h *SemeaiHandler) load(name string, opts options) (*adapters.Position, *semeaiuc.SemeaiUseCase, error) {
	pos, err := h.positions.Load(name, annotationPath(name, opts.annotations))
	if err != nil {
		return nil, nil, err
	}
	log := h.log.With("position", name)
	uc := semeaiuc.NewSemeaiUseCase(pos.Board, pos.Owl, pos.Board, pos.Reasons, log)
	return pos, uc, nil
}

// annotationPath falls back to a .yaml file next to the position.
func annotationPath(name, flag string) string {
	if flag != "" {
		return flag
	}
	guess := strings.TrimSuffix(name, filepath.Ext(name)) + ".yaml"
	if _, err := os.Stat(guess); err == nil {
		return guess
	}
	return ""
}

func (h *SemeaiHandler) color(pos *adapters.Position, flag string) (board.Color, error) {
	if flag == "" {
		return pos.ToMove, nil
	}
	return board.ParseColor(flag)
}

func (h *SemeaiHandler) analyze(w io.Writer, name string, opts options) error {
	pos, uc, err := h.load(name, opts)
	if err != nil {
		return err
	}
	color, err := h.color(pos, opts.color)
	if err != nil {
		return err
	}

	uc.SmallSemeai()
	reports := uc.Semeai(color)

	fmt.Fprintf(w, "== %s (%s)\n", name, color)
	writeReports(w, pos.Board.BoardSize(), reports)
	writeReasons(w, pos.Board.BoardSize(), pos.Reasons.Reasons())

	if opts.export != "" {
		return h.positions.Export(opts.export, pos, reports)
	}
	return nil
}

func (h *SemeaiHandler) small(w io.Writer, name string, opts options) error {
	pos, uc, err := h.load(name, opts)
	if err != nil {
		return err
	}
	size := pos.Board.BoardSize()
	before := make(map[board.Pos]board.Worm)
	for _, worm := range pos.Board.Worms() {
		before[worm.Origin] = *worm
	}

	uc.SmallSemeai()

	fmt.Fprintf(w, "== %s\n", name)
	changed := 0
	for _, worm := range pos.Board.Worms() {
		old := before[worm.Origin]
		if old.AttackPoint == worm.AttackPoint && old.AttackCode == worm.AttackCode &&
			old.DefensePoint == worm.DefensePoint && old.DefenseCode == worm.DefenseCode {
			continue
		}
		changed++
		fmt.Fprintf(w, "%s: attack %s(%s) -> %s(%s), defense %s(%s) -> %s(%s)\n",
			worm.Origin.Format(size),
			old.AttackPoint.Format(size), old.AttackCode, worm.AttackPoint.Format(size), worm.AttackCode,
			old.DefensePoint.Format(size), old.DefenseCode, worm.DefensePoint.Format(size), worm.DefenseCode)
	}
	if changed == 0 {
		fmt.Fprintln(w, "no revisions")
	}
	return nil
}

func (h *SemeaiHandler) revise(w io.Writer, name string, opts options) error {
	pos, uc, err := h.load(name, opts)
	if err != nil {
		return err
	}
	color, err := h.color(pos, opts.color)
	if err != nil {
		return err
	}
	size := pos.Board.BoardSize()

	uc.Semeai(color)
	dead := make(map[board.Pos]bool)
	for _, d := range pos.Board.Dragons() {
		if d.Semeai && d.MatcherStatus == board.Dead && d.Color == color.Other() {
			dead[d.Origin] = true
		}
	}

	fmt.Fprintf(w, "== %s (%s)\n", name, color)
	if !uc.ReviseSemeai(color) {
		fmt.Fprintln(w, "no dragons revised")
		return nil
	}
	for _, d := range pos.Board.Dragons() {
		if dead[d.Origin] {
			fmt.Fprintf(w, "%s: dead -> %s\n", d.Origin.Format(size), d.MatcherStatus)
		}
	}
	return nil
}

func writeReports(w io.Writer, size int, reports []semeai.Report) {
	if len(reports) == 0 {
		fmt.Fprintln(w, "no semeai found")
		return
	}
	for _, r := range reports {
		fmt.Fprintf(w, "%s vs %s: %s", r.Mine.Format(size), r.Yours.Format(size), r.Resolution)
		if r.Resolution == semeai.Classified {
			fmt.Fprintf(w, " %s mine=%s yours=%s margin=%s",
				r.Counts, r.Verdict.Mine, r.Verdict.Yours, r.Verdict.Margin)
		}
		fmt.Fprintln(w)
	}
}

func writeReasons(w io.Writer, size int, reasons []semeai.MoveReason) {
	for _, r := range reasons {
		fmt.Fprintf(w, "  %s %s for %s\n", r.Kind, r.Move.Format(size), r.Dragon.Format(size))
	}
}
