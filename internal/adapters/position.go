package adapters

import (
	"fmt"
	"os"
	"strconv"

	"go.uber.org/zap"
	"gopkg.in/yaml.v3"

	"semeai_engine/internal/bootstrap"
	"semeai_engine/internal/domain/board"
	"semeai_engine/internal/domain/sgf"
	"semeai_engine/internal/errors"
	repo "semeai_engine/internal/repository"
)

// Annotation carries what an SGF file cannot: dragon membership and the
// verdicts of the collaborators that normally run before the semeai code.
type Annotation struct {
	BoardSize int                `yaml:"board_size"`
	ToMove    string             `yaml:"to_move"`
	Dragons   []DragonAnnotation `yaml:"dragons"`
	Owl       OwlAnnotation      `yaml:"owl"`
}

type DragonAnnotation struct {
	At            string   `yaml:"at"`
	Merge         []string `yaml:"merge"`
	MatcherStatus string   `yaml:"matcher_status"`
	OwlStatus     string   `yaml:"owl_status"`
	OwlAttack     string   `yaml:"owl_attack"`
	OwlDefense    string   `yaml:"owl_defense"`
	Genus         int      `yaml:"genus"`
	HalfEye       string   `yaml:"half_eye"`
	Safety        string   `yaml:"safety"`
	Inessential   bool     `yaml:"inessential"`
}

type OwlAnnotation struct {
	Defends     []OwlFact       `yaml:"defends"`
	Attacks     []OwlFact       `yaml:"attacks"`
	Substantial map[string]bool `yaml:"substantial"`
}

type OwlFact struct {
	Move   string `yaml:"move"`
	Dragon string `yaml:"dragon"`
}

// Position is a loaded position with its collaborators ready for analysis.
type Position struct {
	Name    string
	ToMove  board.Color
	Board   *repo.BoardRepository
	Owl     *repo.OwlRepository
	Reasons *repo.MoveReasonRepository
}

type AdapterPosition struct {
	cfg *bootstrap.Config
	log *zap.SugaredLogger
}

func NewAdapterPosition(cfg *bootstrap.Config, log *zap.SugaredLogger) *AdapterPosition {
	return &AdapterPosition{
		cfg: cfg,
		log: log,
	}
}

// Load reads the SGF at sgfPath and, when annotationPath is not empty, the
// YAML annotation for it.
func (a *AdapterPosition) Load(sgfPath, annotationPath string) (*Position, error) {
	src, err := os.ReadFile(sgfPath)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", sgfPath, err)
	}
	var ann Annotation
	if annotationPath != "" {
		raw, err := os.ReadFile(annotationPath)
		if err != nil {
			return nil, fmt.Errorf("reading %s: %w", annotationPath, err)
		}
		if ann, err = ParseAnnotation(raw); err != nil {
			return nil, err
		}
	}
	pos, err := a.FromSGF(string(src), ann)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", sgfPath, err)
	}
	pos.Name = sgfPath
	return pos, nil
}

func ParseAnnotation(raw []byte) (Annotation, error) {
	var ann Annotation
	if err := yaml.Unmarshal(raw, &ann); err != nil {
		return Annotation{}, fmt.Errorf("%w: %v", errors.ErrAnnotation, err)
	}
	return ann, nil
}

// FromSGF plays out the main line of src, examines the final position and
// applies ann to it.
func (a *AdapterPosition) FromSGF(src string, ann Annotation) (*Position, error) {
	tree, err := sgf.Parse(src)
	if err != nil {
		return nil, err
	}
	nodes := tree.MainLine()

	size := a.cfg.BoardSize
	if ann.BoardSize != 0 {
		size = ann.BoardSize
	}
	if sz := nodes[0].Get("SZ"); sz != "" {
		if size, err = strconv.Atoi(sz); err != nil {
			return nil, fmt.Errorf("%w: SZ[%s]", errors.ErrMalformedSGF, sz)
		}
	}

	b, err := repo.NewBoardRepository(size, *a.cfg, a.log)
	if err != nil {
		return nil, err
	}
	toMove := board.Black
	for _, node := range nodes {
		if err := a.applyNode(b, node, &toMove); err != nil {
			return nil, err
		}
	}
	if err := b.Examine(); err != nil {
		return nil, err
	}

	pos := &Position{
		ToMove:  toMove,
		Board:   b,
		Owl:     repo.NewOwlRepository(b),
		Reasons: repo.NewMoveReasonRepository(),
	}
	if err := a.annotate(pos, ann); err != nil {
		return nil, err
	}
	return pos, nil
}

func (a *AdapterPosition) applyNode(b *repo.BoardRepository, node sgf.Node, toMove *board.Color) error {
	size := b.BoardSize()
	for _, setup := range []struct {
		key   string
		color board.Color
	}{{"AB", board.Black}, {"AW", board.White}, {"AE", board.Empty}} {
		for _, v := range node.Properties[setup.key] {
			p, err := board.ParseSGFPoint(v, size)
			if err != nil {
				return err
			}
			if setup.color == board.Empty {
				err = b.Clear(p)
			} else {
				err = b.Setup(p, setup.color)
			}
			if err != nil {
				return err
			}
		}
	}
	for _, move := range []struct {
		key   string
		color board.Color
	}{{"B", board.Black}, {"W", board.White}} {
		for _, v := range node.Properties[move.key] {
			p, err := board.ParseSGFPoint(v, size)
			if err != nil {
				return err
			}
			if err := b.Play(p, move.color); err != nil {
				return err
			}
			*toMove = move.color.Other()
		}
	}
	if pl := node.Get("PL"); pl != "" {
		c, err := board.ParseColor(pl)
		if err != nil {
			return err
		}
		*toMove = c
	}
	return nil
}

func (a *AdapterPosition) annotate(pos *Position, ann Annotation) error {
	b := pos.Board
	size := b.BoardSize()
	vertex := func(s string) (board.Pos, error) {
		if s == "" {
			return board.NoMove, nil
		}
		return board.ParseVertex(s, size)
	}

	if ann.ToMove != "" {
		c, err := board.ParseColor(ann.ToMove)
		if err != nil {
			return err
		}
		pos.ToMove = c
	}

	for _, da := range ann.Dragons {
		at, err := vertex(da.At)
		if err != nil {
			return err
		}
		for _, m := range da.Merge {
			other, err := vertex(m)
			if err != nil {
				return err
			}
			if err := b.MergeDragons(at, other); err != nil {
				return err
			}
		}
	}

	for _, da := range ann.Dragons {
		at, err := vertex(da.At)
		if err != nil {
			return err
		}
		d := b.Dragon(at)
		if d == nil {
			return fmt.Errorf("%w: %s", errors.ErrUnknownDragon, da.At)
		}
		if d.MatcherStatus, err = board.ParseStatus(da.MatcherStatus); err != nil {
			return err
		}
		if d.OwlStatus, err = board.ParseStatus(da.OwlStatus); err != nil {
			return err
		}
		if d.OwlAttackPoint, err = vertex(da.OwlAttack); err != nil {
			return err
		}
		if d.OwlDefensePoint, err = vertex(da.OwlDefense); err != nil {
			return err
		}
		if d.Heye, err = vertex(da.HalfEye); err != nil {
			return err
		}
		if d.Heye != board.NoMove {
			d.Heyes = 1
		}
		if d.Safety, err = board.ParseSafety(da.Safety); err != nil {
			return err
		}
		if da.Genus < 0 {
			return fmt.Errorf("%w: negative genus at %s", errors.ErrAnnotation, da.At)
		}
		d.Genus = da.Genus
		if da.Inessential {
			b.Worm(d.Origin).Inessential = true
		}
	}

	for _, facts := range []struct {
		list []OwlFact
		set  func(move, dragon board.Pos)
	}{{ann.Owl.Defends, pos.Owl.SetDefends}, {ann.Owl.Attacks, pos.Owl.SetAttacks}} {
		for _, f := range facts.list {
			move, err := vertex(f.Move)
			if err != nil {
				return err
			}
			dragon, err := vertex(f.Dragon)
			if err != nil {
				return err
			}
			facts.set(move, dragon)
		}
	}
	for at, v := range ann.Owl.Substantial {
		p, err := vertex(at)
		if err != nil {
			return err
		}
		pos.Owl.SetSubstantial(p, v)
	}
	return nil
}
