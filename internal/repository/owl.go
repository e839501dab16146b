package repo

import "semeai_engine/internal/domain/board"

type owlFact struct {
	move   board.Pos
	dragon board.Pos
}

// OwlRepository answers owl questions from facts supplied by the caller,
// typically from an annotation file. Dragons are keyed by their origin so
// any stone of the dragon can be used to state or query a fact.
type OwlRepository struct {
	board       *BoardRepository
	defends     map[owlFact]bool
	attacks     map[owlFact]bool
	substantial map[board.Pos]bool
}

func NewOwlRepository(b *BoardRepository) *OwlRepository {
	return &OwlRepository{
		board:       b,
		defends:     make(map[owlFact]bool),
		attacks:     make(map[owlFact]bool),
		substantial: make(map[board.Pos]bool),
	}
}

func (o *OwlRepository) dragonOrigin(pos board.Pos) board.Pos {
	if d := o.board.Dragon(pos); d != nil {
		return d.Origin
	}
	return pos
}

func (o *OwlRepository) SetDefends(move, dragon board.Pos) {
	o.defends[owlFact{move, o.dragonOrigin(dragon)}] = true
}

func (o *OwlRepository) SetAttacks(move, dragon board.Pos) {
	o.attacks[owlFact{move, o.dragonOrigin(dragon)}] = true
}

func (o *OwlRepository) SetSubstantial(worm board.Pos, substantial bool) {
	if w := o.board.Worm(worm); w != nil {
		worm = w.Origin
	}
	o.substantial[worm] = substantial
}

func (o *OwlRepository) DoesDefend(move, dragon board.Pos) bool {
	return o.defends[owlFact{move, o.dragonOrigin(dragon)}]
}

func (o *OwlRepository) DoesAttack(move, dragon board.Pos) bool {
	return o.attacks[owlFact{move, o.dragonOrigin(dragon)}]
}

// Substantial reports whether capturing the worm matters for the life of its
// surroundings. Like the other owl answers it is false unless stated.
func (o *OwlRepository) Substantial(worm board.Pos) bool {
	w := o.board.Worm(worm)
	if w == nil {
		return false
	}
	return o.substantial[w.Origin]
}
