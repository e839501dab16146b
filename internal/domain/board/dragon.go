package board

// Worm is a maximal connected set of same-coloured stones.
type Worm struct {
	Origin      Pos
	Color       Color
	Size        int
	Liberties   int
	Inessential bool

	AttackCode   Code
	AttackPoint  Pos
	DefenseCode  Code
	DefensePoint Pos
}

// Dragon is a strategically connected cluster of worms. The semeai code reads
// most fields and writes MatcherStatus, Safety, Semeai and, in two guarded
// cases, OwlStatus.
type Dragon struct {
	Origin Pos
	Color  Color

	MatcherStatus   Status
	OwlStatus       Status
	OwlAttackPoint  Pos
	OwlDefensePoint Pos

	Safety Safety
	Genus  int
	Heyes  int
	Heye   Pos
	Semeai bool

	// Neighbors holds the origins of adjacent dragons of the other colour.
	Neighbors []Pos
}
