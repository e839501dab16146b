package semeai

import (
	"semeai_engine/internal/domain/board"
	"semeai_engine/internal/domain/semeai"
)

// Classify compares liberty counts naively to decide a race. M and Y are the
// outside liberties of each side and C the shared ones.
//
// Both sides without eyes:
//
//	C=0, M=Y       whoever moves first wins, critical
//	C=0, M>Y       I win; C=0, M<Y you win
//	C>0, M=Y+C-1   critical; if M=0 whoever moves first kills,
//	               otherwise I can kill and you can make seki
//	M<Y+C-1 and Y<M+C-1   seki
//	C>0, Y=M+C-1   mirror of M=Y+C-1
//	C>0, Y>M+C     you win
//
// Both sides with an eye (so M>0 and Y>0):
//
//	M>C+Y    I win;   Y>C+M    you win
//	C=0, M=Y          whoever moves first kills, critical
//	C>0, M=C+Y        I can kill, you can make seki
//	C>0, M<C+Y, Y<C+M seki
//	C>0, Y=C+M        you can kill, I can make seki
//
// Only one side with an eye: never seki, since the eyeless side must fill
// the shared liberties.
//
//	M>C+Y I win;  M+C=Y critical;  M+C<Y you win       (I have the eye)
//	Y+C>M you win;  Y+C=M critical                       (you have the eye)
//
// The table is not exhaustive. Combinations it does not cover return a
// verdict with both statuses Unknown.
func Classify(myGenus, yourGenus int, counts semeai.LibertyCount) semeai.Verdict {
	m, y, c := counts.Mine, counts.Yours, counts.Common
	switch {
	case myGenus == 0 && yourGenus == 0:
		return classifyEyeless(m, y, c)
	case myGenus > 0 && yourGenus > 0:
		return classifyWithEyes(m, y, c)
	case myGenus > 0:
		switch {
		case m > c+y:
			return won(m - c - y)
		case m+c == y:
			return critical(board.Critical, board.Critical)
		case m+c < y:
			return lost(y - m - c)
		}
	default:
		switch {
		case y+c > m:
			return lost(y + c - m)
		case y+c == m:
			return critical(board.Critical, board.Critical)
		}
	}
	return semeai.Verdict{}
}

func classifyEyeless(m, y, c int) semeai.Verdict {
	switch {
	case c == 0 && m > y:
		return won(m - y)
	case c == 0 && m < y:
		return lost(y - m)
	case c == 0:
		return critical(board.Critical, board.Critical)
	case m == y+c-1:
		if m == 0 {
			return critical(board.Critical, board.Critical)
		}
		return critical(board.Alive, board.Critical)
	case m < y+c-1 && y < m+c-1:
		return seki()
	case y == m+c-1:
		if y == 0 {
			return critical(board.Critical, board.Critical)
		}
		return critical(board.Critical, board.Alive)
	case y > m+c:
		return lost(y - m - c)
	}
	return semeai.Verdict{}
}

func classifyWithEyes(m, y, c int) semeai.Verdict {
	switch {
	case m > y+c:
		return won(m - y - c)
	case y > m+c:
		return lost(y - m - c)
	case c == 0 && m == y:
		return critical(board.Critical, board.Critical)
	case c > 0 && m == c+y:
		return critical(board.Alive, board.Critical)
	case c > 0 && m < c+y && y < c+m:
		return seki()
	case c > 0 && y == c+m:
		return critical(board.Critical, board.Alive)
	}
	return semeai.Verdict{}
}

func won(margin int) semeai.Verdict {
	return semeai.Verdict{Mine: board.Alive, Yours: board.Dead, Margin: semeai.Liberties(margin)}
}

func lost(margin int) semeai.Verdict {
	return semeai.Verdict{Mine: board.Dead, Yours: board.Alive, Margin: semeai.Liberties(margin)}
}

func critical(mine, yours board.Status) semeai.Verdict {
	return semeai.Verdict{Mine: mine, Yours: yours, Margin: semeai.Liberties(0)}
}

func seki() semeai.Verdict {
	return semeai.Verdict{Mine: board.Alive, Yours: board.Alive, Margin: semeai.Seki}
}
