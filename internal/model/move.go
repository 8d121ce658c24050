package model

import "fmt"

type CastleRookMove struct {
	From Square `json:"from"`
	To   Square `json:"to"`
}

// Ply is the record of one executed move.
type Ply struct {
	Piece          Piece           `json:"piece"`
	From           Square          `json:"from"`
	To             Square          `json:"to"`
	CapturedPiece  *Piece          `json:"capturedPiece"`
	CastleRookMove *CastleRookMove `json:"castleRookMove"`
	Promotion      PieceType       `json:"promotion,omitempty"`
	Notation       string          `json:"notation"`
}

// SimpleMove is a bare from/to pair.
type SimpleMove struct {
	From Square `json:"from"`
	To   Square `json:"to"`
}

func (m SimpleMove) String() string {
	return fmt.Sprintf("%s-%s", m.From, m.To)
}

// getNotation renders from-to in SAN as played on l, before the move is
// applied. The check or mate suffix is added by the caller.
func (l *Layout) getNotation(from, to Square) string {
	piece := l.At(from)
	if piece.Type == King {
		if side, ok := castleSideFor(piece.Colour, from, to); ok {
			return side.notation
		}
	}
	pieceNotationPrefix := piece.Type.getPieceNotation()
	pieceNotationCapture := ""
	if !l.At(to).IsEmpty() {
		pieceNotationCapture = "x"
	}
	pawnFileSpecifier := ""
	if piece.Type == Pawn && from.File() != to.File() {
		pawnFileSpecifier = from.getFileNotation()
	}
	disambiguation := ""
	if piece.Type != Pawn && piece.Type != King {
		disambiguation = l.disambiguate(piece, from, to)
	}
	promotion := ""
	if piece.Type == Pawn && to.Rank() == piece.Colour.promotionRank() {
		promotion = "=" + Queen.Letter()
	}
	return fmt.Sprintf("%s%s%s%s%s%s", pieceNotationPrefix, disambiguation, pawnFileSpecifier, pieceNotationCapture, to, promotion)
}

// disambiguate returns the file, rank or full square of from when another
// piece of the same kind could also legally reach to.
func (l *Layout) disambiguate(piece Piece, from, to Square) string {
	sameFile, sameRank, rivals := false, false, false
	for sq := Square(0); sq < NumSquares; sq++ {
		if sq == from || l.At(sq) != piece || !l.LegalMoves(sq).Has(to) {
			continue
		}
		rivals = true
		if sq.File() == from.File() {
			sameFile = true
		}
		if sq.Rank() == from.Rank() {
			sameRank = true
		}
	}
	switch {
	case !rivals:
		return ""
	case !sameFile:
		return from.getFileNotation()
	case !sameRank:
		return fmt.Sprintf("%d", 8-from.Rank())
	}
	return from.String()
}
