//go:build chessdebug

package board

// Built with -tags chessdebug: PieceAt panics when two masks claim a square.
const debugAssertions = true
