package ddsynth

import (
	"github.com/kegliz/syrecgo/cube"
	"github.com/kegliz/syrecgo/dd"
)

// buildControlledNot constructs the permutation diagram of a single
// multi-control NOT over n variables: identity everywhere except that
// targetVar's line flips wherever every non-don't-care position of
// pattern (indexed the same way as a diagram level, MSB first) matches
// the input. pattern's entry at targetVar's own position is ignored.
//
// Levels above targetVar haven't reached the target's own diag/off-diag
// decision yet, so a mismatch there can only mean "give up, identity
// from here on including through the target" (straight) while a match
// defers the decision further down (cont) - both are still full
// diagrams over every remaining level, including the target's own.
// Once the recursion reaches targetVar, the target's own routing is
// fixed (diagonal children go to whatever the remaining lower levels
// say when they DON'T match the lower part of pattern, off-diagonal
// children go to whatever they say when they DO match) - that lower
// restriction is a different shape, built by restrictedIdentity.
func buildControlledNot(m *dd.Manager, pattern []cube.Value, targetVar, level int) dd.Edge {
	if level == 0 {
		return dd.OneTerminal
	}
	if level == targetVar {
		matchBelow := restrictedIdentity(m, pattern, level-1, true)
		mismatchBelow := restrictedIdentity(m, pattern, level-1, false)
		children := [4]dd.Edge{mismatchBelow, matchBelow, matchBelow, mismatchBelow}
		return m.MakeNode(level, children)
	}

	pos := len(pattern) - level
	cont := buildControlledNot(m, pattern, targetVar, level-1)
	straight := pureIdentity(m, level-1)

	var c0, c3 dd.Edge
	switch pattern[pos] {
	case cube.One:
		c0, c3 = straight, cont
	case cube.Zero:
		c0, c3 = cont, straight
	default:
		c0, c3 = cont, cont
	}
	children := [4]dd.Edge{c0, dd.ZeroTerminal, dd.ZeroTerminal, c3}
	return m.MakeNode(level, children)
}

// restrictedIdentity returns the identity diagram over the remaining
// level variables (the levels below targetVar, read off the tail of
// pattern), alive only on assignments that satisfy every non-don't-care
// position of that tail (wantMatch true) or that diverge from it on at
// least one position (wantMatch false, the complement).
func restrictedIdentity(m *dd.Manager, pattern []cube.Value, level int, wantMatch bool) dd.Edge {
	if level == 0 {
		if wantMatch {
			return dd.OneTerminal
		}
		return dd.ZeroTerminal
	}

	pos := len(pattern) - level
	switch pattern[pos] {
	case cube.DontCare:
		sub := restrictedIdentity(m, pattern, level-1, wantMatch)
		return m.MakeNode(level, [4]dd.Edge{sub, dd.ZeroTerminal, dd.ZeroTerminal, sub})
	case cube.Zero, cube.One:
		matching := restrictedIdentity(m, pattern, level-1, wantMatch)
		var diverged dd.Edge
		if wantMatch {
			diverged = dd.ZeroTerminal
		} else {
			diverged = pureIdentity(m, level-1)
		}
		if pattern[pos] == cube.One {
			return m.MakeNode(level, [4]dd.Edge{diverged, dd.ZeroTerminal, dd.ZeroTerminal, matching})
		}
		return m.MakeNode(level, [4]dd.Edge{matching, dd.ZeroTerminal, dd.ZeroTerminal, diverged})
	}
	return dd.ZeroTerminal
}

// pureIdentity returns the identity diagram over the remaining level
// levels: every line passes its input straight through to its output.
func pureIdentity(m *dd.Manager, level int) dd.Edge {
	if level == 0 {
		return dd.OneTerminal
	}
	rest := pureIdentity(m, level-1)
	return m.MakeNode(level, [4]dd.Edge{rest, dd.ZeroTerminal, dd.ZeroTerminal, rest})
}
