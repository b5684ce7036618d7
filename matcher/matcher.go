package matcher

// Matches reports whether s is accepted by the regex rooted at node, via a
// naive backtracking search with no memoization: every operator tries every
// way of consuming its share of s, in continuation-passing style, until one
// way reaches the end of the string.
func Matches(node *Node, s string) bool {
	return match(node, s, func(rest string) bool { return rest == "" })
}

// match tries to consume a prefix of s as node, calling k on whatever is
// left over; it succeeds if some consumption leads k to succeed.
func match(node *Node, s string, k func(string) bool) bool {
	switch node.Kind {
	case KindEps:
		return k(s)

	case KindLit:
		if len(s) > 0 && s[0] == node.Char {
			return k(s[1:])
		}
		return false

	case KindQuestion:
		if match(node.Left, s, k) {
			return true
		}
		return k(s)

	case KindStar:
		return matchStar(node.Left, s, k)

	case KindConcat:
		return match(node.Left, s, func(rest string) bool {
			return match(node.Right, rest, k)
		})

	case KindOr:
		return match(node.Left, s, k) || match(node.Right, s, k)

	case KindAnd:
		return matchAnd(node, s, k)
	}
	return false
}

// matchStar tries zero repetitions first, then one-or-more by matching node
// once and recursing — guarding against node matching the empty string,
// which would otherwise loop forever.
func matchStar(node *Node, s string, k func(string) bool) bool {
	if k(s) {
		return true
	}
	return match(node, s, func(rest string) bool {
		if len(rest) == len(s) {
			return false
		}
		return matchStar(node, rest, k)
	})
}

func fullMatch(node *Node, s string) bool {
	return match(node, s, func(rest string) bool { return rest == "" })
}

// matchAnd handles intersection: node.Left and node.Right must each fully
// accept the same prefix of s before the continuation runs on the
// remainder. Every split point is tried, since nothing bounds how long that
// shared prefix is.
func matchAnd(node *Node, s string, k func(string) bool) bool {
	for i := 0; i <= len(s); i++ {
		if fullMatch(node.Left, s[:i]) && fullMatch(node.Right, s[:i]) {
			if k(s[i:]) {
				return true
			}
		}
	}
	return false
}
