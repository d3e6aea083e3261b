package regexautomata

// Sub returns a copy of text with every non-overlapping match replaced by
// repl, after expanding repl's `\g<...>`/`\N`/escape references against
// each match (see Match.Expand).
func (re *Regexp) Sub(repl, text string) string {
	out, _ := re.SubN(repl, text, -1)
	return out
}

// SubFunc returns a copy of text with every non-overlapping match replaced
// by the string fn returns for that match.
func (re *Regexp) SubFunc(fn func(*Match) string, text string) string {
	out, _ := re.subnFunc(fn, text, -1)
	return out
}

// SubN is Sub, but replaces at most count matches (all of them if count is
// negative). It also returns the number of replacements made.
func (re *Regexp) SubN(repl, text string, count int) (string, int) {
	return re.subnFunc(func(m *Match) string { return m.Expand(repl) }, text, count)
}

func (re *Regexp) subnFunc(fn func(*Match) string, text string, count int) (string, int) {
	matches := re.FindAll(text)

	var b []byte
	last := 0
	replaced := 0
	for _, m := range matches {
		if count >= 0 && replaced >= count {
			break
		}
		b = append(b, text[last:m.Start(0)]...)
		b = append(b, fn(m)...)
		last = m.End(0)
		replaced++
	}
	b = append(b, text[last:]...)
	return string(b), replaced
}
