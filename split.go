package regexautomata

// Split divides text at every non-overlapping match of the pattern. If the
// pattern has capture groups, each group's captured text (or "" if it did
// not participate) is spliced into the result between the two slices that
// surround the match. maxSplit limits the number of splits performed (0 or
// negative means no limit); the final trailing slice is always included,
// even if empty.
func (re *Regexp) Split(text string, maxSplit int) []string {
	matches := re.FindAll(text)

	out := make([]string, 0, len(matches)+1)
	last := 0
	n := 0
	numGroups := re.engine.NumGroups()
	for _, m := range matches {
		if maxSplit > 0 && n >= maxSplit {
			break
		}
		out = append(out, text[last:m.Start(0)])
		for i := 1; i < numGroups; i++ {
			out = append(out, m.Group(i))
		}
		last = m.End(0)
		n++
	}
	out = append(out, text[last:])
	return out
}
