package sat

// resetSet represents a set of literals that can be emptied in constant
// time. It is used as a shared scratch set when deduplicating the
// literals of a clause.
type resetSet struct {
	addedAt        []uint32
	addedTimestamp uint32
}

// Contains returns true if l is in the set.
func (rs *resetSet) Contains(l Literal) bool {
	return rs.addedAt[l] == rs.addedTimestamp
}

// Add adds l to the set.
func (rs *resetSet) Add(l Literal) {
	rs.addedAt[l] = rs.addedTimestamp
}

// Clear removes all the elements in the set in constant time.
func (rs *resetSet) Clear() {
	rs.addedTimestamp++
	if rs.addedTimestamp == 0 { // overflow
		rs.addedTimestamp = 1
		for i := range rs.addedAt {
			rs.addedAt[i] = 0
		}
	}
}

// Expand increases the capacity of the set to cover both literals of
// one additional variable.
func (rs *resetSet) Expand() {
	rs.addedAt = append(rs.addedAt, 0, 0)
}
