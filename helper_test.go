package kirabuku

import (
	"fmt"
	"time"

	"github.com/kelabsilat/kirabuku/date"
)

// newTestEngine returns an engine with a deterministic clock and id
// sequence ("tx-1", "tx-2", ...) operating on an empty store.
func newTestEngine() *Engine {
	e := NewEngine(NewStore())
	e.now = func() time.Time { return time.Date(2024, time.June, 1, 10, 0, 0, 0, time.UTC) }
	n := 0
	e.newID = func() string {
		n++
		return fmt.Sprintf("tx-%d", n)
	}
	return e
}

// addTestMember appends a member directly to the store, bypassing the
// engine's id assignment so tests control the id.
func addTestMember(s *Store, id, name, number, join string) Member {
	m := Member{ID: id, Name: name, MemberNumber: number, JoinDate: date.MustParse(join)}
	s.members = append(s.members, m)
	return m
}
