package game

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGame_SubmitReturnsMatchingSnapshot(t *testing.T) {
	g := NewGame(ModeDaily, New(newFakeDict("silk"), firstPicker{}, "en"))
	snap := g.StartDaily("2026-10-19", "silkworm")
	assert.Equal(t, "2026-10-19", snap.Date)
	assert.Equal(t, "silkworm", snap.RootWord)
	assert.Equal(t, g.ID, snap.ID)
	assert.Equal(t, ModeDaily, snap.Mode)

	out, snap := g.Submit("silk")
	assert.Equal(t, Accepted, out.Disposition)
	assert.Equal(t, []string{"silk"}, snap.AcceptedWords)
	assert.Equal(t, g.Snapshot(), snap)

	snap = g.StartRound([]string{"lemonade"})
	assert.Empty(t, snap.Date)
	assert.Equal(t, "lemonade", snap.RootWord)
	assert.Empty(t, snap.AcceptedWords)
}

// Concurrent restarts, submits and reads on one game must never mix
// rounds: every snapshot pairs a date with its own root, and an accepted
// word is at the head of the snapshot returned with it.
func TestGame_ConcurrentRoundsStayConsistent(t *testing.T) {
	days := map[string]string{"2026-10-19": "silkworm", "2026-10-20": "lemonade"}
	g := NewGame(ModeDaily, New(newConcurrentDict("silk", "milk", "lemon", "mend"), firstPicker{}, "en"))
	g.StartDaily("2026-10-19", "silkworm")

	check := func(snap Snapshot) {
		assert.Equal(t, days[snap.Date], snap.RootWord, "date %q paired with root %q", snap.Date, snap.RootWord)
	}

	var wg sync.WaitGroup
	for i := 0; i < 20; i++ {
		wg.Add(3)
		go func(i int) {
			defer wg.Done()
			if i%2 == 0 {
				check(g.StartDaily("2026-10-19", "silkworm"))
			} else {
				check(g.StartDaily("2026-10-20", "lemonade"))
			}
		}(i)
		go func() {
			defer wg.Done()
			for _, w := range []string{"silk", "milk", "lemon", "mend"} {
				out, snap := g.Submit(w)
				check(snap)
				if out.Disposition == Accepted && assert.NotEmpty(t, snap.AcceptedWords) {
					assert.Equal(t, out.Word, snap.AcceptedWords[0])
					assert.Equal(t, len(snap.AcceptedWords), snap.AcceptedCount)
				}
			}
		}()
		go func() {
			defer wg.Done()
			check(g.Snapshot())
		}()
	}
	wg.Wait()
}

// concurrentDict is a read-only dictionary safe to share across goroutines.
type concurrentDict map[string]bool

func newConcurrentDict(words ...string) concurrentDict {
	d := concurrentDict{}
	for _, w := range words {
		d[w] = true
	}
	return d
}

func (d concurrentDict) IsRecognizedWord(word, _ string) bool { return d[word] }
