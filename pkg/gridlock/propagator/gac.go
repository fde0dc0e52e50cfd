package propagator

import (
	"github.com/gridlock-framework/gridlock/pkg/gridlock"
)

// workQueue is a FIFO of constraints awaiting revision, with a membership
// set so a constraint waiting in the queue is never enqueued twice. The
// set tracks only waiting constraints: popping removes membership, so the
// constraint currently being revised may legitimately be re-enqueued when
// its own revision prunes one of its scope variables.
type workQueue struct {
	items   []*gridlock.Constraint
	waiting map[*gridlock.Constraint]bool
}

func newWorkQueue(seed []*gridlock.Constraint) *workQueue {
	q := &workQueue{
		waiting: make(map[*gridlock.Constraint]bool, len(seed)),
	}
	for _, con := range seed {
		q.push(con)
	}
	return q
}

func (q *workQueue) push(con *gridlock.Constraint) {
	if q.waiting[con] {
		return
	}
	q.waiting[con] = true
	q.items = append(q.items, con)
}

func (q *workQueue) pop() *gridlock.Constraint {
	con := q.items[0]
	q.items = q.items[1:]
	delete(q.waiting, con)
	return con
}

func (q *workQueue) empty() bool {
	return len(q.items) == 0
}

// ArcConsistency enforces generalized arc consistency. The queue is seeded
// with the constraints touching the newly assigned variable, or with every
// constraint when called before any assignment (initial enforcement). Each
// popped constraint is revised: every current-domain value of every scope
// variable without support is pruned, and each pruning re-enqueues the
// constraints touching the pruned variable, since support computed for
// them earlier may have relied on the removed value. The queue drains at a
// fixed point.
//
// An emptied domain fails the call immediately, returning everything
// pruned across the whole call.
func ArcConsistency(csp *gridlock.CSP, newlyAssigned *gridlock.Variable) (bool, []gridlock.Pruning) {
	var pruned []gridlock.Pruning

	var seed []*gridlock.Constraint
	if newlyAssigned == nil {
		seed = csp.Constraints()
	} else {
		seed = csp.ConstraintsWithVariable(newlyAssigned)
	}
	queue := newWorkQueue(seed)

	for !queue.empty() {
		con := queue.pop()
		for _, v := range con.Scope() {
			for _, value := range v.CurrentDomain() {
				if con.HasSupport(v, value) {
					continue
				}
				v.Prune(value)
				pruned = append(pruned, gridlock.Pruning{Variable: v, Value: value})
				if v.CurrentDomainSize() == 0 {
					return false, pruned
				}
				for _, related := range csp.ConstraintsWithVariable(v) {
					queue.push(related)
				}
			}
		}
	}
	return true, pruned
}
