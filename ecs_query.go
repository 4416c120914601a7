package gridmesh

import (
	"reflect"
)

// Typed queries over the entity store. Map visits matching entities in
// insertion order and stops early when the callback returns false.

type Query1[A any] struct{ ecs *Ecs }
type Query2[A, B any] struct{ ecs *Ecs }

func MakeQuery1[A any](cmd *Commands) Query1[A]       { return Query1[A]{ecs: cmd.app.ecs} }
func MakeQuery2[A, B any](cmd *Commands) Query2[A, B] { return Query2[A, B]{ecs: cmd.app.ecs} }

func (q Query1[A]) Map(m func(EntityId, *A) bool) {
	ta := reflect.TypeFor[A]()
	for _, eid := range q.ecs.order {
		ca, ok := q.ecs.component(eid, ta)
		if !ok {
			continue
		}
		if !m(eid, ca.(*A)) {
			return
		}
	}
}

func (q Query2[A, B]) Map(m func(EntityId, *A, *B) bool) {
	ta := reflect.TypeFor[A]()
	tb := reflect.TypeFor[B]()
	for _, eid := range q.ecs.order {
		ca, ok := q.ecs.component(eid, ta)
		if !ok {
			continue
		}
		cb, ok := q.ecs.component(eid, tb)
		if !ok {
			continue
		}
		if !m(eid, ca.(*A), cb.(*B)) {
			return
		}
	}
}
