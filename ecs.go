package gridmesh

import (
	"fmt"
	"reflect"
	"slices"
)

type EntityId uint64

// Ecs is a small entity/component store. Components are indexed by concrete
// type, one instance of a type per entity; entities iterate in insertion
// order so queries are deterministic.
type Ecs struct {
	order           []EntityId
	entities        map[EntityId]map[reflect.Type]any
	entityIdCounter uint64
}

func MakeEcs() Ecs {
	return Ecs{
		entities: make(map[EntityId]map[reflect.Type]any),
	}
}

func (ecs *Ecs) nextEntityId() EntityId {
	ecs.entityIdCounter++
	return EntityId(ecs.entityIdCounter)
}

func (ecs *Ecs) addEntity(components ...any) EntityId {
	return ecs.insertEntity(ecs.nextEntityId(), components...)
}

func (ecs *Ecs) insertEntity(entityId EntityId, components ...any) EntityId {
	if _, ok := ecs.entities[entityId]; ok {
		panic(fmt.Sprintf("entity %v already exists", entityId))
	}
	ecs.entities[entityId] = make(map[reflect.Type]any, len(components))
	ecs.order = append(ecs.order, entityId)
	ecs.addComponents(entityId, components...)
	return entityId
}

func (ecs *Ecs) removeEntity(entityId EntityId) {
	if _, ok := ecs.entities[entityId]; !ok {
		return
	}
	delete(ecs.entities, entityId)
	if idx := slices.Index(ecs.order, entityId); idx >= 0 {
		ecs.order = slices.Delete(ecs.order, idx, idx+1)
	}
}

func (ecs *Ecs) addComponents(entityId EntityId, components ...any) {
	comps, ok := ecs.entities[entityId]
	if !ok {
		panic(fmt.Sprintf("entity %v does not exist", entityId))
	}
	for _, component := range components {
		comps[componentType(component)] = boxComponent(component)
	}
}

func (ecs *Ecs) component(entityId EntityId, t reflect.Type) (any, bool) {
	comps, ok := ecs.entities[entityId]
	if !ok {
		return nil, false
	}
	c, ok := comps[t]
	return c, ok
}

func (ecs *Ecs) allComponents(entityId EntityId) []any {
	var res []any
	for _, c := range ecs.entities[entityId] {
		res = append(res, c)
	}
	return res
}

// componentType resolves the component's struct type whether it is passed by
// value or by pointer.
func componentType(component any) reflect.Type {
	t := reflect.TypeOf(component)
	if t.Kind() == reflect.Ptr {
		t = t.Elem()
	}
	return t
}

// boxComponent stores every component behind a pointer so queries hand out
// mutable references.
func boxComponent(component any) any {
	v := reflect.ValueOf(component)
	if v.Kind() == reflect.Ptr {
		return component
	}
	boxed := reflect.New(v.Type())
	boxed.Elem().Set(v)
	return boxed.Interface()
}
