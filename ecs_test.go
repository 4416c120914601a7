package gridmesh

import (
	"reflect"
	"testing"
)

func TestEcs_MakeEcs(t *testing.T) {
	ecs := MakeEcs()

	if len(ecs.entities) != 0 {
		t.Errorf("Expected entities to be empty, got %v", ecs.entities)
	}
	if len(ecs.order) != 0 {
		t.Errorf("Expected order to be empty, got %v", ecs.order)
	}
	if ecs.entityIdCounter != 0 {
		t.Errorf("Expected entityIdCounter to be 0, got %v", ecs.entityIdCounter)
	}
}

func TestEcs_AddEntity(t *testing.T) {
	type TestComponent struct {
		x string
	}

	ecs := MakeEcs()

	id1 := ecs.addEntity()
	if _, ok := ecs.entities[id1]; !ok {
		t.Errorf("Expected entityId %v to be in entities", id1)
	}

	id2 := ecs.addEntity(TestComponent{x: "test"})
	if _, ok := ecs.entities[id2]; !ok {
		t.Errorf("Expected entityId %v to be in entities", id2)
	}
	if id1 == id2 {
		t.Errorf("Entity ids must be unique, got %v twice", id1)
	}

	comp, ok := ecs.component(id2, reflect.TypeOf(TestComponent{}))
	if !ok {
		t.Fatalf("Expected entity %v to carry a TestComponent", id2)
	}
	if comp.(*TestComponent).x != "test" {
		t.Errorf("Component data lost, got %v", comp)
	}
}

func TestEcs_AddComponents(t *testing.T) {
	type TestComponent1 struct{ x string }
	type TestComponent2 struct{ y string }
	type TestComponent3 struct{ z string }

	ecs := MakeEcs()
	id := ecs.addEntity(TestComponent1{x: "test"})

	ecs.addComponents(id, TestComponent2{y: "hello"})

	// Pointers work too
	ecs.addComponents(id, &TestComponent3{z: "test-2"})

	if 3 != len(ecs.entities[id]) {
		t.Errorf("Expected the entity to carry 3 components, got %v", len(ecs.entities[id]))
	}
}

func TestEcs_ComponentsAreBoxed(t *testing.T) {
	type Position struct{ X, Y float64 }

	ecs := MakeEcs()
	id := ecs.addEntity(Position{X: 1, Y: 2})

	// Values are boxed to pointers so systems can mutate them in place.
	comp, _ := ecs.component(id, reflect.TypeOf(Position{}))
	comp.(*Position).X = 10

	again, _ := ecs.component(id, reflect.TypeOf(Position{}))
	if again.(*Position).X != 10 {
		t.Errorf("Expected mutation through the pointer to stick, got %v", again.(*Position).X)
	}
}

func TestEcs_InsertDuplicateEntityShouldPanic(t *testing.T) {
	defer func() {
		if r := recover(); r == nil {
			t.Errorf("expected panic on duplicate entity id")
		}
	}()

	ecs := MakeEcs()
	id := ecs.nextEntityId()
	ecs.insertEntity(id)
	ecs.insertEntity(id)
}

func TestEcs_RemoveEntity(t *testing.T) {
	type Position struct{ X, Y float64 }

	ecs := MakeEcs()
	id := ecs.addEntity(Position{1, 2})
	ecs.removeEntity(id)

	if _, ok := ecs.entities[id]; ok {
		t.Errorf("entity not removed")
	}
	for _, e := range ecs.order {
		if e == id {
			t.Errorf("entity %v still in iteration order", id)
		}
	}
}

func TestEcs_InsertionOrderPreserved(t *testing.T) {
	ecs := MakeEcs()
	id1 := ecs.addEntity()
	id2 := ecs.addEntity()
	id3 := ecs.addEntity()
	ecs.removeEntity(id2)

	expected := []EntityId{id1, id3}
	if len(ecs.order) != len(expected) {
		t.Fatalf("Expected order %v, got %v", expected, ecs.order)
	}
	for i, e := range expected {
		if ecs.order[i] != e {
			t.Errorf("Expected order %v, got %v", expected, ecs.order)
		}
	}
}
