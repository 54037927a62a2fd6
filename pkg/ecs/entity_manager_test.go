package ecs

import (
	"reflect"
	"testing"
)

// 测试组件类型定义
type testOrbitComponent struct {
	Radius, Angle float64
}

type testLabelComponent struct {
	Text string
}

func TestCreateEntity(t *testing.T) {
	em := NewEntityManager()
	id1 := em.CreateEntity()
	id2 := em.CreateEntity()

	if id1 == id2 {
		t.Error("Entity IDs should be unique")
	}

	// ID从1开始
	if id1 != 1 {
		t.Errorf("First entity ID should be 1, got %d", id1)
	}
	if id2 != 2 {
		t.Errorf("Second entity ID should be 2, got %d", id2)
	}

	if em.EntityCount() != 2 {
		t.Errorf("EntityCount = %d, want 2", em.EntityCount())
	}
}

func TestAddAndGetComponent(t *testing.T) {
	em := NewEntityManager()
	id := em.CreateEntity()

	em.AddComponent(id, &testOrbitComponent{Radius: 35, Angle: 1.5})

	comp, found := em.GetComponent(id, reflect.TypeOf(&testOrbitComponent{}))
	if !found {
		t.Fatal("Component should be found")
	}

	retrieved := comp.(*testOrbitComponent)
	if retrieved.Radius != 35 || retrieved.Angle != 1.5 {
		t.Errorf("Component data mismatch, expected (35, 1.5), got (%f, %f)", retrieved.Radius, retrieved.Angle)
	}
}

func TestGenericComponentAccess(t *testing.T) {
	em := NewEntityManager()
	id := em.CreateEntity()

	AddComponent(em, id, &testLabelComponent{Text: "Earth"})

	// 泛型接口与反射接口读写同一份数据
	label, ok := GetComponent[*testLabelComponent](em, id)
	if !ok {
		t.Fatal("generic GetComponent should find component added by generic AddComponent")
	}
	if label.Text != "Earth" {
		t.Errorf("label.Text = %q, want Earth", label.Text)
	}

	if !em.HasComponent(id, reflect.TypeOf(&testLabelComponent{})) {
		t.Error("reflect HasComponent should see generic component")
	}

	if _, ok := GetComponent[*testOrbitComponent](em, id); ok {
		t.Error("GetComponent should fail for missing component type")
	}

	RemoveComponent[*testLabelComponent](em, id)
	if HasComponent[*testLabelComponent](em, id) {
		t.Error("component should be removed")
	}
}

func TestDestroyEntity(t *testing.T) {
	em := NewEntityManager()
	id := em.CreateEntity()
	em.AddComponent(id, &testOrbitComponent{})

	em.DestroyEntity(id)

	// 清理前实体仍存在
	if !em.Exists(id) {
		t.Error("Entity should still exist before cleanup")
	}

	em.RemoveMarkedEntities()
	if em.Exists(id) {
		t.Error("Entity should be removed after cleanup")
	}
	if em.HasComponent(id, reflect.TypeOf(&testOrbitComponent{})) {
		t.Error("Components should be removed after cleanup")
	}
}

func TestGetEntitiesWithIsSorted(t *testing.T) {
	em := NewEntityManager()

	ids := make([]EntityID, 0, 20)
	for i := 0; i < 20; i++ {
		id := em.CreateEntity()
		AddComponent(em, id, &testOrbitComponent{Radius: float64(i)})
		if i%2 == 0 {
			AddComponent(em, id, &testLabelComponent{})
		}
		ids = append(ids, id)
	}

	all := GetEntitiesWith1[*testOrbitComponent](em)
	if len(all) != 20 {
		t.Fatalf("expected 20 orbit entities, got %d", len(all))
	}
	for i, id := range all {
		if id != ids[i] {
			t.Fatalf("entity order mismatch at %d: got %d want %d", i, id, ids[i])
		}
	}

	labelled := GetEntitiesWith2[*testOrbitComponent, *testLabelComponent](em)
	if len(labelled) != 10 {
		t.Errorf("expected 10 labelled entities, got %d", len(labelled))
	}
	for i := 1; i < len(labelled); i++ {
		if labelled[i-1] >= labelled[i] {
			t.Error("GetEntitiesWith2 result should be sorted ascending")
		}
	}
}

func TestDestroyMultipleEntities(t *testing.T) {
	em := NewEntityManager()

	id1 := em.CreateEntity()
	id2 := em.CreateEntity()
	id3 := em.CreateEntity()

	em.AddComponent(id1, &testOrbitComponent{})
	em.AddComponent(id2, &testOrbitComponent{})
	em.AddComponent(id3, &testOrbitComponent{})

	em.DestroyEntity(id1)
	em.DestroyEntity(id3)
	em.RemoveMarkedEntities()

	if em.Exists(id1) || em.Exists(id3) {
		t.Error("id1 and id3 should be removed")
	}
	if !em.Exists(id2) {
		t.Error("id2 should still exist")
	}
}
