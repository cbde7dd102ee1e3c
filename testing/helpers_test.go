package testing

import (
	"errors"
	"testing"
)

func TestTestInstance(t *testing.T) {
	instance := TestInstance(t)
	if instance == nil {
		t.Fatal("Expected non-nil instance")
	}

	_ = instance.T("users")
	_ = instance.T("posts")
	_ = instance.T("orders")
	_ = instance.C("users", "id")
	_ = instance.C("posts", "title")
}

func TestTestInstance_SharedTableRef(t *testing.T) {
	instance := TestInstance(t)
	if instance.T("users") != instance.T("users") {
		t.Error("Expected the same table reference on repeated lookups")
	}
}

func TestTestTables(t *testing.T) {
	tables := TestTables()
	if len(tables) != 2 {
		t.Fatalf("Expected 2 tables, got %d", len(tables))
	}
	if tables[0].Name != "users" || tables[1].Name != "posts" {
		t.Errorf("Unexpected table names: %s, %s", tables[0].Name, tables[1].Name)
	}
	if len(tables[1].ForeignKeys) != 1 {
		t.Errorf("Expected posts to carry one foreign key, got %d", len(tables[1].ForeignKeys))
	}
}

func TestAssertSQL_Match(t *testing.T) {
	AssertSQL(t, "SELECT * FROM users", "SELECT * FROM users")
}

func TestAssertNoError_Nil(t *testing.T) {
	AssertNoError(t, nil)
}

func TestAssertError_Error(t *testing.T) {
	AssertError(t, errors.New("test error"))
}

func TestAssertErrorContains_Match(t *testing.T) {
	AssertErrorContains(t, errors.New("connection failed: timeout"), "timeout")
}

func TestAssertPanics_Panics(t *testing.T) {
	AssertPanics(t, func() {
		panic("expected panic")
	})
}

func TestContainsString(t *testing.T) {
	if !containsString("hello world", "world") {
		t.Error("containsString should return true when substring exists")
	}
	if containsString("hi", "hello") {
		t.Error("containsString should return false when substring is longer")
	}
	if !containsString("hello", "") {
		t.Error("containsString should return true for empty substring")
	}
}

func TestFindSubstring(t *testing.T) {
	if !findSubstring("hello beautiful world", "beautiful") {
		t.Error("findSubstring should return true when found in middle")
	}
	if findSubstring("hello world", "foo") {
		t.Error("findSubstring should return false when not found")
	}
}
