package tui

import (
	"errors"
	"testing"

	"github.com/atomicstack/retromenu/internal/driver"
)

func TestInitCreatesHandleAndFreeReleasesIt(t *testing.T) {
	b := New()
	drv := b.Driver()

	h, err := drv.Init()
	if err != nil {
		t.Fatalf("unexpected init error: %v", err)
	}
	if h == nil || b.Handle() == nil {
		t.Fatalf("expected a live handle after init")
	}
	drv.Free(h)
	if b.Handle() != nil {
		t.Fatalf("expected handle to be released after free")
	}
}

func TestFreeIgnoresForeignHandle(t *testing.T) {
	b := New()
	drv := b.Driver()
	if _, err := drv.Init(); err != nil {
		t.Fatalf("unexpected init error: %v", err)
	}
	drv.Free(&Handle{})
	if b.Handle() == nil {
		t.Fatalf("expected own handle to survive a foreign free")
	}
}

func TestIterateStopsOnQuitAction(t *testing.T) {
	b := New()
	drv := b.Driver()
	h, _ := drv.Init()

	if err := drv.Iterate(h, driver.ActionDown); err != nil {
		t.Fatalf("unexpected iterate error: %v", err)
	}
	if err := drv.Iterate(h, driver.ActionQuit); !errors.Is(err, ErrQuitRequested) {
		t.Fatalf("expected ErrQuitRequested, got %v", err)
	}
}

func TestListHooksMaintainRows(t *testing.T) {
	b := New()
	drv := b.Driver()
	h, _ := drv.Init()

	drv.ListInsert(h, 0, "", "bravo")
	drv.ListInsert(h, 0, "", "alpha")
	drv.ListInsert(h, 99, "", "charlie")

	if size := drv.ListGetSize(h, 0); size != 3 {
		t.Fatalf("expected 3 rows, got %d", size)
	}
	if entry := drv.ListGetEntry(h, 0, 0); entry != "alpha" {
		t.Fatalf("expected alpha first, got %v", entry)
	}
	if entry := drv.ListGetEntry(h, 0, 2); entry != "charlie" {
		t.Fatalf("expected charlie last, got %v", entry)
	}
	if entry := drv.ListGetEntry(h, 0, 5); entry != nil {
		t.Fatalf("expected nil for out-of-range index, got %v", entry)
	}

	drv.ListClear(h)
	if size := drv.ListGetSize(h, 0); size != 0 {
		t.Fatalf("expected empty list after clear, got %d", size)
	}
}

func TestNavigationHooksMirrorSelection(t *testing.T) {
	b := New()
	drv := b.Driver()
	h, _ := drv.Init()
	handle := b.Handle()

	drv.ListInsert(h, 0, "", "alpha")
	drv.ListInsert(h, 1, "", "bravo")
	drv.ListInsert(h, 2, "", "charlie")

	drv.NavigationSet(h, true)
	if !handle.scrolling {
		t.Fatalf("expected scrolling flag after navigation set")
	}

	drv.NavigationSetLast(h)
	if handle.selection != 2 {
		t.Fatalf("expected selection 2 after set-last, got %d", handle.selection)
	}

	target := 1
	drv.NavigationAscendAlphabet(h, &target)
	if handle.selection != 1 {
		t.Fatalf("expected selection 1 after ascend, got %d", handle.selection)
	}

	drv.NavigationClear(h, true)
	if handle.selection != 0 {
		t.Fatalf("expected selection reset by clear, got %d", handle.selection)
	}
	if !handle.pendingPush {
		t.Fatalf("expected pending push hint to be recorded")
	}
}

func TestListPushRecordsAndClearsPendingHint(t *testing.T) {
	b := New()
	drv := b.Driver()
	h, _ := drv.Init()
	handle := b.Handle()

	drv.NavigationClear(h, true)
	if err := drv.ListPush(h, 0, "", "quick_menu"); err != nil {
		t.Fatalf("unexpected push error: %v", err)
	}
	lists := handle.Lists()
	if len(lists) != 1 || lists[0].Label != "quick_menu" {
		t.Fatalf("expected one pushed quick_menu list, got %#v", lists)
	}
	if handle.pendingPush {
		t.Fatalf("expected pending push hint cleared by push")
	}
}

func TestAsHandleToleratesForeignValues(t *testing.T) {
	b := New()
	drv := b.Driver()

	// Hooks must not panic when handed a handle they do not own.
	drv.NavigationSet(nil, true)
	drv.NavigationSetLast("not a handle")
	drv.Frame(42)
}
