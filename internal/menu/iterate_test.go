package menu

import (
	"errors"
	"testing"

	"github.com/atomicstack/retromenu/internal/driver"
	"github.com/atomicstack/retromenu/internal/testutil"
)

func TestIterateRunsDriver(t *testing.T) {
	rec := testutil.NewRecorder()
	m := newTestMenu(t, rec, Options{}, 3)
	if !m.Iterate(driver.ActionNoop) {
		t.Fatalf("expected iteration to continue")
	}
	if !rec.Called("iterate") {
		t.Fatalf("expected driver iterate, calls: %v", rec.Calls)
	}
}

func TestIterateDriverRequestsStop(t *testing.T) {
	rec := testutil.NewRecorder()
	m := newTestMenu(t, rec, Options{}, 3)
	rec.StopIterate = true
	if m.Iterate(driver.ActionNoop) {
		t.Fatalf("expected termination when driver iterate fails")
	}
}

func TestIterateQuitPriorityOverShutdown(t *testing.T) {
	rec := testutil.NewRecorder()
	m := newTestMenu(t, rec, Options{}, 3)
	m.SetPendingQuit()
	m.SetPendingShutdown()
	if m.Iterate(driver.ActionNoop) {
		t.Fatalf("expected termination from pending quit")
	}
	if m.PendingQuit() {
		t.Fatalf("expected quit flag consumed")
	}
	if !m.PendingShutdown() {
		t.Fatalf("expected shutdown flag untouched on the quit pass")
	}
	if rec.Called("iterate") {
		t.Fatalf("expected driver iterate skipped, calls: %v", rec.Calls)
	}
}

func TestIterateQuickMenuComposesWithQuit(t *testing.T) {
	rec := testutil.NewRecorder()
	m := newTestMenu(t, rec, Options{}, 3)
	m.SetPendingQuickMenu()
	m.SetPendingQuit()
	if m.Iterate(driver.ActionNoop) {
		t.Fatalf("expected termination after quick-menu push")
	}
	if m.PendingQuickMenu() || m.PendingQuit() {
		t.Fatalf("expected both flags consumed")
	}
	if !rec.Called("list_push") {
		t.Fatalf("expected quick-menu push before quitting, calls: %v", rec.Calls)
	}
}

func TestIterateQuickMenuAloneContinues(t *testing.T) {
	rec := testutil.NewRecorder()
	m := newTestMenu(t, rec, Options{}, 3)
	m.SetSelection(2)
	m.SetPendingQuickMenu()
	if !m.Iterate(driver.ActionNoop) {
		t.Fatalf("expected iteration to continue after quick-menu push")
	}
	if m.Selection() != 0 {
		t.Fatalf("expected navigation cleared for the push, got %d", m.Selection())
	}
	if rec.Called("iterate") {
		t.Fatalf("expected driver iterate skipped on the push pass, calls: %v", rec.Calls)
	}
}

func TestIterateQuickMenuCustomHandler(t *testing.T) {
	rec := testutil.NewRecorder()
	fired := 0
	m := newTestMenu(t, rec, Options{OnQuickMenu: func(*Menu) { fired++ }}, 3)
	m.SetPendingQuickMenu()
	if !m.Iterate(driver.ActionNoop) {
		t.Fatalf("expected iteration to continue")
	}
	if fired != 1 {
		t.Fatalf("expected custom handler to run once, got %d", fired)
	}
	if rec.Called("list_push") {
		t.Fatalf("expected default push suppressed, calls: %v", rec.Calls)
	}
}

func TestIterateShutdownRunsHostCommand(t *testing.T) {
	rec := testutil.NewRecorder()
	issued := 0
	m := newTestMenu(t, rec, Options{Shutdown: func() error { issued++; return nil }}, 3)
	m.SetPendingShutdown()
	if !m.Iterate(driver.ActionNoop) {
		t.Fatalf("expected iteration to continue when shutdown command succeeds")
	}
	if issued != 1 {
		t.Fatalf("expected one shutdown command, got %d", issued)
	}
	if m.PendingShutdown() {
		t.Fatalf("expected shutdown flag consumed")
	}
}

func TestIterateShutdownFailureTerminates(t *testing.T) {
	rec := testutil.NewRecorder()
	m := newTestMenu(t, rec, Options{Shutdown: func() error { return errors.New("refused") }}, 3)
	m.SetPendingShutdown()
	if m.Iterate(driver.ActionNoop) {
		t.Fatalf("expected termination when shutdown command fails")
	}
}

func TestIterateShutdownWithoutHookTerminates(t *testing.T) {
	rec := testutil.NewRecorder()
	m := newTestMenu(t, rec, Options{}, 3)
	m.SetPendingShutdown()
	if m.Iterate(driver.ActionNoop) {
		t.Fatalf("expected termination without a shutdown hook")
	}
}

func TestIterateRetriggerSchedulesFreshPass(t *testing.T) {
	rec := testutil.NewRecorder()
	passes := 0
	m := newTestMenu(t, rec, Options{OnQuickMenu: func(inner *Menu) {
		passes++
		if passes == 1 {
			// Re-arming the flag must schedule a later pass, not
			// recurse into this one.
			inner.SetPendingQuickMenu()
		}
	}}, 3)
	m.SetPendingQuickMenu()
	if !m.Iterate(driver.ActionNoop) {
		t.Fatalf("expected first pass to continue")
	}
	if passes != 1 {
		t.Fatalf("expected one handler run on the first pass, got %d", passes)
	}
	if !m.PendingQuickMenu() {
		t.Fatalf("expected re-armed flag to survive the first pass")
	}
	if !m.Iterate(driver.ActionNoop) {
		t.Fatalf("expected second pass to continue")
	}
	if passes != 2 || m.PendingQuickMenu() {
		t.Fatalf("expected second pass to consume the re-armed flag")
	}
}

func TestDispatchDefaultsWithMinimalDriver(t *testing.T) {
	registry := driver.NewRegistry(testutil.MinimalDriver("null"))
	m, err := New(registry, Options{DriverName: "null"})
	if err != nil {
		t.Fatalf("new menu: %v", err)
	}
	if err := m.Init(); err != nil {
		t.Fatalf("init: %v", err)
	}
	if size, ok := m.ListGetSize(ListPlain); size != 0 || ok {
		t.Fatalf("expected 0/false for absent list_get_size, got %d/%v", size, ok)
	}
	if entry, ok := m.ListGetEntry(ListPlain, 0); entry != nil || ok {
		t.Fatalf("expected nil/false for absent list_get_entry")
	}
	if ret, ok := m.PointerTap(1, 2, 0, driver.ActionNoop); ret != 0 || ok {
		t.Fatalf("expected 0/false for absent pointer_tap")
	}
	if !m.ListFree(0, 0) {
		t.Fatalf("expected success no-op for absent list_free")
	}
	if !m.ListClear() {
		t.Fatalf("expected success no-op for absent list_clear")
	}
	if m.UpdateThumbnailPath() || m.UpdateThumbnailImage() {
		t.Fatalf("expected false for absent thumbnail hooks")
	}
	if err := m.Environment(0, nil); !errors.Is(err, driver.ErrUnsupported) {
		t.Fatalf("expected ErrUnsupported, got %v", err)
	}
	if !m.Render(false) {
		t.Fatalf("expected render to tolerate absent hook")
	}
	if m.RenderMessageBox("") {
		t.Fatalf("expected empty message box rejected")
	}
	if m.IsTextureSet() {
		t.Fatalf("expected no texture hook")
	}
}

func TestPopulateEntriesHonoursPreventFlag(t *testing.T) {
	populated := 0
	d := testutil.MinimalDriver("null")
	d.PopulateEntries = func(_ interface{}, _, _ string, _ int) { populated++ }
	registry := driver.NewRegistry(d)
	m, err := New(registry, Options{DriverName: "null"})
	if err != nil {
		t.Fatalf("new menu: %v", err)
	}
	if err := m.Init(); err != nil {
		t.Fatalf("init: %v", err)
	}
	m.SetPreventPopulate(true)
	if !m.PopulateEntries("/roms", "load_content", ListPlain) {
		t.Fatalf("expected suppressed populate to report success")
	}
	if populated != 0 {
		t.Fatalf("expected populate suppressed, ran %d times", populated)
	}
	if m.PreventPopulate() {
		t.Fatalf("expected prevent flag consumed")
	}
	if !m.PopulateEntries("/roms", "load_content", ListPlain) || populated != 1 {
		t.Fatalf("expected populate to run after flag consumed")
	}
}
