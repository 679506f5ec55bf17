package menu

import "github.com/atomicstack/retromenu/internal/driver"

// The methods below forward one request each to the bound backend. Every
// capability is optional; an absent hook yields that request's documented
// default instead of a crash, and nothing is forwarded while no driver is
// bound.

// ListGetEntry returns the backend's row at idx, or nil/false when the hook
// is absent.
func (m *Menu) ListGetEntry(listType, idx int) (interface{}, bool) {
	if m.drv == nil || m.drv.ListGetEntry == nil {
		return nil, false
	}
	return m.drv.ListGetEntry(m.handle, listType, idx), true
}

// ListGetSize returns the backend list length, or 0/false when absent.
func (m *Menu) ListGetSize(listType int) (int, bool) {
	if m.drv == nil || m.drv.ListGetSize == nil {
		return 0, false
	}
	return m.drv.ListGetSize(m.handle, listType), true
}

// ListGetSelection returns the backend's own selection, or 0/false when
// absent.
func (m *Menu) ListGetSelection() (int, bool) {
	if m.drv == nil || m.drv.ListGetSelection == nil {
		return 0, false
	}
	return m.drv.ListGetSelection(m.handle), true
}

// ListSetSelection pushes a selection into the backend's list state.
func (m *Menu) ListSetSelection(selection int) bool {
	if m.drv == nil || m.drv.ListSetSelection == nil {
		return false
	}
	m.drv.ListSetSelection(m.handle, selection)
	return true
}

// ListCache asks the backend to cache its list for the given action.
func (m *Menu) ListCache(listType int, action driver.Action) bool {
	if m.drv == nil || m.drv.ListCache == nil {
		return false
	}
	m.drv.ListCache(m.handle, listType, action)
	return true
}

// ListInsert inserts a row into the backend list.
func (m *Menu) ListInsert(idx int, path, label string) bool {
	if m.drv == nil || m.drv.ListInsert == nil {
		return false
	}
	m.drv.ListInsert(m.handle, idx, path, label)
	return true
}

// ListFree releases backend list rows. Treated as a success no-op when the
// hook is absent.
func (m *Menu) ListFree(idx, listSize int) bool {
	if m.drv == nil {
		return false
	}
	if m.drv.ListFree != nil {
		m.drv.ListFree(m.handle, idx, listSize)
	}
	return true
}

// ListClear empties the backend list. Success no-op when absent.
func (m *Menu) ListClear() bool {
	if m.drv == nil {
		return false
	}
	if m.drv.ListClear != nil {
		m.drv.ListClear(m.handle)
	}
	return true
}

// ListPush asks the backend to push a new list.
func (m *Menu) ListPush(listType int, path, label string) bool {
	if m.drv == nil || m.drv.ListPush == nil {
		return false
	}
	return m.drv.ListPush(m.handle, listType, path, label) == nil
}

// PointerTap forwards a tap. Absent hooks report retcode 0 and false.
func (m *Menu) PointerTap(x, y, ptr int, action driver.Action) (int, bool) {
	if m.drv == nil || m.drv.PointerTap == nil {
		return 0, false
	}
	return m.drv.PointerTap(m.handle, x, y, ptr, action), true
}

// PointerDown forwards a press. Absent hooks report retcode 0 and false.
func (m *Menu) PointerDown(x, y, ptr int, action driver.Action) (int, bool) {
	if m.drv == nil || m.drv.PointerDown == nil {
		return 0, false
	}
	return m.drv.PointerDown(m.handle, x, y, ptr, action), true
}

// PointerUp forwards a release. Absent hooks report retcode 0 and false.
func (m *Menu) PointerUp(x, y, ptr int, action driver.Action) (int, bool) {
	if m.drv == nil || m.drv.PointerUp == nil {
		return 0, false
	}
	return m.drv.PointerUp(m.handle, x, y, ptr, action), true
}

// OSKPointerAtPosition maps a pointer position to an on-screen-keyboard key.
func (m *Menu) OSKPointerAtPosition(x, y, width, height int) (int, bool) {
	if m.drv == nil || m.drv.OSKPointerAtPosition == nil {
		return 0, false
	}
	return m.drv.OSKPointerAtPosition(m.handle, x, y, width, height), true
}

// SetThumbnailSystem tells the backend which system thumbnails to use.
func (m *Menu) SetThumbnailSystem(system string) bool {
	if m.drv == nil || m.drv.SetThumbnailSystem == nil {
		return false
	}
	m.drv.SetThumbnailSystem(m.handle, system)
	return true
}

// SetThumbnailContent tells the backend which content thumbnail to use.
func (m *Menu) SetThumbnailContent(content string) bool {
	if m.drv == nil || m.drv.SetThumbnailContent == nil {
		return false
	}
	m.drv.SetThumbnailContent(m.handle, content)
	return true
}

// UpdateThumbnailPath recomputes the thumbnail path for the current
// selection.
func (m *Menu) UpdateThumbnailPath() bool {
	if m.drv == nil || m.drv.UpdateThumbnailPath == nil {
		return false
	}
	m.drv.UpdateThumbnailPath(m.handle, m.nav.Selection())
	return true
}

// UpdateThumbnailImage reloads the thumbnail image.
func (m *Menu) UpdateThumbnailImage() bool {
	if m.drv == nil || m.drv.UpdateThumbnailImage == nil {
		return false
	}
	m.drv.UpdateThumbnailImage(m.handle)
	return true
}

// UpdateSavestateThumbnailPath recomputes the savestate thumbnail path for
// the current selection.
func (m *Menu) UpdateSavestateThumbnailPath() bool {
	if m.drv == nil || m.drv.UpdateSavestateThumbnailPath == nil {
		return false
	}
	m.drv.UpdateSavestateThumbnailPath(m.handle, m.nav.Selection())
	return true
}

// UpdateSavestateThumbnailImage reloads the savestate thumbnail image.
func (m *Menu) UpdateSavestateThumbnailImage() bool {
	if m.drv == nil || m.drv.UpdateSavestateThumbnailImage == nil {
		return false
	}
	m.drv.UpdateSavestateThumbnailImage(m.handle)
	return true
}

// PopulateEntries notifies the backend that the displayed list was
// repopulated. Honors the prevent-populate flag, which is consumed by the
// suppressed call.
func (m *Menu) PopulateEntries(path, label string, listType int) bool {
	if m.drv == nil {
		return false
	}
	if m.preventPopulate {
		m.preventPopulate = false
		return true
	}
	if m.drv.PopulateEntries != nil {
		m.drv.PopulateEntries(m.handle, path, label, listType)
	}
	return true
}

// LoadImage hands image data to the backend. Absent hooks report false.
func (m *Menu) LoadImage(data interface{}, imageType int) bool {
	if m.drv == nil || m.drv.LoadImage == nil {
		return false
	}
	return m.drv.LoadImage(m.handle, data, imageType)
}

// Render draws the current list if the backend renders at all.
func (m *Menu) Render(idle bool) bool {
	if m.drv == nil {
		return false
	}
	if m.drv.Render != nil {
		m.drv.Render(m.handle, idle)
	}
	return true
}

// RenderMessageBox draws a message box over the list.
func (m *Menu) RenderMessageBox(msg string) bool {
	if m.drv == nil || m.drv.RenderMessageBox == nil || msg == "" {
		return false
	}
	m.drv.RenderMessageBox(m.handle, msg)
	return true
}

// Frame runs the backend's per-frame work while the menu is alive.
func (m *Menu) Frame() {
	if !m.alive || m.drv == nil || m.drv.Frame == nil {
		return
	}
	m.drv.Frame(m.handle)
}

// SetTexture lets the backend refresh its framebuffer texture.
func (m *Menu) SetTexture() {
	if m.drv == nil || m.drv.SetTexture == nil {
		return
	}
	m.drv.SetTexture()
}

// IsTextureSet reports whether the backend maintains its own texture.
func (m *Menu) IsTextureSet() bool {
	return m.drv != nil && m.drv.SetTexture != nil
}

// BindInit initialises input-bind callbacks for a row. Absent hooks report
// retcode 0 and false.
func (m *Menu) BindInit(path, label string, listType, idx int) (int, bool) {
	if m.drv == nil || m.drv.BindInit == nil {
		return 0, false
	}
	return m.drv.BindInit(path, label, listType, idx), true
}

// Environment forwards an environment callback to the backend. Requests
// with no driver bound fail with driver.ErrNoActiveDriver.
func (m *Menu) Environment(envType int, data interface{}) error {
	if m.drv == nil {
		return driver.ErrNoActiveDriver
	}
	if m.drv.Environment == nil {
		return driver.ErrUnsupported
	}
	return m.drv.Environment(envType, data, m.handle)
}
