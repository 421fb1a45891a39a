//go:build windows

package wininput

const (
	gwlExStyle uintptr = 0xFFFFFFEC // GWL_EXSTYLE, -20

	wsExTransparent = 0x00000020
	wsExToolWindow  = 0x00000080
	wsExLayered     = 0x00080000

	swpNoActivate = 0x0010
	swpShowWindow = 0x0040
)

// MakeClickThrough marks a native window as a layered tool window that
// passes mouse input through to whatever is underneath it. Used for the
// on-screen status overlay and the picker dots.
func MakeClickThrough(handle uintptr) {
	style, _, _ := procGetWindowLongW.Call(handle, gwlExStyle)
	_, _, _ = procSetWindowLongW.Call(
		handle,
		gwlExStyle,
		style|wsExTransparent|wsExToolWindow|wsExLayered,
	)
}

// PlaceWindow moves a native window to screen coordinates and keeps it above
// all ordinary windows without stealing focus.
func PlaceWindow(handle uintptr, x, y, width, height int) {
	const hwndTopmost = ^uintptr(0) // HWND_TOPMOST is -1
	_, _, _ = procSetWindowPos.Call(
		handle,
		hwndTopmost,
		uintptr(x),
		uintptr(y),
		uintptr(width),
		uintptr(height),
		uintptr(swpNoActivate|swpShowWindow),
	)
}
