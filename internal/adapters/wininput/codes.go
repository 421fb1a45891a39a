package wininput

import (
	"sort"
	"strconv"
)

// Virtual-key codes for every canonical key name the hotkey listener can
// work with. Modifiers are listed so capture can observe them, but they are
// never registrable on their own.
const (
	vkEnter      uint32 = 0x0D
	vkPause      uint32 = 0x13
	vkCapsLock   uint32 = 0x14
	vkEscape     uint32 = 0x1B
	vkSpace      uint32 = 0x20
	vkPageUp     uint32 = 0x21
	vkPageDown   uint32 = 0x22
	vkEnd        uint32 = 0x23
	vkHome       uint32 = 0x24
	vkLeft       uint32 = 0x25
	vkUp         uint32 = 0x26
	vkRight      uint32 = 0x27
	vkDown       uint32 = 0x28
	vkInsert     uint32 = 0x2D
	vkDelete     uint32 = 0x2E
	vkTab        uint32 = 0x09
	vkScrollLock uint32 = 0x91

	vkShift uint32 = 0x10
	vkCtrl  uint32 = 0x11
	vkAlt   uint32 = 0x12
	vkWin   uint32 = 0x5B

	vkNumpad0 uint32 = 0x60
	vkF1      uint32 = 0x70
)

var keyNameToVK = map[string]uint32{
	"SPACE":       vkSpace,
	"ENTER":       vkEnter,
	"ESCAPE":      vkEscape,
	"TAB":         vkTab,
	"INSERT":      vkInsert,
	"DELETE":      vkDelete,
	"HOME":        vkHome,
	"END":         vkEnd,
	"PAGEUP":      vkPageUp,
	"PAGEDOWN":    vkPageDown,
	"UP":          vkUp,
	"DOWN":        vkDown,
	"LEFT":        vkLeft,
	"RIGHT":       vkRight,
	"PAUSE":       vkPause,
	"SCROLL_LOCK": vkScrollLock,
	"CAPS_LOCK":   vkCapsLock,

	"SHIFT": vkShift,
	"CTRL":  vkCtrl,
	"ALT":   vkAlt,
	"WIN":   vkWin,
}

var (
	vkToKeyName map[uint32]string
	captureVKs  []uint32
)

func init() {
	for i := uint32(1); i <= 24; i++ {
		keyNameToVK["F"+strconv.Itoa(int(i))] = vkF1 + i - 1
	}
	for c := byte('A'); c <= 'Z'; c++ {
		keyNameToVK[string(c)] = uint32(c)
	}
	for c := byte('0'); c <= '9'; c++ {
		keyNameToVK[string(c)] = uint32(c)
		keyNameToVK["NUMPAD"+string(c)] = vkNumpad0 + uint32(c-'0')
	}

	vkToKeyName = make(map[uint32]string, len(keyNameToVK))
	captureVKs = make([]uint32, 0, len(keyNameToVK))
	for name, vk := range keyNameToVK {
		vkToKeyName[vk] = name
		captureVKs = append(captureVKs, vk)
	}
	sort.Slice(captureVKs, func(i, j int) bool { return captureVKs[i] < captureVKs[j] })
}

// KeyToVK resolves a canonical key name to its virtual-key code.
func KeyToVK(name string) (uint32, bool) {
	vk, ok := keyNameToVK[name]
	return vk, ok
}

// KeyFromVK resolves a virtual-key code back to its canonical key name.
func KeyFromVK(vk uint32) (string, bool) {
	name, ok := vkToKeyName[vk]
	return name, ok
}
