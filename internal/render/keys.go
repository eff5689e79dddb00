package render

import "sort"

type Key int

const (
	KeyUnknown Key = iota
	KeyA
	KeyB
	KeyC
	KeyD
	KeyE
	KeyF
	KeyG
	KeyH
	KeyI
	KeyJ
	KeyK
	KeyL
	KeyM
	KeyN
	KeyO
	KeyP
	KeyQ
	KeyR
	KeyS
	KeyT
	KeyU
	KeyV
	KeyW
	KeyX
	KeyY
	KeyZ
	Key0
	Key1
	Key2
	Key3
	Key4
	Key5
	Key6
	Key7
	Key8
	Key9
	KeySpace
	KeyEnter
	KeyEscape
	KeyTab
	KeyBackspace
	KeyUp
	KeyDown
	KeyLeft
	KeyRight
	KeyShift
	KeyControl
	KeyAlt
	KeyF1
	KeyF2
	KeyF3
	KeyF4
	KeyF5
	KeyF6
	KeyF7
	KeyF8
	KeyF9
	KeyF10
	KeyF11
	KeyF12

	keyCount
)

var keyNames = func() [keyCount]string {
	var names [keyCount]string
	names[KeyUnknown] = "unknown"
	for k := KeyA; k <= KeyZ; k++ {
		names[k] = string(rune('a' + int(k-KeyA)))
	}
	for k := Key0; k <= Key9; k++ {
		names[k] = string(rune('0' + int(k-Key0)))
	}
	names[KeySpace] = "space"
	names[KeyEnter] = "enter"
	names[KeyEscape] = "escape"
	names[KeyTab] = "tab"
	names[KeyBackspace] = "backspace"
	names[KeyUp] = "up"
	names[KeyDown] = "down"
	names[KeyLeft] = "left"
	names[KeyRight] = "right"
	names[KeyShift] = "shift"
	names[KeyControl] = "ctrl"
	names[KeyAlt] = "alt"
	fkeys := []string{"f1", "f2", "f3", "f4", "f5", "f6", "f7", "f8", "f9", "f10", "f11", "f12"}
	for i, n := range fkeys {
		names[KeyF1+Key(i)] = n
	}
	return names
}()

func (k Key) String() string {
	if k < 0 || k >= keyCount {
		return "unknown"
	}
	return keyNames[k]
}

// KeyState maps keys to whether they are currently held down.
// A missing key is released.
type KeyState map[Key]bool

func (s KeyState) Pressed(k Key) bool { return s[k] }

func (s KeyState) Clone() KeyState {
	out := make(KeyState, len(s))
	for k, down := range s {
		if down {
			out[k] = true
		}
	}
	return out
}

// Names returns the sorted names of all pressed keys.
func (s KeyState) Names() []string {
	var out []string
	for k, down := range s {
		if down {
			out = append(out, k.String())
		}
	}
	sort.Strings(out)
	return out
}

// KeyByName looks a key up by the name String returns.
func KeyByName(name string) (Key, bool) {
	for k := KeyUnknown + 1; k < keyCount; k++ {
		if keyNames[k] == name {
			return k, true
		}
	}
	return KeyUnknown, false
}
