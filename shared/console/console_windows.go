//go:build windows

package console

import (
	"os"

	"golang.org/x/sys/windows"
)

// IsBlueBackground reports whether the console background color is blue,
// so the banner can swap to a color that stays readable. Consoles without
// screen buffer info (e.g. redirected stdout) count as non-blue.
func IsBlueBackground() bool {
	handle := windows.Handle(os.Stdout.Fd())

	var info windows.ConsoleScreenBufferInfo
	if err := windows.GetConsoleScreenBufferInfo(handle, &info); err != nil {
		return false
	}

	const backgroundBlue = 0x0010

	return info.Attributes&backgroundBlue != 0
}
