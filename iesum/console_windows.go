//go:build windows

package main

import (
	"golang.org/x/sys/windows"
	"os"
)

// Copyright © 2022 Matthew R Bonnette. Licensed under the Apache-2.0 license.

// consoleCodes switches stdout and stderr into virtual terminal mode and reports whether both
// consoles will render formatting codes.
func consoleCodes() bool {
	for _, f := range [...]*os.File{os.Stdout, os.Stderr} {
		h := windows.Handle(f.Fd())
		var mode uint32
		if windows.GetConsoleMode(h, &mode) != nil {
			return false
		}
		if mode&windows.ENABLE_VIRTUAL_TERMINAL_PROCESSING != 0 {
			continue
		}
		if windows.SetConsoleMode(h, mode|windows.ENABLE_VIRTUAL_TERMINAL_PROCESSING) != nil {
			return false
		}
	}
	return true
}
