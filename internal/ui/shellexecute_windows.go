//go:build windows

package ui

import (
	"fmt"
	"syscall"
	"unsafe"
)

const swShowNormal = 1

var (
	shell32           = syscall.NewLazyDLL("shell32.dll")
	procShellExecuteW = shell32.NewProc("ShellExecuteW")
)

// shellExecute calls ShellExecuteW. Return values above 32 mean success.
func shellExecute(hwnd uintptr, verb, file, params, dir string, showCmd int32) error {
	lpVerb, err := syscall.UTF16PtrFromString(verb)
	if err != nil {
		return fmt.Errorf("failed to convert verb: %w", err)
	}
	lpFile, err := syscall.UTF16PtrFromString(file)
	if err != nil {
		return fmt.Errorf("failed to convert file path: %w", err)
	}
	var lpParams, lpDir *uint16
	if params != "" {
		if lpParams, err = syscall.UTF16PtrFromString(params); err != nil {
			return fmt.Errorf("failed to convert params: %w", err)
		}
	}
	if dir != "" {
		if lpDir, err = syscall.UTF16PtrFromString(dir); err != nil {
			return fmt.Errorf("failed to convert dir: %w", err)
		}
	}

	ret, _, _ := procShellExecuteW.Call(
		hwnd,
		uintptr(unsafe.Pointer(lpVerb)),
		uintptr(unsafe.Pointer(lpFile)),
		uintptr(unsafe.Pointer(lpParams)),
		uintptr(unsafe.Pointer(lpDir)),
		uintptr(showCmd),
	)
	if ret <= 32 {
		return fmt.Errorf("ShellExecuteW failed with return code %d", ret)
	}
	return nil
}
