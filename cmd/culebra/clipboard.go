package main

import "github.com/zyedidia/clipboard"

type ClipMethod uint8

const (
	ClipExternal ClipMethod = iota
	ClipInternal
)

var ClipCurrentMethod ClipMethod

var internalClipboard string

// ClipInitialize will initialize the clipboard for the given method first,
// and if that fails, an internal method will be chosen, instead. The Method
// chosen is returned along with any error that may have occurred while
// selecting the method. The error is not fatal because an internal method
// is used.
func ClipInitialize(m ClipMethod) (ClipMethod, error) {
	if m == ClipInternal {
		ClipCurrentMethod = ClipInternal
		return ClipInternal, nil
	}
	if err := clipboard.Initialize(); err != nil {
		ClipCurrentMethod = ClipInternal
		return ClipInternal, err
	}
	ClipCurrentMethod = ClipExternal
	return ClipExternal, nil
}

// ClipRead receives the clipboard contents using the ClipCurrentMethod.
func ClipRead() (string, error) {
	if ClipCurrentMethod == ClipExternal {
		return clipboard.ReadAll("clipboard")
	}
	return internalClipboard, nil
}

// ClipWrite sets the clipboard contents using the ClipCurrentMethod.
func ClipWrite(content string) error {
	if ClipCurrentMethod == ClipExternal {
		return clipboard.WriteAll(content, "clipboard")
	}
	internalClipboard = content
	return nil
}
