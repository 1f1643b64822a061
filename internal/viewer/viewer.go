// Package viewer opens rendered files with the platform's default image viewer.
package viewer

import (
	"fmt"
	"os/exec"
	"runtime"
)

// Opener shows a file to the user.
type Opener interface {
	Open(path string) error
}

// System launches the operating system's default handler for a file.
type System struct {
	GOOS string // empty means runtime.GOOS
}

// Command returns the program and arguments used to open path.
func (s System) Command(path string) (string, []string) {
	goos := s.GOOS
	if goos == "" {
		goos = runtime.GOOS
	}
	switch goos {
	case "windows":
		return "rundll32", []string{"url.dll,FileProtocolHandler", path}
	case "darwin":
		return "open", []string{path}
	default:
		return "xdg-open", []string{path}
	}
}

// Open starts the viewer without waiting for it to exit.
func (s System) Open(path string) error {
	name, args := s.Command(path)
	cmd := exec.Command(name, args...)
	if err := cmd.Start(); err != nil {
		return fmt.Errorf("viewer: %s %s: %w", name, path, err)
	}
	go cmd.Wait()
	return nil
}
