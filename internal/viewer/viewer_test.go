package viewer

import (
	"reflect"
	"testing"
)

func TestSystem_Command(t *testing.T) {
	tests := []struct {
		goos string
		name string
		args []string
	}{
		{"linux", "xdg-open", []string{"out.bmp"}},
		{"freebsd", "xdg-open", []string{"out.bmp"}},
		{"darwin", "open", []string{"out.bmp"}},
		{"windows", "rundll32", []string{"url.dll,FileProtocolHandler", "out.bmp"}},
	}
	for _, tt := range tests {
		t.Run(tt.goos, func(t *testing.T) {
			name, args := System{GOOS: tt.goos}.Command("out.bmp")
			if name != tt.name || !reflect.DeepEqual(args, tt.args) {
				t.Errorf("Expected %s %v, got %s %v", tt.name, tt.args, name, args)
			}
		})
	}
}

var _ Opener = System{}
