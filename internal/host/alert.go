package host

import (
	"errors"
	"fmt"
	"log"

	"github.com/ncruces/zenity"
)

var ErrUnsupported = errors.New("graphics context unavailable")

const (
	alertTitle     = "gooey"
	unsupportedMsg = "OpenGL 4.1 is not supported on this system, so the background cannot be drawn."
)

// alert shows a blocking native error dialog. Replaced in tests.
var alert = func(title, msg string) error {
	return zenity.Error(msg, zenity.Title(title), zenity.ErrorIcon)
}

// unsupported tells the user the graphics context is unusable and returns
// cause wrapped in ErrUnsupported.
func unsupported(logger *log.Logger, cause error) error {
	logger.Printf("graphics unavailable: %v", cause)
	if err := alert(alertTitle, unsupportedMsg); err != nil {
		logger.Printf("alert: %v", err)
	}
	return fmt.Errorf("%w: %v", ErrUnsupported, cause)
}
