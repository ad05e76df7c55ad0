package app

import (
	sysclip "github.com/atotto/clipboard"
	"github.com/sirupsen/logrus"
)

// clipboard wraps the system clipboard with an in-process register
// fallback. When the system clipboard is unavailable, copy and paste keep
// working within the editor and the user gets a one-line notice.
type clipboard struct {
	register string
	log      *logrus.Logger
}

func newClipboard(log *logrus.Logger) *clipboard {
	return &clipboard{log: log}
}

// Set stores text, returning a non-empty status notice when the system
// clipboard could not be used.
func (c *clipboard) Set(text string) string {
	c.register = text
	if sysclip.Unsupported {
		return "COPIED (internal only)"
	}
	if err := sysclip.WriteAll(text); err != nil {
		c.log.WithError(err).Warn("clipboard write failed")
		return "COPIED (internal only)"
	}
	return ""
}

// Get returns the clipboard text, preferring the system clipboard and
// falling back to the internal register.
func (c *clipboard) Get() (string, string) {
	if sysclip.Unsupported {
		return c.register, ""
	}
	text, err := sysclip.ReadAll()
	if err != nil {
		c.log.WithError(err).Warn("clipboard read failed")
		return c.register, ""
	}
	if text == "" {
		return c.register, ""
	}
	return text, ""
}
