// Package viewer implements the closing prompt that can open the forecast in a browser.
package viewer

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/pkg/browser"
)

// Keyword typed at the prompt to open the viewer URL
const Keyword = "view"

// PromptText is written before waiting for input
const PromptText = "Press enter to close..."

// Opener opens a URL for the user
type Opener interface {
	Open(url string) error
}

// BrowserOpener opens URLs in the system's default browser
type BrowserOpener struct{}

func (BrowserOpener) Open(url string) error {
	return browser.OpenURL(url)
}

// OpenerFunc adapts a function to the Opener interface
type OpenerFunc func(url string) error

func (f OpenerFunc) Open(url string) error {
	return f(url)
}

// Prompt waits for one line of input. If the line is exactly Keyword the url
// is handed to opener. It reports whether the url was opened.
func Prompt(in io.Reader, out io.Writer, url string, opener Opener) (bool, error) {
	if _, err := fmt.Fprintln(out, PromptText); err != nil {
		return false, fmt.Errorf("failed to write prompt: %w", err)
	}

	line, err := bufio.NewReader(in).ReadString('\n')
	if err != nil && !errors.Is(err, io.EOF) {
		return false, fmt.Errorf("failed to read input: %w", err)
	}
	line = strings.TrimSuffix(line, "\n")
	line = strings.TrimSuffix(line, "\r")

	if line != Keyword || url == "" {
		return false, nil
	}
	if err := opener.Open(url); err != nil {
		return false, fmt.Errorf("failed to open %s: %w", url, err)
	}
	return true, nil
}
