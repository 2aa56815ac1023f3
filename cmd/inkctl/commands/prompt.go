package commands

import (
	"fmt"
	"io"
	"os"
	"strings"

	"inkwell/internal/errors"

	"github.com/spf13/cobra"
	"golang.org/x/term"
)

// readPassword reads without echo from a terminal and a plain line otherwise.
func readPassword(cmd *cobra.Command, prompt string) (string, error) {
	fmt.Fprint(cmd.ErrOrStderr(), prompt)

	if f, ok := cmd.InOrStdin().(*os.File); ok && term.IsTerminal(int(f.Fd())) {
		pw, err := term.ReadPassword(int(f.Fd()))
		fmt.Fprintln(cmd.ErrOrStderr())
		if err != nil {
			return "", errors.Wrap(err, "read password")
		}

		return string(pw), nil
	}

	line, err := readLine(cmd.InOrStdin())
	if err != nil {
		return "", errors.Wrap(err, "read password")
	}

	return line, nil
}

// readLine reads up to a newline without buffering past it, so consecutive
// prompts can share one piped stdin.
func readLine(r io.Reader) (string, error) {
	var sb strings.Builder
	buf := make([]byte, 1)
	for {
		n, err := r.Read(buf)
		if n == 1 {
			if buf[0] == '\n' {
				break
			}
			sb.WriteByte(buf[0])
		}
		if errors.Is(err, io.EOF) {
			if sb.Len() == 0 {
				return "", err
			}
			break
		}
		if err != nil {
			return "", err
		}
	}

	return strings.TrimRight(sb.String(), "\r"), nil
}
