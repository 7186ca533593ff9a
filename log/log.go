package log

import (
	"fmt"
	"io/ioutil"
	"os"
	"path"
	"strings"
	"time"

	"github.com/briandowns/spinner"
	"github.com/sirupsen/logrus"
)

// Verbose controls whether debug messages are being printed.
var Verbose bool

// IndentationLevel controls the amount of indentation of log messages.
var IndentationLevel = 0

// Spinner is shown while a vendor tool invocation is in flight.
var Spinner = spinner.New(spinner.CharSets[14], 100*time.Millisecond, spinner.WithWriter(os.Stderr))

var errorOccured = false

// mirror records all messages into a plain-text file for post-mortem reading.
var mirror = logrus.New()

func init() {
	mirror.SetOutput(ioutil.Discard)
	mirror.SetLevel(logrus.DebugLevel)
	mirror.SetFormatter(&logrus.TextFormatter{DisableColors: true, FullTimestamp: true})
}

// ErrorOccured reports whether any errors have occured.
func ErrorOccured() bool {
	return errorOccured
}

// lazyFile is a writer that creates its file, and the directory holding it,
// only once the first message arrives. Until then nothing touches the disk.
type lazyFile struct {
	path string
	file *os.File
	err  error
}

func (l *lazyFile) Write(p []byte) (int, error) {
	if l.file == nil && l.err == nil {
		if l.err = os.MkdirAll(path.Dir(l.path), 0775); l.err == nil {
			l.file, l.err = os.OpenFile(l.path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0664)
		}
	}
	if l.err != nil {
		// The mirror is best effort, a broken mirror never fails the tool.
		return len(p), nil
	}
	return l.file.Write(p)
}

// MirrorToFile appends a copy of all subsequent log messages to the given
// file. The file is created on the first message.
func MirrorToFile(filePath string) {
	mirror.SetOutput(&lazyFile{path: filePath})
}

// Log prints an indented and formatted message to os.Stderr.
func Log(format string, a ...interface{}) {
	fmt.Fprintf(os.Stderr, strings.Repeat("  ", IndentationLevel)+format, a...)
	mirror.Infof(strings.TrimSuffix(format, "\n"), a...)
}

// Debug prints an indented and formatted debug message to os.Stderr if verbose output is selected.
func Debug(format string, a ...interface{}) {
	if Verbose {
		fmt.Fprintf(os.Stderr, strings.Repeat("  ", IndentationLevel)+"\033[36mDebug: \033[0m"+format, a...)
	}
	mirror.Debugf(strings.TrimSuffix(format, "\n"), a...)
}

// Success prints an indented and formatted success message to os.Stderr.
func Success(format string, a ...interface{}) {
	fmt.Fprintf(os.Stderr, strings.Repeat("  ", IndentationLevel)+"\033[32mSuccess: \033[0m"+format, a...)
	mirror.Infof("Success: "+strings.TrimSuffix(format, "\n"), a...)
}

// Warning prints an indented and formatted warning to os.Stderr.
func Warning(format string, a ...interface{}) {
	fmt.Fprintf(os.Stderr, strings.Repeat("  ", IndentationLevel)+"\033[33mWarning: \033[0m"+format, a...)
	mirror.Warnf(strings.TrimSuffix(format, "\n"), a...)
}

// Error prints an indented and formatted error message to os.Stderr.
func Error(format string, a ...interface{}) {
	errorOccured = true
	fmt.Fprintf(os.Stderr, strings.Repeat("  ", IndentationLevel)+"\033[31mError: \033[0m"+format, a...)
	mirror.Errorf(strings.TrimSuffix(format, "\n"), a...)
}

// Fatal prints an indented and formatted error message to os.Stderr and terminates the program.
func Fatal(format string, a ...interface{}) {
	Error(format, a...)
	fmt.Fprintf(os.Stderr, "\033[31mA fatal error occured. Exiting...\033[0m\n")
	os.Exit(1)
}
