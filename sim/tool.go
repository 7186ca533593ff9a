package sim

import (
	"fmt"
	"io"
	"os"
	"os/exec"
	"os/signal"
	"path"
	"strings"
	"syscall"
	"time"

	"github.com/CodeWarrior1241/Unusual-FPGA-ADI-testbenches/log"
	"github.com/CodeWarrior1241/Unusual-FPGA-ADI-testbenches/util"
)

// Runner executes vendor tool commands. Tests substitute it to keep the
// vendor toolchain out of the loop.
type Runner interface {
	Run(cmd *exec.Cmd) error
}

// Tool invokes the vendor EDA toolchain.
type Tool struct {
	// Bin is the toolchain launcher binary.
	Bin string
	// Runner executes the prepared commands.
	Runner Runner
}

// NewTool returns a Tool that executes the given launcher binary.
func NewTool(bin string) *Tool {
	return &Tool{Bin: bin, Runner: execRunner{}}
}

// Source runs the launcher on a TCL script. In batch mode the tool
// output replaces logFile, so the log never mixes output of separate
// invocations; in gui mode the tool takes over the terminal.
func (t *Tool) Source(dir, script string, gui bool, logFile string) error {
	mode := "batch"
	if gui {
		mode = "gui"
	}
	args := []string{"-mode", mode, "-nojournal", "-nolog", "-source", script}
	log.Debug("Running vendor tool: '%s %s'\n", t.Bin, strings.Join(args, " "))

	if err := util.EnsureDir(dir); err != nil {
		return err
	}

	cmd := exec.Command(t.Bin, args...)
	cmd.Dir = dir
	cmd.Stderr = os.Stderr

	if gui {
		cmd.Stdout = os.Stdout
		return t.Runner.Run(cmd)
	}

	if err := util.EnsureDir(path.Dir(logFile)); err != nil {
		return err
	}
	file, err := os.OpenFile(logFile, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, util.FileMode)
	if err != nil {
		return err
	}
	defer file.Close()

	var stdout io.Writer = file
	if log.Verbose {
		stdout = io.MultiWriter(file, os.Stdout)
	} else {
		log.Spinner.Start()
		defer log.Spinner.Stop()
	}
	cmd.Stdout = stdout

	return t.Runner.Run(cmd)
}

// execRunner runs commands on the real system.
type execRunner struct{}

// Run starts the command and waits for it to finish. Ctrl-C is captured
// manually: the subprocess receives the first SIGINT through the shared
// process group and is given time to shut down; a rapid second Ctrl-C
// force-kills the whole group.
func (execRunner) Run(cmd *exec.Cmd) error {
	if err := cmd.Start(); err != nil {
		return fmt.Errorf("starting '%s' failed: %w", cmd.Path, err)
	}

	signals := make(chan os.Signal, 1)
	signal.Notify(signals, os.Interrupt, syscall.SIGINT)
	defer signal.Stop(signals)

	go func() {
		<-signals
		fmt.Println("SIGINT: Waiting for the vendor tool to finish...")

		var lastSignalTime *time.Time
		for {
			<-signals

			currentTime := time.Now()
			if lastSignalTime == nil || currentTime.Sub(*lastSignalTime) > 1*time.Second {
				fmt.Println("SIGINT: Press Ctrl-C again within 1 sec to force-kill the vendor tool...")
				lastSignalTime = &currentTime
			} else {
				fmt.Println("SIGINT: Killing the vendor tool and its subprocesses...")
				// Pass a negative PID to kill the whole process group. This
				// works only if this process is the group leader; otherwise
				// killing the group would be unsafe.
				if err := syscall.Kill(-syscall.Getpid(), syscall.SIGKILL); err != nil {
					fmt.Printf("Failed to kill the vendor tool: %s\n", err)
				}
			}
		}
	}()

	return cmd.Wait()
}
