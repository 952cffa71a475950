// ScrollGuard - block inactive-window scrolling
// When the chosen app is foreground, wheel events over other windows are
// swallowed system-wide; Alt-Tab away and everything scrolls normally again.
package main

import (
	"fmt"
	"log"
	"os"
	"os/signal"
	"runtime"
	"syscall"

	"scrollguard/internal/guard"
	"scrollguard/internal/osutils"
	"scrollguard/internal/selector"
	"scrollguard/internal/tray"
)

// Exit codes: 0 clean shutdown, 2 failed selection, 3 hook install failure.
const (
	exitSelection = 2
	exitHook      = 3
)

func main() {
	fmt.Println("ScrollGuard - block inactive-window scrolling when your chosen app is focused")
	fmt.Println("--------------------------------------------------------------------------------")
	fmt.Println()

	sys := selector.System{}
	choice, err := selector.Select(os.Stdin, os.Stdout, sys, sys)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Selection failed: %v\n", err)
		os.Exit(exitSelection)
	}

	fmt.Printf("\nMonitoring PID: %d (%s)\n", choice.Pid, choice.Name)
	fmt.Println("When this app is in the foreground, scrolling over other apps will be blocked.")
	fmt.Println("Press Ctrl+C to quit.")
	fmt.Println()

	if runtime.GOOS == "windows" && !osutils.IsAdmin() {
		log.Println("Note: running without administrator privileges; elevated apps may still receive wheel events")
	}

	engine := guard.NewEngine(guard.SystemQueries())
	engine.Protect(choice.Pid)

	hook := guard.NewHook(engine)
	if err := hook.Start(); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to install mouse hook: %v\n", err)
		fmt.Fprintln(os.Stderr, "A process running at a higher privilege level can block the hook; try an elevated console.")
		os.Exit(exitHook)
	}

	t := tray.New(fmt.Sprintf("ScrollGuard - protecting %s", choice.Name))
	t.AddMenuItem(fmt.Sprintf("Protecting %s (PID %d)", choice.Name, choice.Pid), nil)
	t.AddSeparator()
	t.AddMenuItem("Quit", func() {
		t.Stop()
	})

	// Ctrl+C, SIGTERM and the tray Quit item all funnel into the same
	// stop path; hook.Stop is idempotent so the races are harmless.
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, os.Interrupt, syscall.SIGTERM)
	go func() {
		<-sigCh
		log.Println("Shutting down...")
		hook.Stop()
		t.Stop()
	}()

	t.Run()

	hook.Stop()
	<-hook.Done()
	fmt.Println("Goodbye.")
}
