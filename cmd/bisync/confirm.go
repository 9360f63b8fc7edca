package main

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/fatih/color"
	isatty "github.com/mattn/go-isatty"

	"github.com/nicolas-van/bisync/pkg/core"
)

// confirmationPolicy implements core.ConfirmationPolicy by prompting on the
// controlling terminal, mirroring the original bisync's confirm_copy,
// confirm_delete, and confirm_replace prompts: Enter alone answers yes, and
// only a leading 'n' answers no.
type confirmationPolicy struct{}

// stdinIsTerminal reports whether standard input is an interactive terminal.
// When it isn't (input redirected from a file or pipe, run under a job
// scheduler, etc.),
// there is no one to answer a prompt, so ask defaults to yes without
// blocking on a read that would never complete.
func stdinIsTerminal() bool {
	fd := os.Stdin.Fd()
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}

func ask(prompt string) bool {
	fmt.Print(prompt)
	if !stdinIsTerminal() {
		fmt.Println("y (stdin is not a terminal)")
		return true
	}
	reader := bufio.NewReader(os.Stdin)
	line, _ := reader.ReadString('\n')
	line = strings.TrimSpace(line)
	if line == "" {
		return true
	}
	return line[0] != 'n' && line[0] != 'N'
}

// ConfirmCopy implements core.ConfirmationPolicy.
func (confirmationPolicy) ConfirmCopy(from, to, path string) bool {
	fmt.Println(color.CyanString("File copy"))
	fmt.Printf("From: %s %s\n", from, path)
	fmt.Printf("To:   %s %s\n", to, path)
	return ask("Confirm ? ([Y]es, [n]o) ")
}

// ConfirmReplace implements core.ConfirmationPolicy.
func (confirmationPolicy) ConfirmReplace(from, to, path string) bool {
	fmt.Println(color.CyanString("File overwrite"))
	fmt.Printf("From: %s %s\n", from, path)
	fmt.Printf("To:   %s %s\n", to, path)
	return ask("Confirm ? ([Y]es, [n]o) ")
}

// ConfirmDelete implements core.ConfirmationPolicy.
func (confirmationPolicy) ConfirmDelete(from, to, path string) bool {
	fmt.Println(color.CyanString("File delete"))
	fmt.Printf("In: %s %s\n", to, path)
	return ask("Confirm ? ([Y]es, [n]o) ")
}

// conflictResolver implements core.ConflictResolver by first applying
// core.DefaultConflictResolver and then letting the terminal user override
// the result, mirroring the original bisync's resolve_conflict prompt: the
// default winner is shown capitalized, and pressing Enter accepts it.
type conflictResolver struct{}

// Resolve implements core.ConflictResolver.
func (conflictResolver) Resolve(path string, left, right core.History) core.Side {
	winner := core.DefaultConflictResolver{}.Resolve(path, left, right)

	fmt.Println(color.YellowString("Conflict!"))
	fmt.Printf("Left:  %s\n", path)
	fmt.Printf("Right: %s\n", path)

	var prompt string
	if winner == core.SideLeft {
		prompt = "Which one ? ([L]eft, [r]ight) "
	} else {
		prompt = "Which one ? ([l]eft, [R]ight) "
	}

	fmt.Print(prompt)
	if !stdinIsTerminal() {
		fmt.Println("(stdin is not a terminal, using default)")
		return winner
	}
	reader := bufio.NewReader(os.Stdin)
	line, _ := reader.ReadString('\n')
	line = strings.TrimSpace(line)
	if line == "" {
		return winner
	}
	switch line[0] {
	case 'l', 'L':
		return core.SideLeft
	case 'r', 'R':
		return core.SideRight
	default:
		return winner
	}
}
