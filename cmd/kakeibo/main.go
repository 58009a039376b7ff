package main

import (
	"fmt"
	"os"
	"runtime"
	"strings"
)

// Version information - set via ldflags during build
var (
	version   = "1.0.0-dev"
	commit    = "unknown"
	buildDate = "unknown"
)

func main() {
	handled, code := dispatchSubcommand(os.Args[1:])
	if !handled {
		printHelp()
		code = 0
	}
	os.Exit(code)
}

func dispatchSubcommand(args []string) (bool, int) {
	if len(args) == 0 {
		return false, 0
	}
	switch args[0] {
	case "--version", "-v", "version":
		printVersion()
		return true, 0
	case "--help", "-h", "help":
		printHelp()
		return true, 0
	case "status":
		return true, runCommand(runStatusCommand, args[1:])
	case "add":
		return true, runCommand(runAddCommand, args[1:])
	case "group":
		return true, runCommand(runGroupCommand, args[1:])
	case "recurring":
		return true, runCommand(runRecurringCommand, args[1:])
	case "debt":
		return true, runCommand(runDebtCommand, args[1:])
	case "receive":
		return true, runCommand(runReceiveCommand, args[1:])
	case "edit":
		return true, runCommand(runEditCommand, args[1:])
	case "export":
		return true, runCommand(runExportCommand, args[1:])
	case "init":
		return true, runCommand(runInitCommand, args[1:])
	default:
		if strings.HasPrefix(args[0], "-") {
			fmt.Fprintf(os.Stderr, "Error: unknown flag: %s\n", args[0])
		} else {
			fmt.Fprintf(os.Stderr, "Error: unknown command: %s\n", args[0])
		}
		fmt.Fprintln(os.Stderr, "Run 'kakeibo --help' for usage.")
		return true, 1
	}
}

func runCommand(handler func([]string) error, args []string) int {
	if err := handler(args); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return exitCodeForError(err)
	}
	return 0
}

func printVersion() {
	fmt.Printf("Kakeibo %s\n", version)
	if commit != "unknown" {
		fmt.Printf("  Commit:     %s\n", commit)
	}
	if buildDate != "unknown" {
		fmt.Printf("  Built:      %s\n", buildDate)
	}
	fmt.Printf("  Go version: %s\n", runtime.Version())
}

func printHelp() {
	fmt.Println("Kakeibo - household ledger")
	fmt.Println()
	fmt.Println("USAGE:")
	fmt.Println("  kakeibo <COMMAND> [FLAGS]")
	fmt.Println()
	fmt.Println("COMMANDS:")
	fmt.Println("  status                           This month's spending, recurring dues, balances")
	fmt.Println("  add                              Record a single expense")
	fmt.Println("  add group | group                Record a group expense in the grid editor")
	fmt.Println("  recurring                        Record a recurring expense (rent, subscriptions)")
	fmt.Println("  debt                             Record an expense someone owes you for")
	fmt.Println("  receive                          Record money received from a person")
	fmt.Println("  edit [--id <id>]                 Settle a group expense in the grid editor")
	fmt.Println("  export [--format xlsx|csv] [--out <path>]")
	fmt.Println("                                   Write the ledger to a spreadsheet file")
	fmt.Println("  init                             Write a starter config file")
	fmt.Println("  version                          Print version information")
	fmt.Println()
	fmt.Println("ENVIRONMENT:")
	fmt.Println("  KAKEIBO_CONFIG                   Config file path")
	fmt.Println("  KAKEIBO_DATA_DIR                 Ledger file directory")
	fmt.Println("  KAKEIBO_PASSPHRASE               Ledger passphrase (skips the prompt)")
	fmt.Println()
	fmt.Println("The ledger file is encrypted with your passphrase. There is no")
	fmt.Println("recovery if you forget it.")
}
