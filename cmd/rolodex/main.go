package main

import (
	"flag"
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"

	"gitlab.com/dirk.krummacker/rolodex/internal/config"
	"gitlab.com/dirk.krummacker/rolodex/internal/rolodex"
	"gitlab.com/dirk.krummacker/rolodex/internal/tui"
)

// Usage example on the command line:
// > ROLODEX_LOG_LEVEL=info rolodex -file family.json
func main() {
	fileFlag := flag.String("file", "", "Contacts file to use (overrides configuration)")
	logLevelFlag := flag.String("log-level", "", "Log level: debug, info, warning or error (overrides configuration)")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		fatal("%s", err)
	}
	if *fileFlag != "" {
		cfg.ContactsFile = *fileFlag
	}
	if *logLevelFlag != "" {
		cfg.LogLevel = *logLevelFlag
		if err := cfg.Validate(); err != nil {
			fatal("%s", err)
		}
	}
	cfg.SetupLogging()

	rolo := rolodex.Open(cfg.ContactsFile)

	p := tea.NewProgram(tui.NewModel(rolo, cfg.DefaultSort), tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		fatal("%s", err)
	}
}

func fatal(format string, args ...any) {
	fmt.Fprintln(os.Stderr, "error: "+fmt.Sprintf(format, args...))
	os.Exit(1)
}
