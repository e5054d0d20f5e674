package cli

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"customer-service-chatbot/internal/chat"
	"customer-service-chatbot/internal/model"
)

func init() {
	cmd := &cobra.Command{
		Use:   "repl",
		Short: "Interactive chat session",
		Long: "Starts an interactive session against the full pipeline.\n" +
			"Commands: /history, /clear, /status, /quit",
		Run: runRepl,
	}

	RootCmd.AddCommand(cmd)
}

func runRepl(cmd *cobra.Command, args []string) {
	bot, err := newChatbot()
	if err != nil {
		exitErr("init", err)
	}
	defer bot.close()

	sessionID := uuid.NewString()
	fmt.Printf("Session %s. Type /quit to exit.\n", sessionID)

	scanner := bufio.NewScanner(os.Stdin)
	for {
		fmt.Print("> ")
		if !scanner.Scan() {
			return
		}
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}

		if strings.HasPrefix(line, "/") {
			if done := runReplCommand(cmd, bot, sessionID, line); done {
				return
			}
			continue
		}

		sc := model.Scope{SessionID: sessionID, RequestID: uuid.NewString()}
		result, err := bot.uc.Handle(cmd.Context(), sc, chat.HandleInput{
			Utterance: line,
			Mode:      bot.mode,
		})
		if err != nil {
			fmt.Fprintf(os.Stderr, "error: %v\n", err)
			continue
		}

		fmt.Printf("[%s] %s\n", result.Intent, result.Answer)
	}
}

// runReplCommand handles slash commands. Returns true when the session
// should end.
func runReplCommand(cmd *cobra.Command, bot *chatbot, sessionID, line string) bool {
	sc := model.Scope{SessionID: sessionID, RequestID: uuid.NewString()}

	switch line {
	case "/quit", "/exit":
		return true

	case "/history":
		out, err := bot.uc.History(cmd.Context(), sc)
		if err != nil {
			fmt.Fprintf(os.Stderr, "error: %v\n", err)
			return false
		}
		for _, e := range out.Entries {
			fmt.Printf("%s: %s\n", e.Role, e.Text)
		}

	case "/clear":
		if err := bot.uc.ClearHistory(cmd.Context(), sc); err != nil {
			fmt.Fprintf(os.Stderr, "error: %v\n", err)
			return false
		}
		fmt.Println("history cleared")

	case "/status":
		status := bot.uc.Status(cmd.Context())
		for name, cs := range status {
			state := "ok"
			if !cs.Healthy {
				state = "down"
				if cs.Detail != "" {
					state = "down (" + cs.Detail + ")"
				}
			}
			fmt.Printf("%-16s %s\n", name, state)
		}

	default:
		fmt.Println("commands: /history, /clear, /status, /quit")
	}

	return false
}
