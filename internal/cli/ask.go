package cli

import (
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"customer-service-chatbot/internal/chat"
	"customer-service-chatbot/internal/model"
)

func init() {
	cmd := &cobra.Command{
		Use:   "ask [question]",
		Short: "Ask a single question",
		Long:  "Sends one question through the full pipeline and prints the answer.",
		Args:  cobra.MinimumNArgs(1),
		Run:   runAsk,
	}

	cmd.Flags().BoolP("verbose", "v", false, "Show intent, generated SQL, and diagnostics")

	RootCmd.AddCommand(cmd)
}

func runAsk(cmd *cobra.Command, args []string) {
	verbose, _ := cmd.Flags().GetBool("verbose")
	question := strings.Join(args, " ")

	bot, err := newChatbot()
	if err != nil {
		exitErr("init", err)
	}
	defer bot.close()

	sc := model.Scope{SessionID: uuid.NewString(), RequestID: uuid.NewString()}
	result, err := bot.uc.Handle(cmd.Context(), sc, chat.HandleInput{
		Utterance: question,
		Mode:      bot.mode,
	})
	if err != nil {
		exitErr("ask", err)
	}

	fmt.Println(result.Answer)
	if verbose {
		printDetails(result)
	}
}

func printDetails(result chat.QueryResult) {
	fmt.Printf("\n-- intent: %s\n", result.Intent)
	if result.GeneratedSQL != "" {
		fmt.Printf("-- sql: %s\n", result.GeneratedSQL)
	}
	for _, d := range result.Diagnostics {
		fmt.Printf("-- diagnostic: %s\n", d)
	}
}
