package main

import (
	"fmt"
	"strings"

	"motherlanka-be/internal/dto"
	"motherlanka-be/internal/service"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

var askLimit int

var askCmd = &cobra.Command{
	Use:   "ask <question>",
	Short: "Answer a question through the same chat path as POST /api/chat",
	Long: `ask runs the chat service the HTTP server uses, with failure detail
shown. Pass --verbose to log the assembled prompt.`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg := loadConfig()
		rag, err := openRag(cfg)
		if err != nil {
			return err
		}
		defer rag.Close()

		chatbot := service.NewChatbotService(rag.Indexer, rag.Retriever, rag.Generator, nil, rag.Embedder, rag.Logger,
			service.ChatbotOptions{TopK: askLimit, ExposeErrors: true})

		res := chatbot.HandleChat(cmd.Context(), &dto.ChatRequest{Message: strings.Join(args, " ")})
		if res.Error != "" {
			color.Red("Generation failed: %s", res.Error)
		}
		fmt.Println(res.Reply)

		if len(res.Sources) > 0 {
			color.Cyan("\nSources:")
			for _, src := range res.Sources {
				fmt.Printf("  - %s (%s:%s) %.3f\n", src.Title, src.Type, src.RefId, src.Score)
			}
		}
		return nil
	},
}

func init() {
	askCmd.Flags().IntVarP(&askLimit, "limit", "n", 5, "Number of sources")
	rootCmd.AddCommand(askCmd)
}
