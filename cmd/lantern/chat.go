package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"github.com/lanternml/lantern/model"
	"github.com/lanternml/lantern/persist"
	"github.com/lanternml/lantern/provider/openairesponses"
)

var chatFlags struct {
	dbPath string
	chatID string
	system string
}

var chatCmd = &cobra.Command{
	Use:   "chat [message]",
	Short: "Continue a persisted conversation",
	Long: `Send one message in a conversation stored in a local SQLite database.
History is reloaded on every invocation, and server-side conversation
chaining picks up from the last stored response id.

Examples:
  lantern chat "What is the capital of France?"
  lantern chat "And its population?"
  lantern chat --chat-id trip-planning "Where should I go in May?"`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		p, err := newProvider()
		if err != nil {
			return err
		}
		db, err := gorm.Open(sqlite.Open(chatFlags.dbPath), &gorm.Config{
			Logger: gormlogger.Default.LogMode(gormlogger.Silent),
		})
		if err != nil {
			return fmt.Errorf("open %s: %w", chatFlags.dbPath, err)
		}
		rec, err := persist.NewRecorder(db)
		if err != nil {
			return err
		}

		history, err := rec.History(chatFlags.chatID)
		if err != nil {
			return err
		}

		var messages []model.Message
		if chatFlags.system != "" && len(history) == 0 {
			messages = append(messages, model.NewSystemMessage(chatFlags.system))
		}
		messages = append(messages, history...)
		user := model.NewUserMessage(strings.Join(args, " "))
		messages = append(messages, user)

		msg, err := p.Complete(cmd.Context(), &openairesponses.Request{
			Model:    modelID,
			Messages: messages,
		})
		if err != nil {
			return err
		}
		if err := rec.SaveExchange(chatFlags.chatID, &user, msg); err != nil {
			return err
		}
		fmt.Println(msg.Text())
		return nil
	},
}

func init() {
	chatCmd.Flags().StringVar(&chatFlags.dbPath, "db", "lantern.db", "SQLite database path")
	chatCmd.Flags().StringVar(&chatFlags.chatID, "chat-id", "default", "conversation identifier")
	chatCmd.Flags().StringVar(&chatFlags.system, "system", "", "system instructions for a new conversation")
	rootCmd.AddCommand(chatCmd)
}
