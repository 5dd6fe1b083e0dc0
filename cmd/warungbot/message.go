package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/warungdigital/warung-backend/internal/config"
	"github.com/warungdigital/warung-backend/internal/services"
)

// messageCmd processes a single dialog turn from the command line and prints
// the reply. Handy for poking at the dialog without a webhook; note that with
// the in-memory store each invocation starts a fresh session.
var messageCmd = &cobra.Command{
	Use:   "message <text> <phone>",
	Short: "Process one message and print the bot reply",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load()
		if err != nil {
			return err
		}

		store, _, err := buildStore(cfg)
		if err != nil {
			return err
		}

		bot := services.NewBotService(store, services.NewSessionStore())
		reply, err := bot.ProcessMessage(args[1], args[0])
		if err != nil {
			return err
		}

		fmt.Println(reply)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(messageCmd)
}
