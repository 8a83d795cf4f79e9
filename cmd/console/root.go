package main

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strings"

	"wanderlust/config"
	"wanderlust/models"
	"wanderlust/services"
	"wanderlust/services/planner"
	"wanderlust/utils"

	"github.com/spf13/cobra"
)

const (
	restartCommand = "/restart"
	quitCommand    = "/quit"
)

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:          "console",
		Short:        "Plan a trip from the terminal",
		SilenceUsage: true,
	}
	root.AddCommand(newChatCmd())
	return root
}

func newChatCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "chat",
		Short: "Start an interactive planning conversation",
		Long: "Answers are read line by line from stdin. Type " + restartCommand +
			" to start over and " + quitCommand + " to leave.",
		RunE: func(cmd *cobra.Command, _ []string) error {
			if err := config.LoadConfig(); err != nil {
				return fmt.Errorf("invalid configuration: %w", err)
			}
			ctx := cmd.Context()
			if ctx == nil {
				ctx = context.Background()
			}
			svc, release, err := services.NewPlannerService(ctx, config.AppConfig, utils.GetLogger())
			if err != nil {
				return err
			}
			defer release()
			return runChat(ctx, svc, cmd.InOrStdin(), cmd.OutOrStdout())
		},
	}
}

// runChat drives one session until stdin closes or the user quits.
func runChat(ctx context.Context, svc planner.PlannerService, in io.Reader, out io.Writer) error {
	created, err := svc.CreateSession(ctx)
	if err != nil {
		return err
	}
	printMessages(out, created.Messages)

	scanner := bufio.NewScanner(in)
	for {
		fmt.Fprint(out, "> ")
		if !scanner.Scan() {
			break
		}
		line := scanner.Text()

		var resp *models.ChatResponse
		switch strings.TrimSpace(line) {
		case quitCommand:
			return nil
		case restartCommand:
			resp, err = svc.Restart(ctx, created.SessionID)
		default:
			resp, err = svc.HandleMessage(ctx, created.SessionID, line)
		}
		if err != nil {
			return err
		}
		printMessages(out, resp.Messages)
	}
	fmt.Fprintln(out)
	return scanner.Err()
}

func printMessages(out io.Writer, msgs []string) {
	for _, m := range msgs {
		fmt.Fprintf(out, "%s\n\n", m)
	}
}
