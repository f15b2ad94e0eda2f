package main

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/halo-agent/halo/internal"
	"github.com/spf13/cobra"
)

func NewWatchCmd(runUC *internal.RunUseCase) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "watch <transcript-file>",
		Short: "Watch a transcript and re-run on change",
		Long:  `Watch a transcript file and re-run the mediation pipeline whenever it changes.`,
		Args:  cobra.ExactArgs(1),
		RunE:  makeWatchRunner(runUC),
	}

	cmd.Flags().Duration("debounce", 500*time.Millisecond, "Debounce window for batching changes")
	return cmd
}

func makeWatchRunner(runUC *internal.RunUseCase) func(*cobra.Command, []string) error {
	return func(cmd *cobra.Command, args []string) error {
		transcript := args[0]
		scopeHint, _ := cmd.Flags().GetString("scope")
		debounce, _ := cmd.Flags().GetDuration("debounce")

		if _, err := os.Stat(transcript); err != nil {
			return fmt.Errorf("stat transcript: %w", err)
		}

		watcher, err := fsnotify.NewWatcher()
		if err != nil {
			return fmt.Errorf("create watcher: %w", err)
		}
		defer watcher.Close()

		// Watch the directory: editors replace files on save, which drops
		// a watch on the file itself.
		if err := watcher.Add(filepath.Dir(transcript)); err != nil {
			return fmt.Errorf("add watch dir: %w", err)
		}

		fmt.Fprintf(cmd.OutOrStdout(), "Watching %s for changes...\n", transcript)

		timer := time.NewTimer(0)
		if !timer.Stop() {
			<-timer.C
		}
		pending := false

		for {
			select {
			case <-cmd.Context().Done():
				return nil
			case event, ok := <-watcher.Events:
				if !ok {
					return nil
				}
				if shouldIgnoreEvent(event, transcript) {
					continue
				}
				if !pending {
					timer.Reset(debounce)
					pending = true
				}
			case err, ok := <-watcher.Errors:
				if !ok {
					return nil
				}
				fmt.Fprintf(cmd.ErrOrStderr(), "watch error: %v\n", err)
			case <-timer.C:
				pending = false
				chat, readErr := os.ReadFile(transcript)
				if readErr != nil {
					fmt.Fprintf(cmd.ErrOrStderr(), "read transcript: %v\n", readErr)
					continue
				}
				out, runErr := runUC.Execute(cmd.Context(), internal.RunInput{
					Chat: string(chat), Scope: scopeHint,
				})
				if runErr != nil {
					fmt.Fprintf(cmd.ErrOrStderr(), "run: %v\n", runErr)
					continue
				}
				fmt.Fprintf(cmd.OutOrStdout(), "[%s] %s tension=%s notify=%t\n",
					out.Timestamp, out.Result.ConclusionType(), out.TensionLevel, out.Result.InterventionPlan.ShouldNotify)
			}
		}
	}
}

func shouldIgnoreEvent(event fsnotify.Event, transcript string) bool {
	if filepath.Clean(event.Name) != filepath.Clean(transcript) {
		return true
	}

	if event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename) == 0 {
		return true
	}

	return false
}
