package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/taskforge/taskforge/client"
	"github.com/taskforge/taskforge/models"
)

// tokenFile is the CLI's stand-in for the web UI's localStorage: the
// token survives between invocations, nothing else does.
func tokenFile() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".taskcli", "token"), nil
}

func loadToken(c *client.Client) {
	path, err := tokenFile()
	if err != nil {
		return
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return
	}
	if token := strings.TrimSpace(string(data)); token != "" {
		c.SetToken(token)
	}
}

func saveToken(token string) error {
	path, err := tokenFile()
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(path), 0700); err != nil {
		return err
	}
	return os.WriteFile(path, []byte(token), 0600)
}

func clearToken() {
	if path, err := tokenFile(); err == nil {
		os.Remove(path)
	}
}

func newRootCommand() *cobra.Command {
	var baseURL string
	var api *client.Client

	root := &cobra.Command{
		Use:   "taskcli",
		Short: "Command-line client for the task tracker API",
		Long: `taskcli talks to a running task tracker server.

EXAMPLES:
  taskcli register alice            # Create an account (prompts are not used; pass the password)
  taskcli login alice pw1           # Log in; the token is saved to ~/.taskcli/token
  taskcli add "Buy milk"            # Create a task
  taskcli list                      # List your tasks
  taskcli done 3                    # Mark task 3 complete
  taskcli rm 3                      # Delete task 3
  taskcli logout                    # Forget the saved token`,
		SilenceUsage: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			api = client.New(baseURL)
			loadToken(api)
		},
	}
	root.PersistentFlags().StringVar(&baseURL, "api", envOr("TASKCLI_API", "http://localhost:5000"), "base URL of the task tracker API")

	root.AddCommand(&cobra.Command{
		Use:   "register <username> <password>",
		Short: "Create a new account",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			user, err := api.Register(args[0], args[1])
			if err != nil {
				return err
			}
			fmt.Printf("Registered %s (id %d). Now run: taskcli login %s <password>\n", user.Username, user.ID, user.Username)
			return nil
		},
	})

	root.AddCommand(&cobra.Command{
		Use:   "login <username> <password>",
		Short: "Log in and save the token",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := api.Login(args[0], args[1]); err != nil {
				return err
			}
			if err := saveToken(api.Token()); err != nil {
				return fmt.Errorf("logged in but could not save token: %w", err)
			}
			fmt.Println("Logged in.")
			return nil
		},
	})

	root.AddCommand(&cobra.Command{
		Use:   "logout",
		Short: "Forget the saved token",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			api.Logout()
			clearToken()
			fmt.Println("Logged out.")
		},
	})

	root.AddCommand(&cobra.Command{
		Use:   "list",
		Short: "List your tasks",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			tasks, err := api.Tasks()
			if err != nil {
				return err
			}
			if len(tasks) == 0 {
				fmt.Println("No tasks.")
				return nil
			}
			for _, task := range tasks {
				printTask(task)
			}
			return nil
		},
	})

	var description string
	addCmd := &cobra.Command{
		Use:   "add <title>",
		Short: "Create a task",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var desc *string
			if cmd.Flags().Changed("description") {
				desc = &description
			}
			task, err := api.CreateTask(args[0], desc)
			if err != nil {
				return err
			}
			printTask(task)
			return nil
		},
	}
	addCmd.Flags().StringVarP(&description, "description", "d", "", "optional task description")
	root.AddCommand(addCmd)

	root.AddCommand(&cobra.Command{
		Use:   "done <id>",
		Short: "Mark a task complete",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := strconv.ParseInt(args[0], 10, 64)
			if err != nil {
				return fmt.Errorf("invalid task id %q", args[0])
			}
			complete := true
			task, err := api.UpdateTask(id, models.TaskPatch{IsComplete: &complete})
			if err != nil {
				return err
			}
			printTask(task)
			return nil
		},
	})

	var newTitle, newDescription string
	editCmd := &cobra.Command{
		Use:   "edit <id>",
		Short: "Change a task's title or description",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := strconv.ParseInt(args[0], 10, 64)
			if err != nil {
				return fmt.Errorf("invalid task id %q", args[0])
			}
			var patch models.TaskPatch
			if cmd.Flags().Changed("title") {
				patch.Title = &newTitle
			}
			if cmd.Flags().Changed("description") {
				patch.Description = &newDescription
			}
			task, err := api.UpdateTask(id, patch)
			if err != nil {
				return err
			}
			printTask(task)
			return nil
		},
	}
	editCmd.Flags().StringVarP(&newTitle, "title", "t", "", "new title")
	editCmd.Flags().StringVarP(&newDescription, "description", "d", "", "new description")
	root.AddCommand(editCmd)

	root.AddCommand(&cobra.Command{
		Use:   "rm <id>",
		Short: "Delete a task",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := strconv.ParseInt(args[0], 10, 64)
			if err != nil {
				return fmt.Errorf("invalid task id %q", args[0])
			}
			if err := api.DeleteTask(id); err != nil {
				return err
			}
			fmt.Println("Deleted.")
			return nil
		},
	})

	return root
}

func printTask(task models.Task) {
	mark := " "
	if task.IsComplete {
		mark = "x"
	}
	line := fmt.Sprintf("[%s] %d  %s", mark, task.ID, task.Title)
	if task.Description != nil && *task.Description != "" {
		line += " - " + *task.Description
	}
	fmt.Println(line)
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
