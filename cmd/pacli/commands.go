package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/pali/pali-terminal/internal/api"
	"github.com/pali/pali-terminal/internal/dates"
	"github.com/pali/pali-terminal/internal/ui"
)

// Todo command flags
var (
	addDescription string
	addDue         string
	addPriority    string
	addTags        []string

	listAll      bool
	listTag      string
	listPriority string

	updateTitle       string
	updateDescription string
	updateDue         string
	updatePriority    string
)

func init() {
	addCmd.Flags().StringVarP(&addDescription, "description", "D", "", "Todo description")
	addCmd.Flags().StringVar(&addDue, "due", "", "Due date (YYYY-MM-DD or \"YYYY-MM-DD HH:MM:SS\")")
	addCmd.Flags().StringVar(&addPriority, "priority", "medium", "Priority (low, medium, high)")
	addCmd.Flags().StringSliceVar(&addTags, "tags", nil, "Comma-separated tags")

	listCmd.Flags().BoolVar(&listAll, "all", false, "Include completed todos")
	listCmd.Flags().StringVar(&listTag, "tag", "", "Filter by tag")
	listCmd.Flags().StringVar(&listPriority, "priority", "", "Filter by priority (low, medium, high)")

	updateCmd.Flags().StringVar(&updateTitle, "title", "", "New title")
	updateCmd.Flags().StringVarP(&updateDescription, "description", "D", "", "New description")
	updateCmd.Flags().StringVar(&updateDue, "due", "", "New due date")
	updateCmd.Flags().StringVar(&updatePriority, "priority", "", "New priority (low, medium, high)")

	rootCmd.AddCommand(addCmd)
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(getCmd)
	rootCmd.AddCommand(updateCmd)
	rootCmd.AddCommand(deleteCmd)
	rootCmd.AddCommand(toggleCmd)
	rootCmd.AddCommand(completeCmd)
	rootCmd.AddCommand(searchCmd)
}

var addCmd = &cobra.Command{
	Use:   "add <title>",
	Short: "Add a new todo",
	Example: `  # Simple todo
  pacli add "Buy groceries"

  # With description and due date
  pacli add "Submit report" -D "quarterly numbers" --due 2026-09-15

  # High priority
  pacli add "Fix production bug" --priority high`,
	Args: cobra.ExactArgs(1),
	RunE: runAdd,
}

func runAdd(cmd *cobra.Command, args []string) error {
	client, err := newClient()
	if err != nil {
		return err
	}

	priority := api.ParsePriority(addPriority)
	req := api.CreateTodoRequest{
		Title:       args[0],
		Description: addDescription,
		Priority:    &priority,
	}

	if addDue != "" {
		ts, ok, err := dates.ParseInput(addDue)
		if err != nil {
			return fmt.Errorf("invalid --due value %q: %w", addDue, err)
		}
		if ok {
			req.DueDate = &ts
		}
	}

	todo, err := client.CreateTodo(req)
	if err != nil {
		return fmt.Errorf("failed to create todo: %w", err)
	}

	fmt.Printf("%s Created todo %s\n", ui.SuccessStyle.Render("✓"), ui.IDStyle.Render(api.ShortID(todo.ID)))
	fmt.Println(ui.FormatTodoLine(*todo, ui.GetTerminalWidth()))
	return nil
}

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List todos",
	Long: `List todos from the server.

Pending todos are shown by default; use --all to include completed
ones. The bracketed ID prefix shown for each todo can be passed to
get, update, delete, toggle, and complete.`,
	Example: `  # Pending todos
  pacli list

  # Everything, including completed
  pacli list --all

  # Only high priority
  pacli list --priority high`,
	Args: cobra.NoArgs,
	RunE: runList,
}

func runList(cmd *cobra.Command, args []string) error {
	client, err := newClient()
	if err != nil {
		return err
	}

	todos, err := client.ListTodos(listTag, listPriority)
	if err != nil {
		return fmt.Errorf("failed to list todos: %w", err)
	}

	printed := 0
	width := ui.GetTerminalWidth()
	for _, todo := range todos {
		if todo.Completed && !listAll {
			continue
		}
		fmt.Println(ui.FormatTodoLine(todo, width))
		printed++
	}

	if printed == 0 {
		if listAll {
			fmt.Println("No todos. Use 'pacli add <title>' to create one.")
		} else {
			fmt.Println("No pending todos. Use --all to include completed ones.")
		}
		return nil
	}

	fmt.Printf("\n%s\n", ui.LabelStyle.Render(fmt.Sprintf("%d todo(s)", printed)))
	return nil
}

var getCmd = &cobra.Command{
	Use:   "get <id>",
	Short: "Show a todo in full",
	Long: `Display every field of a single todo.

The ID may be abbreviated to any unique prefix.`,
	Example: `  pacli get a1b2c3d4
  pacli get a1b2c3d4-e5f6-7890-abcd-ef1234567890`,
	Args: cobra.ExactArgs(1),
	RunE: runGet,
}

func runGet(cmd *cobra.Command, args []string) error {
	client, err := newClient()
	if err != nil {
		return err
	}

	id, err := api.ResolvePartialID(client, args[0])
	if err != nil {
		return err
	}

	todo, err := client.GetTodo(id)
	if err != nil {
		return fmt.Errorf("failed to get todo: %w", err)
	}

	fmt.Println(ui.FormatTodoDetail(*todo))
	return nil
}

var updateCmd = &cobra.Command{
	Use:   "update <id>",
	Short: "Update fields of a todo",
	Long: `Update one or more fields of a todo. Only the flags you pass
change; everything else is left as is.`,
	Example: `  # Rename
  pacli update a1b2c3d4 --title "Buy groceries and wine"

  # Bump priority and set a due date
  pacli update a1b2c3d4 --priority high --due "2026-09-15 17:00:00"`,
	Args: cobra.ExactArgs(1),
	RunE: runUpdate,
}

func runUpdate(cmd *cobra.Command, args []string) error {
	client, err := newClient()
	if err != nil {
		return err
	}

	id, err := api.ResolvePartialID(client, args[0])
	if err != nil {
		return err
	}

	var req api.UpdateTodoRequest
	changed := false

	if cmd.Flags().Changed("title") {
		if strings.TrimSpace(updateTitle) == "" {
			return fmt.Errorf("title cannot be empty")
		}
		req.Title = &updateTitle
		changed = true
	}
	if cmd.Flags().Changed("description") {
		req.Description = &updateDescription
		changed = true
	}
	if cmd.Flags().Changed("priority") {
		priority := api.ParsePriority(updatePriority)
		req.Priority = &priority
		changed = true
	}
	if cmd.Flags().Changed("due") {
		ts, ok, err := dates.ParseInput(updateDue)
		if err != nil {
			return fmt.Errorf("invalid --due value %q: %w", updateDue, err)
		}
		if ok {
			req.DueDate = &ts
		}
		changed = true
	}

	if !changed {
		return fmt.Errorf("nothing to update: pass at least one of --title, --description, --priority, --due")
	}

	todo, err := client.UpdateTodo(id, req)
	if err != nil {
		return fmt.Errorf("failed to update todo: %w", err)
	}

	fmt.Printf("%s Updated todo %s\n", ui.SuccessStyle.Render("✓"), ui.IDStyle.Render(api.ShortID(todo.ID)))
	fmt.Println(ui.FormatTodoLine(*todo, ui.GetTerminalWidth()))
	return nil
}

var deleteCmd = &cobra.Command{
	Use:     "delete <id>",
	Short:   "Delete a todo",
	Example: `  pacli delete a1b2c3d4`,
	Args:    cobra.ExactArgs(1),
	RunE:    runDelete,
}

func runDelete(cmd *cobra.Command, args []string) error {
	client, err := newClient()
	if err != nil {
		return err
	}

	id, err := api.ResolvePartialID(client, args[0])
	if err != nil {
		return err
	}

	if err := client.DeleteTodo(id); err != nil {
		return fmt.Errorf("failed to delete todo: %w", err)
	}

	fmt.Printf("%s Deleted todo %s\n", ui.SuccessStyle.Render("✓"), ui.IDStyle.Render(api.ShortID(id)))
	return nil
}

var toggleCmd = &cobra.Command{
	Use:     "toggle <id>",
	Short:   "Toggle a todo between pending and completed",
	Example: `  pacli toggle a1b2c3d4`,
	Args:    cobra.ExactArgs(1),
	RunE:    runToggle,
}

func runToggle(cmd *cobra.Command, args []string) error {
	return toggleTodo(args[0], false)
}

var completeCmd = &cobra.Command{
	Use:   "complete <id>",
	Short: "Mark a todo as completed",
	Long: `Mark a todo as completed. Unlike toggle, completing an
already-completed todo leaves it completed.`,
	Example: `  pacli complete a1b2c3d4`,
	Args:    cobra.ExactArgs(1),
	RunE:    runComplete,
}

func runComplete(cmd *cobra.Command, args []string) error {
	return toggleTodo(args[0], true)
}

// toggleTodo flips or completes the given todo. When completeOnly is
// set, an already-completed todo is left alone.
func toggleTodo(partial string, completeOnly bool) error {
	client, err := newClient()
	if err != nil {
		return err
	}

	id, err := api.ResolvePartialID(client, partial)
	if err != nil {
		return err
	}

	if completeOnly {
		current, err := client.GetTodo(id)
		if err != nil {
			return fmt.Errorf("failed to get todo: %w", err)
		}
		if current.Completed {
			fmt.Printf("Todo %s is already completed\n", ui.IDStyle.Render(api.ShortID(id)))
			return nil
		}
	}

	todo, err := client.ToggleTodo(id)
	if err != nil {
		return fmt.Errorf("failed to toggle todo: %w", err)
	}

	if todo.Completed {
		fmt.Printf("%s Completed %q\n", ui.SuccessStyle.Render("✓"), todo.Title)
	} else {
		fmt.Printf("%s Reopened %q\n", ui.SuccessStyle.Render("○"), todo.Title)
	}
	return nil
}

var searchCmd = &cobra.Command{
	Use:   "search <query>",
	Short: "Search todos by title and description",
	Long: `Search todos with a case-insensitive substring match against
titles and descriptions.`,
	Example: `  pacli search groceries
  pacli search "quarterly report"`,
	Args: cobra.ExactArgs(1),
	RunE: runSearch,
}

func runSearch(cmd *cobra.Command, args []string) error {
	client, err := newClient()
	if err != nil {
		return err
	}

	todos, err := client.SearchTodos(args[0])
	if err != nil {
		return fmt.Errorf("search failed: %w", err)
	}

	if len(todos) == 0 {
		fmt.Printf("No todos matching %q\n", args[0])
		return nil
	}

	width := ui.GetTerminalWidth()
	for _, todo := range todos {
		fmt.Println(ui.FormatTodoLine(todo, width))
	}
	fmt.Printf("\n%s\n", ui.LabelStyle.Render(fmt.Sprintf("%d match(es)", len(todos))))
	return nil
}
