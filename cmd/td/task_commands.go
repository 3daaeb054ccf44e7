package main

import (
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/taskdeck/taskdeck/internal/ui"
	"github.com/taskdeck/taskdeck/task"
)

// td add
var addCmd = &cobra.Command{
	Use:   "add <title>",
	Short: "Add a new task",
	Args:  cobra.ExactArgs(1),
	RunE:  runAdd,
}

var (
	addDescription string
	addPriority    string
	addCategory    string
	addTags        []string
	addDue         string
	addRecur       string
)

// td list
var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List tasks",
	RunE:  runList,
}

var (
	listCategory  string
	listPriority  string
	listTag       string
	listSearch    string
	listSort      string
	listPending   bool
	listCompleted bool
	listJSON      bool
)

// td done
var doneCmd = &cobra.Command{
	Use:   "done <id>...",
	Short: "Toggle completion of one or more tasks",
	Long: `Toggle completion of one or more tasks.

Completing a recurring task schedules its next occurrence, which is
added as a new task moments later.`,
	Args: cobra.MinimumNArgs(1),
	RunE: runDone,
}

// td rm
var rmCmd = &cobra.Command{
	Use:   "rm <id>...",
	Short: "Delete one or more tasks",
	Args:  cobra.MinimumNArgs(1),
	RunE:  runRm,
}

// td show
var showCmd = &cobra.Command{
	Use:   "show <id>...",
	Short: "Show detailed information about tasks",
	Args:  cobra.MinimumNArgs(1),
	RunE:  runShow,
}

var (
	showJSON  bool
	showPlain bool
)

// td subtask
var subtaskCmd = &cobra.Command{
	Use:   "subtask",
	Short: "Manage subtasks",
}

var subtaskAddCmd = &cobra.Command{
	Use:   "add <task-id> <title>",
	Short: "Add a subtask to a task",
	Args:  cobra.ExactArgs(2),
	RunE:  runSubtaskAdd,
}

var subtaskDoneCmd = &cobra.Command{
	Use:   "done <task-id> <subtask-id>",
	Short: "Toggle completion of a subtask",
	Args:  cobra.ExactArgs(2),
	RunE:  runSubtaskDone,
}

var subtaskRmCmd = &cobra.Command{
	Use:   "rm <task-id> <subtask-id>",
	Short: "Delete a subtask",
	Args:  cobra.ExactArgs(2),
	RunE:  runSubtaskRm,
}

// td stats
var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show completion statistics per category",
	RunE:  runStats,
}

var statsJSON bool

// td export
var exportCmd = &cobra.Command{
	Use:   "export [file]",
	Short: "Export all tasks as JSON",
	Args:  cobra.MaximumNArgs(1),
	RunE:  runExport,
}

// td import
var importCmd = &cobra.Command{
	Use:   "import <file>",
	Short: "Import tasks from a JSON export, replacing the current collection",
	Args:  cobra.ExactArgs(1),
	RunE:  runImport,
}

// td clear
var clearCmd = &cobra.Command{
	Use:   "clear",
	Short: "Delete all tasks",
	RunE:  runClear,
}

var clearForce bool

func init() {
	rootCmd.AddCommand(addCmd, listCmd, doneCmd, rmCmd, showCmd, subtaskCmd,
		statsCmd, exportCmd, importCmd, clearCmd)
	subtaskCmd.AddCommand(subtaskAddCmd, subtaskDoneCmd, subtaskRmCmd)

	// add flags
	addCmd.Flags().StringVarP(&addDescription, "description", "d", "", "Description (use '-' to read from stdin)")
	addDescriptionFlagAliases(addCmd)
	addCmd.Flags().StringVarP(&addPriority, "priority", "p", "medium", "Priority (low, medium, high)")
	addCmd.Flags().StringVarP(&addCategory, "category", "c", "", "Category ID")
	addCmd.Flags().StringArrayVarP(&addTags, "tag", "t", nil, "Tag ID (repeatable)")
	addCmd.Flags().StringVar(&addDue, "due", "", "Due date (YYYY-MM-DD)")
	addCmd.Flags().StringVar(&addRecur, "recur", "", "Recurrence (daily, weekly, monthly)")

	// list flags
	listCmd.Flags().StringVarP(&listCategory, "category", "c", "", "Filter by category ID")
	listCmd.Flags().StringVarP(&listPriority, "priority", "p", "", "Filter by priority")
	listCmd.Flags().StringVarP(&listTag, "tag", "t", "", "Filter by tag ID")
	listCmd.Flags().StringVarP(&listSearch, "search", "s", "", "Search title, description, tag and category names")
	listCmd.Flags().StringVar(&listSort, "sort", "created", "Sort order (created, priority, category)")
	listCmd.Flags().BoolVar(&listPending, "pending", false, "Only pending tasks")
	listCmd.Flags().BoolVar(&listCompleted, "completed", false, "Only completed tasks")
	listCmd.Flags().BoolVar(&listJSON, "json", false, "Output as JSON")

	// show flags
	showCmd.Flags().BoolVar(&showJSON, "json", false, "Output as JSON")
	showCmd.Flags().BoolVar(&showPlain, "plain", false, "Reflow description as plain text instead of markdown")

	// stats flags
	statsCmd.Flags().BoolVar(&statsJSON, "json", false, "Output as JSON")

	// clear flags
	clearCmd.Flags().BoolVar(&clearForce, "force", false, "Skip confirmation")
}

func resolveDescriptionFromStdin(description string, reader io.Reader) (string, error) {
	if description != "-" {
		return description, nil
	}

	input, err := io.ReadAll(reader)
	if err != nil {
		return "", fmt.Errorf("read description from stdin: %w", err)
	}

	return strings.TrimRight(string(input), "\r\n"), nil
}

func parseDueDate(value string) (*time.Time, error) {
	if value == "" {
		return nil, nil
	}
	parsed, err := time.ParseInLocation("2006-01-02", value, time.Local)
	if err != nil {
		return nil, fmt.Errorf("invalid due date %q (expected YYYY-MM-DD)", value)
	}
	return &parsed, nil
}

func runAdd(cmd *cobra.Command, args []string) error {
	if cmd.Flags().Changed("description") {
		desc, err := resolveDescriptionFromStdin(addDescription, os.Stdin)
		if err != nil {
			return err
		}
		addDescription = desc
	}

	priority := task.Priority(strings.ToLower(addPriority))
	if !priority.IsValid() {
		return fmt.Errorf("invalid priority %q (valid: low, medium, high)", addPriority)
	}

	recurring := task.RecurringType(strings.ToLower(addRecur))
	if addRecur != "" && !recurring.IsValid() {
		return fmt.Errorf("invalid recurrence %q (valid: daily, weekly, monthly)", addRecur)
	}

	due, err := parseDueDate(addDue)
	if err != nil {
		return err
	}

	d, err := openDeck()
	if err != nil {
		return err
	}
	defer d.close()

	if err := d.validateCategory(addCategory); err != nil {
		return err
	}
	if err := d.validateTags(addTags); err != nil {
		return err
	}

	created := d.store.Create(args[0], task.CreateOptions{
		Description: addDescription,
		DueDate:     due,
		Priority:    priority,
		Category:    addCategory,
		Tags:        addTags,
		Recurring:   recurring,
	})
	if created == nil {
		return fmt.Errorf("title is required")
	}

	highlight := taskHighlighter(d.store.Tasks())
	fmt.Printf("Added task %s: %s\n", highlight(created.ID), created.Title)
	return nil
}

func runList(cmd *cobra.Command, args []string) error {
	sortBy := task.SortBy(listSort)
	if !sortBy.IsValid() {
		return fmt.Errorf("invalid sort %q (valid: created, priority, category)", listSort)
	}

	priority := task.Priority(strings.ToLower(listPriority))
	if listPriority != "" && !priority.IsValid() {
		return fmt.Errorf("invalid priority %q (valid: low, medium, high)", listPriority)
	}

	d, err := openDeck()
	if err != nil {
		return err
	}
	defer d.close()

	if err := d.validateCategory(listCategory); err != nil {
		return err
	}
	if listTag != "" {
		if err := d.validateTags([]string{listTag}); err != nil {
			return err
		}
	}

	view := task.View(d.store.Tasks(), d.reg, task.Filter{
		Category: listCategory,
		Priority: priority,
		Tag:      listTag,
		Search:   listSearch,
	}, sortBy)

	if listPending || listCompleted {
		pending, completed := task.Partition(view)
		switch {
		case listPending && listCompleted:
			// Both flags cancel out.
		case listPending:
			view = pending
		case listCompleted:
			view = completed
		}
	}

	if listJSON {
		return encodeJSONToStdout(view)
	}

	printTaskTable(view, d.reg, time.Now())
	return nil
}

func runDone(cmd *cobra.Command, args []string) error {
	d, err := openDeck()
	if err != nil {
		return err
	}
	defer d.close()

	highlight := taskHighlighter(d.store.Tasks())
	for _, arg := range args {
		id, err := d.resolveTaskID(arg)
		if err != nil {
			return err
		}

		updated := d.store.Toggle(id)
		if updated == nil {
			return fmt.Errorf("no task matches %q", arg)
		}

		if updated.Completed {
			fmt.Printf("Completed task %s: %s\n", highlight(updated.ID), updated.Title)
			if updated.IsRecurring && updated.RecurringType.IsValid() {
				fmt.Printf("Next %s occurrence scheduled.\n", updated.RecurringType)
			}
		} else {
			fmt.Printf("Reopened task %s: %s\n", highlight(updated.ID), updated.Title)
		}
	}
	return nil
}

func runRm(cmd *cobra.Command, args []string) error {
	d, err := openDeck()
	if err != nil {
		return err
	}
	defer d.close()

	highlight := taskHighlighter(d.store.Tasks())
	for _, arg := range args {
		id, err := d.resolveTaskID(arg)
		if err != nil {
			return err
		}

		if !d.store.Delete(id) {
			return fmt.Errorf("no task matches %q", arg)
		}
		fmt.Printf("Deleted task %s\n", highlight(id))
	}
	return nil
}

func runShow(cmd *cobra.Command, args []string) error {
	d, err := openDeck()
	if err != nil {
		return err
	}
	defer d.close()

	shown := make([]task.Task, 0, len(args))
	for _, arg := range args {
		id, err := d.resolveTaskID(arg)
		if err != nil {
			return err
		}
		for _, t := range d.store.Tasks() {
			if t.ID == id {
				shown = append(shown, t)
			}
		}
	}

	if showJSON {
		return encodeJSONToStdout(shown)
	}

	for i, t := range shown {
		if i > 0 {
			fmt.Println()
		}
		printTaskDetail(t, d.reg, showPlain, time.Now())
	}
	return nil
}

func runSubtaskAdd(cmd *cobra.Command, args []string) error {
	d, err := openDeck()
	if err != nil {
		return err
	}
	defer d.close()

	taskID, err := d.resolveTaskID(args[0])
	if err != nil {
		return err
	}

	created := d.store.AddSubtask(taskID, args[1])
	if created == nil {
		return fmt.Errorf("subtask title is required")
	}

	fmt.Printf("Added subtask %s: %s\n", created.ID, created.Title)
	return nil
}

func runSubtaskDone(cmd *cobra.Command, args []string) error {
	d, err := openDeck()
	if err != nil {
		return err
	}
	defer d.close()

	taskID, err := d.resolveTaskID(args[0])
	if err != nil {
		return err
	}
	subtaskID, err := d.resolveSubtaskID(taskID, args[1])
	if err != nil {
		return err
	}

	if !d.store.ToggleSubtask(taskID, subtaskID) {
		return fmt.Errorf("no subtask matches %q", args[1])
	}
	fmt.Printf("Toggled subtask %s\n", subtaskID)
	return nil
}

func runSubtaskRm(cmd *cobra.Command, args []string) error {
	d, err := openDeck()
	if err != nil {
		return err
	}
	defer d.close()

	taskID, err := d.resolveTaskID(args[0])
	if err != nil {
		return err
	}
	subtaskID, err := d.resolveSubtaskID(taskID, args[1])
	if err != nil {
		return err
	}

	if !d.store.DeleteSubtask(taskID, subtaskID) {
		return fmt.Errorf("no subtask matches %q", args[1])
	}
	fmt.Printf("Deleted subtask %s\n", subtaskID)
	return nil
}

func runStats(cmd *cobra.Command, args []string) error {
	d, err := openDeck()
	if err != nil {
		return err
	}
	defer d.close()

	tasks := d.store.Tasks()
	stats := task.Stats(tasks, d.reg)

	if statsJSON {
		return encodeJSONToStdout(stats)
	}

	pending, completed := task.Partition(tasks)
	fmt.Printf("%d tasks: %d pending, %d completed\n\n", len(tasks), len(pending), len(completed))
	fmt.Print(formatStatsTable(stats))
	return nil
}

func runExport(cmd *cobra.Command, args []string) error {
	d, err := openDeck()
	if err != nil {
		return err
	}
	defer d.close()

	doc := task.Export(d.store.Tasks(), time.Now())
	data, err := task.EncodeDocument(doc)
	if err != nil {
		return err
	}

	if len(args) == 0 {
		fmt.Println(string(data))
		return nil
	}

	if err := os.WriteFile(args[0], append(data, '\n'), 0o644); err != nil {
		return fmt.Errorf("write export file: %w", err)
	}
	fmt.Printf("Exported %d tasks to %s\n", len(doc.Tasks), args[0])
	return nil
}

func runImport(cmd *cobra.Command, args []string) error {
	data, err := readImportFile(args[0])
	if err != nil {
		return err
	}

	d, err := openDeck()
	if err != nil {
		return err
	}
	defer d.close()

	tasks, err := task.DecodeDocument(data, time.Now())
	if err != nil {
		return err
	}

	d.store.ReplaceAll(tasks)
	fmt.Printf("Imported %d tasks\n", len(tasks))
	return nil
}

func readImportFile(path string) ([]byte, error) {
	if path == "-" {
		data, err := io.ReadAll(os.Stdin)
		if err != nil {
			return nil, fmt.Errorf("read import from stdin: %w", err)
		}
		return data, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read import file: %w", err)
	}
	return data, nil
}

func runClear(cmd *cobra.Command, args []string) error {
	if !clearForce {
		return fmt.Errorf("refusing to delete all tasks without --force")
	}

	d, err := openDeck()
	if err != nil {
		return err
	}
	defer d.close()

	count := d.store.Len()
	d.store.ReplaceAll(nil)
	fmt.Printf("Cleared %d tasks\n", count)
	return nil
}

// taskHighlighter returns a function that highlights the unique prefix
// of an ID within the given collection.
func taskHighlighter(tasks []task.Task) func(string) string {
	ids := make([]string, len(tasks))
	for i, t := range tasks {
		ids[i] = t.ID
	}
	lengths := ui.UniqueIDPrefixLengths(ids)
	return func(id string) string {
		return ui.HighlightID(id, ui.PrefixLength(lengths, id))
	}
}
