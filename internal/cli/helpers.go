package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"github.com/thenoetrevino/tablero/internal/models"
)

// ParseStatusArg parses a status given on the command line, listing the
// valid values on failure
func ParseStatusArg(raw string) (models.Status, error) {
	status, err := models.ParseStatus(raw)
	if err != nil {
		return "", fmt.Errorf("%w (must be one of: %s)", err, statusNames())
	}
	return status, nil
}

// ParsePriorityArg parses a priority flag value
func ParsePriorityArg(raw string) (models.Priority, error) {
	priority, err := models.ParsePriority(raw)
	if err != nil {
		return "", fmt.Errorf("%w (must be one of: low, medium, high, urgent)", err)
	}
	return priority, nil
}

// GetTaskID reads the required --id flag
func GetTaskID(cmd *cobra.Command) (models.TaskID, error) {
	id, err := cmd.Flags().GetInt("id")
	if err != nil {
		return 0, err
	}
	if id <= 0 {
		return 0, fmt.Errorf("--id must be a positive task id, got %d", id)
	}
	return models.TaskID(id), nil
}

func statusNames() string {
	names := make([]string, 0, len(models.AllStatuses()))
	for _, s := range models.AllStatuses() {
		names = append(names, string(s))
	}
	return strings.Join(names, ", ")
}
