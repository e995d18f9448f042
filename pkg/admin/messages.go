package admin

import "fmt"

const (
	saveErrorPrefix   = "Error saving customer:"
	createErrorPrefix = "Error creating customer:"
	deleteErrorPrefix = "Error deleting customer:"
)

// DeletePrompt is the confirmation question for deleting id.
func DeletePrompt(id int) string {
	return fmt.Sprintf("Are you sure you want to delete customer %d?", id)
}

// SaveError formats a failed update.
func SaveError(err error) string {
	return fmt.Sprintf("%s %v", saveErrorPrefix, err)
}

// CreateError formats a failed create.
func CreateError(err error) string {
	return fmt.Sprintf("%s %v", createErrorPrefix, err)
}

// DeleteError formats a failed delete.
func DeleteError(err error) string {
	return fmt.Sprintf("%s %v", deleteErrorPrefix, err)
}
