package sheets

import "fmt"

// Table identifies which logical table a failure belongs to.
type Table string

const (
	TablePosts    Table = "posts"
	TableComments Table = "comments"
)

// TableError is a failed fetch of one table.
type TableError struct {
	Table Table
	Sheet string
	Err   error
}

func (e *TableError) Error() string {
	return fmt.Sprintf("failed to load %s: %v", e.Table, e.Err)
}

func (e *TableError) Unwrap() error {
	return e.Err
}
