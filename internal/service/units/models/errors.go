package models

import "fmt"

func errFieldRequired(field string) error {
	return fmt.Errorf("field %q is required", field)
}
