package domain

import "fmt"

// FetchError означает, что коллекцию фотографий не удалось получить или разобрать.
type FetchError struct {
	Source string
	Err    error
}

func (e *FetchError) Error() string {
	return fmt.Sprintf("не удалось получить фото из %s: %v", e.Source, e.Err)
}

func (e *FetchError) Unwrap() error {
	return e.Err
}
