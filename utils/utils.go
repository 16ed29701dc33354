package utils

import (
	"os"
)

// FileExist reports whether filePath exists. Errors other than
// "does not exist" are returned to the caller.
func FileExist(filePath string) (bool, error) {
	_, err := os.Stat(filePath)
	if os.IsNotExist(err) {
		return false, nil
	}

	if err != nil {
		return false, err
	}

	return true, nil
}

func CreateDirIfNotExist(dir string) error {
	if _, err := os.Stat(dir); os.IsNotExist(err) {
		err := os.MkdirAll(dir, 0755)
		if err != nil {
			return err
		}
	}

	return nil
}

// WriteFileIfNotExist creates filePath with content unless it is already there.
func WriteFileIfNotExist(filePath string, content []byte) error {
	exist, err := FileExist(filePath)
	if err != nil || exist {
		return err
	}

	return os.WriteFile(filePath, content, 0600)
}
