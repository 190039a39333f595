package main

import (
	"io"
	"os"

	"github.com/prestosql/prestocst/internal/xerrors"
)

// readSource reads SQL text from path, or from stdin when path is "-".
func readSource(path string) (string, error) {
	if path == "-" {
		data, err := io.ReadAll(os.Stdin)
		if err != nil {
			return "", xerrors.NewInputError("failed to read stdin", err)
		}
		return string(data), nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return "", xerrors.New(xerrors.ErrFileNotFound, "no such file: "+path)
		}
		return "", xerrors.NewInputError("failed to read "+path, err)
	}
	return string(data), nil
}
