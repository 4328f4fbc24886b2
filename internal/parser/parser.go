package parser

import (
	"fmt"
	"io"
	"os"
	"strings"

	stderrors "errors"

	"github.com/mcncl/jsonlite/internal/errors"
	"github.com/mcncl/jsonlite/internal/models"
)

// Parse reads a whole JSON document from reader and decodes it with the
// built-in decoder into an IntermediateRepresentation. Decode failures are
// wrapped in an AppError of type parsing; the underlying *ParseError stays
// reachable through errors.As for callers that want the offset and snippet.
func Parse(reader io.Reader) (models.IntermediateRepresentation, error) {
	data, err := io.ReadAll(reader)
	if err != nil {
		return models.IntermediateRepresentation{}, errors.NewInputError("failed to read input", err)
	}
	return ParseString(string(data))
}

// ParseString decodes a JSON document held in a string
func ParseString(jsonString string) (models.IntermediateRepresentation, error) {
	if strings.TrimSpace(jsonString) == "" {
		return models.IntermediateRepresentation{}, errors.NewParsingError("input is empty or contains only whitespace", errors.ErrEmptyInput)
	}

	root, err := Decode(jsonString)
	if err != nil {
		var parseErr *ParseError
		if stderrors.As(err, &parseErr) {
			return models.IntermediateRepresentation{}, errors.NewParsingError(
				fmt.Sprintf("%s at offset %d", parseErr.Message, parseErr.Offset),
				parseErr,
			)
		}
		return models.IntermediateRepresentation{}, errors.NewParsingError("failed to decode JSON", err)
	}

	ir := models.IntermediateRepresentation{Root: root}
	// Decode only admits objects and arrays at the root, so a type switch
	// over those two is enough here.
	if _, ok := root.(models.JSONArray); ok {
		ir.RootIsArray = true
	}
	return ir, nil
}

// ParseFile decodes JSON from a file path
func ParseFile(filePath string) (models.IntermediateRepresentation, error) {
	if strings.TrimSpace(filePath) == "" {
		return models.IntermediateRepresentation{}, errors.NewInputError("file path is empty", errors.ErrInvalidFilePath)
	}
	file, err := os.Open(filePath)
	if err != nil {
		if os.IsNotExist(err) {
			return models.IntermediateRepresentation{}, errors.NewInputError(
				fmt.Sprintf("file '%s' not found", filePath),
				errors.ErrFileNotFound,
			)
		}
		return models.IntermediateRepresentation{}, errors.NewInputError(
			fmt.Sprintf("failed to open file '%s'", filePath),
			err,
		)
	}
	defer func() {
		if err := file.Close(); err != nil {
			fmt.Fprintf(os.Stderr, "Error closing file: %v\n", err)
		}
	}()

	// Check for empty file before parsing
	stat, err := file.Stat()
	if err != nil {
		return models.IntermediateRepresentation{}, errors.NewInputError(
			fmt.Sprintf("failed to get file stats for '%s'", filePath),
			err,
		)
	}
	if stat.Size() == 0 {
		return models.IntermediateRepresentation{}, errors.NewInputError(
			fmt.Sprintf("input file '%s' is empty", filePath),
			errors.ErrFileEmpty,
		)
	}

	return Parse(file)
}
